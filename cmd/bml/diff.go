package main

import (
	"fmt"
	"io"

	"github.com/bml-format/go-bml/libdiff"

	"github.com/scott-cotton/cli"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires 2 args, got %v", cli.ErrUsage, args)
	}
	if cfg.Reverse {
		args[0], args[1] = args[1], args[0]
	}
	differs, err := diffFiles(cfg, cc, args[0], args[1], cc.Out)
	if err != nil {
		return err
	}
	if differs {
		return cli.ExitCodeErr(1)
	}
	return nil
}

// diffFiles writes a line diff of the canonical forms of two files. Files
// whose trees are equal never differ.
func diffFiles(cfg *DiffConfig, cc *cli.Context, from, to string, w io.Writer) (bool, error) {
	fromSrc, err := readInput(cc, from)
	if err != nil {
		return false, err
	}
	toSrc, err := readInput(cc, to)
	if err != nil {
		return false, err
	}
	fromDoc, fromText, err := cfg.canonical(fromSrc)
	if err != nil {
		return false, fmt.Errorf("error decoding %s: %w", from, err)
	}
	toDoc, toText, err := cfg.canonical(toSrc)
	if err != nil {
		return false, fmt.Errorf("error decoding %s: %w", to, err)
	}
	if fromDoc.Equal(toDoc) {
		return false, nil
	}
	edits := libdiff.Lines(string(fromText), string(toText))
	if err := libdiff.Write(w, from, to, edits, cfg.useColor(w)); err != nil {
		return false, err
	}
	return true, nil
}
