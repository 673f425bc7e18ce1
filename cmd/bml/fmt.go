package main

import (
	"bytes"
	"fmt"
	"os"

	"github.com/bml-format/go-bml/libdiff"

	"github.com/scott-cotton/cli"
)

func bmlFmt(cfg *FmtConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Fmt.Parse(cc, args)
	if err != nil {
		return err
	}
	if cfg.Write && len(args) == 0 {
		return fmt.Errorf("%w: -w requires files", cli.ErrUsage)
	}
	for _, file := range inputs(args) {
		if err := fmtFile(cfg, cc, file); err != nil {
			return err
		}
	}
	return nil
}

func fmtFile(cfg *FmtConfig, cc *cli.Context, file string) error {
	src, err := readInput(cc, file)
	if err != nil {
		return err
	}
	_, res, err := cfg.canonical(src)
	if err != nil {
		return fmt.Errorf("error formatting %s: %w", file, err)
	}
	changed := !bytes.Equal(src, res)
	if cfg.List && changed {
		if _, err := fmt.Fprintln(cc.Out, file); err != nil {
			return err
		}
	}
	if cfg.Diff && changed {
		// a missing final newline alone yields no line edits
		edits := libdiff.Lines(string(src), string(res))
		if libdiff.Changed(edits) {
			if err := libdiff.Write(cc.Out, file, file+" (formatted)", edits, cfg.useColor(cc.Out)); err != nil {
				return err
			}
		}
	}
	if cfg.Write {
		if !changed {
			return nil
		}
		fi, err := os.Stat(file)
		if err != nil {
			return err
		}
		return os.WriteFile(file, res, fi.Mode().Perm())
	}
	if cfg.List || cfg.Diff {
		return nil
	}
	_, err = cc.Out.Write(res)
	return err
}
