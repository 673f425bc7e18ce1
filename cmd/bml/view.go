package main

import (
	"fmt"
	"io"

	"github.com/bml-format/go-bml/encode"
	"github.com/bml-format/go-bml/parse"

	"github.com/scott-cotton/cli"
)

func view(cfg *ViewConfig, cc *cli.Context, args []string) error {
	args, err := cfg.View.Parse(cc, args)
	if err != nil {
		return err
	}
	opts, err := cfg.encOpts(cc.Out)
	if err != nil {
		return err
	}
	for i, file := range inputs(args) {
		if i > 0 {
			if _, err := io.WriteString(cc.Out, "\n"); err != nil {
				return err
			}
		}
		d, err := readInput(cc, file)
		if err != nil {
			return err
		}
		doc, err := parse.Parse(d, cfg.parseOpts()...)
		if err != nil {
			return fmt.Errorf("error decoding %s: %w", file, err)
		}
		if err := encode.Encode(doc, cc.Out, opts...); err != nil {
			return fmt.Errorf("error encoding %s: %w", file, err)
		}
	}
	return nil
}
