package main

import (
	"fmt"

	"github.com/bml-format/go-bml/parse"
	"github.com/bml-format/go-bml/query"

	"github.com/scott-cotton/cli"
)

func sel(cfg *SelectConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Select.Parse(cc, args)
	if err != nil {
		cfg.Select.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: select requires one argument, an expression", cli.ErrUsage)
	}
	if _, err := query.Compile(args[0]); err != nil {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	opts, err := cfg.encOpts(cc.Out)
	if err != nil {
		return err
	}
	files := inputs(args[1:])
	for _, file := range files {
		d, err := readInput(cc, file)
		if err != nil {
			return err
		}
		doc, err := parse.Parse(d, cfg.parseOpts()...)
		if err != nil {
			return fmt.Errorf("error decoding %s: %w", file, err)
		}
		ms, err := query.Select(doc.Root(), args[0])
		if err != nil {
			return err
		}
		for _, m := range ms {
			path := m.Path
			if len(files) > 1 {
				path = file + ":" + path
			}
			if _, err := fmt.Fprintln(cc.Out, path); err != nil {
				return err
			}
			if !cfg.Nodes {
				continue
			}
			if err := writeNode(cc.Out, m.Name, m.Node, false, opts); err != nil {
				return err
			}
		}
	}
	return nil
}
