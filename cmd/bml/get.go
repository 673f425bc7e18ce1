package main

import (
	"fmt"
	"io"

	"github.com/bml-format/go-bml/encode"
	"github.com/bml-format/go-bml/ir"
	"github.com/bml-format/go-bml/parse"
	"github.com/bml-format/go-bml/query"

	"github.com/scott-cotton/cli"
)

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		cfg.Get.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: get requires one argument, a path", cli.ErrUsage)
	}
	steps, err := query.ParsePath(args[0])
	if err != nil {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	opts, err := cfg.encOpts(cc.Out)
	if err != nil {
		return err
	}
	for _, file := range inputs(args[1:]) {
		d, err := readInput(cc, file)
		if err != nil {
			return err
		}
		doc, err := parse.Parse(d, cfg.parseOpts()...)
		if err != nil {
			return fmt.Errorf("error decoding %s: %w", file, err)
		}
		n, err := query.GetSteps(doc.Root(), steps)
		if err != nil {
			return fmt.Errorf("error querying %s: %w", file, err)
		}
		if err := writeNode(cc.Out, steps[len(steps)-1].Name, n, cfg.Value, opts); err != nil {
			return err
		}
	}
	return nil
}

// writeNode writes the value of n, or n itself as BML.
func writeNode(w io.Writer, name string, n *ir.Node, valueOnly bool, opts []encode.EncodeOption) error {
	if valueOnly {
		v, _ := n.LookupValue()
		_, err := io.WriteString(w, v+"\n")
		return err
	}
	if err := encode.EncodeNode(name, n, w, opts...); err != nil {
		return err
	}
	if n.Kind() == ir.AttributeKind {
		_, err := io.WriteString(w, "\n")
		return err
	}
	return nil
}
