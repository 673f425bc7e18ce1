package main

import (
	"fmt"

	"github.com/bml-format/go-bml/hclconv"
	"github.com/bml-format/go-bml/ir"
	"github.com/bml-format/go-bml/parse"
	"github.com/bml-format/go-bml/yamlconv"

	"github.com/scott-cotton/cli"
)

func yamlMarshal(doc *ir.Document) ([]byte, error) {
	return yamlconv.Marshal(doc)
}

func hclMarshal(doc *ir.Document) ([]byte, error) {
	return hclconv.Marshal(doc)
}

func export(cfg *ExportConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Export.Parse(cc, args)
	if err != nil {
		return err
	}
	for _, file := range inputs(args) {
		d, err := readInput(cc, file)
		if err != nil {
			return err
		}
		doc, err := parse.Parse(d)
		if err != nil {
			return fmt.Errorf("error decoding %s: %w", file, err)
		}
		out, err := cfg.marshal(doc)
		if err != nil {
			return fmt.Errorf("error exporting %s: %w", file, err)
		}
		if _, err := cc.Out.Write(out); err != nil {
			return err
		}
	}
	return nil
}
