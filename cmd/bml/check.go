package main

import (
	"fmt"

	"github.com/bml-format/go-bml/parse"

	"github.com/fatih/color"
	"github.com/scott-cotton/cli"
)

func check(cfg *CheckConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Check.Parse(cc, args)
	if err != nil {
		return err
	}
	bad := color.New(color.FgRed, color.Bold)
	if !cfg.useColor(cc.Out) {
		bad.DisableColor()
	}
	failed := 0
	for _, file := range inputs(args) {
		d, err := readInput(cc, file)
		if err != nil {
			return err
		}
		if _, err := parse.Parse(d); err != nil {
			failed++
			fmt.Fprintf(cc.Out, "%s: %s\n", bad.Sprint(file), err)
		}
	}
	if failed > 0 {
		return cli.ExitCodeErr(1)
	}
	return nil
}
