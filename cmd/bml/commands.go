package main

import (
	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, &cli.Opt{
		Name:        "o",
		Description: "output file (default stdout)",
		Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
	})

	return cli.NewCommandAt(&cfg.Main, "bml").
		WithSynopsis("bml [opts] command [opts]").
		WithDescription("bml is a tool for working with BML documents.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return bmlMain(cfg, cc, args)
		}).
		WithSubs(
			ViewCommand(cfg),
			FmtCommand(cfg),
			CheckCommand(cfg),
			GetCommand(cfg),
			SelectCommand(cfg),
			DiffCommand(cfg),
			YAMLCommand(cfg),
			HCLCommand(cfg))
}

func ViewCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ViewConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.View, "view").
		WithAliases("v").
		WithSynopsis("view [files]").
		WithDescription("print BML documents in canonical form, in color on terminals").
		WithRun(func(cc *cli.Context, args []string) error {
			return view(cfg, cc, args)
		})
}

func FmtCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &FmtConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Fmt, "fmt").
		WithAliases("f").
		WithSynopsis("fmt [-l] [-w] [-d] [files]").
		WithDescription("canonicalize BML files").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return bmlFmt(cfg, cc, args)
		})
}

func CheckCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &CheckConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Check, "check").
		WithAliases("c").
		WithSynopsis("check [files]").
		WithDescription("report syntax errors in BML files").
		WithRun(func(cc *cli.Context, args []string) error {
			return check(cfg, cc, args)
		})
}

func GetCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &GetConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Get, "get").
		WithAliases("g").
		WithSynopsis("get [-v] <path> [files]").
		WithDescription("get nodes by path, such as server[1]/proxy/port").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return get(cfg, cc, args)
		})
}

func SelectCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &SelectConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Select, "select").
		WithAliases("s", "sel").
		WithSynopsis("select [-n] <expr> [files]").
		WithDescription(selectDescription).
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return sel(cfg, cc, args)
		})
}

const selectDescription = `select prints the paths of nodes matching an expression.

The expression is evaluated for each node with these variables:

  Name      the node name
  Value     the data lines joined by newlines
  HasValue  whether the node has data
  Lines     the data lines
  Attrs     attribute values by name
  Depth     0 for top level nodes
  Path      the path of the node, usable with get
  Kind      Element or Attribute

and the functions Child(name), the value of the first child called name,
and Has(name).`

func DiffCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DiffConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Diff, "diff").
		WithAliases("d", "di").
		WithSynopsis("diff [-r] a b").
		WithDescription("diff the canonical forms of two BML documents").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return diff(cfg, cc, args)
		})
}

func YAMLCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ExportConfig{MainConfig: mainCfg, marshal: yamlMarshal}
	return cli.NewCommandAt(&cfg.Export, "yaml").
		WithAliases("y").
		WithSynopsis("yaml [files]").
		WithDescription("export BML documents as YAML").
		WithRun(func(cc *cli.Context, args []string) error {
			return export(cfg, cc, args)
		})
}

func HCLCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ExportConfig{MainConfig: mainCfg, marshal: hclMarshal}
	return cli.NewCommandAt(&cfg.Export, "hcl").
		WithSynopsis("hcl [files]").
		WithDescription("export BML documents as HCL").
		WithRun(func(cc *cli.Context, args []string) error {
			return export(cfg, cc, args)
		})
}
