package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/bml-format/go-bml/encode"
	"github.com/bml-format/go-bml/ir"
	"github.com/bml-format/go-bml/parse"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	Color  bool `cli:"name=color desc='encode with color'"`
	Tab    bool `cli:"name=tab desc='indent with tabs'"`
	Indent int  `cli:"name=indent desc='indent with this many spaces'"`
	Keep   bool `cli:"name=k aliases=keep desc='keep the indentation of the input'"`

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) parseOpts() []parse.ParseOption {
	if !cfg.Keep {
		return nil
	}
	return []parse.ParseOption{parse.ParseIndent()}
}

// indentOpts gives the indentation requested on the command line, if any.
func (cfg *MainConfig) indentOpts() ([]encode.EncodeOption, error) {
	switch {
	case cfg.Tab && cfg.Indent != 0:
		return nil, fmt.Errorf("%w: -tab and -indent are exclusive", cli.ErrUsage)
	case cfg.Indent < 0:
		return nil, fmt.Errorf("%w: negative indent %d", cli.ErrUsage, cfg.Indent)
	case cfg.Tab:
		return []encode.EncodeOption{encode.EncodeIndent("\t", 0)}, nil
	case cfg.Indent > 0:
		return []encode.EncodeOption{encode.EncodeIndent(strings.Repeat(" ", cfg.Indent), 0)}, nil
	}
	return nil, nil
}

func (cfg *MainConfig) encOpts(w io.Writer) ([]encode.EncodeOption, error) {
	res, err := cfg.indentOpts()
	if err != nil {
		return nil, err
	}
	if cfg.useColor(w) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
	}
	return res, nil
}

// useColor honors -color when given and otherwise colors terminals.
func (cfg *MainConfig) useColor(w io.Writer) bool {
	if cfg.Color {
		return true
	}
	if cfg.Main != nil {
		for _, opt := range cfg.Main.Opts {
			if opt.Name == "color" && opt.Value != nil {
				return false
			}
		}
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// canonical parses src and encodes it with the command line policy, without
// color.
func (cfg *MainConfig) canonical(src []byte) (*ir.Document, []byte, error) {
	doc, err := parse.Parse(src, cfg.parseOpts()...)
	if err != nil {
		return nil, nil, err
	}
	opts, err := cfg.indentOpts()
	if err != nil {
		return nil, nil, err
	}
	var buf strings.Builder
	if err := encode.Encode(doc, &buf, opts...); err != nil {
		return nil, nil, err
	}
	return doc, []byte(buf.String()), nil
}

type ViewConfig struct {
	*MainConfig
	View *cli.Command
}

type FmtConfig struct {
	*MainConfig
	List  bool `cli:"name=l desc='list files whose formatting differs'"`
	Write bool `cli:"name=w desc='write result to the source file'"`
	Diff  bool `cli:"name=d desc='print diffs instead of the result'"`

	Fmt *cli.Command
}

type CheckConfig struct {
	*MainConfig
	Check *cli.Command
}

type GetConfig struct {
	*MainConfig
	Value bool `cli:"name=v desc='print only the value'"`

	Get *cli.Command
}

type SelectConfig struct {
	*MainConfig
	Nodes bool `cli:"name=n desc='print matching nodes, not just paths'"`

	Select *cli.Command
}

type DiffConfig struct {
	*MainConfig
	Reverse bool `cli:"name=r desc='reverse the diff'"`

	Diff *cli.Command
}

type ExportConfig struct {
	*MainConfig
	marshal func(*ir.Document) ([]byte, error)

	Export *cli.Command
}
