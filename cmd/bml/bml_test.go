package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/bml-format/go-bml/ir"
	"github.com/bml-format/go-bml/parse"
	"github.com/google/go-cmp/cmp"
	"github.com/scott-cotton/cli"
)

func TestCanonical(t *testing.T) {
	tests := []struct {
		name string
		cfg  MainConfig
		in   string
		want string
	}{
		{"default", MainConfig{}, "a\n    b:   1\n", "a\n  b: 1\n"},
		{"tab", MainConfig{Tab: true}, "a\n  b: 1\n", "a\n\tb: 1\n"},
		{"indent", MainConfig{Indent: 4}, "a\n  b: 1\n", "a\n    b: 1\n"},
		{"keep", MainConfig{Keep: true}, "\ta\n\t\tb: 1\n", "\ta\n\t\tb: 1\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, got, err := tt.cfg.canonical([]byte(tt.in))
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(tt.want, string(got)); diff != "" {
				t.Errorf("mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestIndentOptsUsage(t *testing.T) {
	for _, cfg := range []MainConfig{{Tab: true, Indent: 2}, {Indent: -1}} {
		if _, err := cfg.indentOpts(); !errors.Is(err, cli.ErrUsage) {
			t.Errorf("indentOpts(%+v) error = %v", cfg, err)
		}
	}
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return p
}

func TestDiffFiles(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "a.bml", "a\n  b: 1\n")
	same := writeFile(t, dir, "same.bml", "// same tree\na\n    b:1\n")
	other := writeFile(t, dir, "other.bml", "a\n  b: 2\n")
	cfg := &DiffConfig{MainConfig: &MainConfig{}}

	var buf bytes.Buffer
	differs, err := diffFiles(cfg, nil, a, same, &buf)
	if err != nil {
		t.Fatal(err)
	}
	if differs || buf.Len() != 0 {
		t.Errorf("equal trees reported as different:\n%s", buf.String())
	}

	differs, err = diffFiles(cfg, nil, a, other, &buf)
	if err != nil {
		t.Fatal(err)
	}
	if !differs {
		t.Fatalf("different trees reported as equal")
	}
	for _, want := range []string{"--- " + a, "+++ " + other, " a\n", "-  b: 1\n", "+  b: 2\n"} {
		if !strings.Contains(buf.String(), want) {
			t.Errorf("diff output lacks %q:\n%s", want, buf.String())
		}
	}
}

type nopCloser struct{ *bytes.Buffer }

func (nopCloser) Close() error { return nil }

func TestFmtDiff(t *testing.T) {
	dir := t.TempDir()
	tests := []struct {
		name, content string
		want          []string
	}{
		{"reindent.bml", "a\n    b:1\n", []string{"-    b:1\n", "+  b: 1\n"}},
		{"final-newline.bml", "a\n  b: 1", nil},
		{"same.bml", "a\n  b: 1\n", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			file := writeFile(t, dir, tt.name, tt.content)
			out := nopCloser{&bytes.Buffer{}}
			cfg := &FmtConfig{MainConfig: &MainConfig{}, Diff: true}
			if err := fmtFile(cfg, &cli.Context{Out: out}, file); err != nil {
				t.Fatal(err)
			}
			if tt.want == nil {
				if out.Len() != 0 {
					t.Errorf("unexpected diff:\n%s", out.String())
				}
				return
			}
			for _, w := range tt.want {
				if !strings.Contains(out.String(), w) {
					t.Errorf("diff output lacks %q:\n%s", w, out.String())
				}
			}
		})
	}
}

func TestWriteNode(t *testing.T) {
	doc, err := parse.ParseString("proxy host=\"p\"\n  port: 8080\n")
	if err != nil {
		t.Fatal(err)
	}
	proxy, _ := doc.First("proxy")
	host, _ := proxy.First("host")
	tests := []struct {
		name      string
		n         *ir.Node
		valueOnly bool
		want      string
	}{
		{"proxy", proxy, false, "proxy host=\"p\"\n  port: 8080\n"},
		{"host", host, false, " host=\"p\"\n"},
		{"host", host, true, "p\n"},
	}
	for _, tt := range tests {
		var buf bytes.Buffer
		if err := writeNode(&buf, tt.name, tt.n, tt.valueOnly, nil); err != nil {
			t.Fatal(err)
		}
		if got := buf.String(); got != tt.want {
			t.Errorf("writeNode(%s, %t) = %q, want %q", tt.name, tt.valueOnly, got, tt.want)
		}
	}
}

func TestInputs(t *testing.T) {
	if diff := cmp.Diff([]string{"-"}, inputs(nil)); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"x"}, inputs([]string{"x"})); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}
