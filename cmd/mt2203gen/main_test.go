package main

import (
	"context"
	"go/parser"
	"go/token"
	"strings"
	"testing"

	"github.com/urfave/cli/v3"

	"github.com/samcharles93/gpurand/internal/dc"
)

func TestRender(t *testing.T) {
	src, err := render("rng", defaultSeed, []dc.Entry{
		{A: 0xeb4e6f11, B: 0xef1ff500, C: 0x07580000},
		{A: 0xccdd2211, B: 0x02476a00, C: 0x175a8000},
	})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	text := string(src)
	if !strings.HasPrefix(text, "// Code generated by mt2203gen; DO NOT EDIT.\n") {
		t.Fatalf("missing generated header:\n%s", text)
	}
	for _, want := range []string{
		"package rng\n",
		"seed 0x6d74323230330001",
		"\t{0xeb4e6f11, 0xef1ff500, 0x07580000},\n",
		"\t{0xccdd2211, 0x02476a00, 0x175a8000},\n",
	} {
		if !strings.Contains(text, want) {
			t.Fatalf("output lacks %q:\n%s", want, text)
		}
	}
	if _, err := parser.ParseFile(token.NewFileSet(), "mt2203_table.go", src, 0); err != nil {
		t.Fatalf("output does not parse: %v", err)
	}
}

func TestRejectsEmptyTable(t *testing.T) {
	app := newApp()
	app.ExitErrHandler = func(context.Context, *cli.Command, error) {}
	err := app.Run(context.Background(), []string{"mt2203gen", "--lanes", "0", "--out", t.TempDir() + "/out.go"})
	if err == nil || !strings.Contains(err.Error(), "--lanes") {
		t.Fatalf("expected lanes error, got %v", err)
	}
}
