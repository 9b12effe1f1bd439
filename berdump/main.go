package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"strconv"

	"github.com/alecthomas/kong"

	"github.com/synadia-labs/ber.go/berdump/core"
	"github.com/synadia-labs/ber.go/dump"
	ber "github.com/synadia-labs/ber.go/runtime"
)

// CLI defines the berdump command-line interface.
//
// Inputs are raw DER/BER files, or hexadecimal text with --hex. With no
// inputs, or "-", stdin is read.
type CLI struct {
	Inputs   []string `arg:"" optional:"" name:"input" help:"Input files (- for stdin)"`
	Hex      bool     `short:"x" help:"Inputs are hexadecimal text"`
	Format   string   `short:"f" help:"Output format (${enum})" enum:"text,diag,json,yaml,cbor,msgpack" default:"text"`
	OIDs     []string `name:"oids" help:"YAML files of extra OID names (may be repeated)"`
	MaxDepth int      `help:"Maximum nesting depth" default:"${max_depth}"`
	Validate bool     `help:"Only check that inputs decode"`
	Verbose  bool     `short:"v" help:"Enable verbose diagnostics"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("berdump"),
		kong.Description("Print the element tree of ASN.1 BER/DER documents."),
		kong.UsageOnError(),
		kong.Vars{"max_depth": strconv.Itoa(ber.DefaultMaxDepth)},
	)

	level := slog.LevelWarn
	if cli.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	format, err := dump.ParseFormat(cli.Format)
	ctx.FatalIfErrorf(err)

	runCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err = core.Run(runCtx, core.Options{
		Inputs:   cli.Inputs,
		Hex:      cli.Hex,
		Format:   format,
		OIDFiles: cli.OIDs,
		MaxDepth: cli.MaxDepth,
		Validate: cli.Validate,
		Logger:   logger,
		Stdin:    os.Stdin,
		Stdout:   os.Stdout,
	})
	ctx.FatalIfErrorf(err)
}
