// Package core implements the berdump command.
package core

import (
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/synadia-labs/ber.go/dump"
	"github.com/synadia-labs/ber.go/oid"
	ber "github.com/synadia-labs/ber.go/runtime"
)

// Options configures a run.
type Options struct {
	// Inputs lists the files to decode. "-" or an empty list reads Stdin.
	Inputs []string
	// Hex treats input as hexadecimal text. Whitespace is ignored.
	Hex    bool
	Format dump.Format
	// OIDFiles are YAML name files merged over the built-in OID names.
	OIDFiles []string
	MaxDepth int
	// Validate checks every input without printing its tree.
	Validate bool

	Logger *slog.Logger
	Stdin  io.Reader
	Stdout io.Writer
}

// Run decodes every input and writes it to opts.Stdout.
func Run(ctx context.Context, opts Options) error {
	log := opts.Logger
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}

	names := oid.Default()
	for _, path := range opts.OIDFiles {
		if err := loadNames(names, path); err != nil {
			return err
		}
		log.DebugContext(ctx, "loaded oid names", slog.String("file", path), slog.Int("total", names.Len()))
	}

	inputs := opts.Inputs
	if len(inputs) == 0 {
		inputs = []string{"-"}
	}
	for _, in := range inputs {
		if err := ctx.Err(); err != nil {
			return err
		}
		b, err := readInput(in, opts)
		if err != nil {
			return err
		}
		log.DebugContext(ctx, "read input", slog.String("input", in), slog.Int("bytes", len(b)))

		if opts.Validate {
			if err := (ber.Walker{MaxDepth: opts.MaxDepth}).ValidateDocument(b); err != nil {
				log.WarnContext(ctx, "invalid document", slog.String("input", in), slog.Any("error", err))
				return fmt.Errorf("%s: %w", in, err)
			}
			n, err := ber.NewCursor(b).Count()
			if err != nil {
				return fmt.Errorf("%s: %w", in, err)
			}
			log.InfoContext(ctx, "valid document", slog.String("input", in), slog.Int("elements", n))
			continue
		}

		err = dump.Render(opts.Stdout, opts.Format, b, dump.Options{Names: names, MaxDepth: opts.MaxDepth})
		if err != nil {
			return fmt.Errorf("%s: %w", in, err)
		}
	}
	return nil
}

func loadNames(r *oid.Registry, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open oid names: %w", err)
	}
	defer f.Close()
	if err := r.LoadYAML(f); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}

func readInput(name string, opts Options) ([]byte, error) {
	var (
		b   []byte
		err error
	)
	if name == "-" {
		if opts.Stdin == nil {
			return nil, errors.New("no stdin available")
		}
		b, err = io.ReadAll(opts.Stdin)
	} else {
		b, err = os.ReadFile(name)
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", name, err)
	}
	if !opts.Hex {
		return b, nil
	}
	out, err := decodeHex(b)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return out, nil
}

// decodeHex decodes hexadecimal text, ignoring whitespace and an optional
// 0x prefix.
func decodeHex(b []byte) ([]byte, error) {
	s := strings.Join(strings.Fields(string(b)), "")
	s = strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	out, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("decode hex: %w", err)
	}
	return out, nil
}
