package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"

	"github.com/goliatone/go-timestamps/dom"
)

func rewriteCommand(args []string, stdin io.Reader, stdout io.Writer) error {
	fs := flag.NewFlagSet("rewrite", flag.ContinueOnError)
	var common commonFlags
	common.register(fs)
	in := fs.String("in", "", "input HTML file (default stdin)")
	out := fs.String("out", "", "output HTML file (default stdout)")

	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := common.load()
	if err != nil {
		return err
	}
	setLogLevel(cfg.LogLevel)

	src := stdin
	if *in != "" {
		f, err := os.Open(*in)
		if err != nil {
			return fmt.Errorf("open input: %w", err)
		}
		defer f.Close()
		src = f
	}

	var n int
	if *out == "" {
		n, err = rewrite(cfg, src, stdout)
	} else {
		err = replaceFile(*out, func(dst io.Writer) error {
			var rerr error
			n, rerr = rewrite(cfg, src, dst)
			return rerr
		})
	}
	if err != nil {
		return err
	}

	log.Info().Int("cells", n).Str("selector", cfg.Selector).Msg("rewrite complete")
	return nil
}

// rewrite localizes one document from src into dst and reports the number of
// cells rewritten.
func rewrite(cfg appConfig, src io.Reader, dst io.Writer) (int, error) {
	l, sel, err := buildLocalizer(cfg)
	if err != nil {
		return 0, err
	}

	var count int
	host := dom.NewHost(func(doc *dom.Document) {
		count = dom.LocalizeDocument(doc, l, sel)
	})

	w := bufio.NewWriter(dst)
	if err := host.Process(src, w); err != nil {
		return 0, fmt.Errorf("process document: %w", err)
	}
	if err := w.Flush(); err != nil {
		return 0, fmt.Errorf("write document: %w", err)
	}

	return count, nil
}

// replaceFile writes through a temp file next to path and renames it over
// path only when write succeeds. On failure path is left as it was.
func replaceFile(path string, write func(io.Writer) error) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	defer os.Remove(tmp.Name())

	if err := write(tmp); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close output: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("replace output: %w", err)
	}
	return nil
}
