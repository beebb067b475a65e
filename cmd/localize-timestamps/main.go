package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/goliatone/go-timestamps"
	"github.com/goliatone/go-timestamps/dom"
)

const usage = `usage: localize-timestamps <command> [flags]

commands:
  rewrite   localize timestamp cells of an HTML file (stdin/stdout by default)
  serve     serve a directory, localizing timestamp cells in HTML responses
`

type commonFlags struct {
	config   string
	dotenv   string
	selector string
	timezone string
	logLevel string
}

func (f *commonFlags) register(fs *flag.FlagSet) {
	fs.StringVar(&f.config, "config", "", "path to YAML config file")
	fs.StringVar(&f.dotenv, "env-file", ".env", "dotenv file loaded before reading the environment")
	fs.StringVar(&f.selector, "selector", "", "selector for timestamp cells (default "+dom.DefaultSelector+")")
	fs.StringVar(&f.timezone, "tz", "", "IANA zone to render in (default host zone)")
	fs.StringVar(&f.logLevel, "log-level", "", "log level (trace, debug, info, warn, error)")
}

func (f *commonFlags) load() (appConfig, error) {
	cfg, err := loadConfig(f.config, f.dotenv)
	if err != nil {
		return cfg, err
	}
	overrideString(&cfg.Selector, f.selector)
	overrideString(&cfg.Timezone, f.timezone)
	overrideString(&cfg.LogLevel, f.logLevel)
	return cfg, nil
}

func main() {
	initLogger(os.Stderr)

	if err := run(os.Args[1:], os.Stdin, os.Stdout); err != nil {
		reportError(err)
	}
}

func reportError(err error) {
	fmt.Fprintf(os.Stderr, "localize-timestamps: %v\n", err)
	os.Exit(1)
}

func run(args []string, stdin io.Reader, stdout io.Writer) error {
	if len(args) == 0 {
		return errors.New("missing command\n" + usage)
	}

	switch args[0] {
	case "rewrite":
		return rewriteCommand(args[1:], stdin, stdout)
	case "serve":
		return serveCommand(args[1:])
	case "-h", "-help", "--help", "help":
		fmt.Fprint(stdout, usage)
		return nil
	default:
		return fmt.Errorf("unknown command %q\n%s", args[0], usage)
	}
}

func initLogger(out io.Writer) {
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339})
}

func setLogLevel(value string) {
	level, err := zerolog.ParseLevel(value)
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)
}

// buildLocalizer wires the shared library setup for both commands.
func buildLocalizer(cfg appConfig) (*timestamps.Localizer, dom.Selector, error) {
	sel, err := dom.ParseSelector(cfg.Selector)
	if err != nil {
		return nil, dom.Selector{}, err
	}

	l, err := timestamps.New(
		timestamps.WithLocationName(cfg.Timezone),
		timestamps.WithHooks(timestamps.HookFuncs{
			After: func(ctx *timestamps.HookContext) {
				if ctx.Valid {
					return
				}
				log.Debug().
					Err(ctx.Error).
					Int("index", ctx.Index).
					Str("text", ctx.Original).
					Msg("unparseable timestamp")
			},
		}),
	)
	if err != nil {
		return nil, dom.Selector{}, err
	}

	return l, sel, nil
}
