// Package main provides the entry point for the asnber command-line tool.
package main

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v2"
	"go.uber.org/multierr"

	"github.com/KilimcininKorOglu/asnber/internal/config"
	"github.com/KilimcininKorOglu/asnber/internal/convert"
	"github.com/KilimcininKorOglu/asnber/internal/logging"
)

func main() {
	exitCode := run(os.Args, os.Stdout, os.Stderr)
	os.Exit(exitCode)
}

// run executes the CLI and returns an exit code.
// This is separated from main() to facilitate testing.
func run(args []string, stdout, stderr io.Writer) int {
	env := &cmdEnv{
		stdout:   stdout,
		stderr:   stderr,
		registry: convert.DefaultRegistry(),
		log:      logging.NewNop(),
	}

	// Help and usage text reaches stdout only on success.
	var usage bytes.Buffer
	env.usage = &usage

	app := newApp(env)
	err := app.Run(args)
	_ = env.log.Close()

	if err != nil {
		_, _ = usage.WriteTo(stderr)
		for _, e := range multierr.Errors(err) {
			fmt.Fprintf(stderr, "Error: %v\n", e)
		}
		return 1
	}
	_, _ = usage.WriteTo(stdout)
	return 0
}

// cmdEnv carries the state shared by all commands of one invocation.
type cmdEnv struct {
	stdout   io.Writer
	stderr   io.Writer
	usage    io.Writer
	cfg      *config.Config
	log      logging.Logger
	registry *convert.Registry
}

func newApp(env *cmdEnv) *cli.App {
	return &cli.App{
		Name:        "asnber",
		Usage:       "Encode and decode ASN.1 BER tags and primitive values",
		Version:     version,
		HideVersion: true,
		Writer:      env.usage,
		ErrWriter:   env.stderr,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "load configuration from `FILE`",
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "log level: debug, info, warn, error",
			},
			&cli.StringFlag{
				Name:  "log-format",
				Usage: "log format: text, json",
			},
			&cli.StringFlag{
				Name:  "output",
				Usage: "output format: text, json",
			},
		},
		Before: env.setup,
		Commands: []*cli.Command{
			tagCommand(env),
			valueCommand(env),
			versionCommand(env),
		},
		// Errors are reported by run; never exit from inside the app.
		ExitErrHandler: func(*cli.Context, error) {},
	}
}

// setup loads configuration and creates the logger before any command runs.
// Precedence: defaults, config file, ASNBER_* variables, then flags.
func (env *cmdEnv) setup(c *cli.Context) error {
	cfg := config.DefaultConfig()
	if path := c.String("config"); path != "" {
		loaded, err := config.LoadConfig(path)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	if err := config.ApplyEnv(cfg, os.LookupEnv); err != nil {
		return err
	}

	if c.IsSet("log-level") {
		cfg.Logging.Level = c.String("log-level")
	}
	if c.IsSet("log-format") {
		cfg.Logging.Format = c.String("log-format")
	}
	if c.IsSet("output") {
		cfg.Output.Format = c.String("output")
	}

	if err := config.Validate(cfg); err != nil {
		return err
	}

	env.cfg = cfg
	if cfg.Logging.Output == "" || cfg.Logging.Output == "stderr" {
		env.log = logging.NewWithWriter(logging.Config{
			Level:  cfg.Logging.Level,
			Format: cfg.Logging.Format,
		}, env.stderr)
	} else {
		env.log = logging.New(logging.Config{
			Level:  cfg.Logging.Level,
			Format: cfg.Logging.Format,
			Output: cfg.Logging.Output,
		})
	}
	env.log = env.log.WithRunID(logging.GenerateRunID())
	env.log.Debug("configuration loaded",
		"config", c.String("config"),
		"allow_non_minimal", cfg.Parser.AllowNonMinimal,
		"max_octets", cfg.Parser.MaxOctets,
	)
	return nil
}
