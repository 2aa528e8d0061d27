package main

import (
	"errors"
	"fmt"

	"github.com/urfave/cli/v2"
	"go.uber.org/multierr"

	"github.com/KilimcininKorOglu/asnber/internal/ber"
	"github.com/KilimcininKorOglu/asnber/internal/hexutil"
)

var errNoInput = errors.New("no input given")

func tagCommand(env *cmdEnv) *cli.Command {
	return &cli.Command{
		Name:  "tag",
		Usage: "Encode and parse identifier octets",
		Subcommands: []*cli.Command{
			{
				Name:  "encode",
				Usage: "Encode a tag to hex",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "class",
						Usage: "tag class: universal, application, context, private",
						Value: "universal",
					},
					&cli.BoolFlag{
						Name:  "constructed",
						Usage: "set the constructed bit",
					},
					&cli.Uint64Flag{
						Name:     "number",
						Aliases:  []string{"n"},
						Usage:    "tag number",
						Required: true,
					},
				},
				Action: env.tagEncode,
			},
			{
				Name:      "parse",
				Usage:     "Parse one or more hex-encoded tags",
				ArgsUsage: "HEX...",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "lenient",
						Usage: "accept non-minimal long-form tags",
					},
				},
				Action: env.tagParse,
			},
		},
	}
}

func (env *cmdEnv) tagEncode(c *cli.Context) error {
	class, err := ber.ParseClass(c.String("class"))
	if err != nil {
		return err
	}

	tag, err := ber.NewTag(class, c.Bool("constructed"), c.Uint64("number"))
	if err != nil {
		return err
	}

	env.log.Debug("encoding tag", "tag", tag.String())
	return env.printTag(tag)
}

// tagParse parses every argument and reports all failures together.
func (env *cmdEnv) tagParse(c *cli.Context) error {
	if c.Args().Len() == 0 {
		return errNoInput
	}

	opts := env.cfg.Parser.ParseOptions()
	if c.Bool("lenient") {
		opts.AllowNonMinimal = true
	}

	var errs error
	for _, arg := range c.Args().Slice() {
		data, err := hexutil.Decode(arg)
		if err != nil {
			errs = multierr.Append(errs, err)
			continue
		}

		tag, err := opts.ParseTag(data)
		if err != nil {
			env.log.Debug("tag parse failed", "input", arg, "error", err)
			errs = multierr.Append(errs, err)
			continue
		}

		env.log.Debug("tag parsed", "input", arg, "tag", tag.String())
		if err := env.printTag(tag); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
	}
	return errs
}
