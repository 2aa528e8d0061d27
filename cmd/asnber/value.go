package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/KilimcininKorOglu/asnber/internal/convert"
	"github.com/KilimcininKorOglu/asnber/internal/hexutil"
)

func valueCommand(env *cmdEnv) *cli.Command {
	return &cli.Command{
		Name:  "value",
		Usage: "Convert primitive content octets",
		Subcommands: []*cli.Command{
			{
				Name:      "decode",
				Usage:     "Decode hex content octets to a value",
				ArgsUsage: "HEX",
				Flags:     []cli.Flag{newTypeFlag()},
				Action:    env.valueDecode,
			},
			{
				Name:      "encode",
				Usage:     "Encode a value to hex content octets",
				ArgsUsage: "[--] VALUE",
				Description: "Negative numbers must follow --, e.g.\n" +
					"   asnber value encode --type integer -- -129",
				Flags:        []cli.Flag{newTypeFlag()},
				Action:       env.valueEncode,
				OnUsageError: literalUsageError,
			},
			{
				Name:   "types",
				Usage:  "List the registered logical types",
				Action: env.valueTypes,
			},
		},
	}
}

func newTypeFlag() cli.Flag {
	return &cli.StringFlag{
		Name:     "type",
		Aliases:  []string{"t"},
		Usage:    "logical type, see 'asnber value types'",
		Required: true,
	}
}

const undefinedFlagPrefix = "flag provided but not defined: "

// literalUsageError reports a flag parse failure of value encode without
// printing help. A negative number taken for a flag gets a hint to use --.
func literalUsageError(c *cli.Context, err error, _ bool) error {
	msg := err.Error()
	if !strings.HasPrefix(msg, undefinedFlagPrefix) {
		return err
	}
	arg := strings.TrimPrefix(msg, undefinedFlagPrefix)
	if _, perr := strconv.ParseInt(arg, 0, 64); perr != nil {
		return err
	}
	return fmt.Errorf("%w: negative values must follow --, as in 'asnber value encode --type %s -- %s'",
		err, c.String("type"), arg)
}

func (env *cmdEnv) valueDecode(c *cli.Context) error {
	if c.Args().Len() != 1 {
		return fmt.Errorf("expected exactly one argument, got %d", c.Args().Len())
	}

	codec, err := env.registry.Lookup(c.String("type"))
	if err != nil {
		return err
	}

	raw, err := hexutil.Decode(c.Args().First())
	if err != nil {
		return err
	}

	v, err := codec.DecodeValue(raw)
	if err != nil {
		env.log.Debug("value decode failed", "type", codec.Name(), "error", err)
		return err
	}

	env.log.Debug("value decoded", "type", codec.Name(), "value", v)
	return env.printValue(codec.Name(), raw, v)
}

func (env *cmdEnv) valueEncode(c *cli.Context) error {
	if c.Args().Len() != 1 {
		return fmt.Errorf("expected exactly one argument, got %d", c.Args().Len())
	}

	codec, err := env.registry.Lookup(c.String("type"))
	if err != nil {
		return err
	}

	v, err := parseLiteral(codec.Name(), c.Args().First())
	if err != nil {
		return err
	}

	raw, err := codec.EncodeValue(v)
	if err != nil {
		env.log.Debug("value encode failed", "type", codec.Name(), "error", err)
		return err
	}

	env.log.Debug("value encoded", "type", codec.Name(), "hex", hexutil.Encode(raw))
	return env.printValue(codec.Name(), raw, v)
}

func (env *cmdEnv) valueTypes(c *cli.Context) error {
	names := env.registry.Names()
	if env.jsonOutput() {
		return env.writeJSON(names)
	}
	_, err := fmt.Fprintln(env.stdout, strings.Join(names, "\n"))
	return err
}

// parseLiteral converts command-line text to the logical type of the
// named converter.
func parseLiteral(typ, s string) (interface{}, error) {
	switch typ {
	case convert.TypeBoolean:
		return strconv.ParseBool(s)
	case convert.TypeInteger, convert.TypeEnumerated:
		return strconv.ParseInt(s, 0, 64)
	case convert.TypeOctetString:
		return hexutil.Decode(s)
	case convert.TypeUTF8String:
		return s, nil
	}
	return nil, fmt.Errorf("no literal syntax for type %q", typ)
}
