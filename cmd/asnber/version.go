package main

import (
	"fmt"
	"runtime"

	"github.com/urfave/cli/v2"
)

// Version information - these can be set at build time using ldflags.
// Example: go build -ldflags "-X main.version=1.0.0 -X main.commit=abc123"
var (
	version   = "0.1.0"
	commit    = "unknown"
	buildDate = "unknown"
)

func versionCommand(env *cmdEnv) *cli.Command {
	return &cli.Command{
		Name:  "version",
		Usage: "Show version information",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "short",
				Usage: "show only the version number",
			},
		},
		Action: func(c *cli.Context) error {
			if c.Bool("short") {
				fmt.Fprintln(env.stdout, version)
				return nil
			}

			fmt.Fprintf(env.stdout, "asnber version %s\n", version)
			fmt.Fprintf(env.stdout, "  Commit:     %s\n", commit)
			fmt.Fprintf(env.stdout, "  Built:      %s\n", buildDate)
			fmt.Fprintf(env.stdout, "  Go version: %s\n", runtime.Version())
			fmt.Fprintf(env.stdout, "  OS/Arch:    %s/%s\n", runtime.GOOS, runtime.GOARCH)
			return nil
		},
	}
}
