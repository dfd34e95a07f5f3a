package cli

import (
	"context"
	"log"
	"os"

	"github.com/urfave/cli/v3"
	"pfeifer.dev/stately/settings"
)

func Handle() {
	if err := newCommand().Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func newCommand() *cli.Command {
	fileFlag := &cli.StringFlag{
		Category: "Inputs and Outputs",
		Name:     "file",
		Aliases:  []string{"f"},
		Usage:    "The JSON document to read, stdin when not set",
	}
	stringsFlag := &cli.BoolFlag{
		Category: "Keys",
		Name:     "strings",
		Aliases:  []string{"s"},
		Usage:    "Treat every key as a string, even when it looks like a slice index",
	}

	return &cli.Command{
		Name:  "stately",
		Usage: "Read and write values deep inside JSON documents",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "Overrides the saved log level (debug, info, warn, error)",
				Sources: cli.EnvVars("STATELY_LOG_LEVEL"),
			},
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			if level := cmd.String("log-level"); level != "" {
				return ctx, settings.Settings.Set("log_level", level)
			}
			return ctx, nil
		},
		Commands: []*cli.Command{
			{
				Name:      "get",
				Aliases:   []string{"g"},
				Usage:     "Prints the value found at a path",
				ArgsUsage: "[key...]",
				Flags:     []cli.Flag{fileFlag, stringsFlag},
				Action:    getAction,
			},
			{
				Name:      "set",
				Aliases:   []string{"s"},
				Usage:     "Prints the document with a value stored at a path",
				ArgsUsage: "[key...]",
				Flags: []cli.Flag{
					fileFlag,
					stringsFlag,
					&cli.StringFlag{
						Category: "Inputs and Outputs",
						Name:     "value",
						Aliases:  []string{"v"},
						Usage:    "The JSON value to store",
						Required: true,
					},
				},
				Action: setAction,
			},
			{
				Name:      "delete",
				Aliases:   []string{"d", "rm"},
				Usage:     "Prints the document without the value at a path",
				ArgsUsage: "[key...]",
				Flags:     []cli.Flag{fileFlag, stringsFlag},
				Action:    deleteAction,
			},
			{
				Name:      "params",
				Aliases:   []string{"p"},
				Usage:     "Lists the saved params, or prints or removes one",
				ArgsUsage: "[name]",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:    "remove",
						Aliases: []string{"r"},
						Usage:   "Removes the named param",
					},
				},
				Action: paramsAction,
			},
			{
				Name:  "settings",
				Usage: "Edit and save the stately settings",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					editSettings()
					return nil
				},
			},
			{
				Name:    "interactive",
				Aliases: []string{"i"},
				Usage:   "Choose between the settings editor and the component demo",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					interactive()
					return nil
				},
			},
			{
				Name:  "demo",
				Usage: "Run a terminal form built from stately handlers",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return runDemo()
				},
			},
		},
	}
}
