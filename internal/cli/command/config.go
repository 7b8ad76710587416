package command

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/urfave/cli/v2"

	"github.com/yndnr/dev-go/internal/cli/output"
	"github.com/yndnr/dev-go/internal/core/domain"
	"github.com/yndnr/dev-go/internal/telemetry/logger"
)

// NotSet is printed to stderr by "config get" for a setting that has
// never been set.
const NotSet = "<not set>"

// ConfigCommand returns the config subcommand group.
func ConfigCommand() *cli.Command {
	return &cli.Command{
		Name:    "config",
		Aliases: []string{"cfg"},
		Usage:   "Read and write settings",
		Subcommands: []*cli.Command{
			{
				Name:      "get",
				Usage:     "Print the value of a setting",
				ArgsUsage: "NAME",
				Action:    configGet,
			},
			{
				Name:    "list",
				Aliases: []string{"ls"},
				Usage:   "List all settings",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "no-headers",
						Usage: "Omit the header lines of table output",
					},
				},
				Action: configList,
			},
			{
				Name:      "set",
				Usage:     "Store a setting",
				ArgsUsage: "NAME VALUE [-j|--json]",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:    "json",
						Aliases: []string{"j"},
						Usage:   "Parse VALUE as JSON instead of storing it as a string",
					},
				},
				Action: configSet,
			},
			{
				Name:   "path",
				Usage:  "Print the settings directory",
				Action: configPath,
			},
			{
				Name:   "watch",
				Usage:  "Print settings as they are written, until interrupted",
				Action: configWatch,
			},
		},
	}
}

func configGet(c *cli.Context) error {
	args, err := positional(c, "NAME")
	if err != nil {
		return err
	}
	d, err := getDeps(c)
	if err != nil {
		return err
	}

	ctx := logger.WithCommand(c.Context, "config get")
	value, found, err := d.settings.Get(ctx, args[0])
	if err != nil {
		return err
	}
	if !found {
		fmt.Fprintln(c.App.ErrWriter, paint(c.App.ErrWriter, color.FgRed, NotSet))
		return nil
	}

	return d.formatter.Format(c.App.Writer, output.Value{V: value})
}

func configList(c *cli.Context) error {
	if _, err := positional(c); err != nil {
		return err
	}
	d, err := getDeps(c)
	if err != nil {
		return err
	}

	ctx := logger.WithCommand(c.Context, "config list")
	settings, err := d.settings.List(ctx)
	if err != nil {
		return err
	}

	formatter := d.formatter
	if tf, ok := formatter.(*output.TableFormatter); ok && c.Bool("no-headers") {
		noHeaders := *tf
		noHeaders.NoHeaders = true
		formatter = &noHeaders
	}
	return formatter.Format(c.App.Writer, output.Settings(settings))
}

func configSet(c *cli.Context) error {
	args := c.Args().Slice()
	isJSON := c.Bool("json")

	// Flags after the positional arguments are not parsed by the flag
	// package; accept a trailing -j/--json as documented.
	if len(args) == 3 && (args[2] == "-j" || args[2] == "--json") {
		isJSON = true
		args = args[:2]
	}
	if err := checkArgs(args, "NAME", "VALUE"); err != nil {
		return err
	}

	d, err := getDeps(c)
	if err != nil {
		return err
	}

	ctx := logger.WithCommand(c.Context, "config set")
	return d.settings.Set(ctx, args[0], args[1], isJSON)
}

func configPath(c *cli.Context) error {
	if _, err := positional(c); err != nil {
		return err
	}
	d, err := getDeps(c)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(c.App.Writer, d.store.Dir())
	return err
}

// positional returns the command's arguments after checking that there
// is exactly one per name.
func positional(c *cli.Context, names ...string) ([]string, error) {
	args := c.Args().Slice()
	if err := checkArgs(args, names...); err != nil {
		return nil, err
	}
	return args, nil
}

func checkArgs(args []string, names ...string) error {
	switch {
	case len(args) < len(names):
		return domain.ErrMissingArgument.WithDetails(names[len(args)])
	case len(args) > len(names):
		return domain.ErrInvalidArgument.WithDetails(fmt.Sprintf("unexpected argument %q", args[len(names)]))
	}
	return nil
}
