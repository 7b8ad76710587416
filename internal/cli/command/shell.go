package command

import (
	"context"

	"github.com/urfave/cli/v2"

	"github.com/yndnr/dev-go/internal/cli/config"
	"github.com/yndnr/dev-go/internal/cli/repl"
)

// ShellCommand returns the interactive mode command.
func ShellCommand() *cli.Command {
	return &cli.Command{
		Name:  "shell",
		Usage: "Run config subcommands interactively",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "no-history",
				Usage: "Do not read or write ~/.dev/history",
			},
		},
		Action: shellAction,
	}
}

func shellAction(c *cli.Context) error {
	if _, err := positional(c); err != nil {
		return err
	}
	d, err := getDeps(c)
	if err != nil {
		return err
	}

	historyFile := config.DefaultHistoryPath()
	if c.Bool("no-history") {
		historyFile = ""
	}

	// Each line runs as "dev <resolved globals> config <line>" so it gets
	// the same parsing, output and error reporting as a one-shot command.
	globals := []string{
		c.App.Name,
		"--settings-dir", d.store.Dir(),
		"--output", d.config.Output,
	}
	if c.IsSet("config") {
		globals = append(globals, "--config", c.String("config"))
	}
	if c.Bool("verbose") {
		globals = append(globals, "--verbose")
	}

	exec := func(ctx context.Context, args []string) error {
		app := App()
		app.Writer = c.App.Writer
		app.ErrWriter = c.App.ErrWriter

		reported := false
		app.ExitErrHandler = func(c *cli.Context, err error) {
			reported = true
			HandleError(c, err)
		}

		line := append(append(append([]string{}, globals...), "config"), args...)
		if err := app.RunContext(ctx, line); err != nil && !reported {
			// Flag parse failures bypass the exit handler.
			return err
		}
		return nil
	}

	var commands []string
	for _, sub := range ConfigCommand().Subcommands {
		if sub.Name != "watch" {
			commands = append(commands, sub.Name)
		}
	}

	r := repl.New(exec,
		repl.WithIO(c.App.Reader, c.App.Writer),
		repl.WithPrompt(c.App.Name+"> "),
		repl.WithCompleter(repl.NewCompleter(commands...)),
		repl.WithHistory(repl.NewHistory(historyFile)),
	)
	return r.Run(c.Context)
}
