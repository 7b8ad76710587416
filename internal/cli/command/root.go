package command

import (
	"errors"

	"github.com/urfave/cli/v2"

	"github.com/yndnr/dev-go/internal/cli/config"
	"github.com/yndnr/dev-go/internal/cli/output"
	"github.com/yndnr/dev-go/internal/core/service"
	"github.com/yndnr/dev-go/internal/infra/buildinfo"
	"github.com/yndnr/dev-go/internal/storage/filestore"
	"github.com/yndnr/dev-go/internal/telemetry/logger"
)

const depsKey = "deps"

// App creates the CLI application.
func App() *cli.App {
	app := &cli.App{
		Name:    "dev",
		Usage:   "Developer workstation settings tool",
		Version: buildinfo.String(),
		Flags:   globalFlags(),
		Commands: []*cli.Command{
			ConfigCommand(),
			ShellCommand(),
		},
		Before:         setup,
		ExitErrHandler: HandleError,
		Metadata:       map[string]any{},
	}

	return app
}

// globalFlags returns the global CLI flags.
func globalFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:  "config",
			Usage: "CLI config file (default: ~/.dev/cli.yaml)",
		},
		&cli.StringFlag{
			Name:    "settings-dir",
			Aliases: []string{"d"},
			Usage:   "Directory holding the settings files",
		},
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "Output format: table, json, yaml",
		},
		&cli.BoolFlag{
			Name:    "verbose",
			Aliases: []string{"V"},
			Usage:   "Enable debug logging on stderr",
		},
	}
}

// deps holds what the commands need, built once per run by setup.
type deps struct {
	config    *config.CLIConfig
	log       logger.Logger
	store     *filestore.Store
	settings  *service.SettingService
	formatter output.Formatter
}

// overrides maps explicitly set global flags to config keys.
func overrides(c *cli.Context) map[string]any {
	m := map[string]any{}
	if c.IsSet("settings-dir") {
		m["settings.dir"] = c.String("settings-dir")
	}
	if c.IsSet("output") {
		m["output"] = c.String("output")
	}
	return m
}

// setup loads the CLI configuration and wires logger, store and service.
func setup(c *cli.Context) error {
	cfg, err := config.Load(c.String("config"), overrides(c))
	if err != nil {
		return err
	}

	format, err := output.ParseFormat(cfg.Output)
	if err != nil {
		return err
	}

	logCfg := logger.DefaultConfig()
	logCfg.Level = cfg.Log.Level
	logCfg.Format = cfg.Log.Format
	logCfg.Output = c.App.ErrWriter
	log, err := logger.New(logCfg)
	if err != nil {
		return err
	}
	if c.Bool("verbose") {
		logger.SetLevel("debug")
	}
	logger.SetDefault(log)

	store := filestore.New(cfg.Settings.Dir)
	c.App.Metadata[depsKey] = &deps{
		config:    cfg,
		log:       log,
		store:     store,
		settings:  service.NewSettingService(store),
		formatter: output.NewFormatter(format),
	}
	c.Context = logger.WithLogger(c.Context, log)

	log.Debug("configuration loaded", "settings_dir", cfg.Settings.Dir, "output", cfg.Output)
	return nil
}

// getDeps retrieves what setup stored for this run.
func getDeps(c *cli.Context) (*deps, error) {
	if d, ok := c.App.Metadata[depsKey].(*deps); ok {
		return d, nil
	}
	return nil, errors.New("command context not initialized")
}
