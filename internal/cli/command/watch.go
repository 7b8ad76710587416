package command

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/yndnr/dev-go/internal/core/domain"
	"github.com/yndnr/dev-go/internal/infra/confloader"
	"github.com/yndnr/dev-go/internal/infra/shutdown"
	"github.com/yndnr/dev-go/internal/telemetry/logger"
)

const watchStopTimeout = 5 * time.Second

func configWatch(c *cli.Context) error {
	if _, err := positional(c); err != nil {
		return err
	}
	d, err := getDeps(c)
	if err != nil {
		return err
	}

	dir := d.store.Dir()
	if info, err := os.Stat(dir); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return domain.ErrDirNotFound.WithDetails(dir)
		}
		return domain.ErrStorage.WithCause(err)
	} else if !info.IsDir() {
		return domain.ErrStorage.WithDetails(dir + " is not a directory")
	}

	ctx := logger.WithCommand(c.Context, "config watch")
	log := logger.L(ctx)

	w, err := confloader.NewWatcher(confloader.WithWatcherLogger(logger.Slog(d.log)))
	if err != nil {
		return domain.ErrStorage.WithCause(err)
	}
	if err := w.Watch(dir); err != nil {
		w.Stop()
		return domain.ErrStorage.WithCause(err)
	}

	// A rename and a later write can both report the same file; print a
	// setting only when its rendered value changes.
	last := make(map[string]string)
	w.OnChange(func(path string) {
		name, ok := domain.NameFromFile(filepath.Base(path))
		if !ok {
			return
		}
		value, found, err := d.settings.Get(ctx, name)
		if err != nil {
			log.Warn("read changed setting", "setting", name, "error", err)
			return
		}
		if !found {
			return
		}
		rendered := domain.RenderValue(value)
		if prev, seen := last[name]; seen && prev == rendered {
			return
		}
		last[name] = rendered
		fmt.Fprintf(c.App.Writer, "%s %s\n", name, rendered)
	})

	runDone := make(chan struct{})
	go func() {
		defer close(runDone)
		w.Run(ctx)
	}()

	handler := shutdown.NewHandler(watchStopTimeout)
	handler.OnShutdown(func(hookCtx context.Context) error {
		err := w.Stop()
		select {
		case <-runDone:
		case <-hookCtx.Done():
		}
		return err
	})

	log.Debug("watching settings", "dir", dir)
	return handler.Wait(ctx)
}
