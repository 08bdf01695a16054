package engine

import (
	"context"
	"fmt"

	"github.com/spaghettifunk/geodesic/engine/assets"
	"github.com/spaghettifunk/geodesic/engine/core"
)

// Watch generates into the configured output file, then regenerates every
// time configPath changes until ctx is cancelled. The override registered
// with SetOverride is applied to every reloaded config. A config that fails
// to load is logged and the previous output is left in place.
func (e *Engine) Watch(ctx context.Context, configPath string) error {
	if e.config.Output == "" || e.config.Output == "-" {
		return fmt.Errorf("%w: watch mode needs an output file", core.ErrInvalidConfig)
	}

	watcher, err := assets.NewConfigWatcher(configPath)
	if err != nil {
		return err
	}
	defer watcher.Close()

	if err := e.GenerateFile(e.config.Output); err != nil {
		return err
	}
	core.LogInfo("watching %s, writing %s", configPath, e.config.Output)

	for {
		select {
		case <-ctx.Done():
			return nil
		case _, ok := <-watcher.Events():
			if !ok {
				return nil
			}
			e.reload(configPath)
		case err, ok := <-watcher.Errors():
			if !ok {
				return nil
			}
			core.LogWarn("watcher: %s", err)
		}
	}
}

func (e *Engine) reload(configPath string) {
	e.mu.RLock()
	override := e.override
	e.mu.RUnlock()

	cfg, err := LoadConfigWith(configPath, override)
	if err != nil {
		core.LogError("reload %s: %s", configPath, err)
		return
	}
	// The output path is fixed for the lifetime of the watch.
	cfg.Output = e.config.Output
	if err := core.SetLogLevel(cfg.LogLevel); err != nil {
		core.LogError("reload %s: %s", configPath, err)
		return
	}
	e.mu.Lock()
	e.config = cfg
	e.mu.Unlock()
	if err := e.GenerateFile(e.config.Output); err != nil {
		core.LogError("regenerate %s: %s", e.config.Output, err)
	}
}
