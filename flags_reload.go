// flags_reload.go: dynamic flag reconfiguration with Argus integration
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0

package mnemo

import (
	"fmt"
	"sync"
	"time"

	"github.com/agilira/argus"
)

// HotFlags provides dynamic flag reload capabilities using Argus.
// It watches a configuration file and applies flag changes through the
// registry's own validation when the file changes.
//
// HotFlags serializes its own mutations of the wrapped FlagSet with a
// mutex, since the Argus watcher delivers changes on its own goroutine.
// Callers that also mutate the FlagSet directly must coordinate with Do.
type HotFlags struct {
	flags   *FlagSet
	watcher *argus.Watcher
	mu      sync.Mutex
	logger  Logger

	// OnReload is called after a configuration change has been applied,
	// with the flag values the file requested. Optional; must be fast
	// and non-blocking.
	OnReload func(applied map[string]bool)
}

// HotFlagsOptions configures hot reload behavior.
type HotFlagsOptions struct {
	// ConfigPath is the path to the configuration file to watch.
	// Supports JSON, YAML, TOML, HCL, INI, Properties formats.
	ConfigPath string

	// PollInterval is how often to check for configuration changes.
	// Default: 1 second. Minimum: 100ms.
	PollInterval time.Duration

	// OnReload is called after a configuration change has been applied.
	OnReload func(applied map[string]bool)

	// Logger for hot reload operations. If nil, NoOpLogger is used.
	Logger Logger
}

// NewHotFlags creates a hot-reloadable wrapper around a flag registry.
// It starts watching the configuration file immediately.
//
// Example configuration file (YAML):
//
//	flags:
//	  warn_name_set_on_empty_forward: true
//	  enable_debug_on_named_expressions: false
//
// Unknown flag names in the file are logged and skipped; immutable flags
// follow the registry's warn-and-ignore behavior.
func NewHotFlags(flags *FlagSet, opts HotFlagsOptions) (*HotFlags, error) {
	if flags == nil {
		return nil, fmt.Errorf("flags is required")
	}
	if opts.ConfigPath == "" {
		return nil, fmt.Errorf("config_path is required")
	}

	if opts.PollInterval == 0 {
		opts.PollInterval = 1 * time.Second
	} else if opts.PollInterval < 100*time.Millisecond {
		opts.PollInterval = 100 * time.Millisecond
	}

	if opts.Logger == nil {
		opts.Logger = NoOpLogger{}
	}

	hf := &HotFlags{
		flags:    flags,
		logger:   opts.Logger,
		OnReload: opts.OnReload,
	}

	argusConfig := argus.Config{
		PollInterval: opts.PollInterval,
	}

	watcher, err := argus.UniversalConfigWatcherWithConfig(opts.ConfigPath, hf.handleConfigChange, argusConfig)
	if err != nil {
		return nil, err
	}
	hf.watcher = watcher

	return hf, nil
}

// Start begins watching the configuration file for changes.
func (hf *HotFlags) Start() error {
	if hf.watcher.IsRunning() {
		return nil // Already started
	}
	return hf.watcher.Start()
}

// Stop stops watching the configuration file.
func (hf *HotFlags) Stop() error {
	return hf.watcher.Stop()
}

// Do runs fn with the reload mutex held, giving callers a way to read or
// mutate the wrapped registry without racing the watcher goroutine.
func (hf *HotFlags) Do(fn func(flags *FlagSet)) {
	hf.mu.Lock()
	defer hf.mu.Unlock()
	fn(hf.flags)
}

// handleConfigChange is called by Argus when the configuration changes.
func (hf *HotFlags) handleConfigChange(configData map[string]interface{}) {
	requested := parseFlagValues(configData)
	if len(requested) == 0 {
		return
	}

	hf.mu.Lock()
	for name, value := range requested {
		var err error
		if value {
			err = hf.flags.Enable(name)
		} else {
			err = hf.flags.Disable(name)
		}
		if err != nil {
			hf.logger.Warn("ignoring unknown flag in config file",
				"flag", name,
				"error", err)
		}
	}
	hf.mu.Unlock()

	if hf.OnReload != nil {
		hf.OnReload(requested)
	}
}

// parseFlagValues extracts the flags section from Argus config data.
// The section may be nested under "flags" or be the whole document.
func parseFlagValues(data map[string]interface{}) map[string]bool {
	section, ok := data["flags"].(map[string]interface{})
	if !ok {
		section = data
	}

	values := make(map[string]bool, len(section))
	for name, raw := range section {
		if value, ok := raw.(bool); ok {
			values[name] = value
		}
	}
	return values
}
