// Package config holds the immutable server configuration.
package config

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// Config is the server configuration. It is constructed once at startup
// and never mutated afterwards; every component that needs the root
// directory receives it explicitly rather than reading ambient process
// state.
type Config struct {
	// Addr is the TCP address the server listens on.
	Addr string `toml:"addr"`
	// Root is the directory the server is scoped to. A relative path is
	// resolved against the working directory at startup.
	Root string `toml:"root"`
}

// Default returns the configuration used when no file or flags are given:
// serve the working directory on a fixed local port.
func Default() Config {
	return Config{
		Addr: "127.0.0.1:8080",
		Root: ".",
	}
}

// Load reads a TOML configuration file. Keys absent from the file keep
// their default values; keys the file has but Config does not are an
// error, so typos do not silently fall back to defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return Config{}, fmt.Errorf("config: unknown key %q in %s", undecoded[0].String(), path)
	}
	return cfg, nil
}
