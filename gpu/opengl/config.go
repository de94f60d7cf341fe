// SPDX-License-Identifier: Unlicense OR MIT

package opengl

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/BurntSushi/toml"

	"gfxhal.org/gpu"
)

// Config holds the construction parameters of a Device.
type Config struct {
	// BackbufferWidth and BackbufferHeight are the logical presentation
	// size.
	BackbufferWidth  int `toml:"backbuffer_width"`
	BackbufferHeight int `toml:"backbuffer_height"`
	// DepthFormat is the depth format of the backbuffer.
	DepthFormat gpu.DepthFormat `toml:"depth_format"`
	// DisableFauxBackbuffer renders straight to the window instead of an
	// off-screen framebuffer.
	DisableFauxBackbuffer bool `toml:"disable_faux_backbuffer"`
	// ThreadedGL marshals driver calls made off the main thread onto
	// it. Only enable it for callers that cannot be fixed.
	ThreadedGL bool `toml:"threaded_gl"`
	// DebugOutput installs the driver debug callback when the driver
	// supports it.
	DebugOutput bool `toml:"debug_output"`
}

func DefaultConfig() Config {
	return Config{
		BackbufferWidth:  800,
		BackbufferHeight: 480,
		DepthFormat:      gpu.Depth16,
	}
}

// LoadConfig reads a TOML configuration from path. Keys missing from the
// file keep their default values; unknown keys are an error.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("opengl: %s: %w", path, err)
	}
	if err := checkUndecoded(meta); err != nil {
		return Config{}, fmt.Errorf("opengl: %s: %w", path, err)
	}
	return cfg, cfg.Validate()
}

// ReadConfig is like LoadConfig but decodes from r.
func ReadConfig(r io.Reader) (Config, error) {
	cfg := DefaultConfig()
	meta, err := toml.NewDecoder(r).Decode(&cfg)
	if err != nil {
		return Config{}, fmt.Errorf("opengl: %w", err)
	}
	if err := checkUndecoded(meta); err != nil {
		return Config{}, fmt.Errorf("opengl: %w", err)
	}
	return cfg, cfg.Validate()
}

func checkUndecoded(meta toml.MetaData) error {
	keys := meta.Undecoded()
	if len(keys) == 0 {
		return nil
	}
	names := make([]string, len(keys))
	for i, k := range keys {
		names[i] = k.String()
	}
	return fmt.Errorf("unknown configuration keys: %s", strings.Join(names, ", "))
}

// Validate reports whether the configuration describes a usable device.
func (c Config) Validate() error {
	if c.BackbufferWidth <= 0 || c.BackbufferHeight <= 0 {
		return fmt.Errorf("opengl: invalid backbuffer size %dx%d", c.BackbufferWidth, c.BackbufferHeight)
	}
	if c.DepthFormat > gpu.Depth24Stencil8 {
		return fmt.Errorf("opengl: invalid depth format %d", c.DepthFormat)
	}
	return nil
}

// Encode returns the TOML form of the configuration.
func (c Config) Encode() ([]byte, error) {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(c); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
