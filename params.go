package ebipad

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
)

// Params is a flat parameter store, the shape of an engine plugin-parameter
// table. Values are strings regardless of origin; resolution parses them.
type Params map[string]string

// Config is the resolved gamepad configuration.
type Config struct {
	ShowGamepad bool

	UpKey     KeyCode
	DownKey   KeyCode
	LeftKey   KeyCode
	RightKey  KeyCode
	OKKey     KeyCode
	CancelKey KeyCode
	XKey      KeyCode
	YKey      KeyCode
}

// DefaultConfig returns the hard-coded fallback configuration.
func DefaultConfig() Config {
	return Config{
		ShowGamepad: true,
		UpKey:       DefaultUpKey,
		DownKey:     DefaultDownKey,
		LeftKey:     DefaultLeftKey,
		RightKey:    DefaultRightKey,
		OKKey:       DefaultOKKey,
		CancelKey:   DefaultCancelKey,
		XKey:        DefaultXKey,
		YKey:        DefaultYKey,
	}
}

// ResolveConfig resolves p into a Config. Resolution is defensive: a missing
// or unparseable value falls back to its default and never surfaces an
// error.
func ResolveConfig(p Params) Config {
	cfg := DefaultConfig()
	cfg.ShowGamepad = boolParam(p, "showGamepad", cfg.ShowGamepad)
	cfg.UpKey = keyParam(p, "upKey", cfg.UpKey)
	cfg.DownKey = keyParam(p, "downKey", cfg.DownKey)
	cfg.LeftKey = keyParam(p, "leftKey", cfg.LeftKey)
	cfg.RightKey = keyParam(p, "rightKey", cfg.RightKey)
	cfg.OKKey = keyParam(p, "okKey", cfg.OKKey)
	cfg.CancelKey = keyParam(p, "cancelKey", cfg.CancelKey)
	cfg.XKey = keyParam(p, "xKey", cfg.XKey)
	cfg.YKey = keyParam(p, "yKey", cfg.YKey)
	return cfg
}

func keyParam(p Params, name string, fallback KeyCode) KeyCode {
	v, ok := p[name]
	if !ok {
		return fallback
	}
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return fallback
	}
	return KeyCode(n)
}

func boolParam(p Params, name string, fallback bool) bool {
	v, ok := p[name]
	if !ok {
		return fallback
	}
	b, err := strconv.ParseBool(strings.TrimSpace(v))
	if err != nil {
		return fallback
	}
	return b
}

// LoadParams reads a flat TOML table of parameters. Any read or parse
// failure yields an empty Params, so resolution degrades to the defaults.
func LoadParams(path string) Params {
	var raw map[string]any
	if _, err := toml.DecodeFile(path, &raw); err != nil {
		return Params{}
	}
	p := make(Params, len(raw))
	for k, v := range raw {
		switch v := v.(type) {
		case string:
			p[k] = v
		case bool, int64, float64:
			p[k] = fmt.Sprint(v)
		}
	}
	return p
}
