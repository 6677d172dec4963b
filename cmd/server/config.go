package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sync"
	"time"

	mandel "github.com/marben/mandel_view"
	"github.com/marben/mandel_view/render"
	"github.com/marben/mandel_view/viewport"
)

// Config is the JSON configuration file of the server.
type Config struct {
	Port      int    `json:"port"`
	TCPPort   int    `json:"tcp_port"` // 0 disables the raw TCP listener
	StaticDir string `json:"static_dir"`

	View     string `json:"view"`     // view string, empty fields take the algorithm defaults
	Landmark string `json:"landmark"` // overrides the view's region when set

	Width  int `json:"width"`  // window size in pixels
	Height int `json:"height"` // window size in pixels

	Order          string `json:"order"`
	BatchPixels    int    `json:"batch_pixels"`
	MoveDebounceMs int    `json:"move_debounce_ms"`
	PushIntervalMs int    `json:"push_interval_ms"`
}

func defaultConfig() Config {
	return Config{
		Port:           8080,
		TCPPort:        8081,
		StaticDir:      "./static",
		View:           mandel.DefaultView(mandel.Normal).String(),
		Width:          1920,
		Height:         1080,
		Order:          render.TopToBottom.String(),
		BatchPixels:    render.DefaultBatch,
		MoveDebounceMs: int(viewport.DefaultMoveDebounce / time.Millisecond),
		PushIntervalMs: 100,
	}
}

// LoadConfig reads a config file on top of the defaults. A missing file
// yields the defaults.
func LoadConfig(filename string) (Config, error) {
	cfg := defaultConfig()
	data, err := os.ReadFile(filename)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config: %w", err)
	}
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config %q: %w", filename, err)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, fmt.Errorf("config %q: %w", filename, err)
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.Width < 1 || c.Height < 1 {
		return fmt.Errorf("window %dx%d: %w", c.Width, c.Height, viewport.ErrInvalidSize)
	}
	if _, err := c.InitialView(); err != nil {
		return err
	}
	if _, err := render.ParseOrder(c.Order); err != nil {
		return err
	}
	if c.PushIntervalMs <= 0 {
		return fmt.Errorf("push_interval_ms must be positive, got %d", c.PushIntervalMs)
	}
	return nil
}

// InitialView is the configured view with the landmark applied.
func (c Config) InitialView() (mandel.View, error) {
	v, err := mandel.ParseView(c.View)
	if err != nil {
		return mandel.View{}, err
	}
	if c.Landmark != "" {
		r, ok := mandel.Landmark(c.Landmark)
		if !ok {
			return mandel.View{}, fmt.Errorf("unknown landmark %q", c.Landmark)
		}
		v.Region = r
	}
	return v, nil
}

// RenderOrder is the parsed render order. The config is validated on load.
func (c Config) RenderOrder() render.Order {
	o, _ := render.ParseOrder(c.Order)
	return o
}

func (c Config) MoveDebounce() time.Duration {
	return time.Duration(c.MoveDebounceMs) * time.Millisecond
}

func (c Config) PushInterval() time.Duration {
	return time.Duration(c.PushIntervalMs) * time.Millisecond
}

// liveConfig is the part of the config that can change while running.
type liveConfig struct {
	mu  sync.RWMutex
	cfg Config
}

func (l *liveConfig) Get() Config {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.cfg
}

func (l *liveConfig) Set(c Config) {
	l.mu.Lock()
	l.cfg = c
	l.mu.Unlock()
}
