package main

import (
	"os"
	"path/filepath"
	"testing"

	mandel "github.com/marben/mandel_view"
	"github.com/marben/mandel_view/render"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	fn := filepath.Join(t.TempDir(), "mandel.json")
	if err := os.WriteFile(fn, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return fn
}

func TestLoadConfigMissingFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.json"))
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg != defaultConfig() {
		t.Fatalf("cfg = %+v, want defaults", cfg)
	}
	v, err := cfg.InitialView()
	if err != nil {
		t.Fatal(err)
	}
	if v != mandel.DefaultView(mandel.Normal) {
		t.Fatalf("view = %s", v)
	}
}

func TestLoadConfigOverrides(t *testing.T) {
	fn := writeConfig(t, `{"port": 9000, "order": "random", "landmark": "spiral", "view": "1:,,,:,,,", "move_debounce_ms": 50}`)
	cfg, err := LoadConfig(fn)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Port != 9000 || cfg.TCPPort != 8081 {
		t.Fatalf("ports = %d, %d", cfg.Port, cfg.TCPPort)
	}
	if cfg.RenderOrder() != render.RandomPermutation {
		t.Fatalf("order = %s", cfg.RenderOrder())
	}
	if cfg.MoveDebounce().Milliseconds() != 50 {
		t.Fatalf("move debounce = %s", cfg.MoveDebounce())
	}

	v, err := cfg.InitialView()
	if err != nil {
		t.Fatal(err)
	}
	spiral, _ := mandel.Landmark("spiral")
	if v.Algorithm != mandel.Spiky || v.Region != spiral {
		t.Fatalf("view = %s", v)
	}
}

func TestLoadConfigInvalid(t *testing.T) {
	for _, body := range []string{
		`{`,
		`{"width": 0}`,
		`{"view": "9:,,,:,,,"}`,
		`{"landmark": "atlantis"}`,
		`{"order": "sideways"}`,
		`{"push_interval_ms": 0}`,
	} {
		if _, err := LoadConfig(writeConfig(t, body)); err == nil {
			t.Errorf("LoadConfig(%s) succeeded", body)
		}
	}
}
