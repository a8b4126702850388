package app

import (
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/decker502/buttontransitions/pkg/embedded"
	"github.com/decker502/buttontransitions/pkg/game"
)

func TestLoadButtonConfigFromEmbedded(t *testing.T) {
	data, err := os.ReadFile(filepath.Join("..", "..", "data", "button_transitions.yaml"))
	if err != nil {
		t.Fatalf("ReadFile() error: %v", err)
	}
	embedded.Init(fstest.MapFS{
		"data/button_transitions.yaml": {Data: data},
	})

	cfg, err := loadButtonConfig("")
	if err != nil {
		t.Fatalf("loadButtonConfig() error: %v", err)
	}
	if len(cfg.Buttons) == 0 {
		t.Error("embedded config should define buttons")
	}
}

func TestLoadButtonConfigFromPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "buttons.yaml")
	content := "buttons:\n  - {name: a, width: 1, height: 1, image: base}\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile() error: %v", err)
	}

	cfg, err := loadButtonConfig(path)
	if err != nil {
		t.Fatalf("loadButtonConfig() error: %v", err)
	}
	if len(cfg.Buttons) != 1 || cfg.Buttons[0].Name != "a" {
		t.Errorf("unexpected buttons %+v", cfg.Buttons)
	}
}

func TestRegisterPlaceholderImages(t *testing.T) {
	store, err := game.NewImageStore(nil, 0)
	if err != nil {
		t.Fatalf("NewImageStore() error: %v", err)
	}
	RegisterPlaceholderImages(store)

	for ref := range placeholderColors {
		if _, err := store.Load(ref); err != nil {
			t.Errorf("placeholder %q not registered: %v", ref, err)
		}
	}
}
