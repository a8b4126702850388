package entities

import (
	"errors"
	"image/color"
	"testing"

	"github.com/decker502/buttontransitions/pkg/components"
	"github.com/decker502/buttontransitions/pkg/config"
	"github.com/decker502/buttontransitions/pkg/ecs"
	"github.com/decker502/buttontransitions/pkg/transition"
)

func TestNewTransitionButtonCreatesFullBundle(t *testing.T) {
	em := ecs.NewEntityManager()

	id, err := NewTransitionButton(em, ButtonSpec{
		Name:      "tint",
		Style:     transition.DefaultColorTint(),
		X:         275,
		Y:         160,
		Width:     250,
		Height:    80,
		BaseImage: "normal_image",
	})
	if err != nil {
		t.Fatalf("NewTransitionButton() error: %v", err)
	}

	button, ok := ecs.GetComponent[*components.ButtonTransitionComponent](em, id)
	if !ok {
		t.Fatal("missing ButtonTransitionComponent")
	}
	if button.Style != transition.DefaultColorTint() {
		t.Errorf("Style = %+v, want default tint", button.Style)
	}

	interactable, ok := ecs.GetComponent[*components.InteractableComponent](em, id)
	if !ok || !interactable.Enabled {
		t.Error("button should carry an enabled InteractableComponent")
	}

	interaction, ok := ecs.GetComponent[*components.InteractionComponent](em, id)
	if !ok || interaction.State != transition.InteractionNone {
		t.Error("button should start with interaction None")
	}

	node, ok := ecs.GetComponent[*components.ImageNodeComponent](em, id)
	if !ok {
		t.Fatal("missing ImageNodeComponent")
	}
	if node.Image != "normal_image" || node.Color != (color.NRGBA{R: 255, G: 255, B: 255, A: 255}) {
		t.Errorf("ImageNode = %+v, want base image with white tint", node)
	}

	clickable, ok := ecs.GetComponent[*components.ClickableComponent](em, id)
	if !ok || clickable.Width != 250 || clickable.Height != 80 {
		t.Errorf("Clickable = %+v, want 250x80", clickable)
	}

	name, ok := ecs.GetComponent[*components.NameComponent](em, id)
	if !ok || name.Name != "tint" {
		t.Errorf("Name = %+v, want tint", name)
	}
}

func TestNewTransitionButtonImageSwapBaseImage(t *testing.T) {
	em := ecs.NewEntityManager()
	swap, _ := transition.NewImageSwap("A", "B", "C", "D")

	id, err := NewTransitionButton(em, ButtonSpec{Style: swap, Width: 10, Height: 10, Disabled: true})
	if err != nil {
		t.Fatalf("NewTransitionButton() error: %v", err)
	}

	node, _ := ecs.GetComponent[*components.ImageNodeComponent](em, id)
	if node.Image != "A" {
		t.Errorf("base image = %q, want normal image A", node.Image)
	}
	interactable, _ := ecs.GetComponent[*components.InteractableComponent](em, id)
	if interactable.Enabled {
		t.Error("Disabled spec should create a disabled button")
	}
	if ecs.HasComponent[*components.NameComponent](em, id) {
		t.Error("unnamed button should not get a NameComponent")
	}
}

func TestNewTransitionButtonRejectsIncompleteStyle(t *testing.T) {
	tests := []struct {
		name  string
		style transition.Style
	}{
		{"nil style", nil},
		{"image swap without disabled", transition.ImageSwap{Normal: "A", Hovered: "B", Pressed: "C"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			em := ecs.NewEntityManager()
			_, err := NewTransitionButton(em, ButtonSpec{Name: "bad", Style: tt.style, Width: 1, Height: 1})
			if !errors.Is(err, transition.ErrIncompleteStyle) {
				t.Errorf("error = %v, want ErrIncompleteStyle", err)
			}
			if em.Count() != 0 {
				t.Errorf("no entity should be created, got %d", em.Count())
			}
		})
	}
}

func TestNewButtonsFromConfig(t *testing.T) {
	cfg, err := config.ParseButtonTransitionConfig([]byte(`
buttons:
  - {name: tint, x: 1, y: 2, width: 30, height: 10, image: base}
  - name: swap
    width: 30
    height: 10
    enabled: false
    imageSwap: {normal: n, hovered: h, pressed: p, disabled: d}
`))
	if err != nil {
		t.Fatalf("ParseButtonTransitionConfig() error: %v", err)
	}

	em := ecs.NewEntityManager()
	saved := map[string]bool{"tint": false}
	ids, err := NewButtonsFromConfig(em, cfg, func(name string, fallback bool) bool {
		if v, ok := saved[name]; ok {
			return v
		}
		return fallback
	})
	if err != nil {
		t.Fatalf("NewButtonsFromConfig() error: %v", err)
	}
	if len(ids) != 2 {
		t.Fatalf("len(ids) = %d, want 2", len(ids))
	}

	tint, _ := ecs.GetComponent[*components.InteractableComponent](em, ids[0])
	if tint.Enabled {
		t.Error("saved state should disable tint")
	}
	swap, _ := ecs.GetComponent[*components.InteractableComponent](em, ids[1])
	if swap.Enabled {
		t.Error("config fallback should disable swap")
	}

	node, _ := ecs.GetComponent[*components.ImageNodeComponent](em, ids[1])
	if node.Image != "n" {
		t.Errorf("swap base image = %q, want n", node.Image)
	}
}

func TestNewButtonsFromConfigRollsBack(t *testing.T) {
	// 绕过 Validate，模拟外部构造的不完整配置
	cfg := &config.ButtonTransitionConfig{
		Buttons: []config.ButtonConfig{
			{Name: "ok", Width: 10, Height: 10},
			{Name: "bad", Width: 10, Height: 10, ImageSwap: &config.ImageSwapConfig{Normal: "n"}},
		},
	}

	em := ecs.NewEntityManager()
	if _, err := NewButtonsFromConfig(em, cfg, nil); !errors.Is(err, transition.ErrIncompleteStyle) {
		t.Fatalf("error = %v, want ErrIncompleteStyle", err)
	}
	if em.Count() != 0 {
		t.Errorf("partially created buttons should be removed, %d remain", em.Count())
	}
}
