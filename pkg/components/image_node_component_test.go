package components

import (
	"image/color"
	"testing"

	"github.com/decker502/buttontransitions/pkg/transition"
)

func TestImageNodeApply(t *testing.T) {
	node := NewImageNodeComponent("base.png")

	tint := color.NRGBA{R: 200, G: 200, B: 200, A: 128}
	node.Apply(transition.ColorVisual(tint))
	if node.Color != tint {
		t.Errorf("Color = %v, want %v", node.Color, tint)
	}
	if node.Image != "base.png" {
		t.Errorf("color visual should keep base image, got %q", node.Image)
	}

	node.Apply(transition.ImageVisual("hovered.png"))
	if node.Image != "hovered.png" {
		t.Errorf("Image = %q, want hovered.png", node.Image)
	}
	if node.Color != tint {
		t.Errorf("image visual should keep color, got %v", node.Color)
	}
}

func TestClickableContains(t *testing.T) {
	c := &ClickableComponent{Width: 250, Height: 80}

	tests := []struct {
		name string
		x, y float64
		want bool
	}{
		{"inside", 300, 200, true},
		{"top-left corner", 275, 180, true},
		{"bottom-right corner", 525, 260, true},
		{"left of area", 274, 200, false},
		{"below area", 300, 261, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := c.Contains(275, 180, tt.x, tt.y); got != tt.want {
				t.Errorf("Contains(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestNewInteractableComponentDefaultsEnabled(t *testing.T) {
	if !NewInteractableComponent().Enabled {
		t.Error("interactable should default to enabled")
	}
}
