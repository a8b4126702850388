package scenes

import (
	"os"
	"testing"

	"github.com/decker502/buttontransitions/pkg/components"
	"github.com/decker502/buttontransitions/pkg/config"
	"github.com/decker502/buttontransitions/pkg/ecs"
	"github.com/decker502/buttontransitions/pkg/game"
	"github.com/decker502/buttontransitions/pkg/transition"
	"github.com/decker502/buttontransitions/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/quasilyte/gdata/v2"
)

type testPointer struct{ state utils.PointerState }

func (p *testPointer) PointerState() utils.PointerState { return p.state }

type testKeys struct{ space bool }

func (k *testKeys) IsKeyJustPressed(key ebiten.Key) bool {
	return k.space && key == ebiten.KeySpace
}

type testImages map[transition.ImageRef]*ebiten.Image

func (m testImages) Get(ref transition.ImageRef) *ebiten.Image { return m[ref] }

const testSceneConfig = `
toggleKey: Space
buttons:
  - {name: tint, x: 0, y: 0, width: 100, height: 50, image: base}
  - name: swap
    x: 0
    y: 100
    width: 100
    height: 50
    imageSwap: {normal: A, hovered: B, pressed: C, disabled: D}
`

func newTestScene(t *testing.T, states *game.EnableStateStore) (*ButtonScene, *testPointer, *testKeys) {
	t.Helper()

	cfg, err := config.ParseButtonTransitionConfig([]byte(testSceneConfig))
	if err != nil {
		t.Fatalf("ParseButtonTransitionConfig() error: %v", err)
	}

	pointer := &testPointer{}
	keys := &testKeys{}
	scene, err := NewButtonScene(ButtonSceneOptions{
		Config:  cfg,
		Images:  testImages{},
		States:  states,
		Pointer: pointer,
		Keys:    keys,
	})
	if err != nil {
		t.Fatalf("NewButtonScene() error: %v", err)
	}
	return scene, pointer, keys
}

func imageOf(t *testing.T, scene *ButtonScene, id ecs.EntityID) *components.ImageNodeComponent {
	t.Helper()
	node, ok := ecs.GetComponent[*components.ImageNodeComponent](scene.EntityManager(), id)
	if !ok {
		t.Fatalf("entity %d has no ImageNodeComponent", id)
	}
	return node
}

func TestButtonSceneResolvesEachFrame(t *testing.T) {
	scene, pointer, keys := newTestScene(t, nil)
	buttons := scene.Buttons()
	if len(buttons) != 2 {
		t.Fatalf("len(Buttons()) = %d, want 2", len(buttons))
	}
	swap := imageOf(t, scene, buttons[1])

	if swap.Image != "A" {
		t.Errorf("initial swap image = %q, want A", swap.Image)
	}

	pointer.state = utils.PointerState{X: 50, Y: 120}
	scene.Update(1.0 / 60.0)
	if swap.Image != "B" {
		t.Errorf("hovered swap image = %q, want B", swap.Image)
	}

	keys.space = true
	scene.Update(1.0 / 60.0)
	keys.space = false
	if swap.Image != "D" {
		t.Errorf("after toggle swap image = %q, want D", swap.Image)
	}

	tint := imageOf(t, scene, buttons[0])
	if tint.Color != transition.DefaultColorTint().Disabled {
		t.Errorf("after toggle tint color = %v, want disabled tint", tint.Color)
	}

	keys.space = true
	scene.Update(1.0 / 60.0)
	if swap.Image != "B" {
		t.Errorf("after second toggle swap image = %q, want B", swap.Image)
	}
}

func TestButtonSceneBadToggleKey(t *testing.T) {
	cfg, _ := config.ParseButtonTransitionConfig([]byte(testSceneConfig))
	cfg.ToggleKey = "NotAKey"

	_, err := NewButtonScene(ButtonSceneOptions{Config: cfg, Images: testImages{}, Pointer: &testPointer{}, Keys: &testKeys{}})
	if err == nil {
		t.Error("expected error for unknown toggle key")
	}
}

func TestButtonSceneHint(t *testing.T) {
	scene, _, _ := newTestScene(t, nil)
	if scene.hint != "Press Space to toggle interactability" {
		t.Errorf("default hint = %q", scene.hint)
	}

	cfg, _ := config.ParseButtonTransitionConfig([]byte(testSceneConfig))
	custom, err := NewButtonScene(ButtonSceneOptions{
		Config:  cfg,
		Images:  testImages{},
		Pointer: &testPointer{},
		Keys:    &testKeys{},
		Hint:    "tap",
	})
	if err != nil {
		t.Fatalf("NewButtonScene() error: %v", err)
	}
	if custom.hint != "tap" {
		t.Errorf("custom hint = %q, want tap", custom.hint)
	}
}

func TestButtonScenePersistsToggle(t *testing.T) {
	tempDir := t.TempDir()
	originalHome := os.Getenv("HOME")
	os.Setenv("HOME", tempDir)
	defer os.Setenv("HOME", originalHome)

	manager, err := gdata.Open(gdata.Config{AppName: "test_button_scene"})
	if err != nil {
		t.Fatalf("Failed to create gdata manager: %v", err)
	}

	scene, _, keys := newTestScene(t, game.NewEnableStateStore(manager))
	keys.space = true
	scene.Update(1.0 / 60.0)

	// 新场景从存档恢复禁用状态
	restored, _, _ := newTestScene(t, game.NewEnableStateStore(manager))
	for _, id := range restored.Buttons() {
		interactable, _ := ecs.GetComponent[*components.InteractableComponent](restored.EntityManager(), id)
		if interactable.Enabled {
			t.Errorf("button %d should be restored as disabled", id)
		}
	}
	swap := imageOf(t, restored, restored.Buttons()[1])
	if swap.Image != "D" {
		t.Errorf("restored swap image = %q, want D", swap.Image)
	}

	if !restored.SaveOnExit() {
		t.Error("SaveOnExit() should succeed")
	}
}
