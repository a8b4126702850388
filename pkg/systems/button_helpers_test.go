package systems

import (
	"testing"

	"github.com/decker502/buttontransitions/pkg/ecs"
	"github.com/decker502/buttontransitions/pkg/entities"
	"github.com/decker502/buttontransitions/pkg/transition"
	"github.com/decker502/buttontransitions/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
)

// scriptedPointer 返回预设的指针状态
type scriptedPointer struct {
	state utils.PointerState
}

func (p *scriptedPointer) PointerState() utils.PointerState {
	return p.state
}

func (p *scriptedPointer) moveTo(x, y float64) {
	p.state.X, p.state.Y = x, y
}

// scriptedKeys 记录本帧"刚按下"的按键
type scriptedKeys struct {
	pressed map[ebiten.Key]bool
}

func (k *scriptedKeys) IsKeyJustPressed(key ebiten.Key) bool {
	return k.pressed[key]
}

func (k *scriptedKeys) press(key ebiten.Key) {
	k.pressed = map[ebiten.Key]bool{key: true}
}

func (k *scriptedKeys) release() {
	k.pressed = nil
}

// newTestImageSwapButton 在 (100,100) 创建 100x50 的 ImageSwap 按钮 A/B/C/D
func newTestImageSwapButton(t *testing.T, em *ecs.EntityManager, onClick func()) ecs.EntityID {
	t.Helper()

	swap, err := transition.NewImageSwap("A", "B", "C", "D")
	if err != nil {
		t.Fatalf("NewImageSwap() error: %v", err)
	}
	id, err := entities.NewTransitionButton(em, entities.ButtonSpec{
		Name:    "swap",
		Style:   swap,
		X:       100,
		Y:       100,
		Width:   100,
		Height:  50,
		OnClick: onClick,
	})
	if err != nil {
		t.Fatalf("NewTransitionButton() error: %v", err)
	}
	return id
}
