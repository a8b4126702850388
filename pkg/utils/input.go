// Package utils 提供宿主输入等通用工具
package utils

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// PointerState 当前帧的指针状态
// 统一处理鼠标和触摸输入
type PointerState struct {
	// 指针位置（屏幕坐标）
	X, Y float64
	// Down 主按钮（鼠标左键或触摸）是否按住
	Down bool
}

// PointerSource 指针状态来源
// 系统通过它读取输入，测试中可以替换为脚本化的实现
type PointerSource interface {
	PointerState() PointerState
}

// KeySource 键盘状态来源
type KeySource interface {
	IsKeyJustPressed(key ebiten.Key) bool
}

// EbitenPointer 从 Ebitengine 读取指针状态，优先使用触摸
type EbitenPointer struct {
	// 触摸释放的那一帧已经拿不到触摸位置，保存最后一次位置
	lastTouchX, lastTouchY int
	touching               bool
}

// PointerState 实现 PointerSource
func (p *EbitenPointer) PointerState() PointerState {
	touchIDs := ebiten.AppendTouchIDs(nil)
	if len(touchIDs) > 0 {
		p.lastTouchX, p.lastTouchY = ebiten.TouchPosition(touchIDs[0])
		p.touching = true
		return PointerState{X: float64(p.lastTouchX), Y: float64(p.lastTouchY), Down: true}
	}

	// 触摸刚释放：在最后位置报告一次抬起，之后指针离开
	if p.touching {
		p.touching = false
		return PointerState{X: float64(p.lastTouchX), Y: float64(p.lastTouchY)}
	}

	x, y := ebiten.CursorPosition()
	return PointerState{
		X:    float64(x),
		Y:    float64(y),
		Down: ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
	}
}

// EbitenKeys 从 Ebitengine 读取键盘状态
type EbitenKeys struct{}

// IsKeyJustPressed 实现 KeySource
func (EbitenKeys) IsKeyJustPressed(key ebiten.Key) bool {
	return inpututil.IsKeyJustPressed(key)
}

// ParseKey 把键名（如 "Space"、"Enter"，大小写不敏感）解析为 ebiten.Key
func ParseKey(name string) (ebiten.Key, error) {
	var key ebiten.Key
	if err := key.UnmarshalText([]byte(name)); err != nil {
		return 0, fmt.Errorf("invalid key name %q: %w", name, err)
	}
	return key, nil
}

// TouchToggleKeys 移动端的 KeySource：没有键盘时，第二根手指按下的那一帧
// 视为任意按键刚按下
type TouchToggleKeys struct{}

// IsKeyJustPressed 实现 KeySource，忽略 key
func (TouchToggleKeys) IsKeyJustPressed(ebiten.Key) bool {
	justPressed := len(inpututil.AppendJustPressedTouchIDs(nil))
	return secondTouchStarted(len(ebiten.AppendTouchIDs(nil)), justPressed)
}

// secondTouchStarted 本帧触摸数从不足两个变为至少两个
func secondTouchStarted(total, justPressed int) bool {
	return justPressed > 0 && total >= 2 && total-justPressed < 2
}
