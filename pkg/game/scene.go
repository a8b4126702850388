package game

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Scene is one screen of the application driven by the Ebitengine loop.
type Scene interface {
	// Update advances the scene by deltaTime seconds.
	Update(deltaTime float64)

	// Draw renders the scene to screen.
	Draw(screen *ebiten.Image)
}

// Saveable 是一个可选接口，场景在程序退出时保存状态
//
// 例如按钮场景在退出时写入各按钮的启用标志。
type Saveable interface {
	// SaveOnExit 返回 false 表示保存失败（程序仍会正常退出）
	SaveOnExit() bool
}
