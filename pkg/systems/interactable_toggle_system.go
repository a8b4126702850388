package systems

import (
	"log"

	"github.com/decker502/buttontransitions/pkg/components"
	"github.com/decker502/buttontransitions/pkg/ecs"
	"github.com/decker502/buttontransitions/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
)

// InteractableToggleSystem 全局启用切换系统
//
// 切换键刚按下时，把每个按钮的启用标志各自取反。
// 这是应用层逻辑，是唯一修改 InteractableComponent 的地方。
type InteractableToggleSystem struct {
	entityManager *ecs.EntityManager
	keys          utils.KeySource
	toggleKey     ebiten.Key

	// OnToggle 切换完成后调用，可为 nil（例如用于持久化）
	OnToggle func()
}

// NewInteractableToggleSystem 创建切换系统
func NewInteractableToggleSystem(em *ecs.EntityManager, keys utils.KeySource, toggleKey ebiten.Key) *InteractableToggleSystem {
	return &InteractableToggleSystem{
		entityManager: em,
		keys:          keys,
		toggleKey:     toggleKey,
	}
}

// Update 检测切换键
func (s *InteractableToggleSystem) Update(deltaTime float64) {
	if !s.keys.IsKeyJustPressed(s.toggleKey) {
		return
	}
	s.ToggleAll()
}

// ToggleAll 把所有按钮的启用标志取反，返回受影响的按钮数量
func (s *InteractableToggleSystem) ToggleAll() int {
	entities := ecs.GetEntitiesWith1[*components.InteractableComponent](s.entityManager)
	for _, id := range entities {
		interactable, _ := ecs.GetComponent[*components.InteractableComponent](s.entityManager, id)
		interactable.Enabled = !interactable.Enabled
	}

	log.Printf("[InteractableToggleSystem] Toggled %d buttons", len(entities))

	if s.OnToggle != nil {
		s.OnToggle()
	}
	return len(entities)
}
