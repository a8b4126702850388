package systems

import (
	"log"

	"github.com/decker502/buttontransitions/pkg/components"
	"github.com/decker502/buttontransitions/pkg/ecs"
	"github.com/decker502/buttontransitions/pkg/transition"
	"github.com/decker502/buttontransitions/pkg/utils"
)

// ButtonInteractionSystem 按钮交互状态系统（宿主输入侧）
//
// 根据指针命中检测维护每个按钮的 InteractionComponent：
//   - 指针在区域外 → None
//   - 指针在区域内、未按下 → Hovered
//   - 在区域内开始按下且仍在区域内 → Pressed
//   - 在区域内释放 → Hovered；在区域外释放 → None
//
// 禁用按钮的交互状态照常更新，禁用优先级由 ButtonTransitionSystem 处理；
// 只有点击回调会检查 InteractableComponent。
type ButtonInteractionSystem struct {
	entityManager *ecs.EntityManager
	pointer       utils.PointerSource
	wasDown       bool
}

// NewButtonInteractionSystem 创建按钮交互系统
func NewButtonInteractionSystem(em *ecs.EntityManager, pointer utils.PointerSource) *ButtonInteractionSystem {
	return &ButtonInteractionSystem{
		entityManager: em,
		pointer:       pointer,
	}
}

// Update 读取本帧指针状态并更新所有按钮的交互状态
func (s *ButtonInteractionSystem) Update(deltaTime float64) {
	ptr := s.pointer.PointerState()
	justPressed := ptr.Down && !s.wasDown
	justReleased := !ptr.Down && s.wasDown
	s.wasDown = ptr.Down

	entities := ecs.GetEntitiesWith3[
		*components.InteractionComponent,
		*components.ClickableComponent,
		*components.PositionComponent,
	](s.entityManager)

	for _, id := range entities {
		interaction, _ := ecs.GetComponent[*components.InteractionComponent](s.entityManager, id)
		clickable, _ := ecs.GetComponent[*components.ClickableComponent](s.entityManager, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)

		inside := clickable.Contains(pos.X, pos.Y, ptr.X, ptr.Y)

		if justPressed {
			interaction.PressStartedInside = inside
		}

		if justReleased {
			if inside && interaction.PressStartedInside && s.isEnabled(id) && clickable.OnClick != nil {
				log.Printf("[ButtonInteractionSystem] Button %d clicked", id)
				clickable.OnClick()
			}
			interaction.PressStartedInside = false
		}

		switch {
		case !inside:
			interaction.State = transition.InteractionNone
		case ptr.Down && interaction.PressStartedInside:
			interaction.State = transition.InteractionPressed
		default:
			interaction.State = transition.InteractionHovered
		}
	}
}

// isEnabled 没有 InteractableComponent 的按钮视为启用
func (s *ButtonInteractionSystem) isEnabled(id ecs.EntityID) bool {
	interactable, ok := ecs.GetComponent[*components.InteractableComponent](s.entityManager, id)
	return !ok || interactable.Enabled
}
