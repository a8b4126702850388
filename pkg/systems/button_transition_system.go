package systems

import (
	"github.com/decker502/buttontransitions/pkg/components"
	"github.com/decker502/buttontransitions/pkg/ecs"
	"github.com/decker502/buttontransitions/pkg/transition"
)

// ButtonTransitionSystem 按钮过渡系统
//
// 每帧对每个按钮调用 transition.Resolve，并把结果写入 ImageNodeComponent。
// 必须在交互状态确定之后、渲染之前运行。
//
// 默认每帧全部重新计算。开启变化检测后，(样式, 启用标志, 交互状态)
// 与上一次相同的按钮会被跳过；前提是只有本系统写 ImageNodeComponent 的
// 着色/图片字段，否则两种模式的结果会不同。
type ButtonTransitionSystem struct {
	entityManager   *ecs.EntityManager
	changeDetection bool
	lastInputs      map[ecs.EntityID]resolveInputs
}

// resolveInputs 一次解析的全部输入
type resolveInputs struct {
	style       transition.Style
	enabled     bool
	interaction transition.Interaction
}

// NewButtonTransitionSystem 创建按钮过渡系统
func NewButtonTransitionSystem(em *ecs.EntityManager) *ButtonTransitionSystem {
	return &ButtonTransitionSystem{
		entityManager: em,
		lastInputs:    make(map[ecs.EntityID]resolveInputs),
	}
}

// WithChangeDetection 开启或关闭变化检测，返回系统本身便于链式调用
func (s *ButtonTransitionSystem) WithChangeDetection(enabled bool) *ButtonTransitionSystem {
	s.changeDetection = enabled
	clear(s.lastInputs)
	return s
}

// Update 解析所有按钮的显示结果
//
// 返回本次实际写入渲染目标的按钮数量。
func (s *ButtonTransitionSystem) Update(deltaTime float64) int {
	entities := ecs.GetEntitiesWith4[
		*components.ButtonTransitionComponent,
		*components.InteractableComponent,
		*components.InteractionComponent,
		*components.ImageNodeComponent,
	](s.entityManager)

	var seen map[ecs.EntityID]bool
	if s.changeDetection {
		seen = make(map[ecs.EntityID]bool, len(entities))
	}

	written := 0
	for _, id := range entities {
		button, _ := ecs.GetComponent[*components.ButtonTransitionComponent](s.entityManager, id)
		interactable, _ := ecs.GetComponent[*components.InteractableComponent](s.entityManager, id)
		interaction, _ := ecs.GetComponent[*components.InteractionComponent](s.entityManager, id)
		node, _ := ecs.GetComponent[*components.ImageNodeComponent](s.entityManager, id)

		if button.Style == nil {
			continue
		}

		inputs := resolveInputs{
			style:       button.Style,
			enabled:     interactable.Enabled,
			interaction: interaction.State,
		}

		if s.changeDetection {
			seen[id] = true
			if last, ok := s.lastInputs[id]; ok && last == inputs {
				continue
			}
			s.lastInputs[id] = inputs
		}

		node.Apply(transition.Resolve(inputs.style, inputs.enabled, inputs.interaction))
		written++
	}

	// 清理已删除实体的缓存
	if s.changeDetection {
		for id := range s.lastInputs {
			if !seen[id] {
				delete(s.lastInputs, id)
			}
		}
	}

	return written
}
