package entities

import (
	"fmt"
	"log"

	"github.com/decker502/buttontransitions/pkg/components"
	"github.com/decker502/buttontransitions/pkg/config"
	"github.com/decker502/buttontransitions/pkg/ecs"
	"github.com/decker502/buttontransitions/pkg/transition"
)

// ButtonSpec 创建过渡按钮所需的参数
type ButtonSpec struct {
	// Name 按钮名称（用于持久化启用状态，可为空）
	Name string
	// Style 过渡样式，必须完整
	Style transition.Style
	// X, Y 左上角屏幕坐标
	X, Y float64
	// Width, Height 可点击区域与绘制尺寸
	Width, Height float64
	// BaseImage 初始图片；ImageSwap 按钮为空时使用 normal 图片
	BaseImage transition.ImageRef
	// Disabled 创建时即禁用（默认启用）
	Disabled bool
	// OnClick 点击回调，可为 nil
	OnClick func()
}

// NewTransitionButton 创建过渡按钮实体
//
// 先验证样式，再一次性挂上按钮需要的全部组件：
//   - ButtonTransitionComponent（过渡样式）
//   - InteractableComponent（启用标志）
//   - InteractionComponent（交互状态，初始 None）
//   - ImageNodeComponent（渲染目标）
//   - PositionComponent、ClickableComponent（命中检测与绘制区域）
//   - NameComponent（Name 非空时）
//
// 样式不完整时返回错误，且不会创建实体。
//
// 返回：
//   - 按钮实体ID
//   - 错误信息
func NewTransitionButton(em *ecs.EntityManager, spec ButtonSpec) (ecs.EntityID, error) {
	if spec.Style == nil {
		return 0, fmt.Errorf("button %q: %w", spec.Name, transition.ErrIncompleteStyle)
	}
	if err := spec.Style.Validate(); err != nil {
		return 0, fmt.Errorf("button %q: %w", spec.Name, err)
	}

	base := spec.BaseImage
	if swap, ok := spec.Style.(transition.ImageSwap); ok && base == "" {
		base = swap.Normal
	}

	entity := em.CreateEntity()

	ecs.AddComponent(em, entity, &components.ButtonTransitionComponent{Style: spec.Style})
	ecs.AddComponent(em, entity, &components.InteractableComponent{Enabled: !spec.Disabled})
	ecs.AddComponent(em, entity, &components.InteractionComponent{State: transition.InteractionNone})
	ecs.AddComponent(em, entity, components.NewImageNodeComponent(base))
	ecs.AddComponent(em, entity, &components.PositionComponent{X: spec.X, Y: spec.Y})
	ecs.AddComponent(em, entity, &components.ClickableComponent{
		Width:   spec.Width,
		Height:  spec.Height,
		OnClick: spec.OnClick,
	})
	if spec.Name != "" {
		ecs.AddComponent(em, entity, &components.NameComponent{Name: spec.Name})
	}

	return entity, nil
}

// NewButtonsFromConfig 按配置顺序创建所有按钮
//
// enabledFor 返回某个按钮的初始启用状态（例如从存档恢复），可为 nil，
// 此时使用配置中的 enabled 值。任一按钮失败时返回错误，已创建的按钮被标记删除。
func NewButtonsFromConfig(
	em *ecs.EntityManager,
	cfg *config.ButtonTransitionConfig,
	enabledFor func(name string, fallback bool) bool,
) ([]ecs.EntityID, error) {
	ids := make([]ecs.EntityID, 0, len(cfg.Buttons))

	for i := range cfg.Buttons {
		b := &cfg.Buttons[i]

		style, err := b.Style()
		if err != nil {
			destroyAll(em, ids)
			return nil, fmt.Errorf("button %q: %w", b.Name, err)
		}

		enabled := b.InitiallyEnabled()
		if enabledFor != nil {
			enabled = enabledFor(b.Name, enabled)
		}

		id, err := NewTransitionButton(em, ButtonSpec{
			Name:      b.Name,
			Style:     style,
			X:         b.X,
			Y:         b.Y,
			Width:     b.Width,
			Height:    b.Height,
			BaseImage: b.BaseImage(),
			Disabled:  !enabled,
		})
		if err != nil {
			destroyAll(em, ids)
			return nil, err
		}
		ids = append(ids, id)
	}

	log.Printf("[ButtonFactory] Created %d buttons from config", len(ids))
	return ids, nil
}

func destroyAll(em *ecs.EntityManager, ids []ecs.EntityID) {
	for _, id := range ids {
		em.DestroyEntity(id)
	}
	em.RemoveMarkedEntities()
}
