package components

import "github.com/decker502/buttontransitions/pkg/transition"

// ButtonTransitionComponent 按钮过渡组件
//
// 保存按钮在创建时声明的过渡样式（ColorTint 或 ImageSwap），之后不再修改。
// 必须与 InteractableComponent、InteractionComponent、ImageNodeComponent
// 一起存在，由 entities.NewTransitionButton 一次性创建。
type ButtonTransitionComponent struct {
	// Style 过渡样式
	Style transition.Style
}
