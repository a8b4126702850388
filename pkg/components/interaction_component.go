package components

import "github.com/decker502/buttontransitions/pkg/transition"

// InteractionComponent 按钮当前的交互状态
//
// 由 ButtonInteractionSystem 根据指针命中检测维护。
type InteractionComponent struct {
	// State 当前交互状态（None/Hovered/Pressed）
	State transition.Interaction

	// PressStartedInside 本次按下是否从按钮内开始
	// 只有在按钮内开始的按下才会进入 Pressed 状态并在释放时触发点击
	PressStartedInside bool
}
