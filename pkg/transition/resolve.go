package transition

import (
	"fmt"
	"image/color"
)

// VisualKind 解析结果的类型
type VisualKind int

const (
	// VisualColor 结果是一个颜色（写入渲染目标的着色）
	VisualColor VisualKind = iota
	// VisualImage 结果是一张图片（写入渲染目标的图片）
	VisualImage
)

// Visual 一次解析的结果
//
// 没有独立身份，每次解析都重新计算。Kind 决定 Color 和 Image 哪个有效。
type Visual struct {
	Kind  VisualKind
	Color color.NRGBA
	Image ImageRef
}

// ColorVisual 构造颜色结果
func ColorVisual(c color.NRGBA) Visual {
	return Visual{Kind: VisualColor, Color: c}
}

// ImageVisual 构造图片结果
func ImageVisual(ref ImageRef) Visual {
	return Visual{Kind: VisualImage, Image: ref}
}

func (v Visual) String() string {
	if v.Kind == VisualImage {
		return fmt.Sprintf("image(%s)", v.Image)
	}
	return fmt.Sprintf("color(#%02x%02x%02x%02x)", v.Color.R, v.Color.G, v.Color.B, v.Color.A)
}

// Resolve 计算按钮本帧应显示的颜色或图片
//
// 禁用状态优先于交互状态：enabled 为 false 时总是返回 disabled 槽位，
// 不论指针是否悬停或按下。启用时 None/Hovered/Pressed 分别映射到
// normal/hovered/pressed。
//
// 纯函数：相同输入总是得到相同输出，不产生错误。把结果写回渲染目标是调用者的责任。
func Resolve(style Style, enabled bool, interaction Interaction) Visual {
	return style.resolve(enabled, interaction)
}

func pick[T any](enabled bool, interaction Interaction, normal, hovered, pressed, disabled T) T {
	if !enabled {
		return disabled
	}
	switch interaction {
	case InteractionNone:
		return normal
	case InteractionHovered:
		return hovered
	case InteractionPressed:
		return pressed
	}
	panic(fmt.Sprintf("transition: unknown interaction %d", int(interaction)))
}
