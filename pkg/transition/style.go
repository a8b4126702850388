// Package transition 实现按钮过渡效果的核心逻辑
//
// 一个按钮声明一种过渡样式（颜色着色 ColorTint 或图片切换 ImageSwap），
// 每帧由 Resolve 根据启用标志和交互状态计算出唯一的显示结果。
// 本包不依赖渲染框架，不记录日志，也没有任何内部状态。
package transition

import (
	"errors"
	"fmt"
	"image/color"
)

// ErrIncompleteStyle 过渡样式缺少四个必填槽位之一
//
// 只在构造按钮时返回，解析阶段永远不会出现。
var ErrIncompleteStyle = errors.New("incomplete transition style")

// ImageRef 宿主加载的图片资源句柄（资源 ID 或路径）
//
// 对本包不透明，只负责保存和转发。空字符串表示未提供。
type ImageRef string

// Style 按钮过渡样式（封闭的和类型）
//
// 只有 ColorTint 和 ImageSwap 两种实现。每个变体自带 resolve 映射，
// 新增变体时必须实现该方法才能通过编译。
type Style interface {
	// Validate 检查四个槽位是否都已提供
	Validate() error

	resolve(enabled bool, interaction Interaction) Visual
}

// ColorTint 颜色着色过渡：为四种状态各指定一个颜色
type ColorTint struct {
	Normal   color.NRGBA
	Hovered  color.NRGBA
	Pressed  color.NRGBA
	Disabled color.NRGBA
}

// DefaultColorTint 返回默认的着色方案
//
// 正常为不透明白色，悬停为接近白色，按下为中灰，禁用为半透明中灰。
func DefaultColorTint() ColorTint {
	return ColorTint{
		Normal:   color.NRGBA{R: 255, G: 255, B: 255, A: 255},
		Hovered:  color.NRGBA{R: 245, G: 245, B: 245, A: 255},
		Pressed:  color.NRGBA{R: 200, G: 200, B: 200, A: 255},
		Disabled: color.NRGBA{R: 200, G: 200, B: 200, A: 128},
	}
}

// Validate 颜色在值类型中总是存在，ColorTint 总是完整的
func (t ColorTint) Validate() error {
	return nil
}

func (t ColorTint) resolve(enabled bool, interaction Interaction) Visual {
	return ColorVisual(pick(enabled, interaction, t.Normal, t.Hovered, t.Pressed, t.Disabled))
}

// ImageSwap 图片切换过渡：为四种状态各指定一张图片
//
// 没有默认值，四张图片都必须显式提供。
type ImageSwap struct {
	Normal   ImageRef
	Hovered  ImageRef
	Pressed  ImageRef
	Disabled ImageRef
}

// NewImageSwap 创建图片切换过渡，任一图片为空时返回 ErrIncompleteStyle
func NewImageSwap(normal, hovered, pressed, disabled ImageRef) (ImageSwap, error) {
	swap := ImageSwap{
		Normal:   normal,
		Hovered:  hovered,
		Pressed:  pressed,
		Disabled: disabled,
	}
	if err := swap.Validate(); err != nil {
		return ImageSwap{}, err
	}
	return swap, nil
}

// Validate 检查四张图片是否都已提供
func (s ImageSwap) Validate() error {
	slots := []struct {
		name string
		ref  ImageRef
	}{
		{"normal", s.Normal},
		{"hovered", s.Hovered},
		{"pressed", s.Pressed},
		{"disabled", s.Disabled},
	}
	for _, slot := range slots {
		if slot.ref == "" {
			return fmt.Errorf("image swap %s image missing: %w", slot.name, ErrIncompleteStyle)
		}
	}
	return nil
}

func (s ImageSwap) resolve(enabled bool, interaction Interaction) Visual {
	return ImageVisual(pick(enabled, interaction, s.Normal, s.Hovered, s.Pressed, s.Disabled))
}
