package components

import (
	"image/color"

	"github.com/decker502/buttontransitions/pkg/transition"
)

// ImageNodeComponent 按钮的渲染目标
//
// ButtonTransitionSystem 每帧把解析结果写到这里：
//   - ColorTint 写 Color（绘制时与图片相乘）
//   - ImageSwap 写 Image
//
// ColorTint 按钮需要一张基础图片，否则没有可着色的内容。
type ImageNodeComponent struct {
	// Image 要绘制的图片资源
	Image transition.ImageRef
	// Color 着色颜色，不透明白色表示不着色
	Color color.NRGBA
}

// NewImageNodeComponent 创建使用基础图片、不着色的渲染目标
func NewImageNodeComponent(image transition.ImageRef) *ImageNodeComponent {
	return &ImageNodeComponent{
		Image: image,
		Color: color.NRGBA{R: 255, G: 255, B: 255, A: 255},
	}
}

// Apply 把解析结果写入渲染目标
func (n *ImageNodeComponent) Apply(v transition.Visual) {
	switch v.Kind {
	case transition.VisualColor:
		n.Color = v.Color
	case transition.VisualImage:
		n.Image = v.Image
	}
}
