package systems

import (
	"github.com/decker502/buttontransitions/pkg/components"
	"github.com/decker502/buttontransitions/pkg/ecs"
	"github.com/decker502/buttontransitions/pkg/transition"
	"github.com/hajimehoshi/ebiten/v2"
)

// ImageSource 渲染时把图片句柄解析为可绘制图片
//
// 返回 nil 表示图片不可用，该按钮本帧不绘制。
type ImageSource interface {
	Get(ref transition.ImageRef) *ebiten.Image
}

// ButtonRenderSystem 按钮渲染系统
//
// 绘制 ImageNodeComponent 中的图片，缩放到可点击区域大小，
// 并用 ImageNodeComponent.Color 着色（与图片像素相乘）。
type ButtonRenderSystem struct {
	entityManager *ecs.EntityManager
	images        ImageSource
}

// NewButtonRenderSystem 创建按钮渲染系统
func NewButtonRenderSystem(em *ecs.EntityManager, images ImageSource) *ButtonRenderSystem {
	return &ButtonRenderSystem{
		entityManager: em,
		images:        images,
	}
}

// Draw 按实体 ID 顺序绘制所有按钮
func (s *ButtonRenderSystem) Draw(screen *ebiten.Image) {
	entities := ecs.GetEntitiesWith2[*components.ImageNodeComponent, *components.PositionComponent](s.entityManager)
	for _, id := range entities {
		s.DrawButton(screen, id)
	}
}

// DrawButton 绘制单个按钮
func (s *ButtonRenderSystem) DrawButton(screen *ebiten.Image, id ecs.EntityID) {
	node, ok := ecs.GetComponent[*components.ImageNodeComponent](s.entityManager, id)
	if !ok {
		return
	}
	pos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
	if !ok {
		return
	}

	img := s.images.Get(node.Image)
	if img == nil {
		return
	}

	op := s.drawOptions(id, node, pos, img)
	screen.DrawImage(img, op)
}

// drawOptions 计算绘制参数（缩放、平移、着色）
func (s *ButtonRenderSystem) drawOptions(id ecs.EntityID, node *components.ImageNodeComponent, pos *components.PositionComponent, img *ebiten.Image) *ebiten.DrawImageOptions {
	op := &ebiten.DrawImageOptions{}

	// 有可点击区域时把图片拉伸到区域大小
	if clickable, ok := ecs.GetComponent[*components.ClickableComponent](s.entityManager, id); ok {
		w, h := img.Bounds().Dx(), img.Bounds().Dy()
		if w > 0 && h > 0 {
			op.GeoM.Scale(clickable.Width/float64(w), clickable.Height/float64(h))
		}
	}
	op.GeoM.Translate(pos.X, pos.Y)
	op.ColorScale.ScaleWithColor(node.Color)
	return op
}
