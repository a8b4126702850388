package components

// ClickableComponent 按钮的可点击区域
//
// 区域以 PositionComponent 为左上角。OnClick 只在按钮启用时、
// 在区域内按下并在区域内释放后调用。
type ClickableComponent struct {
	Width  float64 // 可点击区域的宽度(像素)
	Height float64 // 可点击区域的高度(像素)

	// OnClick 点击回调，可为 nil
	OnClick func()
}

// Contains 判断点 (x, y) 是否落在以 (originX, originY) 为左上角的区域内
func (c *ClickableComponent) Contains(originX, originY, x, y float64) bool {
	return x >= originX && x <= originX+c.Width &&
		y >= originY && y <= originY+c.Height
}
