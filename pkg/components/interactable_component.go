package components

// InteractableComponent 按钮的启用标志
//
// 只由应用层逻辑修改（例如全局切换），过渡系统只读取它。
// 处理点击的代码也应先检查 Enabled。
type InteractableComponent struct {
	// Enabled 是否启用，默认 true
	Enabled bool
}

// NewInteractableComponent 创建默认启用的组件
func NewInteractableComponent() *InteractableComponent {
	return &InteractableComponent{Enabled: true}
}
