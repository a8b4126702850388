package components

// NameComponent 实体的名称（配置中的按钮名）
type NameComponent struct {
	Name string
}
