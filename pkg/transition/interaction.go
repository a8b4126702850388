package transition

import "fmt"

// Interaction 按钮的交互状态
//
// 由宿主输入系统根据指针命中检测维护，解析器只读取，不修改。
type Interaction int

const (
	// InteractionNone 指针不在按钮上
	InteractionNone Interaction = iota
	// InteractionHovered 指针悬停在按钮上
	InteractionHovered
	// InteractionPressed 指针在按钮上按下
	InteractionPressed
)

// Interactions 按声明顺序列出全部交互状态（测试与校验工具使用）
var Interactions = []Interaction{InteractionNone, InteractionHovered, InteractionPressed}

func (i Interaction) String() string {
	switch i {
	case InteractionNone:
		return "None"
	case InteractionHovered:
		return "Hovered"
	case InteractionPressed:
		return "Pressed"
	}
	return fmt.Sprintf("Interaction(%d)", int(i))
}
