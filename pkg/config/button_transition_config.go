package config

import (
	"fmt"
	"image/color"
	"os"
	"strconv"
	"strings"

	"github.com/decker502/buttontransitions/pkg/transition"
	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"
	"gopkg.in/yaml.v3"
)

// DefaultButtonTransitionConfigPath 默认配置文件位置
const DefaultButtonTransitionConfigPath = "data/button_transitions.yaml"

// DefaultToggleKey 未配置 toggleKey 时使用的切换键名
const DefaultToggleKey = "Space"

// ButtonTransitionConfig 按钮过渡配置
//
// 配置文件位置: data/button_transitions.yaml
type ButtonTransitionConfig struct {
	// ToggleKey 切换所有按钮启用状态的按键名（Ebitengine 键名，如 "Space"）
	ToggleKey string `yaml:"toggleKey"`

	// Buttons 按钮列表，按声明顺序创建
	Buttons []ButtonConfig `yaml:"buttons"`
}

// ButtonConfig 单个按钮的配置
//
// colorTint 与 imageSwap 最多出现一个；都省略时使用默认 ColorTint。
type ButtonConfig struct {
	Name   string  `yaml:"name"`
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`

	// Image 基础图片（ColorTint 着色的对象）
	// ImageSwap 按钮省略时使用 normal 图片
	Image string `yaml:"image"`

	// Enabled 初始启用状态，省略时为 true
	Enabled *bool `yaml:"enabled"`

	ColorTint *ColorTintConfig `yaml:"colorTint"`
	ImageSwap *ImageSwapConfig `yaml:"imageSwap"`
}

// ColorTintConfig 颜色着色配置，四个颜色都必须提供
//
// 颜色格式: "#rgb"、"#rrggbb"、"#rrggbbaa" 或 CSS 颜色名（如 "whitesmoke"）
type ColorTintConfig struct {
	Normal   string `yaml:"normal"`
	Hovered  string `yaml:"hovered"`
	Pressed  string `yaml:"pressed"`
	Disabled string `yaml:"disabled"`
}

// ImageSwapConfig 图片切换配置，四张图片都必须提供
type ImageSwapConfig struct {
	Normal   string `yaml:"normal"`
	Hovered  string `yaml:"hovered"`
	Pressed  string `yaml:"pressed"`
	Disabled string `yaml:"disabled"`
}

// LoadButtonTransitionConfig 从文件加载按钮过渡配置
//
// 参数:
//   - path: 配置文件路径（如 "data/button_transitions.yaml"）
//
// 返回:
//   - *ButtonTransitionConfig: 已验证的配置
//   - error: 读取、解析或验证失败时返回错误
func LoadButtonTransitionConfig(path string) (*ButtonTransitionConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read button transition config: %w", err)
	}
	return ParseButtonTransitionConfig(data)
}

// ParseButtonTransitionConfig 从 YAML 数据解析并验证配置
//
// 不完整的过渡样式在这里被拒绝（错误链中包含 transition.ErrIncompleteStyle），
// 而不是等到解析阶段。
func ParseButtonTransitionConfig(data []byte) (*ButtonTransitionConfig, error) {
	var cfg ButtonTransitionConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse button transition config: %w", err)
	}

	if cfg.ToggleKey == "" {
		cfg.ToggleKey = DefaultToggleKey
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid button transition config: %w", err)
	}

	return &cfg, nil
}

// Validate 验证配置有效性
//
// 检查：
//   - 按钮名称非空且唯一
//   - 宽高为正
//   - 过渡样式完整且颜色可解析
func (c *ButtonTransitionConfig) Validate() error {
	seen := make(map[string]bool, len(c.Buttons))
	for i, b := range c.Buttons {
		if b.Name == "" {
			return fmt.Errorf("button %d: name is required", i)
		}
		if seen[b.Name] {
			return fmt.Errorf("button %q: duplicate name", b.Name)
		}
		seen[b.Name] = true

		if b.Width <= 0 || b.Height <= 0 {
			return fmt.Errorf("button %q: size must be positive, got %.1fx%.1f", b.Name, b.Width, b.Height)
		}

		if _, err := b.Style(); err != nil {
			return fmt.Errorf("button %q: %w", b.Name, err)
		}
	}
	return nil
}

// Style 构造按钮的过渡样式
func (b *ButtonConfig) Style() (transition.Style, error) {
	switch {
	case b.ColorTint != nil && b.ImageSwap != nil:
		return nil, fmt.Errorf("colorTint and imageSwap are mutually exclusive")
	case b.ImageSwap != nil:
		return b.ImageSwap.Style()
	case b.ColorTint != nil:
		return b.ColorTint.Style()
	}
	return transition.DefaultColorTint(), nil
}

// BaseImage 按钮的初始图片
func (b *ButtonConfig) BaseImage() transition.ImageRef {
	if b.Image == "" && b.ImageSwap != nil {
		return transition.ImageRef(b.ImageSwap.Normal)
	}
	return transition.ImageRef(b.Image)
}

// InitiallyEnabled 按钮的初始启用状态
func (b *ButtonConfig) InitiallyEnabled() bool {
	return b.Enabled == nil || *b.Enabled
}

// Style 构造 ColorTint，缺少任一颜色时返回 transition.ErrIncompleteStyle
func (c *ColorTintConfig) Style() (transition.ColorTint, error) {
	var tint transition.ColorTint
	slots := []struct {
		name  string
		value string
		dst   *color.NRGBA
	}{
		{"normal", c.Normal, &tint.Normal},
		{"hovered", c.Hovered, &tint.Hovered},
		{"pressed", c.Pressed, &tint.Pressed},
		{"disabled", c.Disabled, &tint.Disabled},
	}

	for _, slot := range slots {
		if strings.TrimSpace(slot.value) == "" {
			return transition.ColorTint{}, fmt.Errorf("color tint %s color missing: %w", slot.name, transition.ErrIncompleteStyle)
		}
		parsed, err := ParseColor(slot.value)
		if err != nil {
			return transition.ColorTint{}, fmt.Errorf("color tint %s color: %w", slot.name, err)
		}
		*slot.dst = parsed
	}

	return tint, nil
}

// Style 构造 ImageSwap，缺少任一图片时返回 transition.ErrIncompleteStyle
func (c *ImageSwapConfig) Style() (transition.ImageSwap, error) {
	return transition.NewImageSwap(
		transition.ImageRef(c.Normal),
		transition.ImageRef(c.Hovered),
		transition.ImageRef(c.Pressed),
		transition.ImageRef(c.Disabled),
	)
}

// ParseColor 解析颜色字符串
//
// 支持：
//   - "#rgb" 和 "#rrggbb"（不透明）
//   - "#rrggbbaa"（非预乘 alpha）
//   - CSS 颜色名，大小写不敏感
func ParseColor(s string) (color.NRGBA, error) {
	s = strings.TrimSpace(s)

	if !strings.HasPrefix(s, "#") {
		named, ok := colornames.Map[strings.ToLower(s)]
		if !ok {
			return color.NRGBA{}, fmt.Errorf("unknown color name %q", s)
		}
		return color.NRGBA{R: named.R, G: named.G, B: named.B, A: named.A}, nil
	}

	alpha := uint8(255)
	if len(s) == 9 {
		a, err := strconv.ParseUint(s[7:], 16, 8)
		if err != nil {
			return color.NRGBA{}, fmt.Errorf("invalid alpha in color %q: %w", s, err)
		}
		alpha = uint8(a)
		s = s[:7]
	}

	c, err := colorful.Hex(s)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: alpha}, nil
}
