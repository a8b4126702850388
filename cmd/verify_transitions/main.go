// Package main provides a headless verification tool for button transition
// configurations.
//
// Usage:
//
//	go run cmd/verify_transitions/main.go [flags]
//
// Flags:
//
//	--config <path>   Button transition config (default: data/button_transitions.yaml)
//
// Purpose:
//   - Validate a config file without opening a window
//   - Print the resolved visual for every (button, enabled, interaction) combination
//   - Replay None→Hovered→Pressed→Hovered→None per button, then again with the
//     button disabled mid-sequence
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/decker502/buttontransitions/pkg/config"
	"github.com/decker502/buttontransitions/pkg/transition"
)

var configFlag = flag.String("config", config.DefaultButtonTransitionConfigPath, "Button transition config file")

// sequence 一次完整的悬停-按下-释放-离开过程
var sequence = []transition.Interaction{
	transition.InteractionNone,
	transition.InteractionHovered,
	transition.InteractionPressed,
	transition.InteractionHovered,
	transition.InteractionNone,
}

func main() {
	flag.Parse()

	cfg, err := config.LoadButtonTransitionConfig(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "❌ %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("✅ %s: %d buttons, toggle key %s\n\n", *configFlag, len(cfg.Buttons), cfg.ToggleKey)

	for i := range cfg.Buttons {
		b := &cfg.Buttons[i]
		// 配置已通过验证，Style 不会失败
		style, _ := b.Style()

		printTable(os.Stdout, b.Name, style)
		printSequence(os.Stdout, style)
		fmt.Println()
	}
}

// printTable 打印按钮在所有输入组合下的解析结果
func printTable(w io.Writer, name string, style transition.Style) {
	fmt.Fprintf(w, "=== %s (%s) ===\n", name, styleKind(style))
	for _, enabled := range []bool{true, false} {
		for _, interaction := range transition.Interactions {
			fmt.Fprintf(w, "  enabled=%-5v %-8v → %v\n", enabled, interaction, transition.Resolve(style, enabled, interaction))
		}
	}
}

// printSequence 回放交互序列，第二遍在中途禁用按钮
func printSequence(w io.Writer, style transition.Style) {
	var normal, disabledMid []string
	for i, interaction := range sequence {
		normal = append(normal, transition.Resolve(style, true, interaction).String())
		disabledMid = append(disabledMid, transition.Resolve(style, i < len(sequence)/2, interaction).String())
	}
	fmt.Fprintf(w, "  sequence:          %s\n", strings.Join(normal, " → "))
	fmt.Fprintf(w, "  disabled mid-way:  %s\n", strings.Join(disabledMid, " → "))
}

func styleKind(style transition.Style) string {
	switch style.(type) {
	case transition.ColorTint:
		return "ColorTint"
	case transition.ImageSwap:
		return "ImageSwap"
	}
	return fmt.Sprintf("%T", style)
}
