package main

import (
	"flag"
	"log"

	"github.com/decker502/buttontransitions/pkg/app"
	"github.com/decker502/buttontransitions/pkg/embedded"
	"github.com/decker502/buttontransitions/pkg/scenes"
	"github.com/hajimehoshi/ebiten/v2"
)

var (
	verboseFlag         = flag.Bool("verbose", false, "Enable verbose logging")
	configFlag          = flag.String("config", "", "Button transition config file (default: embedded data/button_transitions.yaml)")
	assetsFlag          = flag.String("assets", "", "Directory containing assets/images/*.png (default: built-in placeholders)")
	changeDetectionFlag = flag.Bool("change-detection", false, "Only re-resolve buttons whose inputs changed")
)

func main() {
	flag.Parse()

	// dataFS 在 embed.go 中声明
	embedded.Init(dataFS)

	gameApp, err := app.NewApp(app.Config{
		Verbose:         *verboseFlag,
		ConfigPath:      *configFlag,
		AssetsDir:       *assetsFlag,
		ChangeDetection: *changeDetectionFlag,
	})
	if err != nil {
		log.Fatalf("初始化失败: %v", err)
	}

	ebiten.SetWindowSize(scenes.WindowWidth, scenes.WindowHeight)
	ebiten.SetWindowTitle("Button Transitions")

	runErr := ebiten.RunGame(gameApp)

	// 窗口关闭后保存按钮启用状态
	gameApp.GetSceneManager().SaveOnExit()

	if runErr != nil {
		log.Fatal(runErr)
	}
}
