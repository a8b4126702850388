// Package app 提供按钮过渡演示程序的核心包装器
//
// 该包把初始化逻辑从 main 包中提取出来：加载配置、准备图片、
// 恢复按钮启用状态，然后创建按钮场景。
package app

import (
	"fmt"
	"image/color"
	"io"
	"log"
	"os"

	"github.com/decker502/buttontransitions/pkg/config"
	"github.com/decker502/buttontransitions/pkg/embedded"
	"github.com/decker502/buttontransitions/pkg/game"
	"github.com/decker502/buttontransitions/pkg/scenes"
	"github.com/decker502/buttontransitions/pkg/transition"
	"github.com/decker502/buttontransitions/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/quasilyte/gdata/v2"
)

// AppName gdata 存储使用的应用名
const AppName = "buttontransitions"

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// ConfigPath 按钮配置文件路径，为空时使用嵌入的 data/button_transitions.yaml
	ConfigPath string
	// AssetsDir 图片目录（包含 assets/images/...），为空时使用内置的占位图片
	AssetsDir string
	// ChangeDetection 只在输入变化时重新解析按钮
	ChangeDetection bool
}

// App 实现 ebiten.Game 接口
type App struct {
	sceneManager *game.SceneManager
	verbose      bool
}

// NewApp 创建并初始化应用
//
// 使用嵌入配置时，调用此函数前必须先调用 embedded.Init()。
func NewApp(cfg Config) (*App, error) {
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	buttonConfig, err := loadButtonConfig(cfg.ConfigPath)
	if err != nil {
		return nil, err
	}
	log.Printf("[App] Loaded %d button definitions", len(buttonConfig.Buttons))

	images, err := newImageStore(cfg.AssetsDir)
	if err != nil {
		return nil, err
	}

	gdataManager := openGdata()

	var keys utils.KeySource = utils.EbitenKeys{}
	hint := ""
	if utils.IsMobile() {
		keys = utils.TouchToggleKeys{}
		hint = "Tap with two fingers to toggle interactability"
	}

	scene, err := scenes.NewButtonScene(scenes.ButtonSceneOptions{
		Config:          buttonConfig,
		Images:          images,
		States:          game.NewEnableStateStore(gdataManager),
		Pointer:         &utils.EbitenPointer{},
		Keys:            keys,
		ChangeDetection: cfg.ChangeDetection,
		Hint:            hint,
	})
	if err != nil {
		return nil, fmt.Errorf("按钮场景创建失败: %w", err)
	}

	sceneManager := game.NewSceneManager()
	sceneManager.SwitchTo(scene)

	return &App{
		sceneManager: sceneManager,
		verbose:      cfg.Verbose,
	}, nil
}

// openGdata 打开持久化存储，不可用时返回 nil（降级为仅内存状态）
func openGdata() *gdata.Manager {
	if err := utils.EnsureStorageDir(AppName); err != nil {
		log.Printf("[App] Warning: storage directory not ready: %v", err)
	}

	m, err := gdata.Open(gdata.Config{AppName: AppName})
	if err != nil {
		log.Printf("[App] Warning: gdata unavailable, button states will not persist: %v", err)
		return nil
	}
	return m
}

// loadButtonConfig 从文件或嵌入资源加载按钮配置
func loadButtonConfig(path string) (*config.ButtonTransitionConfig, error) {
	if path != "" {
		return config.LoadButtonTransitionConfig(path)
	}

	data, err := embedded.ReadFile(config.DefaultButtonTransitionConfigPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read embedded button transition config: %w", err)
	}
	return config.ParseButtonTransitionConfig(data)
}

// newImageStore 创建图片存储
// 没有图片目录时注册占位图片，保证演示可以直接运行
func newImageStore(assetsDir string) (*game.ImageStore, error) {
	if assetsDir != "" {
		return game.NewImageStore(os.DirFS(assetsDir), game.DefaultImageCacheSize)
	}

	store, err := game.NewImageStore(nil, game.DefaultImageCacheSize)
	if err != nil {
		return nil, err
	}
	RegisterPlaceholderImages(store)
	return store, nil
}

// placeholderColors 演示用占位图片的颜色
var placeholderColors = map[transition.ImageRef]color.RGBA{
	"normal_image":   {R: 255, G: 255, B: 255, A: 255},
	"hovered_image":  {R: 120, G: 190, B: 255, A: 255},
	"pressed_image":  {R: 40, G: 100, B: 200, A: 255},
	"disabled_image": {R: 110, G: 110, B: 110, A: 255},
}

// RegisterPlaceholderImages 注册演示配置引用的四张占位图片
func RegisterPlaceholderImages(store *game.ImageStore) {
	for ref, c := range placeholderColors {
		img := ebiten.NewImage(250, 80)
		img.Fill(c)
		store.Register(ref, img)
	}
}

// Update 更新逻辑，每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	deltaTime := 1.0 / 60.0
	a.sceneManager.Update(deltaTime)
	return nil
}

// Draw 绘制画面
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// Layout 返回逻辑屏幕尺寸
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return scenes.WindowWidth, scenes.WindowHeight
}

// GetSceneManager 返回场景管理器，用于退出时保存状态
func (a *App) GetSceneManager() *game.SceneManager {
	return a.sceneManager
}

// IsVerbose 返回是否启用了详细日志
func (a *App) IsVerbose() bool {
	return a.verbose
}
