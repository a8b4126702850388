package scenes

import (
	"fmt"
	"image/color"
	"log"

	"github.com/decker502/buttontransitions/pkg/components"
	"github.com/decker502/buttontransitions/pkg/config"
	"github.com/decker502/buttontransitions/pkg/ecs"
	"github.com/decker502/buttontransitions/pkg/entities"
	"github.com/decker502/buttontransitions/pkg/game"
	"github.com/decker502/buttontransitions/pkg/systems"
	"github.com/decker502/buttontransitions/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// backgroundColor 场景背景色
var backgroundColor = color.RGBA{R: 40, G: 44, B: 52, A: 255}

// ButtonScene 按钮过渡演示场景
//
// 每帧的系统顺序：
//  1. ButtonInteractionSystem：指针 → 交互状态
//  2. InteractableToggleSystem：切换键 → 启用标志
//  3. ButtonTransitionSystem：解析并写入渲染目标
//
// Draw 阶段由 ButtonRenderSystem 绘制按钮。
type ButtonScene struct {
	entityManager *ecs.EntityManager
	buttons       []ecs.EntityID
	states        *game.EnableStateStore
	hint          string

	interactionSystem *systems.ButtonInteractionSystem
	toggleSystem      *systems.InteractableToggleSystem
	transitionSystem  *systems.ButtonTransitionSystem
	renderSystem      *systems.ButtonRenderSystem
}

// ButtonSceneOptions 创建按钮场景的依赖
type ButtonSceneOptions struct {
	Config *config.ButtonTransitionConfig
	Images systems.ImageSource
	// States 保存/恢复启用状态，可为 nil
	States  *game.EnableStateStore
	Pointer utils.PointerSource
	Keys    utils.KeySource
	// ChangeDetection 只在输入变化时重新解析
	ChangeDetection bool
	// Hint 底部提示文字，为空时提示按切换键
	Hint string
}

// NewButtonScene 按配置创建按钮并组装系统
func NewButtonScene(opts ButtonSceneOptions) (*ButtonScene, error) {
	toggleKey, err := utils.ParseKey(opts.Config.ToggleKey)
	if err != nil {
		return nil, fmt.Errorf("toggle key: %w", err)
	}

	em := ecs.NewEntityManager()

	var enabledFor func(string, bool) bool
	if opts.States != nil {
		enabledFor = opts.States.Enabled
	}
	buttons, err := entities.NewButtonsFromConfig(em, opts.Config, enabledFor)
	if err != nil {
		return nil, err
	}

	hint := opts.Hint
	if hint == "" {
		hint = fmt.Sprintf("Press %s to toggle interactability", toggleKey)
	}

	scene := &ButtonScene{
		entityManager:     em,
		buttons:           buttons,
		states:            opts.States,
		hint:              hint,
		interactionSystem: systems.NewButtonInteractionSystem(em, opts.Pointer),
		toggleSystem:      systems.NewInteractableToggleSystem(em, opts.Keys, toggleKey),
		transitionSystem:  systems.NewButtonTransitionSystem(em).WithChangeDetection(opts.ChangeDetection),
		renderSystem:      systems.NewButtonRenderSystem(em, opts.Images),
	}
	scene.toggleSystem.OnToggle = func() {
		if !scene.saveStates() {
			log.Printf("[ButtonScene] Warning: failed to persist button states after toggle")
		}
	}

	// 首帧绘制前先解析一次
	scene.transitionSystem.Update(0)

	log.Printf("[ButtonScene] Initialized with %d buttons", len(buttons))
	return scene, nil
}

// Update 按顺序运行各系统
func (s *ButtonScene) Update(deltaTime float64) {
	s.interactionSystem.Update(deltaTime)
	s.toggleSystem.Update(deltaTime)
	s.transitionSystem.Update(deltaTime)
	s.entityManager.RemoveMarkedEntities()
}

// Draw 绘制背景、按钮和提示文字
func (s *ButtonScene) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)
	s.renderSystem.Draw(screen)
	ebitenutil.DebugPrintAt(screen, s.hint, 10, WindowHeight-24)
}

// SaveOnExit 实现 game.Saveable
func (s *ButtonScene) SaveOnExit() bool {
	return s.saveStates()
}

// EntityManager 返回场景的实体管理器
func (s *ButtonScene) EntityManager() *ecs.EntityManager {
	return s.entityManager
}

// Buttons 按配置顺序返回按钮实体
func (s *ButtonScene) Buttons() []ecs.EntityID {
	return s.buttons
}

// saveStates 把具名按钮的启用标志写入存储
func (s *ButtonScene) saveStates() bool {
	if s.states == nil {
		return true
	}

	named := ecs.GetEntitiesWith2[*components.NameComponent, *components.InteractableComponent](s.entityManager)
	for _, id := range named {
		name, _ := ecs.GetComponent[*components.NameComponent](s.entityManager, id)
		interactable, _ := ecs.GetComponent[*components.InteractableComponent](s.entityManager, id)
		s.states.Set(name.Name, interactable.Enabled)
	}

	if err := s.states.Save(); err != nil {
		log.Printf("[ButtonScene] Warning: %v", err)
		return false
	}
	return true
}
