package game

import (
	"fmt"
	"log"
	"sort"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// 存储路径常量
const (
	enableStateObject   = "buttons"
	enableStateProperty = "enabled"
)

// EnableStateStore 按钮启用状态存储
//
// 记录每个具名按钮最近一次的启用标志，使全局切换的结果在重启后保留。
// 数据以 YAML 编码后通过 gdata 保存。
type EnableStateStore struct {
	gdataManager *gdata.Manager // 可为 nil（降级模式，仅内存）
	states       map[string]bool
}

// NewEnableStateStore 创建启用状态存储并尝试加载已保存的数据
//
// 加载失败不是致命错误：记录警告后从空状态开始。
func NewEnableStateStore(gdataManager *gdata.Manager) *EnableStateStore {
	s := &EnableStateStore{
		gdataManager: gdataManager,
		states:       make(map[string]bool),
	}
	if err := s.Load(); err != nil {
		log.Printf("[EnableStateStore] Warning: Failed to load button states: %v (using defaults)", err)
	}
	return s
}

// Load 从 gdata 加载状态
//
// gdataManager 为 nil 或数据不存在时保持空状态。
func (s *EnableStateStore) Load() error {
	s.states = make(map[string]bool)

	if s.gdataManager == nil {
		return nil
	}
	if !s.gdataManager.ObjectPropExists(enableStateObject, enableStateProperty) {
		return nil
	}

	data, err := s.gdataManager.LoadObjectProp(enableStateObject, enableStateProperty)
	if err != nil {
		return fmt.Errorf("failed to load button states: %w", err)
	}

	var loaded map[string]bool
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		return fmt.Errorf("failed to unmarshal button states: %w", err)
	}
	for name, enabled := range loaded {
		s.states[name] = enabled
	}

	log.Printf("[EnableStateStore] Loaded %d button states", len(s.states))
	return nil
}

// Save 把当前状态写入 gdata，降级模式下什么也不做
func (s *EnableStateStore) Save() error {
	if s.gdataManager == nil {
		return nil
	}

	data, err := yaml.Marshal(s.states)
	if err != nil {
		return fmt.Errorf("failed to marshal button states: %w", err)
	}
	if err := s.gdataManager.SaveObjectProp(enableStateObject, enableStateProperty, data); err != nil {
		return fmt.Errorf("failed to save button states: %w", err)
	}
	return nil
}

// Enabled 返回按钮保存的启用状态；未保存过时返回 fallback
func (s *EnableStateStore) Enabled(name string, fallback bool) bool {
	if enabled, ok := s.states[name]; ok {
		return enabled
	}
	return fallback
}

// Set 更新单个按钮的状态（仅内存，需要调用 Save 持久化）
func (s *EnableStateStore) Set(name string, enabled bool) {
	s.states[name] = enabled
}

// Names 已记录状态的按钮名称（升序）
func (s *EnableStateStore) Names() []string {
	names := make([]string, 0, len(s.states))
	for name := range s.states {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
