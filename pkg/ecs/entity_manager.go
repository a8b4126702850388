// Package ecs 提供按钮场景使用的最小实体-组件存储
//
// 组件以指针形式按具体类型存放，系统通过泛型辅助函数（GetComponent、
// GetEntitiesWith1/2/3）查询。存储不是并发安全的，只在游戏主循环中使用。
package ecs

import (
	"reflect"
	"sort"
)

// EntityID 实体的唯一标识符，0 保留为无效 ID
type EntityID uint64

// EntityManager 管理所有实体及其组件
type EntityManager struct {
	nextID uint64
	// EntityID -> 组件类型 -> 组件实例
	components map[EntityID]map[reflect.Type]any
	// 延迟删除，避免在系统遍历过程中修改存储
	pendingDestroy []EntityID
}

// NewEntityManager 创建空的实体管理器
func NewEntityManager() *EntityManager {
	return &EntityManager{
		nextID:     1,
		components: make(map[EntityID]map[reflect.Type]any),
	}
}

// CreateEntity 创建新实体并返回其 ID
func (em *EntityManager) CreateEntity() EntityID {
	id := EntityID(em.nextID)
	em.nextID++
	em.components[id] = make(map[reflect.Type]any)
	return id
}

// Exists 实体是否存在（已标记删除但尚未清理的实体仍然存在）
func (em *EntityManager) Exists(id EntityID) bool {
	_, ok := em.components[id]
	return ok
}

// Count 当前实体数量
func (em *EntityManager) Count() int {
	return len(em.components)
}

// DestroyEntity 标记实体待删除，在 RemoveMarkedEntities 时真正移除
func (em *EntityManager) DestroyEntity(id EntityID) {
	em.pendingDestroy = append(em.pendingDestroy, id)
}

// RemoveMarkedEntities 移除所有已标记的实体及其组件
func (em *EntityManager) RemoveMarkedEntities() {
	for _, id := range em.pendingDestroy {
		delete(em.components, id)
	}
	em.pendingDestroy = em.pendingDestroy[:0]
}

func (em *EntityManager) add(id EntityID, t reflect.Type, component any) {
	if comps, ok := em.components[id]; ok {
		comps[t] = component
	}
}

func (em *EntityManager) get(id EntityID, t reflect.Type) (any, bool) {
	comps, ok := em.components[id]
	if !ok {
		return nil, false
	}
	c, ok := comps[t]
	return c, ok
}

func (em *EntityManager) remove(id EntityID, t reflect.Type) {
	if comps, ok := em.components[id]; ok {
		delete(comps, t)
	}
}

// query 返回拥有全部给定组件类型的实体，按 ID 升序
//
// 升序保证每帧遍历和绘制顺序稳定。
func (em *EntityManager) query(types ...reflect.Type) []EntityID {
	result := make([]EntityID, 0)
	for id, comps := range em.components {
		matched := true
		for _, t := range types {
			if _, ok := comps[t]; !ok {
				matched = false
				break
			}
		}
		if matched {
			result = append(result, id)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i] < result[j] })
	return result
}
