package ecs

import "reflect"

// AddComponent 为实体添加（或替换）类型为 T 的组件
//
// 实体不存在时忽略。组件按具体类型存放，通常 T 是指针类型：
//
//	ecs.AddComponent(em, id, &components.InteractableComponent{Enabled: true})
func AddComponent[T any](em *EntityManager, id EntityID, component T) {
	em.add(id, reflect.TypeFor[T](), component)
}

// GetComponent 获取实体上类型为 T 的组件
func GetComponent[T any](em *EntityManager, id EntityID) (T, bool) {
	c, ok := em.get(id, reflect.TypeFor[T]())
	if !ok {
		var zero T
		return zero, false
	}
	return c.(T), true
}

// HasComponent 实体是否拥有类型为 T 的组件
func HasComponent[T any](em *EntityManager, id EntityID) bool {
	_, ok := em.get(id, reflect.TypeFor[T]())
	return ok
}

// RemoveComponent 移除实体上类型为 T 的组件
func RemoveComponent[T any](em *EntityManager, id EntityID) {
	em.remove(id, reflect.TypeFor[T]())
}

// GetEntitiesWith1 查询拥有组件 T1 的实体
func GetEntitiesWith1[T1 any](em *EntityManager) []EntityID {
	return em.query(reflect.TypeFor[T1]())
}

// GetEntitiesWith2 查询同时拥有 T1、T2 的实体
func GetEntitiesWith2[T1, T2 any](em *EntityManager) []EntityID {
	return em.query(reflect.TypeFor[T1](), reflect.TypeFor[T2]())
}

// GetEntitiesWith3 查询同时拥有 T1、T2、T3 的实体
func GetEntitiesWith3[T1, T2, T3 any](em *EntityManager) []EntityID {
	return em.query(reflect.TypeFor[T1](), reflect.TypeFor[T2](), reflect.TypeFor[T3]())
}

// GetEntitiesWith4 查询同时拥有 T1 到 T4 的实体
func GetEntitiesWith4[T1, T2, T3, T4 any](em *EntityManager) []EntityID {
	return em.query(reflect.TypeFor[T1](), reflect.TypeFor[T2](), reflect.TypeFor[T3](), reflect.TypeFor[T4]())
}
