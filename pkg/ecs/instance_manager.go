// Package ecs 提供固定容量的游戏对象实例管理
//
// 与动态增长的实体表不同，本包使用定长槽位数组：创建实体时从
// 下标 0 开始线性扫描第一个空闲槽位（first-fit），销毁实体时槽位
// 回收复用，容量耗尽时创建失败而不是扩容。槽位扫描顺序同时决定了
// 后续所有系统每帧的遍历顺序。
//
// 每个槽位带有世代计数，配合 types.InstanceRef 检测悬空引用，
// 详见 InstanceRef 的说明。
package ecs

import (
	"github.com/decker502/asteroids/pkg/components"
	"github.com/decker502/asteroids/pkg/types"
)

// DefaultCapacity 实例槽位的默认容量
const DefaultCapacity = 2048

// GameObjectInstance 一个槽位中的游戏对象实例
//
// 组件指针为 nil 表示该组件未挂载。激活的可生成实体总是拥有
// Transform、Physics 和 Sprite 三个组件，只有追踪导弹额外拥有 Target
type GameObjectInstance struct {
	active     bool
	index      int
	generation uint64
	objType    types.ObjectType

	Transform *components.TransformComponent // 空间组件
	Physics   *components.PhysicsComponent   // 运动组件
	Sprite    *components.SpriteComponent    // 精灵组件
	Target    *components.TargetComponent    // 目标组件（仅追踪导弹）
}

// IsActive 判断实例当前是否处于激活状态
func (inst *GameObjectInstance) IsActive() bool {
	return inst.active
}

// Type 返回实例的对象类别
func (inst *GameObjectInstance) Type() types.ObjectType {
	return inst.objType
}

// Ref 返回指向本实例的稳定引用
// 实例被销毁且槽位被回收后，此引用不再能解析回实例
func (inst *GameObjectInstance) Ref() types.InstanceRef {
	return types.InstanceRef{Index: inst.index, Generation: inst.generation}
}

// InstanceManager 管理所有游戏对象实例槽位
type InstanceManager struct {
	instances []GameObjectInstance
	liveCount int
}

// NewInstanceManager 创建实例管理器
//
// 参数:
//   - capacity: 槽位总数，小于等于 0 时使用 DefaultCapacity
//
// 返回:
//   - *InstanceManager: 管理器实例，所有槽位初始为空闲
func NewInstanceManager(capacity int) *InstanceManager {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	m := &InstanceManager{
		instances: make([]GameObjectInstance, capacity),
	}
	for i := range m.instances {
		m.instances[i].index = i
	}
	return m
}

// Capacity 返回槽位总数（固定值，不会增长）
func (m *InstanceManager) Capacity() int {
	return len(m.instances)
}

// LiveCount 返回当前激活的实例数量
func (m *InstanceManager) LiveCount() int {
	return m.liveCount
}

// Create 分配一个新的游戏对象实例
//
// 从下标 0 开始扫描第一个空闲槽位，标记为激活并递增该槽位的世代计数。
// 组件由调用方（实体工厂）按类别挂载，本方法不挂载任何组件。
//
// 参数:
//   - objType: 对象类别
//
// 返回:
//   - *GameObjectInstance: 新实例，分配失败时为 nil
//   - bool: 是否分配成功；容量耗尽时返回 false，调用方应将其视为
//     静默丢弃的生成请求，而不是致命错误
func (m *InstanceManager) Create(objType types.ObjectType) (*GameObjectInstance, bool) {
	for i := range m.instances {
		inst := &m.instances[i]
		if inst.active {
			continue
		}

		inst.active = true
		inst.generation++
		inst.objType = objType
		inst.Transform = nil
		inst.Physics = nil
		inst.Sprite = nil
		inst.Target = nil

		m.liveCount++
		return inst, true
	}

	// 没有空闲槽位
	return nil, false
}

// Destroy 销毁一个实例：卸载所有组件并清除激活标志
//
// 对已经销毁的实例调用是无害的空操作（幂等）。其他实体持有的
// 指向本槽位的 TargetComponent 引用不会被主动清空，由解引用时的
// Resolve 校验识别失效
func (m *InstanceManager) Destroy(inst *GameObjectInstance) {
	if inst == nil || !inst.active {
		return
	}

	inst.active = false
	inst.RemoveTransform()
	inst.RemovePhysics()
	inst.RemoveSprite()
	inst.RemoveTarget()

	m.liveCount--
}

// DestroyRef 通过引用销毁实例
// 引用已失效（实例已销毁或槽位已回收）时为空操作
func (m *InstanceManager) DestroyRef(ref types.InstanceRef) {
	m.Destroy(m.Resolve(ref))
}

// Resolve 将引用解析为实例
//
// 以下情况返回 nil，调用方必须将其视为"无目标"而不是错误:
//   - 引用是零值（从未指向过实体）
//   - 槽位当前未激活（实体已被销毁）
//   - 槽位已被回收给另一个实体（世代计数不匹配）
func (m *InstanceManager) Resolve(ref types.InstanceRef) *GameObjectInstance {
	if ref.IsNone() || ref.Index < 0 || ref.Index >= len(m.instances) {
		return nil
	}
	inst := &m.instances[ref.Index]
	if !inst.active || inst.generation != ref.Generation {
		return nil
	}
	return inst
}

// ForEachActive 按槽位下标顺序遍历所有激活实例
//
// fn 返回 false 时提前结束遍历。遍历过程中允许销毁实例：
// 已销毁的实例在后续下标被访问到时会因激活检查而被跳过，
// 这是正常情况而不是并发错误
func (m *InstanceManager) ForEachActive(fn func(inst *GameObjectInstance) bool) {
	for i := range m.instances {
		inst := &m.instances[i]
		if !inst.active {
			continue
		}
		if !fn(inst) {
			return
		}
	}
}

// Clear 销毁所有激活实例
// 用于场景退出时的清理
func (m *InstanceManager) Clear() {
	for i := range m.instances {
		m.Destroy(&m.instances[i])
	}
}
