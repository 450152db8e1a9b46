// Package entities 提供按类别创建游戏对象实例的工厂函数
//
// 工厂负责把类别对应的默认组件挂载到新分配的槽位上。
// 槽位容量耗尽时工厂返回 false，生成请求被静默丢弃，
// 调用方应将其视为空操作而不是错误
package entities

import (
	"github.com/decker502/asteroids/pkg/config"
	"github.com/decker502/asteroids/pkg/ecs"
	"github.com/decker502/asteroids/pkg/game"
	"github.com/decker502/asteroids/pkg/types"
	"github.com/decker502/asteroids/pkg/utils"
)

// NewShip 创建玩家飞船实例
//
// 飞船出生在原点，朝向角度 0，速度为零。创建时把出生位置和速度
// 记录到 World 中，供陨石撞击后复位使用，并更新 World 的飞船引用
//
// 参数:
//   - w: 模拟世界
//
// 返回:
//   - *ecs.GameObjectInstance: 飞船实例，分配失败时为 nil
//   - bool: 是否创建成功
func NewShip(w *game.World) (*ecs.GameObjectInstance, bool) {
	if w == nil {
		return nil, false
	}

	inst, ok := w.Manager.Create(types.ObjectShip)
	if !ok {
		return nil, false
	}

	inst.AttachSprite(w.Catalog.Get(types.ObjectShip))
	inst.AttachTransform(nil, 0, w.Config.ShipSize, w.Config.ShipSize)
	inst.AttachPhysics(nil)

	// 记录出生状态，陨石撞击后按此复位（不销毁重建飞船实体）
	w.Ship = inst.Ref()
	w.ShipSpawnPos = inst.Transform.Position
	w.ShipSpawnVel = inst.Physics.Velocity

	return inst, true
}

// NewBullet 创建子弹实例
//
// 子弹出生在飞船当前位置，角度 0，速度为零，
// 发射速度由调用方在创建后立即设置。
// 飞船不存在时不创建任何实例
func NewBullet(w *game.World) (*ecs.GameObjectInstance, bool) {
	if w == nil {
		return nil, false
	}
	ship := w.ShipInstance()
	if ship == nil || ship.Transform == nil {
		return nil, false
	}

	inst, ok := w.Manager.Create(types.ObjectBullet)
	if !ok {
		return nil, false
	}

	pos := ship.Transform.Position
	inst.AttachSprite(w.Catalog.Get(types.ObjectBullet))
	inst.AttachTransform(&pos, 0, w.Config.BulletSize, w.Config.BulletSize)
	inst.AttachPhysics(nil)

	return inst, true
}

// NewAsteroid 创建陨石实例
// 默认出生在原点、速度为零，位置和速度通常由调用方随后设置
func NewAsteroid(w *game.World) (*ecs.GameObjectInstance, bool) {
	if w == nil {
		return nil, false
	}

	inst, ok := w.Manager.Create(types.ObjectAsteroid)
	if !ok {
		return nil, false
	}

	inst.AttachSprite(w.Catalog.Get(types.ObjectAsteroid))
	inst.AttachTransform(nil, 0, w.Config.AsteroidSize, w.Config.AsteroidSize)
	inst.AttachPhysics(nil)

	return inst, true
}

// NewAsteroidFromSpawn 按生成配置创建陨石实例
// 位置、速度取自配置，缩放为基准尺寸乘以配置的倍数（0 视为 1）
func NewAsteroidFromSpawn(w *game.World, spawn config.AsteroidSpawn) (*ecs.GameObjectInstance, bool) {
	inst, ok := NewAsteroid(w)
	if !ok {
		return nil, false
	}

	mult := spawn.ScaleMult
	if mult == 0 {
		mult = 1
	}

	inst.Transform.Position = utils.Vector2D{X: spawn.X, Y: spawn.Y}
	inst.Transform.ScaleX *= mult
	inst.Transform.ScaleY *= mult
	inst.Physics.Velocity = utils.Vector2D{X: spawn.VelX, Y: spawn.VelY}

	return inst, true
}

// NewHomingMissile 创建追踪导弹实例
//
// 导弹出生在飞船当前位置，继承飞船当前朝向，速度为零
// （发射速度由调用方设置），初始无锁定目标。
// 飞船不存在时不创建任何实例
func NewHomingMissile(w *game.World) (*ecs.GameObjectInstance, bool) {
	if w == nil {
		return nil, false
	}
	ship := w.ShipInstance()
	if ship == nil || ship.Transform == nil {
		return nil, false
	}

	inst, ok := w.Manager.Create(types.ObjectHomingMissile)
	if !ok {
		return nil, false
	}

	pos := ship.Transform.Position
	inst.AttachSprite(w.Catalog.Get(types.ObjectHomingMissile))
	inst.AttachTransform(&pos, ship.Transform.Angle, w.Config.MissileWidth, w.Config.MissileHeight)
	inst.AttachPhysics(nil)
	inst.AttachTarget(types.InstanceRef{})

	return inst, true
}
