package ecs

import (
	"github.com/decker502/asteroids/pkg/components"
	"github.com/decker502/asteroids/pkg/types"
	"github.com/decker502/asteroids/pkg/utils"
)

// 组件挂载层
//
// 每种组件的挂载都是幂等的：重复挂载时复用已有组件块（只覆盖初始值），
// 不会泄漏旧块。卸载总是将拥有指针置为 nil。

// AttachTransform 挂载空间组件
// position 为 nil 时初始位置为原点
func (inst *GameObjectInstance) AttachTransform(position *utils.Vector2D, angle, scaleX, scaleY float64) {
	if inst == nil {
		return
	}
	if inst.Transform == nil {
		inst.Transform = &components.TransformComponent{}
	}

	if position != nil {
		inst.Transform.Position = *position
	} else {
		inst.Transform.Position = utils.Vector2D{}
	}
	inst.Transform.Angle = angle
	inst.Transform.ScaleX = scaleX
	inst.Transform.ScaleY = scaleY
}

// AttachPhysics 挂载运动组件
// velocity 为 nil 时初始速度为零
func (inst *GameObjectInstance) AttachPhysics(velocity *utils.Vector2D) {
	if inst == nil {
		return
	}
	if inst.Physics == nil {
		inst.Physics = &components.PhysicsComponent{}
	}

	if velocity != nil {
		inst.Physics.Velocity = *velocity
	} else {
		inst.Physics.Velocity = utils.Vector2D{}
	}
}

// AttachSprite 挂载精灵组件，shape 是指向形状目录的非拥有引用
func (inst *GameObjectInstance) AttachSprite(shape *components.Shape) {
	if inst == nil {
		return
	}
	if inst.Sprite == nil {
		inst.Sprite = &components.SpriteComponent{}
	}

	inst.Sprite.Shape = shape
}

// AttachTarget 挂载目标组件，零值引用表示初始无目标
func (inst *GameObjectInstance) AttachTarget(target types.InstanceRef) {
	if inst == nil {
		return
	}
	if inst.Target == nil {
		inst.Target = &components.TargetComponent{}
	}

	inst.Target.Target = target
}

// RemoveTransform 卸载空间组件
func (inst *GameObjectInstance) RemoveTransform() {
	if inst != nil {
		inst.Transform = nil
	}
}

// RemovePhysics 卸载运动组件
func (inst *GameObjectInstance) RemovePhysics() {
	if inst != nil {
		inst.Physics = nil
	}
}

// RemoveSprite 卸载精灵组件
func (inst *GameObjectInstance) RemoveSprite() {
	if inst != nil {
		inst.Sprite = nil
	}
}

// RemoveTarget 卸载目标组件
func (inst *GameObjectInstance) RemoveTarget() {
	if inst != nil {
		inst.Target = nil
	}
}
