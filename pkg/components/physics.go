package components

import "github.com/decker502/asteroids/pkg/utils"

// PhysicsComponent 存储实体的运动状态
type PhysicsComponent struct {
	Velocity utils.Vector2D // 当前速度（单位/秒）
}
