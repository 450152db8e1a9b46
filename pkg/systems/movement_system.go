package systems

import (
	"github.com/decker502/asteroids/pkg/ecs"
	"github.com/decker502/asteroids/pkg/game"
)

// MovementSystem 运动积分系统
// 用显式欧拉法推进所有激活实体的位置（P1 = P0 + V*t，不做子步细分）。
// 必须在同一帧内先于行为系统执行
type MovementSystem struct {
	world *game.World
}

// NewMovementSystem 创建运动积分系统
func NewMovementSystem(w *game.World) *MovementSystem {
	return &MovementSystem{world: w}
}

// Update 推进所有激活实体的位置
//
// 参数:
//   - deltaTime: 自上一帧以来经过的时间（秒）
func (s *MovementSystem) Update(deltaTime float64) {
	s.world.Manager.ForEachActive(func(inst *ecs.GameObjectInstance) bool {
		if inst.Transform == nil || inst.Physics == nil {
			return true
		}
		inst.Transform.Position = inst.Transform.Position.Add(inst.Physics.Velocity.Scale(deltaTime))
		return true
	})
}
