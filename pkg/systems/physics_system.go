package systems

import (
	"log"

	"github.com/decker502/asteroids/pkg/components"
	"github.com/decker502/asteroids/pkg/ecs"
	"github.com/decker502/asteroids/pkg/game"
	"github.com/decker502/asteroids/pkg/types"
	"github.com/decker502/asteroids/pkg/utils"
)

// PhysicsSystem 处理碰撞检测与结算
//
// 每帧在行为系统之后、变换系统之前执行一次。只检测以陨石为锚点的
// 组合（陨石-飞船、陨石-子弹、陨石-导弹），其他组合永远不检测：
//   - 陨石 × 飞船：矩形-矩形重叠 → 销毁陨石，飞船位置和速度复位到
//     出生记录值并扣一条生命（飞船实体不销毁重建）
//   - 陨石 × 子弹：点-矩形（子弹视为质点）→ 双方销毁，得分加一
//   - 陨石 × 导弹：矩形-矩形 → 双方销毁，得分加一
//
// 外层按槽位顺序遍历陨石，内层遍历其余激活实体；外层陨石一旦被
// 销毁立即跳出内层循环——同一帧内已销毁的陨石不能再注册命中
type PhysicsSystem struct {
	world *game.World
}

// NewPhysicsSystem 创建碰撞系统
func NewPhysicsSystem(w *game.World) *PhysicsSystem {
	return &PhysicsSystem{world: w}
}

// checkRectToRect 检查两个实体的AABB（轴对齐边界框）是否发生碰撞
// 碰撞盒中心对齐实体位置，ScaleX/ScaleY 即碰撞盒的全宽/全高
func (ps *PhysicsSystem) checkRectToRect(t1, t2 *components.TransformComponent) bool {
	left1 := t1.Position.X - t1.ScaleX/2
	right1 := t1.Position.X + t1.ScaleX/2
	bottom1 := t1.Position.Y - t1.ScaleY/2
	top1 := t1.Position.Y + t1.ScaleY/2

	left2 := t2.Position.X - t2.ScaleX/2
	right2 := t2.Position.X + t2.ScaleX/2
	bottom2 := t2.Position.Y - t2.ScaleY/2
	top2 := t2.Position.Y + t2.ScaleY/2

	// 任一轴上没有重叠则没有碰撞
	return right1 >= left2 &&
		left1 <= right2 &&
		top1 >= bottom2 &&
		bottom1 <= top2
}

// checkPointToRect 检查点是否落在实体的AABB内
func (ps *PhysicsSystem) checkPointToRect(point utils.Vector2D, t *components.TransformComponent) bool {
	return point.X >= t.Position.X-t.ScaleX/2 &&
		point.X <= t.Position.X+t.ScaleX/2 &&
		point.Y >= t.Position.Y-t.ScaleY/2 &&
		point.Y <= t.Position.Y+t.ScaleY/2
}

// Update 执行本帧的碰撞检测与结算
func (ps *PhysicsSystem) Update(deltaTime float64) {
	manager := ps.world.Manager

	manager.ForEachActive(func(asteroid *ecs.GameObjectInstance) bool {
		if asteroid.Type() != types.ObjectAsteroid || asteroid.Transform == nil {
			return true
		}

		manager.ForEachActive(func(other *ecs.GameObjectInstance) bool {
			// 外层陨石已被销毁时，跳过它本帧剩余的所有配对
			if !asteroid.IsActive() {
				return false
			}
			if other.Transform == nil {
				return true
			}

			switch other.Type() {
			case types.ObjectShip:
				if ps.checkRectToRect(asteroid.Transform, other.Transform) {
					manager.Destroy(asteroid)
					ps.respawnShip(other)
				}

			case types.ObjectBullet:
				if ps.checkPointToRect(other.Transform.Position, asteroid.Transform) {
					manager.Destroy(asteroid)
					manager.Destroy(other)
					ps.world.AddScore(1)
				}

			case types.ObjectHomingMissile:
				if ps.checkRectToRect(asteroid.Transform, other.Transform) {
					manager.Destroy(asteroid)
					manager.Destroy(other)
					ps.world.AddScore(1)
				}
			}
			return true
		})
		return true
	})
}

// respawnShip 把飞船复位到创建时记录的出生位置和速度，并扣一条生命
// 飞船不会被陨石撞毁，实体保持存活
func (ps *PhysicsSystem) respawnShip(ship *ecs.GameObjectInstance) {
	ship.Transform.Position = ps.world.ShipSpawnPos
	if ship.Physics != nil {
		ship.Physics.Velocity = ps.world.ShipSpawnVel
	}
	ps.world.LoseLife()
	log.Printf("[Physics] 飞船被陨石撞击, 剩余生命: %d", ps.world.Lives)
}
