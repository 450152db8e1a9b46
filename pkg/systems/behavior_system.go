package systems

import (
	"math"

	"github.com/decker502/asteroids/pkg/ecs"
	"github.com/decker502/asteroids/pkg/game"
	"github.com/decker502/asteroids/pkg/types"
	"github.com/decker502/asteroids/pkg/utils"
)

// BehaviorSystem 边界与行为系统
//
// 运动积分之后，按对象类别执行每帧的边界规则和类别专属行为：
//   - 飞船/陨石/导弹：以各自半尺寸为边距做环形回绕
//   - 子弹：离开可视边界立即销毁（不回绕）
//   - 追踪导弹：回绕后执行目标锁定与转向
//
// 边界使用调用方传入的当前帧数值，不做缓存（摄像机缩放时边界会变化）
type BehaviorSystem struct {
	world *game.World
}

// NewBehaviorSystem 创建边界与行为系统
func NewBehaviorSystem(w *game.World) *BehaviorSystem {
	return &BehaviorSystem{world: w}
}

// Update 对所有激活实体执行边界与行为规则
//
// 参数:
//   - deltaTime: 自上一帧以来经过的时间（秒）
//   - bounds: 当前帧的世界可视边界
func (s *BehaviorSystem) Update(deltaTime float64, bounds game.Bounds) {
	s.world.Manager.ForEachActive(func(inst *ecs.GameObjectInstance) bool {
		if inst.Transform == nil {
			return true
		}

		switch inst.Type() {
		case types.ObjectShip, types.ObjectAsteroid:
			s.wrapPosition(inst, bounds)

		case types.ObjectBullet:
			// 子弹出界即销毁，任何一轴越界都算出界
			pos := inst.Transform.Position
			if pos.X > bounds.MaxX || pos.X < bounds.MinX ||
				pos.Y > bounds.MaxY || pos.Y < bounds.MinY {
				s.world.Manager.Destroy(inst)
			}

		case types.ObjectHomingMissile:
			s.wrapPosition(inst, bounds)
			if target := s.acquireTarget(inst); target != nil {
				s.steerTowards(inst, target, deltaTime)
			}
		}
		return true
	})
}

// wrapPosition 以实体半尺寸为边距，X/Y 两轴独立做环形回绕
// 实体从一侧完全离开可视区后，从另一侧等距离进入
func (s *BehaviorSystem) wrapPosition(inst *ecs.GameObjectInstance, bounds game.Bounds) {
	halfW := inst.Transform.ScaleX / 2
	halfH := inst.Transform.ScaleY / 2

	inst.Transform.Position.X = utils.Wrap(inst.Transform.Position.X, bounds.MinX-halfW, bounds.MaxX+halfW)
	inst.Transform.Position.Y = utils.Wrap(inst.Transform.Position.Y, bounds.MinY-halfH, bounds.MaxY+halfH)
}

// acquireTarget 返回导弹当前帧的有效目标
//
// 已锁定的目标仍然存活时直接沿用。引用为空或已失效（目标被销毁、
// 槽位被回收给其他实体）时，按槽位顺序扫描并锁定第一个激活的陨石
// （first-fit，不是最近的陨石）。没有陨石时本帧保持无目标
func (s *BehaviorSystem) acquireTarget(missile *ecs.GameObjectInstance) *ecs.GameObjectInstance {
	if missile.Target == nil {
		return nil
	}

	if target := s.world.Manager.Resolve(missile.Target.Target); target != nil && target.Type() == types.ObjectAsteroid {
		return target
	}

	var found *ecs.GameObjectInstance
	s.world.Manager.ForEachActive(func(inst *ecs.GameObjectInstance) bool {
		if inst.Type() == types.ObjectAsteroid {
			found = inst
			return false
		}
		return true
	})

	if found != nil {
		missile.Target.Target = found.Ref()
	} else {
		missile.Target.Target = types.InstanceRef{}
	}
	return found
}

// steerTowards 把导弹朝目标方向转向
//
// 由速度方向与目标方向的夹角决定转向量，单帧转向量不超过
// HomingTurnRate * deltaTime。转向方向由速度左垂直向量与目标方向的
// 点积符号决定（负为顺时针）。新速度严格按新朝向重建
// （MissileSpeed * (cos, sin)），不是旋转旧速度向量，避免漂移累积
func (s *BehaviorSystem) steerTowards(missile, target *ecs.GameObjectInstance, deltaTime float64) {
	if missile.Physics == nil || target.Transform == nil {
		return
	}

	vel := missile.Physics.Velocity
	toTarget := target.Transform.Position.Sub(missile.Transform.Position)

	velLen := vel.Length()
	distLen := toTarget.Length()
	if velLen == 0 || distLen == 0 {
		// 零向量无法定义夹角，本帧跳过转向
		return
	}

	cosAngle := utils.Clamp(vel.Dot(toTarget)/(velLen*distLen), -1, 1)
	turn := math.Min(s.world.Config.HomingTurnRate*deltaTime, math.Acos(cosAngle))
	if vel.LeftPerp().Dot(toTarget) < 0 {
		turn = -turn
	}

	angle := missile.Transform.Angle + turn
	missile.Transform.Angle = utils.Wrap(angle, -math.Pi, math.Pi)

	heading := utils.Vector2D{X: math.Cos(angle), Y: math.Sin(angle)}
	missile.Physics.Velocity = heading.Normalize().Scale(s.world.Config.MissileSpeed)
}
