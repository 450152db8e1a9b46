package systems

import (
	"math"

	"github.com/decker502/asteroids/pkg/entities"
	"github.com/decker502/asteroids/pkg/game"
	"github.com/decker502/asteroids/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// 默认按键绑定
const (
	KeyRotateLeft    = ebiten.KeyArrowLeft  // 逆时针旋转
	KeyRotateRight   = ebiten.KeyArrowRight // 顺时针旋转
	KeyThrustForward = ebiten.KeyArrowUp    // 向前推进
	KeyThrustBack    = ebiten.KeyArrowDown  // 向后推进
	KeyFireBullet    = ebiten.KeySpace      // 发射子弹
	KeyLaunchMissile = ebiten.KeyM          // 发射追踪导弹
)

// InputProvider 抽象每帧的按键查询
// 游戏运行时由键盘实现提供，测试中可注入伪造输入
type InputProvider interface {
	// IsHeld 按键当前是否处于按下状态
	IsHeld(key ebiten.Key) bool
	// WasTriggered 按键是否在本帧刚被按下
	WasTriggered(key ebiten.Key) bool
}

// keyboardInput 基于 Ebiten 键盘状态的默认输入实现
type keyboardInput struct{}

func (keyboardInput) IsHeld(key ebiten.Key) bool       { return ebiten.IsKeyPressed(key) }
func (keyboardInput) WasTriggered(key ebiten.Key) bool { return inpututil.IsKeyJustPressed(key) }

// InputSystem 处理玩家输入
//
// 每帧读取一次输入状态，更新飞船的角度和速度，并处理子弹/导弹的
// 生成请求。生成请求在容量耗尽时被静默丢弃
type InputSystem struct {
	world    *game.World
	provider InputProvider
}

// NewInputSystem 创建输入系统，默认使用键盘输入
func NewInputSystem(w *game.World) *InputSystem {
	return &InputSystem{
		world:    w,
		provider: keyboardInput{},
	}
}

// SetProvider 替换输入来源（测试注入用）
func (s *InputSystem) SetProvider(p InputProvider) {
	if p != nil {
		s.provider = p
	}
}

// Update 处理本帧输入
//
// 参数:
//   - deltaTime: 自上一帧以来经过的时间（秒）
func (s *InputSystem) Update(deltaTime float64) {
	ship := s.world.ShipInstance()
	if ship == nil || ship.Transform == nil || ship.Physics == nil {
		return
	}

	cfg := s.world.Config

	// 旋转：左键逆时针，右键顺时针，角度回绕到 (-π, π] 区间
	if s.provider.IsHeld(KeyRotateLeft) {
		ship.Transform.Angle += cfg.ShipRotSpeed * deltaTime
		ship.Transform.Angle = utils.Wrap(ship.Transform.Angle, -math.Pi, math.Pi)
	}
	if s.provider.IsHeld(KeyRotateRight) {
		ship.Transform.Angle -= cfg.ShipRotSpeed * deltaTime
		ship.Transform.Angle = utils.Wrap(ship.Transform.Angle, -math.Pi, math.Pi)
	}

	// 推进：沿当前朝向加速，推进帧上施加速度衰减
	if s.provider.IsHeld(KeyThrustForward) {
		s.thrust(ship.Transform.Angle, cfg.ShipAccelForward, deltaTime)
	}
	if s.provider.IsHeld(KeyThrustBack) {
		s.thrust(ship.Transform.Angle, cfg.ShipAccelBackward, deltaTime)
	}

	// 发射子弹：出生在飞船位置，沿飞船朝向以固定速度飞行
	if s.provider.WasTriggered(KeyFireBullet) {
		if bullet, ok := entities.NewBullet(s.world); ok {
			bullet.Physics.Velocity = headingVector(ship.Transform.Angle).Scale(cfg.BulletSpeed)
		}
	}

	// 发射追踪导弹：继承飞船朝向，目标由行为系统在下一帧锁定
	if s.provider.WasTriggered(KeyLaunchMissile) {
		if missile, ok := entities.NewHomingMissile(s.world); ok {
			missile.Physics.Velocity = headingVector(ship.Transform.Angle).Scale(cfg.MissileSpeed)
		}
	}
}

// thrust 沿朝向施加加速度并应用速度衰减
func (s *InputSystem) thrust(angle, accel, deltaTime float64) {
	ship := s.world.ShipInstance()
	vel := ship.Physics.Velocity.Add(headingVector(angle).Scale(accel * deltaTime))
	ship.Physics.Velocity = vel.Scale(s.world.Config.Friction)
}

// headingVector 返回角度对应的单位方向向量
func headingVector(angle float64) utils.Vector2D {
	return utils.Vector2D{X: math.Cos(angle), Y: math.Sin(angle)}
}
