// Package types 定义共享的基础类型
// 这个包不依赖任何其他业务包，用于解决循环引用问题
package types

// ObjectType 定义游戏对象的类别
// 类别决定对象创建时挂载的组件默认值，以及每帧的边界行为
type ObjectType int

const (
	// ObjectShip 玩家飞船
	ObjectShip ObjectType = iota
	// ObjectBullet 子弹
	ObjectBullet
	// ObjectAsteroid 陨石
	ObjectAsteroid
	// ObjectHomingMissile 追踪导弹
	ObjectHomingMissile

	// ObjectTypeNum 类别总数，用于形状目录等按类别索引的表
	ObjectTypeNum
)

// String 返回对象类别的字符串表示
func (t ObjectType) String() string {
	switch t {
	case ObjectShip:
		return "Ship"
	case ObjectBullet:
		return "Bullet"
	case ObjectAsteroid:
		return "Asteroid"
	case ObjectHomingMissile:
		return "HomingMissile"
	default:
		return "Unknown"
	}
}
