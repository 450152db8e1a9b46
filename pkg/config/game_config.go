package config

import (
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"
)

// 游戏玩法调参配置
// 所有数值都可以通过 YAML 文件覆盖，缺省时使用内置默认值。
// 默认值与原版游戏保持一致，随意修改这些值可以让游戏更有趣

// AsteroidSpawn 单个初始陨石的生成配置
type AsteroidSpawn struct {
	X         float64 `yaml:"x"`         // 初始位置X（世界坐标）
	Y         float64 `yaml:"y"`         // 初始位置Y（世界坐标）
	VelX      float64 `yaml:"velX"`      // 初始速度X（单位/秒）
	VelY      float64 `yaml:"velY"`      // 初始速度Y（单位/秒）
	ScaleMult float64 `yaml:"scaleMult"` // 基准尺寸的缩放倍数，0 视为 1
}

// GameConfig 游戏玩法配置
type GameConfig struct {
	// Ship Configuration (飞船配置)
	ShipSize          float64 `yaml:"shipSize"`          // 飞船尺寸（网格缩放值，同时是碰撞盒边长）
	ShipAccelForward  float64 `yaml:"shipAccelForward"`  // 前进加速度（单位/秒²）
	ShipAccelBackward float64 `yaml:"shipAccelBackward"` // 后退加速度（单位/秒²，负值）
	ShipRotSpeed      float64 `yaml:"shipRotSpeed"`      // 旋转速度（弧度/秒）
	ShipInitialLives  int     `yaml:"shipInitialLives"`  // 初始生命数（0 = 游戏结束）
	Friction          float64 `yaml:"friction"`          // 推进时的速度衰减系数

	// Bullet Configuration (子弹配置)
	BulletSize  float64 `yaml:"bulletSize"`  // 子弹尺寸
	BulletSpeed float64 `yaml:"bulletSpeed"` // 子弹速度（单位/秒）

	// Asteroid Configuration (陨石配置)
	AsteroidSize float64 `yaml:"asteroidSize"` // 陨石基准尺寸

	// Homing Missile Configuration (追踪导弹配置)
	MissileWidth   float64 `yaml:"missileWidth"`   // 导弹宽度
	MissileHeight  float64 `yaml:"missileHeight"`  // 导弹高度
	MissileSpeed   float64 `yaml:"missileSpeed"`   // 导弹速度（单位/秒）
	HomingTurnRate float64 `yaml:"homingTurnRate"` // 导弹每秒最大转向角度（弧度/秒）

	// InstanceCapacity 实例槽位容量，超出后生成请求被静默丢弃
	InstanceCapacity int `yaml:"instanceCapacity"`

	// InitialAsteroids 开局生成的陨石列表
	InitialAsteroids []AsteroidSpawn `yaml:"initialAsteroids"`
}

// DefaultGameConfig 返回内置默认配置
// 数值取自原版游戏的定义
func DefaultGameConfig() *GameConfig {
	return &GameConfig{
		ShipSize:          25.0,
		ShipAccelForward:  75.0,
		ShipAccelBackward: -100.0,
		ShipRotSpeed:      2.0 * math.Pi,
		ShipInitialLives:  3,
		Friction:          0.99,

		BulletSize:  5.0,
		BulletSpeed: 150.0,

		AsteroidSize: 50.0,

		MissileWidth:   10.0,
		MissileHeight:  5.0,
		MissileSpeed:   75.0,
		HomingTurnRate: math.Pi / 2.0,

		InstanceCapacity: 2048,

		InitialAsteroids: []AsteroidSpawn{
			{X: 75, Y: 321, VelX: 60, VelY: -45, ScaleMult: 3},
			{X: -75, Y: 75, VelX: -30, VelY: 20, ScaleMult: 2},
			{X: 200, Y: 10, VelX: -10, VelY: 22, ScaleMult: 1},
		},
	}
}

// LoadGameConfig 从YAML文件加载游戏配置
// 文件中省略的字段保留默认值
//
// 参数：
//
//	filepath - 配置文件路径，空字符串表示直接使用默认配置
//
// 返回：
//
//	*GameConfig - 解析并校验后的配置对象
//	error - 文件读取、解析或校验失败时返回错误信息
func LoadGameConfig(filepath string) (*GameConfig, error) {
	cfg := DefaultGameConfig()
	if filepath == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("读取游戏配置文件失败: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("解析游戏配置文件失败 %s: %w", filepath, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("游戏配置校验失败 %s: %w", filepath, err)
	}

	return cfg, nil
}

// Validate 校验配置数值的合法性
func (c *GameConfig) Validate() error {
	if c.ShipSize <= 0 {
		return fmt.Errorf("shipSize 必须大于 0, 当前值: %v", c.ShipSize)
	}
	if c.BulletSize <= 0 {
		return fmt.Errorf("bulletSize 必须大于 0, 当前值: %v", c.BulletSize)
	}
	if c.AsteroidSize <= 0 {
		return fmt.Errorf("asteroidSize 必须大于 0, 当前值: %v", c.AsteroidSize)
	}
	if c.MissileWidth <= 0 || c.MissileHeight <= 0 {
		return fmt.Errorf("导弹尺寸必须大于 0, 当前值: %vx%v", c.MissileWidth, c.MissileHeight)
	}
	if c.BulletSpeed <= 0 {
		return fmt.Errorf("bulletSpeed 必须大于 0, 当前值: %v", c.BulletSpeed)
	}
	if c.MissileSpeed <= 0 {
		return fmt.Errorf("missileSpeed 必须大于 0, 当前值: %v", c.MissileSpeed)
	}
	if c.HomingTurnRate < 0 {
		return fmt.Errorf("homingTurnRate 不能为负, 当前值: %v", c.HomingTurnRate)
	}
	if c.ShipInitialLives < 0 {
		return fmt.Errorf("shipInitialLives 不能为负, 当前值: %d", c.ShipInitialLives)
	}
	if c.InstanceCapacity <= 0 {
		return fmt.Errorf("instanceCapacity 必须大于 0, 当前值: %d", c.InstanceCapacity)
	}
	return nil
}
