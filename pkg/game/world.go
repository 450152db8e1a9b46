package game

import (
	"log"

	"github.com/decker502/asteroids/pkg/config"
	"github.com/decker502/asteroids/pkg/ecs"
	"github.com/decker502/asteroids/pkg/types"
	"github.com/decker502/asteroids/pkg/utils"
)

// World 保存一局模拟的全部可变状态
//
// 实例管理器、形状目录、得分、生命数以及飞船的出生点记录都集中在
// 这个结构里，由场景创建并传递给各个系统。不使用进程级全局变量，
// 多个 World 可以共存（例如测试中各自独立的模拟）
type World struct {
	Manager *ecs.InstanceManager // 实例槽位管理器
	Catalog *ShapeCatalog        // 形状目录
	Config  *config.GameConfig   // 玩法配置

	Score int // 当前得分（击毁的陨石数量）
	Lives int // 剩余生命数（0 = 游戏结束）

	// Ship 飞船实体的引用（整局游戏只有一艘）
	Ship types.InstanceRef

	// 飞船创建时记录的出生位置和速度，陨石撞击后按此复位
	ShipSpawnPos utils.Vector2D
	ShipSpawnVel utils.Vector2D
}

// NewWorld 创建一个新的模拟世界
func NewWorld(cfg *config.GameConfig) *World {
	if cfg == nil {
		cfg = config.DefaultGameConfig()
	}
	return &World{
		Manager: ecs.NewInstanceManager(cfg.InstanceCapacity),
		Catalog: NewShapeCatalog(),
		Config:  cfg,
	}
}

// ShipInstance 解析并返回飞船实例
// 飞船尚未创建或已被销毁时返回 nil
func (w *World) ShipInstance() *ecs.GameObjectInstance {
	return w.Manager.Resolve(w.Ship)
}

// AddScore 增加得分
func (w *World) AddScore(amount int) {
	w.Score += amount
}

// LoseLife 扣除一条生命
// 生命数不会减到 0 以下；降到 0 时记录游戏结束日志
func (w *World) LoseLife() {
	if w.Lives <= 0 {
		return
	}
	w.Lives--
	if w.Lives == 0 {
		log.Printf("[World] Game over, final score: %d", w.Score)
	}
}

// ResetRun 重置一局游戏的得分和生命数
func (w *World) ResetRun() {
	w.Score = 0
	w.Lives = w.Config.ShipInitialLives
}
