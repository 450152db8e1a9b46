// Package scenes 实现具体的游戏场景
package scenes

import (
	"fmt"
	"log"

	"github.com/decker502/asteroids/pkg/config"
	"github.com/decker502/asteroids/pkg/entities"
	"github.com/decker502/asteroids/pkg/game"
	"github.com/decker502/asteroids/pkg/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// GameScene 游戏主场景：一局陨石射击
//
// 场景拥有整个模拟世界和所有系统，每帧按固定顺序驱动管线：
// 输入 → 运动积分 → 边界与行为 → 碰撞结算 → 变换重建，
// 渲染在 Draw 阶段单独执行。整帧同步执行完毕后才轮到渲染，
// 帧中间没有任何阻塞或挂起点
type GameScene struct {
	world        *game.World
	sceneManager *game.SceneManager

	inputSystem     *systems.InputSystem
	movementSystem  *systems.MovementSystem
	behaviorSystem  *systems.BehaviorSystem
	physicsSystem   *systems.PhysicsSystem
	transformSystem *systems.TransformSystem
	renderSystem    *systems.RenderSystem
}

// NewGameScene 创建游戏场景
//
// 参数:
//   - cfg: 玩法配置，nil 时使用默认配置
//   - sceneManager: 场景管理器（用于后续的场景切换）
func NewGameScene(cfg *config.GameConfig, sceneManager *game.SceneManager) *GameScene {
	world := game.NewWorld(cfg)

	return &GameScene{
		world:        world,
		sceneManager: sceneManager,

		inputSystem:     systems.NewInputSystem(world),
		movementSystem:  systems.NewMovementSystem(world),
		behaviorSystem:  systems.NewBehaviorSystem(world),
		physicsSystem:   systems.NewPhysicsSystem(world),
		transformSystem: systems.NewTransformSystem(world),
		renderSystem:    systems.NewRenderSystem(world),
	}
}

// World 返回场景的模拟世界
func (s *GameScene) World() *game.World {
	return s.world
}

// InputSystem 返回输入系统（用于注入自定义输入来源）
func (s *GameScene) InputSystem() *systems.InputSystem {
	return s.inputSystem
}

// Load 构建形状目录
// 每个类别一个归一化网格，顶点坐标都在 [-0.5, 0.5] 范围内
func (s *GameScene) Load() {
	buildShapes(s.world.Catalog)
	log.Printf("[Scene] 形状目录构建完成")
}

// Init 初始化一局游戏：重置得分和生命数，生成飞船和初始陨石
func (s *GameScene) Init() {
	s.world.ResetRun()

	if _, ok := entities.NewShip(s.world); !ok {
		log.Printf("[Scene] 错误: 飞船创建失败")
		return
	}

	for _, spawn := range s.world.Config.InitialAsteroids {
		if _, ok := entities.NewAsteroidFromSpawn(s.world, spawn); !ok {
			log.Printf("[Scene] 警告: 初始陨石生成请求被丢弃 (容量耗尽)")
		}
	}

	log.Printf("[Scene] 开局完成: %d 个实体, %d 条生命", s.world.Manager.LiveCount(), s.world.Lives)
}

// Update 执行一帧完整的模拟管线
//
// 参数:
//   - deltaTime: 自上一帧以来经过的时间（秒）
func (s *GameScene) Update(deltaTime float64) {
	// 本帧的世界边界由当前窗口逻辑尺寸换算，不跨帧缓存
	bounds := game.BoundsFromWindow(config.GameWindowWidth, config.GameWindowHeight)

	s.inputSystem.Update(deltaTime)
	s.movementSystem.Update(deltaTime)
	s.behaviorSystem.Update(deltaTime, bounds)
	s.physicsSystem.Update(deltaTime)
	s.transformSystem.Update(deltaTime)
}

// Draw 渲染场景和简单的状态栏
func (s *GameScene) Draw(screen *ebiten.Image) {
	s.renderSystem.Draw(screen)
	ebitenutil.DebugPrintAt(screen,
		fmt.Sprintf("SCORE: %d  LIVES: %d", s.world.Score, s.world.Lives), 8, 8)
}

// Free 销毁本局的所有活动实体
func (s *GameScene) Free() {
	s.world.Manager.Clear()
	log.Printf("[Scene] 所有实体已销毁")
}

// Unload 释放形状目录
func (s *GameScene) Unload() {
	s.world.Catalog.Release()
	log.Printf("[Scene] 形状目录已释放")
}
