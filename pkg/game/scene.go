package game

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Scene represents a game scene (e.g., main menu, gameplay).
// Each scene owns its resources and simulation state, and exposes the
// full state-machine lifecycle to the SceneManager.
type Scene interface {
	// Load 构建场景的静态资源（形状目录等），进入场景时调用一次
	Load()

	// Init 初始化一局游戏：重置得分和生命数，生成初始实体
	// Load 之后、第一次 Update 之前调用
	Init()

	// Update updates the scene logic based on the elapsed time.
	// deltaTime is the time elapsed since the last update in seconds.
	Update(deltaTime float64)

	// Draw renders the scene to the provided screen.
	// screen is the target image where the scene should be drawn.
	Draw(screen *ebiten.Image)

	// Free 销毁本局游戏的所有活动实体，离开场景时调用
	Free()

	// Unload 释放 Load 阶段构建的静态资源，Free 之后调用
	Unload()
}
