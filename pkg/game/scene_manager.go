package game

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

// SceneManager manages the game's high-level state by controlling which scene is active.
// It ensures only one scene's Update and Draw methods are called at any given time,
// and drives the full lifecycle on scene transitions.
type SceneManager struct {
	currentScene Scene
}

// NewSceneManager creates and returns a new SceneManager instance.
// The manager starts with no active scene; use SwitchTo to set the initial scene.
func NewSceneManager() *SceneManager {
	return &SceneManager{}
}

// SwitchTo 切换到新场景
// 旧场景按 Free → Unload 顺序退出，新场景按 Load → Init 顺序进入
func (sm *SceneManager) SwitchTo(scene Scene) {
	if sm.currentScene != nil {
		sm.currentScene.Free()
		sm.currentScene.Unload()
	}

	sm.currentScene = scene

	if scene != nil {
		log.Printf("[SceneManager] 进入新场景")
		scene.Load()
		scene.Init()
	}
}

// GetCurrentScene 返回当前活动的场景，没有活动场景时返回 nil
func (sm *SceneManager) GetCurrentScene() Scene {
	return sm.currentScene
}

// Restart 重开当前场景的一局游戏（销毁所有实体后重新 Init）
// 静态资源不重新加载
func (sm *SceneManager) Restart() {
	if sm.currentScene == nil {
		return
	}
	log.Printf("[SceneManager] 重开当前场景")
	sm.currentScene.Free()
	sm.currentScene.Init()
}

// Shutdown 退出当前场景并释放其资源
// 在游戏关闭时调用
func (sm *SceneManager) Shutdown() {
	sm.SwitchTo(nil)
}

// Update updates the currently active scene.
// If no scene is active, this method does nothing.
// deltaTime is the time elapsed since the last update in seconds.
func (sm *SceneManager) Update(deltaTime float64) {
	if sm.currentScene != nil {
		sm.currentScene.Update(deltaTime)
	}
}

// Draw renders the currently active scene to the provided screen.
// If no scene is active, this method does nothing.
func (sm *SceneManager) Draw(screen *ebiten.Image) {
	if sm.currentScene != nil {
		sm.currentScene.Draw(screen)
	}
}
