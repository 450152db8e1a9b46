// Package app 提供游戏应用的核心包装器
//
// 该包将游戏初始化逻辑从 main 包提取出来，负责加载配置、
// 创建场景管理器并实现 ebiten.Game 接口。
package app

import (
	"fmt"
	"io"
	"log"

	"github.com/decker502/asteroids/pkg/config"
	"github.com/decker502/asteroids/pkg/game"
	"github.com/decker502/asteroids/pkg/scenes"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// ConfigPath 指定玩法配置文件路径，为空则使用内置默认值
	ConfigPath string
}

// App 是游戏应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	sceneManager *game.SceneManager
	verbose      bool
}

// NewApp 创建并初始化游戏应用
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	// 加载玩法配置
	gameConfig, err := config.LoadGameConfig(cfg.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("玩法配置加载失败: %w", err)
	}
	log.Printf("[App] 玩法配置加载完成, 初始陨石数: %d", len(gameConfig.InitialAsteroids))

	// 创建场景管理器并进入游戏场景
	sceneManager := game.NewSceneManager()
	sceneManager.SwitchTo(scenes.NewGameScene(gameConfig, sceneManager))

	return &App{
		sceneManager: sceneManager,
		verbose:      cfg.Verbose,
	}, nil
}

// Update 更新游戏逻辑
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	// R 键重开一局
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		a.sceneManager.Restart()
	}

	deltaTime := 1.0 / 60.0
	a.sceneManager.Update(deltaTime)
	return nil
}

// Draw 绘制游戏画面
// 每帧调用一次
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// Layout 返回游戏的逻辑屏幕尺寸
// 此尺寸独立于实际窗口大小，Ebitengine 会自动处理缩放
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.GameWindowWidth, config.GameWindowHeight
}

// GetSceneManager 返回场景管理器
func (a *App) GetSceneManager() *game.SceneManager {
	return a.sceneManager
}

// IsVerbose 返回是否启用了详细日志
func (a *App) IsVerbose() bool {
	return a.verbose
}
