package main

import (
	"flag"
	"log"

	"github.com/decker502/asteroids/pkg/app"
	"github.com/decker502/asteroids/pkg/config"
	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	verbose := flag.Bool("verbose", false, "启用详细日志输出")
	configPath := flag.String("config", "", "玩法配置文件路径 (YAML), 为空使用内置默认值")
	flag.Parse()

	game, err := app.NewApp(app.Config{
		Verbose:    *verbose,
		ConfigPath: *configPath,
	})
	if err != nil {
		log.Fatalf("游戏初始化失败: %v", err)
	}

	ebiten.SetWindowSize(config.GameWindowWidth, config.GameWindowHeight)
	ebiten.SetWindowTitle("Asteroids")

	// Start the game loop
	// This will call Update() and Draw() repeatedly until the window is closed
	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
