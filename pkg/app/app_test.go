package app

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/decker502/asteroids/pkg/config"
	"github.com/decker502/asteroids/pkg/scenes"
)

func TestNewApp(t *testing.T) {
	a, err := NewApp(Config{})
	if err != nil {
		t.Fatalf("NewApp 失败: %v", err)
	}

	if a.IsVerbose() {
		t.Error("默认不应启用详细日志")
	}

	// 启动后直接进入游戏场景，开局实体已生成
	scene, ok := a.GetSceneManager().GetCurrentScene().(*scenes.GameScene)
	if !ok {
		t.Fatal("启动后当前场景应为游戏场景")
	}
	w := scene.World()
	if w.Manager.LiveCount() != 1+len(w.Config.InitialAsteroids) {
		t.Errorf("开局实体数量错误: %d", w.Manager.LiveCount())
	}
}

func TestNewAppWithConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "game.yaml")
	if err := os.WriteFile(path, []byte("shipInitialLives: 5\n"), 0o644); err != nil {
		t.Fatalf("写入临时配置失败: %v", err)
	}

	a, err := NewApp(Config{ConfigPath: path})
	if err != nil {
		t.Fatalf("NewApp 失败: %v", err)
	}

	scene := a.GetSceneManager().GetCurrentScene().(*scenes.GameScene)
	if scene.World().Lives != 5 {
		t.Errorf("配置文件中的生命数未生效, 实际 %d", scene.World().Lives)
	}
}

func TestNewAppBadConfig(t *testing.T) {
	if _, err := NewApp(Config{ConfigPath: filepath.Join(t.TempDir(), "missing.yaml")}); err == nil {
		t.Error("配置文件不存在时 NewApp 应返回错误")
	}
}

func TestLayout(t *testing.T) {
	a, err := NewApp(Config{})
	if err != nil {
		t.Fatalf("NewApp 失败: %v", err)
	}

	// 逻辑尺寸固定，与外层窗口大小无关
	w, h := a.Layout(1920, 1080)
	if w != config.GameWindowWidth || h != config.GameWindowHeight {
		t.Errorf("逻辑尺寸错误: %dx%d", w, h)
	}
}
