package scenes

import (
	"testing"

	"github.com/decker502/asteroids/pkg/config"
	"github.com/decker502/asteroids/pkg/ecs"
	"github.com/decker502/asteroids/pkg/game"
	"github.com/decker502/asteroids/pkg/types"
	"github.com/hajimehoshi/ebiten/v2"
)

// idleInput 永远没有任何按键的输入源
type idleInput struct{}

func (idleInput) IsHeld(key ebiten.Key) bool       { return false }
func (idleInput) WasTriggered(key ebiten.Key) bool { return false }

func newLoadedScene() *GameScene {
	scene := NewGameScene(config.DefaultGameConfig(), game.NewSceneManager())
	scene.InputSystem().SetProvider(idleInput{})
	scene.Load()
	scene.Init()
	return scene
}

func countByType(w *game.World) map[types.ObjectType]int {
	counts := make(map[types.ObjectType]int)
	w.Manager.ForEachActive(func(inst *ecs.GameObjectInstance) bool {
		counts[inst.Type()]++
		return true
	})
	return counts
}

func TestGameSceneInit(t *testing.T) {
	scene := newLoadedScene()
	w := scene.World()

	// 开局生成 1 艘飞船和配置表中的 3 个陨石
	counts := countByType(w)
	if counts[types.ObjectShip] != 1 {
		t.Errorf("应有 1 艘飞船, 实际 %d", counts[types.ObjectShip])
	}
	if counts[types.ObjectAsteroid] != len(w.Config.InitialAsteroids) {
		t.Errorf("初始陨石数量错误, 期望 %d, 实际 %d",
			len(w.Config.InitialAsteroids), counts[types.ObjectAsteroid])
	}

	if w.Score != 0 || w.Lives != w.Config.ShipInitialLives {
		t.Errorf("开局状态错误: score=%d lives=%d", w.Score, w.Lives)
	}
	if w.ShipInstance() == nil {
		t.Error("World 应持有飞船引用")
	}
}

func TestGameSceneLoadRegistersShapes(t *testing.T) {
	scene := newLoadedScene()
	catalog := scene.World().Catalog

	for objType := types.ObjectType(0); objType < types.ObjectTypeNum; objType++ {
		shape := catalog.Get(objType)
		if shape == nil {
			t.Errorf("类别 %v 缺少网格", objType)
			continue
		}
		if len(shape.Vertices) == 0 || len(shape.Indices)%3 != 0 {
			t.Errorf("类别 %v 的网格数据非法: %d 个顶点, %d 个索引",
				objType, len(shape.Vertices), len(shape.Indices))
		}
		// 顶点坐标归一化在 [-0.5, 0.5] 范围内
		for _, v := range shape.Vertices {
			if v.DstX < -0.5 || v.DstX > 0.5 || v.DstY < -0.5 || v.DstY > 0.5 {
				t.Errorf("类别 %v 的顶点超出归一化范围: (%v, %v)", objType, v.DstX, v.DstY)
			}
		}
	}
}

func TestGameSceneUpdatePipeline(t *testing.T) {
	scene := newLoadedScene()
	w := scene.World()

	var asteroid *ecs.GameObjectInstance
	w.Manager.ForEachActive(func(inst *ecs.GameObjectInstance) bool {
		if inst.Type() == types.ObjectAsteroid {
			asteroid = inst
			return false
		}
		return true
	})
	if asteroid == nil {
		t.Fatal("找不到初始陨石")
	}
	posBefore := asteroid.Transform.Position

	// 一帧管线：位置被积分推进，变换矩阵随之重建
	scene.Update(1.0 / 60.0)

	if asteroid.Transform.Position == posBefore {
		t.Error("一帧后陨石位置应被推进")
	}
	x, y := asteroid.Transform.Transform.Apply(0, 0)
	if x != asteroid.Transform.Position.X || y != asteroid.Transform.Position.Y {
		t.Errorf("变换矩阵应反映最新位置: 矩阵 (%v, %v), 位置 %+v",
			x, y, asteroid.Transform.Position)
	}
}

func TestGameSceneFreeAndRestart(t *testing.T) {
	scene := newLoadedScene()
	w := scene.World()
	w.AddScore(5)

	scene.Free()
	if w.Manager.LiveCount() != 0 {
		t.Errorf("Free 后不应有存活实体, 实际 %d", w.Manager.LiveCount())
	}

	// 重新 Init 等价于重开一局：实体重建，得分清零
	scene.Init()
	if w.Score != 0 {
		t.Errorf("重开后得分应清零, 实际 %d", w.Score)
	}
	if w.Manager.LiveCount() != 1+len(w.Config.InitialAsteroids) {
		t.Errorf("重开后实体数量错误: %d", w.Manager.LiveCount())
	}
}

func TestGameSceneUnload(t *testing.T) {
	scene := newLoadedScene()
	scene.Free()
	scene.Unload()

	if scene.World().Catalog.Get(types.ObjectShip) != nil {
		t.Error("Unload 后形状目录应被清空")
	}
}

func TestGameSceneCapacityExhaustedSpawns(t *testing.T) {
	// 容量只够飞船和部分陨石时，多余的生成请求被静默丢弃
	cfg := config.DefaultGameConfig()
	cfg.InstanceCapacity = 2

	scene := NewGameScene(cfg, game.NewSceneManager())
	scene.InputSystem().SetProvider(idleInput{})
	scene.Load()
	scene.Init()

	w := scene.World()
	if w.Manager.LiveCount() != 2 {
		t.Errorf("实体数量应等于容量, 实际 %d", w.Manager.LiveCount())
	}
	counts := countByType(w)
	if counts[types.ObjectShip] != 1 || counts[types.ObjectAsteroid] != 1 {
		t.Errorf("应为 1 艘飞船 + 1 个陨石, 实际 %+v", counts)
	}
}
