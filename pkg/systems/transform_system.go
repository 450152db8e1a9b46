package systems

import (
	"github.com/decker502/asteroids/pkg/ecs"
	"github.com/decker502/asteroids/pkg/game"
	"github.com/hajimehoshi/ebiten/v2"
)

// TransformSystem 变换系统
//
// 帧内所有位置和角度确定之后，为每个激活实体重建复合变换矩阵：
// 先缩放、再旋转、最后平移，把以原点为中心的单位网格映射到世界坐标。
// 矩阵缓存在空间组件上供渲染系统读取，每帧无条件重建（不做脏标记）
type TransformSystem struct {
	world *game.World
}

// NewTransformSystem 创建变换系统
func NewTransformSystem(w *game.World) *TransformSystem {
	return &TransformSystem{world: w}
}

// Update 重建所有激活实体的变换矩阵
func (s *TransformSystem) Update(deltaTime float64) {
	s.world.Manager.ForEachActive(func(inst *ecs.GameObjectInstance) bool {
		if inst.Transform == nil {
			return true
		}

		var geo ebiten.GeoM
		geo.Scale(inst.Transform.ScaleX, inst.Transform.ScaleY)
		geo.Rotate(inst.Transform.Angle)
		geo.Translate(inst.Transform.Position.X, inst.Transform.Position.Y)
		inst.Transform.Transform = geo

		return true
	})
}
