package scenes

import (
	"github.com/decker502/asteroids/pkg/components"
	"github.com/decker502/asteroids/pkg/game"
	"github.com/decker502/asteroids/pkg/types"
	"github.com/hajimehoshi/ebiten/v2"
)

// 网格构建
//
// 所有网格都是归一化形状：顶点坐标落在 [-0.5, 0.5]，以原点为中心，
// 实际大小由实体的缩放值决定。颜色沿用原版配色：
// 飞船尾部红色、船头白色，子弹红色，陨石黄色，导弹白色

// meshVertex 构造一个带颜色的网格顶点（纹理坐标由渲染系统填充）
func meshVertex(x, y float32, r, g, b float32) ebiten.Vertex {
	return ebiten.Vertex{
		DstX:   x,
		DstY:   y,
		ColorR: r,
		ColorG: g,
		ColorB: b,
		ColorA: 1,
	}
}

// quadVertices 构造单色四边形的顶点
func quadVertices(r, g, b float32) []ebiten.Vertex {
	return []ebiten.Vertex{
		meshVertex(-0.5, 0.5, r, g, b),
		meshVertex(-0.5, -0.5, r, g, b),
		meshVertex(0.5, -0.5, r, g, b),
		meshVertex(0.5, 0.5, r, g, b),
	}
}

// quadIndices 四边形的两个三角形
var quadIndices = []uint16{0, 1, 2, 0, 3, 2}

// buildShapes 构建全部四个类别的网格并注册到形状目录
func buildShapes(catalog *game.ShapeCatalog) {
	// 飞船：指向 +X 方向的三角形
	catalog.Register(&components.Shape{
		Type: types.ObjectShip,
		Vertices: []ebiten.Vertex{
			meshVertex(-0.5, 0.5, 1, 0, 0),
			meshVertex(-0.5, -0.5, 1, 0, 0),
			meshVertex(0.5, 0, 1, 1, 1),
		},
		Indices: []uint16{0, 1, 2},
	})

	catalog.Register(&components.Shape{
		Type:     types.ObjectBullet,
		Vertices: quadVertices(1, 0, 0),
		Indices:  quadIndices,
	})

	catalog.Register(&components.Shape{
		Type:     types.ObjectAsteroid,
		Vertices: quadVertices(1, 1, 0),
		Indices:  quadIndices,
	})

	catalog.Register(&components.Shape{
		Type:     types.ObjectHomingMissile,
		Vertices: quadVertices(1, 1, 1),
		Indices:  quadIndices,
	})
}
