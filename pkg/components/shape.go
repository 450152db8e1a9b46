package components

import (
	"github.com/decker502/asteroids/pkg/types"
	"github.com/hajimehoshi/ebiten/v2"
)

// Shape 形状目录中的一项：对象类别与它的三角形网格
//
// 网格顶点全部落在 [-0.5, 0.5] 的归一化范围内（以原点为中心的单位正方形），
// 实际大小由实体 TransformComponent 的缩放值决定。
// 网格由场景在 Load 阶段一次性构建，运行时只读。
type Shape struct {
	Type     types.ObjectType // 使用此网格的对象类别
	Vertices []ebiten.Vertex  // 网格顶点（含颜色）
	Indices  []uint16         // 三角形顶点索引，每 3 个为一个三角形
}
