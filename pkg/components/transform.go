package components

import (
	"github.com/decker502/asteroids/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
)

// TransformComponent 存储实体的空间状态
// Transform 矩阵每帧由变换系统重建（缩放 → 旋转 → 平移），
// 渲染系统直接读取缓存的矩阵，不做任何脏标记优化
type TransformComponent struct {
	Position utils.Vector2D // 当前位置（世界坐标）
	Angle    float64        // 当前朝向角度（弧度，范围 (-π, π]）
	ScaleX   float64        // X 方向缩放值（同时是碰撞盒的全宽）
	ScaleY   float64        // Y 方向缩放值（同时是碰撞盒的全高）

	Transform ebiten.GeoM // 当前帧的复合变换矩阵
}
