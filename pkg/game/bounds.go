package game

// Bounds 当前帧的世界可视边界
// 边界每帧从窗口逻辑尺寸重新换算，回绕和出界判定必须使用当前帧的值
type Bounds struct {
	MinX float64
	MaxX float64
	MinY float64
	MaxY float64
}

// BoundsFromWindow 由窗口逻辑尺寸换算世界边界
// 世界坐标以屏幕中心为原点，边界对称分布
func BoundsFromWindow(width, height int) Bounds {
	halfW := float64(width) / 2
	halfH := float64(height) / 2
	return Bounds{
		MinX: -halfW,
		MaxX: halfW,
		MinY: -halfH,
		MaxY: halfH,
	}
}
