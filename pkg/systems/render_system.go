package systems

import (
	"image"
	"image/color"

	"github.com/decker502/asteroids/pkg/ecs"
	"github.com/decker502/asteroids/pkg/game"
	"github.com/hajimehoshi/ebiten/v2"
)

// RenderSystem 渲染系统
//
// 按槽位顺序把每个激活实体的网格和当前帧的变换矩阵提交给屏幕。
// 网格顶点带颜色、无纹理，统一用 1x1 白色图片作为纹理源绘制。
// 世界坐标（原点居中、Y 向上）到屏幕坐标的换算由视图矩阵完成
type RenderSystem struct {
	world *game.World

	whiteImage *ebiten.Image // 惰性创建的白色纹理源
	vertices   []ebiten.Vertex
}

// NewRenderSystem 创建渲染系统
func NewRenderSystem(w *game.World) *RenderSystem {
	return &RenderSystem{
		world:    w,
		vertices: make([]ebiten.Vertex, 0, 64),
	}
}

// whiteSource 返回 1x1 白色纹理源
// 首次调用时创建，避免在没有图形上下文的测试环境里分配 GPU 资源
func (s *RenderSystem) whiteSource() *ebiten.Image {
	if s.whiteImage == nil {
		img := ebiten.NewImage(3, 3)
		img.Fill(color.White)
		s.whiteImage = img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	}
	return s.whiteImage
}

// Draw 绘制所有激活实体
func (s *RenderSystem) Draw(screen *ebiten.Image) {
	// 视图矩阵：世界坐标 Y 向上，屏幕坐标 Y 向下，原点移到屏幕中心
	bounds := screen.Bounds()
	var view ebiten.GeoM
	view.Scale(1, -1)
	view.Translate(float64(bounds.Dx())/2, float64(bounds.Dy())/2)

	src := s.whiteSource()

	s.world.Manager.ForEachActive(func(inst *ecs.GameObjectInstance) bool {
		if inst.Transform == nil || inst.Sprite == nil || inst.Sprite.Shape == nil {
			return true
		}
		shape := inst.Sprite.Shape

		geo := inst.Transform.Transform
		geo.Concat(view)

		// 把缓存的变换矩阵应用到模型空间顶点上
		s.vertices = s.vertices[:0]
		for _, v := range shape.Vertices {
			x, y := geo.Apply(float64(v.DstX), float64(v.DstY))
			v.DstX = float32(x)
			v.DstY = float32(y)
			v.SrcX = 1
			v.SrcY = 1
			s.vertices = append(s.vertices, v)
		}

		screen.DrawTriangles(s.vertices, shape.Indices, src, nil)
		return true
	})
}
