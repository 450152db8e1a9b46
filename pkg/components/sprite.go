package components

// SpriteComponent 存储实体的视觉表现(指向形状目录的非拥有引用)
type SpriteComponent struct {
	Shape *Shape
}
