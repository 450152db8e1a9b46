package game

import (
	"github.com/decker502/asteroids/pkg/components"
	"github.com/decker502/asteroids/pkg/types"
)

// ShapeCatalog 形状目录：对象类别到三角形网格的静态映射表
//
// 目录在场景 Load 阶段一次性填充，运行时只读。实体的精灵组件
// 持有目录中形状的非拥有引用，目录释放前所有实体都应已销毁
type ShapeCatalog struct {
	shapes [types.ObjectTypeNum]*components.Shape
}

// NewShapeCatalog 创建空的形状目录
func NewShapeCatalog() *ShapeCatalog {
	return &ShapeCatalog{}
}

// Register 注册一个类别的网格，重复注册时覆盖旧网格
func (c *ShapeCatalog) Register(shape *components.Shape) {
	if shape == nil || shape.Type < 0 || shape.Type >= types.ObjectTypeNum {
		return
	}
	c.shapes[shape.Type] = shape
}

// Get 按类别查找网格，未注册时返回 nil
func (c *ShapeCatalog) Get(objType types.ObjectType) *components.Shape {
	if objType < 0 || objType >= types.ObjectTypeNum {
		return nil
	}
	return c.shapes[objType]
}

// Release 释放目录中的所有网格引用
// 网格是纯顶点数据，没有外部资源句柄，置空即可回收
func (c *ShapeCatalog) Release() {
	for i := range c.shapes {
		c.shapes[i] = nil
	}
}
