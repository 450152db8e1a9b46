// Package utils 提供游戏开发中常用的工具函数
//
// vector.go 提供 2D 向量运算和标量辅助函数，供运动积分、
// 边界回绕和导弹追踪的角度计算使用。
package utils

import "math"

// Vector2D 表示 2D 平面上的一个点或向量
type Vector2D struct {
	X float64
	Y float64
}

// Add 返回 v + other
func (v Vector2D) Add(other Vector2D) Vector2D {
	return Vector2D{X: v.X + other.X, Y: v.Y + other.Y}
}

// Sub 返回 v - other
func (v Vector2D) Sub(other Vector2D) Vector2D {
	return Vector2D{X: v.X - other.X, Y: v.Y - other.Y}
}

// Scale 返回 v 的所有分量乘以 s 的结果
func (v Vector2D) Scale(s float64) Vector2D {
	return Vector2D{X: v.X * s, Y: v.Y * s}
}

// Dot 返回 v 与 other 的点积
func (v Vector2D) Dot(other Vector2D) float64 {
	return v.X*other.X + v.Y*other.Y
}

// Length 返回向量长度
func (v Vector2D) Length() float64 {
	return math.Hypot(v.X, v.Y)
}

// Normalize 返回 v 的单位向量
// 零向量无法定义方向，直接原样返回，调用方需要自行保证长度非零
func (v Vector2D) Normalize() Vector2D {
	length := v.Length()
	if length == 0 {
		return v
	}
	return Vector2D{X: v.X / length, Y: v.Y / length}
}

// LeftPerp 返回 v 的左垂直向量 (-Y, X)
// 用于判断导弹转向的方向（顺时针还是逆时针）
func (v Vector2D) LeftPerp() Vector2D {
	return Vector2D{X: -v.Y, Y: v.X}
}

// Wrap 将 x 以模运算方式回绕到 [min, max) 区间
// 从一侧离开区间的值会从另一侧等距离进入，即环形（toroidal）回绕
// 区间宽度不为正时直接返回 min
func Wrap(x, min, max float64) float64 {
	size := max - min
	if size <= 0 {
		return min
	}
	x = math.Mod(x-min, size)
	if x < 0 {
		x += size
	}
	return x + min
}

// Clamp 将 x 限制在 [min, max] 区间内
func Clamp(x, min, max float64) float64 {
	if x < min {
		return min
	}
	if x > max {
		return max
	}
	return x
}
