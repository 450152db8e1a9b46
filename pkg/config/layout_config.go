package config

// 布局配置常量
// 本文件定义了游戏窗口和世界坐标系的布局参数

const (
	// GameWindowWidth 游戏窗口逻辑宽度（像素）
	GameWindowWidth = 800

	// GameWindowHeight 游戏窗口逻辑高度（像素）
	GameWindowHeight = 600
)

// 世界坐标系以屏幕中心为原点，X 向右、Y 向上增长
// 每帧的世界可视边界由当前窗口逻辑尺寸换算（见 game.BoundsFromWindow），
// 不在此处缓存，窗口尺寸变化时边界随之变化
