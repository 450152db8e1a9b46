package config

import "testing"

// TestWindowDimensions 验证窗口逻辑尺寸为 4:3 比例
func TestWindowDimensions(t *testing.T) {
	if GameWindowWidth != 800 || GameWindowHeight != 600 {
		t.Errorf("窗口逻辑尺寸错误: %dx%d", GameWindowWidth, GameWindowHeight)
	}
	if GameWindowWidth*3 != GameWindowHeight*4 {
		t.Errorf("窗口比例应为 4:3, 实际 %dx%d", GameWindowWidth, GameWindowHeight)
	}
}
