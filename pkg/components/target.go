package components

import "github.com/decker502/asteroids/pkg/types"

// TargetComponent 存储追踪导弹当前锁定的目标
//
// 目标是弱引用：被引用的实体随时可能被碰撞或出界销毁，
// 引用不会被主动清空。每次解引用前必须通过世代计数校验，
// 失效的引用视为"无目标"，由行为系统在下一帧重新锁定。
// 只有追踪导弹类别的实体拥有此组件。
type TargetComponent struct {
	Target types.InstanceRef // 锁定的目标，零值表示无目标
}
