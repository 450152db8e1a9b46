package types

// InstanceRef 是对实体槽位的稳定引用
//
// 引用由槽位下标加世代计数组成。槽位被销毁后重新分配给新实体时，
// 世代计数会递增，旧引用因此失效。仅比较"激活标志"无法区分
// "原实体还活着"和"槽位已被回收给另一个实体"这两种情况，
// 世代计数弥补了这个漏洞。
//
// 零值（世代为 0）永远不指向任何活动实体，可以用作"无引用"。
type InstanceRef struct {
	Index      int    // 槽位下标
	Generation uint64 // 分配时的世代计数
}

// IsNone 判断引用是否为空引用（从未指向过任何实体）
func (r InstanceRef) IsNone() bool {
	return r.Generation == 0
}
