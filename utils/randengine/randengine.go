// 随机数引擎，包装了golang.org/x/exp/rand，提供了一些常用的随机数生成方法
package randengine

import (
	"log"

	"golang.org/x/exp/rand"
)

// Engine 随机数引擎
// 功能：提供可注入、可复现的随机数生成功能
// 说明：基于golang.org/x/exp/rand库，相同种子产生相同序列；非线程安全，仅在仿真主循环中使用
type Engine struct {
	*rand.Rand // 底层随机数生成器
}

// New 创建随机数引擎
// 参数：seed-随机数种子
// 返回：随机数引擎指针
func New(seed uint64) *Engine {
	return &Engine{Rand: rand.New(rand.NewSource(seed))}
}

// PTrue 以指定概率返回true
// 功能：在[0.0, 1.0)内抽取一个随机数，小于p时返回true
// 说明：实现伯努利分布，用于模拟概率事件
func (e *Engine) PTrue(p float64) bool {
	return e.Float64() < p
}

// Uniform 在[lo, hi)范围内均匀生成浮点数
func (e *Engine) Uniform(lo, hi float64) float64 {
	return lo + (hi-lo)*e.Float64()
}

// Index 在[0, n)范围内均匀生成下标
// 说明：n<=0时范围为空，属于调用方的编程错误，直接panic
func (e *Engine) Index(n int) int {
	if n <= 0 {
		log.Panicf("randengine: Index: empty range n=%d", n)
	}
	return e.Intn(n)
}
