package trafficlight

import (
	"fmt"

	"github.com/tsinghua-fib-lab/lanesim/entity"
	"github.com/tsinghua-fib-lab/lanesim/utils/config"
)

// transition 相位转移表中的一项：本相位时长与下一相位
type transition struct {
	duration float64
	next     entity.LightState
}

// Light 固定相位信号灯控制器
// 功能：按GREEN→YELLOW→RED→GREEN的固定顺序循环切换相位，不存在终止状态
// 说明：每次Update至多切换一次相位，切换时计时器归零，超出阈值的时间不会带入下一相位
type Light struct {
	table map[entity.LightState]transition // 相位转移表

	state entity.LightState // 当前相位
	timer float64           // 进入当前相位后累计的时间
}

// New 创建信号灯控制器
// 功能：根据各相位时长构建转移表，初始相位为RED，计时器为0
// 参数：durations-各相位时长
// 返回：初始化完成的信号灯控制器
func New(durations config.Light) *Light {
	return &Light{
		table: map[entity.LightState]transition{
			entity.LightStateGreen:  {duration: durations.Green, next: entity.LightStateYellow},
			entity.LightStateYellow: {duration: durations.Yellow, next: entity.LightStateRed},
			entity.LightStateRed:    {duration: durations.Red, next: entity.LightStateGreen},
		},
		state: entity.LightStateRed,
	}
}

// Update 更新阶段，推进信号灯计时
// 参数：dt-时间步长（非负）
// 算法说明：
// 1. 计时器累加dt
// 2. 若计时器达到当前相位时长，切换到下一相位并将计时器归零
func (l *Light) Update(dt float64) {
	l.timer += dt
	t := l.table[l.state]
	if l.timer >= t.duration {
		log.Tracef("light %v -> %v after %v", l.state, t.next, l.timer)
		l.state = t.next
		l.timer = 0
	}
}

// SetPhase 强制设置当前相位与已累计时间
// 参数：state-目标相位，timer-已累计时间，须位于[0, 相位时长)
// 返回：参数非法时返回错误
func (l *Light) SetPhase(state entity.LightState, timer float64) error {
	t, ok := l.table[state]
	if !ok {
		return fmt.Errorf("set phase with invalid light state %v", state)
	}
	if timer < 0 || timer >= t.duration {
		return fmt.Errorf("set phase %v with timer %v out of range [0,%v)", state, timer, t.duration)
	}
	l.state = state
	l.timer = timer
	return nil
}

// 获取当前相位
func (l *Light) State() entity.LightState {
	return l.state
}

// 获取进入当前相位后累计的时间
func (l *Light) Timer() float64 {
	return l.timer
}

// 获取指定相位的时长
func (l *Light) Duration(state entity.LightState) float64 {
	return l.table[state].duration
}

// Remaining 获取当前相位剩余时间
func (l *Light) Remaining() float64 {
	return l.table[l.state].duration - l.timer
}
