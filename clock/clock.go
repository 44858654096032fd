package clock

import (
	"fmt"

	"github.com/tsinghua-fib-lab/lanesim/utils/config"
)

// Clock 仿真时钟
// 功能：维护离散的仿真时间，仅由仿真步推进，与显示用的实际等待时间无关
// 说明：维护当前仿真时间、步数与结束时刻
type Clock struct {
	DT      float64 // 每个模拟步的时间间隔（秒）
	Horizon float64 // 结束时刻，模拟区间[0, Horizon)

	T            float64 // 当前时间（秒）
	InternalStep int32   // 已完成的步数
}

// New 根据配置创建新的时钟实例
// 功能：根据步长配置初始化时钟信息
// 参数：stepConfig-控制步配置，包含时间间隔与总步数
// 返回：初始化完成的时钟实例
// 说明：结束时刻 = 总步数 * 时间间隔
func New(stepConfig config.ControlStep) *Clock {
	c := &Clock{
		DT:      stepConfig.Interval,
		Horizon: float64(stepConfig.Total) * stepConfig.Interval,
	}
	c.Init()
	return c
}

// Init 重置时钟状态
func (c *Clock) Init() {
	c.InternalStep = 0
	c.T = 0
}

// Advance 推进时钟
// 参数：dt-时间步长（非负）
func (c *Clock) Advance(dt float64) {
	c.T += dt
	c.InternalStep++
}

// Running 仿真时间是否仍处于[0, Horizon)内
func (c *Clock) Running() bool {
	return c.T < c.Horizon
}

// String 获取时钟的字符串表示
// 功能：将当前时间格式化为可读的字符串（HH:MM:SS）
func (c *Clock) String() string {
	h, m, s := c.GetHourMinuteSecond()
	return fmt.Sprintf("%02d:%02d:%02d", h, m, int(s))
}

// GetHourMinuteSecond 获取当前时间的小时、分钟、秒
// 返回：小时、分钟、秒（秒为浮点数，支持亚秒级精度）
func (c *Clock) GetHourMinuteSecond() (int, int, float64) {
	hour := int(c.T) / 3600
	minute := int(c.T) % 3600 / 60
	second := c.T - float64(hour*3600+minute*60)
	return hour, minute, second
}
