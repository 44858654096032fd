// 控制台显示组件，将仿真快照渲染为文本车道占用图
package display

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/tsinghua-fib-lab/lanesim/entity"
)

const (
	TrackWidth  = 50          // 车道占用图宽度（字符）
	clearScreen = "\033[H\033[2J"
)

// Console 控制台显示组件
type Console struct {
	w     io.Writer
	clear bool // 每帧前是否清屏
}

// NewConsole 创建控制台显示组件
// 参数：w-输出目标，clear-每帧前是否清屏
func NewConsole(w io.Writer, clear bool) *Console {
	return &Console{w: w, clear: clear}
}

// Track 将车道上的车辆映射到定宽占用图
// 功能：车辆所在格 = int(position / length * TrackWidth)，越界的格直接丢弃
// 说明：多辆车落在同一格时后驶入的车辆覆盖先驶入的车辆
func Track(l entity.LaneSnapshot) string {
	road := []byte(strings.Repeat("-", TrackWidth))
	for _, v := range l.Vehicles {
		pos := int(v.Position / l.Length * TrackWidth)
		if pos >= 0 && pos < TrackWidth {
			road[pos] = v.Type.Symbol()
		}
	}
	return string(road)
}

// Render 渲染一帧
func (c *Console) Render(s entity.Snapshot) error {
	b := bufio.NewWriter(c.w)
	if c.clear {
		b.WriteString(clearScreen)
	}
	fmt.Fprintf(b, "Simulation Time: %vs\n", s.T)
	for _, l := range s.Lanes {
		fmt.Fprintf(b, "Lane %d [Light: %s]\n  %s\n\n", l.ID, l.Light.Symbol(), Track(l))
	}
	return b.Flush()
}
