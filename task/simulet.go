package task

import (
	"context"
	"flag"
	"fmt"
	"time"

	"github.com/samber/lo"
	"github.com/tsinghua-fib-lab/lanesim/entity"
	"gonum.org/v1/gonum/stat"
)

var (
	heartBeatInterval = flag.Int("log.heartbeat_interval", 10, "心跳日志间隔步数")
)

// Renderer 显示组件
// 说明：只读取快照，不影响仿真
type Renderer interface {
	Render(s entity.Snapshot) error
}

// Step 推进一个仿真步
// 功能：推进时钟，按概率生成车辆，再按固定顺序更新所有车道
// 参数：dt-时间步长（非负）
// 算法说明：
// 1. 时钟推进dt
// 2. 抽取一次[0,1)均匀随机数，小于生成概率时生成一辆车
// 3. 按车道顺序执行车道更新（信号灯、车辆移动、驶出车辆移除）
// 4. 压缩全局车辆列表
func (ctx *Context) Step(dt float64) {
	ctx.clock.Advance(dt)
	if ctx.rng.PTrue(ctx.generator.Probability()) {
		if _, err := ctx.generator.Generate(ctx.laneManager.Lanes()); err != nil {
			// 车道集合在NewContext中已保证非空
			ctx.log.Panicf("step %d: %v", ctx.clock.InternalStep, err)
		}
	}
	ctx.laneManager.Update(dt)
	ctx.vehicleManager.Prepare()

	if *heartBeatInterval > 0 && ctx.clock.InternalStep%int32(*heartBeatInterval) == 0 {
		ctx.log.Infof(
			"STEP: %d(%s) vehicles: %d",
			ctx.clock.InternalStep, ctx.clock, ctx.vehicleManager.Len(),
		)
	}
}

// IsRunning 仿真时间是否尚未到达结束时刻
func (ctx *Context) IsRunning() bool {
	return ctx.clock.Running()
}

// Snapshot 生成当前时刻的只读快照
// 说明：快照为深拷贝，显示组件与仿真并发执行时也不会读到中间状态
func (ctx *Context) Snapshot() entity.Snapshot {
	vm := ctx.vehicleManager
	return entity.Snapshot{
		T: ctx.clock.T,
		Lanes: lo.Map(ctx.laneManager.Lanes(), func(l entity.ILane, _ int) entity.LaneSnapshot {
			return entity.LaneSnapshot{
				ID:     l.ID(),
				Length: l.Length(),
				Light:  l.LightState(),
				Vehicles: lo.Map(l.VehicleIDs(), func(id int32, _ int) entity.VehicleSnapshot {
					v := vm.Get(id)
					return entity.VehicleSnapshot{
						ID:       v.ID(),
						Type:     v.Type(),
						Speed:    v.Speed(),
						Position: v.Position(),
					}
				}),
			}
		}),
	}
}

// Stats 仿真统计
type Stats struct {
	Generated int     // 累计生成车辆数
	Evicted   int     // 累计驶出车道车辆数
	Alive     int     // 当前仍在车道上的车辆数
	Stopped   int     // 当前停止（车速为0）的车辆数
	MeanSpeed float64 // 当前仍在车道上车辆的平均车速（km/h），停止车辆按0计入，无车辆时为0
}

// Stats 统计当前仿真状态
func (ctx *Context) Stats() Stats {
	vehicles := ctx.vehicleManager.Vehicles()
	s := Stats{
		Generated: ctx.vehicleManager.Generated(),
		Evicted:   ctx.vehicleManager.Evicted(),
		Alive:     len(vehicles),
		Stopped: lo.CountBy(vehicles, func(v entity.IVehicle) bool {
			return v.Speed() == 0
		}),
	}
	if len(vehicles) > 0 {
		s.MeanSpeed = stat.Mean(lo.Map(vehicles, func(v entity.IVehicle, _ int) float64 {
			return v.Speed()
		}), nil)
	}
	return s
}

// Run 运行
// 功能：循环执行 仿真步 → 显示 → 等待，直到仿真时间到达结束时刻
// 参数：c-用于取消的上下文，r-显示组件（可为nil），pace-每步之后的实际等待时间
// 返回：显示失败或被取消时返回错误
// 说明：等待只用于人眼观看，不计入仿真时间，pace为0时全速运行
func (ctx *Context) Run(c context.Context, r Renderer, pace time.Duration) error {
	ctx.log.Infof("engine start, horizon %vs, step %vs", ctx.clock.Horizon, ctx.clock.DT)
	for ctx.IsRunning() {
		if err := c.Err(); err != nil {
			return err
		}
		ctx.Step(ctx.clock.DT)
		if r != nil {
			if err := r.Render(ctx.Snapshot()); err != nil {
				return fmt.Errorf("render at t=%v: %w", ctx.clock.T, err)
			}
		}
		if pace > 0 {
			select {
			case <-c.Done():
				return c.Err()
			case <-time.After(pace):
			}
		}
	}
	s := ctx.Stats()
	ctx.log.Infof(
		"engine complete: generated %d, evicted %d, alive %d, stopped %d, mean speed %.2fkm/h",
		s.Generated, s.Evicted, s.Alive, s.Stopped, s.MeanSpeed,
	)
	return nil
}
