package lane

import (
	"fmt"

	"github.com/samber/lo"
	"github.com/tsinghua-fib-lab/lanesim/entity"
	"github.com/tsinghua-fib-lab/lanesim/entity/trafficlight"
	"github.com/tsinghua-fib-lab/lanesim/utils/config"
)

const (
	stopLineOffset = 10 // 停车线到车道终点的距离（米）
)

// Lane 车道实体
// 功能：持有车道上按驶入顺序排列的车辆与本车道的信号灯，每步推进信号灯与车辆并移除驶出车道的车辆
type Lane struct {
	ctx entity.ITaskContext

	id     int32
	length float64 // 车道长度（米）
	maxV   float64 // 车道限速（km/h），仅记录，不约束车速

	light    *trafficlight.Light // 车道信号灯
	vehicles []int32             // 车道上的车辆ID，按驶入顺序
}

// newLane 创建并初始化一个新的Lane实例
// 参数：ctx-任务上下文，base-车道配置，light-信号灯相位时长
// 返回：初始化完成的Lane实例
func newLane(ctx entity.ITaskContext, base config.LaneConfig, light config.Light) *Lane {
	return &Lane{
		ctx:      ctx,
		id:       base.ID,
		length:   base.Length,
		maxV:     base.MaxSpeed,
		light:    trafficlight.New(light),
		vehicles: make([]int32, 0),
	}
}

// update 更新阶段，执行Lane的模拟逻辑
// 功能：推进信号灯，按驶入顺序移动车辆，移除位置到达或超过车道长度的车辆
// 参数：dt-时间步长
// 算法说明：
// 1. 信号灯Update
// 2. 按列表顺序对每辆车执行Move
// 3. 对列表做一次压缩：保留仍在车道内的车辆，驶出的车辆交给车辆管理器移除
// 说明：先移动全部车辆再压缩，不会跳过或重复处理任何车辆
func (l *Lane) update(dt float64) {
	l.light.Update(dt)
	vm := l.ctx.VehicleManager()
	for _, id := range l.vehicles {
		vm.Get(id).Move(dt)
	}
	inLane := func(id int32, _ int) bool {
		return vm.Get(id).Position() < l.length
	}
	// 先划分再移除，Evict之后车辆不再可查
	kept, gone := lo.Filter(l.vehicles, inLane), lo.Reject(l.vehicles, inLane)
	for _, id := range gone {
		vm.Evict(id)
	}
	l.vehicles = kept
}

// AddVehicle 车辆驶入车道
// 功能：将车辆追加到车道车辆列表末尾并设置车辆的车道引用
func (l *Lane) AddVehicle(v entity.IVehicle) {
	if v.LaneID() != entity.NoLane {
		log.Panicf("add %v who is already in lane %d", v, v.LaneID())
	}
	l.vehicles = append(l.vehicles, v.ID())
	v.SetLane(l.id)
}

// 静态数据

func (l *Lane) String() string {
	return fmt.Sprintf("Lane %d", l.id)
}

// 获取Lane ID
func (l *Lane) ID() int32 {
	if l == nil {
		return -1
	}
	return l.id
}

// 获取Lane长度
func (l *Lane) Length() float64 {
	return l.length
}

// 获取车道限速
func (l *Lane) MaxV() float64 {
	return l.maxV
}

// StopLine 停车线位置，距车道终点stopLineOffset米
func (l *Lane) StopLine() float64 {
	return l.length - stopLineOffset
}

// 车道状态

// 获取信号灯
func (l *Lane) Light() *trafficlight.Light {
	return l.light
}

// 获取信号灯相位
func (l *Lane) LightState() entity.LightState {
	return l.light.State()
}

// VehicleIDs 获取车道上的车辆ID（按驶入顺序）
// 说明：返回副本，调用方修改不影响车道
func (l *Lane) VehicleIDs() []int32 {
	return append([]int32(nil), l.vehicles...)
}
