package vehicle

import (
	"fmt"

	"github.com/tsinghua-fib-lab/lanesim/entity"
)

// KmhToMs 将km/h换算为m/s
func KmhToMs(v float64) float64 {
	return v * 1000.0 / 3600.0
}

// Vehicle 车辆实体
// 功能：记录车辆的类型、速度与在车道上的位置，按时间步长推进位置并在停车线前执行制动
// 说明：车辆只通过车道ID弱引用所在车道，车道的生命周期由仿真上下文管理
type Vehicle struct {
	ctx entity.ITaskContext

	id       int32
	typ      entity.VehicleType
	speed    float64 // 车速（km/h）
	position float64 // 车道上的位置（米），只增不减
	laneID   int32   // 所在车道
}

// newVehicle 创建车辆，位置为0，尚未分配车道
func newVehicle(ctx entity.ITaskContext, id int32, typ entity.VehicleType, speed float64) *Vehicle {
	return &Vehicle{
		ctx:    ctx,
		id:     id,
		typ:    typ,
		speed:  speed,
		laneID: entity.NoLane,
	}
}

func (v *Vehicle) String() string {
	return fmt.Sprintf("Vehicle %d", v.id)
}

func (v *Vehicle) ID() int32 {
	return v.id
}

func (v *Vehicle) Type() entity.VehicleType {
	return v.typ
}

// 获取车速（km/h）
func (v *Vehicle) Speed() float64 {
	return v.speed
}

// 获取车辆在车道上的位置（米）
func (v *Vehicle) Position() float64 {
	return v.position
}

func (v *Vehicle) LaneID() int32 {
	return v.laneID
}

// SetLane 设置所在车道（弱引用）
func (v *Vehicle) SetLane(laneID int32) {
	v.laneID = laneID
}

// Move 按时间步长推进车辆
// 功能：将车速换算为米/秒后计算下一位置，非绿灯且本步恰好越过停车线时制动
// 参数：dt-时间步长（秒）
// 算法说明：
// 1. 未分配车道时不做任何处理
// 2. rate = speed * 1000 / 3600，next = position + rate * dt
// 3. 若信号灯非绿灯，当前位置在停车线之前且next到达或越过停车线，则车速置0，位置不变
// 4. 否则位置更新为next（已在停车线区域内的车辆不再触发制动）
// 说明：制动后车速永久为0，绿灯后不会恢复行驶
func (v *Vehicle) Move(dt float64) {
	if v.laneID == entity.NoLane {
		return
	}
	lane, err := v.ctx.LaneManager().GetOrError(v.laneID)
	if err != nil {
		log.Debugf("%v: %v", v, err)
		return
	}
	next := v.position + KmhToMs(v.speed)*dt
	stopLine := lane.StopLine()
	if lane.LightState() != entity.LightStateGreen && v.position < stopLine && next >= stopLine {
		log.Debugf("%v stops before %v at %.2f (light %v)", v, lane, v.position, lane.LightState())
		v.speed = 0
		return
	}
	v.position = next
}
