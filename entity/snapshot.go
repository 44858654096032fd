package entity

// Snapshot 某一时刻的仿真只读快照
// 功能：供显示等外部组件读取，与仿真内部状态完全解耦
type Snapshot struct {
	T     float64        // 仿真时间（s）
	Lanes []LaneSnapshot // 按固定顺序排列的车道
}

// LaneSnapshot 车道快照
type LaneSnapshot struct {
	ID       int32
	Length   float64
	Light    LightState
	Vehicles []VehicleSnapshot // 按驶入顺序
}

// VehicleSnapshot 车辆快照
type VehicleSnapshot struct {
	ID       int32
	Type     VehicleType
	Speed    float64
	Position float64
}
