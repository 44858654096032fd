package entity

import "fmt"

// 未分配车道的车道ID
const NoLane int32 = -1

// LightState 信号灯相位
type LightState int32

const (
	LightStateRed LightState = iota
	LightStateYellow
	LightStateGreen
)

func (s LightState) String() string {
	switch s {
	case LightStateRed:
		return "RED"
	case LightStateYellow:
		return "YELLOW"
	case LightStateGreen:
		return "GREEN"
	}
	return fmt.Sprintf("LightState(%d)", int32(s))
}

// Symbol 信号灯相位的显示符号，与相位一一对应
func (s LightState) Symbol() string {
	switch s {
	case LightStateRed:
		return "🔴"
	case LightStateYellow:
		return "🟡"
	case LightStateGreen:
		return "🟢"
	}
	return "?"
}

// Valid 检查相位取值是否合法
func (s LightState) Valid() bool {
	return s >= LightStateRed && s <= LightStateGreen
}

// VehicleType 车辆类型
// 说明：仅用于显示，不影响车辆行为
type VehicleType int32

const (
	VehicleTypeCar VehicleType = iota
	VehicleTypeBus
	VehicleTypeTruck
	VehicleTypeMotorcycle
)

// 车辆类型数量，生成车辆时在[0, NumVehicleTypes)中均匀抽取
const NumVehicleTypes = 4

func (t VehicleType) String() string {
	switch t {
	case VehicleTypeCar:
		return "Car"
	case VehicleTypeBus:
		return "Bus"
	case VehicleTypeTruck:
		return "Truck"
	case VehicleTypeMotorcycle:
		return "Motorcycle"
	}
	return fmt.Sprintf("VehicleType(%d)", int32(t))
}

// Symbol 车辆在车道占用图中的显示字符
func (t VehicleType) Symbol() byte {
	switch t {
	case VehicleTypeCar:
		return 'C'
	case VehicleTypeBus:
		return 'B'
	case VehicleTypeTruck:
		return 'T'
	case VehicleTypeMotorcycle:
		return 'M'
	}
	return '?'
}

// entity/lane/lane.go的依赖倒置
type ILane interface {
	String() string

	ID() int32              // 获取Lane ID
	Length() float64        // 获取Lane长度
	MaxV() float64          // 获取车道限速（km/h，仅记录，不约束车速）
	StopLine() float64      // 获取停车线位置
	LightState() LightState // 获取信号灯相位

	AddVehicle(v IVehicle) // 车辆驶入车道
	VehicleIDs() []int32   // 获取车道上的车辆ID（按驶入顺序）
}

// entity/vehicle/vehicle.go的依赖倒置
type IVehicle interface {
	String() string

	ID() int32
	Type() VehicleType
	Speed() float64    // 获取车速（km/h）
	Position() float64 // 获取车辆在车道上的位置（m）
	LaneID() int32     // 获取所在车道ID，未分配时为NoLane

	SetLane(laneID int32)
	Move(dt float64)
}
