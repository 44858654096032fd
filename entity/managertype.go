package entity

// Manager依赖倒置

// entity/lane/manager.go的依赖倒置
type ILaneManager interface {
	// 输入Lane ID，查找Lane，如果不存在则panic
	Get(id int32) ILane
	// 输入Lane ID，查找Lane，如果不存在则返回error
	GetOrError(id int32) (ILane, error)

	Lanes() []ILane // 按固定顺序返回所有Lane
	Len() int       // Lane数量

	Update(dt float64) // 更新阶段
}

// entity/vehicle/manager.go的依赖倒置
type IVehicleManager interface {
	// 输入Vehicle ID，查找Vehicle，如果不存在则panic
	Get(id int32) IVehicle
	// 输入Vehicle ID，查找Vehicle，如果不存在则返回error
	GetOrError(id int32) (IVehicle, error)

	Vehicles() []IVehicle // 全部存活车辆（扁平列表）
	Len() int

	// 车辆驶出车道，从仿真中移除
	Evict(id int32)
}
