package vehicle

import (
	"fmt"

	"github.com/samber/lo"
	"github.com/tsinghua-fib-lab/lanesim/entity"
)

// VehicleManager 车辆管理器
// 功能：持有全部存活车辆（扁平列表与ID索引），分配自增ID，处理驶出车道的车辆
type VehicleManager struct {
	ctx entity.ITaskContext

	data     map[int32]*Vehicle
	vehicles []*Vehicle

	nextID  int32          // 下一辆车的ID，从1开始
	removed map[int32]bool // 本步驶出车道、待移除的车辆
	evicted int            // 累计驶出车辆数
}

// NewManager 创建车辆管理器实例
func NewManager(ctx entity.ITaskContext) *VehicleManager {
	return &VehicleManager{
		ctx:      ctx,
		data:     make(map[int32]*Vehicle),
		vehicles: make([]*Vehicle, 0),
		nextID:   1,
		removed:  make(map[int32]bool),
	}
}

// Add 创建车辆并放入车道
// 功能：分配自增ID，创建车辆，追加到车道车辆列表与全局扁平列表
// 参数：typ-车辆类型，speed-车速（km/h），lane-驶入的车道
// 返回：新创建的车辆
func (m *VehicleManager) Add(typ entity.VehicleType, speed float64, lane entity.ILane) *Vehicle {
	v := newVehicle(m.ctx, m.nextID, typ, speed)
	m.nextID++
	lane.AddVehicle(v)
	m.data[v.id] = v
	m.vehicles = append(m.vehicles, v)
	log.Debugf("%v (%v, %.1fkm/h) enters %v", v, typ, speed, lane)
	return v
}

// Get 根据ID获取车辆，如果不存在则panic
func (m *VehicleManager) Get(id int32) entity.IVehicle {
	if v, ok := m.data[id]; !ok {
		log.Panicf("no id %d in vehicle data", id)
		return nil
	} else {
		return v
	}
}

// GetOrError 根据ID获取车辆，如果不存在则返回错误
func (m *VehicleManager) GetOrError(id int32) (entity.IVehicle, error) {
	if v, ok := m.data[id]; !ok {
		return nil, fmt.Errorf("no id %d in vehicle data", id)
	} else {
		return v, nil
	}
}

// Vehicles 获取全部存活车辆
func (m *VehicleManager) Vehicles() []entity.IVehicle {
	return lo.Map(m.vehicles, func(v *Vehicle, _ int) entity.IVehicle { return v })
}

func (m *VehicleManager) Len() int {
	return len(m.vehicles)
}

// Generated 累计生成的车辆数
func (m *VehicleManager) Generated() int {
	return int(m.nextID - 1)
}

// Evicted 累计驶出车道的车辆数
func (m *VehicleManager) Evicted() int {
	return m.evicted
}

// Evict 车辆驶出车道
// 功能：将车辆从ID索引中移除并登记到待移除集合，扁平列表在Prepare时统一压缩
func (m *VehicleManager) Evict(id int32) {
	v, ok := m.data[id]
	if !ok {
		log.Panicf("evict unknown vehicle %d", id)
	}
	log.Debugf("%v leaves lane %d at %.2f", v, v.laneID, v.position)
	v.laneID = entity.NoLane
	delete(m.data, id)
	m.removed[id] = true
	m.evicted++
}

// Prepare 准备阶段，压缩扁平列表
// 说明：保持剩余车辆的相对顺序
func (m *VehicleManager) Prepare() {
	if len(m.removed) == 0 {
		return
	}
	m.vehicles = lo.Filter(m.vehicles, func(v *Vehicle, _ int) bool {
		return !m.removed[v.id]
	})
	clear(m.removed)
}
