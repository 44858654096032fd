package vehicle

import (
	"fmt"

	"github.com/tsinghua-fib-lab/lanesim/entity"
	"github.com/tsinghua-fib-lab/lanesim/utils/config"
	"github.com/tsinghua-fib-lab/lanesim/utils/randengine"
)

// Generator 车辆生成器
// 功能：随机生成车辆（类型、车速、车道均匀抽取）并交给车辆管理器
type Generator struct {
	rng      *randengine.Engine
	spawn    config.Spawn
	vehicles *VehicleManager
}

// NewGenerator 创建车辆生成器
// 参数：rng-随机数引擎，spawn-生成配置，vehicles-车辆管理器
func NewGenerator(rng *randengine.Engine, spawn config.Spawn, vehicles *VehicleManager) *Generator {
	return &Generator{rng: rng, spawn: spawn, vehicles: vehicles}
}

// Probability 每步生成车辆的概率
func (g *Generator) Probability() float64 {
	return g.spawn.Probability
}

// Generate 生成一辆车
// 功能：依次抽取类型、车速与车道，创建车辆并放入车道
// 参数：lanes-候选车道
// 返回：新车辆；候选车道为空时返回config.ErrNoLanes
func (g *Generator) Generate(lanes []entity.ILane) (*Vehicle, error) {
	if len(lanes) == 0 {
		return nil, fmt.Errorf("generate vehicle: %w", config.ErrNoLanes)
	}
	typ := entity.VehicleType(g.rng.Index(entity.NumVehicleTypes))
	speed := g.rng.Uniform(g.spawn.MinSpeed, g.spawn.MaxSpeed)
	lane := lanes[g.rng.Index(len(lanes))]
	return g.vehicles.Add(typ, speed, lane), nil
}
