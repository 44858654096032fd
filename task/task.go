package task

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/tsinghua-fib-lab/lanesim/clock"
	"github.com/tsinghua-fib-lab/lanesim/entity"
	"github.com/tsinghua-fib-lab/lanesim/entity/lane"
	"github.com/tsinghua-fib-lab/lanesim/entity/vehicle"
	"github.com/tsinghua-fib-lab/lanesim/utils/config"
	"github.com/tsinghua-fib-lab/lanesim/utils/randengine"
)

// Context 仿真任务上下文
// 功能：持有一次仿真的全部状态（时钟、车道、车辆、随机数引擎），按固定步长推进仿真
// 说明：车道与车辆均由Context独占，车道与车辆之间只通过ID互相引用
type Context struct {
	// 运行ID，用于区分日志
	runID uuid.UUID
	log   *logrus.Entry

	// 时钟
	clock *clock.Clock
	// 配置
	config config.Config
	// 随机数引擎
	rng *randengine.Engine

	// Lane管理器
	laneManager *lane.LaneManager
	// Vehicle管理器
	vehicleManager *vehicle.VehicleManager
	// 车辆生成器
	generator *vehicle.Generator
}

// NewContext 创建新的仿真任务上下文
// 功能：校验配置并初始化时钟、车道与车辆管理器
// 参数：c-配置对象，rng-随机数引擎
// 返回：初始化完成的Context实例；配置非法（例如车道集合为空）时返回错误
func NewContext(c config.Config, rng *randengine.Engine) (*Context, error) {
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("new task context: %w", err)
	}
	if rng == nil {
		return nil, fmt.Errorf("new task context: nil random engine")
	}
	runID := uuid.New()
	ctx := &Context{
		runID:  runID,
		log:    log.WithField("run", runID.String()),
		clock:  clock.New(c.Control.Step),
		config: c,
		rng:    rng,
	}
	ctx.laneManager = lane.NewManager(ctx)
	ctx.vehicleManager = vehicle.NewManager(ctx)
	ctx.generator = vehicle.NewGenerator(rng, c.Spawn, ctx.vehicleManager)

	ctx.laneManager.Init(c.Lanes, c.Light)
	ctx.log.Infof("Lane: %v", ctx.laneManager.Len())
	return ctx, nil
}

func (ctx *Context) RunID() uuid.UUID {
	return ctx.runID
}

func (ctx *Context) Clock() *clock.Clock {
	return ctx.clock
}

func (ctx *Context) LaneManager() entity.ILaneManager {
	return ctx.laneManager
}

func (ctx *Context) VehicleManager() entity.IVehicleManager {
	return ctx.vehicleManager
}

// Lane 根据ID获取车道，可用于直接控制信号灯
func (ctx *Context) Lane(id int32) (*lane.Lane, error) {
	return ctx.laneManager.GetLane(id)
}

// AddVehicle 在指定车道放入一辆车
// 功能：绕过随机生成器直接创建车辆，ID仍按自增规则分配
// 返回：新车辆；车道不存在时返回错误
func (ctx *Context) AddVehicle(typ entity.VehicleType, speed float64, laneID int32) (entity.IVehicle, error) {
	l, err := ctx.laneManager.GetOrError(laneID)
	if err != nil {
		return nil, fmt.Errorf("add vehicle: %w", err)
	}
	return ctx.vehicleManager.Add(typ, speed, l), nil
}
