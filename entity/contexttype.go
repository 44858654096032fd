package entity

import (
	"github.com/tsinghua-fib-lab/lanesim/clock"
)

type ITaskContext interface {
	Clock() *clock.Clock
	LaneManager() ILaneManager
	VehicleManager() IVehicleManager
}
