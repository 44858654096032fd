package vehicle

import (
	"fmt"
	"testing"

	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/tsinghua-fib-lab/lanesim/clock"
	"github.com/tsinghua-fib-lab/lanesim/entity"
)

type testLane struct {
	id     int32
	length float64
	state  entity.LightState
	ids    []int32
}

func (l *testLane) String() string                { return fmt.Sprintf("Lane %d", l.id) }
func (l *testLane) ID() int32                     { return l.id }
func (l *testLane) Length() float64               { return l.length }
func (l *testLane) MaxV() float64                 { return 50 }
func (l *testLane) StopLine() float64             { return l.length - 10 }
func (l *testLane) LightState() entity.LightState { return l.state }
func (l *testLane) VehicleIDs() []int32           { return l.ids }

func (l *testLane) AddVehicle(v entity.IVehicle) {
	l.ids = append(l.ids, v.ID())
	v.SetLane(l.id)
}

type testLanes struct {
	lanes []*testLane
}

func (m *testLanes) Get(id int32) entity.ILane {
	l, err := m.GetOrError(id)
	if err != nil {
		panic(err)
	}
	return l
}

func (m *testLanes) GetOrError(id int32) (entity.ILane, error) {
	for _, l := range m.lanes {
		if l.id == id {
			return l, nil
		}
	}
	return nil, fmt.Errorf("no id %d in lane data", id)
}

func (m *testLanes) Lanes() []entity.ILane {
	out := make([]entity.ILane, 0, len(m.lanes))
	for _, l := range m.lanes {
		out = append(out, l)
	}
	return out
}

func (m *testLanes) Len() int          { return len(m.lanes) }
func (m *testLanes) Update(dt float64) {}

type testCtx struct {
	lanes    *testLanes
	vehicles *VehicleManager
}

func (c *testCtx) Clock() *clock.Clock                    { return nil }
func (c *testCtx) LaneManager() entity.ILaneManager       { return c.lanes }
func (c *testCtx) VehicleManager() entity.IVehicleManager { return c.vehicles }

func newTestCtx(lanes ...*testLane) *testCtx {
	c := &testCtx{lanes: &testLanes{lanes: lanes}}
	c.vehicles = NewManager(c)
	return c
}

func TestKmhToMs(t *testing.T) {
	assert.Equal(t, 10.0, KmhToMs(36))
	assert.Equal(t, 20.0, KmhToMs(72))
	assert.Equal(t, 0.0, KmhToMs(0))
}

func TestMoveWithoutLane(t *testing.T) {
	v := newVehicle(nil, 1, entity.VehicleTypeCar, 36)
	assert.Equal(t, entity.NoLane, v.LaneID())
	for i := 0; i < 10; i++ {
		v.Move(1)
	}
	assert.Equal(t, 0.0, v.Position())
	assert.Equal(t, 36.0, v.Speed())
}

func TestMoveUnknownLane(t *testing.T) {
	ctx := newTestCtx()
	v := newVehicle(ctx, 1, entity.VehicleTypeCar, 36)
	v.SetLane(99)
	v.Move(1)
	assert.Equal(t, 0.0, v.Position())
	assert.Equal(t, 36.0, v.Speed())
}

func TestMoveUnknownLaneIsQuiet(t *testing.T) {
	hook := logtest.NewGlobal()
	defer hook.Reset()
	level := logrus.GetLevel()
	logrus.SetLevel(logrus.InfoLevel)
	defer logrus.SetLevel(level)

	ctx := newTestCtx()
	v := newVehicle(ctx, 1, entity.VehicleTypeCar, 36)
	v.SetLane(99)
	for i := 0; i < 10; i++ {
		v.Move(1)
	}
	assert.Equal(t, 0.0, v.Position())
	assert.Empty(t, hook.AllEntries())
}

func TestMoveGreen(t *testing.T) {
	lane := &testLane{id: 1, length: 500, state: entity.LightStateGreen}
	ctx := newTestCtx(lane)
	for _, speed := range []float64{20, 27.5, 36, 49.9} {
		for _, dt := range []float64{0, 0.5, 1, 3} {
			for _, pos := range []float64{0, 485, 489.5, 495} {
				v := newVehicle(ctx, 1, entity.VehicleTypeBus, speed)
				v.SetLane(lane.id)
				v.position = pos
				v.Move(dt)
				assert.Equal(t, pos+speed*1000/3600*dt, v.Position(), "speed=%v dt=%v pos=%v", speed, dt, pos)
				assert.Equal(t, speed, v.Speed())
			}
		}
	}
}

func TestBrakeAtStopLine(t *testing.T) {
	for _, state := range []entity.LightState{entity.LightStateRed, entity.LightStateYellow} {
		lane := &testLane{id: 1, length: 500, state: state}
		ctx := newTestCtx(lane)
		v := newVehicle(ctx, 1, entity.VehicleTypeTruck, 36)
		v.SetLane(lane.id)
		v.position = 480

		// 480 -> 490，恰好到达停车线
		v.Move(1)
		assert.Equal(t, 0.0, v.Speed(), "light %v", state)
		assert.Equal(t, 480.0, v.Position())

		// 车速已为0，之后无论灯色都不再前进
		v.Move(1)
		assert.Equal(t, 480.0, v.Position())
		lane.state = entity.LightStateGreen
		for i := 0; i < 10; i++ {
			v.Move(1)
		}
		assert.Equal(t, 480.0, v.Position())
		assert.Equal(t, 0.0, v.Speed())
	}
}

func TestNoBrakeBeforeCrossing(t *testing.T) {
	lane := &testLane{id: 1, length: 500, state: entity.LightStateRed}
	ctx := newTestCtx(lane)
	v := newVehicle(ctx, 1, entity.VehicleTypeCar, 36)
	v.SetLane(lane.id)
	v.position = 470
	v.Move(1)
	assert.Equal(t, 480.0, v.Position())
	assert.Equal(t, 36.0, v.Speed())
}

func TestNoBrakeInsideStopZone(t *testing.T) {
	lane := &testLane{id: 1, length: 500, state: entity.LightStateRed}
	ctx := newTestCtx(lane)
	v := newVehicle(ctx, 1, entity.VehicleTypeMotorcycle, 36)
	v.SetLane(lane.id)
	v.position = 490
	v.Move(1)
	assert.Equal(t, 500.0, v.Position())
	assert.Equal(t, 36.0, v.Speed())
}
