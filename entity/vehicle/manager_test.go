package vehicle

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tsinghua-fib-lab/lanesim/entity"
	"github.com/tsinghua-fib-lab/lanesim/utils/config"
	"github.com/tsinghua-fib-lab/lanesim/utils/randengine"
)

func TestManagerAdd(t *testing.T) {
	lane := &testLane{id: 1, length: 500}
	ctx := newTestCtx(lane)
	m := ctx.vehicles

	for i := 1; i <= 3; i++ {
		v := m.Add(entity.VehicleTypeCar, 30, lane)
		assert.Equal(t, int32(i), v.ID())
		assert.Equal(t, lane.id, v.LaneID())
		assert.Equal(t, 0.0, v.Position())
	}
	assert.Equal(t, []int32{1, 2, 3}, lane.ids)
	assert.Equal(t, 3, m.Len())
	assert.Equal(t, 3, m.Generated())

	_, err := m.GetOrError(4)
	assert.Error(t, err)
	assert.Panics(t, func() { m.Get(4) })
}

func TestManagerEvict(t *testing.T) {
	lane := &testLane{id: 1, length: 500}
	ctx := newTestCtx(lane)
	m := ctx.vehicles
	for i := 0; i < 4; i++ {
		m.Add(entity.VehicleTypeCar, 30, lane)
	}

	m.Evict(2)
	m.Evict(4)
	_, err := m.GetOrError(2)
	assert.Error(t, err)
	assert.Equal(t, 2, m.Evicted())
	// 扁平列表在Prepare时压缩
	assert.Equal(t, 4, m.Len())
	m.Prepare()
	require.Equal(t, 2, m.Len())
	ids := []int32{}
	for _, v := range m.Vehicles() {
		ids = append(ids, v.ID())
	}
	assert.Equal(t, []int32{1, 3}, ids)

	// 新车辆ID继续自增，不复用
	assert.Equal(t, int32(5), m.Add(entity.VehicleTypeBus, 40, lane).ID())
	assert.Panics(t, func() { m.Evict(2) })
}

func TestGeneratorNoLanes(t *testing.T) {
	ctx := newTestCtx()
	g := NewGenerator(randengine.New(1), config.Default().Spawn, ctx.vehicles)
	_, err := g.Generate(nil)
	assert.ErrorIs(t, err, config.ErrNoLanes)
	assert.Equal(t, 0, ctx.vehicles.Len())
}

func TestGenerator(t *testing.T) {
	lanes := []*testLane{{id: 1, length: 500}, {id: 2, length: 600}}
	ctx := newTestCtx(lanes...)
	spawn := config.Default().Spawn
	g := NewGenerator(randengine.New(2024), spawn, ctx.vehicles)
	assert.Equal(t, 0.3, g.Probability())

	types := map[entity.VehicleType]int{}
	perLane := map[int32]int{}
	for i := 1; i <= 2000; i++ {
		v, err := g.Generate(ctx.lanes.Lanes())
		require.NoError(t, err)
		assert.Equal(t, int32(i), v.ID())
		assert.GreaterOrEqual(t, v.Speed(), spawn.MinSpeed)
		assert.LessOrEqual(t, v.Speed(), spawn.MaxSpeed)
		types[v.Type()]++
		perLane[v.LaneID()]++
	}
	assert.Len(t, types, entity.NumVehicleTypes)
	for _, n := range types {
		assert.InDelta(t, 500, n, 100)
	}
	assert.InDelta(t, 1000, perLane[1], 150)
	assert.InDelta(t, 1000, perLane[2], 150)
	assert.Equal(t, perLane[1], len(lanes[0].ids))
	assert.Equal(t, 2000, ctx.vehicles.Len())
}
