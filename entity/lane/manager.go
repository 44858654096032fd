package lane

import (
	"fmt"

	"github.com/samber/lo"
	"github.com/tsinghua-fib-lab/lanesim/entity"
	"github.com/tsinghua-fib-lab/lanesim/utils/config"
)

// LaneManager Lane管理器
// 功能：管理所有Lane实体，提供创建、查找、按固定顺序更新等功能
type LaneManager struct {
	ctx entity.ITaskContext

	data  map[int32]*Lane
	lanes []*Lane
}

// NewManager 创建Lane管理器实例
// 参数：ctx-任务上下文
// 返回：新创建的Lane管理器实例
func NewManager(ctx entity.ITaskContext) *LaneManager {
	return &LaneManager{
		ctx:   ctx,
		data:  make(map[int32]*Lane),
		lanes: make([]*Lane, 0),
	}
}

// Init 初始化所有Lane
// 功能：根据配置创建所有Lane对象并建立ID映射
// 参数：lanes-车道配置，按此顺序更新，light-信号灯相位时长
func (m *LaneManager) Init(lanes []config.LaneConfig, light config.Light) {
	m.lanes = lo.Map(lanes, func(c config.LaneConfig, _ int) *Lane {
		return newLane(m.ctx, c, light)
	})
	m.data = lo.SliceToMap(m.lanes, func(l *Lane) (int32, *Lane) {
		return l.id, l
	})
}

// Get 根据ID获取Lane实例，如果不存在则panic
func (m *LaneManager) Get(id int32) entity.ILane {
	if lane, ok := m.data[id]; !ok {
		log.Panicf("no id %d in lane data", id)
		return nil
	} else {
		return lane
	}
}

// GetOrError 根据ID获取Lane实例，如果不存在则返回错误
func (m *LaneManager) GetOrError(id int32) (entity.ILane, error) {
	if lane, ok := m.data[id]; !ok {
		return nil, fmt.Errorf("no id %d in lane data", id)
	} else {
		return lane, nil
	}
}

// GetLane 根据ID获取Lane的具体类型，用于访问信号灯等非接口能力
func (m *LaneManager) GetLane(id int32) (*Lane, error) {
	if lane, ok := m.data[id]; !ok {
		return nil, fmt.Errorf("no id %d in lane data", id)
	} else {
		return lane, nil
	}
}

// Lanes 按初始化顺序返回所有Lane
func (m *LaneManager) Lanes() []entity.ILane {
	return lo.Map(m.lanes, func(l *Lane, _ int) entity.ILane { return l })
}

func (m *LaneManager) Len() int {
	return len(m.lanes)
}

// Update 更新阶段，按固定顺序执行所有Lane的模拟逻辑
func (m *LaneManager) Update(dt float64) {
	for _, l := range m.lanes {
		l.update(dt)
	}
}
