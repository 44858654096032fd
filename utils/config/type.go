package config

// ControlStep 指定模拟器模拟时间范围和间隔的配置项
// 功能：定义仿真时间控制参数
type ControlStep struct {
	Total    int32   `yaml:"total"`    // 总步数
	Interval float64 `yaml:"interval"` // 每步的时间间隔（秒）
}

// Control 模拟器控制配置
type Control struct {
	Step ControlStep `yaml:"step"`
}

// LaneConfig 单条车道的配置
type LaneConfig struct {
	ID       int32   `yaml:"id"`
	Length   float64 `yaml:"length"`    // 车道长度（米）
	MaxSpeed float64 `yaml:"max_speed"` // 车道限速（km/h），仅记录
}

// Light 信号灯各相位时长配置（秒）
type Light struct {
	Green  float64 `yaml:"green"`
	Yellow float64 `yaml:"yellow"`
	Red    float64 `yaml:"red"`
}

// Spawn 车辆生成配置
// 功能：定义每步生成车辆的概率与车速范围
type Spawn struct {
	Probability float64 `yaml:"probability"` // 每步生成一辆车的概率
	MinSpeed    float64 `yaml:"min_speed"`   // 车速下限（km/h）
	MaxSpeed    float64 `yaml:"max_speed"`   // 车速上限（km/h）
}

// Config YAML配置文件的根结构
// 功能：定义整个仿真系统的配置结构
type Config struct {
	Control Control      `yaml:"control"` // 模拟过程控制
	Lanes   []LaneConfig `yaml:"lanes"`   // 车道
	Light   Light        `yaml:"light"`   // 信号灯
	Spawn   Spawn        `yaml:"spawn"`   // 车辆生成
}
