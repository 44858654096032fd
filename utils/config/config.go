package config

import (
	_ "embed"
	"errors"
	"fmt"

	"gopkg.in/yaml.v2"
)

//go:embed default.yaml
var defaultData []byte

// ErrNoLanes 车道集合为空
var ErrNoLanes = errors.New("config: at least one lane is required")

// Default 获取内置的参考配置
// 功能：解析编译期嵌入的YAML配置并校验
// 说明：内置配置非法属于编程错误，直接panic
func Default() Config {
	c, err := Parse(defaultData)
	if err != nil {
		panic(fmt.Sprintf("config: bad built-in config: %v", err))
	}
	return c
}

// Parse 严格解析YAML配置并校验
// 参数：data-YAML数据
// 返回：配置对象与错误信息，未知字段与非法取值均返回错误
func Parse(data []byte) (Config, error) {
	var c Config
	if err := yaml.UnmarshalStrict(data, &c); err != nil {
		return Config{}, fmt.Errorf("config: unmarshal: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate 校验配置
// 功能：在仿真启动前拒绝非法配置，保证车道集合非空等不变量
func (c Config) Validate() error {
	if c.Control.Step.Interval <= 0 {
		return fmt.Errorf("config: step interval must be positive, got %v", c.Control.Step.Interval)
	}
	if c.Control.Step.Total <= 0 {
		return fmt.Errorf("config: total steps must be positive, got %d", c.Control.Step.Total)
	}
	if len(c.Lanes) == 0 {
		return ErrNoLanes
	}
	ids := make(map[int32]struct{}, len(c.Lanes))
	for _, l := range c.Lanes {
		if _, ok := ids[l.ID]; ok {
			return fmt.Errorf("config: duplicate lane id %d", l.ID)
		}
		ids[l.ID] = struct{}{}
		if l.Length <= 0 {
			return fmt.Errorf("config: lane %d length must be positive, got %v", l.ID, l.Length)
		}
	}
	if c.Light.Green <= 0 || c.Light.Yellow <= 0 || c.Light.Red <= 0 {
		return fmt.Errorf("config: light durations must be positive, got %+v", c.Light)
	}
	if c.Spawn.Probability < 0 || c.Spawn.Probability > 1 {
		return fmt.Errorf("config: spawn probability must be in [0,1], got %v", c.Spawn.Probability)
	}
	if c.Spawn.MinSpeed < 0 || c.Spawn.MinSpeed > c.Spawn.MaxSpeed {
		return fmt.Errorf("config: bad spawn speed range [%v,%v]", c.Spawn.MinSpeed, c.Spawn.MaxSpeed)
	}
	return nil
}
