// internal/defs/waves.go
package defs

import (
	"errors"
	"fmt"
	"math"
)

// WaveScaling описывает, как растут размер волны и характеристики врагов с номером волны.
type WaveScaling struct {
	CountBase    float64 `yaml:"count_base"`
	CountGrowth  float64 `yaml:"count_growth"`
	BaseHealth   float64 `yaml:"base_health"`
	HealthGrowth float64 `yaml:"health_growth"`
	BaseSpeed    float64 `yaml:"base_speed"`
	SpeedGrowth  float64 `yaml:"speed_growth"`
	BaseReward   float64 `yaml:"base_reward"`
	RewardGrowth float64 `yaml:"reward_growth"`
}

// DefaultWaveScaling: 20% здоровья, 5% скорости и 15% награды за каждую волну.
func DefaultWaveScaling() WaveScaling {
	return WaveScaling{
		CountBase:    5,
		CountGrowth:  1.5,
		BaseHealth:   100,
		HealthGrowth: 0.2,
		BaseSpeed:    0.5,
		SpeedGrowth:  0.05,
		BaseReward:   25,
		RewardGrowth: 0.15,
	}
}

// EnemyStats are the spawn-time stats of every enemy in one wave.
type EnemyStats struct {
	Health float64
	Speed  float64
	Reward int
}

// EnemyCount returns floor(CountBase + wave*CountGrowth).
func (w WaveScaling) EnemyCount(wave int) int {
	return int(math.Floor(w.CountBase + float64(wave)*w.CountGrowth))
}

// EnemyStats scales the base stats for the given wave (wave >= 1).
func (w WaveScaling) EnemyStats(wave int) EnemyStats {
	step := float64(wave - 1)
	return EnemyStats{
		Health: w.BaseHealth * (1 + step*w.HealthGrowth),
		Speed:  w.BaseSpeed * (1 + step*w.SpeedGrowth),
		Reward: int(math.Floor(w.BaseReward * (1 + step*w.RewardGrowth))),
	}
}

// Validate checks that every wave spawns at least one living enemy that moves
// forward and that nothing shrinks as waves grow.
func (w WaveScaling) Validate() error {
	var errs []error
	if w.CountBase+w.CountGrowth < 1 {
		errs = append(errs, fmt.Errorf("count_base + count_growth must be >= 1, got %v", w.CountBase+w.CountGrowth))
	}
	if w.BaseHealth <= 0 {
		errs = append(errs, fmt.Errorf("base_health must be > 0, got %v", w.BaseHealth))
	}
	if w.BaseSpeed <= 0 {
		errs = append(errs, fmt.Errorf("base_speed must be > 0, got %v", w.BaseSpeed))
	}
	if w.BaseReward < 0 {
		errs = append(errs, fmt.Errorf("base_reward must be >= 0, got %v", w.BaseReward))
	}
	if w.CountGrowth < 0 || w.HealthGrowth < 0 || w.SpeedGrowth < 0 || w.RewardGrowth < 0 {
		errs = append(errs, fmt.Errorf("growth rates must be >= 0"))
	}
	return errors.Join(errs...)
}
