// internal/system/wave.go
package system

import (
	"errors"
	"fmt"
	"time"

	"go-cactus-defense/internal/component"
	"go-cactus-defense/internal/config"
	"go-cactus-defense/internal/entity"
	"go-cactus-defense/internal/event"
)

var (
	// ErrWaveInProgress is returned by StartWave unless the spawner is idle.
	ErrWaveInProgress = errors.New("wave already in progress")
	// ErrInvalidWave is returned for wave numbers below 1.
	ErrInvalidWave = errors.New("wave number must be >= 1")
)

// WavePhase — состояние спавнера: Idle → Spawning → Cooldown → Idle.
type WavePhase int

const (
	WaveIdle WavePhase = iota
	WaveSpawning
	WaveCooldown
)

func (p WavePhase) String() string {
	switch p {
	case WaveIdle:
		return "idle"
	case WaveSpawning:
		return "spawning"
	case WaveCooldown:
		return "cooldown"
	default:
		return fmt.Sprintf("WavePhase(%d)", int(p))
	}
}

// WaveSystem создаёт врагов волны с интервалом и сообщает о её завершении.
// Таймеры сравниваются со временем симуляции, которое стоит на паузе,
// поэтому пауза замораживает и спавн, и перерыв между волнами.
type WaveSystem struct {
	world           *entity.World
	path            *component.Path
	eventDispatcher *event.Dispatcher
	cfg             config.WaveConfig

	phase         WavePhase
	wave          int
	toSpawn       int
	spawned       int
	lastSpawn     time.Duration
	hasSpawned    bool
	cooldownStart time.Duration
}

func NewWaveSystem(world *entity.World, path *component.Path, eventDispatcher *event.Dispatcher, cfg config.WaveConfig) *WaveSystem {
	return &WaveSystem{
		world:           world,
		path:            path,
		eventDispatcher: eventDispatcher,
		cfg:             cfg,
	}
}

// StartWave arms the spawner for wave waveNumber. It only works while idle.
func (s *WaveSystem) StartWave(waveNumber int) error {
	if waveNumber < 1 {
		return ErrInvalidWave
	}
	if s.phase != WaveIdle || !s.world.WaveReady {
		return ErrWaveInProgress
	}

	s.phase = WaveSpawning
	s.wave = waveNumber
	s.toSpawn = s.cfg.Scaling.EnemyCount(waveNumber)
	s.spawned = 0
	s.world.WaveReady = false
	s.eventDispatcher.Dispatch(event.Event{Type: event.WaveStarted, Data: waveNumber})
	return nil
}

// Update polls the spawner at simulation time now.
func (s *WaveSystem) Update(now time.Duration) {
	switch s.phase {
	case WaveSpawning:
		if s.spawned < s.toSpawn && (!s.hasSpawned || now-s.lastSpawn >= s.cfg.SpawnGap) {
			s.spawnEnemy()
			s.lastSpawn = now
			s.hasSpawned = true
			s.spawned++
		}
		if s.spawned >= s.toSpawn {
			s.phase = WaveCooldown
			s.cooldownStart = now
		}
	case WaveCooldown:
		if now-s.cooldownStart >= s.cfg.Cooldown {
			s.phase = WaveIdle
			s.world.WaveReady = true
			s.eventDispatcher.Dispatch(event.Event{Type: event.WaveEnded, Data: s.wave})
		}
	}
}

func (s *WaveSystem) spawnEnemy() {
	stats := s.cfg.Scaling.EnemyStats(s.wave)
	enemy := component.NewEnemy(s.world.NewEntity(), s.path, stats)
	s.world.AddEnemy(enemy)
	s.eventDispatcher.Dispatch(event.Event{Type: event.EnemySpawned, Data: enemy.ID})
}

// Reset drops any wave in flight; nothing scheduled before the reset can spawn after it.
func (s *WaveSystem) Reset() {
	s.phase = WaveIdle
	s.wave = 0
	s.toSpawn = 0
	s.spawned = 0
	s.lastSpawn = 0
	s.hasSpawned = false
	s.cooldownStart = 0
}

// Phase returns the current spawner state.
func (s *WaveSystem) Phase() WavePhase { return s.phase }

// Remaining returns how many enemies of the current wave are still to spawn.
func (s *WaveSystem) Remaining() int {
	if s.phase != WaveSpawning {
		return 0
	}
	return s.toSpawn - s.spawned
}
