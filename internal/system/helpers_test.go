package system

import (
	"testing"

	"github.com/stretchr/testify/require"

	"go-cactus-defense/internal/component"
	"go-cactus-defense/internal/config"
	"go-cactus-defense/internal/defs"
	"go-cactus-defense/internal/entity"
	"go-cactus-defense/internal/event"
)

// testEnv собирает мир с прямым путём (0,0)->(100,0)->(100,100).
type testEnv struct {
	cfg        *config.Config
	world      *entity.World
	path       *component.Path
	dispatcher *event.Dispatcher
	events     []event.Event
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	cfg := config.Default()
	cfg.Path = []config.Point{{X: 0, Y: 0}, {X: 100, Y: 0}, {X: 100, Y: 100}}
	path, err := cfg.PathModel()
	require.NoError(t, err)

	env := &testEnv{
		cfg:        cfg,
		world:      entity.NewWorld(cfg),
		path:       path,
		dispatcher: event.NewDispatcher(),
	}
	record := event.ListenerFunc(func(e event.Event) { env.events = append(env.events, e) })
	for _, typ := range []event.EventType{
		event.WaveStarted, event.WaveEnded, event.EnemySpawned, event.EnemyKilled,
		event.EnemyLeaked, event.ShotFired, event.GameOver,
	} {
		env.dispatcher.Subscribe(typ, record)
	}
	return env
}

func (env *testEnv) addEnemy(pos component.Position, health float64) *component.Enemy {
	e := component.NewEnemy(env.world.NewEntity(), env.path, defs.EnemyStats{Health: health, Speed: 1, Reward: 25})
	e.Position = pos
	env.world.AddEnemy(e)
	return e
}

func (env *testEnv) addTower(kind defs.TowerKind, pos component.Position) *component.Tower {
	stats, _ := env.cfg.Stats(kind)
	tw := component.NewTower(env.world.NewEntity(), kind, pos, stats)
	env.world.Towers = append(env.world.Towers, tw)
	return tw
}

func (env *testEnv) count(typ event.EventType) int {
	n := 0
	for _, e := range env.events {
		if e.Type == typ {
			n++
		}
	}
	return n
}
