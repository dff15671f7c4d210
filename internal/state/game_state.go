// internal/state/game_state.go
package state

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"go-cactus-defense/internal/app"
	"go-cactus-defense/internal/component"
	"go-cactus-defense/internal/config"
	"go-cactus-defense/internal/defs"
	"go-cactus-defense/internal/interfaces"
	"go-cactus-defense/internal/ui"
	"go-cactus-defense/pkg/render"
)

var towerKeys = []ebiten.Key{ebiten.Key1, ebiten.Key2, ebiten.Key3, ebiten.Key4, ebiten.Key5}

// GameState — состояние игры
type GameState struct {
	sm            *StateMachine
	game          interfaces.GameContext
	logger        *log.Logger
	renderer      *render.FieldRenderer
	towerButtons  []*ui.TowerButton
	pauseButton   *ui.PauseButton
	waveIndicator *ui.WaveIndicator
	stats         *ui.StatsIndicator
	restartButton *ui.MenuButton
	selected      defs.TowerKind
	hasSelection  bool
}

// NewGameState собирает экран игры; cfg нужен для цен на кнопках.
func NewGameState(sm *StateMachine, g interfaces.GameContext, cfg *config.Config, logger *log.Logger) *GameState {
	colors := &render.FieldColors{
		BackgroundColor: config.BackgroundColor,
		PathColor:       config.PathColor,
		EnemyColor:      config.EnemyColor,
		HealthBackColor: config.HealthBackColor,
		HealthFillColor: config.HealthFillColor,
		RangeColor:      config.RangeColor,
		SelectedColor:   config.SelectedColor,
		TowerColors:     config.TowerColors,
	}
	sizes := render.Sizes{
		PathWidth:        config.PathWidth,
		TowerRadius:      config.TowerRadius,
		EnemyRadius:      config.EnemyRadius,
		HealthBarWidth:   config.HealthBarWidth,
		HealthBarHeight:  config.HealthBarHeight,
		HealthBarOffsetY: config.HealthBarOffsetY,
	}
	renderer := render.NewFieldRenderer(config.ScreenWidth, config.ScreenHeight-config.HUDHeight, 0, config.HUDHeight, colors, sizes)

	snap := g.Snapshot()
	path := make([]render.Point, 0, len(snap.Path))
	for _, wp := range snap.Path {
		path = append(path, render.Point{X: wp.X, Y: wp.Y})
	}
	renderer.RenderMapImage(path)

	gs := &GameState{
		sm:            sm,
		game:          g,
		logger:        logger,
		renderer:      renderer,
		pauseButton:   ui.NewPauseButton(config.PauseButtonX, config.PauseButtonY, config.PauseButtonSize, config.PauseColor, config.PlayColor),
		waveIndicator: ui.NewWaveIndicator(config.ScreenWidth-150, config.PauseButtonY, config.TextLightColor),
		stats:         ui.NewStatsIndicator(10, 22, config.TextLightColor),
		restartButton: ui.NewMenuButton(ui.Rect{
			X: config.ScreenWidth/2 - 80,
			Y: config.ScreenHeight/2 + 20,
			W: 160,
			H: 36,
		}, "Play Again", config.ButtonColor, config.TextLightColor),
	}

	for i, kind := range defs.AllTowerKinds() {
		stats, _ := cfg.Stats(kind)
		rect := ui.Rect{
			X: float32(config.TowerButtonGap + i*(config.TowerButtonWidth+config.TowerButtonGap)),
			Y: config.TowerButtonY,
			W: config.TowerButtonWidth,
			H: config.TowerButtonHeight,
		}
		label := fmt.Sprintf("%s %d", kind, stats.Cost)
		gs.towerButtons = append(gs.towerButtons, ui.NewTowerButton(rect, label, config.TowerColors[i], config.ButtonColor))
	}
	return gs
}

func (g *GameState) Enter() {
	g.pauseButton.SetPaused(false)
}

func (g *GameState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.sm.SetState(NewPauseState(g.sm, g))
		return
	}
	for i, key := range towerKeys {
		if inpututil.IsKeyJustPressed(key) {
			g.selectTower(defs.AllTowerKinds()[i])
		}
	}
	snap := g.game.Snapshot()
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.game.Submit(app.StartWaveCmd{Wave: snap.Wave})
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) && snap.IsGameOver {
		g.game.Submit(app.ResetCmd{})
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		g.handleClick(x, y, snap.IsGameOver)
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
		g.hasSelection = false
	}

	g.game.Update(deltaTime)
	g.syncButtons()
}

func (g *GameState) selectTower(kind defs.TowerKind) {
	g.selected = kind
	g.hasSelection = true
}

func (g *GameState) handleClick(x, y int, gameOver bool) {
	if gameOver {
		if g.restartButton.IsClicked(x, y) {
			g.game.Submit(app.ResetCmd{})
		}
		return
	}
	if g.pauseButton.IsClicked(x, y) {
		g.sm.SetState(NewPauseState(g.sm, g))
		return
	}
	for i, b := range g.towerButtons {
		if b.IsClicked(x, y) {
			g.selectTower(defs.AllTowerKinds()[i])
			return
		}
	}
	if y < config.HUDHeight || !g.hasSelection {
		return
	}

	p := g.renderer.ScreenToField(x, y)
	pos := component.Position{X: p.X, Y: p.Y}
	// Ставим напрямую, а не через очередь, чтобы сразу показать ошибку.
	if _, err := g.game.PlaceTower(g.selected, pos); err != nil {
		g.logger.Info("tower not placed", "kind", g.selected, "x", pos.X, "y", pos.Y, "err", err)
	}
}

// syncButtons обновляет подсветку и доступность кнопок башен.
func (g *GameState) syncButtons() {
	for i, b := range g.towerButtons {
		kind := defs.AllTowerKinds()[i]
		b.Selected = g.hasSelection && kind == g.selected
		b.Affordable = g.game.CanAfford(kind)
	}
}

func (g *GameState) Draw(screen *ebiten.Image) {
	snap := g.game.Snapshot()

	g.renderer.DrawField(screen)
	for _, t := range snap.Towers {
		pos := render.Point{X: t.Position.X, Y: t.Position.Y}
		g.renderer.DrawTower(screen, pos, int(t.Kind), false)
		if g.hasSelection && t.Kind == g.selected {
			g.renderer.DrawRange(screen, pos, t.Range)
		}
	}
	for _, e := range snap.Enemies {
		frac := 0.0
		if e.MaxHealth > 0 {
			frac = e.Health / e.MaxHealth
		}
		g.renderer.DrawEnemy(screen, render.Point{X: e.Position.X, Y: e.Position.Y}, frac)
	}
	for _, p := range snap.Projectiles {
		g.renderer.DrawProjectile(screen, render.Point{X: p.Position.X, Y: p.Position.Y}, int(p.Kind), p.Flicker)
	}

	g.drawHUD(screen, snap)

	if snap.IsGameOver {
		ui.DrawOverlay(screen, "GAME OVER", fmt.Sprintf("Score: %d", snap.Score), config.OverlayColor, config.TextLightColor)
		g.restartButton.Draw(screen)
	}
}

func (g *GameState) drawHUD(screen *ebiten.Image, snap *app.Snapshot) {
	vector.DrawFilledRect(screen, 0, 0, config.ScreenWidth, config.HUDHeight, config.HUDColor, false)
	g.stats.Draw(screen, snap.Tokens, snap.Lives, snap.Score)
	g.waveIndicator.Draw(screen, snap.Wave)
	for _, b := range g.towerButtons {
		b.Draw(screen, config.SelectedColor)
	}
	g.pauseButton.SetPaused(snap.IsPaused)
	g.pauseButton.Draw(screen)
}

func (g *GameState) Exit() {}
