// internal/state/menu_state.go
package state

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"go-cactus-defense/internal/config"
	"go-cactus-defense/internal/ui"
)

// MenuState — стартовый экран, ждёт пробел.
type MenuState struct {
	sm   *StateMachine
	next func() State
}

func NewMenuState(sm *StateMachine, next func() State) *MenuState {
	return &MenuState{sm: sm, next: next}
}

func (m *MenuState) Enter() {}

func (m *MenuState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		m.sm.SetState(m.next())
	}
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{0, 0, 0, 255})
	ui.DrawOverlay(screen, "CACTUS DEFENSE", "press SPACE to start", config.OverlayColor, config.TextLightColor)
}

func (m *MenuState) Exit() {}
