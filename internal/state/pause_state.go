// internal/state/pause_state.go
package state

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"go-cactus-defense/internal/config"
	"go-cactus-defense/internal/ui"
)

// Убеждаемся, что PauseState соответствует интерфейсу State
var _ State = (*PauseState)(nil)

// PauseState замораживает симуляцию поверх игрового состояния.
type PauseState struct {
	stateMachine  *StateMachine
	previousState *GameState
}

func NewPauseState(sm *StateMachine, prevState *GameState) *PauseState {
	return &PauseState{
		stateMachine:  sm,
		previousState: prevState,
	}
}

func (s *PauseState) Enter() {
	s.previousState.game.SetPaused(true)
}

func (s *PauseState) Update(deltaTime float64) {
	unpause := inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape)
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		unpause = unpause || s.previousState.pauseButton.IsClicked(x, y)
	}
	if unpause {
		s.stateMachine.SetState(s.previousState)
		return
	}
	// Игра на паузе: Update только применяет команды, время стоит.
	s.previousState.game.Update(deltaTime)
}

func (s *PauseState) Draw(screen *ebiten.Image) {
	s.previousState.Draw(screen)
	ui.DrawOverlay(screen, "PAUSED", "press P to resume", config.OverlayColor, config.TextLightColor)
}

func (s *PauseState) Exit() {
	s.previousState.game.SetPaused(false)
}
