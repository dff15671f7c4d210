// internal/config/config.go
package config

import "image/color"

const (
	ScreenWidth  = 800
	ScreenHeight = 680
	HUDHeight    = 80 // Полоса с показателями и кнопками над полем
	MaxDeltaTime = 0.1

	PathWidth         = 20.0
	TowerRadius       = 20.0
	EnemyRadius       = 15.0
	HealthBarWidth    = 30.0
	HealthBarHeight   = 5.0
	HealthBarOffsetY  = 25.0
	TowerButtonWidth  = 150
	TowerButtonHeight = 30
	TowerButtonGap    = 8
	TowerButtonY      = 40

	PauseButtonX    = ScreenWidth - 30
	PauseButtonY    = 18
	PauseButtonSize = 8.0

	TextCharWidth = 7
)

var (
	BackgroundColor = color.RGBA{222, 202, 160, 255}
	HUDColor        = color.RGBA{40, 40, 50, 255}
	PathColor       = color.RGBA{139, 69, 19, 255}
	EnemyColor      = color.RGBA{39, 174, 96, 255}
	HealthBackColor = color.RGBA{231, 76, 60, 255}
	HealthFillColor = color.RGBA{46, 204, 113, 255}
	RangeColor      = color.RGBA{200, 200, 200, 77}
	TextLightColor  = color.RGBA{240, 240, 240, 255}
	TextDarkColor   = color.RGBA{20, 20, 30, 255}
	OverlayColor    = color.RGBA{0, 0, 0, 160}
	ButtonColor     = color.RGBA{90, 90, 110, 255}
	SelectedColor   = color.RGBA{255, 215, 0, 255}
	PauseColor      = color.RGBA{70, 130, 180, 220}
	PlayColor       = color.RGBA{220, 60, 60, 220}

	// Цвета башен по виду, в порядке defs.AllTowerKinds().
	TowerColors = []color.RGBA{
		{66, 135, 245, 255}, // Водяная пушка
		{46, 204, 113, 255}, // Ядовитый распылитель
		{231, 76, 60, 255},  // Огненная башня
		{52, 152, 219, 255}, // Ледяная башня
		{241, 196, 15, 255}, // Громоотвод
	}
)
