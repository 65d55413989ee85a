// internal/config/config.go
package config

import "image/color"

const (
	ScreenWidth  = 1200
	ScreenHeight = 900
	MaxDeltaTime = 0.06

	// Арена: мировые координаты XZ, метры. Центр арены — (0,0).
	ArenaRadius   = 80.0
	WorldToScreen = 5.0 // пикселей на метр в отладочном рендере

	PlayerMaxHealth     = 100
	PlayerMoveSpeed     = 8.0
	PlayerTurnSpeed     = 2.6 // радиан в секунду
	PlayerSwingDamage   = 34
	PlayerSwingArcCos   = 0.70710678 // cos(45°)
	PlayerSwingWindow   = 0.25
	PlayerSwingCooldown = 0.55

	WaveClearScoreBase = 100
	ClickDebounceTime  = 100

	IndicatorOffsetX = 30
	IndicatorRadius  = 10.0
	HUDPanelHeight   = 64
)

var (
	BackgroundColor = color.RGBA{20, 20, 30, 255}
	ArenaFloorColor = color.RGBA{40, 44, 52, 255}
	ObstacleColor   = color.RGBA{90, 90, 100, 255}
	PlayerColor     = color.RGBA{80, 200, 255, 255}
	SwingArcColor   = color.RGBA{80, 200, 255, 90}
	HealthPackColor = color.RGBA{80, 230, 120, 255}
	TextLightColor  = color.RGBA{240, 240, 240, 255}
	TextDarkColor   = color.RGBA{20, 20, 30, 255}
	HealthBarBack   = color.RGBA{60, 20, 20, 255}
	HealthBarFill   = color.RGBA{200, 40, 40, 255}
	HealBarFill     = color.RGBA{80, 230, 120, 255}

	EnemyColorRegular = color.RGBA{170, 60, 60, 255}
	EnemyColorTank    = color.RGBA{120, 40, 120, 255}
	EnemyColorRunner  = color.RGBA{220, 140, 40, 255}
	EnemyColorDead    = color.RGBA{70, 70, 70, 255}
	EnemyHitFlash     = color.RGBA{255, 255, 255, 255}
)
