// internal/config/config.go
package config

import (
	"image/color"
	"time"
)

const (
	ScreenWidth  = 1200
	ScreenHeight = 900

	// Базовая станция стоит по центру, на 100px выше нижнего края
	BaseOffsetY = 100
	BaseRadius  = 40.0
	BaseMaxHP   = 3000.0

	MaxDeltaTime  = 50 * time.Millisecond
	ClickCooldown = 300 // ms

	// Всё, что вылетело дальше этого отступа за край поля, удаляется
	PlayfieldMargin = 50.0
	SpawnPadding    = 50.0

	ProjectileHitPadding = 5.0
	ProjectileRadius     = 4.0
	ProjectileBaseSpeed  = 800.0 // px/s при множителе оружия 1.0
	MuzzleOffsetY        = 40.0

	HomingSpeed      = 800.0 // px/s
	HomingTurnFactor = 0.1

	AutoAimRange = 800.0

	MagazineSize = 30
	ReloadTime   = 1500 * time.Millisecond

	SplashDamageFactor = 0.5

	EnemySpinMax = 25.0 // rad/s, только визуал
)

var (
	BackgroundColor = color.RGBA{5, 5, 10, 255}
	BaseColor       = color.RGBA{0, 240, 255, 255}
	ShieldColor     = color.RGBA{0, 240, 255, 90}
	BaseHitColor    = color.RGBA{255, 0, 60, 255}
	TextLightColor  = color.RGBA{240, 240, 240, 255}
	TextDarkColor   = color.RGBA{20, 20, 30, 255}
	HealthBarBg     = color.RGBA{40, 40, 50, 220}
	HealthBarFill   = color.RGBA{10, 255, 100, 255}
	HealthBarLow    = color.RGBA{255, 0, 60, 255}
	CooldownColor   = color.RGBA{60, 60, 70, 220}
	ReadyColor      = color.RGBA{70, 130, 180, 220}
	ActiveColor     = color.RGBA{252, 238, 10, 255}
	BurstColor      = color.RGBA{255, 102, 0, 255}
	EMPColor        = color.RGBA{0, 255, 255, 255}
	RepairColor     = color.RGBA{0, 255, 0, 255}
	SlowColor       = color.RGBA{136, 255, 255, 255}
	CritColor       = color.RGBA{252, 238, 10, 255}

	SpeedButtonColors = []color.Color{
		color.RGBA{70, 130, 180, 220}, // x1
		color.RGBA{220, 60, 60, 220},  // x2
	}
)

// BasePosition returns the base center for a playfield of the given size.
func BasePosition(width, height float64) (float64, float64) {
	return width / 2, height - BaseOffsetY
}
