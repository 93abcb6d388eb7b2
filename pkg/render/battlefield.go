// pkg/render/battlefield.go
package render

import (
	"fmt"
	"math"

	"go-wave-defense/internal/app"
	"go-wave-defense/internal/component"
	"go-wave-defense/internal/config"
	"go-wave-defense/internal/defs"
	"go-wave-defense/internal/utils"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	hpBarHeight  = 4
	barrelLength = 40
)

// BattlefieldRenderer рисует поле боя: врагов, снаряды, базу и эффекты.
// Данные только читаются.
type BattlefieldRenderer struct {
	face text.Face
}

func NewBattlefieldRenderer(face text.Face) *BattlefieldRenderer {
	return &BattlefieldRenderer{face: face}
}

func (r *BattlefieldRenderer) Draw(screen *ebiten.Image, b *app.Battle) {
	screen.Fill(config.BackgroundColor)

	for _, s := range b.ECS.Shockwaves {
		vector.StrokeCircle(screen, float32(s.X), float32(s.Y), float32(s.Radius), 3, Fade(s.Color, s.Life), true)
	}
	for _, p := range b.ECS.Particles {
		half := float32(p.Size / 2)
		vector.DrawFilledRect(screen, float32(p.X)-half, float32(p.Y)-half, float32(p.Size), float32(p.Size), Fade(p.Color, p.Life), false)
	}

	now := b.Clock.Now()
	for _, e := range b.ECS.Enemies {
		r.drawEnemy(screen, e, b.ECS.Stunned(e.ID, now), e.Slow.Active(now))
	}
	for _, p := range b.ECS.Projectiles {
		vector.DrawFilledCircle(screen, float32(p.X), float32(p.Y), config.ProjectileRadius, p.Color, true)
	}

	r.drawBase(screen, b)

	for _, d := range b.ECS.DamageNumbers {
		r.drawDamageNumber(screen, d)
	}
}

func (r *BattlefieldRenderer) drawEnemy(screen *ebiten.Image, e *component.Enemy, stunned, slowed bool) {
	c := e.Color
	if e.Behavior != defs.BehaviorStandard {
		c = defs.Behavior(e.Behavior).Color
	}
	x, y := float32(e.X), float32(e.Y)

	switch e.Type {
	case defs.EnemyCircle, defs.EnemySwarm:
		vector.DrawFilledCircle(screen, x, y, float32(e.Radius), c, true)
	default:
		pts := utils.RegularPolygon(e.X, e.Y, e.Radius, sidesOf(e.Type), e.Rotation)
		FillPolygon(screen, pts, c)
		if e.Type == defs.EnemyBoss {
			StrokePolygon(screen, pts, 3, config.BaseHitColor)
		}
	}

	switch {
	case stunned:
		vector.StrokeCircle(screen, x, y, float32(e.Radius)+4, 2, config.EMPColor, true)
	case slowed:
		vector.StrokeCircle(screen, x, y, float32(e.Radius)+3, 2, config.SlowColor, true)
	}

	if e.HP < e.MaxHP {
		w := float32(e.Radius * 2)
		top := y - float32(e.Radius) - 8
		vector.DrawFilledRect(screen, x-w/2, top, w, hpBarHeight, config.HealthBarBg, false)
		vector.DrawFilledRect(screen, x-w/2, top, w*float32(max(0, e.HP/e.MaxHP)), hpBarHeight, config.HealthBarLow, false)
	}
}

func sidesOf(t defs.EnemyType) int {
	switch t {
	case defs.EnemyTriangle:
		return 3
	case defs.EnemySquare:
		return 4
	case defs.EnemyTank:
		return 6
	default:
		return 8
	}
}

func (r *BattlefieldRenderer) drawBase(screen *ebiten.Image, b *app.Battle) {
	x, y := float32(b.Base.X), float32(b.Base.Y)
	vector.DrawFilledCircle(screen, x, y, config.BaseRadius, DarkenColor(config.BaseColor), true)
	vector.StrokeCircle(screen, x, y, config.BaseRadius, 3, config.BaseColor, true)

	angle := b.WeaponSystem.Turret().Angle
	ex := x + float32(math.Cos(angle)*barrelLength)
	ey := y + float32(math.Sin(angle)*barrelLength)
	vector.StrokeLine(screen, x, y, ex, ey, 6, b.WeaponSystem.Weapon().Color, true)

	if b.AbilitySystem.ShieldActive() {
		vector.DrawFilledCircle(screen, x, y, config.BaseRadius+25, config.ShieldColor, true)
	}
	if b.AbilitySystem.OverclockActive() {
		vector.StrokeCircle(screen, x, y, config.BaseRadius+8, 2, config.ActiveColor, true)
	}
}

func (r *BattlefieldRenderer) drawDamageNumber(screen *ebiten.Image, d *component.DamageNumber) {
	s := d.Text
	if s == "" {
		s = fmt.Sprintf("%.0f", d.Value)
	}
	c := config.TextLightColor
	if d.IsCrit {
		c = config.CritColor
		s += "!"
	}
	w, _ := text.Measure(s, r.face, 0)
	op := &text.DrawOptions{}
	op.GeoM.Translate(d.X-w/2, d.Y)
	op.ColorScale.ScaleWithColor(Fade(c, d.Life))
	text.Draw(screen, s, r.face, op)
}
