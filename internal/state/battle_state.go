// internal/state/battle_state.go
package state

import (
	"fmt"
	"time"

	"go-wave-defense/internal/app"
	"go-wave-defense/internal/clock"
	"go-wave-defense/internal/config"
	"go-wave-defense/internal/defs"
	"go-wave-defense/internal/system"
	"go-wave-defense/internal/ui"
	"go-wave-defense/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

var abilityKeys = map[defs.AbilityID]ebiten.Key{
	defs.AbilityPlasmaBurst: ebiten.KeyQ,
	defs.AbilityShield:      ebiten.KeyW,
	defs.AbilityOverclock:   ebiten.KeyE,
	defs.AbilityEMPPulse:    ebiten.KeyR,
	defs.AbilityRepair:      ebiten.KeyF,
}

// BattleState — экран боя: собирает ввод, тикает Battle и рисует его.
type BattleState struct {
	sm       *StateMachine
	tuning   config.Tuning
	battle   *app.Battle
	face     text.Face
	renderer *render.BattlefieldRenderer

	speedButton *ui.SpeedButton
	pauseButton *ui.PauseButton
	phase       *ui.PhaseIndicator
	waveLabel   *ui.WaveIndicator
	health      *ui.BaseHealthIndicator
	abilityBar  *ui.AbilityBar

	aimMode       config.AimMode
	lastClickTime time.Time
	onBattle      func(*app.Battle)
}

// NewBattleState starts a battle from tuning.StartWave. onBattle, if set, is
// called with every new battle before its first tick (audio subscription).
func NewBattleState(sm *StateMachine, tuning config.Tuning, onBattle func(*app.Battle)) *BattleState {
	face := ui.DefaultFace()
	battle := app.NewBattle(tuning, clock.NewReal())
	if onBattle != nil {
		onBattle(battle)
	}

	w, h := float32(tuning.Width), float32(tuning.Height)
	bar := ui.NewAbilityBar(0, h-70, face)
	bar.X = (w - bar.Width(len(defs.AbilityOrder))) / 2

	speed := ui.NewSpeedButton(w-60, 40, 15, config.SpeedButtonColors)
	speed.SetMultiplier(battle.Speed())

	return &BattleState{
		sm:          sm,
		tuning:      tuning,
		battle:      battle,
		face:        face,
		renderer:    render.NewBattlefieldRenderer(face),
		speedButton: speed,
		pauseButton: ui.NewPauseButton(w-120, 40, 12, config.TextLightColor, config.HealthBarFill),
		phase:       ui.NewPhaseIndicator(30, 40, 12),
		waveLabel:   ui.NewWaveIndicator(float64(w)/2, 20, face),
		health:      ui.NewBaseHealthIndicator(w/2-150, h-22, 300, 16, face),
		abilityBar:  bar,
		aimMode:     tuning.AimMode,
		onBattle:    onBattle,
	}
}

func (g *BattleState) Battle() *app.Battle { return g.battle }

func (g *BattleState) Enter() {
	g.pauseButton.SetPaused(false)
}

func (g *BattleState) Exit() {}

func (g *BattleState) Update(delta time.Duration) {
	if g.battle.Over() {
		g.sm.SetState(NewOverState(g.sm, g))
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.pause()
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyM) {
		if g.aimMode == config.AimAuto {
			g.aimMode = config.AimManual
		} else {
			g.aimMode = config.AimAuto
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.Key1) {
		g.setSpeed(1)
	}
	if inpututil.IsKeyJustPressed(ebiten.Key2) {
		g.setSpeed(2)
	}

	in := g.battle.DefaultInputs()
	in.Fire = g.fireControl()
	for _, id := range defs.AbilityOrder {
		if inpututil.IsKeyJustPressed(abilityKeys[id]) {
			in.Abilities = append(in.Abilities, id)
		}
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		if id, ok := g.handleUIClick(float32(x), float32(y)); ok {
			in.Abilities = append(in.Abilities, id)
		}
	}

	g.battle.Tick(delta, in)
}

func (g *BattleState) fireControl() system.FireControl {
	x, y := ebiten.CursorPosition()
	fx, fy := float64(x), float64(y)
	inField := fx >= 0 && fy >= 0 && fx < g.tuning.Width && fy < g.tuning.Height-90
	return system.FireControl{
		Mode:    g.aimMode,
		Aiming:  inField,
		Holding: inField && ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
		AimX:    fx,
		AimY:    fy,
		Reload:  inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight),
	}
}

// handleUIClick returns an ability to activate if its slot was clicked.
func (g *BattleState) handleUIClick(mx, my float32) (defs.AbilityID, bool) {
	if time.Since(g.lastClickTime) < time.Duration(config.ClickCooldown)*time.Millisecond {
		return "", false
	}
	g.lastClickTime = time.Now()

	switch {
	case g.speedButton.Contains(mx, my):
		g.setSpeed(3 - g.battle.Speed())
	case g.pauseButton.Contains(mx, my):
		g.pause()
	default:
		abilities := g.battle.AbilitySystem.Abilities()
		if i, ok := g.abilityBar.SlotAt(mx, my, len(abilities)); ok {
			return abilities[i].ID, true
		}
	}
	return "", false
}

func (g *BattleState) setSpeed(m float64) {
	g.battle.SetSpeed(m)
	if g.speedButton.Multiplier() != m {
		g.speedButton.ToggleState()
	}
}

func (g *BattleState) pause() {
	g.pauseButton.TogglePause()
	g.sm.SetState(NewPauseState(g.sm, g))
}

func (g *BattleState) Draw(screen *ebiten.Image) {
	b := g.battle
	g.renderer.Draw(screen, b)

	g.phase.Draw(screen, b.Phase())
	g.waveLabel.Draw(screen, b.Wave.Number, b.Wave.Modifier, b.Wave.KilledThisWave, b.Wave.Required)
	g.health.Draw(screen, b.Base.HP, b.Base.MaxHP)
	g.abilityBar.Draw(screen, b.AbilitySystem.Abilities(), b.Clock.Now())
	g.speedButton.Draw(screen)
	g.pauseButton.Draw(screen)

	g.drawWeaponInfo(screen)
}

func (g *BattleState) drawWeaponInfo(screen *ebiten.Image) {
	t := g.battle.WeaponSystem.Turret()
	label := g.battle.WeaponSystem.Weapon().Name + "  " + string(g.aimMode)
	if g.aimMode == config.AimManual {
		if t.Reloading {
			label += "  RELOADING"
		} else {
			label += fmt.Sprintf("  %d/%d", t.Ammo, config.MagazineSize)
		}
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(20, g.tuning.Height-40)
	op.ColorScale.ScaleWithColor(config.TextLightColor)
	text.Draw(screen, label, g.face, op)
}
