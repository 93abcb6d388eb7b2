// internal/tui/view.go
package tui

import (
	"fmt"
	"image/color"
	"strings"
	"time"

	"go-wave-defense/internal/app"
	"go-wave-defense/internal/defs"

	"github.com/gdamore/tcell/v2"
)

const hudRows = 2

var enemyGlyphs = map[defs.EnemyType]rune{
	defs.EnemyCircle:   'o',
	defs.EnemyTriangle: '^',
	defs.EnemySquare:   '#',
	defs.EnemySwarm:    '.',
	defs.EnemyTank:     'T',
	defs.EnemyBoss:     'B',
}

// Project переводит координаты поля в ячейку терминала. Верхние hudRows
// строк заняты HUD.
func Project(x, y, width, height float64, cols, rows int) (int, int, bool) {
	field := rows - hudRows
	if cols <= 0 || field <= 0 || x < 0 || y < 0 || x >= width || y >= height {
		return 0, 0, false
	}
	cx := int(x / width * float64(cols))
	cy := int(y/height*float64(field)) + hudRows
	return cx, cy, true
}

func Glyph(t defs.EnemyType) rune {
	if g, ok := enemyGlyphs[t]; ok {
		return g
	}
	return '?'
}

func styleOf(c color.RGBA) tcell.Style {
	return tcell.StyleDefault.Foreground(tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B)))
}

// Draw renders b onto screen. It does not call Show.
func Draw(screen tcell.Screen, b *app.Battle, paused bool) {
	screen.Clear()
	cols, rows := screen.Size()
	w, h := b.Tuning.Width, b.Tuning.Height

	for _, p := range b.ECS.Projectiles {
		if x, y, ok := Project(p.X, p.Y, w, h, cols, rows); ok {
			screen.SetContent(x, y, '*', nil, styleOf(p.Color))
		}
	}
	for _, e := range b.ECS.Enemies {
		if x, y, ok := Project(e.X, e.Y, w, h, cols, rows); ok {
			st := styleOf(e.Color)
			if b.ECS.Stunned(e.ID, b.Clock.Now()) {
				st = st.Blink(true)
			}
			screen.SetContent(x, y, Glyph(e.Type), nil, st)
		}
	}
	if x, y, ok := Project(b.Base.X, b.Base.Y, w, h, cols, rows); ok {
		st := tcell.StyleDefault.Foreground(tcell.ColorAqua).Bold(true)
		if b.AbilitySystem.ShieldActive() {
			st = st.Reverse(true)
		}
		screen.SetContent(x, y, '@', nil, st)
	}

	drawText(screen, 0, 0, tcell.StyleDefault.Bold(true), statusLine(b, paused))
	drawText(screen, 0, 1, tcell.StyleDefault.Foreground(tcell.ColorGray), abilityLine(b))
}

func statusLine(b *app.Battle, paused bool) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "WAVE %d  HP %.0f/%.0f  KILLS %d/%d  x%.0f",
		b.Wave.Number, b.Base.HP, b.Base.MaxHP, b.Wave.KilledThisWave, b.Wave.Required, b.Speed())
	if m, ok := defs.Modifier(b.Wave.Modifier); ok {
		fmt.Fprintf(&sb, "  [%s]", m.Name)
	}
	switch {
	case b.Over():
		fmt.Fprintf(&sb, "  BATTLE OVER (checkpoint %d, Enter to restart)", b.Checkpoint())
	case paused:
		sb.WriteString("  PAUSED")
	}
	return sb.String()
}

func abilityLine(b *app.Battle) string {
	parts := make([]string, 0, len(defs.AbilityOrder))
	for _, a := range b.AbilitySystem.Abilities() {
		def := defs.AbilityLibrary[a.ID]
		state := "ready"
		switch {
		case a.Active(b.Clock.Now()):
			state = "ON"
		case !a.Ready():
			state = fmt.Sprintf("%.1fs", a.RemainingCooldown.Round(100*time.Millisecond).Seconds())
		}
		parts = append(parts, fmt.Sprintf("%c:%s %s", def.Hotkey, def.Name, state))
	}
	return strings.Join(parts, "  ")
}

func drawText(screen tcell.Screen, x, y int, style tcell.Style, s string) {
	for _, r := range s {
		screen.SetContent(x, y, r, nil, style)
		x++
	}
}
