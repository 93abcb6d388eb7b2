package component

// Base — защищаемая станция игрока.
type Base struct {
	Position
	HP    float64
	MaxHP float64
}

// Damage applies collision damage and clamps at zero.
func (b *Base) Damage(amount float64) {
	b.HP -= amount
	if b.HP < 0 {
		b.HP = 0
	}
}

// Heal restores hp up to MaxHP.
func (b *Base) Heal(amount float64) {
	b.HP = min(b.HP+amount, b.MaxHP)
}
