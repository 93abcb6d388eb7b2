// internal/event/types.go
package event

const (
	EnemyKilled      EventType = "EnemyKilled" // Враг уничтожен
	EnemySpawned     EventType = "EnemySpawned"
	BaseHit          EventType = "BaseHit" // Враг долетел до базы
	ProjectileFired  EventType = "ProjectileFired"
	AbilityActivated EventType = "AbilityActivated"
	WaveAdvanced     EventType = "WaveAdvanced" // Волна пройдена
	BattleOver       EventType = "BattleOver"
)
