// internal/types/types.go
package types

// EntityID — стабильный идентификатор сущности на всё время её жизни.
type EntityID uint64
