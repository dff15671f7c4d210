// internal/types/types.go
package types

// EntityID — идентификатор башни или врага. Нулевое значение означает «нет сущности».
type EntityID uint64
