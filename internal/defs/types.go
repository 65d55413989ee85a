// internal/defs/types.go
package defs

// EnemyClass — тип врага. Выбирается один раз при спавне и дальше
// не меняется; все параметры класса лежат в EnemyDefinition.
type EnemyClass string

const (
	ClassRegular EnemyClass = "regular"
	ClassTank    EnemyClass = "tank"
	ClassRunner  EnemyClass = "runner"
)
