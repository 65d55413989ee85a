// internal/defs/pickups.go
package defs

// HealthPackDefinition holds the static parameters of the heal pickup
// dropped by dying enemies.
type HealthPackDefinition struct {
	HealAmount   int     `json:"heal_amount"`
	HealDuration float64 `json:"heal_duration"`
	Radius       float64 `json:"radius"`
}

// DefaultHealthPack возвращает параметры аптечки из исходной балансировки.
func DefaultHealthPack() HealthPackDefinition {
	return HealthPackDefinition{
		HealAmount:   25,
		HealDuration: 2.0,
		Radius:       1.5,
	}
}

// HealthPackDef — активное определение аптечки.
var HealthPackDef = DefaultHealthPack()
