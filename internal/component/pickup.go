// internal/component/pickup.go
package component

// HealthPack — подбираемая аптечка, выпадающая из врагов.
type HealthPack struct {
	HealAmount   int
	HealDuration float64
	Radius       float64
	SpawnedAt    float64 // игровое время появления
	DespawnAt    float64 // игровое время исчезновения, если не подобрали
}
