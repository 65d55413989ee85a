package main

import (
	"flag"
	"fmt"
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"

	"go-wave-survival/internal/config"
	"go-wave-survival/internal/defs"
	"go-wave-survival/internal/utils"
)

// Отладочный просмотрщик арены: препятствия и кольца спауна по классам.
// Камера 3D, Q/E — вращение, колесо мыши — зум.

const (
	screenWidth  = 1280
	screenHeight = 720
)

// classColor возвращает цвет кольца спауна для класса врага.
func classColor(class defs.EnemyClass) rl.Color {
	switch class {
	case defs.ClassTank:
		return rl.NewColor(200, 120, 40, 160)
	case defs.ClassRunner:
		return rl.NewColor(90, 200, 230, 160)
	default:
		return rl.NewColor(200, 60, 60, 160)
	}
}

// drawAnnulus рисует кольцо спауна набором сегментов на плоскости XZ.
func drawAnnulus(minR, maxR float64, c rl.Color) {
	rl.DrawCircle3D(rl.NewVector3(0, 0.05, 0), float32(minR), rl.NewVector3(1, 0, 0), 90, c)
	rl.DrawCircle3D(rl.NewVector3(0, 0.05, 0), float32(maxR), rl.NewVector3(1, 0, 0), 90, c)
}

func main() {
	seed := flag.Int64("seed", 1, "PRNG seed for obstacle layout")
	obstacles := flag.Int("obstacles", 26, "number of obstacles to scatter")
	flag.Parse()

	rl.InitWindow(screenWidth, screenHeight, "Arena Viewer | Q/E - Rotate, Mouse Wheel - Zoom")
	defer rl.CloseWindow()
	rl.SetTargetFPS(60)

	camera := rl.Camera3D{}
	camera.Position = rl.NewVector3(0, 90, 110)
	camera.Target = rl.NewVector3(0, 0, 0)
	camera.Up = rl.NewVector3(0, 1, 0)
	camera.Fovy = 55.0
	camera.Projection = rl.CameraPerspective

	// Та же раскладка препятствий, что получит игра при этом seed.
	rng := utils.NewPRNGService(*seed)
	type obstacle struct {
		pos    utils.Vec2
		radius float64
	}
	layout := make([]obstacle, 0, *obstacles)
	for i := 0; i < *obstacles; i++ {
		layout = append(layout, obstacle{
			pos:    rng.Annulus(utils.Vec2{}, 8, 70),
			radius: rng.InRange(1.2, 2.8),
		})
	}

	angle := 0.0
	dist := 140.0

	for !rl.WindowShouldClose() {
		if rl.IsKeyDown(rl.KeyQ) {
			angle -= 0.02
		}
		if rl.IsKeyDown(rl.KeyE) {
			angle += 0.02
		}
		dist -= float64(rl.GetMouseWheelMove()) * 6
		if dist < 30 {
			dist = 30
		}
		if dist > 400 {
			dist = 400
		}
		camera.Position = rl.NewVector3(
			float32(dist*0.7*math.Sin(angle)),
			float32(dist*0.6),
			float32(dist*0.7*math.Cos(angle)),
		)

		rl.BeginDrawing()
		rl.ClearBackground(rl.NewColor(10, 10, 20, 255))
		rl.BeginMode3D(camera)

		// Пол арены
		rl.DrawCylinder(rl.NewVector3(0, -0.5, 0), config.ArenaRadius, config.ArenaRadius, 0.5, 48, rl.NewColor(30, 34, 40, 255))

		// Препятствия
		for _, o := range layout {
			rl.DrawCylinder(
				rl.NewVector3(float32(o.pos.X), 0, float32(o.pos.Z)),
				float32(o.radius), float32(o.radius), 2.0, 16,
				rl.NewColor(90, 90, 100, 255),
			)
		}

		// Кольца спауна по классам
		for class, def := range defs.EnemyLibrary {
			drawAnnulus(def.SpawnMinRadius, def.SpawnMaxRadius, classColor(class))
		}

		// Игрок в центре
		rl.DrawSphere(rl.NewVector3(0, 1, 0), 1.0, rl.NewColor(70, 170, 255, 255))

		rl.EndMode3D()

		y := int32(10)
		for class, def := range defs.EnemyLibrary {
			label := fmt.Sprintf("%s: spawn %.0f-%.0f", class, def.SpawnMinRadius, def.SpawnMaxRadius)
			rl.DrawText(label, 10, y, 18, classColor(class))
			y += 22
		}
		rl.DrawText(fmt.Sprintf("seed %d, %d obstacles", *seed, len(layout)), 10, y, 18, rl.RayWhite)

		rl.EndDrawing()
	}
}
