// stress spawns 10,000 sprites that drift, spin, and bounce around the
// screen simultaneously. A stress test for the batch update/cull/sort/draw
// pipeline. Pass -profile to write a CPU profile to the working directory.
package main

import (
	"flag"
	"image"
	"image/color"
	"log"
	"math/rand/v2"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/pkg/profile"

	"github.com/emberhollow/rowan"
)

const (
	screenW = 1280
	screenH = 720
	count   = 10_000
)

type actor struct {
	sprite   *rowan.Sprite
	dx, dy   float64
	rotSpeed float64
}

func makeTexture() *ebiten.Image {
	// A 32x32 texture holding four 16x16 frames in distinct colors.
	tex := ebiten.NewImage(32, 32)
	colors := []color.RGBA{
		{R: 230, G: 90, B: 70, A: 255},
		{R: 110, G: 200, B: 90, A: 255},
		{R: 80, G: 130, B: 230, A: 255},
		{R: 235, G: 200, B: 80, A: 255},
	}
	for i, c := range colors {
		x := (i % 2) * 16
		y := (i / 2) * 16
		tex.SubImage(image.Rect(x, y, x+16, y+16)).(*ebiten.Image).Fill(c)
	}
	return tex
}

func main() {
	prof := flag.Bool("profile", false, "write cpu.pprof to the working directory")
	flag.Parse()
	if *prof {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	}

	tex := makeTexture()

	loop := rowan.NewLoop(screenW, screenH)
	batch := rowan.New(rowan.Options{UseDefaultCamera: true})
	batch.Register(loop, 100)

	overlay := rowan.NewOverlay()
	batch.AddDebugWatch("batch", overlay)
	overlay.Attach(loop, 10_000)

	actors := make([]actor, count)
	for i := range actors {
		s := batch.Add(tex)
		s.Size = rowan.Vec2{X: 16, Y: 16}
		s.FrameSize = rowan.Vec2{X: 16, Y: 16}
		s.Frame = rowan.Vec2{X: float64(i % 2), Y: float64(i / 2 % 2)}
		s.Position = rowan.Vec2{X: rand.Float64() * screenW, Y: rand.Float64() * screenH}
		s.Z = float64(i % 4)
		actors[i] = actor{
			sprite:   s,
			dx:       (rand.Float64() - 0.5) * 4,
			dy:       (rand.Float64() - 0.5) * 4,
			rotSpeed: (rand.Float64() - 0.5) * 0.2,
		}
	}

	// Movement runs before the batch update task (priority 0 < 1100).
	loop.AddUpdateTask(func() {
		for i := range actors {
			a := &actors[i]
			s := a.sprite
			s.Position.X += a.dx
			s.Position.Y += a.dy
			s.Rotation += a.rotSpeed
			if s.Position.X < 0 || s.Position.X > screenW {
				a.dx = -a.dx
			}
			if s.Position.Y < 0 || s.Position.Y > screenH {
				a.dy = -a.dy
			}
		}
	}, 0)

	ebiten.SetWindowSize(screenW, screenH)
	ebiten.SetWindowTitle("rowan stress: 10k sprites")
	if err := ebiten.RunGame(loop); err != nil {
		log.Fatal(err)
	}
}
