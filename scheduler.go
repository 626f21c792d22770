package rowan

import "github.com/hajimehoshi/ebiten/v2"

// FrameScheduler is the host contract Batch.Register consumes. Within a
// phase, lower priority numbers run earlier and every task runs once per
// frame; the update phase runs to completion before the draw phase.
type FrameScheduler interface {
	AddUpdateTask(fn func(), priority int)
	AddDrawTask(fn func(target *ebiten.Image), priority int)
	// DefaultCamera returns the camera used by batches configured with
	// UseDefaultCamera. May return nil when the host has none.
	DefaultCamera() *Camera
}

type updateTask struct {
	fn       func()
	priority int
}

type drawTask struct {
	fn       func(*ebiten.Image)
	priority int
}

// Loop is a concrete FrameScheduler implementing ebiten.Game: it steps all
// registered update tasks, then all draw tasks, in ascending priority order
// each frame. Registration order breaks priority ties.
type Loop struct {
	updates []updateTask
	draws   []drawTask
	camera  *Camera

	width, height int
}

// NewLoop creates a loop with a default camera whose viewport covers the
// whole logical screen.
func NewLoop(width, height int) *Loop {
	return &Loop{
		camera: NewCamera(Rect{Width: float64(width), Height: float64(height)}),
		width:  width,
		height: height,
	}
}

// AddUpdateTask registers a callback in the update phase.
func (l *Loop) AddUpdateTask(fn func(), priority int) {
	l.updates = append(l.updates, updateTask{fn: fn, priority: priority})
	// Stable insertion: shift the new task left past higher priorities.
	for i := len(l.updates) - 1; i > 0 && l.updates[i-1].priority > priority; i-- {
		l.updates[i-1], l.updates[i] = l.updates[i], l.updates[i-1]
	}
}

// AddDrawTask registers a callback in the draw phase.
func (l *Loop) AddDrawTask(fn func(target *ebiten.Image), priority int) {
	l.draws = append(l.draws, drawTask{fn: fn, priority: priority})
	for i := len(l.draws) - 1; i > 0 && l.draws[i-1].priority > priority; i-- {
		l.draws[i-1], l.draws[i] = l.draws[i], l.draws[i-1]
	}
}

// DefaultCamera returns the loop-owned camera.
func (l *Loop) DefaultCamera() *Camera {
	return l.camera
}

// Update advances the default camera and runs the update phase.
// Implements ebiten.Game.
func (l *Loop) Update() error {
	dt := float32(1.0 / float64(ebiten.TPS()))
	l.camera.Update(dt)
	for _, t := range l.updates {
		t.fn()
	}
	return nil
}

// Draw runs the draw phase against the screen. Implements ebiten.Game.
func (l *Loop) Draw(screen *ebiten.Image) {
	for _, t := range l.draws {
		t.fn(screen)
	}
}

// Layout reports the fixed logical screen size. Implements ebiten.Game.
func (l *Loop) Layout(outsideWidth, outsideHeight int) (int, int) {
	return l.width, l.height
}
