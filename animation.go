package rowan

// FrameAnimation steps a sprite's Frame through an ordered sequence of atlas
// cells at a fixed rate. Call Update(dt) each frame; there is no global
// animation manager.
type FrameAnimation struct {
	// Frames is the ordered cell sequence, in Frame coordinates.
	Frames []Vec2
	// FPS is the playback rate in frames per second.
	FPS float64
	// Loop wraps playback back to the first cell; otherwise the animation
	// holds the last cell and Done is set.
	Loop bool
	// Done reports a finished non-looping animation.
	Done bool

	target *Sprite
	cursor int
	acc    float64
}

// NewFrameAnimation creates an animation driving the given sprite. The
// sprite's Frame is set to the first cell immediately.
func NewFrameAnimation(target *Sprite, frames []Vec2, fps float64, loop bool) *FrameAnimation {
	a := &FrameAnimation{
		Frames: frames,
		FPS:    fps,
		Loop:   loop,
		target: target,
	}
	if len(frames) > 0 {
		target.Frame = frames[0]
	}
	return a
}

// Update advances playback by dt seconds and writes the current cell to the
// sprite's Frame.
func (a *FrameAnimation) Update(dt float64) {
	if a.Done || len(a.Frames) == 0 || a.FPS <= 0 {
		return
	}

	a.acc += dt
	step := 1.0 / a.FPS
	for a.acc >= step {
		a.acc -= step
		a.cursor++
		if a.cursor >= len(a.Frames) {
			if a.Loop {
				a.cursor = 0
			} else {
				a.cursor = len(a.Frames) - 1
				a.Done = true
				break
			}
		}
	}

	a.target.Frame = a.Frames[a.cursor]
}

// Reset rewinds playback to the first cell and clears Done.
func (a *FrameAnimation) Reset() {
	a.cursor = 0
	a.acc = 0
	a.Done = false
	if len(a.Frames) > 0 {
		a.target.Frame = a.Frames[0]
	}
}
