package rowan

import (
	"fmt"
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// Watcher is the debug-overlay capability consumed by Batch.AddDebugWatch:
// it registers a named formatter that is polled while the overlay is drawn.
type Watcher interface {
	AddWatch(name string, fn func() string)
}

type watch struct {
	name string
	fn   func() string
}

// Overlay is a debug watch display drawn on top of the frame with
// ebitenutil.DebugPrint. Watch formatters are re-evaluated every ~0.5
// seconds to keep the readout legible.
type Overlay struct {
	// ShowFPS prepends an FPS/TPS line to the watch list.
	ShowFPS bool

	watches []watch
	cached  string
	lastGen time.Time
}

// NewOverlay creates an empty overlay with the FPS line enabled.
func NewOverlay() *Overlay {
	return &Overlay{ShowFPS: true}
}

// AddWatch registers a named formatter. Watches render in registration
// order, one line each.
func (o *Overlay) AddWatch(name string, fn func() string) {
	o.watches = append(o.watches, watch{name: name, fn: fn})
}

// Attach registers the overlay's draw routine with the scheduler. Pass a
// priority above every batch so the overlay renders last.
func (o *Overlay) Attach(sched FrameScheduler, priority int) {
	sched.AddDrawTask(o.Draw, priority)
}

// Draw renders the watch lines onto target.
func (o *Overlay) Draw(target *ebiten.Image) {
	now := time.Now()
	if o.cached == "" || now.Sub(o.lastGen) >= 500*time.Millisecond {
		o.cached = o.format()
		o.lastGen = now
	}
	ebitenutil.DebugPrint(target, o.cached)
}

func (o *Overlay) format() string {
	var sb strings.Builder
	if o.ShowFPS {
		fmt.Fprintf(&sb, "FPS: %.1f TPS: %.1f\n", ebiten.ActualFPS(), ebiten.ActualTPS())
	}
	for _, w := range o.watches {
		fmt.Fprintf(&sb, "%s: %s\n", w.name, w.fn())
	}
	return sb.String()
}
