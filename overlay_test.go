package rowan

import (
	"strings"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

func TestBatchDebugWatchFormat(t *testing.T) {
	b := New(Options{})
	tex := ebiten.NewImage(8, 8)
	for i := 0; i < 3; i++ {
		s := b.Add(tex)
		if i == 2 {
			s.Visible = false
		}
	}
	b.Update(nil)

	o := NewOverlay()
	b.AddDebugWatch("sprites", o)

	if len(o.watches) != 1 || o.watches[0].name != "sprites" {
		t.Fatalf("watch registration failed: %+v", o.watches)
	}
	if got := o.watches[0].fn(); got != "3s, 2r" {
		t.Errorf("watch output = %q, want %q", got, "3s, 2r")
	}
}

func TestOverlayFormatLines(t *testing.T) {
	o := NewOverlay()
	o.ShowFPS = false
	o.AddWatch("alpha", func() string { return "1" })
	o.AddWatch("beta", func() string { return "2" })

	got := o.format()
	want := "alpha: 1\nbeta: 2\n"
	if got != want {
		t.Errorf("format = %q, want %q", got, want)
	}
}

func TestOverlayFPSLine(t *testing.T) {
	o := NewOverlay()
	if !strings.HasPrefix(o.format(), "FPS: ") {
		t.Errorf("format with ShowFPS should start with the FPS line, got %q", o.format())
	}
}

func TestOverlayDrawIntegration(t *testing.T) {
	o := NewOverlay()
	o.AddWatch("w", func() string { return "v" })

	screen := ebiten.NewImage(640, 480)
	o.Draw(screen)
	o.Draw(screen) // second draw exercises the cache path
}

func TestOverlayAttach(t *testing.T) {
	l := NewLoop(640, 480)
	o := NewOverlay()
	o.Attach(l, 9000)

	if len(l.draws) != 1 || l.draws[0].priority != 9000 {
		t.Errorf("overlay should register one draw task at priority 9000, got %d tasks", len(l.draws))
	}
}
