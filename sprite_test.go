package rowan

import (
	"math"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

func assertFloatNear(t *testing.T, label string, got, want float64) {
	t.Helper()
	if diff := got - want; diff > 1e-9 || diff < -1e-9 {
		t.Errorf("%s = %v, want %v", label, got, want)
	}
}

func TestFrameRect(t *testing.T) {
	s := newSprite(nil)
	s.FrameSize = Vec2{16, 24}
	s.Frame = Vec2{2, 3}

	fr := s.frameRect()
	assertFloatNear(t, "fr.X", fr.X, 32)
	assertFloatNear(t, "fr.Y", fr.Y, 72)
	assertFloatNear(t, "fr.Width", fr.Width, 16)
	assertFloatNear(t, "fr.Height", fr.Height, 24)
}

func TestFrameRectDefaults(t *testing.T) {
	s := newSprite(nil)

	fr := s.frameRect()
	if fr != (Rect{X: 0, Y: 0, Width: 1, Height: 1}) {
		t.Errorf("default frame rect = %v, want 1x1 at origin", fr)
	}
}

func TestRenderScale(t *testing.T) {
	s := newSprite(nil)
	s.Size = Vec2{64, 32}
	s.FrameSize = Vec2{16, 16}

	sx, sy := s.renderScale()
	assertFloatNear(t, "sx", sx, 4)
	assertFloatNear(t, "sy", sy, 2)
}

func TestRenderScaleFlips(t *testing.T) {
	s := newSprite(nil)
	s.Size = Vec2{16, 16}
	s.FrameSize = Vec2{16, 16}
	s.FlipX = true

	sx, sy := s.renderScale()
	assertFloatNear(t, "sx flipped", sx, -1)
	assertFloatNear(t, "sy", sy, 1)

	s.FlipY = true
	_, sy = s.renderScale()
	assertFloatNear(t, "sy flipped", sy, -1)
}

func TestRenderScaleZeroFrameSize(t *testing.T) {
	// No validation: a zero FrameSize component yields an infinite scale
	// that propagates to the backend.
	s := newSprite(nil)
	s.Size = Vec2{16, 16}
	s.FrameSize = Vec2{0, 16}

	sx, _ := s.renderScale()
	if !math.IsInf(sx, 1) {
		t.Errorf("sx = %v, want +Inf for zero FrameSize.X", sx)
	}
}

func TestResolveScreenSpace(t *testing.T) {
	s := newSprite(nil)
	s.Position = Vec2{10, 10}
	s.Offset = Vec2{1, 2}
	s.Rotation = 0.5
	s.ScreenPosition = Vec2{100, 200}
	s.ScreenRotation = 1.5

	pos, rot := s.resolve(true)
	if pos != (Vec2{100, 200}) || rot != 1.5 {
		t.Errorf("screen-space resolve = (%v, %v), want ((100, 200), 1.5)", pos, rot)
	}

	pos, rot = s.resolve(false)
	if pos != (Vec2{11, 12}) || rot != 0.5 {
		t.Errorf("world-space resolve = (%v, %v), want ((11, 12), 0.5)", pos, rot)
	}
}

func TestSpriteDrawIntegration(t *testing.T) {
	tex := ebiten.NewImage(32, 32)
	s := newSprite(tex)
	s.Size = Vec2{32, 32}
	s.FrameSize = Vec2{16, 16}
	s.Frame = Vec2{1, 1}
	s.ScreenPosition = Vec2{100, 100}
	s.ScreenRotation = math.Pi / 4
	s.FlipY = true

	var op ebiten.DrawImageOptions
	screen := ebiten.NewImage(640, 480)
	s.draw(screen, &op, true)
	s.draw(screen, &op, false)
}
