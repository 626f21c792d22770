package rowan

import "testing"

const sheetJSON = `{
	"frameSize": {"w": 16, "h": 24},
	"frames": {
		"idle":  {"x": 0, "y": 0},
		"walk0": {"x": 1, "y": 0},
		"walk1": {"x": 2, "y": 1}
	}
}`

func TestLoadSheet(t *testing.T) {
	sh, err := LoadSheet([]byte(sheetJSON))
	if err != nil {
		t.Fatalf("LoadSheet returned %v", err)
	}

	if sh.FrameSize != (Vec2{16, 24}) {
		t.Errorf("FrameSize = %v, want (16, 24)", sh.FrameSize)
	}
	cell, ok := sh.Frame("walk1")
	if !ok || cell != (Vec2{2, 1}) {
		t.Errorf("Frame(walk1) = %v, %v, want (2, 1), true", cell, ok)
	}
	if _, ok := sh.Frame("missing"); ok {
		t.Error("Frame(missing) should report not found")
	}
}

func TestLoadSheetMalformed(t *testing.T) {
	if _, err := LoadSheet([]byte(`{"frames": `)); err == nil {
		t.Error("malformed JSON should return an error")
	}
}

func TestLoadSheetZeroFrameSize(t *testing.T) {
	if _, err := LoadSheet([]byte(`{"frames": {}}`)); err == nil {
		t.Error("missing frameSize should return an error")
	}
}

func TestSheetApply(t *testing.T) {
	sh, err := LoadSheet([]byte(sheetJSON))
	if err != nil {
		t.Fatalf("LoadSheet returned %v", err)
	}
	s := newSprite(nil)

	sh.Apply(s, "walk0")

	if s.FrameSize != (Vec2{16, 24}) {
		t.Errorf("FrameSize = %v, want sheet frame size", s.FrameSize)
	}
	if s.Frame != (Vec2{1, 0}) {
		t.Errorf("Frame = %v, want (1, 0)", s.Frame)
	}
}

func TestSheetApplyUnknownKeepsFrame(t *testing.T) {
	sh, err := LoadSheet([]byte(sheetJSON))
	if err != nil {
		t.Fatalf("LoadSheet returned %v", err)
	}
	s := newSprite(nil)
	sh.Apply(s, "idle")

	sh.Apply(s, "nope")

	if s.Frame != (Vec2{0, 0}) || s.FrameSize != (Vec2{16, 24}) {
		t.Error("unknown frame name must leave the current selection unchanged")
	}
}
