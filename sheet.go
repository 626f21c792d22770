package rowan

import (
	"encoding/json"
	"fmt"
	"log"
)

// Debug enables diagnostic logging for non-fatal lookup misses (e.g. unknown
// sheet frame names). Off by default; never checked on the per-frame render
// path.
var Debug bool

// Sheet maps frame names to grid cells on a sprite sheet, so game code can
// select atlas frames by name instead of raw cell coordinates.
type Sheet struct {
	// FrameSize is the cell size in texture pixels, applied to sprites via
	// Apply.
	FrameSize Vec2

	frames map[string]Vec2
}

// --- JSON structure types ---

type jsonSheetSize struct {
	W float64 `json:"w"`
	H float64 `json:"h"`
}

type jsonSheetCell struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type jsonSheet struct {
	FrameSize jsonSheetSize            `json:"frameSize"`
	Frames    map[string]jsonSheetCell `json:"frames"`
}

// LoadSheet parses sheet JSON of the form
//
//	{"frameSize": {"w": 16, "h": 16}, "frames": {"idle": {"x": 0, "y": 0}}}
//
// Cell coordinates are grid indices, not pixels.
func LoadSheet(jsonData []byte) (*Sheet, error) {
	var raw jsonSheet
	if err := json.Unmarshal(jsonData, &raw); err != nil {
		return nil, fmt.Errorf("rowan: failed to parse sheet JSON: %w", err)
	}
	if raw.FrameSize.W == 0 || raw.FrameSize.H == 0 {
		return nil, fmt.Errorf("rowan: sheet JSON has zero frameSize")
	}

	sheet := &Sheet{
		FrameSize: Vec2{raw.FrameSize.W, raw.FrameSize.H},
		frames:    make(map[string]Vec2, len(raw.Frames)),
	}
	for name, cell := range raw.Frames {
		sheet.frames[name] = Vec2{cell.X, cell.Y}
	}
	return sheet, nil
}

// Frame returns the cell for the given name and whether it exists.
func (sh *Sheet) Frame(name string) (Vec2, bool) {
	cell, ok := sh.frames[name]
	return cell, ok
}

// Apply sets the sprite's FrameSize and Frame for the named cell. Unknown
// names leave the sprite's frame selection unchanged and log under Debug.
func (sh *Sheet) Apply(s *Sprite, name string) {
	cell, ok := sh.frames[name]
	if !ok {
		if Debug {
			log.Printf("rowan: sheet frame %q not found, keeping current frame", name)
		}
		return
	}
	s.FrameSize = sh.FrameSize
	s.Frame = cell
}
