package ui

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// OverlayID identifies an optional panel drawn over the table.
type OverlayID string

// Standard overlay IDs.
const (
	OverlayStats  OverlayID = "stats"
	OverlayLegend OverlayID = "legend"
	OverlayPerf   OverlayID = "perf"
	OverlayHelp   OverlayID = "help"
)

// OverlayDescriptor defines an overlay that can be toggled.
type OverlayDescriptor struct {
	ID        OverlayID
	Name      string
	Key       int32  // 0 = no key
	KeyLabel  string // e.g. "S"
	Exclusive []OverlayID
}

// OverlayRegistry tracks which overlays are shown.
type OverlayRegistry struct {
	byID    map[OverlayID]OverlayDescriptor
	enabled map[OverlayID]bool
	order   []OverlayID
}

// NewOverlayRegistry creates a registry with the default overlays. Stats is
// shown initially.
func NewOverlayRegistry() *OverlayRegistry {
	reg := &OverlayRegistry{
		byID:    make(map[OverlayID]OverlayDescriptor),
		enabled: make(map[OverlayID]bool),
	}
	reg.Register(OverlayDescriptor{ID: OverlayStats, Name: "Day stats", Key: rl.KeyS, KeyLabel: "S"})
	reg.Register(OverlayDescriptor{
		ID: OverlayLegend, Name: "Diet legend", Key: rl.KeyL, KeyLabel: "L",
		Exclusive: []OverlayID{OverlayHelp},
	})
	reg.Register(OverlayDescriptor{ID: OverlayPerf, Name: "Performance", Key: rl.KeyP, KeyLabel: "P"})
	reg.Register(OverlayDescriptor{
		ID: OverlayHelp, Name: "Keys", Key: rl.KeyH, KeyLabel: "H",
		Exclusive: []OverlayID{OverlayLegend},
	})
	reg.SetEnabled(OverlayStats, true)
	return reg
}

// Register adds an overlay. Re-registering an ID replaces its descriptor.
func (r *OverlayRegistry) Register(desc OverlayDescriptor) {
	if _, ok := r.byID[desc.ID]; !ok {
		r.order = append(r.order, desc.ID)
	}
	r.byID[desc.ID] = desc
}

// Toggle flips an overlay and returns its new state.
func (r *OverlayRegistry) Toggle(id OverlayID) bool {
	r.SetEnabled(id, !r.enabled[id])
	return r.enabled[id]
}

// SetEnabled shows or hides an overlay, hiding its exclusive partners when
// it is shown.
func (r *OverlayRegistry) SetEnabled(id OverlayID, enabled bool) {
	desc, ok := r.byID[id]
	if !ok {
		return
	}
	if enabled {
		for _, other := range desc.Exclusive {
			r.enabled[other] = false
		}
	}
	r.enabled[id] = enabled
}

// IsEnabled reports whether an overlay is shown.
func (r *OverlayRegistry) IsEnabled(id OverlayID) bool {
	return r.enabled[id]
}

// All returns every overlay in registration order.
func (r *OverlayRegistry) All() []OverlayDescriptor {
	out := make([]OverlayDescriptor, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.byID[id])
	}
	return out
}

// HandleKeyPress toggles the overlay bound to key. It reports whether one
// was found.
func (r *OverlayRegistry) HandleKeyPress(key int32) bool {
	for _, id := range r.order {
		if r.byID[id].Key == key && key != 0 {
			r.Toggle(id)
			return true
		}
	}
	return false
}
