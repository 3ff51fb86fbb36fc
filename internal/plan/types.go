package plan

// RenderPlan is the ordered list of slots derived from a gallery.Spec.
type RenderPlan struct {
	// Slots in gallery order; Slots[i].Index == i.
	Slots []Slot `json:"slots" yaml:"slots"`
}

// Slot is one image position in the plan.
type Slot struct {
	// Index is the position of the slot in the plan.
	Index int `json:"index" yaml:"index"`
	// Src is the image path or URI.
	Src string `json:"src" yaml:"src"`
	// Width in logical pixels.
	Width int `json:"width" yaml:"width"`
	// Height in logical pixels.
	Height int `json:"height" yaml:"height"`
	// Caption is nil when the image has no caption. An empty string is a
	// present, empty caption.
	Caption *string `json:"caption,omitempty" yaml:"caption,omitempty"`
}

// Len returns the number of slots.
func (p RenderPlan) Len() int {
	return len(p.Slots)
}

// HasCaption reports whether the slot carries a caption (possibly empty).
func (s Slot) HasCaption() bool {
	return s.Caption != nil
}

// CaptionText returns the caption and whether it is present.
func (s Slot) CaptionText() (string, bool) {
	if s.Caption == nil {
		return "", false
	}

	return *s.Caption, true
}
