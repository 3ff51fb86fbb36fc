package gallery

// Record is a single untyped image record as decoded from a document or
// handed over by a caller.
type Record = map[string]any

// Record keys understood by the validator.
const (
	KeySrc     = "src"
	KeyCaption = "caption"
	KeyWidth   = "width"
	KeyHeight  = "height"
)

// KnownKeys lists every record key the validator reads.
var KnownKeys = []string{KeySrc, KeyCaption, KeyWidth, KeyHeight}

// ImageEntry is one validated image.
type ImageEntry struct {
	// Src is a non-empty path or URI.
	Src string `json:"src" yaml:"src"`
	// Caption is nil when the record had no caption.
	Caption *string `json:"caption,omitempty" yaml:"caption,omitempty"`
	// Width in logical pixels, always >= 1.
	Width int `json:"width" yaml:"width"`
	// Height in logical pixels, always >= 1.
	Height int `json:"height" yaml:"height"`
}

// HasCaption reports whether the entry carries a caption (possibly empty).
func (e ImageEntry) HasCaption() bool {
	return e.Caption != nil
}

// Spec is a validated, ordered gallery. The zero value is an empty Spec,
// which Validate never returns.
type Spec struct {
	entries []ImageEntry
}

// Len returns the number of images.
func (s Spec) Len() int {
	return len(s.entries)
}

// At returns the i-th image. It panics if i is out of range.
func (s Spec) At(i int) ImageEntry {
	return s.entries[i]
}

// Entries returns a copy of the images in order.
func (s Spec) Entries() []ImageEntry {
	out := make([]ImageEntry, len(s.entries))
	copy(out, s.entries)

	return out
}
