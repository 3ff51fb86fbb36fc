package native

// Descriptor is what a native grid adapter needs to bind a gallery.
type Descriptor struct {
	// ColumnCount is the grid span, always >= 1.
	ColumnCount int `json:"columnCount" yaml:"columnCount"`
	// Items in slot order.
	Items []Item `json:"items" yaml:"items"`
}

// Item is one cell of the grid.
type Item struct {
	Src    string `json:"src" yaml:"src"`
	Width  int    `json:"width" yaml:"width"`
	Height int    `json:"height" yaml:"height"`
	// Caption is nil when absent; an empty string is a present, empty caption.
	Caption *string `json:"caption,omitempty" yaml:"caption,omitempty"`
}

// Len returns the number of items.
func (d *Descriptor) Len() int {
	return len(d.Items)
}

// HasCaption reports whether the item carries a caption (possibly empty).
func (i Item) HasCaption() bool {
	return i.Caption != nil
}
