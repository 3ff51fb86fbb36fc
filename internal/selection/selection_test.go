package selection

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gallery-compiler/internal/gallery"
)

func records() []gallery.Record {
	return []gallery.Record{
		{"src": "/a.jpg", "caption": "Cap A", "width": 200, "height": 150},
		{"src": "/b.jpg", "width": 800, "height": 600},
		{"src": "/c.png", "caption": "", "width": 640.0, "height": 480},
		{"src": "/d.jpg", "width": "wide", "height": 1},
	}
}

func srcs(recs []gallery.Record) []string {
	out := make([]string, 0, len(recs))
	for _, r := range recs {
		out = append(out, r["src"].(string))
	}

	return out
}

func TestApply(t *testing.T) {
	tests := []struct {
		expr string
		want []string
	}{
		{expr: "true", want: []string{"/a.jpg", "/b.jpg", "/c.png", "/d.jpg"}},
		{expr: "hasCaption", want: []string{"/a.jpg", "/c.png"}},
		{expr: "!hasCaption", want: []string{"/b.jpg", "/d.jpg"}},
		{expr: "width >= 640", want: []string{"/b.jpg", "/c.png"}},
		{expr: `src endsWith ".png"`, want: []string{"/c.png"}},
		{expr: "index < 2", want: []string{"/a.jpg", "/b.jpg"}},
		{expr: `caption == "Cap A"`, want: []string{"/a.jpg"}},
		{expr: "width == 0", want: []string{"/d.jpg"}},
		{expr: "false", want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			sel, err := Compile(tt.expr)
			require.NoError(t, err)
			assert.Equal(t, tt.expr, sel.String())

			got, err := sel.Apply(records())
			require.NoError(t, err)
			assert.Equal(t, tt.want, srcs(got))
		})
	}
}

func TestCompile_Invalid(t *testing.T) {
	for _, src := range []string{"width +", "width", "unknownVar > 1", `src + 1`} {
		t.Run(src, func(t *testing.T) {
			_, err := Compile(src)
			require.Error(t, err)
			assert.Contains(t, err.Error(), "invalid selection expression")
		})
	}
}

func TestApply_NilSelector(t *testing.T) {
	var sel *Selector

	got, err := sel.Apply(records())
	require.NoError(t, err)
	assert.Len(t, got, 4)
}

func TestApply_DoesNotModifyRecords(t *testing.T) {
	recs := records()

	sel, err := Compile("hasCaption")
	require.NoError(t, err)

	_, err = sel.Apply(recs)
	require.NoError(t, err)
	assert.Equal(t, records(), recs)
}
