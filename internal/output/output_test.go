package output

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"gallery-compiler/internal/native"
	"gallery-compiler/internal/plan"
	"gallery-compiler/internal/web"
)

func strPtr(s string) *string { return &s }

func testPlan() plan.RenderPlan {
	return plan.RenderPlan{Slots: []plan.Slot{
		{Index: 0, Src: "/a.jpg", Width: 200, Height: 150, Caption: strPtr("Cap A")},
		{Index: 1, Src: "/b.jpg", Width: 200, Height: 150},
		{Index: 2, Src: "/c.jpg", Width: 200, Height: 150, Caption: strPtr("")},
	}}
}

func TestFactory(t *testing.T) {
	f := NewFormatterFactory()

	for _, name := range f.SupportedFormats() {
		t.Run(name, func(t *testing.T) {
			formatter, err := f.Create(name, &bytes.Buffer{}, Options{})
			require.NoError(t, err)
			assert.NotNil(t, formatter)
		})
	}

	_, err := f.Create("xml", &bytes.Buffer{}, Options{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown format: xml")
}

func TestJSONFormatter_NativeCaptionAbsence(t *testing.T) {
	d := native.NewAdapter(native.DefaultOptions()).Render(testPlan())

	var buf bytes.Buffer
	require.NoError(t, NewJSONFormatter(&buf, true).Format(d))

	var decoded struct {
		ColumnCount int              `json:"columnCount"`
		Items       []map[string]any `json:"items"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))

	assert.Equal(t, 2, decoded.ColumnCount)
	require.Len(t, decoded.Items, 3)
	assert.Equal(t, "Cap A", decoded.Items[0]["caption"])

	_, present := decoded.Items[1]["caption"]
	assert.False(t, present, "absent caption is omitted")

	caption, present := decoded.Items[2]["caption"]
	assert.True(t, present, "empty caption is kept")
	assert.Equal(t, "", caption)
}

func TestJSONFormatter_Compact(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewJSONFormatter(&buf, false).Format(map[string]string{"src": "/a.jpg?x=1&y=2"}))
	assert.Equal(t, `{"src":"/a.jpg?x=1&y=2"}`+"\n", buf.String())
}

func TestYAMLFormatter_Web(t *testing.T) {
	ins := web.NewAdapter(web.DefaultOptions()).Render(testPlan())

	var buf bytes.Buffer
	require.NoError(t, NewYAMLFormatter(&buf).Format(ins))

	var decoded []map[string]any
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
	require.Len(t, decoded, 3)

	assert.Equal(t, "div", decoded[0]["tag"])
	children, ok := decoded[1]["children"].([]any)
	require.True(t, ok)
	assert.Len(t, children, 1)
}

func TestYAMLFormatter_Plan(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewYAMLFormatter(&buf).Format(testPlan()))

	assert.Contains(t, buf.String(), "slots:")
	assert.Contains(t, buf.String(), "caption: Cap A")
	assert.Contains(t, buf.String(), `caption: ""`)
}

func TestHTMLFormatter(t *testing.T) {
	ins := web.NewAdapter(web.DefaultOptions()).Render(testPlan())

	var buf bytes.Buffer
	require.NoError(t, NewHTMLFormatter(&buf).Format(ins))
	assert.Contains(t, buf.String(), `<span class="gallery-caption">Cap A</span>`)

	err := NewHTMLFormatter(&buf).Format(&native.Descriptor{})
	assert.ErrorIs(t, err, ErrHTMLNeedsWeb)
}
