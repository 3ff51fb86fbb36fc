package web

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gallery-compiler/internal/plan"
)

func TestWriteHTML(t *testing.T) {
	ins := NewAdapter(DefaultOptions()).Render(scenarioPlan())

	var buf bytes.Buffer
	require.NoError(t, WriteHTML(&buf, ins))

	expected := `<div class="gallery-item" data-index="0">` +
		`<img class="gallery-image" height="150" src="/a.jpg" width="200"/>` +
		`<span class="gallery-caption">Cap A</span></div>` + "\n" +
		`<div class="gallery-item" data-index="1">` +
		`<img class="gallery-image" height="150" src="/b.jpg" width="200"/></div>` + "\n"

	assert.Equal(t, expected, buf.String())
}

func TestWriteHTML_Escapes(t *testing.T) {
	ins := NewAdapter(Options{}).Render(plan.RenderPlan{Slots: []plan.Slot{
		{Index: 0, Src: `/a.jpg?x=1&y="2"`, Width: 1, Height: 1, Caption: strPtr("<b>bold</b>")},
	}})

	var buf bytes.Buffer
	require.NoError(t, WriteHTML(&buf, ins))

	out := buf.String()
	assert.Contains(t, out, `src="/a.jpg?x=1&amp;y=&#34;2&#34;"`)
	assert.Contains(t, out, `<span>&lt;b&gt;bold&lt;/b&gt;</span>`)
}

func TestWriteHTML_EmptyCaption(t *testing.T) {
	ins := NewAdapter(Options{}).Render(plan.RenderPlan{Slots: []plan.Slot{
		{Index: 0, Src: "/a.jpg", Width: 1, Height: 1, Caption: strPtr("")},
	}})

	var buf bytes.Buffer
	require.NoError(t, WriteHTML(&buf, ins))
	assert.Equal(t, `<div data-index="0"><img height="1" src="/a.jpg" width="1"/><span></span></div>`+"\n", buf.String())
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestWriteHTML_WriterError(t *testing.T) {
	ins := NewAdapter(DefaultOptions()).Render(scenarioPlan())

	err := WriteHTML(failingWriter{}, ins)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
}
