// Package selection filters raw gallery records with an expression before
// they are compiled, e.g. `hasCaption && width >= 400`.
//
// Selection runs on the caller side of the compiler: it decides which
// records make up the gallery, it never changes a record.
package selection

import (
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"gallery-compiler/internal/gallery"
)

// Env is the variable set available to selection expressions.
type Env struct {
	Index      int    `expr:"index"`
	Src        string `expr:"src"`
	Caption    string `expr:"caption"`
	HasCaption bool   `expr:"hasCaption"`
	Width      int    `expr:"width"`
	Height     int    `expr:"height"`
}

// Selector is a compiled selection expression. It is safe for concurrent use.
type Selector struct {
	source  string
	program *vm.Program
}

// Compile compiles a boolean selection expression once.
func Compile(source string) (*Selector, error) {
	program, err := expr.Compile(source, expr.Env(Env{}), expr.AsBool())
	if err != nil {
		return nil, fmt.Errorf("invalid selection expression %q: %w", source, err)
	}

	return &Selector{source: source, program: program}, nil
}

// String returns the expression source.
func (s *Selector) String() string {
	return s.source
}

// Match evaluates the expression for one record at index.
func (s *Selector) Match(index int, rec gallery.Record) (bool, error) {
	out, err := expr.Run(s.program, envFor(index, rec))
	if err != nil {
		return false, fmt.Errorf("evaluating selection for image %d: %w", index, err)
	}

	ok, _ := out.(bool)

	return ok, nil
}

// Apply returns the records the expression selects, in their original
// order. A nil Selector selects everything.
func (s *Selector) Apply(records []gallery.Record) ([]gallery.Record, error) {
	if s == nil {
		return records, nil
	}

	out := make([]gallery.Record, 0, len(records))

	for i, rec := range records {
		ok, err := s.Match(i, rec)
		if err != nil {
			return nil, err
		}

		if ok {
			out = append(out, rec)
		}
	}

	return out, nil
}

// envFor maps a raw record onto Env. Values of the wrong type read as zero
// values; validation reports them later.
func envFor(index int, rec gallery.Record) Env {
	env := Env{Index: index}

	env.Src, _ = rec[gallery.KeySrc].(string)
	env.Caption, env.HasCaption = rec[gallery.KeyCaption].(string)
	env.Width, _ = gallery.ParseDimension(rec[gallery.KeyWidth])
	env.Height, _ = gallery.ParseDimension(rec[gallery.KeyHeight])

	return env
}
