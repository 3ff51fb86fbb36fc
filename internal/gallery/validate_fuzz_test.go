package gallery

import (
	"testing"
)

// FuzzValidate checks that Validate never panics and that success always
// yields one entry per record.
func FuzzValidate(f *testing.F) {
	f.Add("/a.jpg", "Cap A", true, int64(200), int64(150), 1.5)
	f.Add("", "", false, int64(0), int64(-3), 0.0)
	f.Add("x", "", true, int64(1), int64(1), 2.0)

	f.Fuzz(func(t *testing.T, src, caption string, withCaption bool, w, h int64, fw float64) {
		rec := Record{"src": src, "width": w, "height": h}
		if withCaption {
			rec["caption"] = caption
		}

		raw := []Record{rec, {"src": src, "width": fw, "height": h}}

		spec, err := Validate(raw)
		if err != nil {
			if spec.Len() != 0 {
				t.Fatalf("partial spec with error: %v", err)
			}

			return
		}

		if spec.Len() != len(raw) {
			t.Fatalf("got %d entries for %d records", spec.Len(), len(raw))
		}

		if spec.At(0).HasCaption() != withCaption {
			t.Fatalf("caption presence changed: want %v", withCaption)
		}
	})
}
