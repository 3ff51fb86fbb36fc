package gallery

import (
	"encoding/json"
	"math"
	"strings"

	"gallery-compiler/internal/common"
)

// Validate turns untyped records into a Spec. Records are checked in order
// and the first problem is returned as a *ValidationError; no partial Spec
// is ever produced. Validate does not modify raw.
func Validate(raw []Record) (Spec, error) {
	if common.IsEmpty(raw) {
		return Spec{}, newValidationError(KindEmptySequence, NoIndex, "", nil)
	}

	entries := make([]ImageEntry, 0, len(raw))

	for i, rec := range raw {
		entry, verr := validateRecord(i, rec)
		if verr != nil {
			return Spec{}, verr
		}

		entries = append(entries, entry)
	}

	return Spec{entries: entries}, nil
}

// validateRecord checks a single record: src, then width, height, caption.
func validateRecord(index int, rec Record) (ImageEntry, *ValidationError) {
	src, ok := rec[KeySrc].(string)
	if !ok || strings.TrimSpace(src) == "" {
		return ImageEntry{}, newValidationError(KindMissingSource, index, KeySrc, rec[KeySrc])
	}

	width, ok := ParseDimension(rec[KeyWidth])
	if !ok {
		return ImageEntry{}, newValidationError(KindInvalidDimension, index, KeyWidth, rec[KeyWidth])
	}

	height, ok := ParseDimension(rec[KeyHeight])
	if !ok {
		return ImageEntry{}, newValidationError(KindInvalidDimension, index, KeyHeight, rec[KeyHeight])
	}

	caption, ok := toCaption(rec[KeyCaption])
	if !ok {
		return ImageEntry{}, newValidationError(KindInvalidCaption, index, KeyCaption, rec[KeyCaption])
	}

	return ImageEntry{
		Src:     src,
		Caption: caption,
		Width:   width,
		Height:  height,
	}, nil
}

// MaxDimension is the largest width or height accepted, whatever numeric
// type carried it.
const MaxDimension = math.MaxInt32

// ParseDimension accepts any Go integer, an integral float (JSON decoders
// produce float64) or a json.Number, as long as the value is in
// [1, MaxDimension]. Strings are rejected even when numeric: "200px" style
// values carry a platform unit.
func ParseDimension(v any) (int, bool) {
	var n int64

	switch x := v.(type) {
	case int:
		n = int64(x)
	case int8:
		n = int64(x)
	case int16:
		n = int64(x)
	case int32:
		n = int64(x)
	case int64:
		n = x
	case uint:
		if uint64(x) > MaxDimension {
			return 0, false
		}

		n = int64(x)
	case uint8:
		n = int64(x)
	case uint16:
		n = int64(x)
	case uint32:
		n = int64(x)
	case uint64:
		if x > MaxDimension {
			return 0, false
		}

		n = int64(x)
	case float32:
		return floatDimension(float64(x))
	case float64:
		return floatDimension(x)
	case json.Number:
		if i, err := x.Int64(); err == nil {
			n = i
			break
		}

		f, err := x.Float64()
		if err != nil {
			return 0, false
		}

		return floatDimension(f)
	default:
		return 0, false
	}

	if n < 1 || n > MaxDimension {
		return 0, false
	}

	return int(n), true
}

func floatDimension(f float64) (int, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return 0, false
	}

	if f < 1 || f > MaxDimension {
		return 0, false
	}

	return int(f), true
}

// toCaption maps nil to an absent caption and a string to a present one.
func toCaption(v any) (*string, bool) {
	switch x := v.(type) {
	case nil:
		return nil, true
	case string:
		s := x
		return &s, true
	default:
		return nil, false
	}
}
