package models

import (
	"bytes"
	"encoding/json"
	"math"
	"strings"

	"github.com/spf13/cast"
)

// Num is a numeric feed field. Anything that is not a finite number (absent,
// null, garbage strings, NaN/Inf) decodes to zero instead of failing the payload.
type Num float64

func (n *Num) UnmarshalJSON(b []byte) error {
	*n = 0
	var raw any
	if err := json.Unmarshal(b, &raw); err != nil {
		return nil
	}
	switch v := raw.(type) {
	case float64:
		*n = Num(Finite(v))
	case string:
		if f, err := cast.ToFloat64E(strings.TrimSpace(v)); err == nil {
			*n = Num(Finite(f))
		}
	}
	return nil
}

func (n Num) Float() float64 { return Finite(float64(n)) }

// Finite maps NaN and ±Inf to zero.
func Finite(f float64) float64 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}

// Text is a categorical feed field; numbers are stringified, null/objects become "".
type Text string

func (t *Text) UnmarshalJSON(b []byte) error {
	*t = ""
	var raw any
	if err := json.Unmarshal(b, &raw); err != nil {
		return nil
	}
	switch raw.(type) {
	case string, float64, bool:
		*t = Text(cast.ToString(raw))
	}
	return nil
}

func (t Text) String() string { return string(t) }

// List decodes a JSON array leniently: a non-array value yields an empty list,
// and null or undecodable elements are skipped.
type List[T any] []T

func (l *List[T]) UnmarshalJSON(b []byte) error {
	*l = nil
	var elems []json.RawMessage
	if err := json.Unmarshal(b, &elems); err != nil {
		return nil
	}
	out := make(List[T], 0, len(elems))
	for _, e := range elems {
		if bytes.Equal(bytes.TrimSpace(e), []byte("null")) {
			continue
		}
		var v T
		if err := json.Unmarshal(e, &v); err != nil {
			continue
		}
		out = append(out, v)
	}
	*l = out
	return nil
}
