package model

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

type valueKind uint8

const (
	kindNone valueKind = iota
	kindBool
	kindInt
	kindEnum
)

// Value is a single option value: a toggle, a quantity or an enumerated choice.
type Value struct {
	kind valueKind
	b    bool
	n    int64
	s    string
}

func Bool(b bool) Value   { return Value{kind: kindBool, b: b} }
func Int(n int64) Value   { return Value{kind: kindInt, n: n} }
func Enum(s string) Value { return Value{kind: kindEnum, s: s} }

// IsSet reports whether the value carries anything at all.
func (v Value) IsSet() bool { return v.kind != kindNone }

// Truthy reports whether the value switches a toggle on. false, 0 and "" are off.
func (v Value) Truthy() bool {
	switch v.kind {
	case kindBool:
		return v.b
	case kindInt:
		return v.n != 0
	case kindEnum:
		return v.s != ""
	}
	return false
}

// Quantity returns the numeric reading of the value. Anything that is not a
// number reads as 0; sign is preserved so callers can clamp.
func (v Value) Quantity() int64 {
	switch v.kind {
	case kindInt:
		return v.n
	case kindEnum:
		return parseQuantity(v.s)
	}
	return 0
}

func (v Value) String() string {
	switch v.kind {
	case kindBool:
		return strconv.FormatBool(v.b)
	case kindInt:
		return strconv.FormatInt(v.n, 10)
	case kindEnum:
		return v.s
	}
	return ""
}

func (v Value) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case kindBool:
		return json.Marshal(v.b)
	case kindInt:
		return json.Marshal(v.n)
	case kindEnum:
		return json.Marshal(v.s)
	}
	return []byte("null"), nil
}

func (v *Value) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case bytes.Equal(data, []byte("null")):
		*v = Value{}
	case bytes.Equal(data, []byte("true")):
		*v = Bool(true)
	case bytes.Equal(data, []byte("false")):
		*v = Bool(false)
	case len(data) > 0 && data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*v = Enum(s)
	default:
		*v = Int(parseQuantity(string(data)))
	}
	return nil
}

// Selection maps option keys to the values a user picked.
type Selection map[string]Value

func (s Selection) Get(key string) (Value, bool) {
	v, ok := s[key]
	if !ok || !v.IsSet() {
		return Value{}, false
	}
	return v, true
}

// Clone returns an independent copy.
func (s Selection) Clone() Selection {
	if s == nil {
		return nil
	}
	out := make(Selection, len(s))
	for k, v := range s {
		out[k] = v
	}
	return out
}

// Quantity is an integer option field that decodes leniently: numbers,
// numeric strings and fractions are accepted; anything else becomes 0.
type Quantity int64

func (q *Quantity) UnmarshalJSON(data []byte) error {
	var v Value
	if err := v.UnmarshalJSON(data); err != nil {
		*q = 0
		return nil
	}
	*q = Quantity(v.Quantity())
	return nil
}

func parseQuantity(s string) int64 {
	s = strings.TrimSpace(s)
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return n
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	if f > math.MaxInt64 || f < math.MinInt64 {
		return 0
	}
	return int64(f)
}
