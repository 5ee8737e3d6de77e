package schema

import "strconv"

type valueKind uint8

const (
	valueMissing valueKind = iota
	valueString
	valueBool
	valueFloat
)

// Value is a single feature value: a domain string for ID/Nominal features,
// a boolean for Binary/Class features, a float for Continuous features, or
// missing (the '?' token in data files).
//
// The zero Value is missing. Values are immutable; construct them with
// Missing, StringValue, BoolValue or FloatValue.
type Value struct {
	str  string
	num  float64
	kind valueKind
	b    bool
}

// Missing returns the missing value.
func Missing() Value {
	return Value{}
}

// StringValue returns a Value holding a domain string.
func StringValue(s string) Value {
	return Value{kind: valueString, str: s}
}

// BoolValue returns a Value holding a boolean.
func BoolValue(b bool) Value {
	return Value{kind: valueBool, b: b}
}

// FloatValue returns a Value holding a floating-point number.
func FloatValue(f float64) Value {
	return Value{kind: valueFloat, num: f}
}

// IsMissing reports whether the value is missing.
func (v Value) IsMissing() bool {
	return v.kind == valueMissing
}

// AsString returns the held domain string, and whether the value holds one.
func (v Value) AsString() (string, bool) {
	return v.str, v.kind == valueString
}

// AsBool returns the held boolean, and whether the value holds one.
func (v Value) AsBool() (bool, bool) {
	return v.b, v.kind == valueBool
}

// AsFloat returns the held float, and whether the value holds one.
func (v Value) AsFloat() (float64, bool) {
	return v.num, v.kind == valueFloat
}

// Equal reports whether two values hold the same content.
func (v Value) Equal(other Value) bool {
	return v == other
}

// String renders the value the way it appears in a data file:
// '?' for missing, '0'/'1' for booleans, the token text otherwise.
func (v Value) String() string {
	switch v.kind {
	case valueString:
		return v.str
	case valueBool:
		if v.b {
			return "1"
		}

		return "0"
	case valueFloat:
		return strconv.FormatFloat(v.num, 'g', -1, 64)
	default:
		return "?"
	}
}
