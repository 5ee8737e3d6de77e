package dataset

// Float is one cell of a float-exported row. Valid is false when the
// source value was missing; Value is meaningless in that case.
type Float struct {
	Value float64
	Valid bool
}

// RowTransform is applied to each float-exported row independently, with no
// state shared across rows. Typical use is per-row standardization.
type RowTransform func(row []Float) []Float
