package schema

// Kind identifies the type of a feature.
type Kind uint8

const (
	KindClass      Kind = 0x1 // KindClass is the designated target/label feature, always last in data rows.
	KindID         Kind = 0x2 // KindID is a record-identifying feature with a fixed value domain.
	KindBinary     Kind = 0x3 // KindBinary is a boolean feature declared as the value list {0, 1}.
	KindNominal    Kind = 0x4 // KindNominal is a categorical feature with a fixed value domain.
	KindContinuous Kind = 0x5 // KindContinuous is a numeric feature.
)

func (k Kind) String() string {
	switch k {
	case KindClass:
		return "CLASS"
	case KindID:
		return "ID"
	case KindBinary:
		return "BINARY"
	case KindNominal:
		return "NOMINAL"
	case KindContinuous:
		return "CONTINUOUS"
	default:
		return "Unknown"
	}
}

// HasDomain reports whether features of this kind carry a value domain.
// Only ID and Nominal features enumerate their legal values.
func (k Kind) HasDomain() bool {
	return k == KindID || k == KindNominal
}
