package schema

import (
	"fmt"
	"strings"

	"github.com/arloliu/c45/errs"
	"github.com/arloliu/c45/internal/hash"
)

// Feature is an immutable named column of a dataset.
//
// ID and Nominal features carry an ordered domain of legal string values;
// Class, Binary and Continuous features never do. The constructors enforce
// this, so a Feature obtained from NewFeature or NewFeatureWithDomain
// cannot represent an illegal kind/domain combination.
type Feature struct {
	name   string
	domain []string
	kind   Kind
}

// Class is the canonical class feature. The '.names' grammar declares the
// class anonymously as the literal line '0, 1', so every schema shares this
// single sentinel value.
var Class = Feature{name: "CLASS", kind: KindClass}

// NewFeature creates a feature of a kind that carries no value domain
// (Class, Binary or Continuous).
//
// Returns:
//   - Feature: The created feature.
//   - error: ErrMissingDomain if the kind requires a domain.
func NewFeature(name string, kind Kind) (Feature, error) {
	if kind.HasDomain() {
		return Feature{}, fmt.Errorf("%w %s", errs.ErrMissingDomain, kind)
	}

	return Feature{name: name, kind: kind}, nil
}

// NewFeatureWithDomain creates an ID or Nominal feature with the given
// ordered domain of legal string values.
//
// The domain slice is copied; later mutation of the argument does not
// affect the feature.
//
// Returns:
//   - Feature: The created feature.
//   - error: ErrMissingDomain if domain is empty, or ErrUnexpectedDomain
//     if the kind does not carry a domain.
func NewFeatureWithDomain(name string, kind Kind, domain []string) (Feature, error) {
	if !kind.HasDomain() {
		return Feature{}, fmt.Errorf("%w %s", errs.ErrUnexpectedDomain, kind)
	}
	if len(domain) == 0 {
		return Feature{}, fmt.Errorf("%w %s", errs.ErrMissingDomain, kind)
	}

	return Feature{name: name, kind: kind, domain: append([]string(nil), domain...)}, nil
}

// Name returns the feature name.
func (f Feature) Name() string {
	return f.name
}

// Kind returns the feature kind.
func (f Feature) Kind() Kind {
	return f.kind
}

// Domain returns a copy of the feature's value domain, or nil for kinds
// that carry none.
func (f Feature) Domain() []string {
	if f.domain == nil {
		return nil
	}

	return append([]string(nil), f.domain...)
}

// DomainIndex returns the zero-based index of value within the domain,
// and whether the value is a domain member.
func (f Feature) DomainIndex(value string) (int, bool) {
	for i, v := range f.domain {
		if v == value {
			return i, true
		}
	}

	return 0, false
}

// Equal reports whether two features have the same name, kind and domain,
// with domains compared element-wise in order.
func (f Feature) Equal(other Feature) bool {
	if f.name != other.name || f.kind != other.kind || len(f.domain) != len(other.domain) {
		return false
	}
	for i, v := range f.domain {
		if v != other.domain[i] {
			return false
		}
	}

	return true
}

// ToFloat converts a value of this feature to its numeric form.
//
// ID and Nominal values map to their zero-based domain index, Binary and
// Class booleans map to 0.0/1.0, and Continuous values pass through
// unchanged. A missing value stays missing: ok is false and err is nil.
//
// Returns:
//   - float64: The numeric form of the value.
//   - bool: False if the value is missing.
//   - error: ErrValueNotInDomain for an ID/Nominal value absent from the
//     domain, or ErrValueKindMismatch if the value's dynamic type does not
//     match the feature kind.
func (f Feature) ToFloat(v Value) (float64, bool, error) {
	if v.IsMissing() {
		return 0, false, nil
	}

	switch f.kind {
	case KindID, KindNominal:
		s, ok := v.AsString()
		if !ok {
			return 0, false, fmt.Errorf("feature %q: %w", f.name, errs.ErrValueKindMismatch)
		}
		idx, ok := f.DomainIndex(s)
		if !ok {
			return 0, false, fmt.Errorf("feature %q, value %q: %w", f.name, s, errs.ErrValueNotInDomain)
		}

		return float64(idx), true, nil
	case KindBinary, KindClass:
		b, ok := v.AsBool()
		if !ok {
			return 0, false, fmt.Errorf("feature %q: %w", f.name, errs.ErrValueKindMismatch)
		}
		if b {
			return 1.0, true, nil
		}

		return 0.0, true, nil
	case KindContinuous:
		x, ok := v.AsFloat()
		if !ok {
			return 0, false, fmt.Errorf("feature %q: %w", f.name, errs.ErrValueKindMismatch)
		}

		return x, true, nil
	default:
		return 0, false, fmt.Errorf("feature %q: unknown kind %d", f.name, f.kind)
	}
}

// String renders the feature as "<name, KIND, [values...]>".
func (f Feature) String() string {
	if f.domain == nil {
		return fmt.Sprintf("<%s, %s>", f.name, f.kind)
	}

	return fmt.Sprintf("<%s, %s, [%s]>", f.name, f.kind, strings.Join(f.domain, ", "))
}

// writeDigest folds the feature's identity tuple into the digest.
func (f Feature) writeDigest(d *hash.Digest) {
	_ = d.WriteByte(byte(f.kind))
	d.WriteString(f.name)
	for _, v := range f.domain {
		d.WriteString(v)
	}
}
