package schema

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func testFeatures(t *testing.T) []Feature {
	t.Helper()

	id, err := NewFeatureWithDomain("id", KindID, []string{"p1", "p2"})
	require.NoError(t, err)
	color, err := NewFeatureWithDomain("color", KindNominal, []string{"red", "green"})
	require.NoError(t, err)
	weight, err := NewFeature("weight", KindContinuous)
	require.NoError(t, err)

	return []Feature{id, color, weight, Class}
}

func TestSchemaAccessors(t *testing.T) {
	features := testFeatures(t)
	s := New(features...)

	require.Equal(t, 4, s.Len())
	for i, f := range features {
		require.True(t, s.At(i).Equal(f))
	}
	require.Equal(t, 4, len(s.Features()))
	require.True(t, s.Contains(Class))

	other, err := NewFeature("other", KindContinuous)
	require.NoError(t, err)
	require.False(t, s.Contains(other))
}

func TestSchemaEqual(t *testing.T) {
	a := New(testFeatures(t)...)
	b := New(testFeatures(t)...)

	require.True(t, a.Equal(b))
	require.Equal(t, a.Fingerprint(), b.Fingerprint())

	// Order matters
	features := testFeatures(t)
	features[0], features[1] = features[1], features[0]
	reordered := New(features...)
	require.False(t, a.Equal(reordered))
	require.NotEqual(t, a.Fingerprint(), reordered.Fingerprint())

	// Prefix is not equal
	shorter := New(testFeatures(t)[:3]...)
	require.False(t, a.Equal(shorter))

	require.False(t, a.Equal(nil))
	require.True(t, (*Schema)(nil).Equal(nil))
}

func TestSchemaIsolatedFromArgument(t *testing.T) {
	features := testFeatures(t)
	s := New(features...)

	features[0] = Class
	require.True(t, s.At(0).Equal(testFeatures(t)[0]))
}
