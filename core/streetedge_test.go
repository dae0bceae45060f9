package core

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStreetEdgeValidation(t *testing.T) {
	_, err := NewStreetEdge("E", "A", "B", -1, PermitWalk, 0)
	assert.ErrorIs(t, err, ErrNegativeLength)

	_, err = NewStreetEdge("E", "A", "B", maxLengthMillimeters+1, PermitWalk, 0)
	assert.ErrorIs(t, err, ErrLengthOverflow)

	_, err = NewStreetEdge("E", "A", "B", 1000, PermitCar, 0)
	assert.ErrorIs(t, err, ErrNonPositiveCarSpeed)

	e, err := NewStreetEdge("E", "A", "B", 1000, PermitWalk, 0)
	require.NoError(t, err)
	assert.Equal(t, 1.0, e.LengthMeters())
}

func TestFixedPointLength(t *testing.T) {
	e, err := NewStreetEdge("E", "A", "B", 123_456, PermitWalk, 0)
	require.NoError(t, err)
	assert.InDelta(t, 123.456, e.LengthMeters(), 1e-9)
}

func TestBradAngleAccessors(t *testing.T) {
	e, err := NewStreetEdge("E", "A", "B", 1000, PermitWalk, 0)
	require.NoError(t, err)

	e.InAngle = EncodeAngle(math.Pi / 2)
	e.OutAngle = EncodeAngle(-math.Pi / 2)

	assert.Equal(t, -90, e.InAngleDegrees())
	assert.Equal(t, 90, e.OutAngleDegrees())
}

func TestIsReverseOf(t *testing.T) {
	ab, err := NewStreetEdge("AB", "A", "B", 1000, PermitWalk, 0)
	require.NoError(t, err)
	ba, err := NewStreetEdge("BA", "B", "A", 1000, PermitWalk, 0)
	require.NoError(t, err)
	ac, err := NewStreetEdge("AC", "A", "C", 1000, PermitWalk, 0)
	require.NoError(t, err)

	assert.True(t, ab.IsReverseOf(ba))
	assert.True(t, ba.IsReverseOf(ab))
	assert.False(t, ab.IsReverseOf(ac))
	assert.False(t, ab.IsReverseOf(nil))
}

func TestIsEquivalentToToleratesAliasing(t *testing.T) {
	permanent, err := NewStreetEdge("G1", "A", "B", 1000, PermitWalk, 0)
	require.NoError(t, err)

	temporary, err := NewStreetEdge("tmp-1", "A", "Bsplit", 400, PermitWalk, 0)
	require.NoError(t, err)

	assert.False(t, temporary.IsEquivalentTo(permanent))

	temporary.SetAlias("G1")
	assert.True(t, temporary.IsEquivalentTo(permanent))
	assert.True(t, permanent.IsEquivalentTo(temporary))
}

func TestFlagMutators(t *testing.T) {
	e, err := NewStreetEdge("E", "A", "B", 1000, PermitWalk, 0)
	require.NoError(t, err)

	e.SetFlag(FlagStairs)
	e.SetFlag(FlagCrossing)
	assert.True(t, e.IsStairs())
	assert.True(t, e.IsCrossing())

	e.ClearFlag(FlagStairs)
	assert.False(t, e.IsStairs())
	assert.True(t, e.IsCrossing())
}

func TestPermissionBitset(t *testing.T) {
	assert.True(t, PermitAll.Allows(ModeWalk))
	assert.True(t, PermitAll.Allows(ModeBicycle))
	assert.True(t, PermitAll.Allows(ModeCar))
	assert.False(t, PermitNone.Allows(ModeWalk))

	p := PermitWalk | PermitBicycle
	assert.True(t, p.Allows(ModeBicycle))
	assert.False(t, p.Allows(ModeCar))
}
