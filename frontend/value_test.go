package frontend

import (
	"math/big"
	"testing"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/stretchr/testify/require"
)

func TestValueKnown(t *testing.T) {
	assert := require.New(t)

	v := KnownUint64(42)
	assert.True(v.IsKnown())
	e, ok := v.Get()
	assert.True(ok)
	assert.Equal("42", e.String())
	assert.Equal("42", v.String())
}

func TestValueUnknown(t *testing.T) {
	assert := require.New(t)

	v := Unknown()
	assert.False(v.IsKnown())
	_, ok := v.Get()
	assert.False(ok)
	assert.Equal("<unknown>", v.String())
}

func TestValueAdd(t *testing.T) {
	assert := require.New(t)

	sum := KnownUint64(21).Add(KnownUint64(34))
	assert.True(sum.IsKnown())
	e, _ := sum.Get()
	assert.Equal(fr.NewElement(55), e)
}

func TestValueAddUnknownPropagates(t *testing.T) {
	assert := require.New(t)

	known := KnownUint64(1)
	assert.False(known.Add(Unknown()).IsKnown())
	assert.False(Unknown().Add(known).IsKnown())
	assert.False(Unknown().Add(Unknown()).IsKnown())
}

func TestValueAddWrapsModulus(t *testing.T) {
	assert := require.New(t)

	var e fr.Element
	e.SetBigInt(new(big.Int).Sub(fr.Modulus(), big.NewInt(1)))
	sum := Known(e).Add(KnownUint64(2))
	got, ok := sum.Get()
	assert.True(ok)
	assert.Equal(fr.NewElement(1), got)
}
