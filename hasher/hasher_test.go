package hasher

import (
	"math/big"
	"strings"
	"testing"

	"github.com/Electron-Labs/hollow-gnark-prover/field"
	"github.com/Electron-Labs/hollow-gnark-prover/zkerrors"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDomainHashString(t *testing.T) {
	h, err := DomainHash("quick brown fox jumpes over the lazy dog")
	require.NoError(t, err)
	assert.Equal(t, "1428051172494059108075242303790827279360348377618", h.String())

	h, err = DomainHash("hi there")
	require.NoError(t, err)
	assert.Equal(t, "225037454736096360469008883958883233963769495287", h.String())
}

type fooBarBaz struct {
	Foo int    `json:"foo"`
	Bar bool   `json:"bar"`
	Baz string `json:"baz"`
}

type bazBarFoo struct {
	Baz string `json:"baz"`
	Bar bool   `json:"bar"`
	Foo int    `json:"foo"`
}

func TestDomainHashStruct(t *testing.T) {
	h, err := DomainHash(fooBarBaz{Foo: 123, Bar: true, Baz: "zab"})
	require.NoError(t, err)
	assert.Equal(t, "456108647815456389709004505861143737447371420350", h.String())

	// same data, different field order
	reordered, err := DomainHash(bazBarFoo{Baz: "zab", Bar: true, Foo: 123})
	require.NoError(t, err)
	assert.Equal(t, "789184016870078611856316148250045843665071998045", reordered.String())
	assert.NotEqual(t, h, reordered)
}

func TestDomainHashDeterministic(t *testing.T) {
	a, err := DomainHash(fooBarBaz{Foo: 1, Bar: false, Baz: "x"})
	require.NoError(t, err)
	b, err := DomainHash(fooBarBaz{Foo: 1, Bar: false, Baz: "x"})
	require.NoError(t, err)
	assert.Equal(t, a, b)
	assert.LessOrEqual(t, a.BitLen(), DomainHashBits)
}

func TestDomainHashEdgeCases(t *testing.T) {
	empty, err := DomainHash("")
	require.NoError(t, err)
	space, err := DomainHash(" ")
	require.NoError(t, err)

	assert.Equal(t, "641834102700584898685723936092971553352619947739", empty.String())
	assert.Equal(t, "720701040408639390587568183743176539847364630705", space.String())

	// html characters are hashed verbatim, not as \u003c escapes
	html, err := DomainHash("<&>")
	require.NoError(t, err)
	assert.Equal(t, "1373249942175512162765725837379491516497811523351", html.String())
}

func TestDomainHashUnsupported(t *testing.T) {
	_, err := DomainHash(make(chan int))
	assert.ErrorIs(t, err, zkerrors.ErrEncoding)
}

func TestDeriveKey(t *testing.T) {
	preimage := big.NewInt(123456789)

	key, err := DeriveKey(preimage)
	require.NoError(t, err)
	again, err := DeriveKey(preimage)
	require.NoError(t, err)
	assert.Equal(t, key, again)

	require.True(t, strings.HasPrefix(key, "0x"))
	hex := strings.TrimPrefix(key, "0x")
	assert.NotEmpty(t, hex)
	assert.NotEqual(t, byte('0'), hex[0])
	assert.Equal(t, strings.ToLower(hex), hex)
	assert.NotContains(t, key, ")")

	// the key is the hex rendering of the digest public signal
	var e fr.Element
	e.SetUint64(123456789)
	digest := Digest(e)
	parsed, ok := new(big.Int).SetString(hex, 16)
	require.True(t, ok)
	assert.Equal(t, field.BigInt(digest), parsed)

	other, err := DeriveKey(big.NewInt(987654321))
	require.NoError(t, err)
	assert.NotEqual(t, key, other)
}

func TestDeriveKeyGolden(t *testing.T) {
	key, err := DeriveKey(big.NewInt(123456789))
	require.NoError(t, err)
	assert.Equal(t, "0x7e7a78b7f7c7c74c5892c8ba4a3fb5d5280bf5809e817193ef247bbd7b3e9ac", key)

	var e fr.Element
	e.SetUint64(123456789)
	assert.Equal(t, "3575487964545043933327018028859598629238012872745985247576886450771889220012", field.String(Digest(e)))
}

func TestDeriveKeyReducesPreimage(t *testing.T) {
	wrapped := new(big.Int).Add(field.Modulus(), big.NewInt(42))
	a, err := DeriveKey(wrapped)
	require.NoError(t, err)
	b, err := DeriveKey(big.NewInt(42))
	require.NoError(t, err)
	assert.Equal(t, a, b)

	_, err = DeriveKey(big.NewInt(-42))
	assert.ErrorIs(t, err, zkerrors.ErrParse)
}
