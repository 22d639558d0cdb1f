package prover

import (
	"crypto/rand"
	"errors"
	"math/big"
	"sync"
	"testing"

	"github.com/Electron-Labs/hollow-gnark-prover/circuit"
	"github.com/Electron-Labs/hollow-gnark-prover/field"
	"github.com/Electron-Labs/hollow-gnark-prover/hasher"
	"github.com/Electron-Labs/hollow-gnark-prover/zkerrors"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/consensys/gnark/frontend"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	handle *circuit.Compiled
	key    *ProvingKey
}

var authzFixture = sync.OnceValues(func() (*fixture, error) {
	handle, err := circuit.Compile(circuit.Authz())
	if err != nil {
		return nil, err
	}
	key, err := Setup(handle, rand.Reader)
	if err != nil {
		return nil, err
	}
	return &fixture{handle: handle, key: key}, nil
})

func getFixture(t *testing.T) *fixture {
	f, err := authzFixture()
	require.NoError(t, err)
	return f
}

func proveValues(t *testing.T, f *fixture, preimage, cur, next int64) (*Proof, *Witness) {
	w, err := ComputeWitness(f.handle, big.NewInt(preimage), big.NewInt(cur), big.NewInt(next))
	require.NoError(t, err)
	proof, err := Prove(w, f.key, rand.Reader)
	require.NoError(t, err)
	return proof, w
}

func TestComputeWitness(t *testing.T) {
	f := getFixture(t)

	w, err := ComputeWitness(f.handle, big.NewInt(99), big.NewInt(7), big.NewInt(8))
	require.NoError(t, err)

	var preimage fr.Element
	preimage.SetUint64(99)
	digest := hasher.Digest(preimage)

	public := w.PublicSignals()
	require.Len(t, public, 3)
	assert.Equal(t, "7", field.String(public[0]))
	assert.Equal(t, "8", field.String(public[1]))
	assert.True(t, public[2].Equal(&digest))

	got, ok := w.Signal(circuit.SignalDigest)
	require.True(t, ok)
	assert.True(t, got.Equal(&digest))
	_, ok = w.Signal("nope")
	assert.False(t, ok)

	_, _, nbPublic := f.handle.ConstraintSystem().GetNbVariables()
	assert.Greater(t, len(w.Values()), nbPublic)
}

func TestComputeWitnessReducesInputs(t *testing.T) {
	f := getFixture(t)

	wrapped := new(big.Int).Add(field.Modulus(), big.NewInt(99))
	w1, err := ComputeWitness(f.handle, wrapped, big.NewInt(7), big.NewInt(8))
	require.NoError(t, err)
	w2, err := ComputeWitness(f.handle, big.NewInt(99), big.NewInt(7), big.NewInt(8))
	require.NoError(t, err)
	assert.Equal(t, w2.PublicSignals(), w1.PublicSignals())
}

func TestComputeWitnessConstraintViolation(t *testing.T) {
	f := getFixture(t)

	tooWide := new(big.Int).Lsh(big.NewInt(1), hasher.DomainHashBits)
	_, err := ComputeWitness(f.handle, big.NewInt(99), tooWide, big.NewInt(8))
	require.ErrorIs(t, err, zkerrors.ErrConstraintViolation)

	_, err = ComputeWitness(f.handle, big.NewInt(-1), big.NewInt(7), big.NewInt(8))
	require.ErrorIs(t, err, zkerrors.ErrParse)
}

func TestProveVerify(t *testing.T) {
	f := getFixture(t)
	proof, w := proveValues(t, f, 42, 1000, 2000)
	assert.True(t, proof.IsValid())

	ok, err := Verify(proof, w.PublicSignals(), f.key)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = Verify(proof, w.PublicSignals(), f.key.VerifyingKey())
	require.NoError(t, err)
	assert.True(t, ok)

	public := w.PublicSignals()
	ok, err = VerifyWithRawInputs(proof, field.String(public[2]), "1000", "2000", f.key)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestVerifyRejectsAlteredSignals(t *testing.T) {
	f := getFixture(t)
	proof, w := proveValues(t, f, 42, 1000, 2000)

	for i := range w.PublicSignals() {
		public := w.PublicSignals()
		var one fr.Element
		one.SetOne()
		public[i].Add(&public[i], &one)

		ok, err := Verify(proof, public, f.key)
		require.NoError(t, err)
		assert.False(t, ok, "signal %d", i)
	}

	// swapped order
	public := w.PublicSignals()
	public[0], public[1] = public[1], public[0]
	ok, err := Verify(proof, public, f.key)
	require.NoError(t, err)
	assert.False(t, ok)

	digest := field.String(w.PublicSignals()[2])
	ok, err = VerifyWithRawInputs(proof, digest, "2000", "1000", f.key)
	require.NoError(t, err)
	assert.False(t, ok)
}

const goldenDigest = "3575487964545043933327018028859598629238012872745985247576886450771889220012"

func TestGoldenPublicSignals(t *testing.T) {
	f := getFixture(t)
	proof, w := proveValues(t, f, 123456789, 1, 2)

	assert.Equal(t, []string{"1", "2", goldenDigest}, field.Strings(w.PublicSignals()))

	ok, err := VerifyWithRawInputs(proof, goldenDigest, "1", "2", f.key)
	require.NoError(t, err)
	assert.True(t, ok)

	handle, err := circuit.Compile(squared{circuit.Authz()})
	require.NoError(t, err)
	foreign, err := Setup(handle, rand.Reader)
	require.NoError(t, err)
	ok, err = VerifyWithRawInputs(proof, goldenDigest, "1", "2", foreign)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestVerifyNilKey(t *testing.T) {
	f := getFixture(t)
	proof, w := proveValues(t, f, 42, 1000, 2000)

	var pk *ProvingKey
	ok, err := Verify(proof, w.PublicSignals(), pk)
	require.ErrorIs(t, err, zkerrors.ErrSynthesis)
	assert.False(t, ok)

	var vk *VerifyingKey
	ok, err = Verify(proof, w.PublicSignals(), vk)
	require.ErrorIs(t, err, zkerrors.ErrSynthesis)
	assert.False(t, ok)

	_, err = Prove(w, pk, rand.Reader)
	require.ErrorIs(t, err, zkerrors.ErrSynthesis)
}

func TestVerifyRawInputsParseError(t *testing.T) {
	f := getFixture(t)
	proof, _ := proveValues(t, f, 42, 1000, 2000)

	_, err := VerifyWithRawInputs(proof, "0x12", "1000", "2000", f.key)
	require.ErrorIs(t, err, zkerrors.ErrParse)

	_, err = VerifyWithRawInputs(proof, field.Modulus().String(), "1000", "2000", f.key)
	require.ErrorIs(t, err, zkerrors.ErrParse)

	_, err = VerifyWithRawInputs(proof, "1", "01000", "2000", f.key)
	require.ErrorIs(t, err, zkerrors.ErrParse)
}

func TestProofsAreRandomized(t *testing.T) {
	f := getFixture(t)
	p1, w := proveValues(t, f, 5, 6, 7)
	p2, _ := proveValues(t, f, 5, 6, 7)
	assert.False(t, p1.Equal(p2))

	p3 := *p1
	require.NoError(t, p3.Rerandomize(f.key.VerifyingKey(), rand.Reader))
	assert.False(t, p1.Equal(&p3))

	ok, err := Verify(&p3, w.PublicSignals(), f.key)
	require.NoError(t, err)
	assert.True(t, ok)
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("entropy exhausted")
}

func TestRandomnessFailure(t *testing.T) {
	f := getFixture(t)
	w, err := ComputeWitness(f.handle, big.NewInt(1), big.NewInt(2), big.NewInt(3))
	require.NoError(t, err)

	_, err = Prove(w, f.key, failingReader{})
	require.ErrorIs(t, err, zkerrors.ErrSynthesis)

	_, err = Prove(w, f.key, nil)
	require.ErrorIs(t, err, zkerrors.ErrSynthesis)

	_, err = Setup(f.handle, failingReader{})
	require.ErrorIs(t, err, zkerrors.ErrSynthesis)
}

// squaredCircuit has the public shape of AuthzCircuit but binds digest to preimage².
type squaredCircuit struct {
	Preimage      frontend.Variable `gnark:"preimage"`
	CurValueHash  frontend.Variable `gnark:"curValueHash,public"`
	NextValueHash frontend.Variable `gnark:"nextValueHash,public"`
	Digest        frontend.Variable `gnark:"digest,public"`
}

func (c *squaredCircuit) Define(api frontend.API) error {
	api.AssertIsEqual(api.Mul(c.Preimage, c.Preimage), c.Digest)
	api.AssertIsDifferent(c.CurValueHash, c.NextValueHash)
	return nil
}

type squared struct{ circuit.Definition }

func (squared) Name() string { return "squared" }

func (squared) Skeleton() frontend.Circuit { return &squaredCircuit{} }

func (squared) Assign(in circuit.Assignment) (frontend.Circuit, error) {
	preimage := in[circuit.SignalPreimage]
	var digest fr.Element
	digest.Square(&preimage)
	return &squaredCircuit{
		Preimage:      field.BigInt(preimage),
		CurValueHash:  field.BigInt(in[circuit.SignalCurValueHash]),
		NextValueHash: field.BigInt(in[circuit.SignalNextValueHash]),
		Digest:        field.BigInt(digest),
	}, nil
}

func TestVerifyRejectsForeignKey(t *testing.T) {
	f := getFixture(t)
	proof, w := proveValues(t, f, 42, 1000, 2000)

	handle, err := circuit.Compile(squared{circuit.Authz()})
	require.NoError(t, err)
	foreign, err := Setup(handle, rand.Reader)
	require.NoError(t, err)

	ok, err := Verify(proof, w.PublicSignals(), foreign)
	require.NoError(t, err)
	assert.False(t, ok)

	// a second setup of the same circuit yields unrelated keys
	other, err := Setup(f.handle, rand.Reader)
	require.NoError(t, err)
	ok, err = Verify(proof, w.PublicSignals(), other)
	require.NoError(t, err)
	assert.False(t, ok)
}

// singleCircuit exposes only the digest.
type singleCircuit struct {
	Preimage frontend.Variable
	Digest   frontend.Variable `gnark:",public"`
}

func (c *singleCircuit) Define(api frontend.API) error {
	api.AssertIsEqual(api.Mul(c.Preimage, 3), c.Digest)
	return nil
}

type single struct{ circuit.Definition }

func (single) PublicSignals() []string { return []string{circuit.SignalDigest} }

func (single) Skeleton() frontend.Circuit { return &singleCircuit{} }

func TestShapeMismatch(t *testing.T) {
	f := getFixture(t)
	proof, w := proveValues(t, f, 42, 1000, 2000)

	handle, err := circuit.Compile(single{circuit.Authz()})
	require.NoError(t, err)
	narrowKey, err := Setup(handle, rand.Reader)
	require.NoError(t, err)
	assert.Equal(t, 1, narrowKey.VerifyingKey().NbPublic())

	_, err = Prove(w, narrowKey, rand.Reader)
	require.ErrorIs(t, err, zkerrors.ErrSynthesis)

	ok, err := Verify(proof, w.PublicSignals(), narrowKey)
	require.ErrorIs(t, err, zkerrors.ErrSynthesis)
	assert.False(t, ok)

	ok, err = Verify(proof, w.PublicSignals()[:2], f.key)
	require.ErrorIs(t, err, zkerrors.ErrSynthesis)
	assert.False(t, ok)
}

func TestKeyRoundTrip(t *testing.T) {
	f := getFixture(t)
	proof, w := proveValues(t, f, 11, 12, 13)

	pkBytes, err := f.key.Bytes()
	require.NoError(t, err)
	vkBytes, err := f.key.VerifyingKey().Bytes()
	require.NoError(t, err)

	key, err := ReadProvingKey(pkBytes, vkBytes)
	require.NoError(t, err)
	vk, err := ReadVerifyingKey(vkBytes)
	require.NoError(t, err)

	ok, err := Verify(proof, w.PublicSignals(), vk)
	require.NoError(t, err)
	assert.True(t, ok)

	proof2, err := Prove(w, key, rand.Reader)
	require.NoError(t, err)
	ok, err = Verify(proof2, w.PublicSignals(), f.key)
	require.NoError(t, err)
	assert.True(t, ok)

	h1, err := f.key.VerifyingKey().Fingerprint()
	require.NoError(t, err)
	h2, err := vk.Fingerprint()
	require.NoError(t, err)
	assert.Equal(t, h1, h2)

	_, err = ReadVerifyingKey([]byte{1, 2, 3})
	require.ErrorIs(t, err, zkerrors.ErrEncoding)
}

func TestConcurrentProving(t *testing.T) {
	f := getFixture(t)

	var wg sync.WaitGroup
	errs := make([]error, 4)
	for i := range errs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			w, err := ComputeWitness(f.handle, big.NewInt(int64(100+i)), big.NewInt(int64(i)), big.NewInt(int64(i+1)))
			if err != nil {
				errs[i] = err
				return
			}
			proof, err := Prove(w, f.key, rand.Reader)
			if err != nil {
				errs[i] = err
				return
			}
			ok, err := Verify(proof, w.PublicSignals(), f.key)
			if err == nil && !ok {
				err = errors.New("proof rejected")
			}
			errs[i] = err
		}(i)
	}
	wg.Wait()
	for _, err := range errs {
		assert.NoError(t, err)
	}
}
