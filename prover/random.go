package prover

import (
	"crypto/rand"
	"io"
	"math/big"

	"github.com/Electron-Labs/hollow-gnark-prover/zkerrors"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
)

func scalarModulus() *big.Int {
	return fr.Modulus()
}

// randomScalar draws a uniform non-zero scalar from rnd. A failing source is fatal
// for the calling operation.
func randomScalar(rnd io.Reader) (*big.Int, error) {
	if rnd == nil {
		return nil, zkerrors.Synthesis("nil randomness source", nil)
	}
	modulus := scalarModulus()
	for {
		s, err := rand.Int(rnd, modulus)
		if err != nil {
			return nil, zkerrors.Synthesis("sample scalar", err)
		}
		if s.Sign() != 0 {
			return s, nil
		}
	}
}
