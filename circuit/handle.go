package circuit

import (
	"fmt"
	"slices"

	"github.com/Electron-Labs/hollow-gnark-prover/zkerrors"
	"github.com/consensys/gnark-crypto/ecc"
	"github.com/consensys/gnark/constraint"
	cs_bn254 "github.com/consensys/gnark/constraint/bn254"
	"github.com/consensys/gnark/constraint/solver"
	"github.com/consensys/gnark/frontend"
	"github.com/consensys/gnark/frontend/cs/r1cs"
	gnarklogger "github.com/consensys/gnark/logger"
)

// Compiled is the Handle implementation backed by a BN254 R1CS.
type Compiled struct {
	def Definition
	ccs constraint.ConstraintSystem
}

// Compile compiles def into a rank-1 constraint system over the BN254 scalar field.
func Compile(def Definition) (*Compiled, error) {
	log := gnarklogger.Logger().With().Str("component", "circuit").Str("circuit", def.Name()).Logger()

	ccs, err := frontend.Compile(ecc.BN254.ScalarField(), r1cs.NewBuilder, def.Skeleton())
	if err != nil {
		return nil, zkerrors.Synthesis("compile failed", err)
	}
	log.Debug().Int("constraints", ccs.GetNbConstraints()).Msg("circuit compiled")
	return Load(def, ccs)
}

// Load binds def to an already compiled constraint system. The number of public
// variables must match the definition.
func Load(def Definition, ccs constraint.ConstraintSystem) (*Compiled, error) {
	if ccs == nil {
		return nil, zkerrors.Synthesis("nil constraint system", nil)
	}
	if ccs.Field().Cmp(ecc.BN254.ScalarField()) != 0 {
		return nil, zkerrors.Synthesis("constraint system is not over the BN254 scalar field", nil)
	}
	_, _, nbPublic := ccs.GetNbVariables()
	// the constant wire is counted as public
	if nbPublic-1 != len(def.PublicSignals()) {
		return nil, zkerrors.Synthesis(
			fmt.Sprintf("constraint system has %d public variables, %s declares %d", nbPublic-1, def.Name(), len(def.PublicSignals())),
			nil,
		)
	}
	return &Compiled{def: def, ccs: ccs}, nil
}

func (c *Compiled) Definition() Definition {
	return c.def
}

func (c *Compiled) ConstraintSystem() constraint.ConstraintSystem {
	return c.ccs
}

// Evaluate checks that in holds exactly the declared inputs, extends it through the
// definition and runs the solver to obtain every wire value.
func (c *Compiled) Evaluate(in Assignment) (*Evaluation, error) {
	if err := checkInputs(c.def, in); err != nil {
		return nil, err
	}
	assignment, err := c.def.Assign(in)
	if err != nil {
		return nil, err
	}

	w, err := frontend.NewWitness(assignment, ecc.BN254.ScalarField())
	if err != nil {
		return nil, zkerrors.Synthesis("frontend.NewWitness failed", err)
	}

	log := gnarklogger.Logger().With().Str("component", "circuit").Str("circuit", c.def.Name()).Logger()
	solution, err := c.ccs.Solve(w, solver.WithLogger(log))
	if err != nil {
		return nil, zkerrors.ConstraintViolation(err)
	}
	r1csSolution, ok := solution.(*cs_bn254.R1CSSolution)
	if !ok {
		return nil, zkerrors.Synthesis(fmt.Sprintf("unexpected solution type %T", solution), nil)
	}

	return &Evaluation{Witness: w, Values: r1csSolution.W}, nil
}

func checkInputs(def Definition, in Assignment) error {
	inputs := def.Inputs()
	for _, name := range inputs {
		if _, ok := in[name]; !ok {
			return zkerrors.Parse("missing input signal %q", name)
		}
	}
	for name := range in {
		if !slices.Contains(inputs, name) {
			return zkerrors.Parse("unknown input signal %q", name)
		}
	}
	return nil
}
