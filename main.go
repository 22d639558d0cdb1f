package main

import (
	"github.com/Electron-Labs/hollow-gnark-prover/cmd"
	_ "github.com/Electron-Labs/hollow-gnark-prover/cmd/build"
	_ "github.com/Electron-Labs/hollow-gnark-prover/cmd/hash"
	_ "github.com/Electron-Labs/hollow-gnark-prover/cmd/prove"
	_ "github.com/Electron-Labs/hollow-gnark-prover/cmd/verify"
)

func main() {
	cmd.Execute()
}
