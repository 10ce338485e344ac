// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package main provides the adiff CLI.
package main

import (
	"fmt"
	"log"
	"os"

	"gonum.org/v1/gonum/mat"

	"github.com/born-ml/adiff/chain"
)

const version = "v0.0.1-dev"

func main() {
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "version":
			fmt.Printf("adiff %s\n", version)
			return
		case "demo":
			demo()
			return
		}
	}

	fmt.Println("adiff - Reverse-Mode Jacobians for Fixed Layer Chains")
	fmt.Printf("Version: %s\n\n", version)
	fmt.Println("Commands:")
	fmt.Println("  version    Show version")
	fmt.Println("  demo       Forward and differentiate a small chain")
}

// demo builds Affine([1 2], b=0) → Tanh, forwards x=[3 4] and prints
// the output and the 1×2 Jacobian.
func demo() {
	affine, err := chain.NewAffine(
		mat.NewDense(1, 2, []float64{1, 2}),
		mat.NewVecDense(1, nil),
	)
	if err != nil {
		log.Fatal(err)
	}

	c, err := chain.New(affine, chain.NewActivation(1, chain.Tanh))
	if err != nil {
		log.Fatal(err)
	}

	x := mat.NewVecDense(2, []float64{3, 4})
	y := c.Forward(x)

	jac, err := c.Backward()
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("x = %v\n", mat.Formatted(x.T()))
	fmt.Printf("tanh(Wx+b) = %v\n", mat.Formatted(y.T()))
	fmt.Printf("d(y)/d(x) = %v\n", mat.Formatted(jac))
}
