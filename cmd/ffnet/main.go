// SPDX-License-Identifier: MIT

// Package main is a small driver for the ffnet runtime: it builds a network
// from an architecture vector, randomizes its parameters, optionally feeds
// one input row, runs a forward pass and dumps the result.
//
// Usage:
//
//	ffnet --arch 2,2,1 --low 0 --high 1 --seed 7 --input 0.5,1
//
// Output goes to stdout; diagnostics and failures go through the standard
// logger.
package main

import (
	"log"
	"os"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("ffnet: ")

	if err := newRootCmd(os.Stdout).Execute(); err != nil {
		log.Fatal(err)
	}
}
