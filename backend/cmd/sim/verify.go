package main

import (
	"bytes"
	"fmt"
	"os"
)

// runVerify implements `sim verify <snapshot-a> <snapshot-b>` (spec.md §6:
// "compares byte-equality and exits 0/1"), underwriting the round-trip law
// (spec.md §8): restore(snapshot(h)) and a continuous run's snapshot must
// serialize to identical bytes.
func runVerify(args []string) int {
	if len(args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: sim verify <snapshot-a> <snapshot-b>")
		return exitMalformedSnapshot
	}

	a, err := os.ReadFile(args[0])
	if err != nil {
		fmt.Fprintln(os.Stderr, "sim verify: reading", args[0]+":", err)
		return exitMalformedSnapshot
	}
	b, err := os.ReadFile(args[1])
	if err != nil {
		fmt.Fprintln(os.Stderr, "sim verify: reading", args[1]+":", err)
		return exitMalformedSnapshot
	}

	if !bytes.Equal(a, b) {
		fmt.Fprintln(os.Stdout, "snapshots differ")
		return exitVerificationFailed
	}
	fmt.Fprintln(os.Stdout, "snapshots match")
	return exitOK
}
