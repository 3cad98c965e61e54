package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/worldforge/sim/backend/internal/content"
	"github.com/worldforge/sim/backend/internal/sim"
	apperrors "github.com/worldforge/sim/backend/pkg/errors"
)

// runNew implements `sim new <seed> [archetype]` (spec.md §6: "prints
// initial snapshot to stdout"). archetype defaults to Standard.
func runNew(args []string) int {
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "usage: sim new <seed> [archetype]")
		return exitMalformedSnapshot
	}
	seed := args[0]
	archetype := "Standard"
	if len(args) >= 2 {
		archetype = args[1]
	}

	tables := content.DefaultTables()
	if err := tables.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, "sim new: content table error:", err)
		return exitContentTableError
	}

	handle, err := sim.NewSimulation(seed, archetype, tables, false, nil)
	if err != nil {
		return newCommandExitCode("sim new", err)
	}

	data, err := handle.Snapshot()
	if err != nil {
		return newCommandExitCode("sim new", err)
	}
	fmt.Println(string(data))
	return exitOK
}

// newCommandExitCode maps an error from the Runtime API to spec.md §6's
// exit-code contract: content-table errors are 3, everything else that
// reaches the CLI boundary (serialization, invariant) is treated as a
// malformed-snapshot condition.
func newCommandExitCode(cmd string, err error) int {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) && appErr.Type == apperrors.ErrorTypeContentTable {
		fmt.Fprintln(os.Stderr, cmd+": content table error:", err)
		return exitContentTableError
	}
	fmt.Fprintln(os.Stderr, cmd+":", err)
	return exitMalformedSnapshot
}
