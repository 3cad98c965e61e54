package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/worldforge/sim/backend/internal/content"
	"github.com/worldforge/sim/backend/internal/sim"
)

// runRun implements `sim run <snapshot-file> <hours>` (spec.md §6: "prints
// updated snapshot + newline-delimited log").
func runRun(args []string) int {
	if len(args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: sim run <snapshot-file> <hours>")
		return exitMalformedSnapshot
	}
	path, hoursArg := args[0], args[1]

	hours, err := strconv.Atoi(hoursArg)
	if err != nil {
		fmt.Fprintln(os.Stderr, "sim run: hours must be an integer:", err)
		return exitMalformedSnapshot
	}

	data, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintln(os.Stderr, "sim run: reading snapshot:", err)
		return exitMalformedSnapshot
	}

	tables := content.DefaultTables()
	if err := tables.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, "sim run: content table error:", err)
		return exitContentTableError
	}

	handle, err := sim.Restore(data, tables, false, nil)
	if err != nil {
		return newCommandExitCode("sim run", err)
	}

	entries, err := handle.Advance(hours)
	if err != nil {
		return newCommandExitCode("sim run", err)
	}

	snap, err := handle.Snapshot()
	if err != nil {
		return newCommandExitCode("sim run", err)
	}
	fmt.Println(string(snap))
	for _, entry := range entries {
		fmt.Fprintf(os.Stdout, "%s\t%d\t%s\n", entry.Category, entry.WorldTime, entry.Summary)
	}
	return exitOK
}
