package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = func(a ...any) { fmt.Println(a...) }

// getSimpleText and getDocument are indirections used to facilitate
// testing. They point to interactive input helpers and can be swapped in
// tests.
var getSimpleText = GetSimpleText
var getDocument = GetDocument

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a
// lightweight stub.
type execIface interface {
	isEnrolled() bool
	Enrol(ctx context.Context) error
	Vote(ctx context.Context) error
	Results(ctx context.Context) error
	SelfTest(ctx context.Context) error
	Ping(ctx context.Context) error
}

// runREPL starts a simple read–eval–print loop for the station operator.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Commands:
//
//	help      — show available commands
//	enrol     — (re)deliver key material to the tallier
//	vote      — run a voter through the gate and submit their ballot
//	results   — show pending/acknowledged delivery counts
//	selftest  — prove the local seal/verify/unseal round trip
//	ping      — check tallier reachability
//	exit|quit — leave the program
//
// Any errors returned by command handlers are ignored here; handlers
// print their own messages. This keeps the REPL loop resilient and
// focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("urna> %s > ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]

		switch cmd {
		case "help":
			printlnFn("Available commands: enrol, vote, results, selftest, ping, exit")
			if !a.isEnrolled() {
				printlnFn("Note: the station is not enrolled yet; run 'enrol' first")
			}

		case "enrol":
			_ = a.Enrol(ctx)

		case "vote":
			_ = a.Vote(ctx)

		case "results":
			_ = a.Results(ctx)

		case "selftest":
			_ = a.SelfTest(ctx)

		case "ping":
			_ = a.Ping(ctx)

		case "exit", "quit":
			return

		default:
			printlnFn("Unknown command: " + cmd)
		}
	}
}
