package cli

import (
	"bufio"
	"context"
	"fmt"
	"strconv"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	ListVendors(ctx context.Context)
	ShowVendor(ctx context.Context, id int64)
	ListVendorsByMunicipality(ctx context.Context, municipalityID int64)
	DeleteVendor(ctx context.Context, id int64)
	ListMunicipalities(ctx context.Context)
	ShowMunicipality(ctx context.Context, id int64)
}

// runREPL starts a simple read–eval–print loop for the TuriSync CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Commands
//
//	help              — show available commands
//	vendors           — list cached vendors, then refresh from the API
//	vendor <id>       — show one vendor
//	in <munID>        — list vendors of one municipality
//	munis             — list municipalities
//	muni <id>         — show one municipality
//	delete <id>       — delete a vendor remotely, then locally
//	exit | quit       — leave the program
//
// Each data command prints every state the sync emits: a loading notice, the
// cached snapshot when one exists, and the refreshed result or an error.
func runREPL(ctx context.Context, a execIface, scanner *bufio.Scanner) {
	for {
		printlnFn("turisync> ")
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			printlnFn("Available commands: vendors, vendor <id>, in <munID>, munis, muni <id>, delete <id>, exit")

		case "vendors":
			a.ListVendors(ctx)

		case "vendor":
			id, ok := parseIDArg(args, "Usage: vendor <id>")
			if !ok {
				continue
			}
			a.ShowVendor(ctx, id)

		case "in":
			id, ok := parseIDArg(args, "Usage: in <municipality id>")
			if !ok {
				continue
			}
			a.ListVendorsByMunicipality(ctx, id)

		case "munis":
			a.ListMunicipalities(ctx)

		case "muni":
			id, ok := parseIDArg(args, "Usage: muni <id>")
			if !ok {
				continue
			}
			a.ShowMunicipality(ctx, id)

		case "delete":
			id, ok := parseIDArg(args, "Usage: delete <vendor id>")
			if !ok {
				continue
			}
			a.DeleteVendor(ctx, id)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}

func parseIDArg(args []string, usage string) (int64, bool) {
	if len(args) == 0 {
		printlnFn(usage)
		return 0, false
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		printlnFn(usage)
		return 0, false
	}
	return id, true
}
