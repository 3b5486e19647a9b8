// Package cli provides the interactive TuriSync command-line client.
//
// It wires configuration, the local cache database, the remote API source and
// an interactive REPL. Every data command runs as a cache-aside sync: the
// cached snapshot is printed first when one exists, then the refreshed result
// from the API, or an error when the API is unreachable and nothing is cached.
//
// Key features:
//   - List / show vendors, optionally filtered by municipality
//   - List / show municipalities
//   - Delete a vendor remotely and locally
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App and runREPL for details.
package cli
