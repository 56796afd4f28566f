// Package cli provides the interactive CoordiNet command-line front-end.
//
// It wires the datastore and services into a read-eval-print loop. The
// persisted session is loaded at start-up, so a user who signed in during a
// previous run is still signed in. Every command is checked against the
// route guard before it runs.
//
// The REPL is started via App.Run(ctx), which blocks until the user exits
// or input ends.
package cli
