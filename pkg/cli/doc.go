// Package cli provides the command-line interface for uuidgen.
//
// The cli package implements the uuidgen commands:
//   - serve: Run the web panel, JSON API and WebSocket stream
//   - generate: Print a batch of example identifiers
//   - describe: Print the description of a version
//   - versions: List the selectable versions
//   - panel: Interactive terminal panel
//   - stream: Drive a running server's panel over WebSocket
//   - config: Display effective configuration
//   - version: Show uuidgen version
//
// Configuration is loaded once per invocation from defaults, the global and
// local config files, UUIDGEN_* environment variables and flags, in that
// order of increasing precedence.
package cli
