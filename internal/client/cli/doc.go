// Package cli provides the interactive sessionkeeper command-line client.
//
// It wires configuration, local storage, the identity-provider and
// profile-store clients, and an interactive REPL on top of the session
// coordinator. Typical flow: restore the mirrored session if one exists,
// then execute user commands.
//
// Key commands:
//   - register / login / logout
//   - whoami — show the locally mirrored user
//   - show   — fetch a profile-store record by id
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
