// Package cli provides the interactive CareerPilot command-line client.
//
// It wires configuration, the local token store, the REST client and the
// state containers from package services, then runs a REPL on top of them.
// Typical flow: restore the previous session from the stored token, start
// the background token refresher, and execute user commands until "exit".
//
// Key features:
//   - Register / verify email / login with 2FA / logout / password reset
//   - Profile, usage quotas and 2FA management
//   - Resume library and job application tracking
//   - AI generation: job analysis, tailoring, cover letters, STAR stories
//   - Plans, subscription and billing history
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See NewApp and runREPL for details.
package cli
