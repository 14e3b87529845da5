// Package client talks to the CareerPilot REST API.
//
// # Overview
//
// The package provides:
//  1. The Client interface, one method per API operation, each taking a
//     context.Context first.
//  2. HTTPClient, the net/http implementation. It reads the bearer token from
//     an injected tokenstore.Store at the start of every call and is the only
//     writer of that store: Login, Register, RefreshToken and
//     VerifyTwoFALogin save the returned access token, Logout always clears
//     it and DeleteAccount clears it once the account is gone.
//  3. Local persistence bootstrap (InitDatabase, RunMigrations) for the CLI,
//     opening an SQLite database and applying the embedded goose migrations.
//
// # Error Handling
//
// A non-2xx response is returned as *models.APIError. Its message is the
// server's details, else its message, else "An error occurred". A 401 also
// matches ErrUnauthorized. Transport failures wrap ErrUnavailable; a response
// carrying a value outside a closed enumeration wraps ErrContractViolation.
// Context cancellation is returned unchanged.
//
// Calls are made at most once. There is no retry.
package client
