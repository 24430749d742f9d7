// Package client contains the request pipeline the CareWork client uses to
// talk to its REST backend.
//
// # Overview
//
// The package provides:
//  1. A transport contract (see the Client interface): Do performs exactly one
//     HTTP call and decodes its JSON result, CheckHealth probes /health.
//  2. A concrete implementation (see HTTPClient) that attaches the bearer
//     token read from a TokenSource on every call, enforces a per-call
//     timeout, optionally rate limits, and tags each request with an
//     X-Request-ID.
//  3. A pure body decoder (DecodeBody) that tells the {success,data} envelope
//     apart from raw bodies.
//
// # Error Handling
//
// Every failure leaving Do is an *APIError. Its Kind classifies the cause
// (transport, parse, server, validation, protocol, unexpected) and StatusCode
// is the HTTP status, or 0 when the request never produced one. The
// sentinels ErrUnavailable and ErrUnauthorized match through errors.Is.
//
// Concurrency & Contexts
//
// HTTPClient is safe for concurrent use. All operations accept
// context.Context and honor cancellation.
package client
