// Package cli provides the interactive CareWork command-line client.
//
// It drives the domain services from a REPL: authenticate, record and browse
// check-ins, read tips, reports and insights, and manage goals, reminders and
// achievements. A background watcher probes the API health endpoint and shows
// whether the client is online.
//
// Failures are rendered through the message translator, so the user sees a
// localized text rather than raw API errors.
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App, StartOnlineStatusWatcher, and runREPL for details.
package cli
