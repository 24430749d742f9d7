// Package services contains the application services of the CareWork client.
//
// AuthService owns the session lifecycle. The domain façades (check-ins,
// tips, reports, insights, goals, reminders, achievements) follow one
// convention: queries never fail, they log and return an empty slice, a nil
// pointer, a zero value or false; commands return (T, error) and hand the
// pipeline's *client.APIError back unchanged so callers can show its message.
package services
