// Package models defines the wire records exchanged with the CareWork API.
//
// Timestamps are kept as the ISO 8601 strings the server sends; nullable
// fields are pointers.
package models
