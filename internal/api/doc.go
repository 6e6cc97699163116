// Package api implements the HTTP handlers of the cobia REST API and the
// mapping from internal errors to client-facing responses.
package api
