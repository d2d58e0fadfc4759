// Package services defines shared helpers consumed by the API client and the
// dashboard views.
//
// Key responsibilities:
//   - Context helpers that stamp the active view and a correlation identifier
//     for logging and the X-Request-ID header.
//   - Structured error markers plus the Wrap helper that let callers classify
//     a failed round trip (transport, HTTP status, malformed body) without
//     re-parsing HTTP responses.
package services
