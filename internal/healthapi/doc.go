// Package healthapi is the HTTP client for the Health GPT backend.
//
// Each operation maps to one REST endpoint under the configured base URL and
// performs exactly one round trip. Results come back in a uniform Result
// envelope instead of (value, error) pairs so views can branch on success or
// failure without parsing HTTP errors themselves: a non-2xx status is data,
// not an error, and a transport failure is folded into the same shape with a
// zero status code.
package healthapi
