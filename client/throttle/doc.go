// Package throttle provides an [http.RoundTripper] that rate-limits
// outbound calls to the drops API using a token bucket from
// [golang.org/x/time/rate].
//
// Requests within the burst go straight through; once the bucket is
// empty they block until a token frees up or the request context ends.
// Nothing is retried or dropped.
package throttle
