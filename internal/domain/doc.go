// Package domain contains the resource inputs accepted by the API (developers,
// games and reviews), the date conventions shared by every resource, and the
// client-facing validation error type. It is independent of storage and of
// the HTTP delivery mechanism.
package domain
