// Package petpalsdk is the Go client for the PetPal services.
//
// An SDKClient talks to the user service for registration and login; a
// successful login yields a Session which attaches the bearer token to every
// request against the resource services (pets, appointments, notifications,
// medical records). When the server rejects the token the session discards
// it and every further call fails with ErrSessionExpired; the caller is
// expected to log in again.
//
// The error and response types in this package are shared with the service
// handlers so both sides of the wire agree on shapes.
package petpalsdk
