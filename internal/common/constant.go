// Package common contains shared constants and sentinel errors used across
// station and tallier components.
package common

// AccessTokenHeaderName is the gRPC metadata key used to carry the station
// access token on outbound requests.
const AccessTokenHeaderName = "access_token"
