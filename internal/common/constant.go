package common

// AccessTokenHeaderName is the gRPC metadata key used to carry the
// access token on outbound requests.
const AccessTokenHeaderName = "access_token"

// MaxImageBytes is the default per-image upload limit (4 MiB).
const MaxImageBytes = 4 * 1024 * 1024
