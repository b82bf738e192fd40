package common

// AccessTokenHeaderName is the gRPC metadata key used to carry the
// access token on outbound requests.
const AccessTokenHeaderName = "access_token"

// DateLayout is the wire layout for calendar dates in query strings and CLI flags.
const DateLayout = "2006-01-02"
