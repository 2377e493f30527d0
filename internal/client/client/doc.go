// Package client is the CLI side of the DermaSight gRPC API. It keeps the
// access token of the signed-in user in a session file and converts gRPC
// statuses back into the error categories of package common.
package client
