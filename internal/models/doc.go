// Package models defines the DermaSight domain types shared by the server,
// its stores, the gRPC wire format and the CLI client.
//
// JSON field names follow the analysis payload produced by the remote model
// (snake_case dashboards) and the case metadata attached by the service
// (camelCase), so a Case serializes exactly as clients expect it.
package models
