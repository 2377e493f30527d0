// Package api holds the DermaSight gRPC contract generated from
// proto/dermasight/v1/dermasight.proto, plus conversions between the wire
// messages and internal/models.
package api

//go:generate protoc -I ../../proto --go_out=. --go_opt=module=github.com/dmitrijs2005/dermasight/internal/api --go-grpc_out=. --go-grpc_opt=module=github.com/dmitrijs2005/dermasight/internal/api dermasight/v1/dermasight.proto
