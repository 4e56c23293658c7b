// Package proto holds the wire contract for the LLM inference
// service. The Go and gRPC stubs are generated from llm.proto and are
// not committed; regenerate with go generate after editing the schema.
//
//go:generate protoc --go_out=. --go_opt=paths=source_relative --go-grpc_out=. --go-grpc_opt=paths=source_relative llm.proto
package proto
