//go:build tools
// +build tools

// Package tools documents development tool dependencies.
// These tools are run through `go run` or installed via `go install` and are
// not tracked in go.mod since they are development tools, not runtime dependencies.
package tools

// Development tools:
//
// mockgen - regenerates internal/mocks from internal/core interfaces
//   Run: go generate ./internal/mocks
//   Version: go.uber.org/mock v0.6.0 (matches the test dependency)
//
// Air - Live reload for the API server
//   Install: go install github.com/air-verse/air@v1.63.0
//   Run: air --build.cmd "go build -o ./tmp/jobtracker ./cmd/jobtracker" --build.bin ./tmp/jobtracker
