//go:build tools

package tools

// This file tracks versions of CLI tool dependencies.
// It is not compiled into the binary.
//
// Tools:
// - github.com/matryer/moq (service and handler mocks, *_mock_test.go)
// - github.com/pressly/goose/v3/cmd/goose (ad-hoc migration authoring; the
//   binary itself applies migrations via `menowell migrate up`)
