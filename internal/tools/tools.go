//go:build tools
// +build tools

// Package tools pins the development tools run by the Makefile: mockgen for
// the flags Store mock (make generate), golangci-lint (make lint), go-licenses
// (make license-check) and gotestsum (make unit-test).
package tools

import (
	_ "github.com/golang/mock/mockgen"
	_ "github.com/golangci/golangci-lint/cmd/golangci-lint"
	_ "github.com/google/go-licenses"
	_ "gotest.tools/gotestsum"
)
