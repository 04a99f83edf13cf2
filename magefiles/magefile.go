//go:build mage

// Package main provides build targets for the gea project using Mage.
//
// Usage:
//
//	mage build     Compile the gea binary to bin/
//	mage test      Run all tests
//	mage cover     Run tests with coverage
//	mage lint      Run golangci-lint
//	mage clean     Remove build artifacts
//	mage install   Install gea to GOPATH/bin
package main

const (
	binGo      = "go"
	binaryName = "gea"
	binaryDir  = "bin"
	cmdDir     = "./cmd/gea"
)
