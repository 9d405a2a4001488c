// Package wren is the root package for the wren CLI.
package wren

// Version is the current wren release.
const Version = "0.3.1"
