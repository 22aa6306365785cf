// Package logging provides the structured logging interface used by bigmul
// and its zerolog-backed implementation.
package logging
