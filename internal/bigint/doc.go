// Package bigint implements signed integers of unbounded magnitude stored as
// little-endian digit vectors, and the schoolbook multiplication kernels that
// operate on them.
//
// The digit width comes from package digit and is fixed at build time. Values
// of type Int are immutable: every operation allocates a fresh digit vector,
// except MulDigitInPlace and MulAccumulate, which work on caller-owned buffers.
package bigint
