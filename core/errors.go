// SPDX-License-Identifier: MIT
//
// errors.go — sentinel errors for the core package.
//
// Error policy:
//   - Only package-level sentinels are exposed; branch with errors.Is.
//   - Implementations attach context via fmt.Errorf("...: %w", sentinel).
//   - Duplicate insertion is NOT an error anywhere in this package: it is
//     a silent no-op by contract.

package core

import "errors"

// ErrNilEdge indicates a nil Edge value was passed where an edge is required.
// Usage: if errors.Is(err, core.ErrNilEdge) { /* caller bug */ }.
var ErrNilEdge = errors.New("core: nil edge")

// ErrMalformedEdge indicates an edge violates its own kind's validity rule
// (e.g., an empty end sequence, or wrong arity at construction time).
// Edge constructors surface it before any set or builder is touched.
var ErrMalformedEdge = errors.New("core: malformed edge")

// ErrBuilderSealed indicates Result was already called on a Builder; the
// builder is single-use and rejects further Add/Result calls.
var ErrBuilderSealed = errors.New("core: builder already consumed")

// ErrBadFillCount indicates Fill was invoked with a negative count.
var ErrBadFillCount = errors.New("core: negative fill count")

// ErrNilFillFunc indicates Fill was invoked with a nil parameter generator.
var ErrNilFillFunc = errors.New("core: nil parameter generator")

// ErrNilSeq indicates FromSeq received a nil sequence among its stream
// arguments. Empty sequences are fine; nil ones are caller bugs.
var ErrNilSeq = errors.New("core: nil sequence")
