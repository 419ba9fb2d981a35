// Package rpath provides Path, a filesystem path value with fluent accessors
// for joining, decomposition, extension parsing, canonicalization, and
// filesystem predicates.
//
// Operations that can fail structurally (Basename, Dirname, Extension, Pwd,
// HomeDirectory, ...) return errors wrapping one of the package's sentinel
// errors, which can be tested with errors.Is. The must package provides
// variants of these operations that terminate the process instead. Expand and
// String never fail: they fall back to the unresolved path and to a lossy text
// conversion, respectively.
//
// Path performs no synchronization. Values may be copied freely; a single
// value mutated with JoinMultiple or Clear must not be shared between
// goroutines.
package rpath
