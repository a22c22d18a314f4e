// Package types defines the shared vocabulary of the reg-to-Inno pipeline:
// registry value types, their Inno Setup tags, and typed errors with stable
// categories.
//
// Design goals:
//   - Small value types that can be switched on without string compares.
//   - Typed errors with stable categories (format/decode/context/...).
//
// This package has no dependencies beyond the standard library.
package types
