// Package symtensorerr holds the sentinel error taxonomy shared across the
// higher-level symtensor packages (tensor, edgeop, ops, linalg, serialize).
// Lower-level packages (edge, blockindex) keep their own local sentinels in
// a per-package errors.go instead of funneling through this package, the
// same way matrix/errors.go and builder/errors.go each own their set rather
// than sharing one.
package symtensorerr
