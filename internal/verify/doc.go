// Package verify cross-checks the schoolbook kernel against independent
// multipliers. Every registered multiplier runs concurrently on the same
// operands and any disagreement is reported as an apperrors.MismatchError.
package verify
