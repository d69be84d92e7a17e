package bookkeeping

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// The pipeline fails fast and whole: it produces either a complete summary
// or a single one of these errors. They are structured values so callers can
// render an actionable message; the core itself never logs or formats.

// DuplicateAccountError reports an account declared twice in one document.
type DuplicateAccountError struct {
	Name string
}

func (e *DuplicateAccountError) Error() string {
	return fmt.Sprintf("account %q declared twice", e.Name)
}

// UnknownAccountError reports a reference to an account that was never
// declared. Transfer and Source are filled in by the validator when the
// reference comes from a transfer.
type UnknownAccountError struct {
	Account  string
	Transfer string // label of the offending transfer, if any
	Source   string // grouping the transfer came from, if any
}

func (e *UnknownAccountError) Error() string {
	if e.Transfer == "" {
		return fmt.Sprintf("unknown account %q", e.Account)
	}
	return fmt.Sprintf("transfer %q (in %q) references unknown account %q", e.Transfer, e.Source, e.Account)
}

// UnbalancedTransferError reports a transfer whose amounts do not sum to
// exactly zero. Sum carries the exact residual.
type UnbalancedTransferError struct {
	Transfer string
	Source   string
	Sum      decimal.Decimal
}

func (e *UnbalancedTransferError) Error() string {
	return fmt.Sprintf("transfer %q (in %q) does not sum to zero: residual %s", e.Transfer, e.Source, e.Sum)
}

// CyclicReferenceError reports a grouping source reference that resolves,
// directly or indirectly, back to itself. Chain is the active resolution
// path ending with the repeated reference.
type CyclicReferenceError struct {
	Chain []string
}

func (e *CyclicReferenceError) Error() string {
	return fmt.Sprintf("cyclic grouping reference: %s", strings.Join(e.Chain, " -> "))
}

// UnresolvableSourceError reports a grouping reference the loader could not
// turn into a grouping. It wraps the loader's error.
type UnresolvableSourceError struct {
	Ref string
	Err error
}

func (e *UnresolvableSourceError) Error() string {
	return fmt.Sprintf("could not resolve grouping source %q: %v", e.Ref, e.Err)
}

func (e *UnresolvableSourceError) Unwrap() error { return e.Err }

// DuplicateGroupingError reports two resolved groupings sharing a name.
type DuplicateGroupingError struct {
	Name string
}

func (e *DuplicateGroupingError) Error() string {
	return fmt.Sprintf("duplicate grouping %q", e.Name)
}
