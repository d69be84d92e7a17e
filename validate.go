package bookkeeping

import "errors"

// Validate checks every transfer of the ledger against the account
// registry, in ledger order:
//
//  1. every account referenced by the transfer must be declared;
//  2. the transfer's amounts must sum to exactly zero, at full decimal
//     precision, with no rounding tolerance.
//
// Validation is all-or-nothing: the first invalid transfer aborts the whole
// computation and no partial ledger is usable. The returned error carries
// the offending transfer's label and source grouping. Validate is pure: it
// mutates neither the registry nor the ledger.
func Validate(accounts *Accounts, ledger *Ledger) error {
	for _, t := range ledger.Transfers() {
		for account := range t.Accounts() {
			if _, err := accounts.KindOf(account); err != nil {
				var unknown *UnknownAccountError
				if errors.As(err, &unknown) {
					return &UnknownAccountError{Account: account, Transfer: t.Label, Source: t.Source()}
				}
				return err
			}
		}
		if sum := t.Sum(); !sum.IsZero() {
			return &UnbalancedTransferError{Transfer: t.Label, Source: t.Source(), Sum: sum}
		}
	}
	return nil
}
