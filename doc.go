// Package bookkeeping implements a personal double-entry bookkeeping
// calculator over a closed yearly document. It is designed to be local-first
// and auditable: the whole year lives in plain files that can be versioned,
// and every run recomputes the result from scratch.
//
// The core functionalities include:
//   - Account Registry: declared accounts with a closed set of semantic
//     kinds (asset, creditor, income, expense, initial_value).
//   - Period Resolution: groupings of transfers are either inlined in the
//     document or referenced as external files; the tree is flattened
//     depth-first into a single chronological ledger, with cycle detection.
//   - Ledger Validation: every transfer must reference declared accounts
//     and its amounts must sum to exactly zero, enforced with exact decimal
//     arithmetic so money is never created or destroyed.
//   - Summary: running balances per account folded into per-kind totals,
//     net worth (assets + creditors), net result (incomes + expenses) and
//     the initial-value carry-over accounts reported individually.
//
// This package serves as the foundational logic for the `bkp` command-line
// tool; the command layer only parses flags, loads documents and renders
// the structured values produced here.
package bookkeeping
