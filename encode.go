package bookkeeping

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// Document is one year of bookkeeping: the declared accounts and the
// grouping tree. It is constructed once from external input and is
// immutable thereafter; ledger and summary are derived from it.
type Document struct {
	Name      string
	Currency  string
	Accounts  *Accounts
	Groupings []Grouping
}

// Resolve flattens the document's grouping tree into a ledger, loading
// external sources through the given loader.
func (d *Document) Resolve(loader Loader) (*Ledger, error) {
	groupings, err := Resolve(d.Groupings, loader)
	if err != nil {
		return nil, err
	}
	return NewLedger(groupings), nil
}

// Summarize runs the whole pipeline: resolution, validation, aggregation.
// It returns the ledger alongside the summary so callers can render both.
func (d *Document) Summarize(loader Loader) (*Ledger, *Summary, error) {
	ledger, err := d.Resolve(loader)
	if err != nil {
		return nil, nil, err
	}
	if err := Validate(d.Accounts, ledger); err != nil {
		return nil, nil, err
	}
	return ledger, NewSummary(d.Name, d.Currency, d.Accounts, ledger), nil
}

// raw decode targets. Amounts and accounts stay raw so duplicate keys can
// be rejected instead of silently merged by map decoding.

type documentJSON struct {
	Name      string            `json:"name"`
	Currency  string            `json:"currency"`
	Accounts  json.RawMessage   `json:"accounts"`
	Groupings []json.RawMessage `json:"groupings"`
}

type groupingJSON struct {
	Name      string         `json:"name"`
	Transfers []transferJSON `json:"transfers"`
}

type transferJSON struct {
	Label   string            `json:"label"`
	Date    Date              `json:"date"`
	Amounts json.RawMessage   `json:"amounts"`
	Notes   map[string]string `json:"notes"`
}

// DecodeDocument decodes a whole bookkeeping document from JSON. External
// grouping references are kept unresolved; see Document.Resolve.
func DecodeDocument(r io.Reader) (*Document, error) {
	var raw documentJSON
	dec := json.NewDecoder(r)
	dec.UseNumber()
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("could not decode document: %w", err)
	}

	accounts, err := decodeAccounts(raw.Accounts)
	if err != nil {
		return nil, err
	}

	doc := &Document{
		Name:     raw.Name,
		Currency: raw.Currency,
		Accounts: accounts,
	}
	for _, rawGrouping := range raw.Groupings {
		grouping, err := decodeGrouping(rawGrouping)
		if err != nil {
			return nil, err
		}
		doc.Groupings = append(doc.Groupings, grouping)
	}
	return doc, nil
}

// DecodeGrouping decodes a single grouping node: either an inline grouping
// object or a bare string source reference. This is the format of external
// grouping files.
func DecodeGrouping(r io.Reader) (Grouping, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("could not read grouping: %w", err)
	}
	return decodeGrouping(raw)
}

func decodeGrouping(raw json.RawMessage) (Grouping, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return nil, fmt.Errorf("empty grouping")
	}
	// A bare string is a reference to an external source.
	if trimmed[0] == '"' {
		var ref string
		if err := json.Unmarshal(trimmed, &ref); err != nil {
			return nil, fmt.Errorf("could not decode grouping reference: %w", err)
		}
		return SourceRef{Ref: ref}, nil
	}

	var g groupingJSON
	if err := json.Unmarshal(trimmed, &g); err != nil {
		return nil, fmt.Errorf("could not decode grouping: %w", err)
	}
	inlined := Inlined{Name: g.Name}
	for _, t := range g.Transfers {
		amounts, err := decodeAmounts(t.Amounts)
		if err != nil {
			return nil, fmt.Errorf("in transfer %q: %w", t.Label, err)
		}
		inlined.Transfers = append(inlined.Transfers, Transfer{
			Label:   t.Label,
			Date:    t.Date,
			Amounts: amounts,
			Notes:   t.Notes,
		})
	}
	return inlined, nil
}

// decodeAccounts walks the accounts object token by token so a name
// declared twice surfaces as DuplicateAccountError instead of being
// silently collapsed by map decoding.
func decodeAccounts(raw json.RawMessage) (*Accounts, error) {
	accounts := NewAccounts()
	if len(raw) == 0 {
		return accounts, nil
	}
	dec := json.NewDecoder(bytes.NewReader(raw))
	if err := expectDelim(dec, '{'); err != nil {
		return nil, fmt.Errorf("could not decode accounts: %w", err)
	}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("could not decode accounts: %w", err)
		}
		name := tok.(string) // inside an object, keys are strings
		var kind Kind
		if err := dec.Decode(&kind); err != nil {
			return nil, fmt.Errorf("account %q: %w", name, err)
		}
		if err := accounts.Declare(name, kind); err != nil {
			return nil, err
		}
	}
	return accounts, nil
}

// decodeAmounts is the same token walk for a transfer's amounts, rejecting
// duplicate account keys within one transfer.
func decodeAmounts(raw json.RawMessage) (map[string]decimal.Decimal, error) {
	amounts := make(map[string]decimal.Decimal)
	if len(raw) == 0 {
		return amounts, nil
	}
	dec := json.NewDecoder(bytes.NewReader(raw))
	if err := expectDelim(dec, '{'); err != nil {
		return nil, fmt.Errorf("could not decode amounts: %w", err)
	}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("could not decode amounts: %w", err)
		}
		account := tok.(string)
		if _, ok := amounts[account]; ok {
			return nil, fmt.Errorf("account %q appears twice in amounts", account)
		}
		var amount decimal.Decimal
		if err := dec.Decode(&amount); err != nil {
			return nil, fmt.Errorf("amount for %q: %w", account, err)
		}
		amounts[account] = amount
	}
	return amounts, nil
}

func expectDelim(dec *json.Decoder, want json.Delim) error {
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != want {
		return fmt.Errorf("expected %q, got %v", want, tok)
	}
	return nil
}

// MarshalJSON implements the json.Marshaler interface for Inlined.
func (g Inlined) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("name", g.Name)
	transfers := g.Transfers
	if transfers == nil {
		transfers = []Transfer{}
	}
	w.Append("transfers", transfers)
	return w.MarshalJSON()
}

// MarshalJSON implements the json.Marshaler interface for SourceRef: a
// reference is encoded as the bare string.
func (g SourceRef) MarshalJSON() ([]byte, error) {
	return json.Marshal(g.Ref)
}

// MarshalJSON implements the json.Marshaler interface for Document with a
// canonical field order: name, currency, accounts sorted by name,
// groupings in declaration order.
func (d *Document) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("name", d.Name)
	w.Optional("currency", d.Currency)
	var accounts jsonObjectWriter
	for name := range d.Accounts.Names() {
		kind, _ := d.Accounts.KindOf(name)
		accounts.Append(name, kind)
	}
	w.Append("accounts", &accounts)
	groupings := d.Groupings
	if groupings == nil {
		groupings = []Grouping{}
	}
	w.Append("groupings", groupings)
	return w.MarshalJSON()
}

// EncodeDocument writes the document in its canonical, indented form:
// stable field order, lexically sorted account and amount keys. Decoding
// and re-encoding a document is how `bkp fmt` normalizes it.
func EncodeDocument(w io.Writer, d *Document) error {
	raw, err := json.Marshal(d)
	if err != nil {
		return fmt.Errorf("could not encode document: %w", err)
	}
	var buf bytes.Buffer
	if err := json.Indent(&buf, raw, "", "  "); err != nil {
		return fmt.Errorf("could not indent document: %w", err)
	}
	buf.WriteByte('\n')
	_, err = w.Write(buf.Bytes())
	return err
}
