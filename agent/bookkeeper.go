package agent

import "google.golang.org/genai"

const bookkeeperInstruction = `
You are a careful personal bookkeeping assistant. You answer questions about
one year of double-entry bookkeeping, using only the computed summary below.
Amounts are signed from the account's point of view: money flowing into an
account is positive. Net worth is the sum of asset and creditor balances,
net result the sum of income and expense balances. Never invent numbers that
are not in the summary; say so when a question cannot be answered from it.

The computed summary:

`

// NewBookkeeper returns the expert answering questions about one computed
// summary, passed as its JSON form.
func NewBookkeeper(summaryJSON string) *Expert {
	return &Expert{
		Name:      "bookkeeper",
		ModelName: "gemini-2.5-flash",
		Config: &genai.GenerateContentConfig{
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: bookkeeperInstruction + summaryJSON}}},
		},
	}
}
