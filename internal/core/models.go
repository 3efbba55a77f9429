package core

// TransactionRecord is the canonical transaction shape returned to callers.
// The store's surrogate key deliberately does not appear here.
type TransactionRecord struct {
	TransactionHash   string  `json:"transactionHash"`
	TransactionStatus int     `json:"transactionStatus"`
	BlockHash         *string `json:"blockHash"`
	BlockNumber       *uint64 `json:"blockNumber"`
	From              string  `json:"from"`
	To                *string `json:"to"`
	ContractAddress   *string `json:"contractAddress"`
	LogsCount         int     `json:"logsCount"`
	Input             string  `json:"input"`
	Value             string  `json:"value"`
}

// ResolvedTransactions keeps freshly fetched and cache-hit records apart so
// callers and tests can observe which path served each record.
type ResolvedTransactions struct {
	FromChain []TransactionRecord
	FromCache []TransactionRecord
}

// Merged concatenates the two halves, chain-first, for the response payload.
func (r ResolvedTransactions) Merged() []TransactionRecord {
	merged := make([]TransactionRecord, 0, len(r.FromChain)+len(r.FromCache))
	merged = append(merged, r.FromChain...)
	merged = append(merged, r.FromCache...)
	return merged
}

type User struct {
	ID       string
	Username string
}

type AuthMessage struct {
	Username string `json:"username"`
	Password string `json:"password"`
}
