package wage

import "context"

// TransactionRepository is the append-only advance/payment ledger.
// There is deliberately no update or delete: corrections are made by
// appending a compensating row.
type TransactionRepository interface {
	Append(ctx context.Context, tx Transaction) (Transaction, error)
	AppendAll(ctx context.Context, txs []Transaction) ([]Transaction, error)
	List(ctx context.Context, filter TransactionFilter) ([]Transaction, int64, error)
}

// SettlementRepository stores finalized settlements. Append-only.
type SettlementRepository interface {
	Append(ctx context.Context, s Settlement) (Settlement, error)
	GetByID(ctx context.Context, id string) (Settlement, error)
	List(ctx context.Context, filter SettlementFilter) ([]Settlement, int64, error)
}
