package store

import (
	"context"
	"strconv"
	"strings"
	"time"

	"aggregator/internal/models"

	"github.com/lib/pq"
	"github.com/shopspring/decimal"
)

type TransactionStore struct {
	db DB
}

type transactionRow struct {
	ID             string          `db:"id"`
	AccountID      string          `db:"account_id"`
	Type           string          `db:"type"`
	Mode           string          `db:"mode"`
	Amount         decimal.Decimal `db:"amount"`
	CurrentBalance decimal.Decimal `db:"current_balance"`
	TxnID          string          `db:"txn_id"`
	Narration      string          `db:"narration"`
	Reference      string          `db:"reference"`
	Timestamp      time.Time       `db:"transaction_timestamp"`
	ValueDate      time.Time       `db:"value_date"`
	Category       string          `db:"category"`
	MerchantName   string          `db:"merchant_name"`
	MerchantUPI    string          `db:"merchant_upi"`
}

const transactionColumns = `id, account_id, type, mode, amount, current_balance, txn_id, narration, reference,
		transaction_timestamp, value_date, category, merchant_name, merchant_upi`

func (r transactionRow) toModel() models.Transaction {
	return models.Transaction{
		ID:             r.ID,
		AccountID:      r.AccountID,
		Type:           models.TxnType(r.Type),
		Mode:           models.TxnMode(r.Mode),
		Amount:         r.Amount,
		CurrentBalance: r.CurrentBalance,
		TxnID:          r.TxnID,
		Narration:      r.Narration,
		Reference:      r.Reference,
		Timestamp:      r.Timestamp,
		ValueDate:      r.ValueDate,
		Category:       r.Category,
		MerchantName:   r.MerchantName,
		MerchantUPI:    r.MerchantUPI,
	}
}

func NewTransactionStore(db DB) *TransactionStore {
	return &TransactionStore{db: db}
}

const (
	transactionInsertColumns = 15
	// insertChunk keeps one statement well under the 65535 bind parameter limit.
	insertChunk = 1000
)

// InsertBatch stores one account's ledger with one multi-row INSERT per chunk.
// seq keeps the reconciled order for transactions that share a timestamp.
func (s *TransactionStore) InsertBatch(ctx context.Context, tx Execer, txns []models.Transaction) error {
	for start := 0; start < len(txns); start += insertChunk {
		end := min(start+insertChunk, len(txns))
		query, args := insertTransactionsQuery(start, txns[start:end])
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return mapError(err)
		}
	}
	return nil
}

func insertTransactionsQuery(firstSeq int, txns []models.Transaction) (string, []any) {
	var b strings.Builder
	b.WriteString("INSERT INTO account_transactions (seq, " + transactionColumns + ") VALUES ")
	args := make([]any, 0, len(txns)*transactionInsertColumns)
	for i, t := range txns {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString("(")
		for c := 1; c <= transactionInsertColumns; c++ {
			if c > 1 {
				b.WriteString(", ")
			}
			b.WriteString("$" + strconv.Itoa(len(args)+c))
		}
		b.WriteString(")")
		args = append(args,
			firstSeq+i, t.ID, t.AccountID, t.Type, t.Mode, t.Amount, t.CurrentBalance, t.TxnID, t.Narration, t.Reference,
			t.Timestamp, t.ValueDate, t.Category, t.MerchantName, t.MerchantUPI,
		)
	}
	return b.String(), args
}

// ListByAccounts returns the transactions of every given account in ledger order.
func (s *TransactionStore) ListByAccounts(ctx context.Context, accountIDs []string) ([]models.Transaction, error) {
	if len(accountIDs) == 0 {
		return nil, nil
	}
	var rows []transactionRow
	err := s.db.SelectContext(ctx, &rows, `
		SELECT `+transactionColumns+`
		FROM account_transactions
		WHERE account_id = ANY($1)
		ORDER BY account_id, seq
	`, pq.Array(accountIDs))
	if err != nil {
		return nil, err
	}
	txns := make([]models.Transaction, 0, len(rows))
	for _, row := range rows {
		txns = append(txns, row.toModel())
	}
	return txns, nil
}
