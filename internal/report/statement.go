// Package report renders account statements and spending charts.
package report

import (
	"errors"
	"fmt"

	"aggregator/internal/models"

	"github.com/xuri/excelize/v2"
)

const statementSheet = "Statement"

var ErrNoData = errors.New("nothing to render")

var statementHeader = []any{
	"Date", "Value Date", "Type", "Mode", "Amount", "Balance",
	"Category", "Narration", "Reference", "UTR",
}

// StatementXLSX writes the account header and its transactions in ledger order.
func StatementXLSX(account models.Account) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", statementSheet); err != nil {
		return nil, err
	}
	meta := [][]any{
		{"Bank", account.FipName},
		{"Account", account.MaskedAccNumber},
		{"Type", string(account.AccountType)},
		{"IFSC", account.IFSC},
		{"Balance", account.CurrentBalance.InexactFloat64()},
	}
	row := 1
	for _, values := range meta {
		if err := setRow(f, row, values); err != nil {
			return nil, err
		}
		row++
	}
	row++
	if err := setRow(f, row, statementHeader); err != nil {
		return nil, err
	}
	for _, txn := range account.Transactions {
		row++
		values := []any{
			txn.Timestamp.Format("2006-01-02 15:04"),
			txn.ValueDate.Format("2006-01-02"),
			string(txn.Type),
			string(txn.Mode),
			txn.Amount.InexactFloat64(),
			txn.CurrentBalance.InexactFloat64(),
			txn.Category,
			txn.Narration,
			txn.Reference,
			txn.TxnID,
		}
		if err := setRow(f, row, values); err != nil {
			return nil, err
		}
	}
	if err := f.SetColWidth(statementSheet, "H", "H", 48); err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write statement: %w", err)
	}
	return buf.Bytes(), nil
}

func setRow(f *excelize.File, row int, values []any) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	return f.SetSheetRow(statementSheet, cell, &values)
}
