package report

import (
	"context"
	"fmt"
	"io"

	"github.com/agrovin/farmops-backend-go/internal/domain/wage"
	gofpdf "github.com/jung-kurt/gofpdf/v2"
	"github.com/xuri/excelize/v2"
)

// ReportService renders wage history as downloadable documents. It reads
// through the same repositories the wage service writes, so exports always
// reflect the committed ledger.
type ReportService struct {
	settlementRepo wage.SettlementRepository
	txRepo         wage.TransactionRepository
}

func NewReportService(settlementRepo wage.SettlementRepository, txRepo wage.TransactionRepository) *ReportService {
	return &ReportService{settlementRepo: settlementRepo, txRepo: txRepo}
}

// exportPageSize bounds one export. Large since exports are paged
// internally, not by the caller.
const exportPageSize = 10000

// ExportWageHistoryXLSX writes a two-sheet workbook: finalized
// settlements and the raw transaction ledger, both restricted by the
// same worker/farm/date filters.
func (s *ReportService) ExportWageHistoryXLSX(ctx context.Context, filter wage.SettlementFilter, w io.Writer) error {
	settlements, _, err := s.settlementRepo.List(ctx, wage.SettlementFilter{
		WorkerID:  filter.WorkerID,
		FarmID:    filter.FarmID,
		StartDate: filter.StartDate,
		EndDate:   filter.EndDate,
		Page:      1,
		Limit:     exportPageSize,
	})
	if err != nil {
		return fmt.Errorf("failed to load settlements: %w", err)
	}

	txs, _, err := s.txRepo.List(ctx, wage.TransactionFilter{
		WorkerID:  filter.WorkerID,
		FarmID:    filter.FarmID,
		StartDate: filter.StartDate,
		EndDate:   filter.EndDate,
		Page:      1,
		Limit:     exportPageSize,
	})
	if err != nil {
		return fmt.Errorf("failed to load transactions: %w", err)
	}

	f := excelize.NewFile()
	defer f.Close()

	settlementSheet := "Settlements"
	f.SetSheetName("Sheet1", settlementSheet)

	headers := []string{"Worker", "Farm", "Period Start", "Period End", "Days Worked", "Gross", "Advance Deducted", "Net Payment", "Notes"}
	for i, header := range headers {
		cell := fmt.Sprintf("%c1", 'A'+i)
		f.SetCellValue(settlementSheet, cell, header)
	}

	rowNum := 2
	for _, st := range settlements {
		workerName := st.WorkerID
		if st.WorkerName != nil {
			workerName = *st.WorkerName
		}
		farmRef := ""
		if st.FarmID != nil {
			farmRef = *st.FarmID
		}
		notes := ""
		if st.Notes != nil {
			notes = *st.Notes
		}

		f.SetCellValue(settlementSheet, fmt.Sprintf("A%d", rowNum), workerName)
		f.SetCellValue(settlementSheet, fmt.Sprintf("B%d", rowNum), farmRef)
		f.SetCellValue(settlementSheet, fmt.Sprintf("C%d", rowNum), st.PeriodStart.Format("2006-01-02"))
		f.SetCellValue(settlementSheet, fmt.Sprintf("D%d", rowNum), st.PeriodEnd.Format("2006-01-02"))
		f.SetCellValue(settlementSheet, fmt.Sprintf("E%d", rowNum), st.DaysWorked.String())
		f.SetCellValue(settlementSheet, fmt.Sprintf("F%d", rowNum), st.GrossAmount.String())
		f.SetCellValue(settlementSheet, fmt.Sprintf("G%d", rowNum), st.AdvanceDeducted.String())
		f.SetCellValue(settlementSheet, fmt.Sprintf("H%d", rowNum), st.NetPayment.String())
		f.SetCellValue(settlementSheet, fmt.Sprintf("I%d", rowNum), notes)
		rowNum++
	}

	ledgerSheet := "Ledger"
	if _, err := f.NewSheet(ledgerSheet); err != nil {
		return fmt.Errorf("failed to create ledger sheet: %w", err)
	}

	ledgerHeaders := []string{"Date", "Worker", "Farm", "Type", "Amount", "Notes"}
	for i, header := range ledgerHeaders {
		cell := fmt.Sprintf("%c1", 'A'+i)
		f.SetCellValue(ledgerSheet, cell, header)
	}

	rowNum = 2
	for _, tx := range txs {
		notes := ""
		if tx.Notes != nil {
			notes = *tx.Notes
		}

		f.SetCellValue(ledgerSheet, fmt.Sprintf("A%d", rowNum), tx.Date.Format("2006-01-02"))
		f.SetCellValue(ledgerSheet, fmt.Sprintf("B%d", rowNum), tx.WorkerID)
		f.SetCellValue(ledgerSheet, fmt.Sprintf("C%d", rowNum), tx.FarmID)
		f.SetCellValue(ledgerSheet, fmt.Sprintf("D%d", rowNum), string(tx.Type))
		f.SetCellValue(ledgerSheet, fmt.Sprintf("E%d", rowNum), tx.Amount.String())
		f.SetCellValue(ledgerSheet, fmt.Sprintf("F%d", rowNum), notes)
		rowNum++
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

// SettlementReceiptPDF renders one settlement as a printable receipt.
func (s *ReportService) SettlementReceiptPDF(ctx context.Context, settlementID string, w io.Writer) error {
	st, err := s.settlementRepo.GetByID(ctx, settlementID)
	if err != nil {
		return err
	}

	workerName := st.WorkerID
	if st.WorkerName != nil {
		workerName = *st.WorkerName
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, "Wage Settlement Receipt")
	pdf.Ln(14)

	pdf.SetFont("Helvetica", "", 11)
	line := func(label, value string) {
		pdf.SetFont("Helvetica", "B", 11)
		pdf.CellFormat(55, 8, label, "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 11)
		pdf.CellFormat(0, 8, value, "", 1, "L", false, 0, "")
	}

	line("Settlement ID", st.ID)
	line("Worker", workerName)
	if st.FarmID != nil {
		line("Farm", *st.FarmID)
	}
	line("Period", fmt.Sprintf("%s to %s", st.PeriodStart.Format("2006-01-02"), st.PeriodEnd.Format("2006-01-02")))
	line("Days worked", st.DaysWorked.String())
	line("Gross amount", st.GrossAmount.String())
	line("Advance deducted", st.AdvanceDeducted.String())

	pdf.Ln(4)
	pdf.SetFont("Helvetica", "B", 13)
	pdf.CellFormat(55, 10, "Net payment", "T", 0, "L", false, 0, "")
	pdf.CellFormat(0, 10, st.NetPayment.String(), "T", 1, "L", false, 0, "")

	if st.Notes != nil && *st.Notes != "" {
		pdf.Ln(4)
		pdf.SetFont("Helvetica", "I", 10)
		pdf.MultiCell(0, 6, fmt.Sprintf("Notes: %s", *st.Notes), "", "L", false)
	}

	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 9)
	pdf.Cell(0, 6, fmt.Sprintf("Issued %s", st.CreatedAt.Format("2006-01-02")))

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("failed to render receipt: %w", err)
	}
	return nil
}
