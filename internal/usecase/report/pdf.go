package report

import (
	"bytes"
	"fmt"
	"time"

	claimDomain "cmcs-backend/internal/domain/claim"
	reportDomain "cmcs-backend/internal/domain/report"

	"github.com/jung-kurt/gofpdf"
)

const lineHeight = 6

// reportLines assembles the flat-text report layout: header with the
// date range, one block per approved claim (with net pay), one block per
// other-status claim, then summary totals over approved claims only. An
// empty string marks vertical spacing.
func reportLines(approved, other []claimDomain.Claim, start, end time.Time) []string {
	var (
		totalGross    float64
		totalTax      float64
		totalOvertime float64
		totalHours    float64
	)
	for _, c := range approved {
		totalGross += c.TotalAmount
		totalTax += reportDomain.CalculateTax(c.TotalAmount)
		totalHours += c.HoursWorked
		if c.OvertimeHours != nil {
			totalOvertime += *c.OvertimeHours
		}
	}
	totalNet := totalGross - totalTax

	var out []string
	line := func(format string, args ...any) {
		out = append(out, fmt.Sprintf(format, args...))
	}
	blank := func() { out = append(out, "") }

	line("Claim Report")
	line("Date Range: %s to %s", start.Format("2006-01-02"), end.Format("2006-01-02"))
	blank()

	line("Processed Claims (Paid or Approved):")
	if len(approved) > 0 {
		for _, c := range approved {
			line("Claim ID: %d", c.ID)
			line("Lecturer ID: %s", c.LecturerID)
			line("Hours Worked: %.2f", c.HoursWorked)
			ot := 0.0
			if c.OvertimeHours != nil {
				ot = *c.OvertimeHours
			}
			line("Overtime Hours: %.2f", ot)
			line("Gross Pay: R%.2f", c.TotalAmount)
			line("Net Pay: R%.2f", reportDomain.NetPay(c.TotalAmount))
			blank()
		}
	} else {
		line("No processed claims.")
	}
	blank()

	line("Pending or Rejected Claims:")
	if len(other) > 0 {
		for _, c := range other {
			line("Claim ID: %d", c.ID)
			line("Lecturer ID: %s", c.LecturerID)
			line("Status: %s", c.Status)
			line("Gross Pay: R%.2f", c.TotalAmount)
			line("Date Submitted: %s", c.SubmittedAt.Format("2006-01-02"))
			blank()
		}
	} else {
		line("No pending or rejected claims.")
	}
	blank()

	line("Summary for Processed Claims:")
	line("Total Hours Worked: %.2f", totalHours)
	line("Total Overtime Hours: %.2f", totalOvertime)
	line("Total Gross Pay: R%.2f", totalGross)
	line("Total Tax Deductions: R%.2f", totalTax)
	line("Total Net Pay: R%.2f", totalNet)

	return out
}

func renderPDF(approved, other []claimDomain.Claim, start, end time.Time) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(14, 14, 14)
	pdf.AddPage()
	pdf.SetFont("Helvetica", "", 11)

	for _, s := range reportLines(approved, other, start, end) {
		if s == "" {
			pdf.Ln(lineHeight / 2)
			continue
		}
		pdf.CellFormat(0, lineHeight, s, "", 1, "L", false, 0, "")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return buf.Bytes(), nil
}
