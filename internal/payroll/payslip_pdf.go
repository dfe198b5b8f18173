package payroll

import (
	"bytes"
	"fmt"
	"strings"
	"time"
)

// buildPayslipPDF renders a single-page payslip without an external PDF
// engine. The output is a minimal but valid PDF 1.4 document.
func buildPayslipPDF(breakdown SalaryBreakdownResponse) ([]byte, error) {
	period := time.Date(breakdown.Year, time.Month(breakdown.Month), 1, 0, 0, 0, 0, time.UTC)

	lines := []string{
		"Payslip",
		fmt.Sprintf("Pay period: %s", period.Format("January 2006")),
		fmt.Sprintf("Employee: %s", breakdown.EmployeeID),
		"",
		fmt.Sprintf("Basic: %.2f", breakdown.Basic),
		fmt.Sprintf("HRA: %.2f", breakdown.HRA),
		fmt.Sprintf("Conveyance: %.2f", breakdown.Conveyance),
		fmt.Sprintf("Medical: %.2f", breakdown.Medical),
		fmt.Sprintf("Special allowance: %.2f", breakdown.SpecialAllowance),
		fmt.Sprintf("Gross: %.2f", breakdown.Gross),
		"",
		fmt.Sprintf("PF: %.2f", breakdown.PFEmployee),
		fmt.Sprintf("ESI: %.2f", breakdown.ESIEmployee),
		fmt.Sprintf("Professional tax: %.2f", breakdown.ProfessionalTax),
		fmt.Sprintf("Total deductions: %.2f", breakdown.Deductions),
		"",
		fmt.Sprintf("Net pay: %.2f", breakdown.Net),
	}

	var content strings.Builder
	content.WriteString("BT\n/F1 12 Tf\n14 TL\n50 800 Td\n")
	for i, line := range lines {
		escaped := pdfEscape(line)
		if i == 0 {
			content.WriteString(fmt.Sprintf("(%s) Tj\n", escaped))
			continue
		}
		content.WriteString(fmt.Sprintf("T* (%s) Tj\n", escaped))
	}
	content.WriteString("ET")

	stream := content.String()
	objects := []string{
		"1 0 obj\n<< /Type /Catalog /Pages 2 0 R >>\nendobj\n",
		"2 0 obj\n<< /Type /Pages /Kids [3 0 R] /Count 1 >>\nendobj\n",
		"3 0 obj\n<< /Type /Page /Parent 2 0 R /MediaBox [0 0 595 842] /Resources << /Font << /F1 4 0 R >> >> /Contents 5 0 R >>\nendobj\n",
		"4 0 obj\n<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica >>\nendobj\n",
		fmt.Sprintf("5 0 obj\n<< /Length %d >>\nstream\n%s\nendstream\nendobj\n", len(stream), stream),
	}

	var out bytes.Buffer
	out.WriteString("%PDF-1.4\n")
	offsets := make([]int, 0, len(objects)+1)
	offsets = append(offsets, 0)

	for _, obj := range objects {
		offsets = append(offsets, out.Len())
		out.WriteString(obj)
	}

	xrefStart := out.Len()
	out.WriteString(fmt.Sprintf("xref\n0 %d\n", len(offsets)))
	out.WriteString("0000000000 65535 f \n")
	for i := 1; i < len(offsets); i++ {
		out.WriteString(fmt.Sprintf("%010d 00000 n \n", offsets[i]))
	}
	out.WriteString(fmt.Sprintf("trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF", len(offsets), xrefStart))

	return out.Bytes(), nil
}

func pdfEscape(v string) string {
	replacer := strings.NewReplacer("\\", "\\\\", "(", "\\(", ")", "\\)")
	return replacer.Replace(v)
}
