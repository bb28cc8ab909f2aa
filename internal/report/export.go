package report

import (
	"fmt"
	"strings"

	"github.com/tallyhq/tally/internal/model"
)

// buildExportData renders the two plain-text export surfaces: the checklist
// export for the user and the accountant summary. Dismissed suggestions stay
// in AllSuggestions so the export surface can account for them.
func buildExportData(r *model.CompletenessReport, all []model.OptimizationSuggestion) model.ExportData {
	return model.ExportData{
		Checklist:         renderChecklistExport(r),
		AccountantSummary: renderAccountantSummary(r, all),
		AllSuggestions:    all,
	}
}

// renderChecklistExport enumerates every applicable checklist item with its
// status and outstanding action.
func renderChecklistExport(r *model.CompletenessReport) string {
	var b strings.Builder

	b.WriteString("TAX RETURN CHECKLIST\n")
	fmt.Fprintf(&b, "Completeness: %.0f/100 (%s)\n\n", r.Score.Overall, r.Score.ColorStatus)

	writeSection := func(heading string, items []model.ChecklistItem) {
		b.WriteString(heading + "\n")
		for _, item := range items {
			if item.Status == model.StatusNotApplicable {
				continue
			}
			marker := " "
			if item.Status == model.StatusComplete {
				marker = "x"
			}
			fmt.Fprintf(&b, "[%s] %s — %s", marker, item.Title, item.Status)
			if item.Required {
				b.WriteString(" (required)")
			}
			b.WriteString("\n")
			if item.ActionNeeded != "" {
				fmt.Fprintf(&b, "    Action: %s\n", item.ActionNeeded)
			}
		}
		b.WriteString("\n")
	}

	writeSection("INCOME", r.IncomeChecks)
	writeSection("DEDUCTIONS", r.DeductionChecks)

	if len(r.MissingDocuments) > 0 {
		b.WriteString("MISSING DOCUMENTS\n")
		for _, doc := range r.MissingDocuments {
			fmt.Fprintf(&b, "- %s (%s): %s\n", doc.DocumentType, doc.Priority, doc.DetectionReason)
		}
		b.WriteString("\n")
	}

	return b.String()
}

// renderAccountantSummary enumerates totals by category plus the tax
// estimate, including dismissed suggestions for audit.
func renderAccountantSummary(r *model.CompletenessReport, all []model.OptimizationSuggestion) string {
	var b strings.Builder

	b.WriteString("ACCOUNTANT SUMMARY\n\n")

	b.WriteString("INCOME BY CATEGORY\n")
	for _, item := range r.IncomeChecks {
		if item.Status == model.StatusNotApplicable || item.Status == model.StatusMissing {
			continue
		}
		fmt.Fprintf(&b, "%-24s $%s\n", item.Title, item.Amount.StringFixed(2))
	}
	fmt.Fprintf(&b, "%-24s $%s\n\n", "Total income", r.TaxEstimate.TotalIncome.StringFixed(2))

	b.WriteString("DEDUCTIONS BY CATEGORY\n")
	for _, item := range r.DeductionChecks {
		if item.Status == model.StatusNotApplicable || item.Status == model.StatusMissing {
			continue
		}
		fmt.Fprintf(&b, "%-24s $%s\n", item.Title, item.Amount.StringFixed(2))
	}
	fmt.Fprintf(&b, "%-24s $%s\n\n", "Total deductions", r.TaxEstimate.TotalDeductions.StringFixed(2))

	est := r.TaxEstimate
	b.WriteString("TAX ESTIMATE\n")
	fmt.Fprintf(&b, "%-24s $%s\n", "Taxable income", est.TaxableIncome.StringFixed(2))
	fmt.Fprintf(&b, "%-24s $%s\n", "Tax payable", est.TaxPayable.StringFixed(2))
	fmt.Fprintf(&b, "%-24s $%s\n", "Medicare levy", est.MedicareLevy.StringFixed(2))
	fmt.Fprintf(&b, "%-24s $%s\n", "Tax withheld", est.TaxWithheld.StringFixed(2))
	fmt.Fprintf(&b, "%-24s $%s\n", "Offsets", est.TotalOffsets.StringFixed(2))
	if est.EstimatedRefund.IsPositive() {
		fmt.Fprintf(&b, "%-24s $%s\n", "Estimated refund", est.EstimatedRefund.StringFixed(2))
	} else {
		fmt.Fprintf(&b, "%-24s $%s\n", "Estimated tax owing", est.EstimatedTaxOwing.StringFixed(2))
	}
	b.WriteString("\n")

	if len(all) > 0 {
		b.WriteString("OPTIMIZATION SUGGESTIONS\n")
		for _, s := range all {
			state := "outstanding"
			switch {
			case s.Dismissed:
				state = "dismissed"
			case s.Implemented:
				state = "implemented"
			}
			fmt.Fprintf(&b, "- [%s] %s (%s, est. saving $%s)\n", state, s.Title, s.Level, s.Savings.StringFixed(2))
		}
		b.WriteString("\n")
	}

	fmt.Fprintf(&b, "Risk level: %s\n", r.Risk.Level)
	for _, f := range r.Risk.Factors {
		fmt.Fprintf(&b, "- %s\n", f.Description)
	}

	return b.String()
}
