package cli

import (
	"fmt"
	"strings"

	"github.com/tallyhq/tally/internal/model"
)

// RenderReport formats a full completeness report for the terminal.
func RenderReport(r *model.CompletenessReport, next *model.NextAction) string {
	var b strings.Builder

	b.WriteString(TitleStyle.Render("Tax Return Completeness"))
	b.WriteString("\n")
	b.WriteString(RenderScore(r.Score))
	b.WriteString("\n\n")

	b.WriteString(renderChecklistSection("Income", r.IncomeChecks))
	b.WriteString(renderChecklistSection("Deductions", r.DeductionChecks))

	if len(r.MissingDocuments) > 0 {
		b.WriteString(BoldStyle.Render("Missing documents"))
		b.WriteString("\n")
		for _, doc := range r.MissingDocuments {
			style := SubtleStyle
			if doc.Priority == model.DocumentHigh {
				style = RedStyle
			}
			fmt.Fprintf(&b, "  %s %s %s\n", DocIcon, doc.DocumentType, style.Render("("+string(doc.Priority)+")"))
			fmt.Fprintf(&b, "     %s\n", SubtleStyle.Render(doc.DetectionReason))
		}
		b.WriteString("\n")
	}

	if len(r.OptimizationSuggestions) > 0 {
		b.WriteString(BoldStyle.Render("Optimization suggestions"))
		b.WriteString("\n")
		for _, s := range r.OptimizationSuggestions {
			marker := " "
			if s.Implemented {
				marker = GreenStyle.Render(CompleteIcon)
			}
			fmt.Fprintf(&b, "  %s %s %s (est. saving $%s)\n",
				BulbIcon, s.Title, marker, s.Savings.StringFixed(2))
		}
		b.WriteString("\n")
	}

	b.WriteString(RenderEstimate(r.TaxEstimate))
	b.WriteString("\n")

	if r.Risk.Level != model.RiskLow {
		style := AmberStyle
		if r.Risk.Level == model.RiskHigh {
			style = RedStyle
		}
		fmt.Fprintf(&b, "%s Risk level: %s\n", WarnIcon, style.Render(string(r.Risk.Level)))
		for _, f := range r.Risk.Factors {
			fmt.Fprintf(&b, "   %s\n", SubtleStyle.Render(f.Description))
		}
		b.WriteString("\n")
	}

	fmt.Fprintf(&b, "%s %s\n", BoldStyle.Render("Next:"), next.Title)
	if mins := int(r.EstimatedCompletionTime.Minutes()); mins > 0 {
		fmt.Fprintf(&b, "%s\n", SubtleStyle.Render(fmt.Sprintf("About %d minutes of work remaining", mins)))
	}

	return b.String()
}

// RenderScore formats the score breakdown with the traffic-light color.
func RenderScore(score model.CompletenessScore) string {
	var b strings.Builder

	style := ColorStyle(score.ColorStatus)
	fmt.Fprintf(&b, "%s  %s\n", style.Render(fmt.Sprintf("%.0f/100", score.Overall)), style.Render(string(score.ColorStatus)))
	fmt.Fprintf(&b, "  income        %5.1f\n", score.IncomeScore)
	fmt.Fprintf(&b, "  deductions    %5.1f\n", score.DeductionsScore)
	fmt.Fprintf(&b, "  documents     %5.1f\n", score.DocumentsScore)
	fmt.Fprintf(&b, "  optimization  %5.1f", score.OptimizationScore)
	if score.MissingItemsCount > 0 {
		fmt.Fprintf(&b, "\n  %s", SubtleStyle.Render(fmt.Sprintf("%d required items missing", score.MissingItemsCount)))
	}

	return b.String()
}

// RenderEstimate formats the tax estimate block.
func RenderEstimate(est model.TaxEstimate) string {
	var b strings.Builder

	b.WriteString(BoldStyle.Render("Tax estimate"))
	b.WriteString("\n")
	fmt.Fprintf(&b, "  taxable income  $%s\n", est.TaxableIncome.StringFixed(2))
	fmt.Fprintf(&b, "  tax payable     $%s\n", est.TaxPayable.StringFixed(2))
	fmt.Fprintf(&b, "  medicare levy   $%s\n", est.MedicareLevy.StringFixed(2))
	if est.EstimatedRefund.IsPositive() {
		fmt.Fprintf(&b, "  %s\n", GreenStyle.Render(fmt.Sprintf("estimated refund $%s", est.EstimatedRefund.StringFixed(2))))
	} else if est.EstimatedTaxOwing.IsPositive() {
		fmt.Fprintf(&b, "  %s\n", AmberStyle.Render(fmt.Sprintf("estimated owing  $%s", est.EstimatedTaxOwing.StringFixed(2))))
	}

	return b.String()
}

func renderChecklistSection(heading string, items []model.ChecklistItem) string {
	var b strings.Builder

	b.WriteString(BoldStyle.Render(heading))
	b.WriteString("\n")
	shown := 0
	for _, item := range items {
		if item.Status == model.StatusNotApplicable {
			continue
		}
		shown++
		fmt.Fprintf(&b, "  %s %s", StatusIcon(item.Status), item.Title)
		if item.Required {
			b.WriteString(SubtleStyle.Render(" (required)"))
		}
		if item.Amount.IsPositive() {
			fmt.Fprintf(&b, "  $%s", item.Amount.StringFixed(2))
		}
		b.WriteString("\n")
		if item.ActionNeeded != "" {
			fmt.Fprintf(&b, "     %s\n", SubtleStyle.Render(item.ActionNeeded))
		}
	}
	if shown == 0 {
		b.WriteString(SubtleStyle.Render("  nothing applicable"))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	return b.String()
}
