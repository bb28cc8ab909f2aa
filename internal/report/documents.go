package report

import (
	"fmt"

	"github.com/tallyhq/tally/internal/checklist"
	"github.com/tallyhq/tally/internal/model"
)

// missingDocuments derives the prioritized list of missing supporting
// documents from checklist items that are partial or missing. Priority comes
// from the item's required flag and category weight. Document types are
// deduplicated per run; the highest priority wins.
func missingDocuments(items []model.ChecklistItem, catalogue checklist.Catalogue) []model.MissingDocument {
	byType := make(map[string]int) // documentType -> index into out
	var out []model.MissingDocument

	for _, item := range items {
		if item.Status != model.StatusPartial && item.Status != model.StatusMissing {
			continue
		}
		def, ok := catalogue.Lookup(item.Category)
		if !ok || len(def.DocumentTypes) == 0 {
			continue
		}

		priority := documentPriority(item)
		reason := fmt.Sprintf("%s is %s", def.Name, item.Status)

		for _, docType := range def.DocumentTypes {
			if idx, dup := byType[docType]; dup {
				if priorityRank(priority) > priorityRank(out[idx].Priority) {
					out[idx].Priority = priority
					out[idx].DetectionReason = reason
					out[idx].Category = item.Category
				}
				continue
			}
			byType[docType] = len(out)
			out = append(out, model.MissingDocument{
				DocumentType:    docType,
				Category:        item.Category,
				DetectionReason: reason,
				Priority:        priority,
			})
		}
	}

	return out
}

// documentPriority maps an item's required flag and category weight onto a
// document priority: required categories are high, optional low-materiality
// categories are low, everything else is medium.
func documentPriority(item model.ChecklistItem) model.DocumentPriority {
	if item.Required {
		return model.DocumentHigh
	}
	if item.Priority == model.PriorityLow {
		return model.DocumentLow
	}
	return model.DocumentMedium
}

func priorityRank(p model.DocumentPriority) int {
	switch p {
	case model.DocumentHigh:
		return 3
	case model.DocumentMedium:
		return 2
	case model.DocumentLow:
		return 1
	}
	return 0
}
