package report

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tallyhq/tally/internal/model"
)

func item(category string, status model.ItemStatus, required bool, priority model.CategoryPriority) model.ChecklistItem {
	return model.ChecklistItem{
		ID:       "test:" + category,
		Category: category,
		Title:    category,
		Status:   status,
		Required: required,
		Priority: priority,
	}
}

func TestIncomeScore(t *testing.T) {
	tests := []struct {
		name  string
		items []model.ChecklistItem
		want  float64
	}{
		{name: "no items", want: 100},
		{
			name: "no required items",
			items: []model.ChecklistItem{
				item("INTEREST", model.StatusMissing, false, model.PriorityMedium),
			},
			want: 100,
		},
		{
			name: "all required complete",
			items: []model.ChecklistItem{
				item("SALARY", model.StatusComplete, true, model.PriorityHigh),
				item("INTEREST", model.StatusPartial, false, model.PriorityMedium),
			},
			want: 100,
		},
		{
			name: "half of required complete",
			items: []model.ChecklistItem{
				item("SALARY", model.StatusComplete, true, model.PriorityHigh),
				item("RENTAL", model.StatusMissing, true, model.PriorityHigh),
			},
			want: 50,
		},
		{
			name: "required but not applicable is excluded",
			items: []model.ChecklistItem{
				item("SALARY", model.StatusNotApplicable, true, model.PriorityHigh),
			},
			want: 100,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, incomeScore(tt.items), 0.001)
		})
	}
}

func TestDeductionsScore(t *testing.T) {
	cfg := DefaultScoreConfig()

	tests := []struct {
		name  string
		items []model.ChecklistItem
		want  float64
	}{
		{name: "no items", want: 100},
		{
			name: "high priority counts double",
			items: []model.ChecklistItem{
				item("D5", model.StatusComplete, false, model.PriorityHigh),
				item("D9", model.StatusMissing, false, model.PriorityMedium),
				item("D10", model.StatusMissing, false, model.PriorityLow),
			},
			// complete weight 2 over total weight 4
			want: 50,
		},
		{
			name: "flat weights without high priority",
			items: []model.ChecklistItem{
				item("D9", model.StatusComplete, false, model.PriorityMedium),
				item("D10", model.StatusMissing, false, model.PriorityLow),
			},
			want: 50,
		},
		{
			name: "not applicable excluded",
			items: []model.ChecklistItem{
				item("D5", model.StatusNotApplicable, false, model.PriorityHigh),
				item("D9", model.StatusComplete, false, model.PriorityMedium),
			},
			want: 100,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, deductionsScore(cfg, tt.items), 0.001)
		})
	}
}

func TestDocumentsScore(t *testing.T) {
	cfg := DefaultScoreConfig()

	doc := func(p model.DocumentPriority) model.MissingDocument {
		return model.MissingDocument{DocumentType: string(p), Priority: p}
	}

	tests := []struct {
		name string
		docs []model.MissingDocument
		want float64
	}{
		{name: "no missing documents", want: 100},
		{
			name: "one of each priority",
			docs: []model.MissingDocument{doc(model.DocumentHigh), doc(model.DocumentMedium), doc(model.DocumentLow)},
			want: 83, // 100 - 10 - 5 - 2
		},
		{
			name: "clamped at zero",
			docs: func() []model.MissingDocument {
				var out []model.MissingDocument
				for i := 0; i < 15; i++ {
					out = append(out, doc(model.DocumentHigh))
				}
				return out
			}(),
			want: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, documentsScore(cfg, tt.docs), 0.001)
		})
	}
}

func TestOptimizationScore(t *testing.T) {
	s := func(implemented, dismissed bool) model.OptimizationSuggestion {
		return model.OptimizationSuggestion{Implemented: implemented, Dismissed: dismissed}
	}

	tests := []struct {
		name        string
		suggestions []model.OptimizationSuggestion
		want        float64
	}{
		{name: "no suggestions", want: 100},
		{
			name:        "half implemented",
			suggestions: []model.OptimizationSuggestion{s(true, false), s(false, false)},
			want:        50,
		},
		{
			name:        "dismissed out of both sides",
			suggestions: []model.OptimizationSuggestion{s(true, false), s(false, true)},
			want:        100,
		},
		{
			name:        "all dismissed",
			suggestions: []model.OptimizationSuggestion{s(false, true), s(false, true)},
			want:        100,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, optimizationScore(tt.suggestions), 0.001)
		})
	}
}

func TestColorFor(t *testing.T) {
	cfg := DefaultScoreConfig()

	tests := []struct {
		overall float64
		want    model.ColorStatus
	}{
		{overall: 100, want: model.ColorGreen},
		{overall: 80, want: model.ColorGreen}, // lower edge inclusive
		{overall: 79.99, want: model.ColorAmber},
		{overall: 50, want: model.ColorAmber}, // lower edge inclusive
		{overall: 49.99, want: model.ColorRed},
		{overall: 0, want: model.ColorRed},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, colorFor(cfg, tt.overall), "overall %v", tt.overall)
	}
}

func TestCalculateScore_Bounds(t *testing.T) {
	cfg := DefaultScoreConfig()

	statuses := []model.ItemStatus{model.StatusComplete, model.StatusPartial, model.StatusMissing, model.StatusNotApplicable}
	priorities := []model.CategoryPriority{model.PriorityHigh, model.PriorityMedium, model.PriorityLow}

	var income, deductions []model.ChecklistItem
	var docs []model.MissingDocument
	for _, st := range statuses {
		for _, pr := range priorities {
			income = append(income, item("I_"+string(st)+string(pr), st, pr == model.PriorityHigh, pr))
			deductions = append(deductions, item("D_"+string(st)+string(pr), st, false, pr))
		}
	}
	for i := 0; i < 30; i++ {
		docs = append(docs, model.MissingDocument{Priority: model.DocumentHigh})
	}

	score := calculateScore(cfg, income, deductions, docs, []model.OptimizationSuggestion{
		{Implemented: true}, {}, {Dismissed: true},
	})

	for name, v := range map[string]float64{
		"overall":      score.Overall,
		"income":       score.IncomeScore,
		"deductions":   score.DeductionsScore,
		"documents":    score.DocumentsScore,
		"optimization": score.OptimizationScore,
	} {
		assert.GreaterOrEqual(t, v, 0.0, name)
		assert.LessOrEqual(t, v, 100.0, name)
	}
}

func TestCalculateScore_EmptyInputs(t *testing.T) {
	score := calculateScore(DefaultScoreConfig(), nil, nil, nil, nil)

	assert.Equal(t, 100.0, score.IncomeScore)
	assert.Equal(t, 100.0, score.DeductionsScore)
	assert.Equal(t, 100.0, score.DocumentsScore)
	assert.Equal(t, 100.0, score.OptimizationScore)
	assert.Equal(t, 100.0, score.Overall)
	assert.Equal(t, model.ColorGreen, score.ColorStatus)
	assert.Equal(t, 0, score.MissingItemsCount)
}

func TestMissingItemsCount_RequiredOnly(t *testing.T) {
	income := []model.ChecklistItem{
		item("SALARY", model.StatusMissing, true, model.PriorityHigh),
		item("INTEREST", model.StatusMissing, false, model.PriorityMedium),
	}
	deductions := []model.ChecklistItem{
		item("D5", model.StatusMissing, false, model.PriorityHigh),
	}

	assert.Equal(t, 1, missingItemsCount(income, deductions))
}
