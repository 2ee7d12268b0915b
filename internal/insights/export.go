package insights

import (
	"encoding/json"
	"time"
)

// exportDocument is the persisted report shape: a timestamp, the overall
// totals, a condensed per-template summary, and the subject cohorts.
type exportDocument struct {
	GeneratedAt     string           `json:"generatedAt"`
	Overall         Overall          `json:"overall"`
	Templates       []exportTemplate `json:"templates"`
	SubjectAnalysis SubjectAnalysis  `json:"subjectAnalysis"`
}

type exportTemplate struct {
	Name      string `json:"name"`
	Count     int    `json:"count"`
	OpenRate  string `json:"openRate"`
	ClickRate string `json:"clickRate"`
	ReplyRate string `json:"replyRate"`
	AvgLength int    `json:"avgLength"`
}

// ExportJSON serializes a report for download. Pure function: the caller
// supplies the timestamp and owns any file write.
func ExportJSON(rep *Report, generatedAt time.Time) ([]byte, error) {
	doc := exportDocument{
		GeneratedAt:     generatedAt.UTC().Format(time.RFC3339),
		Overall:         rep.Overall,
		Templates:       make([]exportTemplate, 0, len(rep.Templates)),
		SubjectAnalysis: rep.SubjectAnalysis,
	}
	for _, g := range rep.Templates {
		doc.Templates = append(doc.Templates, exportTemplate{
			Name:      g.Name,
			Count:     g.Count,
			OpenRate:  g.OpenRate,
			ClickRate: g.ClickRate,
			ReplyRate: g.ReplyRate,
			AvgLength: g.AvgLength,
		})
	}
	return json.MarshalIndent(doc, "", "  ")
}
