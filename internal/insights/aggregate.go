package insights

import (
	"fmt"
	"math"
	"sort"
	"unicode/utf8"
)

// Analyzer folds classified rows into the final report. The classifier is
// injected so tests can run against a reduced registry.
type Analyzer struct {
	classifier *Classifier
}

// NewAnalyzer creates an analyzer over the given classifier.
func NewAnalyzer(c *Classifier) *Analyzer {
	return &Analyzer{classifier: c}
}

// Analyze runs the single-pass aggregation over parsed rows and finalizes
// rates. Every row lands in exactly one template group. Empty input is a
// valid zero report: totals 0, every rate "0".
func (a *Analyzer) Analyze(rows []Row) *Report {
	groups := make(map[string]*TemplateGroup)
	var order []string

	var subjects SubjectAnalysis
	totalOpens, totalClicks, totalReplies := 0, 0, 0

	for _, row := range rows {
		body := row.Body()
		subject := row.Subject()

		result := a.classifier.Classify(body)
		metrics := ExtractMetrics(row)
		features := ExtractSubjectFeatures(subject)

		g, ok := groups[result.Type]
		if !ok {
			g = &TemplateGroup{Name: result.Type, Description: result.Description}
			groups[result.Type] = g
			order = append(order, result.Type)
		}

		g.Count++
		g.TotalLength += utf8.RuneCountInString(body)
		g.AvgLength = int(math.Round(float64(g.TotalLength) / float64(g.Count)))
		if metrics.Opened {
			g.Opens++
			totalOpens++
		}
		if metrics.Clicked {
			g.Clicks++
			totalClicks++
		}
		if metrics.Replied {
			g.Replies++
			totalReplies++
		}
		g.Emails = append(g.Emails, EmailDetail{
			Subject:   subject,
			Body:      body,
			Metrics:   metrics,
			SentDate:  row.SentDate(),
			Recipient: row.Recipient(),
		})

		bumpBucket := func(b *SubjectBucket) {
			b.Total++
			if metrics.Opened {
				b.Opens++
			}
		}
		if features.HasQuestion {
			bumpBucket(&subjects.WithQuestion)
		} else {
			bumpBucket(&subjects.WithoutQuestion)
		}
		if features.Length < 40 {
			bumpBucket(&subjects.ShortSubject)
		} else {
			bumpBucket(&subjects.LongSubject)
		}
	}

	templates := make([]TemplateGroup, 0, len(order))
	for _, name := range order {
		g := groups[name]
		g.OpenRate = formatRate(g.Opens, g.Count)
		g.ClickRate = formatRate(g.Clicks, g.Count)
		g.ReplyRate = formatRate(g.Replies, g.Count)
		templates = append(templates, *g)
	}
	sort.SliceStable(templates, func(i, j int) bool {
		return templates[i].Count > templates[j].Count
	})

	total := len(rows)
	return &Report{
		Templates: templates,
		Overall: Overall{
			TotalEmails:  total,
			TotalOpens:   totalOpens,
			TotalClicks:  totalClicks,
			TotalReplies: totalReplies,
			OpenRate:     formatRate(totalOpens, total),
			ClickRate:    formatRate(totalClicks, total),
			ReplyRate:    formatRate(totalReplies, total),
		},
		SubjectAnalysis: subjects,
	}
}

// formatRate renders (part/total)×100 with one decimal place. A zero
// denominator yields "0" rather than NaN — empty datasets produce a clean
// zero report instead of a division artifact.
func formatRate(part, total int) string {
	if total == 0 {
		return "0"
	}
	rate := math.Round(float64(part)/float64(total)*1000) / 10
	return fmt.Sprintf("%.1f", rate)
}
