// Package insights implements the campaign analysis pipeline: CSV ingestion,
// weighted-pattern template classification, and engagement aggregation.
//
// The pipeline is pure — text in, Report out. All I/O (upload handling,
// export file writes) lives with the callers.
package insights

// Row is a single CSV record keyed by lower-cased header name.
// Rows are built once by ParseCSV and never mutated afterwards.
type Row map[string]string

// Classification is the per-email result of template matching.
type Classification struct {
	Type        string `json:"type"`
	Score       int    `json:"score"`
	Description string `json:"description"`
}

// Metrics holds engagement data for one email. The binary flags collapse
// repeated events on the same email (opened 12 times counts once), which
// keeps group rates meaning "share of emails" rather than "events per email".
type Metrics struct {
	Opened  bool `json:"opened"`
	Clicked bool `json:"clicked"`
	Replied bool `json:"replied"`
	Opens   int  `json:"opens"`
	Clicks  int  `json:"clicks"`
	Replies int  `json:"replies"`
}

// SubjectFeatures are simple derived signals from a subject line.
type SubjectFeatures struct {
	Length             int  `json:"length"`
	HasQuestion        bool `json:"hasQuestion"`
	HasPersonalization bool `json:"hasPersonalization"`
	HasNumbers         bool `json:"hasNumbers"`
	HasEmoji           bool `json:"hasEmoji"`
}

// EmailDetail is the per-email record kept inside each template group.
type EmailDetail struct {
	Subject   string  `json:"subject"`
	Body      string  `json:"body"`
	Metrics   Metrics `json:"metrics"`
	SentDate  string  `json:"sentDate"`
	Recipient string  `json:"recipient"`
}

// TemplateGroup accumulates all emails classified into one template.
// Opens/Clicks/Replies here are unique-email counts (binary flags summed),
// never raw event counts.
type TemplateGroup struct {
	Name        string        `json:"name"`
	Description string        `json:"description"`
	Count       int           `json:"count"`
	Opens       int           `json:"opens"`
	Clicks      int           `json:"clicks"`
	Replies     int           `json:"replies"`
	TotalLength int           `json:"totalLength"`
	AvgLength   int           `json:"avgLength"`
	OpenRate    string        `json:"openRate"`
	ClickRate   string        `json:"clickRate"`
	ReplyRate   string        `json:"replyRate"`
	Emails      []EmailDetail `json:"emails"`
}

// SubjectBucket counts opens vs totals for one subject-line cohort.
type SubjectBucket struct {
	Opens int `json:"opens"`
	Total int `json:"total"`
}

// SubjectAnalysis holds the four fixed subject cohorts. Short means a
// subject under 40 characters.
type SubjectAnalysis struct {
	WithQuestion    SubjectBucket `json:"withQuestion"`
	WithoutQuestion SubjectBucket `json:"withoutQuestion"`
	ShortSubject    SubjectBucket `json:"shortSubject"`
	LongSubject     SubjectBucket `json:"longSubject"`
}

// Overall holds dataset-wide totals and rates. Totals are recomputed
// independently of the group sums; every row lands in exactly one group, so
// the two must agree.
type Overall struct {
	TotalEmails  int    `json:"totalEmails"`
	TotalOpens   int    `json:"totalOpens"`
	TotalClicks  int    `json:"totalClicks"`
	TotalReplies int    `json:"totalReplies"`
	OpenRate     string `json:"openRate"`
	ClickRate    string `json:"clickRate"`
	ReplyRate    string `json:"replyRate"`
}

// Report is the final analysis output, immutable once produced.
// Template groups are ordered by count descending (stable for ties).
type Report struct {
	Templates       []TemplateGroup `json:"templateGroups"`
	Overall         Overall         `json:"overall"`
	SubjectAnalysis SubjectAnalysis `json:"subjectAnalysis"`
}
