package insights

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractMetrics(t *testing.T) {
	tests := []struct {
		name string
		row  Row
		want Metrics
	}{
		{
			"plural aliases",
			Row{"opens": "3", "clicks": "1", "replies": "0"},
			Metrics{Opened: true, Clicked: true, Opens: 3, Clicks: 1},
		},
		{
			"past participle aliases",
			Row{"opened": "2", "clicked": "0", "replied": "1"},
			Metrics{Opened: true, Replied: true, Opens: 2, Replies: 1},
		},
		{
			"missing columns default to zero",
			Row{"subject": "Hello"},
			Metrics{},
		},
		{
			"unparsable values default to zero",
			Row{"opens": "yes", "clicks": "n/a", "replies": ""},
			Metrics{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractMetrics(tt.row))
		})
	}
}

// A heavy opener and a single opener contribute the same binary signal.
func TestExtractMetricsBinaryCollapse(t *testing.T) {
	heavy := ExtractMetrics(Row{"opens": "12"})
	single := ExtractMetrics(Row{"opens": "1"})

	assert.True(t, heavy.Opened)
	assert.True(t, single.Opened)
	assert.Equal(t, 12, heavy.Opens)
	assert.Equal(t, 1, single.Opens)
}

func TestExtractSubjectFeatures(t *testing.T) {
	tests := []struct {
		name    string
		subject string
		want    SubjectFeatures
	}{
		{"empty subject", "", SubjectFeatures{}},
		{
			"question",
			"Quick question?",
			SubjectFeatures{Length: 15, HasQuestion: true},
		},
		{
			"personalization merge tag",
			"{first_name}, a note for you",
			SubjectFeatures{Length: 28, HasPersonalization: true},
		},
		{
			"personalization keyword",
			"Your name came up",
			SubjectFeatures{Length: 17, HasPersonalization: true},
		},
		{
			"numbers",
			"3 ways to grow",
			SubjectFeatures{Length: 14, HasNumbers: true},
		},
		{
			"emoji in range",
			"Big news \U0001F600",
			SubjectFeatures{Length: 10, HasEmoji: true},
		},
		{
			"emoji outside range",
			"Launch day \U0001F680",
			SubjectFeatures{Length: 12},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractSubjectFeatures(tt.subject))
		})
	}
}
