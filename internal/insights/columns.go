package insights

import (
	"strconv"
	"strings"
)

// Header lookups are normalized to lower case everywhere: ParseCSV lowercases
// header tokens once, and every accessor goes through these alias lists. Real
// exports vary wildly in header casing and naming ("Body", "Email Body",
// "content"), so each logical field carries all the raw names seen in the wild.
var (
	bodyAliases      = []string{"body", "email body", "content", "message"}
	subjectAliases   = []string{"subject", "subject line", "subject_line"}
	recipientAliases = []string{"to", "recipient", "email"}
	sentDateAliases  = []string{"date", "sent date", "sent_date", "sent"}

	opensAliases   = []string{"opens", "opened"}
	clicksAliases  = []string{"clicks", "clicked"}
	repliesAliases = []string{"replies", "replied", "responses"}
)

// normalizeHeader lowercases a raw header token, trims it, and strips one
// layer of surrounding double quotes.
func normalizeHeader(h string) string {
	h = strings.TrimSpace(h)
	h = strings.TrimPrefix(h, `"`)
	h = strings.TrimSuffix(h, `"`)
	return strings.ToLower(strings.TrimSpace(h))
}

// lookup returns the first non-empty value for any of the given aliases.
func lookup(row Row, aliases []string) string {
	for _, a := range aliases {
		if v, ok := row[a]; ok && strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}

// lookupInt parses the first alias value as an integer.
// Missing or unparsable values are 0, never an error.
func lookupInt(row Row, aliases []string) int {
	for _, a := range aliases {
		v, ok := row[a]
		if !ok {
			continue
		}
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			continue
		}
		return n
	}
	return 0
}

// Body returns the email body via alias lookup.
func (r Row) Body() string { return lookup(r, bodyAliases) }

// Subject returns the subject line via alias lookup.
func (r Row) Subject() string { return lookup(r, subjectAliases) }

// Recipient returns the recipient address via alias lookup.
func (r Row) Recipient() string { return lookup(r, recipientAliases) }

// SentDate returns the send date via alias lookup.
func (r Row) SentDate() string { return lookup(r, sentDateAliases) }
