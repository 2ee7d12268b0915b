package insights

import (
	"strings"
	"unicode/utf8"
)

// minBodyLength guards against stray short fragments being counted as emails.
const minBodyLength = 10

// ParseCSV turns raw CSV text into an ordered slice of rows. Quoted fields
// may contain commas, doubled quotes ("" → literal quote), and embedded
// newlines: a physical line ending inside an open quote is joined with the
// next line before re-scanning. Malformed input yields an empty slice, never
// an error — downstream a zero-row analysis is a valid (empty) report.
func ParseCSV(text string) []Row {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	lines := strings.Split(text, "\n")
	if len(lines) < 2 {
		return nil
	}

	headers := make([]string, 0, 8)
	for _, h := range strings.Split(lines[0], ",") {
		headers = append(headers, normalizeHeader(h))
	}

	var rows []Row
	for i := 1; i < len(lines); i++ {
		logical := lines[i]
		if strings.TrimSpace(logical) == "" {
			continue
		}

		fields, complete := splitFields(logical)
		for !complete && i+1 < len(lines) {
			i++
			logical += "\n" + lines[i]
			fields, complete = splitFields(logical)
		}
		if !complete {
			// Unterminated quote at end of input.
			continue
		}

		row := make(Row, len(headers))
		for j, h := range headers {
			if j < len(fields) {
				row[h] = fields[j]
			}
		}
		if keepRow(row) {
			rows = append(rows, row)
		}
	}
	return rows
}

// splitFields splits one logical CSV line on commas, honoring quotes.
// The second return is false when the line ends inside an open quote,
// meaning the record continues on the next physical line.
func splitFields(line string) ([]string, bool) {
	var fields []string
	var cur strings.Builder
	inQuotes := false

	for i := 0; i < len(line); i++ {
		c := line[i]
		switch {
		case c == '"':
			if inQuotes && i+1 < len(line) && line[i+1] == '"' {
				// Escaped quote inside a quoted field.
				cur.WriteByte('"')
				i++
			} else {
				inQuotes = !inQuotes
			}
		case c == ',' && !inQuotes:
			fields = append(fields, cleanField(cur.String()))
			cur.Reset()
		default:
			cur.WriteByte(c)
		}
	}
	if inQuotes {
		return nil, false
	}
	fields = append(fields, cleanField(cur.String()))
	return fields, true
}

// cleanField trims a completed field and strips one layer of surrounding
// double quotes if any survived the scan.
func cleanField(f string) string {
	f = strings.TrimSpace(f)
	if len(f) >= 2 && strings.HasPrefix(f, `"`) && strings.HasSuffix(f, `"`) {
		f = f[1 : len(f)-1]
	}
	return strings.TrimSpace(f)
}

// keepRow decides whether a parsed row represents a real email. A row needs
// at least one of body/subject/recipient, and a present body must be at
// least minBodyLength characters.
func keepRow(row Row) bool {
	body := strings.TrimSpace(row.Body())
	subject := strings.TrimSpace(row.Subject())
	recipient := strings.TrimSpace(row.Recipient())

	if body == "" && subject == "" && recipient == "" {
		return false
	}
	if body != "" && utf8.RuneCountInString(body) < minBodyLength {
		return false
	}
	return true
}
