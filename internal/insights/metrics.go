package insights

// ExtractMetrics pulls engagement counts from a row and derives the binary
// flags. Counts come from the opens/clicks/replies alias sets; anything
// missing or non-numeric is 0.
func ExtractMetrics(row Row) Metrics {
	opens := lookupInt(row, opensAliases)
	clicks := lookupInt(row, clicksAliases)
	replies := lookupInt(row, repliesAliases)

	return Metrics{
		Opens:   opens,
		Clicks:  clicks,
		Replies: replies,
		Opened:  opens > 0,
		Clicked: clicks > 0,
		Replied: replies > 0,
	}
}
