package insights

import (
	"regexp"
	"strings"
)

// Indicator is one weighted pattern inside a template definition.
type Indicator struct {
	Pattern *regexp.Regexp
	Weight  int
}

// TemplateDef describes one outreach template: an ordered list of weighted
// indicators and the minimum total score the body must reach to qualify.
type TemplateDef struct {
	Name        string
	Description string
	Indicators  []Indicator
	MinScore    int
}

// Classifier scores email bodies against a fixed template registry.
// Classification is deterministic: same body text, same result.
type Classifier struct {
	templates []TemplateDef
}

// NewClassifier returns a classifier over the default template registry.
func NewClassifier() *Classifier {
	return &Classifier{templates: DefaultTemplates()}
}

// NewClassifierWith returns a classifier over a custom registry. Registry
// order matters: ties on score go to the earlier definition.
func NewClassifierWith(templates []TemplateDef) *Classifier {
	return &Classifier{templates: templates}
}

// Templates exposes the read-only registry (for the UI legend endpoint).
func (c *Classifier) Templates() []TemplateDef {
	return c.templates
}

// Fallback labels used when no template definition qualifies.
const (
	TypeEmpty    = "Empty/No Body"
	TypeShort    = "Short & Direct"
	TypeLongForm = "Long-Form Narrative"
	TypeStandard = "Standard Outreach"
)

// signatureMarkers end the scorable portion of a body. Anything at or after
// the earliest marker is signature boilerplate, not template content.
var signatureMarkers = []string{
	"--", "sincerely", "best regards", "regards", "thanks", "thank you", "cheers",
}

var (
	tagRe        = regexp.MustCompile(`<[^>]*>`)
	whitespaceRe = regexp.MustCompile(`\s+`)
)

// Classify scores the body against every template definition and returns the
// best qualifying match, or a length-based fallback when nothing qualifies.
func (c *Classifier) Classify(body string) Classification {
	if strings.TrimSpace(body) == "" {
		return Classification{
			Type:        TypeEmpty,
			Score:       0,
			Description: "No body text to classify",
		}
	}

	text := normalizeBody(body)

	best := -1
	bestScore := 0
	for i, def := range c.templates {
		score := 0
		for _, ind := range def.Indicators {
			if ind.Pattern.MatchString(text) {
				score += ind.Weight
			}
		}
		if score < def.MinScore {
			continue
		}
		// Strictly greater: first-registered wins ties.
		if best < 0 || score > bestScore {
			best = i
			bestScore = score
		}
	}
	if best >= 0 {
		def := c.templates[best]
		return Classification{Type: def.Name, Score: bestScore, Description: def.Description}
	}

	return fallbackByLength(text)
}

// normalizeBody lowercases, strips HTML-like tags, collapses whitespace, and
// truncates at the first signature marker.
func normalizeBody(body string) string {
	text := strings.ToLower(body)
	text = tagRe.ReplaceAllString(text, " ")
	text = whitespaceRe.ReplaceAllString(text, " ")
	text = strings.TrimSpace(text)

	cut := -1
	for _, marker := range signatureMarkers {
		if idx := strings.Index(text, marker); idx >= 0 && (cut < 0 || idx < cut) {
			cut = idx
		}
	}
	if cut >= 0 {
		text = strings.TrimSpace(text[:cut])
	}
	return text
}

// fallbackByLength buckets an unmatched body by word count.
func fallbackByLength(text string) Classification {
	words := len(strings.Fields(text))
	switch {
	case words < 30:
		return Classification{
			Type:        TypeShort,
			Score:       1,
			Description: "Brief message under 30 words, straight to the point",
		}
	case words > 150:
		return Classification{
			Type:        TypeLongForm,
			Score:       1,
			Description: "Story-style message over 150 words",
		}
	default:
		return Classification{
			Type:        TypeStandard,
			Score:       0,
			Description: "Conventional outreach with no dominant template signals",
		}
	}
}

// DefaultTemplates builds the fixed template registry. Order is significant:
// earlier definitions win score ties.
func DefaultTemplates() []TemplateDef {
	return []TemplateDef{
		{
			Name:        "Research-Based Outreach",
			Description: "Opens with something specific about the prospect before any pitch",
			MinScore:    4,
			Indicators: []Indicator{
				{regexp.MustCompile(`noticed (your|that|you)`), 2},
				{regexp.MustCompile(`wondering if`), 2},
				{regexp.MustCompile(`similar (clients|companies|teams)`), 2},
				{regexp.MustCompile(`came across`), 2},
				{regexp.MustCompile(`congrat`), 1},
				{regexp.MustCompile(`your recent`), 1},
			},
		},
		{
			Name:        "Problem+Solution",
			Description: "Names a pain point, then positions the sender as the fix",
			MinScore:    4,
			Indicators: []Indicator{
				{regexp.MustCompile(`(challenge|pain point|struggling)`), 2},
				{regexp.MustCompile(`(solution|solve|solving)`), 2},
				{regexp.MustCompile(`we help`), 2},
				{regexp.MustCompile(`(inefficien|wasting|costly)`), 1},
				{regexp.MustCompile(`imagine if`), 1},
			},
		},
		{
			Name:        "Direct Meeting Request",
			Description: "Asks for time on the calendar with little preamble",
			MinScore:    4,
			Indicators: []Indicator{
				{regexp.MustCompile(`(book|schedule)( a| some)? (call|meeting|demo|time)`), 2},
				{regexp.MustCompile(`open to a (quick )?(call|chat|meeting)`), 2},
				{regexp.MustCompile(`(15|20|30)[- ]minute`), 2},
				{regexp.MustCompile(`calendar`), 2},
				{regexp.MustCompile(`(this|next) week`), 1},
			},
		},
		{
			Name:        "Follow-Up",
			Description: "References an earlier touch and nudges for a response",
			MinScore:    3,
			Indicators: []Indicator{
				{regexp.MustCompile(`follow(ing)? up`), 3},
				{regexp.MustCompile(`circling back`), 3},
				{regexp.MustCompile(`(previous|last|my) (email|message|note)`), 2},
				{regexp.MustCompile(`bump(ing)? this`), 2},
				{regexp.MustCompile(`in case (you|it|my)`), 1},
			},
		},
		{
			Name:        "Value Proposition",
			Description: "Leads with quantified outcomes and benefits",
			MinScore:    4,
			Indicators: []Indicator{
				{regexp.MustCompile(`(increase|boost|improve|double) your`), 2},
				{regexp.MustCompile(`(save|reduce|cut) (time|cost|money)`), 2},
				{regexp.MustCompile(`(roi|return on investment)`), 2},
				{regexp.MustCompile(`[0-9]+%`), 1},
				{regexp.MustCompile(`guarantee`), 1},
			},
		},
		{
			Name:        "Event-Based Outreach",
			Description: "Anchored to a webinar, conference, or other shared event",
			MinScore:    4,
			Indicators: []Indicator{
				{regexp.MustCompile(`(webinar|conference|summit|event)`), 2},
				{regexp.MustCompile(`(met|saw) you at`), 2},
				{regexp.MustCompile(`(register|rsvp|save your (seat|spot))`), 2},
				{regexp.MustCompile(`(join us|invite you)`), 1},
				{regexp.MustCompile(`upcoming`), 1},
			},
		},
		{
			Name:        "Social Proof Heavy",
			Description: "Sells through customer names, case studies, and testimonials",
			MinScore:    4,
			Indicators: []Indicator{
				{regexp.MustCompile(`(clients|companies|teams) like (you|yours)`), 2},
				{regexp.MustCompile(`case stud`), 2},
				{regexp.MustCompile(`(testimonial|customer stor)`), 2},
				{regexp.MustCompile(`trusted by`), 2},
				{regexp.MustCompile(`(fortune 500|industry leader)`), 1},
			},
		},
		{
			Name:        "Question Opener",
			Description: "Hooks the reader with a question before any pitch",
			MinScore:    3,
			Indicators: []Indicator{
				{regexp.MustCompile(`^(quick )?question`), 3},
				{regexp.MustCompile(`have you (ever )?(considered|thought|tried|wondered)`), 2},
				{regexp.MustCompile(`(what if|did you know)`), 2},
				{regexp.MustCompile(`curious (if|whether|how|about)`), 2},
			},
		},
	}
}
