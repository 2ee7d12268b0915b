package insights

import (
	"regexp"
	"strings"
	"testing"
)

func TestClassifyTemplates(t *testing.T) {
	c := NewClassifier()

	tests := []struct {
		name string
		body string
		want string
	}{
		{
			"research based outreach",
			"Noticed your recent growth. Wondering if you face challenges? We were able to help similar clients. Would you be open to a call?",
			"Research-Based Outreach",
		},
		{
			"problem solution",
			"Many teams are struggling with manual reporting. Our solution automates the whole flow. We help operations leads move faster.",
			"Problem+Solution",
		},
		{
			"direct meeting request",
			"Could we schedule a call this week? My calendar is open Wednesday, happy to keep it to a 15-minute chat.",
			"Direct Meeting Request",
		},
		{
			"follow up",
			"Just following up on my last email from Tuesday. Bumping this to the top of your inbox in case it got buried.",
			"Follow-Up",
		},
		{
			"value proposition",
			"We can boost your conversion numbers by 32% and cut costs in the first month. ROI guarantee included.",
			"Value Proposition",
		},
		{
			"event based outreach",
			"We are hosting an upcoming webinar next month. Register now to save your seat, we would love for you to join us.",
			"Event-Based Outreach",
		},
		{
			"social proof heavy",
			"Companies like yours already rely on us. Our latest case study shows the numbers, and the testimonials speak for themselves.",
			"Social Proof Heavy",
		},
		{
			"question opener",
			"Quick question about your data stack. Have you ever considered automating those weekly reports?",
			"Question Opener",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := c.Classify(tt.body)
			if got.Type != tt.want {
				t.Errorf("Classify(...) = %q (score %d), want %q", got.Type, got.Score, tt.want)
			}
		})
	}
}

func TestClassifyEmptyBody(t *testing.T) {
	c := NewClassifier()
	for _, body := range []string{"", "   ", "\n\t"} {
		got := c.Classify(body)
		if got.Type != TypeEmpty || got.Score != 0 {
			t.Errorf("Classify(%q) = %+v, want %s with score 0", body, got, TypeEmpty)
		}
	}
}

func TestClassifyFallbacks(t *testing.T) {
	c := NewClassifier()

	short := c.Classify("Let me know if interested.")
	if short.Type != TypeShort {
		t.Errorf("short body classified as %q, want %q", short.Type, TypeShort)
	}

	long := c.Classify(strings.Repeat("a plain sentence with nothing remarkable inside it at all ", 20))
	if long.Type != TypeLongForm {
		t.Errorf("long body classified as %q, want %q", long.Type, TypeLongForm)
	}

	standard := c.Classify(strings.Repeat("ordinary words carry ordinary meaning across the page today ", 5))
	if standard.Type != TypeStandard {
		t.Errorf("medium body classified as %q, want %q", standard.Type, TypeStandard)
	}
	if standard.Score != 0 {
		t.Errorf("standard fallback score = %d, want 0", standard.Score)
	}
}

func TestClassifySignatureTruncation(t *testing.T) {
	c := NewClassifier()

	// The strong Follow-Up signals sit after the signature marker, so only
	// the short greeting is scored.
	body := "Hello there, short note. Thanks,\nJohn\nfollowing up circling back on my last email"
	got := c.Classify(body)
	if got.Type != TypeShort {
		t.Errorf("Classify with signature = %q, want %q", got.Type, TypeShort)
	}
}

func TestClassifyStripsTags(t *testing.T) {
	c := NewClassifier()
	body := "<p>Noticed your recent launch.</p><br><div>Wondering if similar teams reach out often? We came across your site.</div>"
	got := c.Classify(body)
	if got.Type != "Research-Based Outreach" {
		t.Errorf("HTML body classified as %q, want Research-Based Outreach", got.Type)
	}
}

func TestClassifyDeterministic(t *testing.T) {
	c := NewClassifier()
	body := "Noticed your recent growth. Wondering if you face challenges? We were able to help similar clients."
	a := c.Classify(body)
	b := c.Classify(body)
	if a != b {
		t.Errorf("classifier not deterministic: %+v vs %+v", a, b)
	}
}

func TestClassifyTieBreak(t *testing.T) {
	// Two definitions score identically; the first registered must win.
	defs := []TemplateDef{
		{
			Name:     "First",
			MinScore: 2,
			Indicators: []Indicator{
				{regexp.MustCompile(`alpha`), 2},
			},
		},
		{
			Name:     "Second",
			MinScore: 2,
			Indicators: []Indicator{
				{regexp.MustCompile(`alpha`), 2},
			},
		},
	}
	c := NewClassifierWith(defs)
	got := c.Classify("alpha alpha alpha testing body")
	if got.Type != "First" {
		t.Errorf("tie went to %q, want First", got.Type)
	}
	if got.Score != 2 {
		t.Errorf("score = %d, want 2", got.Score)
	}
}

func TestDefaultTemplatesRegistry(t *testing.T) {
	defs := DefaultTemplates()
	if len(defs) != 8 {
		t.Fatalf("registry has %d templates, want 8", len(defs))
	}
	for _, def := range defs {
		if def.MinScore <= 0 {
			t.Errorf("%s has no minimum score", def.Name)
		}
		if len(def.Indicators) == 0 {
			t.Errorf("%s has no indicators", def.Name)
		}
	}
}
