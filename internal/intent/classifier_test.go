package intent

import (
	"testing"

	"github.com/ziadkadry99/site-assist/internal/session"
)

func TestClassifyDefaultsToGeneralInquiry(t *testing.T) {
	c := NewClassifier()

	for _, input := range []string{"", "qqqq wwww", "the weather is nice"} {
		got := c.Classify(input, nil)
		if got.Intent != GeneralInquiry {
			t.Errorf("Classify(%q).Intent = %q, want general_inquiry", input, got.Intent)
		}
		if got.Confidence != 0 {
			t.Errorf("Classify(%q).Confidence = %f, want 0", input, got.Confidence)
		}
		if len(got.SuggestedActions) == 0 {
			t.Errorf("Classify(%q) returned no suggested actions", input)
		}
	}
}

func TestClassifyConfidenceInRange(t *testing.T) {
	c := NewClassifier()

	inputs := []string{
		"hello",
		"how much does the nova cost",
		"i need a demo urgently for my hospital",
		"مرحبا أريد روبوت",
		"",
	}
	for _, input := range inputs {
		got := c.Classify(input, nil)
		if got.Confidence < 0 || got.Confidence > 1 {
			t.Errorf("Classify(%q).Confidence = %f, out of [0,1]", input, got.Confidence)
		}
	}
}

func TestClassifyGreeting(t *testing.T) {
	c := NewClassifier()

	got := c.Classify("hello", nil)
	if got.Intent != Greeting {
		t.Errorf("intent = %q, want greeting", got.Intent)
	}
	// Pattern hit plus full-span coverage.
	if got.Confidence != 1.0 {
		t.Errorf("confidence = %f, want 1.0", got.Confidence)
	}
}

func TestClassifyProductBeatsGreeting(t *testing.T) {
	c := NewClassifier()

	// Both a greeting pattern and a product pattern fire; registration
	// order resolves the tie in favor of product_inquiry.
	got := c.Classify("hello what robots do you sell", nil)
	if got.Intent != ProductInquiry {
		t.Errorf("intent = %q, want product_inquiry", got.Intent)
	}
}

func TestClassifyPricing(t *testing.T) {
	c := NewClassifier()

	tests := []struct {
		input string
		want  Intent
	}{
		{"how much does it cost", PricingRequest},
		{"send me a quote", PricingRequest},
		{"كم سعر الروبوت", PricingRequest},
		{"can i get a demo", DemoRequest},
		{"i have an issue that needs repair", SupportRequest},
		{"who are you guys", CompanyInfo},
		{"please call me back", ContactRequest},
		{"goodbye", Farewell},
	}
	for _, tt := range tests {
		got := c.Classify(tt.input, nil)
		if got.Intent != tt.want {
			t.Errorf("Classify(%q).Intent = %q, want %q", tt.input, got.Intent, tt.want)
		}
	}
}

func TestClassifyContinuityBonus(t *testing.T) {
	c := NewClassifier()

	ctx := &session.Context{
		SessionID: "s1",
		Language:  "en",
		Flow:      []string{string(ProductInquiry)},
	}

	without := c.Classify("how much does it cost", nil)
	with := c.Classify("how much does it cost", ctx)

	if with.Confidence <= without.Confidence {
		t.Errorf("continuity bonus missing: %f <= %f", with.Confidence, without.Confidence)
	}
}

func TestClassifyInterestBonus(t *testing.T) {
	c := NewClassifier()

	ctx := &session.Context{
		SessionID: "s1",
		Interests: []string{"nova"},
	}

	without := c.Classify("tell me more about the nova robot", nil)
	with := c.Classify("tell me more about the nova robot", ctx)

	if with.Confidence <= without.Confidence {
		t.Errorf("interest bonus missing: %f <= %f", with.Confidence, without.Confidence)
	}
}

func TestClassifyConfidenceClamped(t *testing.T) {
	c := NewClassifier()

	// Full span + continuity + interest would exceed 1.0 without the clamp.
	ctx := &session.Context{
		Flow:      []string{string(GeneralInquiry)},
		Interests: []string{"robots"},
	}
	got := c.Classify("robots", ctx)
	if got.Confidence > 1.0 {
		t.Errorf("confidence = %f, want <= 1.0", got.Confidence)
	}
}

func TestShortPatternNeedsWordBoundary(t *testing.T) {
	c := NewClassifier()

	// "which" contains "hi" but must not classify as greeting.
	got := c.Classify("which industries", nil)
	if got.Intent == Greeting {
		t.Error("substring 'hi' inside 'which' fired the greeting pattern")
	}
}

func TestExtractEntities(t *testing.T) {
	tests := []struct {
		input    string
		product  string
		industry string
		urgency  string
	}{
		{"tell me about nova", "nova", "", ""},
		{"i run a factory and need automation asap", "", "manufacturing", "urgent"},
		{"atlas for my hospital, urgent!", "atlas", "healthcare", "urgent"},
		{"nothing relevant here", "", "", ""},
		{"أريد روبوت نوفا في مصنع", "nova", "manufacturing", ""},
		{"nova or atlas?", "nova", "", ""}, // first match wins
	}

	for _, tt := range tests {
		got := ExtractEntities(normalize(tt.input))
		if got[SlotProduct] != tt.product {
			t.Errorf("ExtractEntities(%q)[product] = %q, want %q", tt.input, got[SlotProduct], tt.product)
		}
		if got[SlotIndustry] != tt.industry {
			t.Errorf("ExtractEntities(%q)[industry] = %q, want %q", tt.input, got[SlotIndustry], tt.industry)
		}
		if got[SlotUrgency] != tt.urgency {
			t.Errorf("ExtractEntities(%q)[urgency] = %q, want %q", tt.input, got[SlotUrgency], tt.urgency)
		}
	}
}

func TestSuggestedActionsTable(t *testing.T) {
	got := SuggestedActions(PricingRequest)
	if len(got) != 2 || got[0] != "provide_pricing_info" {
		t.Errorf("SuggestedActions(pricing_request) = %v", got)
	}

	// Unknown intents fall back to the permissive default set.
	fallback := SuggestedActions(Intent("bogus"))
	if len(fallback) == 0 {
		t.Error("expected fallback actions for unknown intent")
	}
}
