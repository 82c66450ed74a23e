// Package intent classifies chat turns into a closed set of intents and
// extracts product, industry, and urgency entities.
package intent

// Intent is a closed category describing what the visitor wants.
type Intent string

const (
	ProductInquiry Intent = "product_inquiry"
	PricingRequest Intent = "pricing_request"
	DemoRequest    Intent = "demo_request"
	SupportRequest Intent = "support_request"
	CompanyInfo    Intent = "company_info"
	ContactRequest Intent = "contact_request"
	Greeting       Intent = "greeting"
	Farewell       Intent = "farewell"
	// GeneralInquiry is the default when no pattern fires.
	GeneralInquiry Intent = "general_inquiry"
)

// All lists every intent in registration order. The order is the tie-break
// for equal candidate confidence: keyword-bearing intents come before
// greeting so "hello, what robots do you sell" resolves to product_inquiry.
var All = []Intent{
	ProductInquiry,
	PricingRequest,
	DemoRequest,
	SupportRequest,
	CompanyInfo,
	ContactRequest,
	Farewell,
	Greeting,
}

// relatedIntents maps an intent to the previous-turn intents that make it
// more likely, used for the session-continuity confidence bonus.
var relatedIntents = map[Intent][]Intent{
	PricingRequest: {ProductInquiry, DemoRequest},
	DemoRequest:    {ProductInquiry, PricingRequest},
	ProductInquiry: {Greeting, GeneralInquiry},
	ContactRequest: {PricingRequest, DemoRequest, SupportRequest},
	SupportRequest: {SupportRequest},
	Farewell:       {ContactRequest, PricingRequest},
}

// suggestedActions maps each intent to the actions the widget offers next.
var suggestedActions = map[Intent][]string{
	ProductInquiry: {"show_product_details", "schedule_demo"},
	PricingRequest: {"provide_pricing_info", "schedule_demo"},
	DemoRequest:    {"schedule_demo", "collect_contact_info"},
	SupportRequest: {"create_support_ticket", "contact_support"},
	CompanyInfo:    {"share_company_profile", "show_products"},
	ContactRequest: {"collect_contact_info", "schedule_call"},
	Greeting:       {"show_products", "ask_needs"},
	Farewell:       {"end_conversation"},
	GeneralInquiry: {"show_products", "ask_needs", "contact_support"},
}

// SuggestedActions returns the action tags for the given intent.
func SuggestedActions(in Intent) []string {
	if actions, ok := suggestedActions[in]; ok {
		return append([]string(nil), actions...)
	}
	return append([]string(nil), suggestedActions[GeneralInquiry]...)
}

// isRelated reports whether prev is in the related-intent table for in.
func isRelated(in Intent, prev string) bool {
	if prev == "" {
		return false
	}
	for _, r := range relatedIntents[in] {
		if string(r) == prev {
			return true
		}
	}
	return false
}
