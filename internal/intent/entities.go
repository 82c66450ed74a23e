package intent

import "strings"

// Entity slot names.
const (
	SlotProduct  = "product"
	SlotIndustry = "industry"
	SlotUrgency  = "urgency"
)

// productAliases maps surface forms to canonical product names. Each
// product line exists once per language; aliases collapse to one value.
var productAliases = map[string]string{
	"nova":   "nova",
	"نوفا":   "nova",
	"atlas":  "atlas",
	"أطلس":   "atlas",
	"اطلس":   "atlas",
	"vega":   "vega",
	"فيغا":   "vega",
	"orion":  "orion",
	"أوريون": "orion",
	"اوريون": "orion",
	"sirius": "sirius",
	"سيريوس": "sirius",
}

// industryAliases maps surface forms to canonical industry tags.
var industryAliases = map[string]string{
	"manufacturing": "manufacturing",
	"factory":       "manufacturing",
	"factories":     "manufacturing",
	"مصنع":          "manufacturing",
	"صناعة":         "manufacturing",
	"logistics":     "logistics",
	"warehouse":     "logistics",
	"warehouses":    "logistics",
	"مستودع":        "logistics",
	"لوجستيات":      "logistics",
	"healthcare":    "healthcare",
	"hospital":      "healthcare",
	"hospitals":     "healthcare",
	"clinic":        "healthcare",
	"مستشفى":        "healthcare",
	"صحة":           "healthcare",
	"retail":        "retail",
	"store":         "retail",
	"stores":        "retail",
	"supermarket":   "retail",
	"متجر":          "retail",
	"تجزئة":         "retail",
	"education":     "education",
	"school":        "education",
	"schools":       "education",
	"university":    "education",
	"مدرسة":         "education",
	"جامعة":         "education",
	"تعليم":         "education",
	"hospitality":   "hospitality",
	"hotel":         "hospitality",
	"hotels":        "hospitality",
	"restaurant":    "hospitality",
	"فندق":          "hospitality",
	"مطعم":          "hospitality",
	"agriculture":   "agriculture",
	"farm":          "agriculture",
	"زراعة":         "agriculture",
	"construction":  "construction",
	"بناء":          "construction",
}

// urgencyMarkers all normalize to the single value "urgent".
var urgencyMarkers = []string{
	"urgent", "urgently", "asap", "immediately", "right away",
	"as soon as possible", "emergency",
	"عاجل", "فورا", "فوراً", "بسرعة", "طارئ",
}

// ExtractEntities scans the normalized input for the three fixed slots.
// The first match wins per slot; a missing slot yields the empty string.
func ExtractEntities(normalized string, tokens []string) map[string]string {
	entities := map[string]string{
		SlotProduct:  "",
		SlotIndustry: "",
		SlotUrgency:  "",
	}

	for _, tok := range tokens {
		clean := strings.Trim(tok, ".,!?؟:;\"'")
		if entities[SlotProduct] == "" {
			if canonical, ok := productAliases[clean]; ok {
				entities[SlotProduct] = canonical
			}
		}
		if entities[SlotIndustry] == "" {
			if canonical, ok := industryAliases[clean]; ok {
				entities[SlotIndustry] = canonical
			}
		}
	}

	for _, marker := range urgencyMarkers {
		if strings.ContainsRune(marker, ' ') {
			if strings.Contains(normalized, marker) {
				entities[SlotUrgency] = "urgent"
				break
			}
			continue
		}
		for _, tok := range tokens {
			if strings.Trim(tok, ".,!?؟:;\"'") == marker {
				entities[SlotUrgency] = "urgent"
				break
			}
		}
		if entities[SlotUrgency] != "" {
			break
		}
	}

	return entities
}
