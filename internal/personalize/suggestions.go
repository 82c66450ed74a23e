package personalize

import (
	"sort"

	"github.com/ziadkadry99/site-assist/internal/intent"
)

const maxSuggestions = 3

// defaultChipPriority is the cutoff applied when neither the intent nor
// the entities select a category.
const defaultChipPriority = 6

// chip is one canned suggestion template.
type chip struct {
	Text     string
	Category string
	Priority int
}

// intentCategories maps each intent to the chip category it unlocks.
var intentCategories = map[intent.Intent]string{
	intent.ProductInquiry: "technical",
	intent.PricingRequest: "pricing",
	intent.DemoRequest:    "sales",
	intent.SupportRequest: "support",
	intent.CompanyInfo:    "company",
	intent.ContactRequest: "contact",
	intent.Greeting:       "general",
	intent.Farewell:       "general",
	intent.GeneralInquiry: "general",
}

var chipCatalog = map[string][]chip{
	"en": {
		{Text: "Show me your robot models", Category: "technical", Priority: 9},
		{Text: "Compare Nova and Vega", Category: "technical", Priority: 7},
		{Text: "What are the technical specifications?", Category: "technical", Priority: 6},
		{Text: "How much does it cost?", Category: "pricing", Priority: 9},
		{Text: "Tell me about leasing plans", Category: "pricing", Priority: 7},
		{Text: "Are there volume discounts?", Category: "pricing", Priority: 5},
		{Text: "Book a demo", Category: "sales", Priority: 9},
		{Text: "Visit a showroom", Category: "sales", Priority: 6},
		{Text: "I need technical support", Category: "support", Priority: 8},
		{Text: "What does the warranty cover?", Category: "support", Priority: 6},
		{Text: "Tell me about your company", Category: "company", Priority: 7},
		{Text: "Which industries do you serve?", Category: "industries", Priority: 8},
		{Text: "Show solutions for my industry", Category: "industries", Priority: 6},
		{Text: "Talk to a sales representative", Category: "contact", Priority: 8},
		{Text: "What can you help me with?", Category: "general", Priority: 7},
		{Text: "Browse popular products", Category: "general", Priority: 6},
	},
	"ar": {
		{Text: "أرني موديلات الروبوتات", Category: "technical", Priority: 9},
		{Text: "قارن بين نوفا وفيغا", Category: "technical", Priority: 7},
		{Text: "ما المواصفات التقنية؟", Category: "technical", Priority: 6},
		{Text: "كم التكلفة؟", Category: "pricing", Priority: 9},
		{Text: "أخبرني عن خطط التأجير", Category: "pricing", Priority: 7},
		{Text: "هل توجد خصومات للكميات؟", Category: "pricing", Priority: 5},
		{Text: "احجز عرضا تجريبيا", Category: "sales", Priority: 9},
		{Text: "زيارة صالة العرض", Category: "sales", Priority: 6},
		{Text: "أحتاج دعما فنيا", Category: "support", Priority: 8},
		{Text: "ماذا يغطي الضمان؟", Category: "support", Priority: 6},
		{Text: "أخبرني عن شركتكم", Category: "company", Priority: 7},
		{Text: "ما القطاعات التي تخدمونها؟", Category: "industries", Priority: 8},
		{Text: "اعرض حلولا لقطاعي", Category: "industries", Priority: 6},
		{Text: "تحدث مع مندوب مبيعات", Category: "contact", Priority: 8},
		{Text: "بماذا يمكنك مساعدتي؟", Category: "general", Priority: 7},
		{Text: "تصفح المنتجات الشائعة", Category: "general", Priority: 6},
	},
}

// selectSuggestions ranks the canned chips for one turn. Chips whose
// category matches the winning intent or the extracted entities are kept;
// when nothing matches, chips at or above the default priority cutoff are
// kept instead. The top three texts are returned by descending priority.
func selectSuggestions(language string, in intent.Intent, entities map[string]string) []string {
	catalog, ok := chipCatalog[language]
	if !ok {
		catalog = chipCatalog["en"]
	}

	wanted := map[string]bool{}
	if cat, ok := intentCategories[in]; ok {
		wanted[cat] = true
	}
	if entities[intent.SlotProduct] != "" {
		wanted["technical"] = true
	}
	if entities[intent.SlotIndustry] != "" {
		wanted["industries"] = true
	}

	var matched []chip
	for _, c := range catalog {
		if wanted[c.Category] {
			matched = append(matched, c)
		}
	}
	if len(matched) == 0 {
		for _, c := range catalog {
			if c.Priority >= defaultChipPriority {
				matched = append(matched, c)
			}
		}
	}

	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].Priority > matched[j].Priority
	})

	n := len(matched)
	if n > maxSuggestions {
		n = maxSuggestions
	}
	texts := make([]string, n)
	for i := 0; i < n; i++ {
		texts[i] = matched[i].Text
	}
	return texts
}
