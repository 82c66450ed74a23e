package knowledge

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
	"gopkg.in/yaml.v3"
)

// LoadCatalogDir reads every *.yml and *.yaml file under dir (recursively)
// and returns the items they declare. Files must contain a top-level
// `items` list.
func LoadCatalogDir(dir string) ([]Item, error) {
	var items []Item
	for _, pattern := range []string{"**/*.yml", "**/*.yaml"} {
		matches, err := doublestar.FilepathGlob(filepath.Join(dir, pattern))
		if err != nil {
			return nil, fmt.Errorf("globbing catalog dir %s: %w", dir, err)
		}
		for _, path := range matches {
			loaded, err := LoadCatalogFile(path)
			if err != nil {
				return nil, err
			}
			items = append(items, loaded...)
		}
	}
	return items, nil
}

// LoadCatalogFile parses one catalog YAML file.
func LoadCatalogFile(path string) ([]Item, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading catalog file %s: %w", path, err)
	}
	var cf catalogFile
	if err := yaml.Unmarshal(data, &cf); err != nil {
		return nil, fmt.Errorf("parsing catalog file %s: %w", path, err)
	}
	for i := range cf.Items {
		if cf.Items[i].ID == "" {
			return nil, fmt.Errorf("catalog file %s: item %d has no id", path, i)
		}
	}
	return cf.Items, nil
}

// BuiltinCatalog returns the bundled bilingual catalog used when no
// catalog directory is configured.
func BuiltinCatalog() []Item {
	return []Item{
		{
			ID:       "product-nova-en",
			Category: "products", Subcategory: "industrial-arms",
			Title:    "Nova Industrial Arm",
			Content:  "Nova is our flagship six-axis industrial robot arm. It handles payloads up to 25 kg with sub-millimeter repeatability. Nova suits welding, assembly and palletizing lines in manufacturing plants.",
			Language: "en", Priority: 9,
			Tags:           []string{"nova", "robot", "arm", "manufacturing"},
			SearchKeywords: []string{"nova", "robot", "arm", "industrial", "welding", "assembly", "palletizing", "payload"},
			RelatedItems:   []string{"pricing-nova-en", "product-atlas-en"},
		},
		{
			ID:       "product-atlas-en",
			Category: "products", Subcategory: "mobile-robots",
			Title:    "Atlas Mobile Platform",
			Content:  "Atlas is an autonomous mobile robot for warehouse and logistics operations. It carries up to 600 kg, navigates without floor markers, and integrates with common warehouse management systems.",
			Language: "en", Priority: 8,
			Tags:           []string{"atlas", "robot", "mobile", "logistics"},
			SearchKeywords: []string{"atlas", "robot", "mobile", "warehouse", "logistics", "autonomous", "amr"},
			RelatedItems:   []string{"product-nova-en"},
		},
		{
			ID:       "product-vega-en",
			Category: "products", Subcategory: "collaborative",
			Title:    "Vega Collaborative Robot",
			Content:  "Vega is a collaborative robot designed to work safely next to people. Force sensing stops the arm on contact. Vega is popular in electronics assembly, lab automation and light manufacturing.",
			Language: "en", Priority: 7,
			Tags:           []string{"vega", "robot", "cobot", "collaborative"},
			SearchKeywords: []string{"vega", "robot", "cobot", "collaborative", "safe", "assembly", "lab"},
		},
		{
			ID:       "product-orion-en",
			Category: "products", Subcategory: "inspection",
			Title:    "Orion Inspection Drone",
			Content:  "Orion is an indoor inspection drone for construction sites and large facilities. It maps progress, detects structural defects and produces survey reports automatically.",
			Language: "en", Priority: 6,
			Tags:           []string{"orion", "drone", "inspection", "construction"},
			SearchKeywords: []string{"orion", "drone", "inspection", "construction", "survey", "facility"},
		},
		{
			ID:       "product-sirius-en",
			Category: "products", Subcategory: "agriculture",
			Title:    "Sirius Field Robot",
			Content:  "Sirius is an agricultural field robot for precision spraying and crop monitoring. It reduces chemical use and covers up to 40 hectares per day.",
			Language: "en", Priority: 6,
			Tags:           []string{"sirius", "robot", "agriculture", "farming"},
			SearchKeywords: []string{"sirius", "robot", "agriculture", "farming", "spraying", "crop", "field"},
		},
		{
			ID:       "pricing-nova-en",
			Category: "pricing", Subcategory: "products",
			Title:    "Nova Pricing and Plans",
			Content:  "Nova pricing starts at 45,000 USD for the base unit. Leasing plans start at 1,200 USD per month including maintenance. Volume discounts apply from five units.",
			Language: "en", Priority: 10,
			Tags:           []string{"pricing", "nova", "cost"},
			SearchKeywords: []string{"pricing", "price", "cost", "nova", "lease", "leasing", "discount", "plans"},
			RelatedItems:   []string{"product-nova-en"},
		},
		{
			ID:       "pricing-overview-en",
			Category: "pricing", Subcategory: "general",
			Title:    "How Our Pricing Works",
			Content:  "We price every deployment individually based on robot model, fleet size and integration scope. Request a quote and our team responds within one business day.",
			Language: "en", Priority: 5,
			Tags:           []string{"pricing", "quote"},
			SearchKeywords: []string{"pricing", "price", "cost", "quote", "budget"},
		},
		{
			ID:       "company-about-en",
			Category: "company", Subcategory: "about",
			Title:    "About the Company",
			Content:  "We design and build industrial and service robots for manufacturing, logistics, healthcare, retail, education, hospitality, agriculture and construction. Founded in 2014, we operate in twelve countries.",
			Language: "en", Priority: 7,
			Tags:           []string{"company", "about"},
			SearchKeywords: []string{"company", "about", "who", "history", "countries", "industries"},
		},
		{
			ID:       "support-warranty-en",
			Category: "support", Subcategory: "warranty",
			Title:    "Warranty and Support",
			Content:  "Every robot ships with a two-year warranty. Our support team answers around the clock, and on-site engineers are available in all regions we serve. Spare parts ship within 48 hours.",
			Language: "en", Priority: 8,
			Tags:           []string{"support", "warranty", "repair"},
			SearchKeywords: []string{"support", "warranty", "repair", "maintenance", "spare", "parts", "help", "broken"},
		},
		{
			ID:       "demo-booking-en",
			Category: "sales", Subcategory: "demo",
			Title:    "Booking a Demo",
			Content:  "Live demos run at our showrooms and remotely over video. A demo takes about 45 minutes and can be tailored to your industry. Book through the contact form or ask here.",
			Language: "en", Priority: 7,
			Tags:           []string{"demo", "booking", "sales"},
			SearchKeywords: []string{"demo", "demonstration", "trial", "book", "booking", "showroom"},
		},
		{
			ID:       "product-nova-ar",
			Category: "products", Subcategory: "industrial-arms",
			Title:    "ذراع نوفا الصناعية",
			Content:  "نوفا هي ذراعنا الروبوتية الصناعية الرائدة بستة محاور. تتحمل حمولات حتى 25 كجم بدقة تكرار أقل من مليمتر. تناسب نوفا خطوط اللحام والتجميع والتكديس في المصانع.",
			Language: "ar", Priority: 9,
			Tags:           []string{"نوفا", "روبوت", "ذراع", "تصنيع"},
			SearchKeywords: []string{"نوفا", "روبوت", "ذراع", "صناعي", "لحام", "تجميع", "مصنع"},
			RelatedItems:   []string{"pricing-nova-ar"},
		},
		{
			ID:       "pricing-nova-ar",
			Category: "pricing", Subcategory: "products",
			Title:    "أسعار نوفا",
			Content:  "تبدأ أسعار نوفا من 45,000 دولار للوحدة الأساسية. تبدأ خطط التأجير من 1,200 دولار شهريا شاملة الصيانة. تتوفر خصومات الكميات ابتداء من خمس وحدات.",
			Language: "ar", Priority: 10,
			Tags:           []string{"أسعار", "نوفا", "تكلفة"},
			SearchKeywords: []string{"سعر", "أسعار", "تكلفة", "نوفا", "تأجير", "خصم"},
			RelatedItems:   []string{"product-nova-ar"},
		},
		{
			ID:       "company-about-ar",
			Category: "company", Subcategory: "about",
			Title:    "عن الشركة",
			Content:  "نصمم ونصنع روبوتات صناعية وخدمية لقطاعات التصنيع والخدمات اللوجستية والرعاية الصحية والتجزئة والتعليم والضيافة والزراعة والبناء. تأسست الشركة عام 2014 وتعمل في اثنتي عشرة دولة.",
			Language: "ar", Priority: 7,
			Tags:           []string{"شركة", "عن"},
			SearchKeywords: []string{"شركة", "عن", "من", "تاريخ", "قطاعات"},
		},
		{
			ID:       "support-warranty-ar",
			Category: "support", Subcategory: "warranty",
			Title:    "الضمان والدعم",
			Content:  "يأتي كل روبوت بضمان لمدة عامين. يرد فريق الدعم على مدار الساعة، ويتوفر مهندسون ميدانيون في جميع المناطق التي نخدمها. تشحن قطع الغيار خلال 48 ساعة.",
			Language: "ar", Priority: 8,
			Tags:           []string{"دعم", "ضمان", "إصلاح"},
			SearchKeywords: []string{"دعم", "ضمان", "إصلاح", "صيانة", "مساعدة", "عطل"},
		},
	}
}
