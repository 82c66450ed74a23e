package intent

// patterns maps each intent to its case-insensitive substring matchers.
// Both supported languages share one table; Arabic needs no lower-casing
// but passes through strings.ToLower unchanged.
var patterns = map[Intent][]string{
	ProductInquiry: {
		"robot", "robots", "product", "products", "catalog", "model",
		"models", "spec", "specs", "specifications", "payload",
		"automation", "automate", "arm", "cobot", "amr", "humanoid",
		"what do you sell", "what you sell",
		"روبوت", "منتج", "مواصفات", "أتمتة", "اتمتة", "ذراع",
	},
	PricingRequest: {
		"price", "prices", "pricing", "cost", "costs", "how much",
		"quote", "quotation",
		"budget", "discount", "lease", "payment plan",
		"سعر", "أسعار", "اسعار", "تكلفة", "كم", "خصم", "عرض سعر",
	},
	DemoRequest: {
		"demo", "demonstration", "trial", "try it", "see it in action",
		"test drive", "pilot",
		"تجربة", "عرض حي", "تجريب",
	},
	SupportRequest: {
		"support", "help with", "issue", "problem", "error", "broken",
		"not working", "repair", "maintenance", "warranty claim",
		"دعم", "مشكلة", "عطل", "صيانة", "لا يعمل",
	},
	CompanyInfo: {
		"about you", "about your company", "who are you", "your company",
		"your team", "where are you located", "office", "address",
		"working hours", "careers",
		"عن الشركة", "من أنتم", "من انتم", "مكتبكم", "عنوانكم", "وظائف",
	},
	ContactRequest: {
		"contact", "call me", "phone", "email", "reach you", "speak to",
		"talk to someone", "sales rep", "representative",
		"اتصال", "تواصل", "هاتف", "بريد", "أريد التحدث",
	},
	Farewell: {
		"bye", "goodbye", "see you", "thanks, that's all", "that is all",
		"وداعا", "مع السلامة", "إلى اللقاء", "الى اللقاء",
	},
	Greeting: {
		"hello", "hi", "hey", "good morning", "good afternoon",
		"good evening",
		"مرحبا", "أهلا", "اهلا", "السلام عليكم", "صباح الخير", "مساء الخير",
	},
}
