package spelling

// DefaultDictionary returns the built-in word list. It covers the chat
// vocabulary the classifier and the knowledge index care about, in both
// supported languages; it is not a general-purpose dictionary.
func DefaultDictionary() []string {
	return append(englishWords, arabicWords...)
}

var englishWords = []string{
	// Greetings and chat basics.
	"hello", "hi", "hey", "good", "morning", "afternoon", "evening",
	"thanks", "thank", "please", "bye", "goodbye", "welcome", "yes", "no",
	"ok", "okay", "help", "question", "answer",

	// Function words common in chat turns.
	"what", "which", "where", "when", "who", "how", "why", "do", "does",
	"can", "could", "would", "should", "is", "are", "the", "a", "an",
	"you", "your", "we", "our", "i", "my", "me", "it", "for", "about",
	"with", "and", "or", "to", "of", "in", "on", "need", "want", "have",
	"tell", "show", "give", "get", "know", "more", "much",

	// Products and domain vocabulary.
	"robot", "robots", "robotic", "robotics", "automation", "automate",
	"arm", "mobile", "humanoid", "amr", "cobot", "gripper", "sensor",
	"nova", "atlas", "vega", "orion", "sirius",
	"sell", "buy", "purchase", "order", "product", "products", "catalog",
	"model", "models", "specification", "specifications", "specs",
	"payload", "battery", "warranty", "delivery", "shipping",

	// Pricing.
	"price", "prices", "pricing", "cost", "costs", "quote", "quotation",
	"budget", "discount", "payment", "lease", "leasing", "rent",

	// Demo / contact / support.
	"demo", "demonstration", "trial", "test", "visit", "meeting",
	"schedule", "book", "appointment", "contact", "call", "phone",
	"email", "support", "issue", "problem", "error", "broken", "repair",
	"maintenance", "install", "installation", "setup", "training",
	"urgent", "urgently", "asap", "immediately", "today", "tomorrow",

	// Industries.
	"industry", "industries", "manufacturing", "factory", "warehouse",
	"logistics", "healthcare", "hospital", "retail", "store", "education",
	"school", "university", "hospitality", "hotel", "restaurant",
	"agriculture", "construction",

	// Company info.
	"company", "team", "office", "location", "address", "hours",
	"partner", "partnership", "career", "careers", "integration",
}

var arabicWords = []string{
	// Greetings.
	"مرحبا", "اهلا", "أهلا", "السلام", "عليكم", "صباح", "مساء", "الخير",
	"شكرا", "عفوا", "وداعا", "نعم", "لا",

	// Chat basics.
	"ما", "ماذا", "اين", "أين", "متى", "كيف", "لماذا", "من", "هل",
	"اريد", "أريد", "احتاج", "أحتاج", "عندي", "لدي", "عن", "في", "مع",

	// Domain vocabulary.
	"روبوت", "روبوتات", "اتمتة", "أتمتة", "ذراع", "متنقل", "مستودع",
	"منتج", "منتجات", "شراء", "بيع", "طلب", "مواصفات", "ضمان", "توصيل",

	// Pricing.
	"سعر", "اسعار", "أسعار", "تكلفة", "عرض", "خصم", "ميزانية", "دفع",

	// Demo / contact / support.
	"تجربة", "عرض", "موعد", "اجتماع", "زيارة", "اتصال", "هاتف", "بريد",
	"دعم", "مشكلة", "عطل", "صيانة", "تركيب", "تدريب",
	"عاجل", "فورا", "فوراً", "اليوم", "غدا",

	// Industries.
	"صناعة", "مصنع", "مستشفى", "صحة", "تجزئة", "متجر", "تعليم", "مدرسة",
	"جامعة", "فندق", "مطعم", "زراعة", "بناء", "لوجستيات",

	// Company info.
	"شركة", "فريق", "مكتب", "موقع", "عنوان", "شراكة", "وظائف",
}
