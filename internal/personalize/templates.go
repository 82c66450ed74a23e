package personalize

import "github.com/ziadkadry99/site-assist/internal/intent"

// greetings are prepended on a session's first greeting turn.
var greetings = map[string]string{
	"en": "Welcome! I'm happy to help you find the right robot for your needs.",
	"ar": "أهلا بك! يسعدني مساعدتك في إيجاد الروبوت المناسب لاحتياجاتك.",
}

// interestRecommendations map an accumulated interest to a one-line
// recommendation, per language.
var interestRecommendations = map[string]map[string]string{
	"en": {
		"nova":         "Since you're interested in Nova, you may want to see its payload and repeatability specs.",
		"atlas":        "Since you're interested in Atlas, a fleet-size estimate can sharpen the ROI picture.",
		"vega":         "Since you're interested in Vega, note that it runs without safety fencing in most setups.",
		"orion":        "Since you're interested in Orion, automated survey reports might be worth a look.",
		"sirius":       "Since you're interested in Sirius, coverage per day depends on field layout, ask me for details.",
		"manufacturing": "For manufacturing lines, Nova and Vega are our most deployed models.",
		"logistics":    "For logistics operations, Atlas integrates with common warehouse management systems.",
		"healthcare":   "For healthcare facilities, our service robots meet hospital hygiene requirements.",
		"retail":       "For retail spaces, compact service models keep aisles clear.",
		"education":    "For education, we offer lab bundles with curriculum material.",
		"hospitality":  "For hospitality, delivery and concierge models are the usual fit.",
		"agriculture":  "For agriculture, Sirius covers spraying and crop monitoring.",
		"construction": "For construction sites, Orion handles inspection and progress mapping.",
	},
	"ar": {
		"nova":         "بما أنك مهتم بنوفا، قد ترغب في الاطلاع على مواصفات الحمولة ودقة التكرار.",
		"atlas":        "بما أنك مهتم بأطلس، يساعد تقدير حجم الأسطول في توضيح العائد على الاستثمار.",
		"vega":         "بما أنك مهتم بفيغا، فهي تعمل دون حواجز أمان في معظم التجهيزات.",
		"orion":        "بما أنك مهتم بأوريون، قد تهمك تقارير المسح الآلية.",
		"sirius":       "بما أنك مهتم بسيريوس، تعتمد التغطية اليومية على تخطيط الحقل، اسألني عن التفاصيل.",
		"manufacturing": "لخطوط التصنيع، نوفا وفيغا هما الأكثر انتشارا لدينا.",
		"logistics":    "للعمليات اللوجستية، يتكامل أطلس مع أنظمة إدارة المستودعات الشائعة.",
		"healthcare":   "للمنشآت الصحية، تلبي روبوتاتنا الخدمية متطلبات النظافة في المستشفيات.",
		"retail":       "لمساحات التجزئة، تحافظ الموديلات المدمجة على ممرات خالية.",
		"education":    "للتعليم، نوفر حزم مختبرات مع مواد تعليمية.",
		"hospitality":  "للضيافة، موديلات التوصيل والاستقبال هي الأنسب عادة.",
		"agriculture":  "للزراعة، يغطي سيريوس الرش ومراقبة المحاصيل.",
		"construction": "لمواقع البناء، يتولى أوريون الفحص ورسم خرائط التقدم.",
	},
}

// followUpLines close the enhanced reply with one contextual question.
var followUpLines = map[string]map[intent.Intent]string{
	"en": {
		intent.ProductInquiry: "Would you like to compare models or see detailed specifications?",
		intent.PricingRequest: "Shall I put together a quote for your setup?",
		intent.DemoRequest:    "Would a remote demo or a showroom visit suit you better?",
		intent.SupportRequest: "Can you share the robot model and a short description of the issue?",
		intent.CompanyInfo:    "Is there a particular industry you'd like to hear about?",
		intent.ContactRequest: "Would you prefer a call or an email from our team?",
		intent.Greeting:       "What brings you here today?",
		intent.Farewell:       "Feel free to come back any time.",
		intent.GeneralInquiry: "Could you tell me a bit more about what you're looking for?",
	},
	"ar": {
		intent.ProductInquiry: "هل تود مقارنة الموديلات أو الاطلاع على المواصفات التفصيلية؟",
		intent.PricingRequest: "هل أجهز لك عرض سعر لتجهيزاتك؟",
		intent.DemoRequest:    "هل يناسبك عرض تجريبي عن بعد أم زيارة صالة العرض؟",
		intent.SupportRequest: "هل يمكنك مشاركة موديل الروبوت ووصف مختصر للمشكلة؟",
		intent.CompanyInfo:    "هل هناك قطاع معين تود معرفة المزيد عنه؟",
		intent.ContactRequest: "هل تفضل اتصالا هاتفيا أم بريدا إلكترونيا من فريقنا؟",
		intent.Greeting:       "كيف يمكنني مساعدتك اليوم؟",
		intent.Farewell:       "يسعدنا عودتك في أي وقت.",
		intent.GeneralInquiry: "هل يمكنك إخباري أكثر عما تبحث عنه؟",
	},
}

// followUpQuestions feed the structured followUpQuestions response field.
var followUpQuestions = map[string]map[intent.Intent][]string{
	"en": {
		intent.ProductInquiry: {"Which industry would the robot work in?", "What payload range do you need?"},
		intent.PricingRequest: {"How many units are you considering?", "Would leasing be an option for you?"},
		intent.DemoRequest:    {"Which model would you like to see?", "When would a demo suit you?"},
		intent.SupportRequest: {"Which robot model is affected?", "When did the issue start?"},
		intent.CompanyInfo:    {"Would you like to see our industry case studies?"},
		intent.ContactRequest: {"What is the best way to reach you?"},
		intent.GeneralInquiry: {"Are you looking for a specific robot or exploring options?"},
	},
	"ar": {
		intent.ProductInquiry: {"في أي قطاع سيعمل الروبوت؟", "ما نطاق الحمولة الذي تحتاجه؟"},
		intent.PricingRequest: {"كم وحدة تفكر في اقتنائها؟", "هل التأجير خيار مناسب لك؟"},
		intent.DemoRequest:    {"أي موديل تود مشاهدته؟", "متى يناسبك العرض التجريبي؟"},
		intent.SupportRequest: {"أي موديل متأثر بالمشكلة؟", "متى بدأت المشكلة؟"},
		intent.CompanyInfo:    {"هل تود الاطلاع على دراسات الحالة حسب القطاع؟"},
		intent.ContactRequest: {"ما أفضل وسيلة للتواصل معك؟"},
		intent.GeneralInquiry: {"هل تبحث عن روبوت محدد أم تستكشف الخيارات؟"},
	},
}

// urgencyNotices are appended when the urgency entity is set.
var urgencyNotices = map[string]string{
	"en": "I understand this is urgent. Our support line answers around the clock and I can connect you right away.",
	"ar": "أتفهم أن الأمر عاجل. خط الدعم لدينا يرد على مدار الساعة ويمكنني توصيلك فورا.",
}

// recommendationReasons back the structured recommendations block.
var recommendationReasons = map[string]struct {
	Reasoning      string
	Implementation string
	ROI            string
}{
	"en": {
		Reasoning:      "Based on the interests you've shared, these models match your use case best.",
		Implementation: "A typical rollout takes four to eight weeks including integration and operator training.",
		ROI:            "Most deployments pay back within 18 to 30 months depending on shift coverage.",
	},
	"ar": {
		Reasoning:      "بناء على اهتماماتك، هذه الموديلات هي الأنسب لحالتك.",
		Implementation: "يستغرق التشغيل المعتاد من أربعة إلى ثمانية أسابيع شاملا التكامل وتدريب المشغلين.",
		ROI:            "تسترد معظم عمليات النشر تكلفتها خلال 18 إلى 30 شهرا حسب تغطية الورديات.",
	},
}

// productInterests are the interests that name a robot model. Interests
// outside this set are industries.
var productInterests = map[string]string{
	"nova":   "Nova",
	"atlas":  "Atlas",
	"vega":   "Vega",
	"orion":  "Orion",
	"sirius": "Sirius",
}
