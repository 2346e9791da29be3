package script

import (
	"fmt"
	"strings"
)

// Static template data for the deterministic composer. Templates are
// immutable; a language-appropriate pool is sampled at compose time.
// Placeholders: {topic}, {topic_visual}, {tip}, {common_mistake}.

// TemplateScene is one (timecode, visual, audio) triple with placeholders.
type TemplateScene struct {
	Timecode string
	Visual   string
	Audio    string
}

// HookTemplate is a named opener pattern plus its full scene structure.
type HookTemplate struct {
	Pattern   string
	Opener    string
	Structure []TemplateScene
}

var HookTemplatesEN = []HookTemplate{
	{
		Pattern: "pattern_interrupt",
		Opener:  "Stop scrolling — this changes everything about {topic}",
		Structure: []TemplateScene{
			{"0-2s", "Person looking surprised at their phone about {topic}", `Stop scrolling — this changes everything about {topic}`},
			{"2-4s", "{topic_visual}", `"Most people get {topic} completely wrong"`},
			{"4-7s", "Charts and statistics about {topic} results", `"Here's what actually works — and nobody talks about it"`},
			{"7-10s", "Person demonstrating {topic} step by step", `"The secret is surprisingly simple — {tip}"`},
			{"10-13s", "Impressive {topic} transformation and results", `"Once you try this, you'll never go back"`},
			{"13-15s", "Motivated person smiling and pointing at camera", `"Save this before it disappears — share with someone who needs it"`},
		},
	},
	{
		Pattern: "negative_frame",
		Opener:  "Stop doing this with {topic} — seriously",
		Structure: []TemplateScene{
			{"0-2s", "Person shaking head in warning about {topic}", `"Stop doing this with {topic} — seriously"`},
			{"2-5s", "Person making a common {topic} mistake", `"Everyone thinks {common_mistake} — but it's dead wrong"`},
			{"5-8s", "Person showing the correct {topic} approach", `"Instead, try this — {tip}"`},
			{"8-11s", "Clear {topic} results and proof of improvement", `"The difference is night and day"`},
			{"11-13s", "Side by side comparison of {topic} methods", `"Which side are you on?"`},
			{"13-15s", "Person confidently speaking about {topic} tips", `"Follow for more {topic} secrets you won't find anywhere else"`},
		},
	},
	{
		Pattern: "curiosity_gap",
		Opener:  "I just discovered something about {topic} that blew my mind",
		Structure: []TemplateScene{
			{"0-2s", "Person with amazed expression discovering {topic}", `"I just discovered something about {topic} that blew my mind"`},
			{"2-5s", "{topic_visual} from a new perspective", `"I've been doing {topic} for years and NEVER knew this"`},
			{"5-8s", "Detailed view of {topic} with visual proof", `"Turns out — {tip}"`},
			{"8-11s", "Hands-on {topic} demonstration in practice", `"Here's exactly how to use it"`},
			{"11-13s", "Happy person showing {topic} success results", `"This alone saved me so much time and effort"`},
			{"13-15s", "Person sharing and bookmarking {topic} content", `"Bookmark this — you'll thank me later"`},
		},
	},
	{
		Pattern: "question_hook",
		Opener:  "Why does nobody talk about this {topic} trick?",
		Structure: []TemplateScene{
			{"0-2s", "Confused person thinking about {topic}", `"Why does nobody talk about this {topic} trick?"`},
			{"2-5s", "Person struggling with wrong {topic} approach", `"I tried everything — nothing worked until this"`},
			{"5-8s", "Exciting {topic} discovery revealed on screen", `"The answer was {tip} all along"`},
			{"8-11s", "Clear step by step {topic} tutorial", `"Here's exactly what to do — step by step"`},
			{"11-13s", "Successful {topic} transformation moment", `"And just like that — game changer"`},
			{"13-15s", "Person engaging with audience about {topic}", `"Did you know this? Comment below — I'll reply"`},
		},
	},
}

var HookTemplatesAR = []HookTemplate{
	{
		Pattern: "pattern_interrupt",
		Opener:  "توقف — هذا يغير كل شيء عن {topic}",
		Structure: []TemplateScene{
			{"0-2s", "شخص متفاجئ ينظر لهاتفه عن {topic}", `"توقف — هذا يغير كل شيء عن {topic}"`},
			{"2-4s", "{topic_visual}", `"أغلب الناس يفهمون {topic} بشكل خاطئ تماماً"`},
			{"4-7s", "إحصائيات ونتائج عن {topic}", `"هذا اللي فعلاً يشتغل — وما حد يتكلم عنه"`},
			{"7-10s", "شخص يشرح {topic} خطوة بخطوة", `"السر بسيط جداً — {tip}"`},
			{"10-13s", "نتائج مبهرة وتحول في {topic}", `"لما تجرب هالشي، ما راح ترجع للطريقة القديمة"`},
			{"13-15s", "شخص متحمس يتكلم للكاميرا", `"احفظ هالمقطع وشاركه مع أحد يحتاجه"`},
		},
	},
	{
		Pattern: "negative_frame",
		Opener:  "لا تسوي كذا مع {topic} — بجد",
		Structure: []TemplateScene{
			{"0-2s", "شخص يحذر عن {topic}", `"لا تسوي كذا مع {topic} — بجد"`},
			{"2-5s", "شخص يسوي خطأ شائع في {topic}", `"الكل يفكر إن {common_mistake} — وهذا غلط"`},
			{"5-8s", "شخص يوضح الطريقة الصحيحة لـ{topic}", `"بدال كذا، جرب هالشي — {tip}"`},
			{"8-11s", "نتائج واضحة وتحسن في {topic}", `"الفرق كبير جداً"`},
			{"11-13s", "مقارنة بين الطريقة الغلط والصح", `"أنت في أي فريق؟"`},
			{"13-15s", "شخص يتكلم بثقة عن نصائح {topic}", `"تابعني لأسرار {topic} ما تلقاها بأي مكان ثاني"`},
		},
	},
	{
		Pattern: "curiosity_gap",
		Opener:  "اكتشفت شي عن {topic} صدمني",
		Structure: []TemplateScene{
			{"0-2s", "شخص مندهش يكتشف شي عن {topic}", `"اكتشفت شي عن {topic} صدمني"`},
			{"2-5s", "{topic_visual} من زاوية جديدة", `"أسوي {topic} من سنين وما عمري عرفت هالشي"`},
			{"5-8s", "تفاصيل {topic} مع إثبات واضح", `"طلع إن — {tip}"`},
			{"8-11s", "تطبيق عملي لـ{topic}", `"هذي بالضبط الطريقة"`},
			{"11-13s", "شخص سعيد بنتائج {topic}", `"هالشي الواحد وفر عليّ وقت وجهد كثير"`},
			{"13-15s", "شخص يشارك محتوى {topic}", `"احفظ هالمقطع — بتشكرني بعدين"`},
		},
	},
	{
		Pattern: "question_hook",
		Opener:  "ليش ما أحد يتكلم عن هالحيلة في {topic}؟",
		Structure: []TemplateScene{
			{"0-2s", "شخص محتار يفكر في {topic}", `"ليش ما أحد يتكلم عن هالحيلة في {topic}؟"`},
			{"2-5s", "شخص يعاني مع {topic} بطريقة خاطئة", `"جربت كل شي — ما نفع شي إلا هذا"`},
			{"5-8s", "اكتشاف مثير في {topic}", `"الجواب كان {tip} من البداية"`},
			{"8-11s", "شرح خطوة بخطوة لـ{topic}", `"هذي بالضبط الخطوات — وحدة وحدة"`},
			{"11-13s", "لحظة نجاح وتحول في {topic}", `"وكذا — تغير كل شي"`},
			{"13-15s", "شخص يتفاعل مع الجمهور عن {topic}", `"كنت تعرف هالشي؟ علق تحت — بارد عليك"`},
		},
	},
}

// DefaultCategory is the bucket used when no keyword table matches.
const DefaultCategory = "default"

var TopicTipsEN = map[string][]string{
	"default": {
		"focusing on the 20% that actually moves the needle",
		"building one small habit every single week",
		"automating the boring stuff so you can focus on what matters",
	},
	"productivity": {
		"time-blocking your deep work in 90-minute sprints",
		"the two-minute rule — if it takes less than 2 minutes, do it now",
		"batching similar tasks together to cut context-switching",
	},
	"fitness": {
		"progressive overload — increase weight by just 2.5% each week",
		"eating protein within 30 minutes of your workout",
		"walking 10,000 steps daily — the most underrated fat-loss hack",
	},
	"money": {
		"paying yourself first — automate 20% of income to savings",
		"the 50/30/20 budgeting rule that actually sticks",
		"starting a micro side-hustle with zero startup cost",
	},
	"cooking": {
		"mise en place — prep all ingredients before you start cooking",
		"using high heat for the perfect sear on protein",
		"one-pan meals that taste gourmet but take 15 minutes",
	},
	"travel": {
		"booking flights on Tuesday at 3 PM for the cheapest prices",
		"using Google Flights price alerts to save hundreds",
		"packing cubes — the travel hack that changes everything",
	},
	"ai": {
		"using AI to automate repetitive tasks and save 10+ hours per week",
		"prompt engineering — the exact words that get better AI results",
		"stacking free AI tools to replace expensive software",
	},
	"education": {
		"breaking complex concepts into simple visual diagrams",
		"using real-world examples to make abstract ideas click",
		"the Feynman technique — explaining it simply to understand it deeply",
	},
	"philosophy": {
		"Stoic journaling for 5 minutes every morning",
		"the circle of control — focus only on what you can change",
		"memento mori — using mortality as motivation, not fear",
	},
}

var TopicTipsAR = map[string][]string{
	"default": {
		"ركز على الـ20% اللي فعلاً تحرك الأمور",
		"ابني عادة صغيرة كل أسبوع",
		"أتمت الأشياء المملة عشان تركز على المهم",
	},
	"education": {
		"حول المفاهيم المعقدة لرسومات بسيطة وواضحة",
		"استخدم أمثلة من الواقع عشان الفكرة توصل",
		"تقنية فاينمان — اشرحها ببساطة عشان تفهمها بعمق",
	},
}

var CommonMistakesEN = map[string]string{
	"default":      "following generic advice without adapting it",
	"productivity": "multitasking makes you productive",
	"fitness":      "more cardio equals more fat loss",
	"money":        "saving what's left over instead of paying yourself first",
	"cooking":      "cooking on high heat to save time",
	"travel":       "booking last minute gets you the best deals",
	"ai":           "AI will replace all human creativity",
	"education":    "memorizing without understanding the concept",
	"philosophy":   "philosophy is just abstract thinking with no real-world use",
}

var CommonMistakesAR = map[string]string{
	"default":   "تتبع نصائح عامة بدون ما تعدلها على وضعك",
	"education": "الحفظ بدون فهم المفهوم",
}

// Domain-specific vocabularies checked before the generic category buckets.
var mathWords = []string{
	"math", "circle", "triangle", "geometry", "algebra", "calculus",
	"equation", "formula", "circumference", "radius", "diameter",
	"angle", "fraction", "pi", "area", "volume", "arithmetic",
	"percentage", "quadratic", "polynomial", "number",
}

var scienceWords = []string{
	"physics", "chemistry", "biology", "atom", "molecule",
	"experiment", "gravity", "energy", "cell", "dna",
	"evolution", "quantum", "electron", "force", "science",
}

// CategoryKeywords maps each category to its trigger words. Checked after
// the direct category-name match, in the order listed in categoryOrder.
var CategoryKeywords = map[string][]string{
	"productivity": {"productive", "habit", "routine", "morning", "study", "student", "work", "focus"},
	"fitness":      {"gym", "exercise", "workout", "muscle", "weight", "body", "health", "wellness"},
	"money":        {"finance", "invest", "saving", "budget", "hustle", "income", "earn", "rich"},
	"cooking":      {"recipe", "food", "cook", "meal", "kitchen", "eat", "diet", "nutrition"},
	"travel":       {"trip", "flight", "backpack", "adventure", "destination", "vacation", "explore"},
	"ai":           {"artificial", "machine", "learning", "chatgpt", "automation", "tools", "tech"},
	"philosophy":   {"stoic", "existential", "ethics", "philosophy", "plato", "socrates"},
}

// Map iteration order is random; classification must not be.
var categoryOrder = []string{"productivity", "fitness", "money", "cooking", "travel", "ai", "philosophy"}

// ClassifyTopic maps a user topic to a template category.
func ClassifyTopic(topic string) string {
	topicLower := strings.ToLower(topic)

	for _, w := range mathWords {
		if strings.Contains(topicLower, w) {
			return "education"
		}
	}
	for _, w := range scienceWords {
		if strings.Contains(topicLower, w) {
			return "education"
		}
	}

	for _, cat := range categoryOrder {
		if strings.Contains(topicLower, cat) {
			return cat
		}
	}
	if strings.Contains(topicLower, "education") {
		return "education"
	}

	for _, cat := range categoryOrder {
		for _, kw := range CategoryKeywords[cat] {
			if strings.Contains(topicLower, kw) {
				return cat
			}
		}
	}
	return DefaultCategory
}

// PickVisual returns a concrete, search-friendly visual description for the
// topic's category.
func PickVisual(topic string) string {
	switch ClassifyTopic(topic) {
	case "productivity":
		return "person working productively at organized desk with laptop"
	case "fitness":
		return "athlete exercising with dumbbells in modern gym"
	case "money":
		return "person counting money and managing finances"
	case "cooking":
		return "chef preparing fresh food in a kitchen"
	case "travel":
		return "traveler exploring beautiful scenic destination"
	case "ai":
		return "person using artificial intelligence technology on computer"
	case "education":
		return fmt.Sprintf("teacher explaining %s on whiteboard in classroom", topic)
	case "philosophy":
		return "peaceful person meditating in beautiful nature"
	default:
		return fmt.Sprintf("person actively engaged in %s", topic)
	}
}
