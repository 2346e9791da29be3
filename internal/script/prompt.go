package script

import (
	"fmt"
	"strings"

	"viralengine-backend/internal/models"
)

// BuildPrompt assembles the generation prompt for the remote tiers, in the
// language detected for the topic. Up to 5 SEO keywords are embedded.
func BuildPrompt(topic, hookType, language string, durationSeconds int, keywords []string, hookPattern *models.HookPattern) string {
	kw := "viral, trending, must-see"
	if len(keywords) > 0 {
		n := len(keywords)
		if n > 5 {
			n = 5
		}
		kw = strings.Join(keywords[:n], ", ")
	}

	if language == "ar" {
		return fmt.Sprintf(`أنت كاتب سكربتات فيرال محترف. اكتب سكربت تيك توك بالعربية:

الموضوع: %s
نوع الهوك: %s
المدة: %d ثانية
الكلمات المفتاحية (أدخلها بشكل طبيعي): %s

أنشئ سكربتاً بثلاث أعمدة بالصيغة:
[TIME CODE] | [وصف المشهد البصري] | [النص المنطوق]

القواعد:
1. ابدأ بـ pattern interrupt في أول ثانيتين
2. جمل قصيرة وقوية
3. اختم بدعوة للتفاعل أو فضول
4. 100%% أصلي وطبيعي عن "%s"
5. اكتب كل شيء بالعربية الفصحى أو العامية حسب السياق

مثال:
0-2s | شخص متفاجئ ينظر للكاميرا | "توقف — هذا يغير كل شيء"
2-5s | لقطات توضيحية | "أغلب الناس يفهمون الموضوع غلط"

اكتب السكربت الآن:`, topic, hookType, durationSeconds, kw, topic)
	}

	hookExample := ""
	if hookPattern != nil {
		hookExample = hookPattern.Example
	}

	return fmt.Sprintf(`You are a world-class viral script writer. Generate a TikTok script.

TOPIC: %s
HOOK TYPE: %s
HOOK EXAMPLE: %s
DURATION: %d seconds
SEO KEYWORDS (integrate naturally): %s

OUTPUT FORMAT - Use EXACTLY this format, one scene per line:
[TIME CODE] | [VISUAL CUE] | [SPOKEN AUDIO]

Example:
0-2s | Jump-cut to shocked face | "Wait... this is actually genius..."
2-5s | B-roll footage | "Most people don't know this trick..."
5-8s | Person demonstrating | "Here's exactly what to do"

Rules:
1. Start with a PATTERN INTERRUPT in the first 2 seconds
2. Integrate 2-3 SEO keywords naturally
3. Short punchy sentences (under 8 words each)
4. End with CTA or curiosity hook
5. 100%% original about "%s" - no generic filler
6. Output ONLY the script lines in the format above, no preamble or explanation

Generate the script now:
`, topic, hookType, hookExample, durationSeconds, kw, topic)
}
