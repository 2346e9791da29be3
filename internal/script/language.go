package script

// Language detection is a heuristic character-ratio check, kept as
// adjustable data rather than a hard-coded branch.

// ArabicRatioThreshold is the fraction of Arabic-script runes above which a
// topic is treated as Arabic.
var ArabicRatioThreshold = 0.3

var arabicRanges = [][2]rune{
	{0x0600, 0x06FF},
	{0x0750, 0x077F},
	{0x08A0, 0x08FF},
	{0xFB50, 0xFDFF},
	{0xFE70, 0xFEFF},
}

func isArabicRune(r rune) bool {
	for _, rng := range arabicRanges {
		if r >= rng[0] && r <= rng[1] {
			return true
		}
	}
	return false
}

// ContainsArabic reports whether any rune of s is in an Arabic block.
func ContainsArabic(s string) bool {
	for _, r := range s {
		if isArabicRune(r) {
			return true
		}
	}
	return false
}

// DetectLanguage infers the locale tag for a topic: "ar" when the share of
// Arabic-script runes exceeds ArabicRatioThreshold, "en" otherwise.
func DetectLanguage(text string) string {
	total := 0
	arabic := 0
	for _, r := range text {
		total++
		if isArabicRune(r) {
			arabic++
		}
	}
	if total > 0 && float64(arabic) > float64(total)*ArabicRatioThreshold {
		return "ar"
	}
	return "en"
}
