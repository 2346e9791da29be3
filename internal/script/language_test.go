package script

import "testing"

func TestDetectLanguage(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"english", "productivity hacks for students", "en"},
		{"arabic", "نصائح الإنتاجية للطلاب", "ar"},
		{"mostly arabic with latin", "نصائح AI للجميع", "ar"},
		{"mostly latin with one arabic word", "top productivity tips for رمضان mornings and evenings", "en"},
		{"empty", "", "en"},
		{"digits only", "12345", "en"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DetectLanguage(tt.text); got != tt.want {
				t.Errorf("DetectLanguage(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}

func TestContainsArabic(t *testing.T) {
	if !ContainsArabic("مرحبا world") {
		t.Error("expected Arabic detection in mixed text")
	}
	if ContainsArabic("hello world") {
		t.Error("unexpected Arabic detection in latin text")
	}
}
