package language

import (
	"regexp"
	"sort"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

// Auto is the pseudo-code for "let the model detect the source language".
const Auto = "auto"

// autoName is what the prompt says when the source is detected automatically.
const autoName = "the detected source language"

// codePattern matches BCP-47-looking input such as "ja", "zh-Hant" or "pt_BR".
var codePattern = regexp.MustCompile(`^[A-Za-z]{2,3}([-_][A-Za-z0-9]{2,8})*$`)

var namer = display.English.Tags()

// Language is a supported language code with its English name.
type Language struct {
	Code string
	Name string
}

// common lists the tags shown by `list languages`. Any other valid tag still works.
var common = []string{
	"ar", "bg", "bn", "ca", "cs", "da", "de", "el", "en", "es", "et", "fa", "fi",
	"fil", "fr", "he", "hi", "hr", "hu", "id", "it", "ja", "ko", "lt", "lv", "mn",
	"ms", "my", "nb", "nl", "pl", "pt", "pt-BR", "ro", "ru", "sk", "sl", "sr",
	"sv", "sw", "ta", "th", "tr", "uk", "ur", "vi", "yue", "zh-Hans", "zh-Hant",
}

// DisplayName returns the English name used in prompts. Codes are resolved
// through CLDR; anything else, including free-form names like
// "Simplified Chinese", is returned trimmed but otherwise unchanged.
func DisplayName(input string) string {
	s := strings.TrimSpace(input)
	if s == "" {
		return ""
	}
	if strings.EqualFold(s, Auto) {
		return autoName
	}
	if !IsCode(s) {
		return s
	}
	if name := namer.Name(language.Make(normalize(s))); name != "" {
		return name
	}
	return s
}

func normalize(code string) string {
	return strings.ReplaceAll(code, "_", "-")
}

// IsCode reports whether input parses as a known language tag.
func IsCode(input string) bool {
	s := strings.TrimSpace(input)
	if !codePattern.MatchString(s) {
		return false
	}
	_, err := language.Parse(normalize(s))
	return err == nil
}

// Supported returns the common languages sorted by name, then code.
func Supported() []Language {
	out := make([]Language, 0, len(common))
	for _, code := range common {
		out = append(out, Language{Code: code, Name: DisplayName(code)})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Name != out[j].Name {
			return out[i].Name < out[j].Name
		}
		return out[i].Code < out[j].Code
	})
	return out
}
