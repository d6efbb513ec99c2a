package domain

import "errors"

var ErrUnknownLanguage = errors.New("unknown language code")

// Language is one entry of the fixed registry of translation targets.
type Language struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// languages mirrors the set the translation container is started with.
var languages = []Language{
	{Code: "en", Name: "English"},
	{Code: "es", Name: "Spanish"},
	{Code: "fr", Name: "French"},
	{Code: "de", Name: "German"},
	{Code: "it", Name: "Italian"},
	{Code: "pt", Name: "Portuguese"},
	{Code: "nl", Name: "Dutch"},
	{Code: "ru", Name: "Russian"},
	{Code: "zh", Name: "Chinese"},
	{Code: "ja", Name: "Japanese"},
	{Code: "ar", Name: "Arabic"},
	{Code: "hi", Name: "Hindi"},
}

var languageIndex = func() map[string]Language {
	m := make(map[string]Language, len(languages))
	for _, l := range languages {
		m[l.Code] = l
	}
	return m
}()

// SupportedLanguage reports whether code is a valid translation target.
// Checked before any network call to the provider.
func SupportedLanguage(code string) bool {
	_, ok := languageIndex[code]
	return ok
}

// Languages returns the registry for API listings.
func Languages() []Language {
	out := make([]Language, len(languages))
	copy(out, languages)
	return out
}
