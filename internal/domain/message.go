package domain

import "time"

// ChatMessage is the result of one routing call. Ephemeral: it lives only
// for the duration of the delivery and is never stored.
type ChatMessage struct {
	From               UserID    `json:"from"`
	To                 UserID    `json:"-"`
	OriginalMessage    string    `json:"original_message"`
	TranslatedMessage  string    `json:"translated_message"`
	OriginalLanguage   string    `json:"original_language"`
	TranslatedLanguage string    `json:"translated_language"`
	Timestamp          time.Time `json:"timestamp"`
}
