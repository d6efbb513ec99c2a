// Package domain contains entity without logic, just meta-data
package domain

import "errors"

const MaxUserIDLen = 64

var (
	ErrUserIDEmpty   = errors.New("user id empty")
	ErrUserIDTooLong = errors.New("user id too long")
)

type UserID string

type Status string

const (
	StatusOnline  Status = "online"
	StatusOffline Status = "offline"
)

// User is a directory entry: identity plus preferred language.
// Entries are never deleted, only flipped to offline on disconnect.
type User struct {
	ID       UserID `json:"id"`
	Language string `json:"language"`
	Status   Status `json:"status"`
}

// NewUser is a tiny helper to avoid ad-hoc struct literals in adapters.
func NewUser(id UserID, language string) (*User, error) {
	if len(id) == 0 {
		return nil, ErrUserIDEmpty
	}
	if len(id) > MaxUserIDLen {
		return nil, ErrUserIDTooLong
	}
	u := &User{ID: id, Status: StatusOnline}
	if err := u.SetLanguage(language); err != nil {
		return nil, err
	}
	return u, nil
}

func (u *User) SetLanguage(code string) error {
	if !SupportedLanguage(code) {
		return ErrUnknownLanguage
	}
	u.Language = code
	return nil
}
