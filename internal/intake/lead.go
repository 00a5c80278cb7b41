package intake

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Lead is the structured record accumulated from a conversation's customer
// turns. Fields are set at most once; zero values mean "not recognized yet".
type Lead struct {
	FirstName     string
	LastName      string
	Phone         string // digits only
	Service       string
	City          string
	Zip           string
	InServiceArea bool
	PreferredDate string // raw captured phrase
}

// IsComplete reports whether the record carries everything a dispatcher
// needs: full name, phone, service, and either a ZIP or a city.
func (l Lead) IsComplete() bool {
	if !isNamePart(l.FirstName) || !isNamePart(l.LastName) {
		return false
	}
	if len(l.Phone) < 10 {
		return false
	}
	if strings.TrimSpace(l.Service) == "" {
		return false
	}
	hasZip := len(l.Zip) == 5
	hasCity := utf8.RuneCountInString(l.City) >= 3
	return hasZip || hasCity
}

// Key derives the dedup identity for the lead.
func (l Lead) Key() string {
	return l.Phone + "|" + strings.ToLower(l.FirstName) + "|" + strings.ToLower(l.LastName)
}

// PhoneLastFour returns the trailing four digits of the phone, or "".
func (l Lead) PhoneLastFour() string {
	if len(l.Phone) < 4 {
		return ""
	}
	return l.Phone[len(l.Phone)-4:]
}

func isNamePart(s string) bool {
	if utf8.RuneCountInString(s) < 2 {
		return false
	}
	r, _ := utf8.DecodeRuneInString(s)
	return unicode.IsLetter(r)
}
