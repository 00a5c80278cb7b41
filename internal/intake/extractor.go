package intake

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// ---------- package-level compiled patterns ----------

var (
	phoneRE    = regexp.MustCompile(`(?:\+?1[\s.\-]?)?\(?\d{3}\)?[\s.\-]?\d{3}[\s.\-]?\d{4}`)
	zipRE      = regexp.MustCompile(`\b(\d{5})\b`)
	nonDigitRE = regexp.MustCompile(`\D`)

	// Two capitalized tokens. The embedded variant additionally requires the
	// pair to be bounded by a preposition, punctuation, or end of text so a
	// name can be picked out of a longer service description.
	nameRE         = regexp.MustCompile(`\b([A-Z][a-z]+)\s+([A-Z][a-z]+)\b`)
	embeddedNameRE = regexp.MustCompile(`\b([A-Z][a-z]+)\s+([A-Z][a-z]+)(?:\s+(?:and|at|for|from|in|near|on|to)\b|\s*[,.!?;:]|$)`)

	cityRE           = compileCityPattern()
	serviceKeywordRE = compileKeywordPattern(serviceKeywords)

	// "preferred/schedule/appointment ... : <phrase>" extraction patterns.
	datePrefREs = []*regexp.Regexp{
		regexp.MustCompile(`(?i)\bpreferred(?:\s+\S+){0,3}\s*:\s*(.+)`),
		regexp.MustCompile(`(?i)\bschedule[d]?(?:\s+\S+){0,3}\s*:\s*(.+)`),
		regexp.MustCompile(`(?i)\bappointment(?:\s+\S+){0,3}\s*:\s*(.+)`),
	}
	dateKeywordRE = regexp.MustCompile(`(?i)\b(monday|tuesday|wednesday|thursday|friday|saturday|sunday|today|tomorrow|tonight|weekend|asap|soon|morning|afternoon|evening|noon|next week|this week|\d{1,2}(?::\d{2})?\s*(?:am|pm)|\d{1,2}/\d{1,2}(?:/\d{2,4})?)\b`)
)

// maxDatePhraseLen bounds the fallback date capture: longer messages are too
// likely to be about something else entirely.
const maxDatePhraseLen = 80

var knownCitySet = buildKnownCitySet()

func compileCityPattern() *regexp.Regexp {
	escaped := make([]string, 0, len(knownCities))
	for _, city := range knownCities {
		escaped = append(escaped, regexp.QuoteMeta(city))
	}
	return regexp.MustCompile(`(?i)\b(` + strings.Join(escaped, "|") + `)\b`)
}

func compileKeywordPattern(keywords []string) *regexp.Regexp {
	escaped := make([]string, 0, len(keywords))
	for _, kw := range keywords {
		escaped = append(escaped, regexp.QuoteMeta(kw))
	}
	return regexp.MustCompile(`(?i)\b(` + strings.Join(escaped, "|") + `)\b`)
}

func buildKnownCitySet() map[string]bool {
	set := make(map[string]bool, len(knownCities))
	for _, city := range knownCities {
		set[strings.ToLower(city)] = true
	}
	return set
}

// ---------- extraction ----------

// Extract replays the conversation's customer turns in order and returns the
// best-effort lead record. Each field keeps its first chronological match and
// is never overwritten by later turns. Malformed or irrelevant text simply
// leaves fields unset; Extract never fails.
func Extract(conv Conversation) Lead {
	var lead Lead
	cityRecognized := false

	for _, u := range conv {
		if u.Role != RoleCustomer {
			continue
		}
		text := strings.TrimSpace(u.Text)
		if text == "" {
			continue
		}

		if lead.Phone == "" {
			if m := phoneRE.FindString(text); m != "" {
				if digits := nonDigitRE.ReplaceAllString(m, ""); len(digits) >= 10 {
					lead.Phone = digits
				}
			}
		}

		if lead.Zip == "" {
			if m := zipRE.FindStringSubmatch(text); m != nil {
				lead.Zip = m[1]
			}
		}

		if lead.City == "" {
			if m := cityRE.FindString(text); m != "" {
				lead.City = titleCaseWords(m)
				cityRecognized = true
			}
		}

		if lead.Service == "" && serviceKeywordRE.MatchString(text) {
			lead.Service = text
		}

		if lead.FirstName == "" {
			if first, last := extractName(text); first != "" {
				lead.FirstName = first
				lead.LastName = last
			}
		}

		if lead.PreferredDate == "" {
			if phrase := extractDatePhrase(text); phrase != "" {
				lead.PreferredDate = phrase
			}
		}
	}

	lead.InServiceArea = cityRecognized || coverageZips[lead.Zip]
	if lead.Zip != "" && lead.City == "" {
		if city, ok := zipCities[lead.Zip]; ok {
			lead.City = city
		} else {
			lead.City = regionLabel
		}
	}
	return lead
}

// extractName finds a first/last name pair in one utterance. Text that also
// reads as a service description gets the bounded pattern so a name embedded
// in it is still recognized; plain text goes through the deny-lists instead.
func extractName(text string) (first, last string) {
	var m []string
	if serviceKeywordRE.MatchString(text) {
		m = embeddedNameRE.FindStringSubmatch(text)
	} else {
		m = nameRE.FindStringSubmatch(text)
		if m != nil && deniedNamePair(m[1], m[2]) {
			return "", ""
		}
	}
	if m == nil {
		return "", ""
	}
	first = capitalizeWord(m[1])
	last = capitalizeWord(m[2])
	if knownCitySet[strings.ToLower(first+" "+last)] {
		return "", ""
	}
	if utf8.RuneCountInString(first) < 2 || utf8.RuneCountInString(last) < 2 {
		return "", ""
	}
	return first, last
}

func deniedNamePair(first, last string) bool {
	if nonNamePhrases[strings.ToLower(first+" "+last)] {
		return true
	}
	return nonNameTokens[strings.ToLower(first)] || nonNameTokens[strings.ToLower(last)]
}

func extractDatePhrase(text string) string {
	for _, re := range datePrefREs {
		if m := re.FindStringSubmatch(text); m != nil {
			return strings.TrimSpace(m[1])
		}
	}
	if utf8.RuneCountInString(text) <= maxDatePhraseLen && dateKeywordRE.MatchString(text) {
		return text
	}
	return ""
}

// ---------- text helpers ----------

func capitalizeWord(word string) string {
	if word == "" {
		return ""
	}
	return strings.ToUpper(word[:1]) + strings.ToLower(word[1:])
}

func titleCaseWords(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = capitalizeWord(w)
	}
	return strings.Join(words, " ")
}
