package intake

import (
	"strings"
	"unicode/utf8"
)

// finalReplyMinLength is the empirical length floor below which an assistant
// reply is never treated as a closing summary; short replies are follow-up
// questions.
const finalReplyMinLength = 100

// FinalityFunc decides whether an assistant reply is the conversation's
// closing turn. The dispatcher accepts any implementation so the substring
// heuristic below can later be swapped for an explicit dialogue-policy flag.
type FinalityFunc func(reply string, lead Lead) bool

// IsFinalSummary reports whether the assistant's reply reads as the final
// wrap-up: long enough to be a summary, and either echoing the last four
// digits of the captured phone number or containing a known closing phrase.
func IsFinalSummary(reply string, lead Lead) bool {
	reply = strings.TrimSpace(reply)
	if utf8.RuneCountInString(reply) < finalReplyMinLength {
		return false
	}
	if last4 := lead.PhoneLastFour(); last4 != "" && strings.Contains(reply, last4) {
		return true
	}
	lower := strings.ToLower(reply)
	for _, phrase := range closingPhrases {
		if strings.Contains(lower, phrase) {
			return true
		}
	}
	return false
}
