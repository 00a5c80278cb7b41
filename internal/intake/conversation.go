package intake

const (
	RoleCustomer  = "customer"
	RoleAssistant = "assistant"
)

// Utterance is a single turn of the dialogue, attributed to one side.
type Utterance struct {
	Role string `json:"role"`
	Text string `json:"text"`
}

// Conversation is the ordered turn history; insertion order is chronological.
type Conversation []Utterance

// LastAssistantText returns the text of the most recent assistant turn.
func (c Conversation) LastAssistantText() string {
	for i := len(c) - 1; i >= 0; i-- {
		if c[i].Role == RoleAssistant {
			return c[i].Text
		}
	}
	return ""
}
