package commontypes

// ReplyKind classifies a bot reply so the transport layer can decide how to
// render it (plain text, quoted reply, etc.).
type ReplyKind string

const (
	ReplyConversion ReplyKind = "conversion"
	ReplyHint       ReplyKind = "hint"
	ReplyError      ReplyKind = "error"
)

// Message is a single incoming chat message, already stripped of transport
// details.
type Message struct {
	ChatID   int64  `json:"chat_id"`
	UserID   int64  `json:"user_id"`
	Text     string `json:"text"`
	ChatType string `json:"chat_type,omitempty"`
}

// Reply is one outgoing bot message.
type Reply struct {
	Kind ReplyKind `json:"kind"`
	Text string    `json:"text"`
}
