package models

// CallbackMessage is the payload GroupMe POSTs to a bot's callback URL.
type CallbackMessage struct {
	ID         string `json:"id"`
	GroupID    string `json:"group_id"`
	Name       string `json:"name"`
	SenderID   string `json:"sender_id"`
	SenderType string `json:"sender_type"` // user, bot, system
	Text       string `json:"text"`
	CreatedAt  int64  `json:"created_at"`
}

// FromBot reports whether the message was posted by a bot, including this one.
func (m CallbackMessage) FromBot() bool {
	return m.SenderType == "bot"
}

type BotPost struct {
	BotID string `json:"bot_id"`
	Text  string `json:"text"`
}

type PreviewRequest struct {
	Text string `json:"text" binding:"required"`
}

type PreviewResponse struct {
	Targets []string `json:"targets"`
	Unknown []string `json:"unknown_options,omitempty"`
	Report  string   `json:"report"`
}
