package http

import (
	"meeting-concierge/internal/model"
	"meeting-concierge/internal/scheduler"
)

type conversationMsg struct {
	Role    string `json:"role" binding:"required"`
	Content string `json:"content" binding:"required"`
}

type processQueryReq struct {
	UserInput           string            `json:"user_input" binding:"required"`
	Duration            int               `json:"duration"`
	ConversationHistory []conversationMsg `json:"conversation_history"`
}

func (r processQueryReq) toInput() scheduler.ProcessQueryInput {
	history := make([]model.ConversationMessage, 0, len(r.ConversationHistory))
	for _, msg := range r.ConversationHistory {
		history = append(history, model.ConversationMessage{
			Role:    model.Role(msg.Role),
			Content: msg.Content,
		})
	}
	return scheduler.ProcessQueryInput{
		UserInput: r.UserInput,
		Duration:  r.Duration,
		History:   history,
	}
}

type processQueryResp struct {
	Response string `json:"response"`
}

type scheduleMeetingReq struct {
	Instruction string `json:"instruction" binding:"required"`
}
