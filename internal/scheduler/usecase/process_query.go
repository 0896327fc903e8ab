package usecase

import (
	"context"
	"fmt"
	"strings"

	"meeting-concierge/internal/model"
	"meeting-concierge/internal/scheduler"
)

// ProcessQuery classifies the utterance and dispatches it to the matching
// branch. Classification fails closed: only a normalized "yes" from the
// gateway selects the scheduling branch.
func (uc *implUseCase) ProcessQuery(ctx context.Context, input scheduler.ProcessQueryInput) (scheduler.ProcessQueryOutput, error) {
	if strings.TrimSpace(input.UserInput) == "" {
		return scheduler.ProcessQueryOutput{}, scheduler.ErrEmptyQuery
	}

	uc.l.Infof(ctx, "ProcessQuery: duration=%dm query=%q", input.Duration, input.UserInput)

	verdict, err := uc.gateway.Generate(ctx, fmt.Sprintf(classificationPrompt, input.UserInput))
	if err != nil {
		return scheduler.ProcessQueryOutput{}, fmt.Errorf("classify query: %w", err)
	}

	if strings.ToLower(strings.TrimSpace(verdict)) == "yes" {
		return uc.answerSchedulingQuery(ctx, input)
	}

	lowered := strings.ToLower(input.UserInput)
	if strings.Contains(lowered, keywordCompanyPolicy) || strings.Contains(lowered, keywordAboutCompany) {
		answer, err := uc.knowledge.Ask(ctx, input.UserInput)
		if err != nil {
			return scheduler.ProcessQueryOutput{}, err
		}
		return scheduler.ProcessQueryOutput{Response: answer}, nil
	}

	text, err := uc.gateway.Generate(ctx, input.UserInput)
	if err != nil {
		return scheduler.ProcessQueryOutput{}, fmt.Errorf("generate response: %w", err)
	}
	return scheduler.ProcessQueryOutput{Response: text}, nil
}

// answerSchedulingQuery asks the gateway to infer dates, participants and
// conflicts from the whole conversation. The gateway text is returned
// verbatim; nothing is parsed out of it.
func (uc *implUseCase) answerSchedulingQuery(ctx context.Context, input scheduler.ProcessQueryInput) (scheduler.ProcessQueryOutput, error) {
	prompt := fmt.Sprintf(detailedPrompt, renderHistory(input.History), input.UserInput)

	text, err := uc.gateway.Generate(ctx, prompt)
	if err != nil {
		return scheduler.ProcessQueryOutput{}, fmt.Errorf("analyze conversation: %w", err)
	}
	return scheduler.ProcessQueryOutput{Response: text}, nil
}

// renderHistory flattens the conversation into one "role: content" line per
// message, oldest first.
func renderHistory(history []model.ConversationMessage) string {
	lines := make([]string, 0, len(history))
	for _, msg := range history {
		lines = append(lines, fmt.Sprintf("%s: %s", msg.Role, msg.Content))
	}
	return strings.Join(lines, "\n")
}
