package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"meeting-concierge/internal/knowledge"
	"meeting-concierge/internal/model"
	"meeting-concierge/internal/scheduler"
	"meeting-concierge/internal/suggestion"
)

func newQueryUseCase(gw *scriptedGateway, kb *fakeKnowledge) *implUseCase {
	return New(
		nopLogger{},
		gw,
		&fakeCalendar{},
		&fakeDirectory{},
		&fakeSuggester{},
		kb,
		suggestion.WorkingHours{Start: "09:00", End: "17:00"},
	)
}

func TestProcessQuerySchedulingBranch(t *testing.T) {
	const modelReply = "You could meet next Tuesday at 3pm. Alice and Bob look free then."

	gw := &scriptedGateway{reply: func(prompt string) (string, error) {
		if strings.Contains(prompt, `Respond with "Yes" or "No"`) {
			return " Yes \n", nil
		}
		return modelReply, nil
	}}
	uc := newQueryUseCase(gw, &fakeKnowledge{})

	out, err := uc.ProcessQuery(context.Background(), scheduler.ProcessQueryInput{
		UserInput: "Can we meet next Tuesday at 3pm?",
		Duration:  30,
		History: []model.ConversationMessage{
			{Role: model.RoleUser, Content: "I need to sync with Alice and Bob."},
			{Role: model.RoleAssistant, Content: "Sure, when works for you?"},
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Response != modelReply {
		t.Errorf("model reply must pass through verbatim, got %q", out.Response)
	}

	if len(gw.prompts) != 2 {
		t.Fatalf("expected classification + detailed prompt, got %d prompts", len(gw.prompts))
	}
	detailed := gw.prompts[1]
	for _, fragment := range []string{
		"user: I need to sync with Alice and Bob.",
		"assistant: Sure, when works for you?",
		"Query: Can we meet next Tuesday at 3pm?",
	} {
		if !strings.Contains(detailed, fragment) {
			t.Errorf("detailed prompt missing %q:\n%s", fragment, detailed)
		}
	}
	if strings.Index(detailed, "I need to sync") > strings.Index(detailed, "Sure, when works") {
		t.Errorf("history lines out of order:\n%s", detailed)
	}
}

func TestProcessQueryClassifierFailsClosed(t *testing.T) {
	// Anything but a normalized "yes" must select the non-scheduling path.
	for _, verdict := range []string{"No", "no", "Maybe", "Yes, definitely", "", "I think so"} {
		gw := &scriptedGateway{reply: func(prompt string) (string, error) {
			if strings.Contains(prompt, `Respond with "Yes" or "No"`) {
				return verdict, nil
			}
			return "generic reply", nil
		}}
		uc := newQueryUseCase(gw, &fakeKnowledge{})

		out, err := uc.ProcessQuery(context.Background(), scheduler.ProcessQueryInput{UserInput: "what is the weather"})
		if err != nil {
			t.Fatalf("verdict %q: unexpected error: %v", verdict, err)
		}
		if out.Response != "generic reply" {
			t.Errorf("verdict %q: expected generic branch, got %q", verdict, out.Response)
		}
		// The generic branch sends the raw utterance, not a template.
		if gw.prompts[len(gw.prompts)-1] != "what is the weather" {
			t.Errorf("verdict %q: generic prompt was %q", verdict, gw.prompts[len(gw.prompts)-1])
		}
	}
}

func TestProcessQueryCompanyKeywords(t *testing.T) {
	tests := []struct {
		query   string
		company bool
	}{
		{"Tell me about the COMPANY policy on travel", true},
		{"what does Company Policy say about leave?", true},
		{"tell me ABOUT THE COMPANY", true},
		{"what companies do we compete with?", false},
	}

	for _, tc := range tests {
		gw := &scriptedGateway{reply: func(prompt string) (string, error) {
			if strings.Contains(prompt, `Respond with "Yes" or "No"`) {
				return "No", nil
			}
			return "generic reply", nil
		}}
		kb := &fakeKnowledge{answer: "grounded answer"}
		uc := newQueryUseCase(gw, kb)

		out, err := uc.ProcessQuery(context.Background(), scheduler.ProcessQueryInput{UserInput: tc.query})
		if err != nil {
			t.Fatalf("%q: unexpected error: %v", tc.query, err)
		}

		if tc.company {
			if out.Response != "grounded answer" {
				t.Errorf("%q: expected knowledge-base answer, got %q", tc.query, out.Response)
			}
			if len(kb.asked) != 1 || kb.asked[0] != tc.query {
				t.Errorf("%q: knowledge base asked with %v", tc.query, kb.asked)
			}
		} else {
			if len(kb.asked) != 0 {
				t.Errorf("%q: knowledge base should not be consulted", tc.query)
			}
			if out.Response != "generic reply" {
				t.Errorf("%q: expected generic branch, got %q", tc.query, out.Response)
			}
		}
	}
}

func TestProcessQueryNotTrained(t *testing.T) {
	gw := &scriptedGateway{reply: func(prompt string) (string, error) { return "No", nil }}
	uc := newQueryUseCase(gw, &fakeKnowledge{err: knowledge.ErrNotTrained})

	_, err := uc.ProcessQuery(context.Background(), scheduler.ProcessQueryInput{UserInput: "about the company"})
	if !errors.Is(err, knowledge.ErrNotTrained) {
		t.Errorf("expected ErrNotTrained to pass through, got %v", err)
	}
}

func TestProcessQueryGatewayError(t *testing.T) {
	gw := &scriptedGateway{reply: func(prompt string) (string, error) {
		return "", errors.New("watsonx unreachable")
	}}
	uc := newQueryUseCase(gw, &fakeKnowledge{})

	if _, err := uc.ProcessQuery(context.Background(), scheduler.ProcessQueryInput{UserInput: "hi"}); err == nil {
		t.Errorf("classification failure must surface as an error")
	}
}

func TestProcessQueryEmptyInput(t *testing.T) {
	uc := newQueryUseCase(&scriptedGateway{reply: func(string) (string, error) { return "", nil }}, &fakeKnowledge{})

	_, err := uc.ProcessQuery(context.Background(), scheduler.ProcessQueryInput{UserInput: "   "})
	if !errors.Is(err, scheduler.ErrEmptyQuery) {
		t.Errorf("expected ErrEmptyQuery, got %v", err)
	}
}
