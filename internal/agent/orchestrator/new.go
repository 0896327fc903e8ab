package orchestrator

import (
	"meeting-concierge/internal/agent"
	pkgLog "meeting-concierge/pkg/log"
	"meeting-concierge/pkg/watsonx"
)

// Orchestrator drives a text-based reason/act loop over the tool registry.
// The gateway has no native function calling, so tool selection is parsed
// out of the generated text.
type Orchestrator struct {
	gateway  watsonx.IWatsonx
	registry *agent.ToolRegistry
	l        pkgLog.Logger
	maxSteps int
}

// New creates an orchestrator over the given gateway and tool registry.
func New(gateway watsonx.IWatsonx, registry *agent.ToolRegistry, l pkgLog.Logger) *Orchestrator {
	return &Orchestrator{
		gateway:  gateway,
		registry: registry,
		l:        l,
		maxSteps: MaxAgentSteps,
	}
}
