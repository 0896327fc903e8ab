package agent

import (
	"context"
)

// Tool represents an action the scheduling agent can take.
type Tool interface {
	// Name returns the tool name as the model must spell it.
	Name() string

	// Description returns what the tool does, shown to the model.
	Description() string

	// Parameters returns a JSON schema for the tool arguments.
	Parameters() map[string]interface{}

	// Execute runs the tool with arguments decoded from the model output.
	Execute(ctx context.Context, params map[string]interface{}) (interface{}, error)
}

// Runner executes a natural-language scheduling instruction end to end.
type Runner interface {
	Run(ctx context.Context, instruction string) (string, error)
}

// ToolRegistry manages available tools. Registration order is preserved so
// the tool manifest rendered into the prompt is deterministic.
type ToolRegistry struct {
	tools map[string]Tool
	names []string
}

// NewToolRegistry creates a new tool registry.
func NewToolRegistry() *ToolRegistry {
	return &ToolRegistry{
		tools: make(map[string]Tool),
	}
}

// Register adds a tool to the registry. Re-registering a name replaces the
// tool but keeps its original position.
func (r *ToolRegistry) Register(tool Tool) {
	if _, ok := r.tools[tool.Name()]; !ok {
		r.names = append(r.names, tool.Name())
	}
	r.tools[tool.Name()] = tool
}

// Get retrieves a tool by name.
func (r *ToolRegistry) Get(name string) (Tool, bool) {
	tool, ok := r.tools[name]
	return tool, ok
}

// List returns all registered tools in registration order.
func (r *ToolRegistry) List() []Tool {
	tools := make([]Tool, 0, len(r.names))
	for _, name := range r.names {
		tools = append(tools, r.tools[name])
	}
	return tools
}

// Names returns the registered tool names in registration order.
func (r *ToolRegistry) Names() []string {
	return append([]string(nil), r.names...)
}
