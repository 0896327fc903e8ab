package orchestrator

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
)

// Run executes one instruction through the reason/act loop and returns the
// model's final answer.
func (o *Orchestrator) Run(ctx context.Context, instruction string) (string, error) {
	manifest := o.toolManifest()
	names := strings.Join(o.registry.Names(), ", ")

	var scratchpad strings.Builder
	for step := 0; step < o.maxSteps; step++ {
		o.l.Infof(ctx, "agent step %d/%d", step+1, o.maxSteps)

		prompt := fmt.Sprintf(agentPrompt, manifest, names, instruction, scratchpad.String())
		text, err := o.gateway.Generate(ctx, prompt)
		if err != nil {
			return "", fmt.Errorf("agent step %d: %w", step+1, err)
		}

		if answer, ok := finalAnswer(text); ok {
			o.l.Infof(ctx, "agent finished at step %d", step+1)
			return answer, nil
		}

		name, rawInput, err := parseAction(text)
		if err != nil {
			// The model produced neither an action nor a final answer;
			// return its text as the best available response.
			o.l.Warnf(ctx, "agent step %d unparseable, returning raw text: %v", step+1, err)
			return strings.TrimSpace(text), nil
		}

		observation := o.executeTool(ctx, name, rawInput)
		fmt.Fprintf(&scratchpad, "Thought: I should call %s\n%s %s\n%s %s\n%s %s\n",
			name, markerAction, name, markerActionInput, rawInput, markerObservation, observation)
	}

	o.l.Warnf(ctx, "agent exceeded max steps (%d)", o.maxSteps)
	return maxStepsAnswer, nil
}

func (o *Orchestrator) executeTool(ctx context.Context, name, rawInput string) string {
	tool, ok := o.registry.Get(name)
	if !ok {
		o.l.Errorf(ctx, "tool %s not found", name)
		return fmt.Sprintf(`{"error": "unknown tool %q"}`, name)
	}

	var params map[string]interface{}
	if err := json.Unmarshal([]byte(rawInput), &params); err != nil {
		return fmt.Sprintf(`{"error": "action input is not a JSON object: %s"}`, err)
	}

	o.l.Infof(ctx, "agent calling tool %s", name)
	result, err := tool.Execute(ctx, params)
	if err != nil {
		o.l.Errorf(ctx, "tool %s failed: %v", name, err)
		return fmt.Sprintf(`{"error": %q}`, err.Error())
	}

	encoded, err := json.Marshal(result)
	if err != nil {
		return fmt.Sprintf(`{"error": "encode tool result: %s"}`, err)
	}
	return string(encoded)
}

// toolManifest renders the registered tools into the prompt's tool section.
func (o *Orchestrator) toolManifest() string {
	var b strings.Builder
	for _, tool := range o.registry.List() {
		schema, _ := json.Marshal(tool.Parameters())
		fmt.Fprintf(&b, "- %s: %s Arguments schema: %s\n", tool.Name(), tool.Description(), schema)
	}
	return strings.TrimRight(b.String(), "\n")
}

// finalAnswer extracts the text after the final-answer marker, if present.
// A final answer wins over any action in the same completion.
func finalAnswer(text string) (string, bool) {
	idx := strings.Index(text, markerFinalAnswer)
	if idx < 0 {
		return "", false
	}
	return strings.TrimSpace(text[idx+len(markerFinalAnswer):]), true
}

// parseAction extracts the tool name and its raw JSON input from a
// completion. The input runs from the action-input marker to the next
// observation marker or the end of the text; models often echo the format
// skeleton, so surrounding whitespace and code fences are stripped.
func parseAction(text string) (name, rawInput string, err error) {
	actionIdx := strings.Index(text, markerAction)
	if actionIdx < 0 {
		return "", "", fmt.Errorf("no %q marker in completion", markerAction)
	}
	rest := text[actionIdx+len(markerAction):]

	inputIdx := strings.Index(rest, markerActionInput)
	if inputIdx < 0 {
		return "", "", fmt.Errorf("no %q marker in completion", markerActionInput)
	}

	name = strings.TrimSpace(rest[:inputIdx])
	rawInput = rest[inputIdx+len(markerActionInput):]
	if obsIdx := strings.Index(rawInput, markerObservation); obsIdx >= 0 {
		rawInput = rawInput[:obsIdx]
	}
	rawInput = strings.TrimSpace(rawInput)
	rawInput = strings.TrimPrefix(rawInput, "```json")
	rawInput = strings.TrimPrefix(rawInput, "```")
	rawInput = strings.TrimSuffix(rawInput, "```")
	rawInput = strings.TrimSpace(rawInput)

	if name == "" {
		return "", "", fmt.Errorf("empty tool name")
	}
	if rawInput == "" {
		rawInput = "{}"
	}
	return name, rawInput, nil
}
