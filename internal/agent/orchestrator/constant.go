package orchestrator

// MaxAgentSteps bounds the reason/act loop. Each step is one gateway call
// and at most one tool execution.
const MaxAgentSteps = 5

// Output markers the loop parses out of generated text.
const (
	markerAction      = "Action:"
	markerActionInput = "Action Input:"
	markerObservation = "Observation:"
	markerFinalAnswer = "Final Answer:"
)

const agentPrompt = `You are a virtual assistant. Your job is to assist the user in scheduling meetings.

- If the user wants to schedule a meeting, check their availability and their group's availability.
- Suggest an appropriate time if the preferred date and duration are unavailable.
- Provide detailed responses with actions you plan to take.

You have access to the following tools:

%s

Use the following format:

Thought: what you should do next
Action: the tool to use, one of [%s]
Action Input: a JSON object with the tool arguments
Observation: the tool result
... (Thought/Action/Action Input/Observation can repeat)
Thought: I now know the final answer
Final Answer: the final response to the user

Begin!

Question: %s
%s`

// maxStepsAnswer is returned when the loop runs out of steps without a
// final answer.
const maxStepsAnswer = "I could not complete the request within the allowed number of steps. Please try a simpler instruction."
