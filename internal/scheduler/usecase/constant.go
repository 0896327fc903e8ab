package usecase

// Prompts sent to the text-generation gateway. The classifier answer is
// normalized before comparison; anything that is not "yes" is treated as a
// non-scheduling query.
const (
	classificationPrompt = `Is the following user query related to scheduling a meeting? Respond with "Yes" or "No".
Query: %s`

	detailedPrompt = `The user wants to schedule a meeting. Based on the following conversation history, infer:
1. The user's preferred dates and times.
2. Any other participants and their availability.
3. Suggested meeting times if conflicts arise.

Conversation history:
%s

Query: %s`
)

// Case-insensitive substrings that route a non-scheduling query to the
// company knowledge base.
const (
	keywordCompanyPolicy = "company policy"
	keywordAboutCompany  = "about the company"
)
