package matching

import (
	"fmt"
	"strings"
)

func systemInstruction() string {
	return `
You are an expert compatibility evaluator for a matchmaking service.

Participants answer the same three survey questions:
1. What do you value most in a close relationship?
2. How do you like to spend a free weekend?
3. What quality do you appreciate most in another person?

You will receive one participant's three answers and a list of candidates,
each with an id and their own three answers. For EVERY candidate:
- Compare the candidate's answers with the participant's.
- Assign a matchScore from 0 to 100 (100 = perfectly compatible).
- Write a matchReason of 2-3 sentences explaining the score in warm,
  natural language addressed to the participant.
- Never mention or quote the candidate's id inside matchReason.

Return only a JSON array matching the requested schema, ordered the same
as the candidate list. Do not include explanations, markdown, or text
before or after the JSON.
	`
}

// buildQuery lays out the participant's answers (paired with the question
// text the caller sent) followed by every candidate's id and answers.
func buildQuery(req *Request) string {
	var b strings.Builder

	fmt.Fprintf(&b, "The participant drew %d option(s). Evaluate all %d candidates below.\n\n", req.UserOptionsCount, len(req.Candidates))

	b.WriteString("Participant's answers:\n")
	for i, q := range req.AIQuestions {
		answer := ""
		if i < len(req.UserAnswers) {
			answer = req.UserAnswers[i]
		}
		fmt.Fprintf(&b, "%d. %s\n   Answer: %s\n", i+1, q, answer)
	}

	b.WriteString("\nCandidates:\n")
	for _, c := range req.Candidates {
		fmt.Fprintf(&b, "- id: %s\n  q1: %s\n  q2: %s\n  q3: %s\n", c.ID, c.Q1, c.Q2, c.Q3)
	}

	return b.String()
}
