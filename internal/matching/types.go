package matching

import (
	"errors"
	"fmt"
)

// Request is the inbound matching request. Field names follow the wire
// contract the client already sends, including the AI_QUESTIONS casing.
type Request struct {
	UserAnswers      []string    `json:"userAnswers"`
	Candidates       []Candidate `json:"candidates"`
	UserOptionsCount int         `json:"userOptionsCount"`
	AIQuestions      []string    `json:"AI_QUESTIONS"`
}

// Candidate is one prospective match: an opaque id plus the same three
// survey answers the participant gave.
type Candidate struct {
	ID string `json:"id"`
	Q1 string `json:"q1"`
	Q2 string `json:"q2"`
	Q3 string `json:"q3"`
}

// Result mirrors one element of the JSON array the model is asked to
// produce. The proxy relays the generated array without re-parsing it,
// so this type exists for the response schema and for tests.
type Result struct {
	ID          string  `json:"id"`
	MatchScore  float64 `json:"matchScore"`
	MatchReason string  `json:"matchReason"`
}

var errMissingFields = errors.New("userAnswers, candidates, userOptionsCount and AI_QUESTIONS are required")

// Validate reports the first missing or malformed field. A valid request
// carries exactly three participant answers, exactly three question texts,
// at least one candidate and a positive options count.
func (r *Request) Validate() error {
	if len(r.UserAnswers) == 0 || len(r.Candidates) == 0 || r.UserOptionsCount <= 0 || len(r.AIQuestions) == 0 {
		return errMissingFields
	}
	if len(r.UserAnswers) != 3 {
		return fmt.Errorf("userAnswers must contain exactly 3 answers, got %d", len(r.UserAnswers))
	}
	if len(r.AIQuestions) != 3 {
		return fmt.Errorf("AI_QUESTIONS must contain exactly 3 questions, got %d", len(r.AIQuestions))
	}
	for i, c := range r.Candidates {
		if c.ID == "" {
			return fmt.Errorf("candidates[%d] is missing an id", i)
		}
	}
	return nil
}
