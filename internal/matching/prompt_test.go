package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildQueryListsAnswersAndCandidates(t *testing.T) {
	req := &Request{
		UserAnswers: []string{"long walks", "quiet evenings", "honesty"},
		Candidates: []Candidate{
			{ID: "cand-1", Q1: "hiking", Q2: "reading", Q3: "kindness"},
			{ID: "cand-2", Q1: "cooking", Q2: "concerts", Q3: "humor"},
		},
		UserOptionsCount: 2,
		AIQuestions:      []string{"What do you value?", "Free weekend?", "Best quality?"},
	}

	query := buildQuery(req)

	for _, answer := range req.UserAnswers {
		assert.Contains(t, query, answer)
	}
	for _, question := range req.AIQuestions {
		assert.Contains(t, query, question)
	}
	for _, c := range req.Candidates {
		assert.Contains(t, query, c.ID)
		assert.Contains(t, query, c.Q1)
		assert.Contains(t, query, c.Q2)
		assert.Contains(t, query, c.Q3)
	}
	assert.Contains(t, query, "2 option(s)")
	assert.Contains(t, query, "2 candidates")
}

func TestSystemInstructionIsFixed(t *testing.T) {
	instr := systemInstruction()

	// The evaluator preamble embeds the three survey questions verbatim
	// and the scoring rules; it never derives from the request.
	assert.Contains(t, instr, "compatibility evaluator")
	assert.Contains(t, instr, "matchScore from 0 to 100")
	assert.Contains(t, instr, "2-3 sentences")
	assert.Contains(t, instr, "Never mention or quote the candidate's id")
	assert.Equal(t, instr, systemInstruction())
}
