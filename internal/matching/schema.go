package matching

import "google.golang.org/genai"

// resultSchema constrains the generated output to an ordered array of
// match results, one object per candidate.
func resultSchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeArray,
		Items: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"id":          {Type: genai.TypeString},
				"matchScore":  {Type: genai.TypeNumber},
				"matchReason": {Type: genai.TypeString},
			},
			Required: []string{"id", "matchScore", "matchReason"},
		},
	}
}
