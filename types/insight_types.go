package types

// InsightResult is the structured behavioral assessment returned by the
// narrative insight endpoint. RiskLevel is expected to be one of
// Low/Medium/High/Undetermined but is passed through as received.
type InsightResult struct {
	Analysis               string   `json:"analysis"`
	RiskLevel              string   `json:"riskLevel"`
	SuggestedInterventions []string `json:"suggestedInterventions"`
	GrowthFocus            string   `json:"growthFocus"`
}

// Wire types for the Gemini generateContent REST endpoint.

type GeminiRequest struct {
	Contents         []GeminiContent         `json:"contents"`
	GenerationConfig *GeminiGenerationConfig `json:"generationConfig,omitempty"`
}

type GeminiContent struct {
	Parts []GeminiPart `json:"parts"`
}

type GeminiPart struct {
	Text string `json:"text"`
}

type GeminiGenerationConfig struct {
	ResponseMimeType string        `json:"responseMimeType,omitempty"`
	ResponseSchema   *GeminiSchema `json:"responseSchema,omitempty"`
}

type GeminiSchema struct {
	Type       string                  `json:"type"`
	Properties map[string]GeminiSchema `json:"properties,omitempty"`
	Items      *GeminiSchema           `json:"items,omitempty"`
	Required   []string                `json:"required,omitempty"`
}

type GeminiResponse struct {
	Candidates []GeminiCandidate `json:"candidates"`
}

type GeminiCandidate struct {
	Content      GeminiContent `json:"content"`
	FinishReason string        `json:"finishReason,omitempty"`
}
