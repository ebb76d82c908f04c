package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/safe-edu/api-go/models"
	"github.com/safe-edu/api-go/types"
)

// InsightConfig wraps the hosted narrative insight endpoint (Gemini). The call
// is advisory: every failure path degrades to a fixed fallback record so the
// caller never sees an error.
type InsightConfig struct {
	APIKey     string
	BaseURL    string
	Model      string
	HTTPClient *http.Client
}

func NewInsightConfig() *InsightConfig {
	baseURL := strings.TrimRight(os.Getenv("GEMINI_BASE_URL"), "/")
	if baseURL == "" {
		baseURL = "https://generativelanguage.googleapis.com"
	}

	model := os.Getenv("GEMINI_MODEL")
	if model == "" {
		model = "gemini-3-flash-preview"
	}

	return &InsightConfig{
		APIKey:  os.Getenv("GEMINI_API_KEY"),
		BaseURL: baseURL,
		Model:   model,
		HTTPClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

func insightSchema() *types.GeminiSchema {
	return &types.GeminiSchema{
		Type: "OBJECT",
		Properties: map[string]types.GeminiSchema{
			"analysis":  {Type: "STRING"},
			"riskLevel": {Type: "STRING"},
			"suggestedInterventions": {
				Type:  "ARRAY",
				Items: &types.GeminiSchema{Type: "STRING"},
			},
			"growthFocus": {Type: "STRING"},
		},
		Required: []string{"analysis", "riskLevel", "suggestedInterventions", "growthFocus"},
	}
}

// FallbackInsight is the fixed record substituted when the insight endpoint
// cannot be reached or returns something unusable.
func FallbackInsight(msg string) types.InsightResult {
	return types.InsightResult{
		Analysis:  msg,
		RiskLevel: "Undetermined",
		SuggestedInterventions: []string{
			"Verify primary student contact details.",
			"Schedule observation period.",
		},
		GrowthFocus: "General self-regulation focus recommended.",
	}
}

// GetBehavioralInsight packages a student's incident history into a
// generateContent request and parses the structured response.
func (ic *InsightConfig) GetBehavioralInsight(history []models.Incident) types.InsightResult {
	if ic.APIKey == "" {
		log.Println("GEMINI_API_KEY is missing, returning fallback insight")
		return FallbackInsight("API Access restricted.")
	}

	historyJSON, err := json.Marshal(history)
	if err != nil {
		return FallbackInsight("Automated analysis failed. Manual review of case logs is required.")
	}

	prompt := fmt.Sprintf(`You are an expert educational psychologist.
Analyze the following student incident history and provide a professional assessment.

Student Incident Data:
%s

Format your response as a JSON object.`, historyJSON)

	reqBody := types.GeminiRequest{
		Contents: []types.GeminiContent{
			{Parts: []types.GeminiPart{{Text: prompt}}},
		},
		GenerationConfig: &types.GeminiGenerationConfig{
			ResponseMimeType: "application/json",
			ResponseSchema:   insightSchema(),
		},
	}

	payload, err := json.Marshal(reqBody)
	if err != nil {
		return FallbackInsight("Automated analysis failed. Manual review of case logs is required.")
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent?key=%s", ic.BaseURL, ic.Model, ic.APIKey)
	resp, err := ic.HTTPClient.Post(url, "application/json", bytes.NewReader(payload))
	if err != nil {
		log.Printf("insight request failed: %v", err)
		return FallbackInsight("Automated analysis failed. Manual review of case logs is required.")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Printf("insight request returned status %d", resp.StatusCode)
		return FallbackInsight("Automated analysis failed. Manual review of case logs is required.")
	}

	var geminiResp types.GeminiResponse
	if err := json.NewDecoder(resp.Body).Decode(&geminiResp); err != nil {
		return FallbackInsight("Automated analysis failed. Manual review of case logs is required.")
	}
	if len(geminiResp.Candidates) == 0 || len(geminiResp.Candidates[0].Content.Parts) == 0 {
		return FallbackInsight("Automated analysis failed. Manual review of case logs is required.")
	}

	var result types.InsightResult
	if err := json.Unmarshal([]byte(geminiResp.Candidates[0].Content.Parts[0].Text), &result); err != nil {
		return FallbackInsight("Automated analysis failed. Manual review of case logs is required.")
	}

	return result
}
