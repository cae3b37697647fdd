// Package verify is the optional AI cross-check collaborator. It sends the
// profile and the engine's headline numbers to Gemini for an independent
// recomputation. Its answer is advisory display data only: it never feeds
// back into the engine, and any failure here degrades to a notice.
package verify

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"github.com/joho/godotenv"
	"google.golang.org/api/option"

	"github.com/visatax/visatax/internal/domain"
)

const modelName = "gemini-2.0-flash"

// Check is the parsed verification verdict.
type Check struct {
	Agrees bool   `json:"agrees"`
	Notes  string `json:"notes"`
}

// Verifier wraps the Gemini client.
type Verifier struct {
	client *genai.Client
}

// NewVerifier creates a verifier from the GEMINI_API_KEY environment
// variable, loading a .env file first when one exists. A missing key returns
// an error so the caller can skip verification rather than fail.
func NewVerifier(ctx context.Context) (*Verifier, error) {
	// A missing .env file is fine; the key may come from the environment.
	_ = godotenv.Load()

	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY is not set")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	return &Verifier{client: client}, nil
}

// Close releases the underlying client.
func (v *Verifier) Close() error {
	return v.client.Close()
}

// CrossCheck asks the model to recompute the headline figures and say whether
// it agrees. Only the numeric subset of the result is shared.
func (v *Verifier) CrossCheck(ctx context.Context, profile domain.Profile, result domain.TaxResult) (Check, error) {
	model := v.client.GenerativeModel(modelName)
	model.SetTemperature(0.0)

	resp, err := model.GenerateContent(ctx, genai.Text(crossCheckPrompt(profile, result)))
	if err != nil {
		return Check{}, fmt.Errorf("error calling Gemini API: %w", err)
	}

	if len(resp.Candidates) == 0 || len(resp.Candidates[0].Content.Parts) == 0 {
		return Check{}, fmt.Errorf("no response from Gemini API")
	}
	content, ok := resp.Candidates[0].Content.Parts[0].(genai.Text)
	if !ok {
		return Check{}, fmt.Errorf("unexpected response format from Gemini API")
	}

	var check Check
	jsonStr := cleanJSONResponse(string(content))
	if err := json.Unmarshal([]byte(jsonStr), &check); err != nil {
		return Check{}, fmt.Errorf("error parsing Gemini response: %w\nResponse: %s", err, jsonStr)
	}
	return check, nil
}

func crossCheckPrompt(profile domain.Profile, result domain.TaxResult) string {
	return fmt.Sprintf(`You are a US tax reviewer. Independently estimate the taxes for this filer
and compare against the figures below. Treat F-1 students within their first 5
calendar years of US presence as FICA-exempt.

Filer: visa=%s country=%s years_in_us=%d state=%s filing_status=%s tax_year=%d
Annual gross pay: %s, pre-tax deductions: %s

Computed figures:
federal_tax=%s state_tax=%s fica_tax=%s federal_refund=%s

Return ONLY a valid JSON object with this structure:
{"agrees": true or false, "notes": "one short sentence on any discrepancy"}

Do not include any explanations, markdown formatting, or additional text
outside the JSON object.`,
		profile.VisaStatus, profile.Country, profile.YearsInUS, profile.State,
		profile.FilingStatus, profile.TaxYear,
		result.AnnualGross.StringFixed(2), result.AnnualPreTaxDeductions.StringFixed(2),
		result.FederalTax.StringFixed(2), result.State.Tax.StringFixed(2),
		result.FICA.Total.StringFixed(2), result.FederalRefund.StringFixed(2))
}

// cleanJSONResponse strips markdown code fences the model sometimes adds.
func cleanJSONResponse(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}
