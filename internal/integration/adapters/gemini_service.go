// Package adapters provides implementations for external service integrations.
package adapters

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"google.golang.org/api/option"

	"github.com/paisa-buddy/backend/internal/application/adapter"
	"github.com/paisa-buddy/backend/internal/domain/entity"
	domainerror "github.com/paisa-buddy/backend/internal/domain/error"
)

// DefaultGeminiModel is used when no model name is configured.
const DefaultGeminiModel = "gemini-2.5-flash-lite"

const fallbackSummary = "Analysis complete. Check your spending patterns above."

// GeminiService implements adapter.InsightService using Google Gemini.
type GeminiService struct {
	apiKey    string
	modelName string
}

// NewGeminiService creates a new Gemini service instance.
func NewGeminiService(apiKey, modelName string) *GeminiService {
	if modelName == "" {
		modelName = DefaultGeminiModel
	}
	return &GeminiService{
		apiKey:    apiKey,
		modelName: modelName,
	}
}

var _ adapter.InsightService = (*GeminiService)(nil)

// IsAvailable checks if the Gemini service is available and properly configured.
func (s *GeminiService) IsAvailable() bool {
	return s.apiKey != ""
}

// GenerateInsights asks Gemini for structured advice on the snapshot.
func (s *GeminiService) GenerateInsights(ctx context.Context, snapshot entity.FinancialSnapshot) (*entity.AIInsight, error) {
	if len(snapshot.Recent) == 0 {
		return nil, domainerror.ErrNoTransactionsForInsights
	}

	text, err := s.generate(ctx, buildInsightPrompt(snapshot), 0.7, true)
	if err != nil {
		return nil, err
	}
	return parseInsight(text), nil
}

// AskQuestion asks Gemini a free-text question with the snapshot as context.
func (s *GeminiService) AskQuestion(ctx context.Context, question string, snapshot entity.FinancialSnapshot) (string, error) {
	text, err := s.generate(ctx, buildQuestionPrompt(question, snapshot), 0.7, false)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(text), nil
}

// generate sends one prompt and returns the first text part of the answer.
func (s *GeminiService) generate(ctx context.Context, prompt string, temperature float32, jsonMode bool) (string, error) {
	if !s.IsAvailable() {
		return "", domainerror.ErrInsightNotConfigured
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(s.apiKey))
	if err != nil {
		return "", fmt.Errorf("failed to create gemini client: %w", err)
	}
	defer client.Close()

	model := client.GenerativeModel(s.modelName)
	model.SetTemperature(temperature)
	if jsonMode {
		model.ResponseMIMEType = "application/json"
		model.SetMaxOutputTokens(1024)
	} else {
		model.SetMaxOutputTokens(256)
	}

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("failed to generate content: %w", err)
	}

	text := firstText(resp)
	if text == "" {
		return "", fmt.Errorf("no text content in response: %w", domainerror.ErrInsightServiceError)
	}
	return text, nil
}

func firstText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ""
	}
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			return string(text)
		}
	}
	return ""
}

var (
	codeFence   = regexp.MustCompile("(?i)^```(?:json)?\\s*|\\s*```$")
	jsonObject  = regexp.MustCompile(`(?s)\{.*\}`)
	jsonSymbols = regexp.MustCompile(`[{}\[\]",]`)
	whitespace  = regexp.MustCompile(`\s+`)
)

// geminiInsight is the JSON shape requested from Gemini.
type geminiInsight struct {
	Summary         string   `json:"summary"`
	Recommendations []string `json:"recommendations"`
	Warnings        []string `json:"warnings"`
	Opportunities   []string `json:"opportunities"`
}

// parseInsight reads the model output leniently. Output that is not JSON is
// kept as a plain summary.
func parseInsight(text string) *entity.AIInsight {
	clean := codeFence.ReplaceAllString(strings.TrimSpace(text), "")

	if match := jsonObject.FindString(clean); match != "" {
		var parsed geminiInsight
		if err := json.Unmarshal([]byte(match), &parsed); err == nil {
			return &entity.AIInsight{
				Summary:         parsed.Summary,
				Recommendations: nonNil(parsed.Recommendations),
				Warnings:        nonNil(parsed.Warnings),
				Opportunities:   nonNil(parsed.Opportunities),
			}
		}
	}

	summary := strings.TrimSpace(whitespace.ReplaceAllString(jsonSymbols.ReplaceAllString(clean, " "), " "))
	if summary == "" {
		summary = fallbackSummary
	}
	return &entity.AIInsight{
		Summary:         summary,
		Recommendations: []string{},
		Warnings:        []string{},
		Opportunities:   []string{},
	}
}

func nonNil(items []string) []string {
	if items == nil {
		return []string{}
	}
	return items
}

var inr = message.NewPrinter(language.MustParse("en-IN"))

// rupees formats an amount as whole rupees with Indian digit grouping.
func rupees(amount decimal.Decimal) string {
	return "₹" + inr.Sprintf("%d", amount.Round(0).IntPart())
}

// buildInsightPrompt creates the prompt for structured advice.
func buildInsightPrompt(snapshot entity.FinancialSnapshot) string {
	var sb strings.Builder

	sb.WriteString(`You are a friendly and knowledgeable Indian financial advisor named "Paisa Buddy AI". Analyze this user's financial data and provide personalized insights in a warm, encouraging tone.

## User's Financial Snapshot (amounts in INR):

**Overview:**
`)
	fmt.Fprintf(&sb, "- Total Income: %s\n", rupees(snapshot.Totals.Income))
	fmt.Fprintf(&sb, "- Total Expenses: %s\n", rupees(snapshot.Totals.Expenses))
	fmt.Fprintf(&sb, "- Net Savings: %s\n", rupees(snapshot.Totals.Balance))
	fmt.Fprintf(&sb, "- Savings Rate: %d%%\n", snapshot.Totals.SavingsRate)

	if snapshot.HighestCategory != nil {
		fmt.Fprintf(&sb, "\n**Top Spending Category:** %s (%s)\n",
			snapshot.HighestCategory.Category, rupees(snapshot.HighestCategory.Amount))
	}
	if snapshot.TopDay != nil {
		fmt.Fprintf(&sb, "\n**Highest Spending Day:** %s (%s)\n",
			snapshot.TopDay.Day, rupees(snapshot.TopDay.Amount))
	}

	fmt.Fprintf(&sb, "\n**Recent Transactions (last %d):**\n", len(snapshot.Recent))
	for _, t := range snapshot.Recent {
		fmt.Fprintf(&sb, "- %s: %s (%s)\n", t.Name, rupees(t.Amount), t.Category)
	}

	if len(snapshot.Goals) > 0 {
		sb.WriteString("\n**Savings Goals:**\n")
		for _, g := range snapshot.Goals {
			fmt.Fprintf(&sb, "- %s: %s / %s (%d%% complete)\n", g.Name, rupees(g.Current), rupees(g.Target), g.Progress)
		}
	}

	if len(snapshot.Budgets) > 0 {
		sb.WriteString("\n**Budget Status:**\n")
		for _, b := range snapshot.Budgets {
			fmt.Fprintf(&sb, "- %s: %s / %s (%d%% used)\n", b.Category, rupees(b.Spent), rupees(b.Limit), b.PercentUsed)
		}
	}

	sb.WriteString(`
---

Please provide a comprehensive financial analysis with:

1. **Summary** (2-3 sentences): Overall financial health assessment
2. **Key Recommendations** (3-4 bullet points): Actionable advice to improve finances
3. **Warnings** (1-2 bullet points): Any concerning patterns or risks
4. **Opportunities** (2-3 bullet points): Ways to save more or grow wealth

Use Indian financial context (mention SIP, PPF, NPS, mutual funds where relevant). Be encouraging but honest. Include specific numbers from the data. Use simple language suitable for someone new to personal finance.

IMPORTANT: Return ONLY valid JSON without any markdown code blocks or extra text. Use this exact format:
{"summary": "Your overall assessment here", "recommendations": ["Recommendation 1"], "warnings": ["Warning 1"], "opportunities": ["Opportunity 1"]}
`)

	return sb.String()
}

// buildQuestionPrompt creates the prompt for a free-text question.
func buildQuestionPrompt(question string, snapshot entity.FinancialSnapshot) string {
	var sb strings.Builder

	sb.WriteString("You are Paisa Buddy AI, a friendly Indian financial advisor. Answer this question based on the user's financial data.\n\n")
	fmt.Fprintf(&sb, "User's Question: %q\n\n", question)
	sb.WriteString("Financial Context (INR):\n")
	fmt.Fprintf(&sb, "- Income: %s\n", rupees(snapshot.Totals.Income))
	fmt.Fprintf(&sb, "- Expenses: %s\n", rupees(snapshot.Totals.Expenses))
	fmt.Fprintf(&sb, "- Net: %s\n", rupees(snapshot.Totals.Balance))
	fmt.Fprintf(&sb, "- Savings Rate: %d%%\n", snapshot.Totals.SavingsRate)
	if snapshot.HighestCategory != nil {
		fmt.Fprintf(&sb, "- Top Category: %s (%s)\n",
			snapshot.HighestCategory.Category, rupees(snapshot.HighestCategory.Amount))
	}
	sb.WriteString("\nProvide a concise, helpful answer (2-4 sentences) with specific advice. Use ₹ for currency. Do not format as JSON, just respond in plain conversational text.\n")

	return sb.String()
}
