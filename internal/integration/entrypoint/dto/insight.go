package dto

import (
	"github.com/paisa-buddy/backend/internal/application/usecase/insight"
	"github.com/paisa-buddy/backend/internal/domain/entity"
)

// AIInsightResponse represents structured advice from the AI service.
type AIInsightResponse struct {
	Summary         string   `json:"summary"`
	Recommendations []string `json:"recommendations"`
	Warnings        []string `json:"warnings"`
	Opportunities   []string `json:"opportunities"`
}

// InsightsResponse represents the response for insight generation.
type InsightsResponse struct {
	Snapshot      SnapshotResponse   `json:"snapshot"`
	LocalInsights []string           `json:"local_insights"`
	AI            *AIInsightResponse `json:"ai"`
	AIConfigured  bool               `json:"ai_configured"`
	AIError       *AIErrorResponse   `json:"ai_error"`
}

// AIErrorResponse describes why the AI service produced no advice.
type AIErrorResponse struct {
	Code      string `json:"code"`
	Message   string `json:"message"`
	Retryable bool   `json:"retryable"`
}

// AskQuestionRequest represents the request body for a question to the AI service.
type AskQuestionRequest struct {
	Question string `json:"question" binding:"required"`
}

// AskQuestionResponse represents the answer to a question.
type AskQuestionResponse struct {
	Answer string `json:"answer"`
}

// ToInsightsResponse converts the insight output to its DTO.
func ToInsightsResponse(output *insight.GenerateInsightsOutput) InsightsResponse {
	return InsightsResponse{
		Snapshot:      ToSnapshotResponse(output.Snapshot),
		LocalInsights: nonNilStrings(output.LocalInsights),
		AI:            toAIInsight(output.AI),
		AIConfigured:  output.AIConfigured,
		AIError:       toAIError(output),
	}
}

func toAIError(output *insight.GenerateInsightsOutput) *AIErrorResponse {
	if output.AIError == nil {
		return nil
	}
	return &AIErrorResponse{
		Code:      string(output.AIError.Code),
		Message:   output.AIError.Message,
		Retryable: output.AIRetryable,
	}
}

func toAIInsight(ai *entity.AIInsight) *AIInsightResponse {
	if ai == nil {
		return nil
	}
	return &AIInsightResponse{
		Summary:         ai.Summary,
		Recommendations: nonNilStrings(ai.Recommendations),
		Warnings:        nonNilStrings(ai.Warnings),
		Opportunities:   nonNilStrings(ai.Opportunities),
	}
}

func nonNilStrings(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
