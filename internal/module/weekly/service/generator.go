package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"personalfinancedss/internal/analysis/window"
	"personalfinancedss/internal/llm"
	"personalfinancedss/internal/module/weekly/domain"
	"personalfinancedss/internal/module/weekly/repository"
)

const historicalLookbackWeeks = 4

var summarySchema = map[string]interface{}{
	"properties": map[string]interface{}{
		"overview": map[string]interface{}{"type": "string"},
		"insights": map[string]interface{}{"type": "array"},
	},
	"required": []string{"overview", "insights"},
}

type llmInsight struct {
	Type        string  `json:"type"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Confidence  int     `json:"confidence"`
	ImpactUSD   float64 `json:"impactUsd"`
	ImpactPct   float64 `json:"impactPct"`
	HasActions  bool    `json:"hasActions"`
}

type llmSummaryResponse struct {
	Overview string       `json:"overview"`
	Insights []llmInsight `json:"insights"`
}

// Service is the weekly-summary contract.
type Service interface {
	GenerateWeeklySummary(ctx context.Context, userID uuid.UUID, weekStart time.Time) (*domain.WeeklySummary, *domain.WeeklyMetric, error)
	GetSummary(ctx context.Context, userID uuid.UUID, weekStart time.Time) (*domain.WeeklySummary, *domain.WeeklyMetric, error)
}

// SummaryGenerator orchestrates: aggregate -> compare -> prompt LLM with a
// structured schema -> filter -> render overview.
type SummaryGenerator struct {
	repo       repository.Repository
	aggregator *MetricAggregator
	detector   *ShiftDetector
	filter     *InsightFilter
	llmClient  llm.Client
	log        *zap.Logger
	now        func() time.Time
}

// NewSummaryGenerator constructs the generator.
func NewSummaryGenerator(repo repository.Repository, aggregator *MetricAggregator, detector *ShiftDetector, filter *InsightFilter, llmClient llm.Client, log *zap.Logger) Service {
	return &SummaryGenerator{repo: repo, aggregator: aggregator, detector: detector, filter: filter, llmClient: llmClient, log: log, now: time.Now}
}

// GenerateWeeklySummary runs the full pipeline for one user's week and
// persists both the metric and the summary.
func (g *SummaryGenerator) GenerateWeeklySummary(ctx context.Context, userID uuid.UUID, weekStart time.Time) (*domain.WeeklySummary, *domain.WeeklyMetric, error) {
	metric, err := g.aggregator.Aggregate(ctx, userID, weekStart)
	if err != nil {
		return nil, nil, err
	}
	if err := g.repo.UpsertMetric(ctx, metric); err != nil {
		return nil, nil, err
	}

	historical, err := g.repo.FindRecentMetrics(ctx, userID, metric.WeekStart, historicalLookbackWeeks)
	if err != nil {
		return nil, nil, err
	}
	var previous *domain.WeeklyMetric
	if len(historical) > 0 {
		previous = &historical[0]
	}

	shifts, err := g.detector.Detect(metric, previous, historical)
	if err != nil {
		return nil, nil, err
	}

	summary := domain.NewWeeklySummary(userID, metric.ID, g.now())

	insights, overview, degraded := g.synthesize(ctx, metric, shifts)
	// The degraded fallback is surfaced as-is: it carries
	// exactly the one warning insight the caller needs to see, which
	// would otherwise be dropped by InsightFilter's impact-amount floor.
	filtered := insights
	if !degraded {
		filtered = g.filter.Filter(insights, shifts)
	}

	if err := summary.SetInsights(filtered); err != nil {
		return nil, nil, err
	}
	if err := summary.SetSignificantShifts(shifts); err != nil {
		return nil, nil, err
	}
	summary.Overview = overview
	if degraded {
		summary.Status = domain.SummaryStatusDegraded
	} else {
		summary.Status = domain.SummaryStatusComplete
	}

	if err := g.repo.CreateSummary(ctx, summary); err != nil {
		return nil, nil, err
	}
	return summary, metric, nil
}

// GetSummary returns the already-generated summary and metric for a week.
// weekStart may be any instant within the target week; it is normalized
// to that week's Monday the same way Aggregate does.
func (g *SummaryGenerator) GetSummary(ctx context.Context, userID uuid.UUID, weekStart time.Time) (*domain.WeeklySummary, *domain.WeeklyMetric, error) {
	bounds := window.WeekBounds(weekStart, time.Monday)
	metric, err := g.repo.FindMetricByUserAndWeek(ctx, userID, bounds.Start)
	if err != nil {
		return nil, nil, err
	}
	summary, err := g.repo.FindSummaryByMetricID(ctx, metric.ID)
	if err != nil {
		return nil, nil, err
	}
	return summary, metric, nil
}

// synthesize prompts the LLM for a narrative overview plus candidate
// insights. On failure it falls back to a degraded template: a single
// warning insight and an overview naming the ISO week start, never an
// error surfaced to the caller.
func (g *SummaryGenerator) synthesize(ctx context.Context, metric *domain.WeeklyMetric, shifts []domain.Shift) ([]domain.Insight, string, bool) {
	prompt, err := buildPrompt(metric, shifts)
	if err != nil {
		g.log.Warn("weekly: failed to build summary prompt", zap.Error(err))
		return degradedInsights(), degradedOverview(metric), true
	}

	resp, err := g.llmClient.Generate(ctx, llm.Request{
		Prompt:       prompt,
		Schema:       summarySchema,
		RequiredKeys: []string{"overview", "insights"},
	})
	if err != nil {
		g.log.Warn("weekly: llm summary generation failed", zap.Error(err))
		return degradedInsights(), degradedOverview(metric), true
	}

	var parsed llmSummaryResponse
	if err := json.Unmarshal(resp.JSON, &parsed); err != nil {
		g.log.Warn("weekly: failed to parse llm summary response", zap.Error(err))
		return degradedInsights(), degradedOverview(metric), true
	}

	insights := make([]domain.Insight, 0, len(parsed.Insights))
	for _, i := range parsed.Insights {
		insights = append(insights, domain.Insight{
			Type: domain.InsightType(i.Type), Title: i.Title, Description: i.Description,
			Confidence: i.Confidence, ImpactUSD: i.ImpactUSD, ImpactPct: i.ImpactPct, HasActions: i.HasActions,
		})
	}
	return insights, parsed.Overview, false
}

func buildPrompt(metric *domain.WeeklyMetric, shifts []domain.Shift) (string, error) {
	breakdown, err := metric.CategoryBreakdown()
	if err != nil {
		return "", err
	}
	payload := map[string]interface{}{
		"weekStart": metric.WeekStart.Format("2006-01-02"),
		"weekEnd":   metric.WeekEnd.Format("2006-01-02"),
		"income":    metric.Income,
		"expenses":  metric.Expenses,
		"savings":   metric.Savings,
		"breakdown": breakdown,
		"shifts":    shifts,
	}
	raw, err := json.Marshal(llm.Sanitize(toMap(payload)))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf(
		"Summarize this user's weekly financial activity as JSON with keys "+
			"\"overview\" (string) and \"insights\" (array of {type, title, "+
			"description, confidence, impactUsd, impactPct, hasActions}). Data: %s",
		string(raw),
	), nil
}

// toMap round-trips through JSON so llm.Sanitize's map[string]interface{}
// walk can operate on a value built from typed structs.
func toMap(v interface{}) map[string]interface{} {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil
	}
	var m map[string]interface{}
	_ = json.Unmarshal(raw, &m)
	return m
}

func degradedInsights() []domain.Insight {
	return []domain.Insight{{
		Type: domain.InsightTypeWarning, Title: "Summary generation incomplete",
		Confidence: 100,
	}}
}

func degradedOverview(metric *domain.WeeklyMetric) string {
	return fmt.Sprintf("Summary generation incomplete for the week of %s.", metric.WeekStart.Format("2006-01-02"))
}
