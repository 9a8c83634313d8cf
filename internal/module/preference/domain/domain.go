// Package domain models the per-user learning state: how strongly each
// suggestion type/category should weigh, how often a user wants to be
// shown suggestions, and the feedback trail that drives both.
package domain

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	suggestionDomain "personalfinancedss/internal/module/suggestion/domain"
)

// Decision is how a user responded to a shown suggestion.
type Decision string

const (
	DecisionAccepted Decision = "accepted"
	DecisionRejected Decision = "rejected"
	DecisionIgnored  Decision = "ignored"
	DecisionModified Decision = "modified"
)

// Frequency is the suggestion-frequency ladder, keyed to a daily cap.
type Frequency string

const (
	FrequencyLow      Frequency = "low"
	FrequencyMedium   Frequency = "medium"
	FrequencyHigh     Frequency = "high"
	FrequencyAdaptive Frequency = "adaptive"
)

// DailyMax is the per-frequency daily suggestion cap.
var DailyMax = map[Frequency]int{
	FrequencyLow:      2,
	FrequencyMedium:   5,
	FrequencyHigh:     10,
	FrequencyAdaptive: 5,
}

// TypePreference tracks how a user has responded to one suggestion type.
type TypePreference struct {
	Weight        float64    `json:"weight"`
	AcceptedCount int        `json:"acceptedCount"`
	RejectedCount int        `json:"rejectedCount"`
	LastShown     *time.Time `json:"lastShown,omitempty"`
	LastAction    Decision   `json:"lastAction,omitempty"`
	CooldownDays  int        `json:"cooldownDays"`
}

// QuietHours is the window, in local HH:MM, outside which suggestions
// should not be surfaced.
type QuietHours struct {
	Enabled bool   `json:"enabled"`
	Start   string `json:"start,omitempty"`
	End     string `json:"end,omitempty"`
}

// GlobalPreference tracks overall engagement across all suggestion types.
type GlobalPreference struct {
	TotalShown          int        `json:"totalShown"`
	TotalAccepted       int        `json:"totalAccepted"`
	TotalRejected       int        `json:"totalRejected"`
	AcceptanceRate      float64    `json:"acceptanceRate"`
	SuggestionFrequency Frequency  `json:"suggestionFrequency"`
	QuietHours          QuietHours `json:"quietHours"`
}

// SuggestionPreferences bundles per-type weights with the global summary.
type SuggestionPreferences struct {
	Types  map[suggestionDomain.Type]TypePreference `json:"types"`
	Global GlobalPreference                         `json:"global"`
}

// CategoryFeedbackEntry is one feedback-driven adjustment to a category's
// weight, kept so WeightAdjuster can derive the category's recent
// volatility from the trail of weights rather than a separate series.
type CategoryFeedbackEntry struct {
	At       time.Time `json:"at"`
	Decision Decision  `json:"decision"`
	Weight   float64   `json:"weight"`
}

// CategoryPreference tracks learning state scoped to one spending category.
type CategoryPreference struct {
	Weight           float64                 `json:"weight"`
	AcceptedCount    int                     `json:"acceptedCount"`
	RejectedCount    int                     `json:"rejectedCount"`
	PriceSensitivity float64                 `json:"priceSensitivity"` // 0..1, higher = more averse to spend increases
	ChangeTolerance  float64                 `json:"changeTolerance"`  // 0..1, higher = more open to proposed changes
	Feedback         []CategoryFeedbackEntry `json:"feedback,omitempty"`
}

// TimePreferences tracks when a user tends to respond to suggestions.
type TimePreferences struct {
	BestTimeToSuggest string `json:"bestTimeToSuggest"` // "adaptive", "morning", "afternoon", "evening"
	ResponseTimeByHour [24]int `json:"responseTimeByHour"`
}

// RiskTolerance mirrors suggestion/domain.RiskLevel without importing it
// for a single field, keeping this package's public surface self-contained.
type RiskTolerance = suggestionDomain.RiskLevel

// ImpactPreferences bounds how suggestions are filtered by impact and risk.
type ImpactPreferences struct {
	MinSavingsAmount float64       `json:"minSavingsAmount"`
	MaxRiskTolerance RiskTolerance `json:"maxRiskTolerance"`
}

// Metadata carries the learning on/off switch and a schema version for the
// nested jsonb documents, so a future migration can detect old shapes.
type Metadata struct {
	LearningEnabled bool `json:"learningEnabled"`
	Version         int  `json:"version"`
}

// ShownCounter tracks how many times a type has been shown on one local
// calendar day, reset the first time ShouldShowSuggestion sees a new date.
type ShownCounter struct {
	Date  string `json:"date"` // YYYY-MM-DD
	Count int    `json:"count"`
}

// UserPreference is the per-user learning state row (one per user). The
// nested learning documents are stored as jsonb blobs, matching the
// teacher's DSSMetadata convention of a documented jsonb column rather than
// a column-per-field schema for a shape this deeply nested.
type UserPreference struct {
	ID     uuid.UUID `gorm:"type:uuid;default:uuidv7();primaryKey" json:"id"`
	UserID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex;column:user_id" json:"userId"`

	SuggestionPreferencesRaw datatypes.JSON `gorm:"type:jsonb;column:suggestion_preferences" json:"suggestionPreferences"`
	CategoryPreferencesRaw   datatypes.JSON `gorm:"type:jsonb;column:category_preferences" json:"categoryPreferences"`
	TimePreferencesRaw       datatypes.JSON `gorm:"type:jsonb;column:time_preferences" json:"timePreferences"`
	ImpactPreferencesRaw     datatypes.JSON `gorm:"type:jsonb;column:impact_preferences" json:"impactPreferences"`
	MetadataRaw              datatypes.JSON `gorm:"type:jsonb;column:metadata" json:"metadata"`
	ShownCountersRaw         datatypes.JSON `gorm:"type:jsonb;column:shown_counters" json:"shownCounters"`

	Version   int            `gorm:"not null;default:1;column:version" json:"version"`
	CreatedAt time.Time      `gorm:"autoCreateTime;column:created_at" json:"createdAt"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime;column:updated_at" json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index;column:deleted_at" json:"-"`
}

// TableName specifies the table name for UserPreference.
func (UserPreference) TableName() string {
	return "user_preferences"
}

// SuggestionPrefs unmarshals the suggestion-type learning document.
func (p *UserPreference) SuggestionPrefs() (SuggestionPreferences, error) {
	var v SuggestionPreferences
	if len(p.SuggestionPreferencesRaw) == 0 {
		return SuggestionPreferences{Types: map[suggestionDomain.Type]TypePreference{}}, nil
	}
	err := json.Unmarshal(p.SuggestionPreferencesRaw, &v)
	return v, err
}

// SetSuggestionPrefs marshals and stores the suggestion-type learning
// document.
func (p *UserPreference) SetSuggestionPrefs(v SuggestionPreferences) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	p.SuggestionPreferencesRaw = raw
	return nil
}

// CategoryPrefs unmarshals the per-category learning document.
func (p *UserPreference) CategoryPrefs() (map[string]CategoryPreference, error) {
	v := map[string]CategoryPreference{}
	if len(p.CategoryPreferencesRaw) == 0 {
		return v, nil
	}
	err := json.Unmarshal(p.CategoryPreferencesRaw, &v)
	return v, err
}

// SetCategoryPrefs marshals and stores the per-category learning document.
func (p *UserPreference) SetCategoryPrefs(v map[string]CategoryPreference) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	p.CategoryPreferencesRaw = raw
	return nil
}

// TimePrefs unmarshals the response-timing document.
func (p *UserPreference) TimePrefs() (TimePreferences, error) {
	v := TimePreferences{BestTimeToSuggest: "adaptive"}
	if len(p.TimePreferencesRaw) == 0 {
		return v, nil
	}
	err := json.Unmarshal(p.TimePreferencesRaw, &v)
	return v, err
}

// SetTimePrefs marshals and stores the response-timing document.
func (p *UserPreference) SetTimePrefs(v TimePreferences) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	p.TimePreferencesRaw = raw
	return nil
}

// ImpactPrefs unmarshals the impact/risk filtering document.
func (p *UserPreference) ImpactPrefs() (ImpactPreferences, error) {
	v := ImpactPreferences{MaxRiskTolerance: suggestionDomain.RiskMedium}
	if len(p.ImpactPreferencesRaw) == 0 {
		return v, nil
	}
	err := json.Unmarshal(p.ImpactPreferencesRaw, &v)
	return v, err
}

// SetImpactPrefs marshals and stores the impact/risk filtering document.
func (p *UserPreference) SetImpactPrefs(v ImpactPreferences) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	p.ImpactPreferencesRaw = raw
	return nil
}

// Meta unmarshals the learning on/off + schema version document.
func (p *UserPreference) Meta() (Metadata, error) {
	v := Metadata{LearningEnabled: true, Version: 1}
	if len(p.MetadataRaw) == 0 {
		return v, nil
	}
	err := json.Unmarshal(p.MetadataRaw, &v)
	return v, err
}

// SetMeta marshals and stores the learning on/off + schema version document.
func (p *UserPreference) SetMeta(v Metadata) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	p.MetadataRaw = raw
	return nil
}

// ShownCounters unmarshals the per-type daily shown-count document.
func (p *UserPreference) ShownCounterMap() (map[string]ShownCounter, error) {
	v := map[string]ShownCounter{}
	if len(p.ShownCountersRaw) == 0 {
		return v, nil
	}
	err := json.Unmarshal(p.ShownCountersRaw, &v)
	return v, err
}

// SetShownCounters marshals and stores the per-type daily shown-count
// document.
func (p *UserPreference) SetShownCounters(v map[string]ShownCounter) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	p.ShownCountersRaw = raw
	return nil
}

// NewUserPreference builds the default learning state for a new user:
// learning enabled, medium frequency, no quiet hours, empty type/category
// maps.
func NewUserPreference(userID uuid.UUID) *UserPreference {
	p := &UserPreference{UserID: userID, Version: 1}
	_ = p.SetSuggestionPrefs(SuggestionPreferences{
		Types:  map[suggestionDomain.Type]TypePreference{},
		Global: GlobalPreference{SuggestionFrequency: FrequencyMedium},
	})
	_ = p.SetCategoryPrefs(map[string]CategoryPreference{})
	_ = p.SetTimePrefs(TimePreferences{BestTimeToSuggest: "adaptive"})
	_ = p.SetImpactPrefs(ImpactPreferences{MaxRiskTolerance: suggestionDomain.RiskMedium})
	_ = p.SetMeta(Metadata{LearningEnabled: true, Version: 1})
	_ = p.SetShownCounters(map[string]ShownCounter{})
	return p
}

// ClampWeight keeps a type/category weight within the [0, 2] band.
func ClampWeight(w float64) float64 {
	switch {
	case w < 0:
		return 0
	case w > 2:
		return 2
	default:
		return w
	}
}

// clampUnit keeps a 0..1 ratio (priceSensitivity, changeTolerance) in range.
func clampUnit(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	default:
		return v
	}
}

// ClampUnit is the exported form of clampUnit, used by the service layer
// when nudging priceSensitivity/changeTolerance.
func ClampUnit(v float64) float64 { return clampUnit(v) }

// PeriodFor buckets an hour-of-day into the three suggestion-timing
// periods: morning 5-11, afternoon 12-16, evening 17-4.
func PeriodFor(hour int) string {
	switch {
	case hour >= 5 && hour <= 11:
		return "morning"
	case hour >= 12 && hour <= 16:
		return "afternoon"
	default:
		return "evening"
	}
}

// BelongsTo checks tenant ownership.
func (p *UserPreference) BelongsTo(userID uuid.UUID) bool {
	return p.UserID == userID
}

// FeedbackContext is the caller-supplied timing/viewing data for a decision.
type FeedbackContext struct {
	SuggestedAt      time.Time
	RespondedAt      time.Time
	ViewedDurationMs int64
}

// ResponseTimeMs derives the elapsed time between suggestion and response.
func (c FeedbackContext) ResponseTimeMs() int64 {
	return c.RespondedAt.Sub(c.SuggestedAt).Milliseconds()
}

// SuggestionFeedback is the append-only record of one user decision on one
// suggestion, keyed uniquely per suggestion.
type SuggestionFeedback struct {
	ID           uuid.UUID     `gorm:"type:uuid;default:uuidv7();primaryKey" json:"id"`
	UserID       uuid.UUID     `gorm:"type:uuid;not null;index;column:user_id" json:"userId"`
	SuggestionID uuid.UUID     `gorm:"type:uuid;not null;uniqueIndex;column:suggestion_id" json:"suggestionId"`
	Type         suggestionDomain.Type `gorm:"type:varchar(40);not null;column:type" json:"type"`
	Decision     Decision      `gorm:"type:varchar(20);not null;column:decision" json:"decision"`

	SuggestedAt      time.Time `gorm:"column:suggested_at" json:"suggestedAt"`
	RespondedAt      time.Time `gorm:"column:responded_at" json:"respondedAt"`
	ResponseTimeMs   int64     `gorm:"column:response_time_ms" json:"responseTimeMs"`
	ViewedDurationMs int64     `gorm:"column:viewed_duration_ms" json:"viewedDurationMs"`

	ReasonPrimary    string                           `gorm:"type:varchar(60);column:reason_primary" json:"reasonPrimary,omitempty"`
	ReasonsSecondary datatypes.JSONSlice[string]       `gorm:"type:jsonb;column:reasons_secondary" json:"reasonsSecondary,omitempty"`
	CustomReason     *string                          `gorm:"type:text;column:custom_reason" json:"customReason,omitempty"`

	ModificationsOriginal datatypes.JSON `gorm:"type:jsonb;column:modifications_original" json:"modificationsOriginal,omitempty"`
	ModificationsModified datatypes.JSON `gorm:"type:jsonb;column:modifications_modified" json:"modificationsModified,omitempty"`

	OutcomeApplied    bool `gorm:"column:outcome_applied" json:"outcomeApplied"`
	OutcomeSuccessful bool `gorm:"column:outcome_successful" json:"outcomeSuccessful"`
	OutcomeRolledBack bool `gorm:"column:outcome_rolled_back" json:"outcomeRolledBack"`

	CreatedAt time.Time `gorm:"autoCreateTime;column:created_at" json:"createdAt"`
}

// TableName specifies the table name for SuggestionFeedback.
func (SuggestionFeedback) TableName() string {
	return "suggestion_feedback"
}
