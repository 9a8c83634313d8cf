package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"personalfinancedss/internal/module/preference/domain"
	suggestionDomain "personalfinancedss/internal/module/suggestion/domain"
)

const lowWeightFloor = 0.1

// ShouldShowSuggestion runs an ordered chain of blocking checks; the
// first match wins.
func (s *service) ShouldShowSuggestion(ctx context.Context, userID uuid.UUID, t suggestionDomain.Type) (bool, error) {
	pref, err := s.GetOrCreatePreference(ctx, userID)
	if err != nil {
		return false, err
	}

	meta, err := pref.Meta()
	if err != nil {
		return false, err
	}
	if !meta.LearningEnabled {
		return true, nil
	}

	prefs, err := pref.SuggestionPrefs()
	if err != nil {
		return false, err
	}

	if inQuietHours(prefs.Global.QuietHours, s.now()) {
		return false, nil
	}

	tp, hasHistory := prefs.Types[t]
	if hasHistory && tp.LastShown != nil {
		cooldown := time.Duration(tp.CooldownDays) * 24 * time.Hour
		if cooldown > 0 && s.now().Sub(*tp.LastShown) < cooldown {
			return false, nil
		}
		if tp.Weight > 0 && tp.Weight <= lowWeightFloor {
			return false, nil
		}
	}

	counters, err := pref.ShownCounterMap()
	if err != nil {
		return false, err
	}
	today := s.now().Format("2006-01-02")
	c := counters[string(t)]
	dailyShown := 0
	if c.Date == today {
		dailyShown = c.Count
	}
	dailyMax, ok := domain.DailyMax[prefs.Global.SuggestionFrequency]
	if !ok {
		dailyMax = domain.DailyMax[domain.FrequencyMedium]
	}
	if dailyShown >= dailyMax {
		return false, nil
	}

	return true, nil
}

// inQuietHours reports whether `at` falls within the user's configured
// wall-clock quiet window, which may wrap past midnight (e.g. 22:00-07:00).
func inQuietHours(qh domain.QuietHours, at time.Time) bool {
	if !qh.Enabled || qh.Start == "" || qh.End == "" {
		return false
	}
	start, err1 := time.Parse("15:04", qh.Start)
	end, err2 := time.Parse("15:04", qh.End)
	if err1 != nil || err2 != nil {
		return false
	}
	nowMinutes := at.Hour()*60 + at.Minute()
	startMinutes := start.Hour()*60 + start.Minute()
	endMinutes := end.Hour()*60 + end.Minute()

	if startMinutes <= endMinutes {
		return nowMinutes >= startMinutes && nowMinutes < endMinutes
	}
	return nowMinutes >= startMinutes || nowMinutes < endMinutes
}
