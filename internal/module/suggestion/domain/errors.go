package domain

import (
	"net/http"

	"personalfinancedss/internal/shared"
)

var (
	ErrSuggestionNotFound = shared.NewAppError(shared.ErrCodeNotFound, "Suggestion not found", http.StatusNotFound)

	ErrInvalidTransition = shared.NewAppError(shared.ErrCodeStateMachine, "Suggestion cannot transition from its current state", http.StatusConflict)
	ErrExpired           = shared.NewAppError(shared.ErrCodeStateMachine, "Suggestion has expired", http.StatusConflict)
	ErrUnmetPrerequisite = shared.NewAppError(shared.ErrCodeStateMachine, "Suggestion prerequisites are not satisfied", http.StatusConflict)
	ErrUnresolvedConflict = shared.NewAppError(shared.ErrCodeStateMachine, "Suggestion has unresolved conflicts", http.StatusConflict)
	ErrCooldownActive    = shared.NewAppError(shared.ErrCodeStateMachine, "A prior suggestion of this type is still in its cooldown window", http.StatusConflict)
	ErrAlreadyExecuted   = shared.NewAppError(shared.ErrCodeStateMachine, "Suggestion has already been executed", http.StatusConflict)
	ErrPartialRollback   = shared.NewAppError(shared.ErrCodeStateMachine, "Rollback cannot leave the suggestion partially reverted", http.StatusConflict)

	ErrConcurrentUpdate = shared.NewAppError(shared.ErrCodeConcurrency, "Suggestion was modified concurrently, retry", http.StatusConflict)
)
