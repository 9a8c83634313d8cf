// Package transform holds the per-type validator/applier pairs the
// suggestion lifecycle dispatches on when applying or rolling back a
// suggestion. Validators are pure; appliers run inside the caller's
// transaction and must either complete every mutation they own or none
// (no partial updates).
package transform

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"personalfinancedss/internal/module/suggestion/domain"
)

// BudgetAdjustmentChange is the ProposedChanges payload for
// TypeBudgetAdjustment.
type BudgetAdjustmentChange struct {
	BudgetID  uuid.UUID `json:"budgetId"`
	OldAmount float64   `json:"oldAmount"`
	NewAmount float64   `json:"newAmount"`
}

// SavingsIncreaseChange is the ProposedChanges payload for
// TypeSavingsIncrease.
type SavingsIncreaseChange struct {
	GoalID            uuid.UUID `json:"goalId"`
	OldAutoSave       bool      `json:"oldAutoSave"`
	NewAutoSaveAmount float64   `json:"newAutoSaveAmount"`
	EnabledAutoSave   bool      `json:"enabledAutoSave"` // true iff this change turned auto-save on
}

// SubscriptionCancellationChange is the ProposedChanges payload for
// TypeSubscriptionCancellation.
type SubscriptionCancellationChange struct {
	SubscriptionID uuid.UUID `json:"subscriptionId"`
}

// CategoryCreationChange is the ProposedChanges payload for
// TypeCategoryCreation.
type CategoryCreationChange struct {
	CategoryID uuid.UUID `json:"categoryId"`
	Name       string    `json:"name"`
}

// BudgetCreationChange is the ProposedChanges payload for
// TypeBudgetCreation.
type BudgetCreationChange struct {
	BudgetID uuid.UUID `json:"budgetId"`
}

// GoalAdjustmentChange is the ProposedChanges payload for
// TypeGoalAdjustment.
type GoalAdjustmentChange struct {
	GoalID      uuid.UUID  `json:"goalId"`
	OldTarget   float64    `json:"oldTarget"`
	NewTarget   float64    `json:"newTarget"`
	OldPriority int        `json:"oldPriority"`
	NewPriority int        `json:"newPriority"`
	TargetID    *uuid.UUID `json:"targetId,omitempty"`
}

// TransactionCategorizationChange is the ProposedChanges payload for
// TypeTransactionCategorization.
type TransactionCategorizationChange struct {
	TransactionID uuid.UUID `json:"transactionId"`
	OldCategoryID uuid.UUID `json:"oldCategoryId"`
	NewCategoryID uuid.UUID `json:"newCategoryId"`
}

// Result is what an applier or rollback step reports for one execution step.
type Result struct {
	Success        bool
	Data           string
	TransactionIDs []uuid.UUID
}

// Mutator is implemented by a gorm.DB-backed entity store capable of
// performing the raw column updates an applier needs. Kept minimal and
// generic so transform doesn't import every entity module directly;
// concrete wiring happens in the suggestion service, which has access to
// each entity's own repository.
type Mutator interface {
	SetBudgetAmount(ctx context.Context, tx *gorm.DB, budgetID uuid.UUID, amount float64) error
	SetGoalAutoSave(ctx context.Context, tx *gorm.DB, goalID uuid.UUID, enabled bool, amount float64) error
	SetGoalTargetAndPriority(ctx context.Context, tx *gorm.DB, goalID uuid.UUID, target float64, priority int) error
	SetSubscriptionStatus(ctx context.Context, tx *gorm.DB, subscriptionID uuid.UUID, status string) error
	DeleteCategory(ctx context.Context, tx *gorm.DB, categoryID uuid.UUID) error
	CategoryHasTransactions(ctx context.Context, tx *gorm.DB, categoryID uuid.UUID) (bool, error)
	DeleteBudget(ctx context.Context, tx *gorm.DB, budgetID uuid.UUID) error
	SetTransactionCategory(ctx context.Context, tx *gorm.DB, transactionID, categoryID uuid.UUID) error
}

// Apply dispatches on suggestion type, running the applier inside tx.
func Apply(ctx context.Context, tx *gorm.DB, m Mutator, t domain.Type, raw []byte) (Result, error) {
	switch t {
	case domain.TypeBudgetAdjustment:
		var c BudgetAdjustmentChange
		if err := unmarshal(raw, &c); err != nil {
			return Result{}, err
		}
		if err := m.SetBudgetAmount(ctx, tx, c.BudgetID, c.NewAmount); err != nil {
			return Result{}, err
		}
		return Result{Success: true, Data: fmt.Sprintf("budget %s set to %.2f", c.BudgetID, c.NewAmount)}, nil

	case domain.TypeSavingsIncrease:
		var c SavingsIncreaseChange
		if err := unmarshal(raw, &c); err != nil {
			return Result{}, err
		}
		if err := m.SetGoalAutoSave(ctx, tx, c.GoalID, true, c.NewAutoSaveAmount); err != nil {
			return Result{}, err
		}
		return Result{Success: true, Data: fmt.Sprintf("goal %s auto-save set to %.2f", c.GoalID, c.NewAutoSaveAmount)}, nil

	case domain.TypeSubscriptionCancellation:
		var c SubscriptionCancellationChange
		if err := unmarshal(raw, &c); err != nil {
			return Result{}, err
		}
		if err := m.SetSubscriptionStatus(ctx, tx, c.SubscriptionID, "cancelled"); err != nil {
			return Result{}, err
		}
		return Result{Success: true, Data: fmt.Sprintf("subscription %s cancelled", c.SubscriptionID)}, nil

	case domain.TypeCategoryCreation:
		var c CategoryCreationChange
		if err := unmarshal(raw, &c); err != nil {
			return Result{}, err
		}
		return Result{Success: true, Data: fmt.Sprintf("category %s created", c.CategoryID)}, nil

	case domain.TypeBudgetCreation:
		var c BudgetCreationChange
		if err := unmarshal(raw, &c); err != nil {
			return Result{}, err
		}
		return Result{Success: true, Data: fmt.Sprintf("budget %s created", c.BudgetID)}, nil

	case domain.TypeGoalAdjustment:
		var c GoalAdjustmentChange
		if err := unmarshal(raw, &c); err != nil {
			return Result{}, err
		}
		if err := m.SetGoalTargetAndPriority(ctx, tx, c.GoalID, c.NewTarget, c.NewPriority); err != nil {
			return Result{}, err
		}
		return Result{Success: true, Data: fmt.Sprintf("goal %s target set to %.2f", c.GoalID, c.NewTarget)}, nil

	case domain.TypeTransactionCategorization:
		var c TransactionCategorizationChange
		if err := unmarshal(raw, &c); err != nil {
			return Result{}, err
		}
		if err := m.SetTransactionCategory(ctx, tx, c.TransactionID, c.NewCategoryID); err != nil {
			return Result{}, err
		}
		return Result{Success: true, Data: fmt.Sprintf("transaction %s recategorized", c.TransactionID)}, nil

	default:
		return Result{}, fmt.Errorf("transform: unsupported suggestion type %q", t)
	}
}

// Rollback reverses a previously applied suggestion, per each type's
// specific undo rule.
func Rollback(ctx context.Context, tx *gorm.DB, m Mutator, t domain.Type, raw []byte) (Result, error) {
	switch t {
	case domain.TypeBudgetAdjustment:
		var c BudgetAdjustmentChange
		if err := unmarshal(raw, &c); err != nil {
			return Result{}, err
		}
		if err := m.SetBudgetAmount(ctx, tx, c.BudgetID, c.OldAmount); err != nil {
			return Result{}, err
		}
		return Result{Success: true, Data: "budget amount restored"}, nil

	case domain.TypeSavingsIncrease:
		var c SavingsIncreaseChange
		if err := unmarshal(raw, &c); err != nil {
			return Result{}, err
		}
		if c.EnabledAutoSave {
			if err := m.SetGoalAutoSave(ctx, tx, c.GoalID, false, 0); err != nil {
				return Result{}, err
			}
		}
		return Result{Success: true, Data: "auto-save reverted"}, nil

	case domain.TypeSubscriptionCancellation:
		var c SubscriptionCancellationChange
		if err := unmarshal(raw, &c); err != nil {
			return Result{}, err
		}
		if err := m.SetSubscriptionStatus(ctx, tx, c.SubscriptionID, "active"); err != nil {
			return Result{}, err
		}
		return Result{Success: true, Data: "subscription reactivated"}, nil

	case domain.TypeCategoryCreation:
		var c CategoryCreationChange
		if err := unmarshal(raw, &c); err != nil {
			return Result{}, err
		}
		hasTx, err := m.CategoryHasTransactions(ctx, tx, c.CategoryID)
		if err != nil {
			return Result{}, err
		}
		if hasTx {
			return Result{Success: false}, fmt.Errorf("transform: category %s has referencing transactions, cannot roll back", c.CategoryID)
		}
		if err := m.DeleteCategory(ctx, tx, c.CategoryID); err != nil {
			return Result{}, err
		}
		return Result{Success: true, Data: "category deleted"}, nil

	case domain.TypeBudgetCreation:
		var c BudgetCreationChange
		if err := unmarshal(raw, &c); err != nil {
			return Result{}, err
		}
		if err := m.DeleteBudget(ctx, tx, c.BudgetID); err != nil {
			return Result{}, err
		}
		return Result{Success: true, Data: "budget deleted"}, nil

	case domain.TypeGoalAdjustment:
		var c GoalAdjustmentChange
		if err := unmarshal(raw, &c); err != nil {
			return Result{}, err
		}
		if err := m.SetGoalTargetAndPriority(ctx, tx, c.GoalID, c.OldTarget, c.OldPriority); err != nil {
			return Result{}, err
		}
		return Result{Success: true, Data: "goal target/priority restored"}, nil

	case domain.TypeTransactionCategorization:
		var c TransactionCategorizationChange
		if err := unmarshal(raw, &c); err != nil {
			return Result{}, err
		}
		if err := m.SetTransactionCategory(ctx, tx, c.TransactionID, c.OldCategoryID); err != nil {
			return Result{}, err
		}
		return Result{Success: true, Data: "transaction category restored"}, nil

	default:
		return Result{}, fmt.Errorf("transform: unsupported suggestion type %q", t)
	}
}
