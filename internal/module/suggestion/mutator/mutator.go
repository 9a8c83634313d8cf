// Package mutator implements transform.Mutator against the real entity
// tables, so applying or rolling back a suggestion performs the same column
// writes a direct API call to the budget/goal/subscription/category/
// transaction modules would.
package mutator

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	budgetDomain "personalfinancedss/internal/module/cashflow/budget/domain"
	categoryDomain "personalfinancedss/internal/module/cashflow/category/domain"
	goalDomain "personalfinancedss/internal/module/cashflow/goal/domain"
	subscriptionDomain "personalfinancedss/internal/module/cashflow/subscription/domain"
	transactionDomain "personalfinancedss/internal/module/cashflow/transaction/domain"
)

// Mutator implements suggestion/transform.Mutator directly against gorm.DB,
// so every write happens inside the caller's transaction.
type Mutator struct{}

// New constructs the entity mutator.
func New() *Mutator {
	return &Mutator{}
}

func conn(tx *gorm.DB) *gorm.DB {
	if tx == nil {
		panic("mutator: nil transaction")
	}
	return tx
}

func (m *Mutator) SetBudgetAmount(ctx context.Context, tx *gorm.DB, budgetID uuid.UUID, amount float64) error {
	var b budgetDomain.Budget
	if err := conn(tx).WithContext(ctx).First(&b, "id = ?", budgetID).Error; err != nil {
		return err
	}
	b.Amount = amount
	b.UpdateCalculatedFields()
	return conn(tx).WithContext(ctx).Save(&b).Error
}

func (m *Mutator) SetGoalAutoSave(ctx context.Context, tx *gorm.DB, goalID uuid.UUID, enabled bool, amount float64) error {
	var g goalDomain.Goal
	if err := conn(tx).WithContext(ctx).First(&g, "id = ?", goalID).Error; err != nil {
		return err
	}
	g.AutoContribute = enabled
	if enabled {
		g.AutoContributeAmount = &amount
	} else {
		g.AutoContributeAmount = nil
	}
	return conn(tx).WithContext(ctx).Save(&g).Error
}

func (m *Mutator) SetGoalTargetAndPriority(ctx context.Context, tx *gorm.DB, goalID uuid.UUID, target float64, priority int) error {
	var g goalDomain.Goal
	if err := conn(tx).WithContext(ctx).First(&g, "id = ?", goalID).Error; err != nil {
		return err
	}
	g.TargetAmount = target
	g.Priority = priorityFromInt(priority)
	g.UpdateCalculatedFields()
	return conn(tx).WithContext(ctx).Save(&g).Error
}

func priorityFromInt(p int) goalDomain.GoalPriority {
	switch p {
	case 1:
		return goalDomain.GoalPriorityHigh
	case 3:
		return goalDomain.GoalPriorityLow
	default:
		return goalDomain.GoalPriorityMedium
	}
}

func (m *Mutator) SetSubscriptionStatus(ctx context.Context, tx *gorm.DB, subscriptionID uuid.UUID, status string) error {
	return conn(tx).WithContext(ctx).Model(&subscriptionDomain.Subscription{}).
		Where("id = ?", subscriptionID).
		Update("status", subscriptionDomain.Status(status)).Error
}

func (m *Mutator) DeleteCategory(ctx context.Context, tx *gorm.DB, categoryID uuid.UUID) error {
	return conn(tx).WithContext(ctx).Delete(&categoryDomain.Category{}, "id = ?", categoryID).Error
}

func (m *Mutator) CategoryHasTransactions(ctx context.Context, tx *gorm.DB, categoryID uuid.UUID) (bool, error) {
	var count int64
	err := conn(tx).WithContext(ctx).Model(&transactionDomain.Transaction{}).
		Where("classification->>'userCategoryId' = ?", categoryID.String()).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (m *Mutator) DeleteBudget(ctx context.Context, tx *gorm.DB, budgetID uuid.UUID) error {
	return conn(tx).WithContext(ctx).Delete(&budgetDomain.Budget{}, "id = ?", budgetID).Error
}

func (m *Mutator) SetTransactionCategory(ctx context.Context, tx *gorm.DB, transactionID, categoryID uuid.UUID) error {
	var t transactionDomain.Transaction
	if err := conn(tx).WithContext(ctx).First(&t, "id = ?", transactionID).Error; err != nil {
		return err
	}
	if t.Classification == nil {
		t.Classification = &transactionDomain.Classification{}
	}
	t.Classification.UserCategoryID = categoryID.String()
	if err := conn(tx).WithContext(ctx).Model(&t).Update("classification", t.Classification).Error; err != nil {
		return fmt.Errorf("mutator: set transaction category: %w", err)
	}
	return nil
}
