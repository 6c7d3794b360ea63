package persistence

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/goals-manager/backend/internal/application/adapter"
	"github.com/goals-manager/backend/internal/domain/entity"
	domainerror "github.com/goals-manager/backend/internal/domain/error"
	"github.com/goals-manager/backend/internal/integration/persistence/model"
)

// habitRepository implements the adapter.HabitRepository interface.
type habitRepository struct {
	db *gorm.DB
}

// NewHabitRepository creates a new habit repository instance.
func NewHabitRepository(db *gorm.DB) adapter.HabitRepository {
	return &habitRepository{
		db: db,
	}
}

// Create creates a new habit in the database.
func (r *habitRepository) Create(ctx context.Context, habit *entity.Habit) error {
	habitModel := model.HabitFromEntity(habit)
	result := r.db.WithContext(ctx).Create(habitModel)
	if result.Error != nil {
		return result.Error
	}
	habit.ID = habitModel.ID
	return nil
}

// FindByID retrieves a habit by its ID.
func (r *habitRepository) FindByID(ctx context.Context, id uint) (*entity.Habit, error) {
	var habitModel model.HabitModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&habitModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrHabitNotFound
		}
		return nil, result.Error
	}
	return habitModel.ToEntity(), nil
}

// FindAll retrieves every habit.
func (r *habitRepository) FindAll(ctx context.Context) ([]*entity.Habit, error) {
	var habitModels []model.HabitModel
	result := r.db.WithContext(ctx).Order("created_at DESC").Find(&habitModels)
	if result.Error != nil {
		return nil, result.Error
	}
	return habitsToEntities(habitModels), nil
}

// FindByUserID retrieves all habits for a given user.
func (r *habitRepository) FindByUserID(ctx context.Context, userID uint) ([]*entity.Habit, error) {
	var habitModels []model.HabitModel
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&habitModels)
	if result.Error != nil {
		return nil, result.Error
	}
	return habitsToEntities(habitModels), nil
}

// FindByGoalID retrieves all habits attached to a goal.
func (r *habitRepository) FindByGoalID(ctx context.Context, goalID uint) ([]*entity.Habit, error) {
	var habitModels []model.HabitModel
	result := r.db.WithContext(ctx).
		Where("goal_id = ?", goalID).
		Order("created_at DESC").
		Find(&habitModels)
	if result.Error != nil {
		return nil, result.Error
	}
	return habitsToEntities(habitModels), nil
}

// Update updates an existing habit in the database.
func (r *habitRepository) Update(ctx context.Context, habit *entity.Habit) error {
	habitModel := model.HabitFromEntity(habit)
	result := r.db.WithContext(ctx).Save(habitModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// Delete removes a habit from the database. Its tasks go with it through the
// foreign key cascade.
func (r *habitRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&model.HabitModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// ExistsByID checks whether a habit with the given ID exists.
func (r *habitRepository) ExistsByID(ctx context.Context, id uint) (bool, error) {
	var count int64
	result := r.db.WithContext(ctx).
		Model(&model.HabitModel{}).
		Where("id = ?", id).
		Count(&count)
	if result.Error != nil {
		return false, result.Error
	}
	return count > 0, nil
}

// CountByUserID counts a user's habits.
func (r *habitRepository) CountByUserID(ctx context.Context, userID uint) (int64, error) {
	var count int64
	result := r.db.WithContext(ctx).
		Model(&model.HabitModel{}).
		Where("user_id = ?", userID).
		Count(&count)
	if result.Error != nil {
		return 0, result.Error
	}
	return count, nil
}

// CountByGoalID counts the habits attached to a goal.
func (r *habitRepository) CountByGoalID(ctx context.Context, goalID uint) (int64, error) {
	var count int64
	result := r.db.WithContext(ctx).
		Model(&model.HabitModel{}).
		Where("goal_id = ?", goalID).
		Count(&count)
	if result.Error != nil {
		return 0, result.Error
	}
	return count, nil
}

func habitsToEntities(habitModels []model.HabitModel) []*entity.Habit {
	habits := make([]*entity.Habit, len(habitModels))
	for i, hm := range habitModels {
		habits[i] = hm.ToEntity()
	}
	return habits
}
