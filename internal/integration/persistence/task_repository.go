package persistence

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/goals-manager/backend/internal/application/adapter"
	"github.com/goals-manager/backend/internal/domain/entity"
	domainerror "github.com/goals-manager/backend/internal/domain/error"
	"github.com/goals-manager/backend/internal/integration/persistence/model"
)

// taskRepository implements the adapter.TaskRepository interface.
type taskRepository struct {
	db *gorm.DB
}

// NewTaskRepository creates a new task repository instance.
func NewTaskRepository(db *gorm.DB) adapter.TaskRepository {
	return &taskRepository{
		db: db,
	}
}

// Create creates a new task in the database.
func (r *taskRepository) Create(ctx context.Context, task *entity.Task) error {
	taskModel := model.TaskFromEntity(task)
	result := r.db.WithContext(ctx).Create(taskModel)
	if result.Error != nil {
		return result.Error
	}
	task.ID = taskModel.ID
	return nil
}

// CreateBatch inserts the given tasks in one statement.
func (r *taskRepository) CreateBatch(ctx context.Context, tasks []*entity.Task) error {
	if len(tasks) == 0 {
		return nil
	}
	taskModels := make([]model.TaskModel, len(tasks))
	for i, t := range tasks {
		taskModels[i] = *model.TaskFromEntity(t)
	}
	result := r.db.WithContext(ctx).Create(&taskModels)
	if result.Error != nil {
		return result.Error
	}
	for i := range taskModels {
		tasks[i].ID = taskModels[i].ID
	}
	return nil
}

// FindByID retrieves a task by its ID.
func (r *taskRepository) FindByID(ctx context.Context, id uint) (*entity.Task, error) {
	var taskModel model.TaskModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&taskModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrTaskNotFound
		}
		return nil, result.Error
	}
	return taskModel.ToEntity(), nil
}

// FindAll retrieves every task.
func (r *taskRepository) FindAll(ctx context.Context) ([]*entity.Task, error) {
	var taskModels []model.TaskModel
	result := r.db.WithContext(ctx).Order("date ASC").Find(&taskModels)
	if result.Error != nil {
		return nil, result.Error
	}
	return tasksToEntities(taskModels), nil
}

// FindByUserID retrieves all tasks for a given user.
func (r *taskRepository) FindByUserID(ctx context.Context, userID uint) ([]*entity.Task, error) {
	var taskModels []model.TaskModel
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("date ASC").
		Find(&taskModels)
	if result.Error != nil {
		return nil, result.Error
	}
	return tasksToEntities(taskModels), nil
}

// FindByHabitID retrieves all tasks for a given habit.
func (r *taskRepository) FindByHabitID(ctx context.Context, habitID uint) ([]*entity.Task, error) {
	var taskModels []model.TaskModel
	result := r.db.WithContext(ctx).
		Where("habit_id = ?", habitID).
		Order("date ASC").
		Find(&taskModels)
	if result.Error != nil {
		return nil, result.Error
	}
	return tasksToEntities(taskModels), nil
}

// FindByUserIDAndCompleted retrieves a user's tasks filtered by completion.
func (r *taskRepository) FindByUserIDAndCompleted(ctx context.Context, userID uint, completed bool) ([]*entity.Task, error) {
	var taskModels []model.TaskModel
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND completed = ?", userID, completed).
		Order("date ASC").
		Find(&taskModels)
	if result.Error != nil {
		return nil, result.Error
	}
	return tasksToEntities(taskModels), nil
}

// FindByUserIDAndDateBetween retrieves a user's tasks with dates inside
// [start, end] inclusive.
func (r *taskRepository) FindByUserIDAndDateBetween(ctx context.Context, userID uint, start, end time.Time) ([]*entity.Task, error) {
	var taskModels []model.TaskModel
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND date >= ? AND date <= ?", userID, start, end).
		Order("date ASC").
		Find(&taskModels)
	if result.Error != nil {
		return nil, result.Error
	}
	return tasksToEntities(taskModels), nil
}

// FindDueByHabitID retrieves a habit's tasks dated on or before the given day,
// most recent first.
func (r *taskRepository) FindDueByHabitID(ctx context.Context, habitID uint, day time.Time) ([]*entity.Task, error) {
	var taskModels []model.TaskModel
	result := r.db.WithContext(ctx).
		Where("habit_id = ? AND date <= ?", habitID, day).
		Order("date DESC").
		Find(&taskModels)
	if result.Error != nil {
		return nil, result.Error
	}
	return tasksToEntities(taskModels), nil
}

// ExistsByHabitIDAndDate checks whether a task already exists for the habit on
// the given day.
func (r *taskRepository) ExistsByHabitIDAndDate(ctx context.Context, habitID uint, day time.Time) (bool, error) {
	var count int64
	result := r.db.WithContext(ctx).
		Model(&model.TaskModel{}).
		Where("habit_id = ? AND date = ?", habitID, day).
		Count(&count)
	if result.Error != nil {
		return false, result.Error
	}
	return count > 0, nil
}

// Update updates an existing task in the database.
func (r *taskRepository) Update(ctx context.Context, task *entity.Task) error {
	taskModel := model.TaskFromEntity(task)
	result := r.db.WithContext(ctx).Save(taskModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// Delete removes a task from the database.
func (r *taskRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&model.TaskModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// ExistsByID checks whether a task with the given ID exists.
func (r *taskRepository) ExistsByID(ctx context.Context, id uint) (bool, error) {
	var count int64
	result := r.db.WithContext(ctx).
		Model(&model.TaskModel{}).
		Where("id = ?", id).
		Count(&count)
	if result.Error != nil {
		return false, result.Error
	}
	return count > 0, nil
}

// CountByUserID counts a user's tasks.
func (r *taskRepository) CountByUserID(ctx context.Context, userID uint) (int64, error) {
	var count int64
	result := r.db.WithContext(ctx).
		Model(&model.TaskModel{}).
		Where("user_id = ?", userID).
		Count(&count)
	if result.Error != nil {
		return 0, result.Error
	}
	return count, nil
}

// CountByHabitID counts a habit's tasks.
func (r *taskRepository) CountByHabitID(ctx context.Context, habitID uint) (int64, error) {
	var count int64
	result := r.db.WithContext(ctx).
		Model(&model.TaskModel{}).
		Where("habit_id = ?", habitID).
		Count(&count)
	if result.Error != nil {
		return 0, result.Error
	}
	return count, nil
}

func tasksToEntities(taskModels []model.TaskModel) []*entity.Task {
	tasks := make([]*entity.Task, len(taskModels))
	for i, tm := range taskModels {
		tasks[i] = tm.ToEntity()
	}
	return tasks
}
