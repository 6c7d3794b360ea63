package task

import (
	"context"
	"sort"
	"time"

	"github.com/goals-manager/backend/internal/domain/entity"
	domainerror "github.com/goals-manager/backend/internal/domain/error"
)

// fixedClock pins "now" for deterministic streak and generation tests.
type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time { return c.now }

// fakeTaskRepo is an in-memory TaskRepository keyed by task ID.
type fakeTaskRepo struct {
	tasks  map[uint]*entity.Task
	nextID uint
}

func newFakeTaskRepo() *fakeTaskRepo {
	return &fakeTaskRepo{tasks: make(map[uint]*entity.Task), nextID: 1}
}

func (r *fakeTaskRepo) add(task *entity.Task) *entity.Task {
	copied := *task
	copied.ID = r.nextID
	r.nextID++
	r.tasks[copied.ID] = &copied
	return &copied
}

func (r *fakeTaskRepo) Create(ctx context.Context, task *entity.Task) error {
	stored := r.add(task)
	task.ID = stored.ID
	return nil
}

func (r *fakeTaskRepo) CreateBatch(ctx context.Context, tasks []*entity.Task) error {
	for _, task := range tasks {
		stored := r.add(task)
		task.ID = stored.ID
	}
	return nil
}

func (r *fakeTaskRepo) FindByID(ctx context.Context, id uint) (*entity.Task, error) {
	task, ok := r.tasks[id]
	if !ok {
		return nil, domainerror.ErrTaskNotFound
	}
	copied := *task
	return &copied, nil
}

func (r *fakeTaskRepo) FindAll(ctx context.Context) ([]*entity.Task, error) {
	return r.filter(func(*entity.Task) bool { return true }), nil
}

func (r *fakeTaskRepo) FindByUserID(ctx context.Context, userID uint) ([]*entity.Task, error) {
	return r.filter(func(t *entity.Task) bool { return t.UserID == userID }), nil
}

func (r *fakeTaskRepo) FindByHabitID(ctx context.Context, habitID uint) ([]*entity.Task, error) {
	return r.filter(func(t *entity.Task) bool { return t.HabitID == habitID }), nil
}

func (r *fakeTaskRepo) FindByUserIDAndCompleted(ctx context.Context, userID uint, completed bool) ([]*entity.Task, error) {
	return r.filter(func(t *entity.Task) bool {
		return t.UserID == userID && t.Completed == completed
	}), nil
}

func (r *fakeTaskRepo) FindByUserIDAndDateBetween(ctx context.Context, userID uint, start, end time.Time) ([]*entity.Task, error) {
	tasks := r.filter(func(t *entity.Task) bool {
		return t.UserID == userID && !t.Date.Before(entity.Day(start)) && !t.Date.After(entity.Day(end))
	})
	sort.Slice(tasks, func(i, j int) bool { return tasks[i].Date.Before(tasks[j].Date) })
	return tasks, nil
}

func (r *fakeTaskRepo) FindDueByHabitID(ctx context.Context, habitID uint, day time.Time) ([]*entity.Task, error) {
	tasks := r.filter(func(t *entity.Task) bool {
		return t.HabitID == habitID && !t.Date.After(entity.Day(day))
	})
	sort.Slice(tasks, func(i, j int) bool { return tasks[i].Date.After(tasks[j].Date) })
	return tasks, nil
}

func (r *fakeTaskRepo) ExistsByHabitIDAndDate(ctx context.Context, habitID uint, day time.Time) (bool, error) {
	for _, t := range r.tasks {
		if t.HabitID == habitID && t.Date.Equal(entity.Day(day)) {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeTaskRepo) Update(ctx context.Context, task *entity.Task) error {
	if _, ok := r.tasks[task.ID]; !ok {
		return domainerror.ErrTaskNotFound
	}
	copied := *task
	r.tasks[task.ID] = &copied
	return nil
}

func (r *fakeTaskRepo) Delete(ctx context.Context, id uint) error {
	delete(r.tasks, id)
	return nil
}

func (r *fakeTaskRepo) ExistsByID(ctx context.Context, id uint) (bool, error) {
	_, ok := r.tasks[id]
	return ok, nil
}

func (r *fakeTaskRepo) CountByUserID(ctx context.Context, userID uint) (int64, error) {
	return int64(len(r.filter(func(t *entity.Task) bool { return t.UserID == userID }))), nil
}

func (r *fakeTaskRepo) CountByHabitID(ctx context.Context, habitID uint) (int64, error) {
	return int64(len(r.filter(func(t *entity.Task) bool { return t.HabitID == habitID }))), nil
}

func (r *fakeTaskRepo) filter(keep func(*entity.Task) bool) []*entity.Task {
	var out []*entity.Task
	for _, t := range r.tasks {
		if keep(t) {
			copied := *t
			out = append(out, &copied)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// fakeHabitRepo is an in-memory HabitRepository keyed by habit ID.
type fakeHabitRepo struct {
	habits map[uint]*entity.Habit
	nextID uint
}

func newFakeHabitRepo() *fakeHabitRepo {
	return &fakeHabitRepo{habits: make(map[uint]*entity.Habit), nextID: 1}
}

func (r *fakeHabitRepo) Create(ctx context.Context, habit *entity.Habit) error {
	copied := *habit
	copied.ID = r.nextID
	r.nextID++
	r.habits[copied.ID] = &copied
	habit.ID = copied.ID
	return nil
}

func (r *fakeHabitRepo) FindByID(ctx context.Context, id uint) (*entity.Habit, error) {
	habit, ok := r.habits[id]
	if !ok {
		return nil, domainerror.ErrHabitNotFound
	}
	copied := *habit
	return &copied, nil
}

func (r *fakeHabitRepo) FindAll(ctx context.Context) ([]*entity.Habit, error) {
	return r.filter(func(*entity.Habit) bool { return true }), nil
}

func (r *fakeHabitRepo) FindByUserID(ctx context.Context, userID uint) ([]*entity.Habit, error) {
	return r.filter(func(h *entity.Habit) bool { return h.UserID == userID }), nil
}

func (r *fakeHabitRepo) FindByGoalID(ctx context.Context, goalID uint) ([]*entity.Habit, error) {
	return r.filter(func(h *entity.Habit) bool { return h.GoalID == goalID }), nil
}

func (r *fakeHabitRepo) Update(ctx context.Context, habit *entity.Habit) error {
	if _, ok := r.habits[habit.ID]; !ok {
		return domainerror.ErrHabitNotFound
	}
	copied := *habit
	r.habits[habit.ID] = &copied
	return nil
}

func (r *fakeHabitRepo) Delete(ctx context.Context, id uint) error {
	delete(r.habits, id)
	return nil
}

func (r *fakeHabitRepo) ExistsByID(ctx context.Context, id uint) (bool, error) {
	_, ok := r.habits[id]
	return ok, nil
}

func (r *fakeHabitRepo) CountByUserID(ctx context.Context, userID uint) (int64, error) {
	return int64(len(r.filter(func(h *entity.Habit) bool { return h.UserID == userID }))), nil
}

func (r *fakeHabitRepo) CountByGoalID(ctx context.Context, goalID uint) (int64, error) {
	return int64(len(r.filter(func(h *entity.Habit) bool { return h.GoalID == goalID }))), nil
}

func (r *fakeHabitRepo) filter(keep func(*entity.Habit) bool) []*entity.Habit {
	var out []*entity.Habit
	for _, h := range r.habits {
		if keep(h) {
			copied := *h
			out = append(out, &copied)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// fakeUserRepo is an in-memory UserRepository keyed by user ID.
type fakeUserRepo struct {
	users  map[uint]*entity.User
	nextID uint
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uint]*entity.User), nextID: 1}
}

func (r *fakeUserRepo) Save(ctx context.Context, user *entity.User) error {
	if user.ID == 0 {
		user.ID = r.nextID
		r.nextID++
	}
	copied := *user
	r.users[user.ID] = &copied
	return nil
}

func (r *fakeUserRepo) FindByID(ctx context.Context, id uint) (*entity.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, domainerror.ErrUserNotFound
	}
	copied := *user
	return &copied, nil
}

func (r *fakeUserRepo) FindByProviderAndProviderID(ctx context.Context, provider, providerID string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Provider == provider && u.ProviderID == providerID {
			copied := *u
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Username == username {
			copied := *u
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			copied := *u
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) FindAll(ctx context.Context) ([]*entity.User, error) {
	var out []*entity.User
	for _, u := range r.users {
		copied := *u
		out = append(out, &copied)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakeUserRepo) FindByProvider(ctx context.Context, provider string) ([]*entity.User, error) {
	var out []*entity.User
	for _, u := range r.users {
		if u.Provider == provider {
			copied := *u
			out = append(out, &copied)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakeUserRepo) Delete(ctx context.Context, id uint) error {
	delete(r.users, id)
	return nil
}

func (r *fakeUserRepo) ExistsByID(ctx context.Context, id uint) (bool, error) {
	_, ok := r.users[id]
	return ok, nil
}

func (r *fakeUserRepo) ExistsByProviderAndProviderID(ctx context.Context, provider, providerID string) (bool, error) {
	for _, u := range r.users {
		if u.Provider == provider && u.ProviderID == providerID {
			return true, nil
		}
	}
	return false, nil
}
