package goal

import (
	"context"
	"sort"

	"github.com/goals-manager/backend/internal/domain/entity"
	domainerror "github.com/goals-manager/backend/internal/domain/error"
)

// fakeGoalRepo is an in-memory GoalRepository keyed by goal ID.
type fakeGoalRepo struct {
	goals  map[uint]*entity.Goal
	nextID uint
}

func newFakeGoalRepo() *fakeGoalRepo {
	return &fakeGoalRepo{goals: make(map[uint]*entity.Goal), nextID: 1}
}

func (r *fakeGoalRepo) Create(ctx context.Context, goal *entity.Goal) error {
	copied := *goal
	copied.ID = r.nextID
	r.nextID++
	r.goals[copied.ID] = &copied
	goal.ID = copied.ID
	return nil
}

func (r *fakeGoalRepo) FindByID(ctx context.Context, id uint) (*entity.Goal, error) {
	goal, ok := r.goals[id]
	if !ok {
		return nil, domainerror.ErrGoalNotFound
	}
	copied := *goal
	return &copied, nil
}

func (r *fakeGoalRepo) FindAll(ctx context.Context) ([]*entity.Goal, error) {
	return r.filter(func(*entity.Goal) bool { return true }), nil
}

func (r *fakeGoalRepo) FindByUserID(ctx context.Context, userID uint) ([]*entity.Goal, error) {
	return r.filter(func(g *entity.Goal) bool { return g.UserID == userID }), nil
}

func (r *fakeGoalRepo) FindByUserIDAndStatus(ctx context.Context, userID uint, status entity.GoalStatus) ([]*entity.Goal, error) {
	return r.filter(func(g *entity.Goal) bool {
		return g.UserID == userID && g.Status == status
	}), nil
}

func (r *fakeGoalRepo) FindByStatus(ctx context.Context, status entity.GoalStatus) ([]*entity.Goal, error) {
	return r.filter(func(g *entity.Goal) bool { return g.Status == status }), nil
}

func (r *fakeGoalRepo) Update(ctx context.Context, goal *entity.Goal) error {
	if _, ok := r.goals[goal.ID]; !ok {
		return domainerror.ErrGoalNotFound
	}
	copied := *goal
	r.goals[goal.ID] = &copied
	return nil
}

func (r *fakeGoalRepo) Delete(ctx context.Context, id uint) error {
	delete(r.goals, id)
	return nil
}

func (r *fakeGoalRepo) ExistsByID(ctx context.Context, id uint) (bool, error) {
	_, ok := r.goals[id]
	return ok, nil
}

func (r *fakeGoalRepo) CountByUserID(ctx context.Context, userID uint) (int64, error) {
	return int64(len(r.filter(func(g *entity.Goal) bool { return g.UserID == userID }))), nil
}

func (r *fakeGoalRepo) CountByUserIDAndStatus(ctx context.Context, userID uint, status entity.GoalStatus) (int64, error) {
	return int64(len(r.filter(func(g *entity.Goal) bool {
		return g.UserID == userID && g.Status == status
	}))), nil
}

func (r *fakeGoalRepo) filter(keep func(*entity.Goal) bool) []*entity.Goal {
	var out []*entity.Goal
	for _, g := range r.goals {
		if keep(g) {
			copied := *g
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
