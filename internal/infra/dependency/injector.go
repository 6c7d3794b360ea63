// Package dependency provides dependency injection for the application.
package dependency

import (
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/goals-manager/backend/config"
	"github.com/goals-manager/backend/internal/application/usecase/goal"
	"github.com/goals-manager/backend/internal/application/usecase/habit"
	"github.com/goals-manager/backend/internal/application/usecase/note"
	"github.com/goals-manager/backend/internal/application/usecase/task"
	"github.com/goals-manager/backend/internal/application/usecase/user"
	"github.com/goals-manager/backend/internal/infra/server/router"
	"github.com/goals-manager/backend/internal/integration/adapters"
	"github.com/goals-manager/backend/internal/integration/entrypoint/controller"
	"github.com/goals-manager/backend/internal/integration/entrypoint/middleware"
	"github.com/goals-manager/backend/internal/integration/persistence"
)

// Injector holds all application dependencies.
type Injector struct {
	Config *config.Config
	DB     *gorm.DB
	Redis  *redis.Client
	Router *router.Router
}

// NewInjector creates a new dependency injector with all dependencies wired.
func NewInjector(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) *Injector {
	// Create repositories
	userRepo := persistence.NewUserRepository(db)
	goalRepo := persistence.NewGoalRepository(db)
	habitRepo := persistence.NewHabitRepository(db)
	taskRepo := persistence.NewTaskRepository(db)
	noteRepo := persistence.NewNoteRepository(db)

	// Create adapters/services
	clock := adapters.NewSystemClock()
	tokenVerifier := adapters.NewTokenVerifier(cfg.JWT.Secret)

	// Shared task services
	taskGenerator := task.NewGenerator(taskRepo)
	streakCalculator := task.NewStreakCalculator(taskRepo, habitRepo, clock)

	// Create user use cases
	upsertUserUseCase := user.NewUpsertUserUseCase(userRepo)
	getUserUseCase := user.NewGetUserUseCase(userRepo)
	lookupUserUseCase := user.NewLookupUserUseCase(userRepo)
	listUsersUseCase := user.NewListUsersUseCase(userRepo)
	deleteUserUseCase := user.NewDeleteUserUseCase(userRepo)
	userExistsUseCase := user.NewUserExistsUseCase(userRepo)

	// Create goal use cases
	createGoalUseCase := goal.NewCreateGoalUseCase(goalRepo, userRepo)
	getGoalUseCase := goal.NewGetGoalUseCase(goalRepo, userRepo)
	listGoalsUseCase := goal.NewListGoalsUseCase(goalRepo, userRepo, clock)
	updateGoalUseCase := goal.NewUpdateGoalUseCase(goalRepo, userRepo)
	updateGoalStatusUseCase := goal.NewUpdateGoalStatusUseCase(goalRepo, userRepo)
	deleteGoalUseCase := goal.NewDeleteGoalUseCase(goalRepo)
	countGoalsUseCase := goal.NewCountGoalsUseCase(goalRepo, userRepo)
	goalExistsUseCase := goal.NewGoalExistsUseCase(goalRepo)

	// Create habit use cases
	createHabitUseCase := habit.NewCreateHabitUseCase(habitRepo, goalRepo, userRepo)
	getHabitUseCase := habit.NewGetHabitUseCase(habitRepo, goalRepo, userRepo)
	listHabitsUseCase := habit.NewListHabitsUseCase(habitRepo, goalRepo, userRepo)
	updateHabitUseCase := habit.NewUpdateHabitUseCase(habitRepo, goalRepo, userRepo)
	deleteHabitUseCase := habit.NewDeleteHabitUseCase(habitRepo)
	countHabitsUseCase := habit.NewCountHabitsUseCase(habitRepo, goalRepo, userRepo)
	habitExistsUseCase := habit.NewHabitExistsUseCase(habitRepo)

	// Create task use cases
	createTaskUseCase := task.NewCreateTaskUseCase(taskRepo, habitRepo, userRepo)
	getTaskUseCase := task.NewGetTaskUseCase(taskRepo, habitRepo, userRepo)
	listTasksUseCase := task.NewListTasksUseCase(taskRepo, habitRepo, userRepo)
	getTasksInRangeUseCase := task.NewGetTasksInRangeUseCase(taskRepo, habitRepo, userRepo, taskGenerator)
	updateTaskUseCase := task.NewUpdateTaskUseCase(taskRepo, habitRepo, userRepo, streakCalculator)
	toggleTaskUseCase := task.NewToggleTaskUseCase(taskRepo, habitRepo, userRepo, streakCalculator)
	deleteTaskUseCase := task.NewDeleteTaskUseCase(taskRepo)
	countTasksUseCase := task.NewCountTasksUseCase(taskRepo, habitRepo, userRepo)
	taskExistsUseCase := task.NewTaskExistsUseCase(taskRepo)

	// Create note use cases
	createNoteUseCase := note.NewCreateNoteUseCase(noteRepo, goalRepo)
	getNoteUseCase := note.NewGetNoteUseCase(noteRepo)
	listNotesUseCase := note.NewListNotesUseCase(noteRepo, goalRepo)
	updateNoteUseCase := note.NewUpdateNoteUseCase(noteRepo)
	deleteNoteUseCase := note.NewDeleteNoteUseCase(noteRepo)
	countNotesUseCase := note.NewCountNotesUseCase(noteRepo, goalRepo)

	// Create controllers
	healthController := controller.NewHealthController(func() bool {
		sqlDB, err := db.DB()
		if err != nil {
			return false
		}
		return sqlDB.Ping() == nil
	})

	userController := controller.NewUserController(
		upsertUserUseCase,
		getUserUseCase,
		lookupUserUseCase,
		listUsersUseCase,
		deleteUserUseCase,
		userExistsUseCase,
	)

	goalController := controller.NewGoalController(
		createGoalUseCase,
		getGoalUseCase,
		listGoalsUseCase,
		updateGoalUseCase,
		updateGoalStatusUseCase,
		deleteGoalUseCase,
		countGoalsUseCase,
		goalExistsUseCase,
	)

	habitController := controller.NewHabitController(
		createHabitUseCase,
		getHabitUseCase,
		listHabitsUseCase,
		updateHabitUseCase,
		deleteHabitUseCase,
		countHabitsUseCase,
		habitExistsUseCase,
	)

	taskController := controller.NewTaskController(
		createTaskUseCase,
		getTaskUseCase,
		listTasksUseCase,
		getTasksInRangeUseCase,
		updateTaskUseCase,
		toggleTaskUseCase,
		deleteTaskUseCase,
		countTasksUseCase,
		taskExistsUseCase,
	)

	noteController := controller.NewNoteController(
		createNoteUseCase,
		getNoteUseCase,
		listNotesUseCase,
		updateNoteUseCase,
		deleteNoteUseCase,
		countNotesUseCase,
	)

	// Create middleware
	rateLimiter := middleware.NewRateLimiterWithConfig(
		redisClient,
		cfg.RateLimit.MaxAttempts,
		cfg.RateLimit.WindowDuration,
	)
	authMiddleware := middleware.NewAuthMiddleware(tokenVerifier)

	// Create router
	r := router.NewRouter(
		healthController,
		userController,
		goalController,
		habitController,
		taskController,
		noteController,
		rateLimiter,
		authMiddleware,
	)

	return &Injector{
		Config: cfg,
		DB:     db,
		Redis:  redisClient,
		Router: r,
	}
}
