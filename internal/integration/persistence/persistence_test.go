package persistence

import (
	"context"
	"database/sql"
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/goals-manager/backend/internal/domain/entity"
	"github.com/goals-manager/backend/internal/integration/persistence/model"
)

var testDBSeq atomic.Int64

// newTestDB opens a fresh in-memory database with foreign keys enforced and
// migrates every model, so cascade behavior matches the real schema.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf(
		"file:repo_test_%d?mode=memory&cache=shared&_pragma=foreign_keys(1)",
		testDBSeq.Add(1),
	)
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(sqlite.Dialector{Conn: sqlDB}, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to connect to database: %v", err)
	}

	err = db.AutoMigrate(
		&model.UserModel{},
		&model.GoalModel{},
		&model.HabitModel{},
		&model.TaskModel{},
		&model.NoteModel{},
	)
	if err != nil {
		t.Fatalf("failed to migrate database: %v", err)
	}

	return db
}

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

func seedUser(t *testing.T, db *gorm.DB, username string) *entity.User {
	t.Helper()

	user := entity.NewUser("github", "gh-"+username, username)
	if err := NewUserRepository(db).Save(context.Background(), user); err != nil {
		t.Fatalf("failed to seed user: %v", err)
	}
	return user
}

func seedGoal(t *testing.T, db *gorm.DB, userID uint, title string) *entity.Goal {
	t.Helper()

	goal := entity.NewGoal(userID, title, day(2026, 1, 1), day(2026, 12, 31))
	if err := NewGoalRepository(db).Create(context.Background(), goal); err != nil {
		t.Fatalf("failed to seed goal: %v", err)
	}
	return goal
}

func seedHabit(t *testing.T, db *gorm.DB, goalID, userID uint, name string) *entity.Habit {
	t.Helper()

	habit := entity.NewHabit(goalID, userID, name, "Mon,Wed,Fri", day(2026, 1, 1), day(2026, 12, 31))
	if err := NewHabitRepository(db).Create(context.Background(), habit); err != nil {
		t.Fatalf("failed to seed habit: %v", err)
	}
	return habit
}

func tableCount(t *testing.T, db *gorm.DB, model any) int64 {
	t.Helper()

	var count int64
	if err := db.Model(model).Count(&count).Error; err != nil {
		t.Fatalf("failed to count rows: %v", err)
	}
	return count
}
