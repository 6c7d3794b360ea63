// Package steps provides step definitions for BDD integration tests.
package steps

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"reflect"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/cucumber/godog"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"gorm.io/gorm"

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
	"github.com/goals-manager/backend/internal/integration/persistence/model"
	"github.com/goals-manager/backend/test/integration/mock"
)

const testJWTSecret = "test-jwt-secret-key-for-testing-purposes"

var tags string

func init() {
	flag.StringVar(&tags, "scenarios", "", "tags to run")
}

func TestFeatures(t *testing.T) {
	flag.Parse()

	suite := godog.TestSuite{
		ScenarioInitializer: func(s *godog.ScenarioContext) {
			InitializeScenario(s)
		},
		Options: &godog.Options{
			Format:   "pretty",
			Paths:    []string{"../features"},
			Tags:     tags,
			Strict:   true,
			TestingT: t,
		},
	}

	if suite.Run() != 0 {
		t.Fatal("non-zero status returned, failed to run feature tests")
	}
}

type testContext struct {
	uri            string
	headers        map[string]string
	client         *http.Client
	response       *response
	db             *mock.Db
	timeMock       *mock.Time
	serverPort     int
	accessToken    string
	currentUserID  uint
	currentGoalID  uint
	currentHabitID uint
	currentTaskID  uint
	currentNoteID  uint
	lastCreatedID  uint
}

type response struct {
	status int
	body   any
}

var serverInit sync.Once
var testDB *mock.Db
var testTime *mock.Time
var testServerPort int
var portInit sync.Once

func initializePort() {
	portInit.Do(func() {
		testServerPort = findAvailablePort()
		_ = os.Setenv("SERVER_PORT", strconv.Itoa(testServerPort))
		_ = os.Setenv("ENV", "test")
	})
}

func InitializeScenario(ctx *godog.ScenarioContext) {
	initializePort()

	if testTime == nil {
		testTime = mock.NewTime()
	}

	test := &testContext{
		uri:        fmt.Sprintf("http://localhost:%d", testServerPort),
		client:     &http.Client{Timeout: 10 * time.Second},
		timeMock:   testTime,
		serverPort: testServerPort,
		db: mock.NewDb(map[string]any{
			"users":  &model.UserModel{},
			"goals":  &model.GoalModel{},
			"habits": &model.HabitModel{},
			"tasks":  &model.TaskModel{},
			"notes":  &model.NoteModel{},
		}),
	}

	testDB = test.db

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		test.before()
		return ctx, nil
	})

	// Background steps
	ctx.Given(`^the API server is running$`, test.theAPIServerIsRunning)

	// User setup steps
	ctx.Given(`^a user exists with username "([^"]*)"$`, test.aUserExistsWithUsername)
	ctx.Given(`^I am authenticated as "([^"]*)"$`, test.iAmAuthenticatedAs)

	// Goal setup steps
	ctx.Given(`^a goal exists with title "([^"]*)"$`, test.aGoalExistsWithTitle)
	ctx.Given(`^a goal exists with title "([^"]*)" and status "([^"]*)"$`, test.aGoalExistsWithTitleAndStatus)

	// Habit setup steps
	ctx.Given(`^a habit exists with name "([^"]*)"$`, test.aHabitExistsWithName)

	// Task setup steps
	ctx.Given(`^a task exists for the habit on "([^"]*)"$`, test.aTaskExistsForTheHabitOn)
	ctx.Given(`^a completed task exists for the habit on "([^"]*)"$`, test.aCompletedTaskExistsForTheHabitOn)

	// Note setup steps
	ctx.Given(`^a note exists with content "([^"]*)"$`, test.aNoteExistsWithContent)

	// Header steps
	ctx.Given(`^the header is empty$`, test.theHeaderIsEmpty)
	ctx.Given(`^the header contains the key "([^"]*)" with "([^"]*)"$`, test.theHeaderContainsTheKeyWith)

	// Request steps
	ctx.When(`^I send a "([^"]*)" request to "([^"]*)"$`, test.iSendARequestTo)
	ctx.When(`^I send a "([^"]*)" request to "([^"]*)" with body:$`, test.iSendARequestToWithBody)

	// Response assertion steps
	ctx.Then(`^the response status should be (\d+)$`, test.theResponseStatusShouldBe)
	ctx.Then(`^the response should be JSON$`, test.theResponseShouldBeJSON)
	ctx.Then(`^the response should contain "([^"]*)"$`, test.theResponseShouldContain)
	ctx.Then(`^the response field "([^"]*)" should be "([^"]*)"$`, test.theResponseFieldShouldBe)
	ctx.Then(`^the response field "([^"]*)" should exist$`, test.theResponseFieldShouldExist)

	// Database assertion steps
	ctx.Then(`^the db should contain (\d+) objects in the "([^"]*)" table$`, test.theDbShouldContainObjectsInTheTable)
	ctx.Then(`^the db should contain (\d+) objects in "([^"]*)" with the values$`, test.theDbShouldContainObjectsInWithTheValues)
}

func findAvailablePort() int {
	listener, err := net.Listen("tcp", ":0")
	if err != nil {
		panic(err)
	}
	defer listener.Close()
	return listener.Addr().(*net.TCPAddr).Port
}

func (t *testContext) before() {
	t.headers = make(map[string]string)
	t.accessToken = ""
	t.currentUserID = 0
	t.currentGoalID = 0
	t.currentHabitID = 0
	t.currentTaskID = 0
	t.currentNoteID = 0
	t.lastCreatedID = 0

	if t.db != nil {
		_ = t.db.ClearDB()
	}
}

func (t *testContext) startServer() {
	serverInit.Do(func() {
		go func() {
			gin.SetMode(gin.TestMode)

			// Create repositories
			userRepo := persistence.NewUserRepository(testDB.DbConn)
			goalRepo := persistence.NewGoalRepository(testDB.DbConn)
			habitRepo := persistence.NewHabitRepository(testDB.DbConn)
			taskRepo := persistence.NewTaskRepository(testDB.DbConn)
			noteRepo := persistence.NewNoteRepository(testDB.DbConn)

			// Create adapters/services
			tokenVerifier := adapters.NewTokenVerifier(testJWTSecret)

			// Shared task services
			taskGenerator := task.NewGenerator(taskRepo)
			streakCalculator := task.NewStreakCalculator(taskRepo, habitRepo, testTime)

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
			listGoalsUseCase := goal.NewListGoalsUseCase(goalRepo, userRepo, testTime)
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
				return testDB != nil && testDB.DbConn != nil
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

			// Create middleware. ENV=test makes the rate limiter a no-op,
			// but wiring it keeps the middleware chain production-shaped.
			rateLimiter := middleware.NewRateLimiter(mock.NewRedis())
			authMiddleware := middleware.NewAuthMiddleware(tokenVerifier)

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
			engine := r.Setup("test")

			addr := fmt.Sprintf(":%d", testServerPort)
			server := &http.Server{
				Addr:    addr,
				Handler: engine,
			}

			_ = server.ListenAndServe()
		}()
	})

	// Wait for server to be ready
	for i := 0; i < 50; i++ {
		resp, err := http.Get(t.uri + "/health")
		if err == nil && resp.StatusCode == http.StatusOK {
			resp.Body.Close()
			return
		}
		time.Sleep(100 * time.Millisecond)
	}
}

func (t *testContext) theAPIServerIsRunning() error {
	t.startServer()
	return nil
}

func (t *testContext) aUserExistsWithUsername(username string) error {
	return t.createUser(username)
}

func (t *testContext) createUser(username string) error {
	var existing model.UserModel
	if err := t.db.DbConn.Where("username = ?", username).First(&existing).Error; err == nil {
		t.currentUserID = existing.ID
		return nil
	}

	now := time.Now().UTC()
	userModel := &model.UserModel{
		Provider:   "github",
		ProviderID: "gh-" + username,
		Username:   username,
		Email:      username + "@example.com",
		Name:       "Test User " + username,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := t.db.DbConn.Create(userModel).Error; err != nil {
		return err
	}
	t.currentUserID = userModel.ID
	return nil
}

func (t *testContext) iAmAuthenticatedAs(username string) error {
	if err := t.createUser(username); err != nil {
		return err
	}

	now := time.Now().UTC()
	claims := jwt.MapClaims{
		"provider":    "github",
		"provider_id": "gh-" + username,
		"username":    username,
		"email":       username + "@example.com",
		"exp":         jwt.NewNumericDate(now.Add(15 * time.Minute)),
		"iat":         jwt.NewNumericDate(now),
		"nbf":         jwt.NewNumericDate(now),
		"iss":         "goals-manager",
		"sub":         "gh-" + username,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(testJWTSecret))
	if err != nil {
		return fmt.Errorf("failed to generate access token: %w", err)
	}
	t.accessToken = tokenString
	return nil
}

func (t *testContext) aGoalExistsWithTitle(title string) error {
	return t.createGoal(title, "IN_PROGRESS")
}

func (t *testContext) aGoalExistsWithTitleAndStatus(title, status string) error {
	return t.createGoal(title, status)
}

func (t *testContext) createGoal(title, status string) error {
	now := time.Now().UTC()

	goalModel := &model.GoalModel{
		Title:       title,
		Description: "Test goal",
		StartDate:   time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		EndDate:     time.Date(2026, 12, 31, 0, 0, 0, 0, time.UTC),
		Status:      status,
		UserID:      t.currentUserID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := t.db.DbConn.Create(goalModel).Error; err != nil {
		return err
	}
	t.currentGoalID = goalModel.ID
	return nil
}

func (t *testContext) aHabitExistsWithName(name string) error {
	now := time.Now().UTC()

	habitModel := &model.HabitModel{
		Name:        name,
		Description: "Test habit",
		DaysOfWeek:  "Mon,Tue,Wed,Thu,Fri,Sat,Sun",
		StartDate:   time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		EndDate:     time.Date(2026, 12, 31, 0, 0, 0, 0, time.UTC),
		Color:       "#6366F1",
		GoalID:      t.currentGoalID,
		UserID:      t.currentUserID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := t.db.DbConn.Create(habitModel).Error; err != nil {
		return err
	}
	t.currentHabitID = habitModel.ID
	return nil
}

func (t *testContext) aTaskExistsForTheHabitOn(date string) error {
	return t.createTask(date, false)
}

func (t *testContext) aCompletedTaskExistsForTheHabitOn(date string) error {
	return t.createTask(date, true)
}

func (t *testContext) createTask(date string, completed bool) error {
	day, err := time.Parse("2006-01-02", date)
	if err != nil {
		return fmt.Errorf("invalid date '%s': %w", date, err)
	}

	now := time.Now().UTC()
	taskModel := &model.TaskModel{
		Name:      "Test task",
		Date:      day,
		Completed: completed,
		HabitID:   t.currentHabitID,
		UserID:    t.currentUserID,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := t.db.DbConn.Create(taskModel).Error; err != nil {
		return err
	}
	t.currentTaskID = taskModel.ID
	return nil
}

func (t *testContext) aNoteExistsWithContent(content string) error {
	now := time.Now().UTC()
	noteModel := &model.NoteModel{
		Content:   content,
		GoalID:    t.currentGoalID,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := t.db.DbConn.Create(noteModel).Error; err != nil {
		return err
	}
	t.currentNoteID = noteModel.ID
	return nil
}

func (t *testContext) theHeaderIsEmpty() error {
	t.headers = make(map[string]string)
	t.accessToken = ""
	return nil
}

func (t *testContext) theHeaderContainsTheKeyWith(key, value string) error {
	t.headers[key] = value
	return nil
}

func (t *testContext) iSendARequestTo(method, path string) error {
	path = t.replacePlaceholders(path)
	return t.executeRequest(method, path, nil)
}

func (t *testContext) iSendARequestToWithBody(method, path string, body *godog.DocString) error {
	path = t.replacePlaceholders(path)

	var payload []byte
	if body != nil && body.Content != "" {
		content := t.replacePlaceholders(body.Content)
		payload = []byte(content)
	}
	return t.executeRequest(method, path, payload)
}

func (t *testContext) replacePlaceholders(content string) string {
	content = strings.ReplaceAll(content, "{{access_token}}", t.accessToken)
	content = strings.ReplaceAll(content, "{{user_id}}", strconv.FormatUint(uint64(t.currentUserID), 10))
	content = strings.ReplaceAll(content, "{{goal_id}}", strconv.FormatUint(uint64(t.currentGoalID), 10))
	content = strings.ReplaceAll(content, "{{habit_id}}", strconv.FormatUint(uint64(t.currentHabitID), 10))
	content = strings.ReplaceAll(content, "{{task_id}}", strconv.FormatUint(uint64(t.currentTaskID), 10))
	content = strings.ReplaceAll(content, "{{note_id}}", strconv.FormatUint(uint64(t.currentNoteID), 10))
	content = strings.ReplaceAll(content, "{{last_id}}", strconv.FormatUint(uint64(t.lastCreatedID), 10))
	return content
}

func (t *testContext) executeRequest(method, path string, payload []byte) error {
	var req *http.Request
	var err error

	url := t.uri + path

	if payload != nil {
		req, err = http.NewRequest(method, url, bytes.NewReader(payload))
	} else {
		req, err = http.NewRequest(method, url, nil)
	}
	if err != nil {
		return err
	}

	req.Header.Set("Content-Type", "application/json")

	if t.accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+t.accessToken)
	}

	for key, value := range t.headers {
		req.Header.Set(key, value)
	}

	resp, err := t.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	t.response = &response{
		status: resp.StatusCode,
	}

	var responseBody map[string]any
	if err := json.Unmarshal(bodyBytes, &responseBody); err != nil {
		t.response.body = string(bodyBytes)
	} else {
		t.response.body = responseBody

		if id, ok := responseBody["id"].(float64); ok && id > 0 {
			t.lastCreatedID = uint(id)
		}
	}

	return nil
}

func (t *testContext) theResponseStatusShouldBe(expectedStatus int) error {
	if t.response == nil {
		return errors.New("no response received")
	}
	if t.response.status != expectedStatus {
		return fmt.Errorf("expected status %d, got %d (body: %v)", expectedStatus, t.response.status, t.response.body)
	}
	return nil
}

func (t *testContext) theResponseShouldBeJSON() error {
	if t.response == nil {
		return errors.New("no response received")
	}
	if _, ok := t.response.body.(map[string]any); !ok {
		return fmt.Errorf("response is not JSON: %v", t.response.body)
	}
	return nil
}

func (t *testContext) theResponseShouldContain(field string) error {
	if t.response == nil {
		return errors.New("no response received")
	}

	body, ok := t.response.body.(map[string]any)
	if !ok {
		return fmt.Errorf("response is not a JSON object: %v", t.response.body)
	}

	if _, exists := body[field]; !exists {
		return fmt.Errorf("response does not contain field '%s': %v", field, body)
	}
	return nil
}

func (t *testContext) theResponseFieldShouldBe(field, expectedValue string) error {
	if t.response == nil {
		return errors.New("no response received")
	}

	body, ok := t.response.body.(map[string]any)
	if !ok {
		return fmt.Errorf("response is not a JSON object: %v", t.response.body)
	}

	expectedValue = t.replacePlaceholders(expectedValue)

	value := getFieldValue(body, field)
	if value == nil {
		return fmt.Errorf("field '%s' not found in response: %v", field, body)
	}

	actualValue := fmt.Sprintf("%v", value)
	if actualValue != expectedValue {
		return fmt.Errorf("field '%s' expected '%s', got '%s'", field, expectedValue, actualValue)
	}
	return nil
}

func (t *testContext) theResponseFieldShouldExist(field string) error {
	if t.response == nil {
		return errors.New("no response received")
	}

	body, ok := t.response.body.(map[string]any)
	if !ok {
		return fmt.Errorf("response is not a JSON object: %v", t.response.body)
	}

	value := getFieldValue(body, field)
	if value == nil {
		return fmt.Errorf("field '%s' not found in response: %v", field, body)
	}
	return nil
}

func (t *testContext) theDbShouldContainObjectsInTheTable(quantity int, table string) error {
	if entity, ok := t.db.GetModel(table); ok {
		entityType := reflect.TypeOf(entity).Elem()
		entitySlice := reflect.MakeSlice(reflect.SliceOf(entityType), 0, 0)
		entitySlicePtr := reflect.New(entitySlice.Type())
		entitySlicePtr.Elem().Set(entitySlice)

		result := t.db.DbConn.Unscoped().Find(entitySlicePtr.Interface())
		if result.Error != nil {
			return result.Error
		}

		count := entitySlicePtr.Elem().Len()
		if count != quantity {
			return fmt.Errorf("expected %d objects in '%s', got %d", quantity, table, count)
		}
		return nil
	}
	return fmt.Errorf("table '%s' not found in models", table)
}

func (t *testContext) theDbShouldContainObjectsInWithTheValues(quantity int, table string, content *godog.DocString) error {
	var criteria map[string]any
	if err := json.Unmarshal([]byte(t.replacePlaceholders(content.Content)), &criteria); err != nil {
		return err
	}

	if entity, ok := t.db.GetModel(table); ok {
		entityType := reflect.TypeOf(entity).Elem()
		entitySlice := reflect.MakeSlice(reflect.SliceOf(entityType), 0, 0)
		entitySlicePtr := reflect.New(entitySlice.Type())
		entitySlicePtr.Elem().Set(entitySlice)

		query := t.db.DbConn.Unscoped()
		for key, value := range criteria {
			query = query.Where(fmt.Sprintf("%s = ?", key), value)
		}

		result := query.Find(entitySlicePtr.Interface())
		if result.Error != nil && !errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return result.Error
		}

		count := entitySlicePtr.Elem().Len()
		if count != quantity {
			return fmt.Errorf("expected %d objects in '%s' with criteria %v, got %d", quantity, table, criteria, count)
		}
		return nil
	}
	return fmt.Errorf("table '%s' not found in models", table)
}

func getFieldValue(object any, dotSeparatedField string) any {
	if object == nil {
		return nil
	}

	var objectMap map[string]any
	switch v := object.(type) {
	case map[string]any:
		objectMap = v
	default:
		objectJSON, _ := json.Marshal(object)
		if err := json.Unmarshal(objectJSON, &objectMap); err != nil {
			return nil
		}
	}

	fields := strings.Split(dotSeparatedField, ".")
	var field any = objectMap

	for _, currentField := range fields {
		if field == nil {
			return nil
		}

		if i, err := strconv.Atoi(currentField); err == nil {
			if arr, ok := field.([]any); ok && i < len(arr) {
				field = arr[i]
			} else {
				return nil
			}
		} else {
			if m, ok := field.(map[string]any); ok {
				field = m[currentField]
			} else {
				return nil
			}
		}
	}

	return field
}
