package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/goals-manager/backend/internal/application/usecase/task"
	domainerror "github.com/goals-manager/backend/internal/domain/error"
	"github.com/goals-manager/backend/internal/integration/entrypoint/dto"
)

// TaskController handles task endpoints.
type TaskController struct {
	createUseCase  *task.CreateTaskUseCase
	getUseCase     *task.GetTaskUseCase
	listUseCase    *task.ListTasksUseCase
	inRangeUseCase *task.GetTasksInRangeUseCase
	updateUseCase  *task.UpdateTaskUseCase
	toggleUseCase  *task.ToggleTaskUseCase
	deleteUseCase  *task.DeleteTaskUseCase
	countUseCase   *task.CountTasksUseCase
	existsUseCase  *task.TaskExistsUseCase
}

// NewTaskController creates a new task controller instance.
func NewTaskController(
	createUseCase *task.CreateTaskUseCase,
	getUseCase *task.GetTaskUseCase,
	listUseCase *task.ListTasksUseCase,
	inRangeUseCase *task.GetTasksInRangeUseCase,
	updateUseCase *task.UpdateTaskUseCase,
	toggleUseCase *task.ToggleTaskUseCase,
	deleteUseCase *task.DeleteTaskUseCase,
	countUseCase *task.CountTasksUseCase,
	existsUseCase *task.TaskExistsUseCase,
) *TaskController {
	return &TaskController{
		createUseCase:  createUseCase,
		getUseCase:     getUseCase,
		listUseCase:    listUseCase,
		inRangeUseCase: inRangeUseCase,
		updateUseCase:  updateUseCase,
		toggleUseCase:  toggleUseCase,
		deleteUseCase:  deleteUseCase,
		countUseCase:   countUseCase,
		existsUseCase:  existsUseCase,
	}
}

// Create handles POST /tasks requests.
func (c *TaskController) Create(ctx *gin.Context) {
	var req dto.CreateTaskRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeMissingTaskFields),
		})
		return
	}

	date, err := dto.ParseDate(req.Date)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid date format, expected " + dto.DateLayout,
			Code:  string(domainerror.ErrCodeMissingTaskFields),
		})
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), task.CreateTaskInput{
		HabitID: req.HabitID,
		UserID:  req.UserID,
		Name:    req.Name,
		Date:    date,
	})
	if err != nil {
		c.handleTaskError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToTaskResponse(output.Task, output.HabitName, output.HabitColor, output.Username))
}

// Get handles GET /tasks/:id requests.
func (c *TaskController) Get(ctx *gin.Context) {
	taskID, err := parseIDParam(ctx, "id")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid task ID format",
		})
		return
	}

	output, err := c.getUseCase.Execute(ctx.Request.Context(), task.GetTaskInput{TaskID: taskID})
	if err != nil {
		c.handleTaskError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTaskResponse(output.Task, output.HabitName, output.HabitColor, output.Username))
}

// List handles GET /tasks requests. Supported query parameters: user_id,
// habit_id, and completed.
func (c *TaskController) List(ctx *gin.Context) {
	userID, err := parseUintQuery(ctx, "user_id")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid user_id query parameter",
		})
		return
	}
	habitID, err := parseUintQuery(ctx, "habit_id")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid habit_id query parameter",
		})
		return
	}
	completed, err := parseBoolQuery(ctx, "completed")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid completed query parameter",
		})
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), task.ListTasksInput{
		UserID:    userID,
		HabitID:   habitID,
		Completed: completed,
	})
	if err != nil {
		c.handleTaskError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTaskListResponse(output.Tasks))
}

// GetInRange handles GET /tasks/range requests. The window is materialized
// before being read, so scheduled tasks appear without a separate generation
// call.
func (c *TaskController) GetInRange(ctx *gin.Context) {
	userID, err := parseUintQuery(ctx, "user_id")
	if err != nil || userID == nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "A valid user_id query parameter is required",
			Code:  string(domainerror.ErrCodeMissingTaskFields),
		})
		return
	}

	startDate, err := dto.ParseDate(ctx.Query("start_date"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid start_date, expected " + dto.DateLayout,
			Code:  string(domainerror.ErrCodeInvalidTaskRange),
		})
		return
	}
	endDate, err := dto.ParseDate(ctx.Query("end_date"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid end_date, expected " + dto.DateLayout,
			Code:  string(domainerror.ErrCodeInvalidTaskRange),
		})
		return
	}

	output, err := c.inRangeUseCase.Execute(ctx.Request.Context(), task.GetTasksInRangeInput{
		UserID:    *userID,
		StartDate: startDate,
		EndDate:   endDate,
	})
	if err != nil {
		c.handleTaskError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTaskListResponse(output.Tasks))
}

// Update handles PATCH /tasks/:id requests.
func (c *TaskController) Update(ctx *gin.Context) {
	taskID, err := parseIDParam(ctx, "id")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid task ID format",
		})
		return
	}

	var req dto.UpdateTaskRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	input := task.UpdateTaskInput{
		TaskID:    taskID,
		Name:      req.Name,
		Completed: req.Completed,
	}
	if req.Date != nil {
		date, err := dto.ParseDate(*req.Date)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid date format, expected " + dto.DateLayout,
			})
			return
		}
		input.Date = &date
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleTaskError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTaskResponse(output.Task, output.HabitName, output.HabitColor, output.Username))
}

// Toggle handles PATCH /tasks/:id/toggle requests.
func (c *TaskController) Toggle(ctx *gin.Context) {
	taskID, err := parseIDParam(ctx, "id")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid task ID format",
		})
		return
	}

	output, err := c.toggleUseCase.Execute(ctx.Request.Context(), task.ToggleTaskInput{TaskID: taskID})
	if err != nil {
		c.handleTaskError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTaskResponse(output.Task, output.HabitName, output.HabitColor, output.Username))
}

// Delete handles DELETE /tasks/:id requests.
func (c *TaskController) Delete(ctx *gin.Context) {
	taskID, err := parseIDParam(ctx, "id")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid task ID format",
		})
		return
	}

	if _, err := c.deleteUseCase.Execute(ctx.Request.Context(), task.DeleteTaskInput{TaskID: taskID}); err != nil {
		c.handleTaskError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// Count handles GET /tasks/count requests.
func (c *TaskController) Count(ctx *gin.Context) {
	userID, err := parseUintQuery(ctx, "user_id")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid user_id query parameter",
		})
		return
	}
	habitID, err := parseUintQuery(ctx, "habit_id")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid habit_id query parameter",
		})
		return
	}

	output, err := c.countUseCase.Execute(ctx.Request.Context(), task.CountTasksInput{
		UserID:  userID,
		HabitID: habitID,
	})
	if err != nil {
		c.handleTaskError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.CountResponse{Count: output.Count})
}

// Exists handles GET /tasks/:id/exists requests.
func (c *TaskController) Exists(ctx *gin.Context) {
	taskID, err := parseIDParam(ctx, "id")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid task ID format",
		})
		return
	}

	output, err := c.existsUseCase.Execute(ctx.Request.Context(), task.TaskExistsInput{TaskID: taskID})
	if err != nil {
		c.handleTaskError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ExistsResponse{Exists: output.Exists})
}

// handleTaskError handles task errors and returns appropriate HTTP responses.
func (c *TaskController) handleTaskError(ctx *gin.Context, err error) {
	var taskErr *domainerror.TaskError
	if errors.As(err, &taskErr) {
		statusCode := c.getStatusCodeForTaskError(taskErr.Code)
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: taskErr.Message,
			Code:  string(taskErr.Code),
		})
		return
	}

	// Generic server error
	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForTaskError maps task error codes to HTTP status codes.
func (c *TaskController) getStatusCodeForTaskError(code domainerror.TaskErrorCode) int {
	switch code {
	case domainerror.ErrCodeTaskNotFound,
		domainerror.ErrCodeTaskHabitNotFound,
		domainerror.ErrCodeTaskUserNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeMissingTaskName,
		domainerror.ErrCodeInvalidTaskRange,
		domainerror.ErrCodeMissingTaskFields:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
