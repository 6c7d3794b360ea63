package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/goals-manager/backend/internal/application/usecase/habit"
	domainerror "github.com/goals-manager/backend/internal/domain/error"
	"github.com/goals-manager/backend/internal/integration/entrypoint/dto"
)

// HabitController handles habit endpoints.
type HabitController struct {
	createUseCase *habit.CreateHabitUseCase
	getUseCase    *habit.GetHabitUseCase
	listUseCase   *habit.ListHabitsUseCase
	updateUseCase *habit.UpdateHabitUseCase
	deleteUseCase *habit.DeleteHabitUseCase
	countUseCase  *habit.CountHabitsUseCase
	existsUseCase *habit.HabitExistsUseCase
}

// NewHabitController creates a new habit controller instance.
func NewHabitController(
	createUseCase *habit.CreateHabitUseCase,
	getUseCase *habit.GetHabitUseCase,
	listUseCase *habit.ListHabitsUseCase,
	updateUseCase *habit.UpdateHabitUseCase,
	deleteUseCase *habit.DeleteHabitUseCase,
	countUseCase *habit.CountHabitsUseCase,
	existsUseCase *habit.HabitExistsUseCase,
) *HabitController {
	return &HabitController{
		createUseCase: createUseCase,
		getUseCase:    getUseCase,
		listUseCase:   listUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
		countUseCase:  countUseCase,
		existsUseCase: existsUseCase,
	}
}

// Create handles POST /habits requests.
func (c *HabitController) Create(ctx *gin.Context) {
	var req dto.CreateHabitRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeMissingHabitFields),
		})
		return
	}

	startDate, err := dto.ParseDate(req.StartDate)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid start date format, expected " + dto.DateLayout,
			Code:  string(domainerror.ErrCodeInvalidHabitDates),
		})
		return
	}
	endDate, err := dto.ParseDate(req.EndDate)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid end date format, expected " + dto.DateLayout,
			Code:  string(domainerror.ErrCodeInvalidHabitDates),
		})
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), habit.CreateHabitInput{
		GoalID:      req.GoalID,
		UserID:      req.UserID,
		Name:        req.Name,
		Description: req.Description,
		DaysOfWeek:  req.DaysOfWeek,
		StartDate:   startDate,
		EndDate:     endDate,
		Color:       req.Color,
	})
	if err != nil {
		c.handleHabitError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToHabitResponse(output.Habit, output.GoalTitle, output.Username))
}

// Get handles GET /habits/:id requests.
func (c *HabitController) Get(ctx *gin.Context) {
	habitID, err := parseIDParam(ctx, "id")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid habit ID format",
		})
		return
	}

	output, err := c.getUseCase.Execute(ctx.Request.Context(), habit.GetHabitInput{HabitID: habitID})
	if err != nil {
		c.handleHabitError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToHabitResponse(output.Habit, output.GoalTitle, output.Username))
}

// List handles GET /habits requests. Supported query parameters: user_id and
// goal_id.
func (c *HabitController) List(ctx *gin.Context) {
	userID, err := parseUintQuery(ctx, "user_id")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid user_id query parameter",
		})
		return
	}
	goalID, err := parseUintQuery(ctx, "goal_id")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid goal_id query parameter",
		})
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), habit.ListHabitsInput{
		UserID: userID,
		GoalID: goalID,
	})
	if err != nil {
		c.handleHabitError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToHabitListResponse(output.Habits))
}

// Update handles PATCH /habits/:id requests.
func (c *HabitController) Update(ctx *gin.Context) {
	habitID, err := parseIDParam(ctx, "id")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid habit ID format",
		})
		return
	}

	var req dto.UpdateHabitRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	input := habit.UpdateHabitInput{
		HabitID:     habitID,
		Name:        req.Name,
		Description: req.Description,
		DaysOfWeek:  req.DaysOfWeek,
		Color:       req.Color,
	}
	if req.StartDate != nil {
		startDate, err := dto.ParseDate(*req.StartDate)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid start date format, expected " + dto.DateLayout,
				Code:  string(domainerror.ErrCodeInvalidHabitDates),
			})
			return
		}
		input.StartDate = &startDate
	}
	if req.EndDate != nil {
		endDate, err := dto.ParseDate(*req.EndDate)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid end date format, expected " + dto.DateLayout,
				Code:  string(domainerror.ErrCodeInvalidHabitDates),
			})
			return
		}
		input.EndDate = &endDate
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleHabitError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToHabitResponse(output.Habit, output.GoalTitle, output.Username))
}

// Delete handles DELETE /habits/:id requests.
func (c *HabitController) Delete(ctx *gin.Context) {
	habitID, err := parseIDParam(ctx, "id")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid habit ID format",
		})
		return
	}

	if _, err := c.deleteUseCase.Execute(ctx.Request.Context(), habit.DeleteHabitInput{HabitID: habitID}); err != nil {
		c.handleHabitError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// Count handles GET /habits/count requests.
func (c *HabitController) Count(ctx *gin.Context) {
	userID, err := parseUintQuery(ctx, "user_id")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid user_id query parameter",
		})
		return
	}
	goalID, err := parseUintQuery(ctx, "goal_id")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid goal_id query parameter",
		})
		return
	}

	output, err := c.countUseCase.Execute(ctx.Request.Context(), habit.CountHabitsInput{
		UserID: userID,
		GoalID: goalID,
	})
	if err != nil {
		c.handleHabitError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.CountResponse{Count: output.Count})
}

// Exists handles GET /habits/:id/exists requests.
func (c *HabitController) Exists(ctx *gin.Context) {
	habitID, err := parseIDParam(ctx, "id")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid habit ID format",
		})
		return
	}

	output, err := c.existsUseCase.Execute(ctx.Request.Context(), habit.HabitExistsInput{HabitID: habitID})
	if err != nil {
		c.handleHabitError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ExistsResponse{Exists: output.Exists})
}

// handleHabitError handles habit errors and returns appropriate HTTP responses.
func (c *HabitController) handleHabitError(ctx *gin.Context, err error) {
	var habitErr *domainerror.HabitError
	if errors.As(err, &habitErr) {
		statusCode := c.getStatusCodeForHabitError(habitErr.Code)
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: habitErr.Message,
			Code:  string(habitErr.Code),
		})
		return
	}

	// Generic server error
	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForHabitError maps habit error codes to HTTP status codes.
func (c *HabitController) getStatusCodeForHabitError(code domainerror.HabitErrorCode) int {
	switch code {
	case domainerror.ErrCodeHabitNotFound,
		domainerror.ErrCodeHabitGoalNotFound,
		domainerror.ErrCodeHabitUserNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeInvalidHabitDates,
		domainerror.ErrCodeMissingHabitName,
		domainerror.ErrCodeMissingHabitFields:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
