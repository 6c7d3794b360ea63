package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/goals-manager/backend/internal/application/usecase/goal"
	"github.com/goals-manager/backend/internal/domain/entity"
	domainerror "github.com/goals-manager/backend/internal/domain/error"
	"github.com/goals-manager/backend/internal/integration/entrypoint/dto"
)

// GoalController handles goal endpoints.
type GoalController struct {
	createUseCase       *goal.CreateGoalUseCase
	getUseCase          *goal.GetGoalUseCase
	listUseCase         *goal.ListGoalsUseCase
	updateUseCase       *goal.UpdateGoalUseCase
	updateStatusUseCase *goal.UpdateGoalStatusUseCase
	deleteUseCase       *goal.DeleteGoalUseCase
	countUseCase        *goal.CountGoalsUseCase
	existsUseCase       *goal.GoalExistsUseCase
}

// NewGoalController creates a new goal controller instance.
func NewGoalController(
	createUseCase *goal.CreateGoalUseCase,
	getUseCase *goal.GetGoalUseCase,
	listUseCase *goal.ListGoalsUseCase,
	updateUseCase *goal.UpdateGoalUseCase,
	updateStatusUseCase *goal.UpdateGoalStatusUseCase,
	deleteUseCase *goal.DeleteGoalUseCase,
	countUseCase *goal.CountGoalsUseCase,
	existsUseCase *goal.GoalExistsUseCase,
) *GoalController {
	return &GoalController{
		createUseCase:       createUseCase,
		getUseCase:          getUseCase,
		listUseCase:         listUseCase,
		updateUseCase:       updateUseCase,
		updateStatusUseCase: updateStatusUseCase,
		deleteUseCase:       deleteUseCase,
		countUseCase:        countUseCase,
		existsUseCase:       existsUseCase,
	}
}

// Create handles POST /goals requests.
func (c *GoalController) Create(ctx *gin.Context) {
	var req dto.CreateGoalRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeMissingGoalFields),
		})
		return
	}

	startDate, err := dto.ParseDate(req.StartDate)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid start date format, expected " + dto.DateLayout,
			Code:  string(domainerror.ErrCodeInvalidGoalDates),
		})
		return
	}
	endDate, err := dto.ParseDate(req.EndDate)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid end date format, expected " + dto.DateLayout,
			Code:  string(domainerror.ErrCodeInvalidGoalDates),
		})
		return
	}

	input := goal.CreateGoalInput{
		UserID:      req.UserID,
		Title:       req.Title,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		Emoji:       req.Emoji,
		StartDate:   startDate,
		EndDate:     endDate,
	}
	if req.Status != nil {
		status := entity.GoalStatus(*req.Status)
		input.Status = &status
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleGoalError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToGoalResponse(output.Goal, output.Username))
}

// Get handles GET /goals/:id requests.
func (c *GoalController) Get(ctx *gin.Context) {
	goalID, err := parseIDParam(ctx, "id")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid goal ID format",
		})
		return
	}

	output, err := c.getUseCase.Execute(ctx.Request.Context(), goal.GetGoalInput{GoalID: goalID})
	if err != nil {
		c.handleGoalError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToGoalResponse(output.Goal, output.Username))
}

// List handles GET /goals requests. Supported query parameters: user_id,
// status, and scope (all, active, overdue).
func (c *GoalController) List(ctx *gin.Context) {
	userID, err := parseUintQuery(ctx, "user_id")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid user_id query parameter",
		})
		return
	}

	input := goal.ListGoalsInput{
		UserID: userID,
		Scope:  goal.GoalScope(ctx.Query("scope")),
	}
	if statusStr := ctx.Query("status"); statusStr != "" {
		status := entity.GoalStatus(statusStr)
		if !entity.IsValidGoalStatus(status) {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid status query parameter",
				Code:  string(domainerror.ErrCodeInvalidGoalStatus),
			})
			return
		}
		input.Status = &status
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleGoalError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToGoalListResponse(output.Goals))
}

// Update handles PATCH /goals/:id requests.
func (c *GoalController) Update(ctx *gin.Context) {
	goalID, err := parseIDParam(ctx, "id")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid goal ID format",
		})
		return
	}

	var req dto.UpdateGoalRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	input := goal.UpdateGoalInput{
		GoalID:      goalID,
		Title:       req.Title,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		Emoji:       req.Emoji,
	}
	if req.StartDate != nil {
		startDate, err := dto.ParseDate(*req.StartDate)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid start date format, expected " + dto.DateLayout,
				Code:  string(domainerror.ErrCodeInvalidGoalDates),
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
				Code:  string(domainerror.ErrCodeInvalidGoalDates),
			})
			return
		}
		input.EndDate = &endDate
	}
	if req.Status != nil {
		status := entity.GoalStatus(*req.Status)
		input.Status = &status
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleGoalError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToGoalResponse(output.Goal, output.Username))
}

// UpdateStatus handles PATCH /goals/:id/status requests.
func (c *GoalController) UpdateStatus(ctx *gin.Context) {
	goalID, err := parseIDParam(ctx, "id")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid goal ID format",
		})
		return
	}

	var req dto.UpdateGoalStatusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeInvalidGoalStatus),
		})
		return
	}

	output, err := c.updateStatusUseCase.Execute(ctx.Request.Context(), goal.UpdateGoalStatusInput{
		GoalID: goalID,
		Status: entity.GoalStatus(req.Status),
	})
	if err != nil {
		c.handleGoalError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToGoalResponse(output.Goal, output.Username))
}

// Delete handles DELETE /goals/:id requests.
func (c *GoalController) Delete(ctx *gin.Context) {
	goalID, err := parseIDParam(ctx, "id")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid goal ID format",
		})
		return
	}

	if _, err := c.deleteUseCase.Execute(ctx.Request.Context(), goal.DeleteGoalInput{GoalID: goalID}); err != nil {
		c.handleGoalError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// Count handles GET /goals/count requests.
func (c *GoalController) Count(ctx *gin.Context) {
	userID, err := parseUintQuery(ctx, "user_id")
	if err != nil || userID == nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "A valid user_id query parameter is required",
			Code:  string(domainerror.ErrCodeMissingGoalFields),
		})
		return
	}

	input := goal.CountGoalsInput{UserID: *userID}
	if statusStr := ctx.Query("status"); statusStr != "" {
		status := entity.GoalStatus(statusStr)
		if !entity.IsValidGoalStatus(status) {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid status query parameter",
				Code:  string(domainerror.ErrCodeInvalidGoalStatus),
			})
			return
		}
		input.Status = &status
	}

	output, err := c.countUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleGoalError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.CountResponse{Count: output.Count})
}

// Exists handles GET /goals/:id/exists requests.
func (c *GoalController) Exists(ctx *gin.Context) {
	goalID, err := parseIDParam(ctx, "id")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid goal ID format",
		})
		return
	}

	output, err := c.existsUseCase.Execute(ctx.Request.Context(), goal.GoalExistsInput{GoalID: goalID})
	if err != nil {
		c.handleGoalError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ExistsResponse{Exists: output.Exists})
}

// handleGoalError handles goal errors and returns appropriate HTTP responses.
func (c *GoalController) handleGoalError(ctx *gin.Context, err error) {
	var goalErr *domainerror.GoalError
	if errors.As(err, &goalErr) {
		statusCode := c.getStatusCodeForGoalError(goalErr.Code)
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: goalErr.Message,
			Code:  string(goalErr.Code),
		})
		return
	}

	// Generic server error
	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForGoalError maps goal error codes to HTTP status codes.
func (c *GoalController) getStatusCodeForGoalError(code domainerror.GoalErrorCode) int {
	switch code {
	case domainerror.ErrCodeGoalNotFound, domainerror.ErrCodeGoalUserNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeInvalidGoalDates,
		domainerror.ErrCodeMissingGoalTitle,
		domainerror.ErrCodeInvalidGoalStatus,
		domainerror.ErrCodeMissingGoalFields:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
