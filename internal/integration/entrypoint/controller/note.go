package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/goals-manager/backend/internal/application/usecase/note"
	domainerror "github.com/goals-manager/backend/internal/domain/error"
	"github.com/goals-manager/backend/internal/integration/entrypoint/dto"
)

// NoteController handles note endpoints.
type NoteController struct {
	createUseCase *note.CreateNoteUseCase
	getUseCase    *note.GetNoteUseCase
	listUseCase   *note.ListNotesUseCase
	updateUseCase *note.UpdateNoteUseCase
	deleteUseCase *note.DeleteNoteUseCase
	countUseCase  *note.CountNotesUseCase
}

// NewNoteController creates a new note controller instance.
func NewNoteController(
	createUseCase *note.CreateNoteUseCase,
	getUseCase *note.GetNoteUseCase,
	listUseCase *note.ListNotesUseCase,
	updateUseCase *note.UpdateNoteUseCase,
	deleteUseCase *note.DeleteNoteUseCase,
	countUseCase *note.CountNotesUseCase,
) *NoteController {
	return &NoteController{
		createUseCase: createUseCase,
		getUseCase:    getUseCase,
		listUseCase:   listUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
		countUseCase:  countUseCase,
	}
}

// Create handles POST /notes requests.
func (c *NoteController) Create(ctx *gin.Context) {
	var req dto.CreateNoteRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeMissingNoteFields),
		})
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), note.CreateNoteInput{
		GoalID:  req.GoalID,
		Content: req.Content,
	})
	if err != nil {
		c.handleNoteError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToNoteResponse(output.Note))
}

// Get handles GET /notes/:id requests.
func (c *NoteController) Get(ctx *gin.Context) {
	noteID, err := parseIDParam(ctx, "id")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid note ID format",
		})
		return
	}

	output, err := c.getUseCase.Execute(ctx.Request.Context(), note.GetNoteInput{NoteID: noteID})
	if err != nil {
		c.handleNoteError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToNoteResponse(output.Note))
}

// ListByGoal handles GET /goals/:id/notes requests. Notes come back newest
// first.
func (c *NoteController) ListByGoal(ctx *gin.Context) {
	goalID, err := parseIDParam(ctx, "id")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid goal ID format",
		})
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), note.ListNotesInput{GoalID: goalID})
	if err != nil {
		c.handleNoteError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToNoteListResponse(output.Notes))
}

// Update handles PATCH /notes/:id requests.
func (c *NoteController) Update(ctx *gin.Context) {
	noteID, err := parseIDParam(ctx, "id")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid note ID format",
		})
		return
	}

	var req dto.UpdateNoteRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), note.UpdateNoteInput{
		NoteID:  noteID,
		Content: req.Content,
	})
	if err != nil {
		c.handleNoteError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToNoteResponse(output.Note))
}

// Delete handles DELETE /notes/:id requests.
func (c *NoteController) Delete(ctx *gin.Context) {
	noteID, err := parseIDParam(ctx, "id")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid note ID format",
		})
		return
	}

	if _, err := c.deleteUseCase.Execute(ctx.Request.Context(), note.DeleteNoteInput{NoteID: noteID}); err != nil {
		c.handleNoteError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// Count handles GET /goals/:id/notes/count requests.
func (c *NoteController) Count(ctx *gin.Context) {
	goalID, err := parseIDParam(ctx, "id")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid goal ID format",
		})
		return
	}

	output, err := c.countUseCase.Execute(ctx.Request.Context(), note.CountNotesInput{GoalID: goalID})
	if err != nil {
		c.handleNoteError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.CountResponse{Count: output.Count})
}

// handleNoteError handles note errors and returns appropriate HTTP responses.
func (c *NoteController) handleNoteError(ctx *gin.Context, err error) {
	var noteErr *domainerror.NoteError
	if errors.As(err, &noteErr) {
		statusCode := c.getStatusCodeForNoteError(noteErr.Code)
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: noteErr.Message,
			Code:  string(noteErr.Code),
		})
		return
	}

	// Generic server error
	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForNoteError maps note error codes to HTTP status codes.
func (c *NoteController) getStatusCodeForNoteError(code domainerror.NoteErrorCode) int {
	switch code {
	case domainerror.ErrCodeNoteNotFound, domainerror.ErrCodeNoteGoalNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeMissingNoteContent, domainerror.ErrCodeMissingNoteFields:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
