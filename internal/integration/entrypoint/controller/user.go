package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/goals-manager/backend/internal/application/usecase/user"
	domainerror "github.com/goals-manager/backend/internal/domain/error"
	"github.com/goals-manager/backend/internal/integration/entrypoint/dto"
)

// UserController handles user endpoints.
type UserController struct {
	upsertUseCase *user.UpsertUserUseCase
	getUseCase    *user.GetUserUseCase
	lookupUseCase *user.LookupUserUseCase
	listUseCase   *user.ListUsersUseCase
	deleteUseCase *user.DeleteUserUseCase
	existsUseCase *user.UserExistsUseCase
}

// NewUserController creates a new user controller instance.
func NewUserController(
	upsertUseCase *user.UpsertUserUseCase,
	getUseCase *user.GetUserUseCase,
	lookupUseCase *user.LookupUserUseCase,
	listUseCase *user.ListUsersUseCase,
	deleteUseCase *user.DeleteUserUseCase,
	existsUseCase *user.UserExistsUseCase,
) *UserController {
	return &UserController{
		upsertUseCase: upsertUseCase,
		getUseCase:    getUseCase,
		lookupUseCase: lookupUseCase,
		listUseCase:   listUseCase,
		deleteUseCase: deleteUseCase,
		existsUseCase: existsUseCase,
	}
}

// Upsert handles PUT /users requests. The user is created on first sight of
// the provider identity and refreshed afterwards.
func (c *UserController) Upsert(ctx *gin.Context) {
	var req dto.UpsertUserRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeMissingUserFields),
		})
		return
	}

	output, err := c.upsertUseCase.Execute(ctx.Request.Context(), user.UpsertUserInput{
		Provider:   req.Provider,
		ProviderID: req.ProviderID,
		Username:   req.Username,
		Email:      req.Email,
		Name:       req.Name,
		AvatarURL:  req.AvatarURL,
		Bio:        req.Bio,
		Location:   req.Location,
	})
	if err != nil {
		c.handleUserError(ctx, err)
		return
	}

	statusCode := http.StatusOK
	if output.Created {
		statusCode = http.StatusCreated
	}
	ctx.JSON(statusCode, dto.ToUserResponse(output.User))
}

// Get handles GET /users/:id requests.
func (c *UserController) Get(ctx *gin.Context) {
	userID, err := parseIDParam(ctx, "id")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid user ID format",
		})
		return
	}

	output, err := c.getUseCase.Execute(ctx.Request.Context(), user.GetUserInput{UserID: userID})
	if err != nil {
		c.handleUserError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToUserResponse(output.User))
}

// Lookup handles GET /users/lookup requests. Exactly one key is used, in
// order of precedence: username, email, then provider plus provider_id.
func (c *UserController) Lookup(ctx *gin.Context) {
	input := user.LookupUserInput{}
	if username := ctx.Query("username"); username != "" {
		input.Username = &username
	}
	if email := ctx.Query("email"); email != "" {
		input.Email = &email
	}
	if provider := ctx.Query("provider"); provider != "" {
		input.Provider = &provider
	}
	if providerID := ctx.Query("provider_id"); providerID != "" {
		input.ProviderID = &providerID
	}

	output, err := c.lookupUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleUserError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToUserResponse(output.User))
}

// List handles GET /users requests. The provider query parameter restricts
// the listing.
func (c *UserController) List(ctx *gin.Context) {
	input := user.ListUsersInput{}
	if provider := ctx.Query("provider"); provider != "" {
		input.Provider = &provider
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleUserError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToUserListResponse(output.Users))
}

// Delete handles DELETE /users/:id requests.
func (c *UserController) Delete(ctx *gin.Context) {
	userID, err := parseIDParam(ctx, "id")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid user ID format",
		})
		return
	}

	if _, err := c.deleteUseCase.Execute(ctx.Request.Context(), user.DeleteUserInput{UserID: userID}); err != nil {
		c.handleUserError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// Exists handles GET /users/:id/exists requests.
func (c *UserController) Exists(ctx *gin.Context) {
	userID, err := parseIDParam(ctx, "id")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid user ID format",
		})
		return
	}

	output, err := c.existsUseCase.Execute(ctx.Request.Context(), user.UserExistsInput{UserID: &userID})
	if err != nil {
		c.handleUserError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ExistsResponse{Exists: output.Exists})
}

// handleUserError handles user errors and returns appropriate HTTP responses.
func (c *UserController) handleUserError(ctx *gin.Context, err error) {
	var userErr *domainerror.UserError
	if errors.As(err, &userErr) {
		statusCode := c.getStatusCodeForUserError(userErr.Code)
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: userErr.Message,
			Code:  string(userErr.Code),
		})
		return
	}

	// Generic server error
	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForUserError maps user error codes to HTTP status codes.
func (c *UserController) getStatusCodeForUserError(code domainerror.UserErrorCode) int {
	switch code {
	case domainerror.ErrCodeUserNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeUsernameTaken:
		return http.StatusConflict
	case domainerror.ErrCodeMissingProviderIdentity,
		domainerror.ErrCodeMissingUsername,
		domainerror.ErrCodeMissingUserFields:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
