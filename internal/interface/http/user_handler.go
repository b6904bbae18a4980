package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	userapp "github.com/omaroid/user-service/internal/application"
	"github.com/omaroid/user-service/internal/domain/apperrors"
	"github.com/omaroid/user-service/pkg/response"
	"github.com/omaroid/user-service/pkg/validation"
)

const (
	defaultPage = 0
	defaultSize = 10
	maxSize     = 100
)

// UserHandler maps HTTP requests onto the user use cases. This is the only
// layer that knows about status codes.
type UserHandler struct {
	Svc    *userapp.Service
	Logger *logrus.Logger
}

func NewUserHandler(svc *userapp.Service, logger *logrus.Logger) *UserHandler {
	return &UserHandler{Svc: svc, Logger: logger}
}

// Create handles POST /api/v1/users.
func (h *UserHandler) Create(c *gin.Context) {
	var req createUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, validation.Message(err))
		return
	}

	u, err := h.Svc.CreateUser(c.Request.Context(), req.Email, req.Name)
	if err != nil {
		h.respondError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, toUserResponse(u))
}

// GetByID handles GET /api/v1/users/:id.
func (h *UserHandler) GetByID(c *gin.Context) {
	id, ok := h.userID(c)
	if !ok {
		return
	}

	u, err := h.Svc.GetUser(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, toUserResponse(u))
}

// Update handles PUT /api/v1/users/:id.
func (h *UserHandler) Update(c *gin.Context) {
	id, ok := h.userID(c)
	if !ok {
		return
	}

	var req updateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, validation.Message(err))
		return
	}

	u, err := h.Svc.UpdateUser(c.Request.Context(), id, req.Name)
	if err != nil {
		h.respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, toUserResponse(u))
}

// Delete handles DELETE /api/v1/users/:id. Success has no body.
func (h *UserHandler) Delete(c *gin.Context) {
	id, ok := h.userID(c)
	if !ok {
		return
	}

	if _, err := h.Svc.DeleteUser(c.Request.Context(), id); err != nil {
		h.respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// List handles GET /api/v1/users. Out-of-range page and size query
// parameters are silently clamped to defaults at this boundary; the use
// case keeps its own stricter validation for non-HTTP callers.
func (h *UserHandler) List(c *gin.Context) {
	page := defaultPage
	if v, err := strconv.Atoi(c.Query("page")); err == nil && v >= 0 {
		page = v
	}
	size := defaultSize
	if v, err := strconv.Atoi(c.Query("size")); err == nil && v >= 1 && v <= maxSize {
		size = v
	}

	users, total, err := h.Svc.ListUsers(c.Request.Context(), page, size)
	if err != nil {
		h.respondError(c, err)
		return
	}

	if len(users) == 0 {
		response.Success(c, http.StatusOK, emptyUsersPage(page, size))
		return
	}
	response.Success(c, http.StatusOK, toUsersPage(users, page, size, total))
}

// userID parses the id path parameter, rejecting non-numeric values before
// the use case is reached.
func (h *UserHandler) userID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "User ID must be a valid number")
		return 0, false
	}
	return id, true
}

// respondError maps a typed domain error to its status code. Anything
// outside the taxonomy becomes a generic 500; the cause is only logged.
func (h *UserHandler) respondError(c *gin.Context, err error) {
	if ae, ok := apperrors.AsAppError(err); ok {
		switch ae.Kind {
		case apperrors.KindBadRequest:
			response.Error(c, http.StatusBadRequest, ae.Message)
			return
		case apperrors.KindNotFound:
			response.Error(c, http.StatusNotFound, ae.Message)
			return
		case apperrors.KindConflict:
			response.Error(c, http.StatusConflict, ae.Message)
			return
		case apperrors.KindInternal:
			response.Error(c, http.StatusInternalServerError, ae.Message)
			return
		}
	}
	if h.Logger != nil {
		h.Logger.WithError(err).Error("unhandled error")
	}
	response.Error(c, http.StatusInternalServerError, "Internal Server Error")
}
