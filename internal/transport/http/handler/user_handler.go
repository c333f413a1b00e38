package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"go-user-service/internal/domain"
	resp "go-user-service/internal/transport/http/response"
)

type UserHandler struct {
	svc AccountService
	log *zap.Logger
}

func NewUserHandler(svc AccountService, log *zap.Logger) *UserHandler {
	return &UserHandler{svc: svc, log: log}
}

// Create handles POST /user. Open to anonymous callers; everything else on
// the user surface sits behind the auth gate.
func (h *UserHandler) Create(c *gin.Context) {
	var in CreateUserRequest
	if err := c.ShouldBindJSON(&in); err != nil {
		h.fail(c, resp.Unprocessable(err.Error()))
		return
	}
	if !lettersOnly(in.Name) {
		h.fail(c, resp.Unprocessable("name must contain only letters"))
		return
	}
	if !lettersOnly(in.Surname) {
		h.fail(c, resp.Unprocessable("surname must contain only letters"))
		return
	}

	u, err := h.svc.Register(c.Request.Context(), in.Name, in.Surname, in.Email, in.Password)
	if err != nil {
		if errors.Is(err, domain.ErrEmailTaken) {
			h.fail(c, resp.Unavailable("database error: "+domain.ErrEmailTaken.Error(), err))
			return
		}
		h.fail(c, resp.Internal("create user failed", err))
		return
	}
	c.JSON(http.StatusOK, resp.OK(showUser(u)))
}

// Get handles GET /user?user_id=. No is_active filter: a deactivated account
// stays readable by id.
func (h *UserHandler) Get(c *gin.Context) {
	id, err := h.userID(c)
	if err != nil {
		h.fail(c, err)
		return
	}
	u, err := h.svc.Fetch(c.Request.Context(), id)
	if err != nil {
		h.fail(c, resp.Internal("fetch user failed", err))
		return
	}
	if u == nil {
		h.fail(c, resp.NotFound(fmt.Sprintf("user with id %s not found", id)))
		return
	}
	c.JSON(http.StatusOK, resp.OK(showUser(u)))
}

// Update handles PATCH /user?user_id=. Partial semantics: only supplied
// fields change, an empty body is rejected before the store is touched.
func (h *UserHandler) Update(c *gin.Context) {
	id, err := h.userID(c)
	if err != nil {
		h.fail(c, err)
		return
	}
	var in UpdateUserRequest
	if err := c.ShouldBindJSON(&in); err != nil {
		h.fail(c, resp.Unprocessable(err.Error()))
		return
	}
	if in.Name != nil && !lettersOnly(*in.Name) {
		h.fail(c, resp.Unprocessable("name must contain only letters"))
		return
	}
	if in.Surname != nil && !lettersOnly(*in.Surname) {
		h.fail(c, resp.Unprocessable("surname must contain only letters"))
		return
	}
	// the binding's omitempty skips the email check for a zero string, so an
	// explicit empty value has to be rejected here
	if in.Email != nil && *in.Email == "" {
		h.fail(c, resp.Unprocessable("email must be a well-formed address"))
		return
	}

	updatedID, err := h.svc.Modify(c.Request.Context(), id, in.Fields())
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNoFields):
			h.fail(c, resp.Unprocessable("at least one parameter for user update should be provided"))
		case errors.Is(err, domain.ErrNotFound):
			h.fail(c, resp.NotFound(fmt.Sprintf("user with id %s not found", id)))
		case errors.Is(err, domain.ErrEmailTaken):
			h.fail(c, resp.Unavailable("database error: "+domain.ErrEmailTaken.Error(), err))
		default:
			h.fail(c, resp.Internal("update user failed", err))
		}
		return
	}
	c.JSON(http.StatusOK, resp.OK(UpdateUserResponse{UpdatedUserID: updatedID}))
}

// Delete handles DELETE /user?user_id=. Soft delete only; a second delete of
// the same id is a 404.
func (h *UserHandler) Delete(c *gin.Context) {
	id, err := h.userID(c)
	if err != nil {
		h.fail(c, err)
		return
	}
	deletedID, err := h.svc.Remove(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			h.fail(c, resp.NotFound(fmt.Sprintf("user with id %s not found", id)))
			return
		}
		h.fail(c, resp.Internal("delete user failed", err))
		return
	}
	c.JSON(http.StatusOK, resp.OK(DeleteUserResponse{DeletedUserID: deletedID}))
}

func (h *UserHandler) userID(c *gin.Context) (uuid.UUID, error) {
	raw := c.Query("user_id")
	if raw == "" {
		return uuid.Nil, resp.Unprocessable("user_id is required")
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, resp.Unprocessable("user_id must be a valid uuid")
	}
	return id, nil
}

func (h *UserHandler) fail(c *gin.Context, err error) {
	var ae *resp.AErr
	if errors.As(err, &ae) {
		if ae.Code >= resp.CodeServerError && ae.Err != nil {
			h.log.Error("request failed", zap.String("rid", c.GetString("X-Request-ID")), zap.Error(ae.Err))
		}
		c.JSON(resp.HTTPStatus(ae.Code), resp.Error(ae.Code, ae.Error()))
		return
	}
	h.log.Error("request failed", zap.Error(err))
	c.JSON(http.StatusInternalServerError, resp.Error(resp.CodeServerError, "internal error"))
}
