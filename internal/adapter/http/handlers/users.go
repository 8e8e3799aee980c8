package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"taskboard/internal/adapter/http/dto"
	"taskboard/internal/adapter/http/mapper"
	"taskboard/internal/adapter/http/middleware"
	"taskboard/internal/core/domain"
	"taskboard/internal/core/ports"
	"taskboard/pkg/apierrors"
)

type UserHandler struct {
	userService ports.UserService
}

func NewUserHandler(userService ports.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

func (h *UserHandler) Me(c *gin.Context) {
	lang := middleware.GetLang(c)

	actor, ok := middleware.GetActor(c)
	if !ok {
		c.JSON(
			http.StatusUnauthorized,
			apierrors.CreateError(http.StatusUnauthorized, apierrors.MsgUnauthenticated, lang),
		)
		return
	}

	user, err := h.userService.GetUser(c.Request.Context(), actor.ID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			c.JSON(
				http.StatusNotFound,
				apierrors.CreateError(http.StatusNotFound, apierrors.MsgUserNotFound, lang),
			)
			return
		}
		zap.L().Error("failed to load current user", zap.Uint64("user_id", actor.ID), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgUserNotFound, lang),
		)
		return
	}

	c.JSON(http.StatusOK, mapper.ToUserItem(user))
}

func (h *UserHandler) CreateUser(c *gin.Context) {
	lang := middleware.GetLang(c)

	actor, ok := middleware.GetActor(c)
	if !ok {
		c.JSON(
			http.StatusUnauthorized,
			apierrors.CreateError(http.StatusUnauthorized, apierrors.MsgUnauthenticated, lang),
		)
		return
	}

	var req dto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidUserPayload, lang),
		)
		return
	}

	input := domain.CreateUserInput{
		Email:      req.Email,
		Name:       req.Name,
		Password:   req.Password,
		AssigneeID: req.AssigneeID,
	}
	if req.Role != nil {
		input.Role = domain.Role(*req.Role)
	}

	user, err := h.userService.CreateUser(c.Request.Context(), actor, input)
	if err != nil {
		var forbiddenErr *domain.ForbiddenError
		switch {
		case errors.As(err, &forbiddenErr):
			c.JSON(
				http.StatusForbidden,
				apierrors.CreateError(http.StatusForbidden, forbiddenErr.MessageKey, lang),
			)
		case errors.Is(err, domain.ErrEmailTaken):
			c.JSON(
				http.StatusConflict,
				apierrors.CreateError(http.StatusConflict, apierrors.MsgEmailTaken, lang),
			)
		default:
			zap.L().Error("failed to create user", zap.Error(err))
			c.JSON(
				http.StatusInternalServerError,
				apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailCreateUser, lang),
			)
		}
		return
	}

	c.JSON(http.StatusCreated, mapper.ToUserItem(user))
}

func (h *UserHandler) ListAssignees(c *gin.Context) {
	lang := middleware.GetLang(c)

	assignees, err := h.userService.ListAssignees(c.Request.Context())
	if err != nil {
		zap.L().Error("failed to list assignees", zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailListAssignees, lang),
		)
		return
	}

	c.JSON(http.StatusOK, mapper.ToAssigneeItems(assignees))
}
