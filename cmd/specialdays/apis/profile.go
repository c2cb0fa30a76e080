package apis

import (
	"context"
	"errors"
	"net/http"
	"specialdays-backend/cmd/specialdays/model"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

type IProfileRepo interface {
	GetProfile(ctx context.Context, id string) (*model.UserProfile, error)
	UpdateProfile(ctx context.Context, id string, fields map[string]any) error
}

type ProfileAPI struct {
	userRepo IProfileRepo
}

func NewProfileAPI(userRepo IProfileRepo) *ProfileAPI {

	return &ProfileAPI{
		userRepo: userRepo,
	}
}

func (a *ProfileAPI) Setup(g *echo.Group) {
	g.GET("/profile", a.getProfile)
	g.PUT("/profile", a.updateProfile)
}

func (a *ProfileAPI) getProfile(c echo.Context) error {

	ctx := c.Request().Context()

	user, ok := CurrentUser(c)
	if !ok {
		return unauthenticated(c)
	}

	profile, err := a.userRepo.GetProfile(ctx, user.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.JSON(
				http.StatusNotFound,
				model.BaseResponse{
					Message: "profile not found",
				},
			)
		}

		return c.JSON(
			http.StatusInternalServerError,
			model.BaseResponse{
				Message: err.Error(),
			},
		)
	}

	return c.JSON(
		http.StatusOK,
		model.BaseResponse{
			Message: "success",
			Data:    profile,
		},
	)
}

func (a *ProfileAPI) updateProfile(c echo.Context) error {

	ctx := c.Request().Context()

	user, ok := CurrentUser(c)
	if !ok {
		return unauthenticated(c)
	}

	var req model.ProfileUpdateRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(
			http.StatusBadRequest,
			model.BaseResponse{
				Message: err.Error(),
			},
		)
	}

	if err := req.Validate(); err != nil {
		return c.JSON(
			http.StatusBadRequest,
			model.BaseResponse{
				Message: err.Error(),
			},
		)
	}

	fields := map[string]any{
		"name":       req.Name,
		"birth_date": req.BirthDate,
		"gender":     req.Gender,
	}

	err := a.userRepo.UpdateProfile(ctx, user.ID, fields)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.JSON(
				http.StatusNotFound,
				model.BaseResponse{
					Message: "profile not found",
				},
			)
		}

		return c.JSON(
			http.StatusInternalServerError,
			model.BaseResponse{
				Message: err.Error(),
			},
		)
	}

	return c.JSON(
		http.StatusOK,
		model.BaseResponse{
			Message: "success",
		},
	)
}
