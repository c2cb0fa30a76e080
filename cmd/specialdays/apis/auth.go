package apis

import (
	"context"
	"net/http"
	"specialdays-backend/cmd/specialdays/model"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
)

// userContextKey is where the session middleware stores the resolved user
// on the echo context.
const userContextKey = "sessionUser"

type ISessionRepo interface {
	SignUp(email string, password string) (*model.User, error)
	SignIn(email string, password string) (*model.TokenPair, error)
	Refresh(refreshToken string) (*model.TokenPair, error)
	UserFromToken(accessToken string) (*model.User, error)
}

type IProfileWriter interface {
	EnsureProfile(ctx context.Context, profile model.UserProfile) error
}

type AuthAPI struct {
	sessionRepo ISessionRepo
	userRepo    IProfileWriter
}

func NewAuthAPI(sessionRepo ISessionRepo, userRepo IProfileWriter) *AuthAPI {

	return &AuthAPI{
		sessionRepo: sessionRepo,
		userRepo:    userRepo,
	}
}

func (a *AuthAPI) Setup(g *echo.Group) {
	g.POST("/auth/register", a.register)
	g.POST("/auth/login", a.login)
	g.POST("/auth/refresh", a.refresh)
}

// RequireSession resolves the bearer token against the auth service and
// stores the user on the context. Requests without a valid session never
// reach a store-backed handler.
func (a *AuthAPI) RequireSession(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {

		header := c.Request().Header.Get(echo.HeaderAuthorization)
		token, found := strings.CutPrefix(header, "Bearer ")

		if !found || token == "" {
			return c.JSON(
				http.StatusUnauthorized,
				model.BaseResponse{
					Message: "missing bearer token",
				},
			)
		}

		user, err := a.sessionRepo.UserFromToken(token)
		if err != nil {
			return c.JSON(
				http.StatusUnauthorized,
				model.BaseResponse{
					Message: "invalid or expired session",
				},
			)
		}

		c.Set(userContextKey, *user)

		return next(c)
	}
}

// CurrentUser returns the user placed on the context by RequireSession.
func CurrentUser(c echo.Context) (model.User, bool) {
	user, ok := c.Get(userContextKey).(model.User)
	return user, ok
}

func (a *AuthAPI) register(c echo.Context) error {

	ctx := c.Request().Context()

	var req model.RegisterRequest
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

	user, err := a.sessionRepo.SignUp(req.Email, req.Password)
	if err != nil {
		return c.JSON(
			http.StatusInternalServerError,
			model.BaseResponse{
				Message: "registration failed",
			},
		)
	}

	profile := model.UserProfile{
		ID:         user.ID,
		Name:       req.Name,
		BirthDate:  req.BirthDate,
		Gender:     req.Gender,
		Email:      req.Email,
		CreateDate: time.Now(),
		UpdateDate: time.Now(),
	}

	err = a.userRepo.EnsureProfile(ctx, profile)
	if err != nil {
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
			Data:    user,
		},
	)
}

func (a *AuthAPI) login(c echo.Context) error {

	var req model.LoginRequest
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

	tokens, err := a.sessionRepo.SignIn(req.Email, req.Password)
	if err != nil {
		return c.JSON(
			http.StatusUnauthorized,
			model.BaseResponse{
				Message: "invalid credentials",
			},
		)
	}

	return c.JSON(
		http.StatusOK,
		model.BaseResponse{
			Message: "success",
			Data:    tokens,
		},
	)
}

func (a *AuthAPI) refresh(c echo.Context) error {

	var req model.RefreshRequest
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

	tokens, err := a.sessionRepo.Refresh(req.RefreshToken)
	if err != nil {
		return c.JSON(
			http.StatusUnauthorized,
			model.BaseResponse{
				Message: "invalid refresh token",
			},
		)
	}

	return c.JSON(
		http.StatusOK,
		model.BaseResponse{
			Message: "success",
			Data:    tokens,
		},
	)
}
