package repository

import (
	"specialdays-backend/cmd/specialdays/model"

	"github.com/supabase-community/gotrue-go"
	"github.com/supabase-community/gotrue-go/types"
)

// SessionRepo talks to the hosted GoTrue auth service. Identity lives there
// entirely; this repo only maps its responses onto our model.
type SessionRepo struct {
	client gotrue.Client
}

func NewSessionRepo(client gotrue.Client) *SessionRepo {
	return &SessionRepo{
		client: client,
	}
}

func (r *SessionRepo) SignUp(email string, password string) (*model.User, error) {

	response, err := r.client.Signup(types.SignupRequest{
		Email:    email,
		Password: password,
	})

	if err != nil {
		return nil, err
	}

	return &model.User{
		ID:    response.User.ID.String(),
		Email: response.User.Email,
	}, nil
}

func (r *SessionRepo) SignIn(email string, password string) (*model.TokenPair, error) {

	response, err := r.client.Token(types.TokenRequest{
		GrantType: "password",
		Email:     email,
		Password:  password,
	})

	if err != nil {
		return nil, err
	}

	return &model.TokenPair{
		AccessToken:  response.AccessToken,
		RefreshToken: response.RefreshToken,
	}, nil
}

func (r *SessionRepo) Refresh(refreshToken string) (*model.TokenPair, error) {

	response, err := r.client.Token(types.TokenRequest{
		GrantType:    "refresh_token",
		RefreshToken: refreshToken,
	})

	if err != nil {
		return nil, err
	}

	return &model.TokenPair{
		AccessToken:  response.AccessToken,
		RefreshToken: response.RefreshToken,
	}, nil
}

func (r *SessionRepo) UserFromToken(accessToken string) (*model.User, error) {

	response, err := r.client.WithToken(accessToken).GetUser()
	if err != nil {
		return nil, err
	}

	return &model.User{
		ID:    response.User.ID.String(),
		Email: response.User.Email,
	}, nil
}
