package acceptance

import (
	"net/http"

	"github.com/quangtran-dev/storefront-api/internal/dto"
)

func (s *Suite) TestRegister_Success() {
	resp := s.postJSON("/api/v1/auth/register", "", dto.RegisterRequest{
		Phone:    "0912345678",
		Password: "Password123",
	})
	defer resp.Body.Close()

	s.Equal(http.StatusCreated, resp.StatusCode)

	var auth dto.AuthResponse
	s.decode(resp, &auth)

	s.NotEmpty(auth.AccessToken)
	s.NotEmpty(auth.RefreshToken)
	s.Equal("Bearer", auth.TokenType)
	s.NotZero(auth.ExpiresIn)
	s.Equal("0912345678", auth.User.Phone)
	s.Equal("user", auth.User.Role)
	s.NotEmpty(auth.User.ID)
}

func (s *Suite) TestRegister_DuplicatePhone() {
	s.registerUser("0912345678", "Password123")

	resp := s.postJSON("/api/v1/auth/register", "", dto.RegisterRequest{
		Phone:    "0912345678",
		Password: "AnotherPass456",
	})
	s.Equal(http.StatusConflict, resp.StatusCode)

	var errResp dto.ErrorResponse
	s.decode(resp, &errResp)
	s.Equal("IDENTIFIER_TAKEN", errResp.Error)
}

func (s *Suite) TestRegister_InvalidPhone() {
	resp := s.postJSON("/api/v1/auth/register", "", dto.RegisterRequest{
		Phone:    "not-a-phone",
		Password: "Password123",
	})
	defer resp.Body.Close()

	s.Equal(http.StatusBadRequest, resp.StatusCode)
}

func (s *Suite) TestRegister_ShortPassword() {
	resp := s.postJSON("/api/v1/auth/register", "", dto.RegisterRequest{
		Phone:    "0912345678",
		Password: "short",
	})
	defer resp.Body.Close()

	s.Equal(http.StatusBadRequest, resp.StatusCode)
}

func (s *Suite) TestLogin_Success() {
	s.registerUser("0912345678", "Password123")

	resp := s.postJSON("/api/v1/auth/login", "", dto.LoginRequest{
		Phone:    "0912345678",
		Password: "Password123",
	})
	s.Equal(http.StatusOK, resp.StatusCode)

	var auth dto.AuthResponse
	s.decode(resp, &auth)
	s.NotEmpty(auth.AccessToken)
	s.NotEmpty(auth.RefreshToken)
	s.Equal("0912345678", auth.User.Phone)
}

func (s *Suite) TestLogin_WrongPassword() {
	s.registerUser("0912345678", "Password123")

	resp := s.postJSON("/api/v1/auth/login", "", dto.LoginRequest{
		Phone:    "0912345678",
		Password: "WrongPassword",
	})
	s.Equal(http.StatusUnauthorized, resp.StatusCode)

	var errResp dto.ErrorResponse
	s.decode(resp, &errResp)
	s.Equal("INVALID_CREDENTIALS", errResp.Error)
}

func (s *Suite) TestLogin_UnknownPhone() {
	resp := s.postJSON("/api/v1/auth/login", "", dto.LoginRequest{
		Phone:    "0999999999",
		Password: "Password123",
	})
	defer resp.Body.Close()

	s.Equal(http.StatusUnauthorized, resp.StatusCode)
}

func (s *Suite) TestLogin_TooManyFailedAttempts() {
	s.registerUser("0912345678", "Password123")

	for i := 0; i < 5; i++ {
		resp := s.postJSON("/api/v1/auth/login", "", dto.LoginRequest{
			Phone:    "0912345678",
			Password: "WrongPassword",
		})
		resp.Body.Close()
		s.Equal(http.StatusUnauthorized, resp.StatusCode)
	}

	// The correct password is rejected too once the window limit is hit.
	resp := s.postJSON("/api/v1/auth/login", "", dto.LoginRequest{
		Phone:    "0912345678",
		Password: "Password123",
	})
	s.Equal(http.StatusTooManyRequests, resp.StatusCode)

	var errResp dto.ErrorResponse
	s.decode(resp, &errResp)
	s.Equal("TOO_MANY_ATTEMPTS", errResp.Error)
}

func (s *Suite) TestRefresh_RotatesToken() {
	auth := s.registerUser("0912345678", "Password123")

	resp := s.postJSON("/api/v1/auth/refresh", "", dto.RefreshRequest{
		RefreshToken: auth.RefreshToken,
	})
	s.Equal(http.StatusOK, resp.StatusCode)

	var rotated dto.AuthResponse
	s.decode(resp, &rotated)
	s.NotEmpty(rotated.AccessToken)
	s.NotEmpty(rotated.RefreshToken)
	s.NotEqual(auth.RefreshToken, rotated.RefreshToken)
}

func (s *Suite) TestRefresh_ReuseOfRotatedTokenRejected() {
	auth := s.registerUser("0912345678", "Password123")

	resp := s.postJSON("/api/v1/auth/refresh", "", dto.RefreshRequest{
		RefreshToken: auth.RefreshToken,
	})
	resp.Body.Close()
	s.Equal(http.StatusOK, resp.StatusCode)

	// The first exchange revoked the token, so a replay must fail.
	resp = s.postJSON("/api/v1/auth/refresh", "", dto.RefreshRequest{
		RefreshToken: auth.RefreshToken,
	})
	s.Equal(http.StatusUnauthorized, resp.StatusCode)

	var errResp dto.ErrorResponse
	s.decode(resp, &errResp)
	s.Equal("REFRESH_TOKEN_EXPIRED", errResp.Error)
}

func (s *Suite) TestRefresh_GarbageToken() {
	resp := s.postJSON("/api/v1/auth/refresh", "", dto.RefreshRequest{
		RefreshToken: "not-a-jwt",
	})
	defer resp.Body.Close()

	s.Equal(http.StatusUnauthorized, resp.StatusCode)
}

func (s *Suite) TestLogout_RevokesRefreshToken() {
	auth := s.registerUser("0912345678", "Password123")

	resp := s.postJSON("/api/v1/auth/logout", "", dto.LogoutRequest{
		RefreshToken: auth.RefreshToken,
	})
	resp.Body.Close()
	s.Equal(http.StatusOK, resp.StatusCode)

	resp = s.postJSON("/api/v1/auth/refresh", "", dto.RefreshRequest{
		RefreshToken: auth.RefreshToken,
	})
	defer resp.Body.Close()
	s.Equal(http.StatusUnauthorized, resp.StatusCode)
}

func (s *Suite) TestLogout_Idempotent() {
	auth := s.registerUser("0912345678", "Password123")

	for i := 0; i < 2; i++ {
		resp := s.postJSON("/api/v1/auth/logout", "", dto.LogoutRequest{
			RefreshToken: auth.RefreshToken,
		})
		resp.Body.Close()
		s.Equal(http.StatusOK, resp.StatusCode)
	}
}

func (s *Suite) TestGetMe() {
	auth := s.registerUser("0912345678", "Password123")

	resp := s.get("/api/v1/auth/me", auth.AccessToken)
	s.Equal(http.StatusOK, resp.StatusCode)

	var user dto.UserResponse
	s.decode(resp, &user)
	s.Equal(auth.User.ID, user.ID)
	s.Equal("0912345678", user.Phone)
	s.True(user.IsActive)
}

func (s *Suite) TestGetMe_Unauthorized() {
	resp := s.get("/api/v1/auth/me", "")
	defer resp.Body.Close()

	s.Equal(http.StatusUnauthorized, resp.StatusCode)
}
