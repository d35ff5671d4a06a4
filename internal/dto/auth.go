package dto

// LoginRequest carries the credentials submitted to /auth/login. Login is the
// username, phone or email the account was registered with.
type LoginRequest struct {
	Login    string `json:"login" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse represents the response for a successful login.
type LoginResponse struct {
	Token        string `json:"token"`
	ExpiresAt    string `json:"expiresAt"`
	RefreshToken string `json:"refreshToken,omitempty"`
	User         UserResponse
}

// RefreshTokenRequest carries the refresh token exchange payload.
type RefreshTokenRequest struct {
	UserID       string `json:"userID" binding:"required"`
	RefreshToken string `json:"refreshToken" binding:"required"`
}

// RefreshTokenResponse represents the response for a successful token refresh.
type RefreshTokenResponse struct {
	Token        string `json:"token"`
	ExpiresAt    string `json:"expiresAt"`
	RefreshToken string `json:"refreshToken"`
}

// GoogleSignInRequest carries a Google ID token obtained by the front end.
type GoogleSignInRequest struct {
	IDToken string `json:"idToken" binding:"required"`
}
