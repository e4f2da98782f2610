package auth

// Credential modes accepted by POST /api/auth.
const (
	ModeSignup = "signup"
	ModeLogin  = "login"
)

// CredentialsRequest is the body of POST /api/auth. Mode selects signup or login.
type CredentialsRequest struct {
	Email    string `json:"email" validate:"required" example:"user@example.com"`
	Password string `json:"password" validate:"required,max=72" example:"strongpassword123"`
	Mode     string `json:"mode" validate:"required,oneof=signup login" example:"login"`
}

// CredentialsResponse answers a successful signup or login. Token fields are only set on login.
type CredentialsResponse struct {
	Success     bool   `json:"success" example:"true"`
	Message     string `json:"message" example:"Logged in."`
	AccessToken string `json:"access_token,omitempty" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
	TokenType   string `json:"token_type,omitempty" example:"Bearer"`
	ExpiresIn   int64  `json:"expires_in,omitempty" example:"21600"` // seconds
}

// TokenResponse is what Service.Login hands back to the handler.
type TokenResponse struct {
	AccessToken string
	TokenType   string
	ExpiresIn   int64
}
