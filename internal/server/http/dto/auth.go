package dto

// SignupRequest describes the account creation payload.
type SignupRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

// LoginRequest describes the credential payload.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse carries the issued token pair plus profile basics.
type LoginResponse struct {
	Access    string `json:"access"`
	Refresh   string `json:"refresh"`
	Email     string `json:"email"`
	Name      string `json:"name"`
	Superuser bool   `json:"superuser"`
}

// RefreshRequest exchanges a refresh token for a new pair.
type RefreshRequest struct {
	Refresh string `json:"refresh"`
}

// TokenPairResponse carries a freshly issued token pair.
type TokenPairResponse struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}
