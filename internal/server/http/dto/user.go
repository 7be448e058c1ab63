package dto

// UserResponse is the public projection of an account; the credential
// hash never leaves the service.
type UserResponse struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

// UserUpdateRequest carries a partial profile patch. Nil fields stay
// untouched.
type UserUpdateRequest struct {
	Email    *string `json:"email"`
	Name     *string `json:"name"`
	Password *string `json:"password"`
}
