package models

// User represents a user row. HashedPassword never leaves the service layer.
type User struct {
	ID             int64  `db:"id" json:"id"`
	Username       string `db:"username" json:"username"`
	Email          string `db:"email" json:"email"`
	HashedPassword string `db:"hashed_password" json:"-"`
}

// SignupRequest defines the JSON body for user registration. The only length
// bounds are the ones the users schema carries; the password is any non-empty
// string.
type SignupRequest struct {
	Username string `json:"username" binding:"required,max=15"`
	Email    string `json:"email" binding:"required,email,max=50"`
	Password string `json:"password" binding:"required"`
}

// LoginRequest defines the login body. The token endpoint accepts both
// form-encoded and JSON credentials, hence the double tags.
type LoginRequest struct {
	Username string `form:"username" json:"username" binding:"required"`
	Password string `form:"password" json:"password" binding:"required"`
}

// TokenResponse is returned by signup and login.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}
