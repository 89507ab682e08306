package dto

type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Nickname string `json:"nickname,omitempty"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

type LogoutRequest struct {
	RefreshToken string `json:"refresh_token"`
}

type AuthResponse struct {
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
	User         UserResponse `json:"user"`
}

type UserResponse struct {
	ID              uint    `json:"id"`
	Email           string  `json:"email"`
	Nickname        *string `json:"nickname"`
	ProfileImageURL *string `json:"profile_image_url"`
	Provider        string  `json:"provider"`
	HasSetNickname  bool    `json:"has_set_nickname"`
}

type UpdateProfileRequest struct {
	Nickname        *string `json:"nickname"`
	ProfileImageURL *string `json:"profile_image_url"`
}
