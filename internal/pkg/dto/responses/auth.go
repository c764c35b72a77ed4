package responses

type AuthUser struct {
	ID                 string `json:"id"`
	Name               string `json:"name"`
	Email              string `json:"email"`
	Role               string `json:"role"`
	AvatarURL          string `json:"avatar_url,omitempty"`
	SubscriptionActive bool   `json:"subscription_active"`
}

type RegisterUser struct {
	Token string   `json:"token"`
	User  AuthUser `json:"user"`
}

type LoginUser struct {
	Token string   `json:"token"`
	User  AuthUser `json:"user"`
}
