package responses

type UserProfile struct {
	ID                 string `json:"id"`
	Name               string `json:"name"`
	Email              string `json:"email"`
	Role               string `json:"role"`
	AvatarURL          string `json:"avatar_url,omitempty"`
	SubscriptionActive bool   `json:"subscription_active"`
}

type UploadAvatar struct {
	AvatarURL string `json:"avatar_url"`
}
