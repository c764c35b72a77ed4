package responses

import "time"

type SubscriptionStatus struct {
	Active      bool       `json:"active"`
	Plan        string     `json:"plan,omitempty"`
	ActivatedAt *time.Time `json:"activated_at,omitempty"`
}
