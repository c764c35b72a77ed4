package models

import "time"

// Session is the serialized snapshot stored in the session store. It is
// the single durable record of an authenticated user; login writes it
// and logout deletes it, nothing in between mutates it except the
// payment operation refreshing SubscriptionActive. The flag is a cached
// copy of the user document's subscription state taken at login time,
// so the gate sees the value as of the last login or payment.
type Session struct {
	SessionID          string    `json:"session_id"`
	UserID             string    `json:"user_id"`
	Email              string    `json:"email"`
	Name               string    `json:"name"`
	Role               Role      `json:"role"`
	SubscriptionActive bool      `json:"subscription_active"`
	ExpiresAt          time.Time `json:"expires_at"`
}
