package responses

import "vitalis-service/internal/app/models"

type DashboardView struct {
	Role       string                 `json:"role"`
	Title      string                 `json:"title"`
	Navigation []models.NavItem       `json:"navigation"`
	View       map[string]interface{} `json:"view"`
	User       AuthUser               `json:"user"`
}

type DashboardSection struct {
	Role      string                 `json:"role"`
	Section   string                 `json:"section"`
	Title     string                 `json:"title,omitempty"`
	Available bool                   `json:"available"`
	Message   string                 `json:"message,omitempty"`
	Data      map[string]interface{} `json:"data,omitempty"`
}

type Navigation struct {
	Role  string           `json:"role"`
	Items []models.NavItem `json:"items"`
}

// SubscriptionGate is the 402 payload rendered in place of any dashboard
// content while the caller's subscription is inactive. Actions always
// holds exactly the two permitted ways out: pay or logout.
type SubscriptionGate struct {
	Message string       `json:"message"`
	Actions []GateAction `json:"actions"`
}

type GateAction struct {
	Label  string `json:"label"`
	Method string `json:"method"`
	Path   string `json:"path"`
}
