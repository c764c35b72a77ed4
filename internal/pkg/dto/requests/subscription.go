package requests

type ActivateSubscription struct {
	Plan string `json:"plan" validate:"omitempty,oneof=monthly quarterly yearly"`
}
