package models

// NavItem is a single static navigation entry belonging to a Role's
// menu. Label, icon and path are fixed per role; Badge is the only
// runtime field and carries the caller's unread notification count on
// the entry that links to notifications.
type NavItem struct {
	Label string `json:"label"`
	Icon  string `json:"icon"`
	Path  string `json:"path"`
	Badge int    `json:"badge,omitempty"`
}
