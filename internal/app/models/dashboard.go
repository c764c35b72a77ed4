package models

// Dashboard is the stored view document for one role. View and section
// data are opaque display payloads: the service checks presence only
// and never validates their shape.
type Dashboard struct {
	ID        string                 `bson:"_id,omitempty"`
	Role      Role                   `bson:"role"`
	Title     string                 `bson:"title"`
	View      map[string]interface{} `bson:"view"`
	Sections  []DashboardSection     `bson:"sections"`
	TimeModel `bson:",inline"`
}

type DashboardSection struct {
	Key   string                 `bson:"key" json:"key"`
	Title string                 `bson:"title" json:"title"`
	Data  map[string]interface{} `bson:"data" json:"data"`
}

// Section returns the section with the given key and whether it exists.
func (d *Dashboard) Section(key string) (DashboardSection, bool) {
	for _, section := range d.Sections {
		if section.Key == key {
			return section, true
		}
	}
	return DashboardSection{}, false
}
