package responses

type SearchResult struct {
	Kind  string `json:"kind"`
	Label string `json:"label"`
	Path  string `json:"path"`
}

type Search struct {
	Query   string         `json:"query"`
	Results []SearchResult `json:"results"`
}
