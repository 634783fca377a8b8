package dto

type PreferencesRequest struct {
	Lang     string `json:"lang"`
	DarkMode bool   `json:"dark_mode"`
}

type PreferencesResponse struct {
	Lang     string `json:"lang"`
	DarkMode bool   `json:"dark_mode"`
}
