package response_models

// NavResponse lists the pages the sidebar should show for the current
// visitor. Presentation only; access control lives in the auth middleware.
type NavResponse struct {
	LoggedIn bool     `json:"logged_in"`
	Items    []string `json:"items"`
}
