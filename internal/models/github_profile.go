package models

// GithubProfile holds public profile data fetched from the GitHub API for a
// registered handle. Enrichment data only, never part of registry state.
type GithubProfile struct {
	Login       string `json:"login"`
	Name        string `json:"name,omitempty"`
	AvatarURL   string `json:"avatar_url,omitempty"`
	ProfileURL  string `json:"profile_url,omitempty"`
	PublicRepos int    `json:"public_repos"`
	Followers   int    `json:"followers"`
}
