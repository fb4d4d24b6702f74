package entities

// GitHubUser is the subset of an account profile used to verify a resolved username.
type GitHubUser struct {
	Username string
	Name     string
	Company  string
	Bio      string
}
