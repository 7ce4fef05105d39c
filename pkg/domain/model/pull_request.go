package model

// UpdateResult describes the pull request whose body was overwritten
type UpdateResult struct {
	Owner  string
	Repo   string
	Number int
	URL    string
}
