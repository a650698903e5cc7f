package model

import "strconv"

// Repo identifies the repository gh resolved from the working directory.
type Repo struct {
	Owner string
	Name  string
	Host  string // "github.com" unless gh is pointed elsewhere
}

// NameWithOwner returns "owner/name".
func (r Repo) NameWithOwner() string {
	return r.Owner + "/" + r.Name
}

// IssueURL returns the web URL of issue n.
func (r Repo) IssueURL(n int) string {
	return r.baseURL() + "/issues/" + strconv.Itoa(n)
}

// PullURL returns the web URL of pull request n.
func (r Repo) PullURL(n int) string {
	return r.baseURL() + "/pull/" + strconv.Itoa(n)
}

// ChecksURL returns the checks tab of pull request n.
func (r Repo) ChecksURL(n int) string {
	return r.PullURL(n) + "/checks"
}

func (r Repo) baseURL() string {
	host := r.Host
	if host == "" {
		host = "github.com"
	}
	return "https://" + host + "/" + r.NameWithOwner()
}
