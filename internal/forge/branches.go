package forge

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
)

const linkedBranchesQuery = `
query($owner: String!, $name: String!, $first: Int!, $branches: Int!) {
  repository(owner: $owner, name: $name) {
    issues(states: OPEN, first: $first) {
      nodes {
        number
        linkedBranches(first: $branches) {
          nodes { ref { name } }
        }
      }
    }
  }
}`

type linkedBranchesResponse struct {
	Data struct {
		Repository *struct {
			Issues struct {
				Nodes []struct {
					Number         int `json:"number"`
					LinkedBranches struct {
						Nodes []struct {
							Ref *struct {
								Name string `json:"name"`
							} `json:"ref"`
						} `json:"nodes"`
					} `json:"linkedBranches"`
				} `json:"nodes"`
			} `json:"issues"`
		} `json:"repository"`
	} `json:"data"`
}

// FetchLinkedBranches returns issue number → branch name for open issues
// that have a linked branch. Only the first linked branch of each issue is
// kept. gh fills {owner} and {repo} from the current directory.
func (c *Client) FetchLinkedBranches(ctx context.Context, first, perIssue int) (map[int]string, error) {
	out, err := c.Runner.Run(ctx,
		"api", "graphql",
		"-F", "owner={owner}",
		"-F", "name={repo}",
		"-F", "first="+strconv.Itoa(first),
		"-F", "branches="+strconv.Itoa(perIssue),
		"-f", "query="+linkedBranchesQuery,
	)
	if err != nil {
		return nil, err
	}
	return parseLinkedBranches(out)
}

func parseLinkedBranches(out []byte) (map[int]string, error) {
	var resp linkedBranchesResponse
	if err := json.Unmarshal(out, &resp); err != nil {
		return nil, fmt.Errorf("parse linked branches: %w", err)
	}
	if resp.Data.Repository == nil {
		return nil, fmt.Errorf("linked branches: repository not found")
	}

	branches := make(map[int]string)
	for _, node := range resp.Data.Repository.Issues.Nodes {
		for _, b := range node.LinkedBranches.Nodes {
			if b.Ref != nil && b.Ref.Name != "" {
				branches[node.Number] = b.Ref.Name
				break
			}
		}
	}
	return branches, nil
}
