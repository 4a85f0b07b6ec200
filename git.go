package main

import (
	"fmt"
	"sort"

	git "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
)

// topContributorCount limits the contributor list in the report.
const topContributorCount = 5

// collectGitInfo gathers repository metadata for the directory at root.
// Everything here is display-only: a missing or broken repository just
// yields IsRepo=false and the scan statistics are unaffected.
func collectGitInfo(root string) GitInfo {
	repo, err := git.PlainOpen(root)
	if err != nil {
		return GitInfo{}
	}

	head, err := repo.Head()
	if err != nil {
		// Repository with no commits yet.
		return GitInfo{IsRepo: true}
	}

	iter, err := repo.Log(&git.LogOptions{From: head.Hash()})
	if err != nil {
		return GitInfo{IsRepo: true}
	}
	defer iter.Close()

	commits := 0
	byAuthor := make(map[string]int)
	_ = iter.ForEach(func(c *object.Commit) error {
		commits++
		byAuthor[c.Author.Name]++
		return nil
	})

	info := GitInfo{
		IsRepo:            true,
		TotalCommits:      commits,
		ContributorsCount: len(byAuthor),
	}

	type contributor struct {
		name    string
		commits int
	}
	ranked := make([]contributor, 0, len(byAuthor))
	for name, n := range byAuthor {
		ranked = append(ranked, contributor{name, n})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].commits != ranked[j].commits {
			return ranked[i].commits > ranked[j].commits
		}
		return ranked[i].name < ranked[j].name
	})
	if len(ranked) > topContributorCount {
		ranked = ranked[:topContributorCount]
	}
	for _, c := range ranked {
		info.TopContributors = append(info.TopContributors, fmt.Sprintf("%s (%d)", c.name, c.commits))
	}
	return info
}
