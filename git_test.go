package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	git "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func commitAs(t *testing.T, wt *git.Worktree, dir, file, content, author string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, file), []byte(content), 0644))
	_, err := wt.Add(file)
	require.NoError(t, err)
	_, err = wt.Commit("update "+file, &git.CommitOptions{
		Author: &object.Signature{Name: author, Email: author + "@example.com", When: time.Now()},
	})
	require.NoError(t, err)
}

func TestCollectGitInfo(t *testing.T) {
	dir := t.TempDir()
	repo, err := git.PlainInit(dir, false)
	require.NoError(t, err)
	wt, err := repo.Worktree()
	require.NoError(t, err)

	commitAs(t, wt, dir, "a.txt", "one\n", "Alice")
	commitAs(t, wt, dir, "b.txt", "two\n", "Bob")
	commitAs(t, wt, dir, "a.txt", "three\n", "Alice")

	info := collectGitInfo(dir)
	assert.True(t, info.IsRepo)
	assert.Equal(t, 3, info.TotalCommits)
	assert.Equal(t, 2, info.ContributorsCount)
	require.NotEmpty(t, info.TopContributors)
	assert.Equal(t, "Alice (2)", info.TopContributors[0])
}

func TestCollectGitInfo_NotARepo(t *testing.T) {
	info := collectGitInfo(t.TempDir())
	assert.False(t, info.IsRepo)
	assert.Zero(t, info.TotalCommits)
}
