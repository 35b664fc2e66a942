package git

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/go-git/go-git/v5"
	"github.com/google/uuid"

	rerrors "git.home.luguber.info/inful/readmegen/internal/errors"
	"git.home.luguber.info/inful/readmegen/internal/logfields"
)

// Client handles repository retrieval into a workspace directory.
type Client struct {
	workspaceDir string
}

// NewClient creates a new Git client with the specified workspace directory.
func NewClient(workspaceDir string) *Client {
	return &Client{workspaceDir: workspaceDir}
}

// EnsureWorkspace creates the workspace directory if it doesn't exist.
func (c *Client) EnsureWorkspace() error {
	if err := os.MkdirAll(c.workspaceDir, 0o750); err != nil {
		return fmt.Errorf("failed to create workspace directory: %w", err)
	}
	return nil
}

// Clone performs a shallow single-branch clone of url into a fresh
// uniquely-named directory under the workspace and returns its path. On any
// failure the partially-created directory is removed before returning.
func (c *Client) Clone(ctx context.Context, url string) (string, error) {
	if !ValidateRepoURL(url) {
		return "", rerrors.InvalidRepoURL(url)
	}
	if err := c.EnsureWorkspace(); err != nil {
		return "", rerrors.CloneFailed(url, err)
	}

	repoPath := filepath.Join(c.workspaceDir, "repo-"+uuid.NewString())

	slog.Debug("Cloning repository", logfields.RepoURL(url), logfields.Path(repoPath))

	cloneOptions := &git.CloneOptions{
		URL:          url,
		Depth:        1,
		SingleBranch: true,
	}

	repository, err := git.PlainCloneContext(ctx, repoPath, false, cloneOptions)
	if err != nil {
		c.Cleanup(repoPath)
		return "", rerrors.CloneFailed(url, err)
	}

	if ref, herr := repository.Head(); herr == nil {
		slog.Info("Repository cloned",
			logfields.RepoURL(url),
			slog.String("commit", ref.Hash().String()[:8]),
			logfields.Path(repoPath))
	} else {
		slog.Info("Repository cloned", logfields.RepoURL(url), logfields.Path(repoPath))
	}

	return repoPath, nil
}

// Cleanup removes a cloned repository directory. It is idempotent and never
// returns an error to the caller; failures are logged so a janitor sweep can
// pick strays up later.
func (c *Client) Cleanup(repoPath string) {
	if repoPath == "" {
		return
	}
	if err := os.RemoveAll(repoPath); err != nil {
		slog.Warn("Repository cleanup failed", logfields.Path(repoPath), logfields.Error(err))
		return
	}
	slog.Debug("Repository cleaned up", logfields.Path(repoPath))
}
