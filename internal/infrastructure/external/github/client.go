package github

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	backoff "github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"

	apperrors "github.com/Andre-Diamond/scripts-for-scraps/errors"
	"github.com/Andre-Diamond/scripts-for-scraps/internal/domain/repositories"
	"github.com/Andre-Diamond/scripts-for-scraps/internal/infrastructure/cache"
	"github.com/Andre-Diamond/scripts-for-scraps/pkg/config"
)

// apiBase is a package variable so tests can point the client at a local server.
var apiBase = "https://api.github.com"

const readTTL = time.Minute

// Client talks to the GitHub contents API. Reads go to the source repo,
// writes to the target repo. Source reads are cached briefly in memory.
type Client struct {
	httpClient *http.Client
	cfg        *config.GitHubConfig
	store      *cache.MemoryStore
	logger     *zap.Logger
}

// NewClient creates a new GitHub contents client. store may be nil to
// disable read caching.
func NewClient(cfg *config.GitHubConfig, store *cache.MemoryStore, logger *zap.Logger) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		cfg:        cfg,
		store:      store,
		logger:     logger,
	}
}

var _ repositories.ContentSource = (*Client)(nil)

type contentEntry struct {
	Name     string `json:"name"`
	Path     string `json:"path"`
	Type     string `json:"type"`
	SHA      string `json:"sha"`
	Content  string `json:"content"`
	Encoding string `json:"encoding"`
}

// ListDirectory returns the entries of a directory in the source repository
func (c *Client) ListDirectory(ctx context.Context, path string) ([]repositories.RemoteEntry, error) {
	body, status, err := c.cachedGet(ctx, c.contentsURL(c.cfg.SourceOwner, c.cfg.SourceRepo, path, c.cfg.SourceBranch))
	if err != nil {
		return nil, apperrors.ErrFetchFailed(path, err)
	}
	if status == http.StatusNotFound {
		return nil, apperrors.ErrNotFound(path)
	}
	if status != http.StatusOK {
		return nil, apperrors.ErrFetchFailed(path, fmt.Errorf("unexpected status %d", status))
	}

	var raw []contentEntry
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, apperrors.ErrFetchFailed(path, err)
	}
	entries := make([]repositories.RemoteEntry, 0, len(raw))
	for _, e := range raw {
		entries = append(entries, repositories.RemoteEntry{
			Name: e.Name,
			Path: e.Path,
			Type: e.Type,
			SHA:  e.SHA,
		})
	}
	return entries, nil
}

// FetchFile returns the decoded content of a file in the source repository
func (c *Client) FetchFile(ctx context.Context, path string) (string, error) {
	body, status, err := c.cachedGet(ctx, c.contentsURL(c.cfg.SourceOwner, c.cfg.SourceRepo, path, c.cfg.SourceBranch))
	if err != nil {
		return "", apperrors.ErrFetchFailed(path, err)
	}
	if status == http.StatusNotFound {
		return "", apperrors.ErrNotFound(path)
	}
	if status != http.StatusOK {
		return "", apperrors.ErrFetchFailed(path, fmt.Errorf("unexpected status %d", status))
	}

	var entry contentEntry
	if err := json.Unmarshal(body, &entry); err != nil {
		return "", apperrors.ErrFetchFailed(path, err)
	}
	if entry.Encoding != "base64" {
		return entry.Content, nil
	}
	// GitHub inserts newlines into base64 payloads
	decoded, err := base64.StdEncoding.DecodeString(strings.ReplaceAll(entry.Content, "\n", ""))
	if err != nil {
		return "", apperrors.ErrFetchFailed(path, err)
	}
	return string(decoded), nil
}

// CommitFile creates or updates a file in the target repository. When the
// file already exists its SHA is included so the commit becomes an update.
func (c *Client) CommitFile(ctx context.Context, path, content, message string) error {
	if c.cfg.Token == "" {
		return apperrors.ErrMissingCredentials()
	}

	targetURL := c.contentsURL(c.cfg.TargetOwner, c.cfg.TargetRepo, path, c.cfg.TargetBranch)

	var sha string
	if body, status, err := c.get(ctx, targetURL); err == nil && status == http.StatusOK {
		var entry contentEntry
		if json.Unmarshal(body, &entry) == nil {
			sha = entry.SHA
		}
	}

	payload := map[string]string{
		"message": message,
		"content": base64.StdEncoding.EncodeToString([]byte(content)),
		"branch":  c.cfg.TargetBranch,
	}
	if sha != "" {
		payload["sha"] = sha
	}
	raw, err := json.Marshal(payload)
	if err != nil {
		return apperrors.ErrCommitFailed(path, err)
	}

	commit := func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodPut, targetURL, bytes.NewReader(raw))
		if err != nil {
			return backoff.Permanent(err)
		}
		c.setHeaders(req)
		resp, err := c.httpClient.Do(req)
		if err != nil {
			return err
		}
		defer resp.Body.Close()
		if resp.StatusCode == http.StatusOK || resp.StatusCode == http.StatusCreated {
			return nil
		}
		body, _ := io.ReadAll(resp.Body)
		err = fmt.Errorf("status %d: %s", resp.StatusCode, string(body))
		if resp.StatusCode >= 400 && resp.StatusCode < 500 && resp.StatusCode != http.StatusTooManyRequests {
			return backoff.Permanent(err)
		}
		return err
	}

	bo := backoff.NewExponentialBackOff()
	bo.MaxElapsedTime = 2 * time.Minute
	if err := backoff.Retry(commit, backoff.WithContext(bo, ctx)); err != nil {
		return apperrors.ErrCommitFailed(path, err)
	}
	c.logger.Info("committed file", zap.String("path", path))
	return nil
}

// EnsureDirectory creates a directory in the target repository by committing
// a placeholder README when listing the path fails.
func (c *Client) EnsureDirectory(ctx context.Context, path string) error {
	_, status, err := c.get(ctx, c.contentsURL(c.cfg.TargetOwner, c.cfg.TargetRepo, path, c.cfg.TargetBranch))
	if err == nil && status == http.StatusOK {
		return nil
	}
	placeholder := "This directory was automatically created by the sync service.\n"
	return c.CommitFile(ctx, path+"/README.md", placeholder, fmt.Sprintf("Create directory %s", path))
}

func (c *Client) contentsURL(owner, repo, path, branch string) string {
	escaped := make([]string, 0)
	for _, seg := range strings.Split(path, "/") {
		escaped = append(escaped, url.PathEscape(seg))
	}
	return fmt.Sprintf("%s/repos/%s/%s/contents/%s?ref=%s",
		apiBase, owner, repo, strings.Join(escaped, "/"), branch)
}

// cachedGet serves successful source reads from the memory store when one is
// configured. Only 200 responses are cached.
func (c *Client) cachedGet(ctx context.Context, rawURL string) ([]byte, int, error) {
	if c.store != nil {
		if body, ok := c.store.Get(rawURL); ok {
			return body, http.StatusOK, nil
		}
	}
	body, status, err := c.get(ctx, rawURL)
	if err == nil && status == http.StatusOK && c.store != nil {
		c.store.Set(rawURL, body, readTTL)
	}
	return body, status, err
}

// get performs an authenticated GET with retries on network errors and
// server-side failures. The status code is returned for 404 handling.
func (c *Client) get(ctx context.Context, rawURL string) ([]byte, int, error) {
	var body []byte
	var status int

	fetch := func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
		if err != nil {
			return backoff.Permanent(err)
		}
		c.setHeaders(req)
		resp, err := c.httpClient.Do(req)
		if err != nil {
			return err
		}
		defer resp.Body.Close()
		status = resp.StatusCode
		body, err = io.ReadAll(resp.Body)
		if err != nil {
			return err
		}
		if status >= 500 || status == http.StatusTooManyRequests {
			return fmt.Errorf("status %d", status)
		}
		return nil
	}

	bo := backoff.NewExponentialBackOff()
	bo.MaxElapsedTime = time.Minute
	if err := backoff.Retry(fetch, backoff.WithContext(bo, ctx)); err != nil {
		return nil, status, err
	}
	return body, status, nil
}

func (c *Client) setHeaders(req *http.Request) {
	req.Header.Set("Accept", "application/vnd.github.v3+json")
	if c.cfg.Token != "" {
		req.Header.Set("Authorization", "token "+c.cfg.Token)
	}
}
