package repositories

import "context"

// RemoteEntry is one entry of a remote repository directory listing
type RemoteEntry struct {
	Name string `json:"name"`
	Path string `json:"path"`
	Type string `json:"type"`
	SHA  string `json:"sha"`
}

// ContentSource defines the interface for reading and writing GitBook
// repository content
type ContentSource interface {
	// ListDirectory returns the entries of a repository directory
	ListDirectory(ctx context.Context, path string) ([]RemoteEntry, error)

	// FetchFile returns the decoded content of a repository file
	FetchFile(ctx context.Context, path string) (string, error)

	// CommitFile creates or updates a repository file
	CommitFile(ctx context.Context, path, content, message string) error

	// EnsureDirectory creates a directory by committing a placeholder file
	// when the path does not exist yet
	EnsureDirectory(ctx context.Context, path string) error
}

// ArtifactStore defines the interface for persisting comparison artifacts
type ArtifactStore interface {
	// SaveJSON stores a JSON document under the given object name
	SaveJSON(ctx context.Context, name string, payload any) (string, error)

	// ListArtifacts returns stored artifact names under a prefix
	ListArtifacts(ctx context.Context, prefix string) ([]string, error)
}
