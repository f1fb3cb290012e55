// Package remote defines the remote document-store collaborator: a client
// that fetches a single document snapshot by logical path. Failures carry a
// gRPC status code so the retry layer can filter on error identity.
package remote

import "context"

// Snapshot is the result of a single-document fetch. A snapshot for a path
// with no document reports Exists() == false; that is not an error.
type Snapshot struct {
	path   string
	data   []byte
	exists bool
}

// NewSnapshot builds a snapshot. Fakes in tests use it directly.
func NewSnapshot(path string, data []byte, exists bool) Snapshot {
	return Snapshot{path: path, data: data, exists: exists}
}

// Path returns the logical path the snapshot was fetched from.
func (s Snapshot) Path() string { return s.path }

// Data returns the document payload, or nil when the document does not
// exist.
func (s Snapshot) Data() []byte {
	if !s.exists {
		return nil
	}
	return s.data
}

// Exists reports whether a document was present at the path.
func (s Snapshot) Exists() bool { return s.exists }

// Fetcher fetches one document by logical path. Implementations should
// return errors produced by google.golang.org/grpc/status so that callers
// can match on the code.
type Fetcher interface {
	FetchByPath(ctx context.Context, path string) (Snapshot, error)
}

// FetcherFunc adapts a plain function to the [Fetcher] interface.
type FetcherFunc func(ctx context.Context, path string) (Snapshot, error)

// FetchByPath calls f.
func (f FetcherFunc) FetchByPath(ctx context.Context, path string) (Snapshot, error) {
	return f(ctx, path)
}
