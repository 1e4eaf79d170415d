package storage

import "io"

// BlobStore archives uploaded PDF files so a game's source document can be
// re-examined after extraction.
type BlobStore interface {
	Put(key string, r io.Reader) (string, error) // returns canonical key
	Get(key string) (io.ReadCloser, error)
}
