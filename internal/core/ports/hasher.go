package ports

// ContentHasher computes a digest of a file's content.
//
//go:generate mockgen -source=hasher.go -destination=mocks/mock_hasher.go -package=mocks
type ContentHasher interface {
	// Hash returns the digest of the file at path.
	Hash(path string) (uint64, error)
}
