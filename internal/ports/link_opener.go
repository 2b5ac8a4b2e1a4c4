package ports

// LinkOpener opens an external URL (e.g., in the default browser).
type LinkOpener interface {
	Open(url string) error
}
