package ports

// WorkspaceLocator finds the directory holding soro.yaml starting from an arbitrary directory.
type WorkspaceLocator interface {
	FindRoot(startDir string) (string, error)
}
