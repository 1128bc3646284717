package interfaces

// ArtifactStore persists diagnostics and browser state between runs
type ArtifactStore interface {
	// SaveScreenshot stores a PNG for the named scenario and returns its path
	SaveScreenshot(scenario string, png []byte) (string, error)

	// StorageStatePath is where the browser context keeps cookies and local storage
	StorageStatePath() string

	// HasStorageState reports whether a previous run left a storage state file
	HasStorageState() bool
}
