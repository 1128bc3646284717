package interfaces

import "context"

// Session owns one browser and the pages opened in it
type Session interface {
	// NewPage opens a fresh tab
	NewPage(ctx context.Context) (Page, error)

	// Navigate loads url in the given page
	Navigate(ctx context.Context, page Page, url string) error

	// ClosePage closes a tab opened by NewPage
	ClosePage(page Page) error

	// Close saves state and shuts the browser down
	Close() error
}
