package browser

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"
	"time"

	"ui_automation/domain/interfaces"

	"github.com/playwright-community/playwright-go"
	"github.com/sirupsen/logrus"
)

// Options configures how the browser is launched
type Options struct {
	Name      string // chromium, firefox or webkit
	Headless  bool
	SlowMo    float64
	Viewport  playwright.Size
	UserAgent string
}

// navigationTimeout bounds a page load when the caller sets no earlier deadline
const navigationTimeout = 30 * time.Second

type session struct {
	pw      *playwright.Playwright
	browser playwright.Browser
	context playwright.BrowserContext
	store   interfaces.ArtifactStore
	logger  *logrus.Logger
	mu      sync.Mutex
}

// NewSession - starts playwright, launches the configured browser and opens a
// context restored from the store's storage state when one exists
func NewSession(opts Options, store interfaces.ArtifactStore, logger *logrus.Logger) (interfaces.Session, error) {
	pw, err := playwright.Run()
	if err != nil {
		return nil, fmt.Errorf("failed to start playwright: %w", err)
	}

	browserType, err := pickBrowserType(pw, opts.Name)
	if err != nil {
		pw.Stop()
		return nil, err
	}

	browser, err := browserType.Launch(playwright.BrowserTypeLaunchOptions{
		Headless: playwright.Bool(opts.Headless),
		SlowMo:   playwright.Float(opts.SlowMo),
	})
	if err != nil {
		pw.Stop()
		return nil, fmt.Errorf("failed to launch browser: %w", err)
	}

	contextOptions := playwright.BrowserNewContextOptions{
		JavaScriptEnabled: playwright.Bool(true),
		IgnoreHttpsErrors: playwright.Bool(true),
		AcceptDownloads:   playwright.Bool(true),
	}
	if opts.Viewport.Width > 0 && opts.Viewport.Height > 0 {
		viewport := opts.Viewport
		contextOptions.Viewport = &viewport
	}
	if opts.UserAgent != "" {
		contextOptions.UserAgent = playwright.String(opts.UserAgent)
	}

	if store != nil && store.HasStorageState() {
		data, err := os.ReadFile(store.StorageStatePath())
		if err == nil {
			var storageState playwright.StorageState
			if err := json.Unmarshal(data, &storageState); err == nil {
				contextOptions.StorageState = storageState.ToOptionalStorageState()
			} else {
				logger.WithError(err).Warn("Ignoring unreadable storage state")
			}
		}
	}

	ctx, err := browser.NewContext(contextOptions)
	if err != nil {
		browser.Close()
		pw.Stop()
		return nil, fmt.Errorf("failed to create context: %w", err)
	}

	logger.WithFields(logrus.Fields{
		"browser":  browserType.Name(),
		"headless": opts.Headless,
	}).Info("Browser setup completed")

	return &session{
		pw:      pw,
		browser: browser,
		context: ctx,
		store:   store,
		logger:  logger,
	}, nil
}

func pickBrowserType(pw *playwright.Playwright, name string) (playwright.BrowserType, error) {
	switch strings.ToLower(name) {
	case "", "chromium", "chrome":
		return pw.Chromium, nil
	case "firefox":
		return pw.Firefox, nil
	case "webkit", "safari":
		return pw.WebKit, nil
	}
	return nil, fmt.Errorf("unsupported browser %q", name)
}

// NewPage - opens a new tab; dialogs are accepted so they never block a step
func (s *session) NewPage(ctx context.Context) (interfaces.Page, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	newPage, err := s.context.NewPage()
	if err != nil {
		return nil, fmt.Errorf("failed to create page: %w", err)
	}

	newPage.OnDialog(func(dialog playwright.Dialog) {
		dialog.Accept()
	})

	return WrapPage(newPage), nil
}

// Navigate - loads url and waits for the load event, giving up at the
// context deadline when that comes before the navigation timeout
func (s *session) Navigate(ctx context.Context, p interfaces.Page, url string) error {
	pwPage, ok := Unwrap(p)
	if !ok {
		return errors.New("page was not opened by this session")
	}

	timeout, err := gotoTimeout(ctx, time.Now())
	if err != nil {
		return err
	}

	_, err = pwPage.Goto(url, playwright.PageGotoOptions{
		WaitUntil: playwright.WaitUntilStateLoad,
		Timeout:   playwright.Float(waitMillis(timeout)),
	})
	if err != nil {
		return fmt.Errorf("failed to navigate to %s: %w", url, err)
	}
	return nil
}

// ClosePage - closes a tab opened by NewPage
func (s *session) ClosePage(p interfaces.Page) error {
	pwPage, ok := Unwrap(p)
	if !ok {
		return errors.New("page was not opened by this session")
	}
	if err := pwPage.Close(); err != nil && !isClosedErr(err) {
		return fmt.Errorf("failed to close page: %w", err)
	}
	return nil
}

// saveState - saves cookies and local storage for the next run
func (s *session) saveState() error {
	if s.context == nil || s.store == nil {
		return nil
	}

	if _, err := s.context.StorageState(s.store.StorageStatePath()); err != nil {
		if isClosedErr(err) {
			return nil
		}
		return fmt.Errorf("failed to save browser state: %w", err)
	}
	return nil
}

// Close - saves state, then closes context, browser and the driver
func (s *session) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var closeErr error

	if err := s.saveState(); err != nil {
		closeErr = err
	}

	if s.context != nil {
		if err := s.context.Close(); err != nil && !isClosedErr(err) {
			closeErr = errors.Join(closeErr, fmt.Errorf("failed to close context: %w", err))
		}
		s.context = nil
	}

	if s.browser != nil {
		if err := s.browser.Close(); err != nil && !isClosedErr(err) {
			closeErr = errors.Join(closeErr, fmt.Errorf("failed to close browser: %w", err))
		}
		s.browser = nil
	}

	if s.pw != nil {
		if err := s.pw.Stop(); err != nil {
			closeErr = errors.Join(closeErr, fmt.Errorf("failed to stop playwright: %w", err))
		}
		s.pw = nil
	}

	if closeErr == nil {
		s.logger.Info("Browser closed")
	}
	return closeErr
}

// gotoTimeout - the navigation bound left for ctx at now
func gotoTimeout(ctx context.Context, now time.Time) (time.Duration, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	timeout := navigationTimeout
	if deadline, ok := ctx.Deadline(); ok {
		left := deadline.Sub(now)
		if left <= 0 {
			return 0, context.DeadlineExceeded
		}
		if left < timeout {
			timeout = left
		}
	}
	return timeout, nil
}

// isClosedErr - true for errors raised because the target is already gone
func isClosedErr(err error) bool {
	return errors.Is(err, playwright.ErrTargetClosed)
}
