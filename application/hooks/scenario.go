// Package hooks owns the per-scenario page lifecycle. Step code only ever
// receives the Page it opens.
package hooks

import (
	"context"
	"errors"
	"fmt"

	"ui_automation/domain/interfaces"

	"github.com/sirupsen/logrus"
)

// SessionFactory launches a browser session for one scenario
type SessionFactory func() (interfaces.Session, error)

// Scenario opens a page before a scenario and tears it down afterwards
type Scenario struct {
	newSession SessionFactory
	store      interfaces.ArtifactStore
	logger     *logrus.Logger

	session interfaces.Session
	page    interfaces.Page
}

// NewScenario - creates a hook over a session factory and artifact store
func NewScenario(newSession SessionFactory, store interfaces.ArtifactStore, logger *logrus.Logger) *Scenario {
	return &Scenario{
		newSession: newSession,
		store:      store,
		logger:     logger,
	}
}

// Before - launches the browser and opens the scenario's page
func (s *Scenario) Before(ctx context.Context) (interfaces.Page, error) {
	if s.session != nil {
		return nil, errors.New("scenario already started")
	}

	session, err := s.newSession()
	if err != nil {
		return nil, fmt.Errorf("failed to start browser session: %w", err)
	}

	page, err := session.NewPage(ctx)
	if err != nil {
		session.Close()
		return nil, err
	}

	s.session = session
	s.page = page
	return page, nil
}

// Page - returns the page opened by Before, nil outside a scenario
func (s *Scenario) Page() interfaces.Page {
	return s.page
}

// Session - returns the session started by Before, nil outside a scenario
func (s *Scenario) Session() interfaces.Session {
	return s.session
}

// After - captures a full-page screenshot when the scenario failed, then
// closes page and browser. Screenshot errors are logged, close errors returned.
func (s *Scenario) After(name string, failed bool) error {
	if s.session == nil {
		return nil
	}
	defer func() {
		s.session = nil
		s.page = nil
	}()

	if failed && s.store != nil {
		s.captureFailure(name)
	}

	return errors.Join(s.session.ClosePage(s.page), s.session.Close())
}

func (s *Scenario) captureFailure(name string) {
	png, err := s.page.Screenshot()
	if err != nil {
		s.logger.WithError(err).WithField("scenario", name).Error("Failed to take screenshot of failed scenario")
		return
	}
	path, err := s.store.SaveScreenshot(name, png)
	if err != nil {
		s.logger.WithError(err).WithField("scenario", name).Error("Failed to store screenshot of failed scenario")
		return
	}
	s.logger.WithFields(logrus.Fields{
		"scenario":   name,
		"screenshot": path,
	}).Error("Scenario failed, screenshot taken")
}
