package hooks

import (
	"context"
	"errors"
	"testing"

	"ui_automation/domain/interfaces"
	"ui_automation/domain/interfaces/mocks"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newStartedScenario(t *testing.T, store interfaces.ArtifactStore) (*Scenario, *mocks.MockSession, *mocks.MockPage, *test.Hook) {
	t.Helper()
	logger, hook := test.NewNullLogger()
	session := &mocks.MockSession{}
	page := &mocks.MockPage{}
	session.On("NewPage", mock.Anything).Return(page, nil).Once()

	s := NewScenario(func() (interfaces.Session, error) { return session, nil }, store, logger)
	got, err := s.Before(context.Background())
	require.NoError(t, err)
	require.Same(t, page, got)
	return s, session, page, hook
}

func TestScenario_PassedScenarioClosesWithoutScreenshot(t *testing.T) {
	store := &mocks.MockArtifactStore{}
	s, session, page, _ := newStartedScenario(t, store)
	session.On("ClosePage", page).Return(nil).Once()
	session.On("Close").Return(nil).Once()

	require.NoError(t, s.After("login works", false))
	session.AssertExpectations(t)
	page.AssertNotCalled(t, "Screenshot")
	store.AssertNotCalled(t, "SaveScreenshot", mock.Anything, mock.Anything)
	assert.Nil(t, s.Page())
	assert.Nil(t, s.Session())
}

func TestScenario_FailedScenarioTakesScreenshot(t *testing.T) {
	store := &mocks.MockArtifactStore{}
	s, session, page, hook := newStartedScenario(t, store)
	png := []byte{0x89, 'P', 'N', 'G'}
	page.On("Screenshot").Return(png, nil).Once()
	store.On("SaveScreenshot", "login fails", png).Return("artifacts/login_fails.png", nil).Once()
	session.On("ClosePage", page).Return(nil).Once()
	session.On("Close").Return(nil).Once()

	require.NoError(t, s.After("login fails", true))
	store.AssertExpectations(t)
	assert.Equal(t, "Scenario failed, screenshot taken", hook.LastEntry().Message)
	assert.Equal(t, "artifacts/login_fails.png", hook.LastEntry().Data["screenshot"])
}

func TestScenario_ScreenshotErrorStillCloses(t *testing.T) {
	store := &mocks.MockArtifactStore{}
	s, session, page, hook := newStartedScenario(t, store)
	page.On("Screenshot").Return(nil, errors.New("page crashed")).Once()
	session.On("ClosePage", page).Return(nil).Once()
	session.On("Close").Return(nil).Once()

	require.NoError(t, s.After("crash", true))
	session.AssertExpectations(t)
	assert.Equal(t, "Failed to take screenshot of failed scenario", hook.LastEntry().Message)
}

func TestScenario_CloseErrorsJoined(t *testing.T) {
	s, session, page, _ := newStartedScenario(t, nil)
	pageErr, browserErr := errors.New("page close"), errors.New("browser close")
	session.On("ClosePage", page).Return(pageErr).Once()
	session.On("Close").Return(browserErr).Once()

	err := s.After("x", true)
	assert.ErrorIs(t, err, pageErr)
	assert.ErrorIs(t, err, browserErr)
}

func TestScenario_BeforeTwice(t *testing.T) {
	s, _, _, _ := newStartedScenario(t, nil)
	_, err := s.Before(context.Background())
	assert.Error(t, err)
}

func TestScenario_BeforeErrors(t *testing.T) {
	logger, _ := test.NewNullLogger()
	boom := errors.New("no browser")

	s := NewScenario(func() (interfaces.Session, error) { return nil, boom }, nil, logger)
	_, err := s.Before(context.Background())
	assert.ErrorIs(t, err, boom)
	assert.NoError(t, s.After("x", true))

	session := &mocks.MockSession{}
	session.On("NewPage", mock.Anything).Return(nil, boom).Once()
	session.On("Close").Return(nil).Once()
	s = NewScenario(func() (interfaces.Session, error) { return session, nil }, nil, logger)
	_, err = s.Before(context.Background())
	assert.ErrorIs(t, err, boom)
	session.AssertExpectations(t)
	assert.Nil(t, s.Session())
}
