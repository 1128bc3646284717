package browser

import (
	"fmt"
	"time"

	"ui_automation/domain/interfaces"

	"github.com/playwright-community/playwright-go"
)

type page struct {
	pw playwright.Page
}

// WrapPage - adapts a playwright page to the core page capability
func WrapPage(p playwright.Page) interfaces.Page {
	return &page{pw: p}
}

// Unwrap - returns the playwright page behind an adapted page
func Unwrap(p interfaces.Page) (playwright.Page, bool) {
	adapted, ok := p.(*page)
	if !ok {
		return nil, false
	}
	return adapted.pw, true
}

func (p *page) Locator(selector string) interfaces.Locator {
	return &locator{pw: p.pw.Locator(selector), desc: fmt.Sprintf("locator(%q)", selector)}
}

func (p *page) GetByRole(role string, opts *interfaces.RoleOptions) interfaces.Locator {
	if opts == nil {
		return &locator{pw: p.pw.GetByRole(playwright.AriaRole(role)), desc: fmt.Sprintf("getByRole(%s)", role)}
	}

	pwOpts := playwright.PageGetByRoleOptions{Name: opts.Name}
	if opts.Exact {
		pwOpts.Exact = playwright.Bool(true)
	}
	return &locator{
		pw:   p.pw.GetByRole(playwright.AriaRole(role), pwOpts),
		desc: fmt.Sprintf("getByRole(%s, name=%q, exact=%t)", role, opts.Name, opts.Exact),
	}
}

func (p *page) GetByText(text string) interfaces.Locator {
	return &locator{pw: p.pw.GetByText(text), desc: fmt.Sprintf("getByText(%q)", text)}
}

func (p *page) GetByAltText(text string) interfaces.Locator {
	return &locator{pw: p.pw.GetByAltText(text), desc: fmt.Sprintf("getByAltText(%q)", text)}
}

func (p *page) GetByTitle(text string) interfaces.Locator {
	return &locator{pw: p.pw.GetByTitle(text), desc: fmt.Sprintf("getByTitle(%q)", text)}
}

func (p *page) GetByPlaceholder(text string) interfaces.Locator {
	return &locator{pw: p.pw.GetByPlaceholder(text), desc: fmt.Sprintf("getByPlaceholder(%q)", text)}
}

func (p *page) GetByLabel(text string) interfaces.Locator {
	return &locator{pw: p.pw.GetByLabel(text), desc: fmt.Sprintf("getByLabel(%q)", text)}
}

func (p *page) GetByTestID(testID string) interfaces.Locator {
	return &locator{pw: p.pw.GetByTestId(testID), desc: fmt.Sprintf("getByTestId(%q)", testID)}
}

func (p *page) Title() (string, error) {
	return p.pw.Title()
}

func (p *page) Screenshot() ([]byte, error) {
	return p.pw.Screenshot(playwright.PageScreenshotOptions{
		FullPage: playwright.Bool(true),
	})
}

type locator struct {
	pw   playwright.Locator
	desc string
}

func (l *locator) First() interfaces.Locator {
	return &locator{pw: l.pw.First(), desc: l.desc + ".first()"}
}

func (l *locator) All() ([]interfaces.Locator, error) {
	all, err := l.pw.All()
	if err != nil {
		return nil, err
	}
	out := make([]interfaces.Locator, 0, len(all))
	for i, pl := range all {
		out = append(out, &locator{pw: pl, desc: fmt.Sprintf("%s.nth(%d)", l.desc, i)})
	}
	return out, nil
}

func (l *locator) Click() error {
	return l.pw.Click()
}

func (l *locator) Fill(value string) error {
	return l.pw.Fill(value)
}

func (l *locator) SelectOption(value string) error {
	_, err := l.pw.SelectOption(playwright.SelectOptionValues{
		ValuesOrLabels: playwright.StringSlice(value),
	})
	return err
}

func (l *locator) Check() error {
	return l.pw.Check()
}

func (l *locator) Uncheck() error {
	return l.pw.Uncheck()
}

func (l *locator) Hover() error {
	return l.pw.Hover()
}

func (l *locator) Type(text string) error {
	return l.pw.PressSequentially(text)
}

func (l *locator) Press(key string) error {
	return l.pw.Press(key)
}

func (l *locator) DoubleClick() error {
	return l.pw.Dblclick()
}

func (l *locator) WaitForVisible(timeout time.Duration) error {
	return l.pw.WaitFor(playwright.LocatorWaitForOptions{
		State:   playwright.WaitForSelectorStateVisible,
		Timeout: playwright.Float(waitMillis(timeout)),
	})
}

// waitMillis converts timeout for the driver, which reads 0 as "wait forever".
// Anything shorter than a millisecond is rounded up to one.
func waitMillis(timeout time.Duration) float64 {
	ms := timeout.Milliseconds()
	if ms < 1 {
		ms = 1
	}
	return float64(ms)
}

func (l *locator) InnerText() (string, error) {
	return l.pw.InnerText()
}

func (l *locator) InputValue() (string, error) {
	return l.pw.InputValue()
}

func (l *locator) IsEnabled() (bool, error) {
	return l.pw.IsEnabled()
}

func (l *locator) IsChecked() (bool, error) {
	return l.pw.IsChecked()
}

func (l *locator) IsVisible() (bool, error) {
	return l.pw.IsVisible()
}

func (l *locator) IsHidden() (bool, error) {
	return l.pw.IsHidden()
}

func (l *locator) Describe() string {
	return l.desc
}

var (
	_ interfaces.Page    = (*page)(nil)
	_ interfaces.Locator = (*locator)(nil)
)
