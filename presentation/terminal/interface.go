package terminal

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"ui_automation/application/steps"
	"ui_automation/domain/entities"
	"ui_automation/domain/interfaces"

	"github.com/sirupsen/logrus"
)

// Navigator loads a URL into a page
type Navigator interface {
	Navigate(ctx context.Context, page interfaces.Page, url string) error
}

// ErrQuit is returned by Execute for the quit command
var ErrQuit = errors.New("quit")

type TerminalInterface struct {
	steps     *steps.Steps
	page      interfaces.Page
	navigator Navigator
	baseURL   string
	logger    *logrus.Logger
	reader    *bufio.Reader
	out       io.Writer
	failed    bool
}

// NewTerminalInterface - creates a step REPL bound to one page
func NewTerminalInterface(s *steps.Steps, page interfaces.Page, navigator Navigator, baseURL string, in io.Reader, out io.Writer, logger *logrus.Logger) *TerminalInterface {
	return &TerminalInterface{
		steps:     s,
		page:      page,
		navigator: navigator,
		baseURL:   strings.TrimRight(baseURL, "/"),
		logger:    logger,
		reader:    bufio.NewReader(in),
		out:       out,
	}
}

// Failed - reports whether any assertion failed during the session
func (t *TerminalInterface) Failed() bool {
	return t.failed
}

func (t *TerminalInterface) Run(ctx context.Context) error {
	fmt.Fprintln(t.out, "UI step runner")
	fmt.Fprintln(t.out, "==============")
	fmt.Fprintln(t.out, "Enter a step, 'help' for the list of steps, or 'quit' to exit")
	fmt.Fprintln(t.out)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		fmt.Fprint(t.out, "> ")
		input, err := t.reader.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return err
		}
		eof := errors.Is(err, io.EOF)

		input = strings.TrimSpace(input)
		if input != "" {
			result, execErr := t.Execute(ctx, input)
			if errors.Is(execErr, ErrQuit) {
				fmt.Fprintln(t.out, "Bye!")
				return nil
			}
			if execErr != nil {
				fmt.Fprintf(t.out, "FAIL: %v\n", execErr)
			} else {
				fmt.Fprintln(t.out, result)
			}
		}

		if eof {
			return nil
		}
	}
}

// Execute - runs a single step line and returns what to print
func (t *TerminalInterface) Execute(ctx context.Context, line string) (string, error) {
	cmd, rest := nextField(line)

	switch cmd {
	case "quit", "exit", "q":
		return "", ErrQuit

	case "help":
		return helpText, nil

	case "goto":
		url, _ := nextField(rest)
		if url == "" {
			return "", errors.New("usage: goto <url>")
		}
		if strings.HasPrefix(url, "/") && t.baseURL != "" {
			url = t.baseURL + url
		}
		if err := t.navigator.Navigate(ctx, t.page, url); err != nil {
			return "", err
		}
		return "ok", nil

	case "title":
		return t.steps.Title(t.page)

	case "assert-text", "assert-value":
		element, key, expected, err := targetArgs(rest, true)
		if err != nil {
			return "", fmt.Errorf("usage: %s <element> <key> <expected>", cmd)
		}
		if cmd == "assert-text" {
			err = t.steps.AssertContainsText(t.page, element, key, expected)
		} else {
			err = t.steps.AssertHasValue(t.page, element, key, expected)
		}
		return t.assertion(err)

	case "assert-visible":
		element, key, _, err := targetArgs(rest, false)
		if err != nil {
			return "", errors.New("usage: assert-visible <element> <key>")
		}
		return t.assertion(t.steps.AssertElementVisible(t.page, element, key))

	case "is-enabled", "is-disabled", "is-checked", "is-visible", "is-hidden":
		element, key, _, err := targetArgs(rest, false)
		if err != nil {
			return "", fmt.Errorf("usage: %s <element> <key>", cmd)
		}
		state, err := t.inspect(cmd, element, key)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("%t", state), nil
	}

	action := entities.ActionKind(cmd)
	if !action.IsKnown() {
		return "", &entities.UnknownActionError{Action: action}
	}

	element, key, value, err := targetArgs(rest, action.RequiresValue())
	if err != nil {
		if action.RequiresValue() {
			return "", fmt.Errorf("usage: %s <element> <key> <value>", cmd)
		}
		return "", fmt.Errorf("usage: %s <element> <key>", cmd)
	}

	req := entities.ActionRequest{Action: action, Element: element, Key: key}
	if action.RequiresValue() {
		req.Value = entities.WithValue(value)
	}
	if err := t.steps.Perform(t.page, req); err != nil {
		return "", err
	}
	return "ok", nil
}

func (t *TerminalInterface) inspect(cmd, element, key string) (bool, error) {
	switch cmd {
	case "is-enabled":
		return t.steps.IsEnabled(t.page, element, key)
	case "is-disabled":
		return t.steps.IsDisabled(t.page, element, key)
	case "is-checked":
		return t.steps.IsChecked(t.page, element, key)
	case "is-visible":
		return t.steps.IsVisible(t.page, element, key)
	}
	return t.steps.IsHidden(t.page, element, key)
}

func (t *TerminalInterface) assertion(err error) (string, error) {
	if err != nil {
		t.failed = true
		return "", err
	}
	return "passed", nil
}

// targetArgs splits "<element> <key> [value...]"; the value keeps inner spaces
func targetArgs(s string, needValue bool) (element, key, value string, err error) {
	element, s = nextField(s)
	key, s = nextField(s)
	value = strings.TrimSpace(s)
	if element == "" || key == "" || (needValue && value == "") {
		return "", "", "", errors.New("missing arguments")
	}
	return element, key, value, nil
}

// nextField returns the first whitespace-separated field of s and the remainder
func nextField(s string) (string, string) {
	s = strings.TrimLeft(s, " \t")
	if i := strings.IndexAny(s, " \t"); i >= 0 {
		return s[:i], s[i+1:]
	}
	return s, ""
}

const helpText = `Steps:
  goto <url>                              open a URL (paths are joined to browser.base_url)
  title                                   print the page title
  click|check|uncheck|hover|dblclick <element> <key>
  fill|select|type|press <element> <key> <value>
  assert-text <element> <key> <expected>  inner text contains expected
  assert-value <element> <key> <expected> input value equals expected
  assert-visible <element> <key>
  is-enabled|is-disabled|is-checked|is-visible|is-hidden <element> <key>
  quit`
