// Package cli is the command-line surface: registry linting and the step REPL.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"ui_automation/application/hooks"
	"ui_automation/application/locator"
	"ui_automation/application/steps"
	"ui_automation/domain/entities"
	"ui_automation/domain/interfaces"
	"ui_automation/infrastructure/browser"
	"ui_automation/infrastructure/config"
	"ui_automation/infrastructure/storage"
	"ui_automation/presentation/terminal"

	"github.com/spf13/cobra"
)

// ErrInvalidRegistry is returned by lint when any entry is invalid
var ErrInvalidRegistry = errors.New("element registry has invalid entries")

// NewRootCommand - builds the ui_automation command tree
func NewRootCommand() *cobra.Command {
	var configFile string

	root := &cobra.Command{
		Use:           "ui_automation",
		Short:         "Resolve configured UI elements and drive them in a browser",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&configFile, "config", "", "config file (default ./ui_automation.yaml)")
	root.PersistentFlags().String("elements", "", "elements file (overrides elements.file)")

	loadSettings := func(cmd *cobra.Command) (*config.Settings, error) {
		v, err := config.NewViper(configFile)
		if err != nil {
			return nil, err
		}
		if err := v.BindPFlag("elements.file", cmd.Flags().Lookup("elements")); err != nil {
			return nil, err
		}
		return config.FromViper(v)
	}

	root.AddCommand(newLintCommand(loadSettings), newReplCommand(loadSettings))
	return root
}

type settingsLoader func(cmd *cobra.Command) (*config.Settings, error)

func newLintCommand(load settingsLoader) *cobra.Command {
	return &cobra.Command{
		Use:   "lint",
		Short: "Validate every descriptor in the elements file",
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := load(cmd)
			if err != nil {
				return err
			}
			registry, err := config.LoadRegistry(settings.ElementsFile)
			if err != nil {
				return err
			}
			return Lint(registry, cmd.OutOrStdout())
		},
	}
}

// Lint - prints every invalid registry entry and fails when there is one.
// Valid entries that text and value assertions cannot resolve are printed as
// warnings and do not fail the run.
func Lint(registry *config.Registry, out io.Writer) error {
	full := locator.NewResolver(entities.CapabilityFull)
	text := locator.NewResolver(entities.CapabilityTextQuery)

	problems := registry.Validate(full.Check)
	for _, p := range problems {
		fmt.Fprintln(out, p.String())
	}
	if len(problems) > 0 {
		return fmt.Errorf("%w: %d of %d", ErrInvalidRegistry, len(problems), registry.Len())
	}

	for _, w := range textQueryWarnings(registry, text) {
		fmt.Fprintf(out, "warning: %s\n", w)
	}
	fmt.Fprintf(out, "%d elements ok\n", registry.Len())
	return nil
}

// textQueryWarnings lists role-based entries that resolver rejects
func textQueryWarnings(registry *config.Registry, resolver *locator.Resolver) []string {
	var warnings []string
	for _, e := range registry.Entries() {
		d := entities.ParseDescriptor(e.Raw)
		if !d.Strategy.IsRoleBased() || resolver.Check(d) == nil {
			continue
		}
		warnings = append(warnings, fmt.Sprintf("%s = %q: not usable by assert-text or assert-value (%s lookups)",
			e.Path, e.Raw, resolver.Capability().Name()))
	}
	return warnings
}

func newReplCommand(load settingsLoader) *cobra.Command {
	var url string

	cmd := &cobra.Command{
		Use:   "repl",
		Short: "Open a browser and run steps typed on stdin",
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := load(cmd)
			if err != nil {
				return err
			}
			logger := settings.NewLogger()

			registry, err := config.LoadRegistry(settings.ElementsFile)
			if err != nil {
				return err
			}
			store, err := storage.NewArtifactStore(settings.ArtifactsDir)
			if err != nil {
				return err
			}

			hook := hooks.NewScenario(func() (interfaces.Session, error) {
				return browser.NewSession(browser.Options{
					Name:     settings.Browser.Name,
					Headless: settings.Browser.Headless,
					SlowMo:   float64(settings.Browser.SlowMo.Milliseconds()),
				}, store, logger)
			}, store, logger)

			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			if _, err := hook.Before(ctx); err != nil {
				return err
			}

			s := steps.New(registry, steps.Options{
				WaitTimeout:      settings.WaitTimeout,
				StrictWait:       settings.StrictWait,
				ActionPolicy:     settings.ActionPolicy,
				InspectionPolicy: settings.InspectionPolicy,
			}, logger)
			term := terminal.NewTerminalInterface(s, hook.Page(), hook.Session(), settings.Browser.BaseURL, os.Stdin, cmd.OutOrStdout(), logger)

			return runSession(ctx, hook, term, url)
		},
	}
	cmd.Flags().StringVar(&url, "url", "", "page to open before reading steps")
	return cmd
}

// runSession opens url when set, runs the REPL and always tears the scenario
// down, marking it failed on any error or failed assertion
func runSession(ctx context.Context, hook *hooks.Scenario, term *terminal.TerminalInterface, url string) error {
	if url != "" {
		if _, err := term.Execute(ctx, "goto "+url); err != nil {
			return errors.Join(err, hook.After("repl", true))
		}
	}

	runErr := term.Run(ctx)
	return errors.Join(runErr, hook.After("repl", runErr != nil || term.Failed()))
}
