package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/IRONalways17/Quiz-Master-APP/pkg/qlog"
	"github.com/IRONalways17/Quiz-Master-APP/pkg/qmsdk"
	"github.com/IRONalways17/Quiz-Master-APP/pkg/qnotify"
	"github.com/IRONalways17/Quiz-Master-APP/pkg/qroute"
)

type contextKey string

const configContextKey contextKey = "quizmasterconfig"

var (
	cfgFile string
	verbose bool
	log     = qlog.NewQuiet()
	rootCmd = &cobra.Command{
		Use:   "quizctl",
		Short: "CLI for the Quiz Master platform (auth, quizzes, scores, admin)",
		Long: `quizctl is a command-line client for a Quiz Master server. It keeps an
access/refresh token pair in the OS keyring, recovers transparently from
expired tokens, and gates every view by role the same way the web client
does. Use the auth subcommands to sign in and manage the session; use
subjects/quizzes/scores to browse and take quizzes; admins get the admin
subcommands.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if verbose {
				log = qlog.NewVerbose()
			}

			cfg, err := qmsdk.LoadConfig(cfgFile)
			if err != nil {
				return err
			}
			if used := cfg.ConfigFileUsed(); used != "" {
				log.Debug("loaded config", "file", used)
			}
			log.Debug("resolved API base", "url", cfg.BaseURL)

			if err := cfg.Viper().BindPFlags(cmd.Flags()); err != nil {
				return err
			}

			ctx := context.WithValue(cmd.Context(), configContextKey, cfg)
			cmd.SetContext(ctx)

			return nil
		},
	}
)

// GetConfig retrieves the Config from the command context
func GetConfig(cmd *cobra.Command) (*qmsdk.Config, error) {
	ctx := cmd.Context()
	cfg, ok := ctx.Value(configContextKey).(*qmsdk.Config)
	if !ok {
		return nil, errors.New("no config in context")
	}
	return cfg, nil
}

// newSDK wires an SDK for a command and mirrors its toasts onto stderr so
// the user sees the same notifications the web client would show.
func newSDK(cmd *cobra.Command) (*qmsdk.SDK, error) {
	cfg, err := GetConfig(cmd)
	if err != nil {
		return nil, err
	}
	sdk, err := qmsdk.New(cfg)
	if err != nil {
		return nil, err
	}
	sdk.Toasts.Subscribe(func(t qnotify.Toast) {
		fmt.Fprintf(os.Stderr, "[%s] %s: %s\n", t.Severity, t.Title, t.Message)
	})
	sdk.Busy.OnChange(func(busy bool) {
		log.Debug("request state", "busy", busy)
	})
	if sdk.Session.IsAuthenticated() {
		log.Debug("session restored", "user", sdk.Session.CurrentUser().Username)
	}
	return sdk, nil
}

// navigate moves to path through the route guard. When the guard redirects,
// the user is told where they ended up; the return value says whether the
// requested view was actually reached.
func navigate(sdk *qmsdk.SDK, path string) bool {
	d := sdk.Router.Navigate(path)
	if d.Redirected {
		fmt.Fprintf(os.Stderr, "redirected to %s\n", d.Route.Path)
		return false
	}
	return true
}

// landing returns the dashboard path for the current role.
func landing(sdk *qmsdk.SDK) string {
	return qroute.LandingPath(sdk.Session.Role())
}

func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (YAML). Searches: quizmaster.yaml, .quizmaster/config.yaml")
	rootCmd.PersistentFlags().String("base-url", "", "Base URL for the Quiz Master API (overrides config)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
}
