package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"github.com/spf13/cobra"

	"github.com/rustickingdom/talentcalc/infrastructure/i18n"
	"github.com/rustickingdom/talentcalc/infrastructure/middleware"
	"github.com/rustickingdom/talentcalc/infrastructure/render"
	"github.com/rustickingdom/talentcalc/infrastructure/scoring"
	"github.com/rustickingdom/talentcalc/internal/application"
	"github.com/rustickingdom/talentcalc/internal/ports"
)

var version = "0.1.0"

// Exit codes.
const (
	exitGeneral = 1
	exitInput   = 3
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	root := newRootCmd(os.Stdin, os.Stdout, os.Stderr)
	if err := root.ExecuteContext(ctx); err != nil {
		var ee *exitErr
		if errors.As(err, &ee) {
			fmt.Fprintln(os.Stderr, ee.msg)
			stop()
			os.Exit(ee.code)
		}
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(exitGeneral)
	}
}

// rootFlags are shared by every subcommand.
type rootFlags struct {
	configPath string
	locale     string
	theme      string
	mode       string
	logLevel   string
	color      bool
	metrics    bool
}

func newRootCmd(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	f := &rootFlags{}

	root := &cobra.Command{
		Use:           "talentcalc",
		Short:         "Score talent show contestants from judges' ratings and audience votes",
		Version:       version,
		SilenceErrors: true,
		SilenceUsage:  true,
	}
	root.SetIn(stdin)
	root.SetOut(stdout)
	root.SetErr(stderr)

	flags := root.PersistentFlags()
	flags.StringVar(&f.configPath, "config", "", "Config file path (YAML)")
	flags.StringVar(&f.locale, "locale", "", "Display language: en or ar")
	flags.StringVar(&f.theme, "theme", "", "Colour theme: light or dark")
	flags.StringVar(&f.mode, "mode", "", "Scoring rules: weighted or classic")
	flags.StringVar(&f.logLevel, "log-level", "", "Log level: debug, info, warn or error")
	flags.BoolVar(&f.color, "color", false, "Colour the text report")
	flags.BoolVar(&f.metrics, "metrics", false, "Print collected metrics to stderr on exit")

	root.AddCommand(newCalculateCmd(f), newSessionCmd(f), newVersionCmd())
	return root
}

// cliEnv is everything a subcommand needs, built from config and flags.
type cliEnv struct {
	logger   *slog.Logger
	registry *prometheus.Registry
	metrics  *middleware.PrometheusMetrics
	calc     ports.Calculator
	rc       i18n.RenderContext
	weights  render.Weights
}

// setup loads configuration, applies flag overrides and wires the engine.
func (f *rootFlags) setup(cmd *cobra.Command) (*cliEnv, error) {
	lookup, err := application.EnvLookup(".env")
	if err != nil {
		return nil, exitError(exitInput, "failed to read .env: %v", err)
	}
	cfg, err := application.LoadConfig(f.configPath, lookup)
	if err != nil {
		return nil, exitError(exitInput, "failed to load config: %v", err)
	}

	flags := cmd.Flags()
	if flags.Changed("locale") {
		cfg.Locale = f.locale
	}
	if flags.Changed("theme") {
		cfg.Theme = f.theme
	}
	if flags.Changed("mode") {
		cfg.Rules.Mode = scoring.Mode(f.mode)
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = f.logLevel
	}
	if flags.Changed("color") {
		cfg.Color = f.color
	}
	cfg.Normalize()
	if err := cfg.Validate(); err != nil {
		return nil, exitError(exitInput, "invalid options: %v", err)
	}

	logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: cfg.SlogLevel()}))

	engine, err := scoring.NewEngine(cfg.Rules)
	if err != nil {
		return nil, exitError(exitInput, "invalid scoring rules: %v", err)
	}

	rules := engine.Config()

	registry := prometheus.NewRegistry()
	metrics := middleware.NewPrometheusMetrics(registry)

	rc, err := i18n.NewRenderContext(cfg.Locale, cfg.Theme)
	if err != nil {
		return nil, exitError(exitInput, "invalid options: %v", err)
	}
	rc.Color = cfg.Color

	logger.Debug("configured",
		"locale", rc.Translator.Locale(),
		"theme", string(rc.Theme),
		"mode", string(cfg.Rules.Mode),
	)

	return &cliEnv{
		logger:   logger,
		registry: registry,
		metrics:  metrics,
		calc:     middleware.NewInstrumentedCalculator(engine, metrics, string(rules.Mode)),
		rc:       rc,
		weights:  render.Weights{Judges: rules.JudgesShare, Audience: rules.AudienceShare},
	}, nil
}

// dumpMetrics writes every gathered metric family in the Prometheus text
// format.
func (env *cliEnv) dumpMetrics(w io.Writer) error {
	families, err := env.registry.Gather()
	if err != nil {
		return fmt.Errorf("failed to gather metrics: %w", err)
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return fmt.Errorf("failed to write metrics: %w", err)
		}
	}
	return nil
}

type exitErr struct {
	code int
	msg  string
}

func (e *exitErr) Error() string { return e.msg }

func exitError(code int, format string, args ...any) error {
	return &exitErr{code: code, msg: fmt.Sprintf(format, args...)}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "talentcalc %s\n", version)
		},
	}
}
