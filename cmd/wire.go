package cmd

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"strings"

	"github.com/bnema/baccarat-tracker/internal/adapters/chat"
	"github.com/bnema/baccarat-tracker/internal/adapters/notify/writer"
	tomlrepo "github.com/bnema/baccarat-tracker/internal/adapters/repo/toml"
	"github.com/bnema/baccarat-tracker/internal/adapters/store/memory"
	"github.com/bnema/baccarat-tracker/internal/application"
	"github.com/bnema/baccarat-tracker/internal/domain"
	"github.com/bnema/baccarat-tracker/internal/ports"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	envPrefix    = "BT"
	dotEnvFile   = ".env"
	flagLogLevel = "log-level"
	flagWindow   = "window"
	flagMin      = "min"
	flagSession  = "session"
	flagJSON     = "json"
	flagPlain    = "plain"
	flagAddr     = "addr"

	keyLogLevel = "log-level"
	keyHTTPAddr = "http.addr"

	defaultSessionKey = "terminal"
	defaultHTTPAddr   = "127.0.0.1:8080"
)

type app struct {
	cfg      *viper.Viper
	repo     *tomlrepo.Repository
	settings domain.Settings
	logger   *slog.Logger
	clock    ports.Clock
}

// wire loads .env, ~/.config/bt/config.toml, the settings file and the
// per-run overrides. It runs before every command except version.
func (a *app) wire(cmd *cobra.Command) error {
	if err := godotenv.Load(dotEnvFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load %s: %w", dotEnvFile, err)
	}

	cfg := viper.New()
	cfg.SetEnvPrefix(envPrefix)
	cfg.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	cfg.AutomaticEnv()
	cfg.SetDefault(keyHTTPAddr, defaultHTTPAddr)
	if err := cfg.BindPFlag(keyLogLevel, cmd.Flags().Lookup(flagLogLevel)); err != nil {
		return fmt.Errorf("bind log level flag: %w", err)
	}

	repo, err := tomlrepo.NewRepository(cfg)
	if err != nil {
		return fmt.Errorf("wire settings repository: %w", err)
	}

	logger, err := newLogger(cmd.ErrOrStderr(), cfg.GetString(keyLogLevel))
	if err != nil {
		return err
	}

	settings, err := repo.Load(cmd.Context())
	if err != nil {
		return fmt.Errorf("load settings: %w", err)
	}
	settings, err = applyOverrides(cmd, settings)
	if err != nil {
		return err
	}

	a.cfg = cfg
	a.repo = repo
	a.settings = settings
	a.logger = logger
	a.clock = ports.SystemClock{}

	logger.Debug("settings loaded",
		slog.String("path", repo.Path()),
		slog.Int("max_history", settings.MaxHistory),
		slog.Int("window_size", settings.WindowSize),
		slog.Int("min_required", settings.MinRequired),
	)
	return nil
}

func (a *app) newTracker() *application.Tracker {
	store := memory.New(a.settings.MaxHistory, a.clock)
	return application.NewTracker(store, a.settings, a.clock, a.logger)
}

func (a *app) newDispatcher(tracker *application.Tracker, out io.Writer, opts writer.Options) *chat.Dispatcher {
	return chat.NewDispatcher(tracker, writer.New(out, opts), a.logger)
}

func applyOverrides(cmd *cobra.Command, settings domain.Settings) (domain.Settings, error) {
	flags := cmd.Flags()
	if flags.Changed(flagWindow) {
		window, err := flags.GetInt(flagWindow)
		if err != nil {
			return settings, err
		}
		settings.WindowSize = window
	}
	if flags.Changed(flagMin) {
		minRequired, err := flags.GetInt(flagMin)
		if err != nil {
			return settings, err
		}
		settings.MinRequired = minRequired
	}

	if err := settings.Validate(); err != nil {
		return settings, err
	}
	return settings, nil
}

func newLogger(out io.Writer, level string) (*slog.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	return slog.New(slog.NewTextHandler(out, &slog.HandlerOptions{Level: lvl})), nil
}

// outputFormat picks the reply format from --json / --plain, falling back
// to styled output on a terminal and plain text otherwise.
func outputFormat(cmd *cobra.Command, interactive bool) (writer.Format, error) {
	asJSON, err := cmd.Flags().GetBool(flagJSON)
	if err != nil {
		return "", err
	}
	plain, err := cmd.Flags().GetBool(flagPlain)
	if err != nil {
		return "", err
	}

	switch {
	case asJSON && plain:
		return "", errors.New("--json and --plain are mutually exclusive")
	case asJSON:
		return writer.FormatJSON, nil
	case plain || !interactive:
		return writer.FormatPlain, nil
	default:
		return writer.FormatStyled, nil
	}
}

func addOutputFlags(cmd *cobra.Command) {
	cmd.Flags().Bool(flagJSON, false, "Write replies as JSON lines")
	cmd.Flags().Bool(flagPlain, false, "Write replies as plain text")
	cmd.Flags().String(flagSession, defaultSessionKey, "Session key")
}
