package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"greetcard/internal/card"
	"greetcard/internal/config"
	"greetcard/internal/logging"
	"greetcard/internal/telemetry"
	"greetcard/internal/ui"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// flagValues holds command-line overrides. Only flags the user actually set
// are applied over the loaded config.
type flagValues struct {
	cardFile    string
	name        string
	message     string
	image       string
	assetsDir   string
	overflow    string
	logFile     string
	logLevel    string
	noAltScreen bool
	noMouse     bool
}

var flags flagValues

var rootCmd = &cobra.Command{
	Use:   "greetcard",
	Short: "An animated birthday card for the terminal",
	Long: `greetcard plays a five-screen greeting card: an intro, a countdown,
a cake, a personal message and a gift that opens into a photo.

Options come from --card (a YAML file), GREETCARD_* environment variables
(a .env file in the working directory is loaded first) and the flags below,
in increasing order of precedence.`,
	Example: `  greetcard --name Anjali --message "Happy Birthday" --image ./photo.jpg
  greetcard --card card.yaml --log-file /tmp/greetcard.log`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(flags.cardFile)
		if err != nil {
			return err
		}
		applyFlags(cmd, cfg)
		if err := cfg.Validate(); err != nil {
			return err
		}
		return run(cmd.Context(), cfg)
	},
}

func init() {
	f := rootCmd.Flags()
	f.StringVar(&flags.cardFile, "card", "", "YAML card file")
	f.StringVar(&flags.name, "name", "", "recipient name")
	f.StringVar(&flags.message, "message", "", "message body (line breaks are kept)")
	f.StringVar(&flags.image, "image", "", "image shown when the gift opens")
	f.StringVar(&flags.assetsDir, "assets-dir", "", "directory rooted image paths are resolved against")
	f.StringVar(&flags.overflow, "overflow", "", "screen shown past the last step: hold or intro")
	f.StringVar(&flags.logFile, "log-file", "", "write JSON logs to this file")
	f.StringVar(&flags.logLevel, "log-level", "", "log level: debug, info, warn, error")
	f.BoolVar(&flags.noAltScreen, "no-alt-screen", false, "render inline instead of in the alternate screen")
	f.BoolVar(&flags.noMouse, "no-mouse", false, "disable mouse clicks")
}

func applyFlags(cmd *cobra.Command, cfg *config.Config) {
	changed := cmd.Flags().Changed
	if changed("name") {
		cfg.Name = flags.name
	}
	if changed("message") {
		cfg.Message = flags.message
	}
	if changed("image") {
		cfg.Image = flags.image
	}
	if changed("assets-dir") {
		cfg.AssetsDir = flags.assetsDir
	}
	if changed("overflow") {
		cfg.Overflow = flags.overflow
	}
	if changed("log-file") {
		cfg.Logging.File = flags.logFile
	}
	if changed("log-level") {
		cfg.Logging.Level = flags.logLevel
	}
	if changed("no-alt-screen") {
		cfg.NoAltScreen = flags.noAltScreen
	}
	if changed("no-mouse") {
		cfg.NoMouse = flags.noMouse
	}
}

func run(ctx context.Context, cfg *config.Config) error {
	if ctx == nil {
		ctx = context.Background()
	}

	logger, err := logging.New(cfg.Logging.File, cfg.Logging.Level)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	exporter, err := telemetry.NewExporter(ctx)
	if err != nil {
		return fmt.Errorf("creating trace exporter: %w", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := exporter.Shutdown(shutdownCtx); err != nil {
			logger.Warn("trace exporter shutdown", zap.Error(err))
		}
	}()

	model := ui.NewAppModel(ui.AppConfig{
		Session:   cfg.Session(),
		Policy:    cfg.Policy(),
		Timing:    cfg.CardTiming(),
		AssetsDir: cfg.AssetsDir,
		Observer: card.NewMultiObserver(
			logging.NewObserver(logger),
			telemetry.NewObserver(exporter.Provider()),
		),
		Logger: logger,
	})
	defer model.Close()

	var opts []tea.ProgramOption
	if !cfg.NoAltScreen {
		opts = append(opts, tea.WithAltScreen())
	}
	if !cfg.NoMouse {
		opts = append(opts, tea.WithMouseCellMotion())
	}
	p := tea.NewProgram(model.AsTeaModel(), append(opts, tea.WithContext(ctx))...)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running card: %w", err)
	}
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
