package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"starrating/internal/config"
	"starrating/internal/trace"
	"starrating/internal/ui"
)

func newRootCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "starrating",
		Short: "Star rating control demo",
		Long: `starrating shows one or more star rating controls in the terminal.
Click or drag across the stars to set a rating.`,
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(v, cmd)
			if err != nil {
				return err
			}
			return run(cmd.Context(), cfg)
		},
	}

	flags := cmd.Flags()
	flags.StringP("config", "c", "", "config file (default is ./starrating.yaml or $HOME/.config/starrating/starrating.yaml)")
	flags.Int("total", 0, "total stars of the first rating (3-10)")
	flags.Int("selected", 0, "initially selected stars of the first rating")
	flags.Float64("spacing", 0, "gap between stars in cells")
	flags.String("log-file", "", "file receiving log output")
	flags.Bool("verbose", false, "log gesture routing")

	_ = v.BindPFlag("config", flags.Lookup("config"))
	_ = v.BindPFlag("spacing", flags.Lookup("spacing"))
	_ = v.BindPFlag("log.file", flags.Lookup("log-file"))
	_ = v.BindPFlag("log.verbose", flags.Lookup("verbose"))
	return cmd
}

// loadConfig reads defaults, the config file, env and flags, in increasing
// precedence. --total and --selected override the first rating.
func loadConfig(v *viper.Viper, cmd *cobra.Command) (*config.Config, error) {
	config.SetDefaults(v)

	if cfgFile := v.GetString("config"); cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %q: %w", cfgFile, err)
		}
	} else {
		v.SetConfigName("starrating")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/starrating")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("read config: %w", err)
			}
		}
	}

	flags := cmd.Flags()
	return config.Load(v, func(cfg *config.Config) {
		if len(cfg.Ratings) == 0 {
			return
		}
		if flags.Changed("total") {
			cfg.Ratings[0].Total, _ = flags.GetInt("total")
		}
		if flags.Changed("selected") {
			cfg.Ratings[0].Selected, _ = flags.GetInt("selected")
		}
	})
}

func run(ctx context.Context, cfg *config.Config) error {
	f, err := tea.LogToFile(cfg.Log.File, "starrating")
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	defer f.Close()

	if cfg.Log.Verbose {
		log.Printf("config: ratings=%d spacing=%g", len(cfg.Ratings), cfg.Spacing)
	}

	exporter, err := trace.NewOTLPExporter(ctx)
	if err != nil {
		log.Printf("trace: OTLP exporter disabled: %v", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := exporter.Shutdown(shutdownCtx); err != nil {
			log.Printf("trace: shutdown: %v", err)
		}
	}()

	model, err := ui.NewAppModel(cfg, exporter)
	if err != nil {
		return err
	}
	model.OnChange = func(msg ui.RatingChangedMsg) {
		log.Printf("%s: Selected %d, out of %d", msg.ID, msg.Selected, msg.Total)
	}

	p := tea.NewProgram(model.AsTeaModel(),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(ctx),
	)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run program: %w", err)
	}
	return nil
}

func main() {
	if err := newRootCmd(viper.New()).ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "starrating: %v\n", err)
		os.Exit(1)
	}
}
