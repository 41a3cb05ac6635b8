package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/Shuttlerock/redvine/config"
	"github.com/Shuttlerock/redvine/vine"
)

var (
	cfgFile string
	cfg     *config.Config
	logger  zerolog.Logger
	client  *vine.Client

	// Command flags
	page       int
	size       int
	filterExpr string
	jsonOutput bool
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "redvine",
	Short: "Browse Vine timelines, posts and profiles from the command line",
	Long: `redvine is a CLI around the Vine API: search tags, browse the popular
and promoted timelines, look up profiles and posts, and (with credentials
configured) read your own timeline, likes and social graph.`,
	PersistentPreRunE: initializeApp,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// SetVersion records build metadata injected by main.
func SetVersion(version, buildTime string) {
	rootCmd.Version = fmt.Sprintf("%s (built %s)", version, buildTime)
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "print raw JSON responses")
}

// initializeApp initializes the configuration and the Vine client
func initializeApp(cmd *cobra.Command, args []string) error {
	var err error
	cfg, err = config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger = setupLogger(cfg.Logging)

	client = vine.NewClient(
		vine.WithLogger(logger),
		vine.WithTimeout(time.Duration(cfg.Vine.Timeout)*time.Second),
	)

	return nil
}

// connect authenticates the shared client from the configured
// credentials. Required by the protected commands.
func connect(ctx context.Context) error {
	if !cfg.Vine.HasCredentials() {
		return fmt.Errorf("this command requires authentication: set vine.api_key or vine.email and vine.password in the config file")
	}

	_, err := client.Connect(ctx, vine.Credentials{
		Email:    cfg.Vine.Email,
		Password: cfg.Vine.Password,
		APIKey:   cfg.Vine.APIKey,
	})
	if err != nil {
		return fmt.Errorf("failed to authenticate: %w", err)
	}

	logger.Debug().Msg("Authenticated with Vine")
	return nil
}

// setupLogger configures the zerolog logger
func setupLogger(cfg config.LoggingConfig) zerolog.Logger {
	// Set log level
	level := zerolog.InfoLevel
	switch strings.ToLower(cfg.Level) {
	case "trace":
		level = zerolog.TraceLevel
	case "debug":
		level = zerolog.DebugLevel
	case "warn":
		level = zerolog.WarnLevel
	case "error":
		level = zerolog.ErrorLevel
	}

	zerolog.SetGlobalLevel(level)

	// Configure output format
	if cfg.Format == "json" {
		return zerolog.New(os.Stderr).With().Timestamp().Logger()
	}

	// Console format; color only on a real terminal
	output := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
		NoColor:    !cfg.Color || !isatty.IsTerminal(os.Stderr.Fd()),
	}

	return zerolog.New(output).With().Timestamp().Logger()
}

// addListFlags registers the flags shared by every list command.
func addListFlags(cmds ...*cobra.Command) {
	for _, c := range cmds {
		c.Flags().IntVar(&page, "page", 0, "result page to fetch")
		c.Flags().IntVar(&size, "size", 0, "results per page (API default is 20 when paging)")
		c.Flags().StringVarP(&filterExpr, "filter", "f", "", "filter expression applied to each post")
	}
}

// pageOptions renders the shared paging flags as request options.
func pageOptions() vine.Options {
	opts := vine.Options{}
	if page > 0 {
		opts["page"] = page
	}
	if size > 0 {
		opts["size"] = size
	}
	return opts
}
