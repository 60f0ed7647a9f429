package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/username/holiday-calendar/internal/calendar"
	"github.com/username/holiday-calendar/internal/config"
	"github.com/username/holiday-calendar/internal/render"
	"github.com/username/holiday-calendar/pkg/holiday"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	configPath string
	cfg        *config.Config
	logger     *zap.Logger
)

func main() {
	rootCmd := &cobra.Command{
		Use:           "holiday-calendar",
		Short:         "Holiday calendar engine",
		Long:          "Calculate observed public holidays for built-in and configured jurisdictions",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			cfg, err = config.Load(configPath)
			if err != nil {
				initLogger(zapcore.InfoLevel)
				return fmt.Errorf("failed to load config: %w", err)
			}

			level, _ := cfg.Log.ZapLevel()
			if cfg.Log.File != "" {
				logger, err = initFileLogger(cfg.Log.File, level)
				if err != nil {
					initLogger(level) // Fallback to console
				}
			} else {
				initLogger(level)
			}
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if logger != nil {
				_ = logger.Sync()
			}
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Config file path (searched in ., ~/.holiday-calendar and /etc/holiday-calendar when empty)")

	rootCmd.AddCommand(calculateCmd())
	rootCmd.AddCommand(calendarsCmd())
	rootCmd.AddCommand(easterCmd())
	rootCmd.AddCommand(weekendCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func calculateCmd() *cobra.Command {
	var codes []string
	var year int
	var format string

	cmd := &cobra.Command{
		Use:   "calculate",
		Short: "List the observed holidays of a year",
		Long:  "Calculate observed holidays for one calendar, or for the merge of several calendars given in priority order.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(codes) == 0 {
				return fmt.Errorf("at least one --calendar is required")
			}
			out, err := outputFormat(format)
			if err != nil {
				return err
			}

			registry, err := initializeRegistry()
			if err != nil {
				return err
			}

			var (
				cal   *holiday.Calendar
				dates []holiday.HolidayDate
			)
			if len(codes) == 1 {
				if cal, err = registry.Get(codes[0]); err != nil {
					return err
				}
				if dates, err = registry.Calculate(cal.Code(), year); err != nil {
					return err
				}
			} else {
				if cal, err = registry.Composite(codes...); err != nil {
					return err
				}
				dates = cal.Calculate(year)
			}

			logger.Info("Holidays calculated",
				zap.String("calendar", cal.Code()),
				zap.Int("year", year),
				zap.Int("holidays", len(dates)))

			return render.Holidays(cmd.OutOrStdout(), out, render.NewHolidayReport(cal.Code(), cal.Name(), year, dates))
		},
	}

	cmd.Flags().StringSliceVar(&codes, "calendar", nil, "Calendar code; repeat to merge calendars, first wins")
	cmd.Flags().IntVar(&year, "year", time.Now().Year(), "Year to calculate")
	cmd.Flags().StringVar(&format, "format", "", "Output format: text, json, yaml or csv (config output.format when empty)")

	return cmd
}

func calendarsCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "calendars",
		Short: "List available calendars",
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := outputFormat(format)
			if err != nil {
				return err
			}

			registry, err := initializeRegistry()
			if err != nil {
				return err
			}

			codes := registry.Codes()
			rows := make([]render.CalendarRow, 0, len(codes))
			for _, code := range codes {
				cal, err := registry.Get(code)
				if err != nil {
					logger.Warn("Failed to build calendar", zap.String("calendar", code), zap.Error(err))
					continue
				}
				rows = append(rows, render.NewCalendarRow(cal))
			}

			return render.Calendars(cmd.OutOrStdout(), out, rows)
		},
	}

	cmd.Flags().StringVar(&format, "format", "", "Output format: text, json, yaml or csv (config output.format when empty)")

	return cmd
}

func outputFormat(flag string) (render.Format, error) {
	if flag == "" {
		flag = cfg.Output.Format
	}
	return render.ParseFormat(flag)
}

func initializeRegistry() (*calendar.Registry, error) {
	registry := calendar.NewRegistry(logger)

	calendars, err := cfg.BuildCalendars(logger)
	if err != nil {
		return nil, fmt.Errorf("failed to build configured calendars: %w", err)
	}
	for _, cal := range calendars {
		registry.Register(cal)
	}

	return registry, nil
}

func initLogger(level zapcore.Level) {
	config := zap.NewProductionConfig()
	config.Level = zap.NewAtomicLevelAt(level)
	config.EncoderConfig.TimeKey = "timestamp"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	var err error
	logger, err = config.Build()
	if err != nil {
		panic(fmt.Sprintf("failed to initialize logger: %v", err))
	}
}

func initFileLogger(logFile string, level zapcore.Level) (*zap.Logger, error) {
	if logFile == "" {
		return nil, fmt.Errorf("log file path is empty")
	}

	// Setup lumberjack for log rotation
	logWriter := &lumberjack.Logger{
		Filename:   logFile,
		MaxSize:    100,  // MB
		MaxBackups: 3,    // Keep max 3 old log files
		MaxAge:     28,   // days
		Compress:   true, // Compress old logs with gzip
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.TimeKey = "timestamp"
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderConfig),
		zapcore.AddSync(logWriter),
		level,
	)

	return zap.New(core), nil
}
