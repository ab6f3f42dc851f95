package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mordilloSan/go-console-logger/logger"
)

// Example demonstrating go-console-logger usage.
//
//	./go-console-logger --level info --origin demo --color always
func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		level  string
		origin string
		color  string
	)

	cmd := &cobra.Command{
		Use:           "go-console-logger",
		Short:         "Print sample log lines at every kind",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			threshold, err := logger.ParseLevel(level)
			if err != nil {
				return err
			}
			mode, err := logger.ParseColorMode(color)
			if err != nil {
				return err
			}

			logger.Init(logger.Config{
				Threshold:     threshold,
				DefaultOrigin: origin,
				Output:        cmd.OutOrStdout(),
				Color:         mode,
			})
			runDemo()
			return nil
		},
	}

	cmd.Flags().StringVar(&level, "level", "full", "threshold: none, error, warning, info or full")
	cmd.Flags().StringVar(&origin, "origin", "demo", "default origin label")
	cmd.Flags().StringVar(&color, "color", "auto", "color output: auto, always or never")
	return cmd
}

func runDemo() {
	logger.Log("starting up", logger.KindInfo)
	logger.Debugf("threshold is %s", logger.Default().Threshold())
	logger.Log("config file not found, using defaults", logger.KindWarning)
	logger.LogWithOrigin("listening on :8080", logger.KindInfo, "http")
	logger.LogWithOrigin("message without origin", logger.KindInfo, "")
	logger.Log("never printed", logger.KindNone)

	// Kind selection from HTTP status codes.
	for _, code := range []int{200, 301, 404, 500} {
		logger.LogWithOrigin(fmt.Sprintf("[%d] GET /api/users", code), logger.KindForStatus(code), "api")
	}

	logger.Errorf("oops: %v", "something happened")
}
