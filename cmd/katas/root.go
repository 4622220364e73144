// SPDX-License-Identifier: MIT
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"strings"

	"github.com/pterm/pterm"
	"github.com/samber/lo"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"gitlab.com/fisherprime/katas/graph"
	"gitlab.com/fisherprime/katas/types"
)

// Log formats.
const (
	formatText = "text"
	formatJSON = "json"
)

var (
	debug     bool
	logFormat string
	workers   int

	logger = logrus.New()
)

// CLI errors.
var (
	ErrLogFormat = errors.New("unknown log format")
)

var rootCmd = &cobra.Command{
	Use:           "katas",
	Short:         "Run classic algorithm exercises",
	Long:          `Run classic algorithm exercises over trees, lists, graphs, arrays, strings & bits`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		return configureLogger(cmd.ErrOrStderr())
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", formatText, "log format: text|json")
	rootCmd.PersistentFlags().IntVar(&workers, "workers", types.DefaultWorkers, "worker pool size for batch queries")

	rootCmd.AddCommand(treeCmd, listCmd, graphCmd, searchCmd, sortCmd, arraysCmd, textCmd, bitsCmd, digitsCmd)
}

// Execute runs the root command, reporting any error.
//
// An interrupt cancels the running command's context.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := rootCmd.ExecuteContext(ctx)
	stop()

	if err != nil {
		pterm.Error.Println(err)
		os.Exit(1)
	}
}

func configureLogger(w io.Writer) error {
	logger.SetOutput(w)

	switch logFormat {
	case formatText:
		logger.SetFormatter(&logrus.TextFormatter{})
	case formatJSON:
		logger.SetFormatter(&logrus.JSONFormatter{})
	default:
		return fmt.Errorf("%w: %s", ErrLogFormat, logFormat)
	}

	logger.SetLevel(logrus.InfoLevel)
	if debug {
		logger.SetLevel(logrus.DebugLevel)
	}
	graph.SetLogger(logger)

	return nil
}

// parseInts converts arguments to integers, reporting the first failure.
func parseInts(args []string) (values []int, err error) {
	values = lo.Map(args, func(arg string, index int) int {
		value, parseErr := strconv.Atoi(arg)
		if parseErr != nil && err == nil {
			err = fmt.Errorf("argument (%d) %q: %w", index, arg, parseErr)
		}
		return value
	})

	return
}

// printValues writes space separated values on a line.
func printValues[T any](cmd *cobra.Command, values ...T) error {
	return types.WriteValues(cmd.OutOrStdout(), " ", values...)
}

// joinValues renders values for a table cell.
func joinValues[T any](values []T) string {
	var buffer strings.Builder
	// A strings.Builder never fails to write.
	_ = types.WriteValues(&buffer, " ", values...)

	return strings.TrimSuffix(buffer.String(), "\n")
}

// printTable renders rows, the first being the header.
func printTable(cmd *cobra.Command, rows pterm.TableData) (err error) {
	rendered, err := pterm.DefaultTable.WithHasHeader(true).WithData(rows).Srender()
	if err != nil {
		return
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), rendered)

	return
}

// render formats a value for a table cell, showing errors in place of missing results.
func render(value any, err error) string {
	if err != nil {
		return pterm.Red(err.Error())
	}

	return fmt.Sprint(value)
}
