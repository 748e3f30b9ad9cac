package main

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"strings"
	"syscall"

	"jobquery/internal/app"
	"jobquery/internal/usecase"

	"github.com/spf13/cobra"
)

var refresh bool

var generateCmd = &cobra.Command{
	Use:   "generate <job title>",
	Short: "Print related titles and queries for a job title",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runGenerate,
}

func init() {
	generateCmd.Flags().BoolVar(&refresh, "refresh", false, "drop the cached synonyms for this title first")
	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	cfg, logger, err := loadConfig()
	if err != nil {
		logger.Error("failed to load config", "err", err)
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	c, err := app.NewContainer(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer c.Close()

	title := strings.Join(args, " ")
	if refresh {
		if err := c.Cache.Delete(ctx, usecase.SynonymsCacheKey(title)); err != nil {
			logger.Warn("could not drop cached synonyms", "err", err)
		}
	}

	out, err := c.Queries.Generate(ctx, usecase.GenerateInput{JobTitle: title})
	if errors.Is(err, usecase.ErrInvalidInput) {
		return fmt.Errorf("please enter a job title")
	}
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	if len(out.AlternateTitles) == 0 {
		fmt.Fprintln(w, "No related job titles found.")
	} else {
		fmt.Fprintf(w, "Related roles: %s\n", strings.Join(out.AlternateTitles, ", "))
	}
	fmt.Fprintln(w)
	for i, q := range out.Queries {
		fmt.Fprintf(w, "%d. %s\n", i+1, q)
	}
	return nil
}
