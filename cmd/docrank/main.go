package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func main() {
	_ = godotenv.Load()

	log := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	root := &cobra.Command{
		Use:           "docrank",
		Short:         "Rank document sections by relevance to a persona and job-to-be-done",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(rankCmd(log))
	root.AddCommand(serveCmd(log))

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
