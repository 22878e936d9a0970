package main

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/ironsupr/docrank/internal/challenge"
	"github.com/ironsupr/docrank/internal/config"
	"github.com/ironsupr/docrank/internal/persona"
	"github.com/ironsupr/docrank/internal/pipeline"
	"github.com/ironsupr/docrank/internal/report"
	"github.com/spf13/cobra"
)

func rankCmd(log *slog.Logger) *cobra.Command {
	var outputDir string
	var configPath string

	cmd := &cobra.Command{
		Use:   "rank <input.json>",
		Short: "Rank the sections of the documents referenced by a challenge input file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()
			if configPath != "" {
				var err error
				cfg, err = config.LoadFile(configPath, cfg)
				if err != nil {
					return err
				}
			}
			if outputDir != "" {
				cfg.OutputDir = outputDir
			}

			req, err := challenge.Load(args[0], log)
			if err != nil {
				return err
			}
			log.Info("input loaded",
				"persona", req.Persona,
				"job", req.Job,
				"documents", len(req.Documents),
			)

			pctx := persona.Analyze(req.Persona, req.Job)
			log.Info("context analyzed",
				"persona_type", pctx.Persona,
				"group_type", pctx.Group,
				"group_size", pctx.GroupSize,
				"age_group", pctx.Age,
				"trip_duration", pctx.Duration,
				"budget_level", pctx.Budget,
				"activity_preferences", pctx.Activities,
			)

			pipe := pipeline.New(log, cfg.DocWorkers)
			ranked := pipe.Run(cmd.Context(), req.Documents, pctx)
			if len(ranked) == 0 {
				log.Info("no documents processed, nothing to write")
				return nil
			}

			stats := pipeline.ComputeStats(ranked)
			log.Info("ranking complete",
				"sections", stats.Count,
				"max_score", fmt.Sprintf("%.2f", stats.MaxScore),
				"avg_score", fmt.Sprintf("%.2f", stats.AvgScore),
				"high_relevance", stats.HighRelevance,
			)

			preview := cfg.PreviewSections
			if preview > len(ranked) {
				preview = len(ranked)
			}
			for i, sec := range ranked[:preview] {
				log.Info("top section",
					"rank", i+1,
					"document", sec.Document,
					"page", sec.Page,
					"title", sec.Title,
					"score", fmt.Sprintf("%.2f", sec.Score),
				)
			}

			rep := report.Build(ranked, req, cfg.TopSections, time.Now())
			path, err := rep.Write(cfg.OutputDir, cfg.OutputFile)
			if err != nil {
				return err
			}
			log.Info("output written", "path", path)
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputDir, "output-dir", "o", "", "output directory (default from config)")
	cmd.Flags().StringVar(&configPath, "config", "", "optional YAML config file")
	return cmd
}
