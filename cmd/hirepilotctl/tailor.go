package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/danirodriguezz/hirepilot/pkg/llm"
	"github.com/danirodriguezz/hirepilot/pkg/llm/providers"
	"github.com/danirodriguezz/hirepilot/pkg/posting"
	pgrepo "github.com/danirodriguezz/hirepilot/pkg/repository/postgres"
	"github.com/danirodriguezz/hirepilot/pkg/storage/postgres"
	"github.com/danirodriguezz/hirepilot/pkg/tailor"
)

const maxJobFileBytes = 5 << 20

func newTailorCmd(verbose *bool) *cobra.Command {
	var (
		candidateID string
		jobPath     string
		language    string
		persist     bool
	)
	cmd := &cobra.Command{
		Use:   "tailor",
		Short: "Tailor a candidate's CV to a job posting and print the result",
		Long: `tailor reads the job posting from a file (.txt, .md, .pdf, .docx) or from stdin
when --job is "-", runs the tailoring pipeline for the candidate and prints the
resulting JSON. With --persist the result is also stored like an API request.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			id, err := uuid.Parse(candidateID)
			if err != nil {
				return fmt.Errorf("invalid --candidate: %w", err)
			}
			job, err := readJob(cmd.InOrStdin(), jobPath)
			if err != nil {
				return err
			}

			cfg, log, err := setup(*verbose)
			if err != nil {
				return err
			}
			pool, err := postgres.Connect(cmd.Context(), cfg.DatabaseURL)
			if err != nil {
				return err
			}
			defer pool.Close()

			var generator tailor.Generator
			model, err := providers.New(cfg.LLM)
			switch {
			case err == nil:
				generator = tailor.NewGenerationClient(model,
					tailor.WithTimeout(cfg.LLM.Timeout),
					tailor.WithTemperature(cfg.LLM.Temperature),
					tailor.WithClientLogger(log),
				)
			case errors.Is(err, llm.ErrEmptyAPIKey):
				log.Warn("LLM_API_KEY not set; using the fallback generator")
			default:
				return err
			}
			svc := tailor.NewService(
				tailor.NewAggregator(pgrepo.NewCandidateRepository(pool)),
				generator,
				pgrepo.NewGenerationRepository(pool),
				log,
			)

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			if persist {
				g, err := svc.Tailor(cmd.Context(), id, job, language)
				if err != nil {
					return err
				}
				return enc.Encode(g)
			}
			res, out, err := svc.Build(cmd.Context(), id, job, language)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "source=%s failure=%s\n", out.Source, out.FailureKind)
			return enc.Encode(res)
		},
	}
	cmd.Flags().StringVar(&candidateID, "candidate", "", "Candidate (user) id")
	cmd.Flags().StringVar(&jobPath, "job", "-", `Job posting file, or "-" for stdin`)
	cmd.Flags().StringVar(&language, "language", tailor.DefaultLanguage, "Output language (es, en)")
	cmd.Flags().BoolVar(&persist, "persist", false, "Store the result as a new generation")
	_ = cmd.MarkFlagRequired("candidate")
	return cmd
}

func readJob(stdin io.Reader, path string) (string, error) {
	if path == "-" || path == "" {
		b, err := posting.ReadLimited(stdin, maxJobFileBytes)
		if err != nil {
			return "", err
		}
		return string(b), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()
	b, err := posting.ReadLimited(f, maxJobFileBytes)
	if err != nil {
		return "", err
	}
	return posting.ExtractText(filepath.Base(path), b)
}
