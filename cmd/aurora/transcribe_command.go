package main

import (
	"bufio"
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"aurora/internal/export"
	"aurora/internal/history"
	"aurora/internal/language"
	"aurora/internal/logging"
	"aurora/internal/pipeline"
)

func newTranscribeCommand(cmdCtx *commandContext) *cobra.Command {
	var formatFlag string
	var outputFlag string
	var languageFlag string

	cmd := &cobra.Command{
		Use:   "transcribe <file>",
		Short: "Transcribe an audio or video file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := cmdCtx.ensureConfig()
			if err != nil {
				return err
			}

			formatValue := strings.TrimSpace(formatFlag)
			if formatValue == "" {
				formatValue = cfg.Output.Format
			}
			format, err := export.ParseFormat(formatValue)
			if err != nil {
				return err
			}

			if languageFlag != "" {
				cfg.Whisper.Language = languageFlag
			}
			cfg.Whisper.Language = language.ToWhisperCode(cfg.Whisper.Language)

			logger, err := logging.NewFromConfig(cfg)
			if err != nil {
				return fmt.Errorf("initialize logging: %w", err)
			}

			store, err := history.Open(cfg.HistoryDBPath())
			if err != nil {
				return fmt.Errorf("open history: %w", err)
			}
			defer store.Close()

			orch := pipeline.New(cfg, pipeline.Deps{History: store}, logger)
			outcomes, err := orch.Run(cmd.Context(), pipeline.Request{
				SourcePath:   args[0],
				Format:       format,
				Sink:         newProgressSink(logger),
				Destinations: newDestinationResolver(cmd, outputFlag),
			})
			if err != nil {
				return err
			}

			outcome := <-outcomes
			job := outcome.Job
			out := cmd.OutOrStdout()
			switch job.State {
			case pipeline.StateSucceeded:
				fmt.Fprintf(out, "Transcript saved to %s\n", job.Destination)
				return nil
			case pipeline.StateCancelled:
				fmt.Fprintln(out, "Transcription cancelled.")
				return nil
			default:
				return job.Err
			}
		},
	}

	cmd.Flags().StringVarP(&formatFlag, "format", "f", "", "Output format (srt, txt, pdf, docx)")
	cmd.Flags().StringVarP(&outputFlag, "output", "o", "", "Destination file path (skips the prompt)")
	cmd.Flags().StringVarP(&languageFlag, "language", "l", "", "Spoken language (name or code, empty for autodetect)")
	return cmd
}

// newDestinationResolver returns the --output path when given, and
// prompts on the command's stdin otherwise. An empty answer cancels
// the job.
func newDestinationResolver(cmd *cobra.Command, outputFlag string) pipeline.DestinationResolver {
	return pipeline.ResolverFunc(func(ctx context.Context, suggested string) (string, error) {
		if path := strings.TrimSpace(outputFlag); path != "" {
			return path, nil
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Save transcript to [%s] (empty cancels): ", suggested)
		reader := bufio.NewReader(cmd.InOrStdin())
		line, err := reader.ReadString('\n')
		if err != nil && line == "" {
			// stdin closed without input, treat as cancellation
			return "", nil
		}
		answer := strings.TrimSpace(line)
		if answer == "" {
			return "", nil
		}
		if answer == "." {
			return suggested, nil
		}
		return answer, nil
	})
}
