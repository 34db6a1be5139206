package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/az-ai-labs/affixmorph/internal/runner"
)

func stemCmd(f *flags) *cobra.Command {
	var text bool

	c := &cobra.Command{
		Use:   "stem",
		Short: "Read words from stdin and print their lemmas",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			r, _, err := load(cmd, f)
			if err != nil {
				return err
			}
			if text {
				_, err = r.StemText(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout())
				return err
			}
			_, err = r.Stem(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout())
			return err
		},
	}

	c.Flags().BoolVar(&text, "text", false, "read running text and stem every word in it")
	return c
}

func expandCmd(f *flags) *cobra.Command {
	return &cobra.Command{
		Use:   "expand",
		Short: "Read lemmas from stdin and print their forms as lemma:form",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			r, _, err := load(cmd, f)
			if err != nil {
				return err
			}
			_, err = r.Expand(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout())
			return err
		},
	}
}

func expandAllCmd(f *flags) *cobra.Command {
	return &cobra.Command{
		Use:   "expandall",
		Short: "Print the forms of every dictionary word",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			r, _, err := load(cmd, f)
			if err != nil {
				return err
			}
			_, err = r.ExpandAll(cmd.Context(), cmd.OutOrStdout())
			return err
		},
	}
}

func wordListCmd(f *flags) *cobra.Command {
	return &cobra.Command{
		Use:   "wordlist",
		Short: "Print every dictionary word, sticky derivations included",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			r, _, err := load(cmd, f)
			if err != nil {
				return err
			}
			_, err = r.WordList(cmd.OutOrStdout())
			return err
		},
	}
}

func expandDictCmd(f *flags) *cobra.Command {
	return &cobra.Command{
		Use:   "expanddict",
		Short: "Print the dictionary with sticky derivations added, in dictionary format",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			r, _, err := load(cmd, f)
			if err != nil {
				return err
			}
			_, err = r.ExpandDict(cmd.OutOrStdout())
			return err
		},
	}
}

func roundTripCmd(f *flags) *cobra.Command {
	var strict bool

	c := &cobra.Command{
		Use:   "roundtrip",
		Short: "Check that every generated form stems back to its lemma",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			r, cfg, err := load(cmd, f)
			if err != nil {
				return err
			}
			rep, err := r.RoundTrip(cmd.Context())
			if err != nil {
				return err
			}
			if err := runner.WriteReport(cmd.OutOrStdout(), cfg.Format, rep); err != nil {
				return err
			}
			if strict && !rep.OK() {
				return fmt.Errorf("roundtrip failed (%d form(s) do not stem back)", rep.Failures)
			}
			return nil
		},
	}

	c.Flags().BoolVar(&strict, "strict", false, "exit non-zero when any form fails")
	return c
}
