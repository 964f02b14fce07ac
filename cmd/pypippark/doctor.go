package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/conn-castle/pypippark/internal/doctor"
	"github.com/conn-castle/pypippark/internal/messages"
)

func newDoctorCmd(g *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   messages.DoctorUse,
		Short: messages.DoctorShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			d, err := newDispatcher(cmd, g)
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(out, messages.DoctorHealthCheckFmt, d.Root())
			results := d.Doctor()
			for _, r := range results {
				printResult(out, r)
			}

			if doctor.Failed(results) {
				_, _ = fmt.Fprintln(out, color.RedString(messages.DoctorFailureSummary))
				return &SilentExitError{Code: 1}
			}
			_, _ = fmt.Fprintln(out, color.GreenString(messages.DoctorSuccessSummary))
			return nil
		},
	}
}

func printResult(out io.Writer, r doctor.Result) {
	var status string
	switch r.Status {
	case doctor.StatusOK:
		status = color.GreenString(messages.DoctorStatusOKLabel)
	case doctor.StatusWarn:
		status = color.YellowString(messages.DoctorStatusWarnLabel)
	case doctor.StatusFail:
		status = color.RedString(messages.DoctorStatusFailLabel)
	}

	_, _ = fmt.Fprintf(out, messages.DoctorResultLineFmt, status, r.CheckName, r.Message)
	if r.Recommendation != "" {
		printRecommendation(out, r.Recommendation)
	}
}

// printRecommendation indents every line of a recommendation under its result.
func printRecommendation(out io.Writer, recommendation string) {
	for i, line := range strings.Split(recommendation, "\n") {
		prefix := messages.DoctorRecommendationIndent
		if i == 0 {
			prefix = messages.DoctorRecommendationPrefix
		}
		_, _ = fmt.Fprintf(out, "%s%s\n", prefix, line)
	}
}
