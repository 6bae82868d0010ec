package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/BenjaminKuhnn/Mitarbeit/pkg/models"
	"github.com/BenjaminKuhnn/Mitarbeit/pkg/planner"
	"github.com/BenjaminKuhnn/Mitarbeit/pkg/roster"
)

var (
	planFile        string
	planJSON        bool
	planLeaderLevel int
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Compute a staffing plan from a roster file",
	Long: `Compute a staffing plan from a YAML roster file.

Events are planned in date order. For each event the license quota is
filled first, then the remaining slots by experience. The command exits
with status 1 when any event cannot be fully staffed.

Examples:
  # Human-readable plan
  planctl plan -f roster.yml

  # Machine-readable plan for piping to jq
  planctl plan -f roster.yml --json

  # Accept level 2 workers as event leaders
  planctl plan -f roster.yml --leader-level 2`,
	RunE: runPlan,
}

func init() {
	planCmd.Flags().StringVarP(&planFile, "file", "f", "roster.yml", "Roster file to plan from")
	planCmd.Flags().BoolVar(&planJSON, "json", false, "Print the plan as JSON")
	planCmd.Flags().IntVar(&planLeaderLevel, "leader-level", 0, "Experience level required to lead an event (default 3)")
	rootCmd.AddCommand(planCmd)
}

func runPlan(cmd *cobra.Command, args []string) error {
	input, err := roster.LoadFile(planFile)
	if err != nil {
		return err
	}

	p := planner.New()
	if planLeaderLevel > 0 {
		p.LeaderThreshold = planLeaderLevel
	}
	plan := p.Plan(input.Events, input.Workers)

	if planJSON {
		out, err := json.MarshalIndent(plan, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(out))
	} else {
		printPlan(cmd.OutOrStdout(), input.Events, plan)
	}

	failed := 0
	for _, res := range plan {
		if res.Status != models.PlanOK {
			failed++
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d events could not be staffed", failed, len(input.Events))
	}
	return nil
}

func printPlan(out io.Writer, events []models.Event, plan map[string]models.PlanResult) {
	green := color.New(color.FgGreen)
	red := color.New(color.FgRed, color.Bold)

	sorted := make([]models.Event, len(events))
	copy(sorted, events)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].FirstDate() != sorted[j].FirstDate() {
			return sorted[i].FirstDate() < sorted[j].FirstDate()
		}
		return sorted[i].ID < sorted[j].ID
	})

	for _, ev := range sorted {
		res := plan[ev.ID]
		date := string(ev.FirstDate())
		if date == "" {
			date = "undated"
		}

		if res.Status == models.PlanOK {
			green.Fprintf(out, "✓ %s [%s] %d assigned\n", ev.Name, date, res.Count)
			for _, w := range res.Assigned {
				fmt.Fprintf(out, "    %s (level %d%s)\n", w.Name, w.ExperienceLevel, licenseSuffix(w.Licenses))
			}
		} else {
			red.Fprintf(out, "✗ %s [%s] %s: %s\n", ev.Name, date, res.Reason, res.Detail)
		}
	}
}

func licenseSuffix(licenses []models.LicenseClass) string {
	if len(licenses) == 0 {
		return ""
	}
	parts := make([]string, len(licenses))
	for i, c := range licenses {
		parts[i] = string(c)
	}
	return ", " + strings.Join(parts, "/")
}
