package cli

import (
	"io"
	"strings"

	"github.com/google/uuid"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/goserg/volunteerhub/internal/domain"
)

func NewRankCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rank",
		Short: "Print recommendations the way the API computes them",
	}
	cmd.AddCommand(newRankOpportunitiesCommand(rootOpts))
	cmd.AddCommand(newRankVolunteersCommand(rootOpts))
	return cmd
}

func newRankOpportunitiesCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "opportunities <volunteer-id>",
		Short: "Rank open opportunities for a volunteer",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := uuid.Parse(args[0])
			if err != nil {
				return err
			}
			a, err := newApp(rootOpts)
			if err != nil {
				return err
			}
			defer a.Close()

			ranked, err := a.service.RecommendedOpportunities(cmd.Context(), domain.Actor{ID: id, Role: domain.RoleVolunteer})
			if err != nil {
				return err
			}
			renderOpportunities(cmd.OutOrStdout(), ranked)
			return nil
		},
	}
}

func newRankVolunteersCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "volunteers <opportunity-id>",
		Short: "Rank volunteers for an opportunity on behalf of its nonprofit",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := uuid.Parse(args[0])
			if err != nil {
				return err
			}
			a, err := newApp(rootOpts)
			if err != nil {
				return err
			}
			defer a.Close()

			o, err := a.service.GetOpportunity(cmd.Context(), id)
			if err != nil {
				return err
			}
			owner := domain.Actor{ID: o.NonprofitID, Role: domain.RoleNonprofit}
			ranked, err := a.service.RecommendedVolunteers(cmd.Context(), owner, id)
			if err != nil {
				return err
			}
			renderVolunteers(cmd.OutOrStdout(), ranked)
			return nil
		},
	}
}

func renderOpportunities(w io.Writer, ranked []domain.RankedOpportunity) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.AppendHeader(table.Row{"#", "Score", "Title", "Nonprofit", "Category", "Skills"})
	for i, o := range ranked {
		t.AppendRow(table.Row{i + 1, o.MatchScore, o.Title, o.Poster.Name, o.Category, strings.Join(o.SkillsRequired, ", ")})
	}
	t.AppendFooter(table.Row{"", "", "", "", "Total", len(ranked)})
	t.Render()
}

func renderVolunteers(w io.Writer, ranked []domain.RankedVolunteer) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.AppendHeader(table.Row{"#", "Score", "Name", "Username", "Location", "Skills"})
	for i, v := range ranked {
		t.AppendRow(table.Row{i + 1, v.MatchScore, v.Name, v.Username, v.Location, strings.Join(v.Skills, ", ")})
	}
	t.AppendFooter(table.Row{"", "", "", "", "Total", len(ranked)})
	t.Render()
}
