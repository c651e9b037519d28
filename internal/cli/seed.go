package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/goserg/volunteerhub/internal/domain"
	"github.com/goserg/volunteerhub/internal/service"
)

type SeedOptions struct {
	*RootOptions

	File string
}

func NewSeedCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &SeedOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Load users and opportunities from a yaml fixtures file",
		Long: `Register the users and post the opportunities listed in a fixtures file.

Users that are already registered are reused when their password matches.
Opportunities are skipped when the poster already has one with the same title,
so the command can be run repeatedly.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fixtures, err := LoadFixtures(opts.File)
			if err != nil {
				return err
			}
			a, err := newApp(opts.RootOptions)
			if err != nil {
				return err
			}
			defer a.Close()

			report, err := seed(cmd.Context(), a, fixtures)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "users: %d created, %d existing\nopportunities: %d created, %d existing\n",
				report.UsersCreated, report.UsersExisting, report.OpportunitiesCreated, report.OpportunitiesExisting)
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.File, "file", "f", "configs/seed.yaml", "fixtures file")

	return cmd
}

type Fixtures struct {
	Users         []UserFixture        `yaml:"users"`
	Opportunities []OpportunityFixture `yaml:"opportunities"`
}

type UserFixture struct {
	Role            domain.Role `yaml:"role"`
	Name            string      `yaml:"name"`
	Username        string      `yaml:"username"`
	Email           string      `yaml:"email"`
	Password        string      `yaml:"password"`
	Pronouns        string      `yaml:"pronouns"`
	Location        string      `yaml:"location"`
	MatchingProfile string      `yaml:"matching_profile"`

	Skills      []string `yaml:"skills"`
	Interests   []string `yaml:"interests"`
	Age         int      `yaml:"age"`
	School      string   `yaml:"school"`
	SocialLinks []string `yaml:"social_links"`

	NeededSkills            []string `yaml:"needed_skills"`
	NeededInterests         []string `yaml:"needed_interests"`
	OrganizationDescription string   `yaml:"organization_description"`
	Website                 string   `yaml:"website"`
}

type OpportunityFixture struct {
	// Poster is the email of a nonprofit from the users section.
	Poster         string                   `yaml:"poster"`
	Title          string                   `yaml:"title"`
	Description    string                   `yaml:"description"`
	Category       string                   `yaml:"category"`
	Location       string                   `yaml:"location"`
	EstimatedHours int                      `yaml:"estimated_hours"`
	Deadline       *time.Time               `yaml:"deadline"`
	Status         domain.OpportunityStatus `yaml:"status"`
	SkillsRequired []string                 `yaml:"skills_required"`
}

func LoadFixtures(path string) (Fixtures, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Fixtures{}, err
	}
	var f Fixtures
	if err := yaml.Unmarshal(data, &f); err != nil {
		return Fixtures{}, fmt.Errorf("parse %s: %w", path, err)
	}
	return f, nil
}

func (u UserFixture) input() service.RegisterInput {
	in := service.RegisterInput{
		Name:            u.Name,
		Username:        u.Username,
		Email:           u.Email,
		Pronouns:        u.Pronouns,
		Location:        u.Location,
		MatchingProfile: u.MatchingProfile,
	}
	switch u.Role {
	case domain.RoleVolunteer:
		in.Profile = domain.VolunteerProfile{
			Skills:      u.Skills,
			Interests:   u.Interests,
			Age:         u.Age,
			School:      u.School,
			SocialLinks: u.SocialLinks,
		}
	case domain.RoleNonprofit:
		in.Profile = domain.NonprofitProfile{
			NeededSkills:            u.NeededSkills,
			NeededInterests:         u.NeededInterests,
			OrganizationDescription: u.OrganizationDescription,
			Website:                 u.Website,
		}
	}
	return in
}

type seedReport struct {
	UsersCreated          int
	UsersExisting         int
	OpportunitiesCreated  int
	OpportunitiesExisting int
}

func seed(ctx context.Context, a *app, f Fixtures) (seedReport, error) {
	var report seedReport
	actors := make(map[string]domain.Actor, len(f.Users))

	for _, u := range f.Users {
		actor, created, err := seedUser(ctx, a, u)
		if err != nil {
			return report, fmt.Errorf("user %s: %w", u.Email, err)
		}
		if created {
			report.UsersCreated++
		} else {
			report.UsersExisting++
		}
		actors[u.Email] = actor
	}

	for _, o := range f.Opportunities {
		actor, ok := actors[o.Poster]
		if !ok {
			return report, fmt.Errorf("opportunity %q: unknown poster %s", o.Title, o.Poster)
		}
		created, err := seedOpportunity(ctx, a, actor, o)
		if err != nil {
			return report, fmt.Errorf("opportunity %q: %w", o.Title, err)
		}
		if created {
			report.OpportunitiesCreated++
		} else {
			report.OpportunitiesExisting++
		}
	}

	a.log.WithFields(map[string]interface{}{
		"from":          "seed",
		"users":         report.UsersCreated,
		"opportunities": report.OpportunitiesCreated,
	}).Info("fixtures loaded")
	return report, nil
}

func seedUser(ctx context.Context, a *app, u UserFixture) (domain.Actor, bool, error) {
	user, err := a.service.Register(ctx, u.input())
	if errors.Is(err, service.ErrUserExists) {
		existing, err := a.auth.Login(ctx, u.Email, u.Password)
		if err != nil {
			return domain.Actor{}, false, err
		}
		return existing.Actor(), false, nil
	}
	if err != nil {
		return domain.Actor{}, false, err
	}
	actor := domain.Actor{ID: user.ID, Role: user.Role()}
	if err := a.auth.SignUp(ctx, user.ID, u.Password); err != nil {
		if delErr := a.service.DeleteUser(ctx, actor, user.ID); delErr != nil {
			a.log.WithError(delErr).WithField("id", user.ID).Error("rollback seeded user")
		}
		return domain.Actor{}, false, err
	}
	return actor, true, nil
}

func seedOpportunity(ctx context.Context, a *app, actor domain.Actor, o OpportunityFixture) (bool, error) {
	mine, err := a.service.MyOpportunities(ctx, actor)
	if err != nil {
		return false, err
	}
	for _, existing := range mine {
		if existing.Title == o.Title {
			return false, nil
		}
	}
	_, err = a.service.CreateOpportunity(ctx, actor, service.OpportunityInput{
		Title:          o.Title,
		Description:    o.Description,
		Category:       o.Category,
		Location:       o.Location,
		EstimatedHours: o.EstimatedHours,
		Deadline:       o.Deadline,
		Status:         o.Status,
		SkillsRequired: o.SkillsRequired,
	})
	return err == nil, err
}
