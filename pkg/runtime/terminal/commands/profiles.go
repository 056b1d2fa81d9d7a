package commands

import (
	"fmt"
	"strings"

	"github.com/revlytic/bplan/pkg/services/config"
	"github.com/spf13/cobra"
)

type ProfilesCmd struct {
	configPath string
}

func NewProfilesCmd() *cobra.Command {
	pc := &ProfilesCmd{}
	cmd := &cobra.Command{
		Use:   "profiles",
		Short: "List client engagements from the profiles file",
		RunE:  pc.run,
	}

	cmd.Flags().StringVar(&pc.configPath, "config", "", "Path to the engagement profiles file")

	_ = cmd.MarkFlagRequired("config")

	return cmd
}

func (pc *ProfilesCmd) run(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	registry, err := config.NewRegistry(pc.configPath)
	if err != nil {
		return fmt.Errorf("failed to load profiles from %s: %w", pc.configPath, err)
	}

	names, err := registry.GetProfiles(ctx)
	if err != nil {
		return err
	}

	if len(names) == 0 {
		fmt.Fprintf(cmd.OutOrStdout(), "No engagements found in %s\n", pc.configPath)
		return nil
	}

	lines := make([]string, 0, len(names))
	for _, name := range names {
		profile, err := registry.GetProfile(ctx, name)
		if err != nil {
			return err
		}
		lines = append(lines, profile.String())
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Configured engagements:\n%s\n", strings.Join(lines, "\n"))

	return nil
}
