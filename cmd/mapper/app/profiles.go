package app

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/loukach/infocar-eurotax-mapper/pkg/match"
)

// NewProfilesCommand creates the profiles command.
func (a *App) NewProfilesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "profiles",
		Short: "List the available weight profiles",
		RunE:  a.runProfiles,
	}
}

func (a *App) runProfiles(_ *cobra.Command, _ []string) error {
	profiles := match.BuiltinProfiles()
	if a.config.ProfilesFile != "" {
		loaded, err := a.loadProfiles(a.config.ProfilesFile)
		if err != nil {
			return err
		}
		profiles = loaded
	}

	if a.config.Output == "json" {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(profiles)
	}

	for _, name := range profiles.Names() {
		weights, err := profiles.Get(name)
		if err != nil {
			continue
		}
		marker := "  "
		if name == match.DefaultProfile {
			marker = "* "
		}
		fmt.Printf("%s%-12s max score %d\n", marker, name, weights.Max())
	}
	return nil
}
