package commands

import (
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/postmark-client/pkg/postmark"
)

// NewVersionCommand creates the version command
func NewVersionCommand(version, commit, date string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Display version information",
		Long:  "Display detailed version information about the Postmark CLI",
		RunE: func(cmd *cobra.Command, args []string) error {
			type VersionInfo struct {
				Version       string `json:"version"        yaml:"version"`
				Commit        string `json:"commit"         yaml:"commit"`
				Built         string `json:"built"          yaml:"built"`
				ClientVersion string `json:"client_version" yaml:"client_version"`
			}

			versionInfo := VersionInfo{
				Version:       version,
				Commit:        commit,
				Built:         date,
				ClientVersion: postmark.DefaultUserAgent,
			}

			return renderOutput(cmd.OutOrStdout(), versionInfo, func(w io.Writer) error {
				table := tablewriter.NewWriter(w)
				table.Header("Property", "Value")
				_ = table.Append("Version", version)
				_ = table.Append("Commit", commit)
				_ = table.Append("Built", date)
				_ = table.Append("Client", postmark.DefaultUserAgent)

				err := table.Render()
				if err != nil {
					return fmt.Errorf("failed to render table: %w", err)
				}

				return nil
			})
		},
	}
}
