package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/postmark-client/internal/constants"
	"github.com/fivetwenty-io/postmark-client/pkg/postmark"
)

// NewTemplatesCommand creates the templates command group
func NewTemplatesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "templates",
		Aliases: []string{"template"},
		Short:   "Manage templates",
		Long:    "List, inspect, validate and copy server templates",
	}

	cmd.AddCommand(newTemplatesListCommand())
	cmd.AddCommand(newTemplatesGetCommand())
	cmd.AddCommand(newTemplatesDeleteCommand())
	cmd.AddCommand(newTemplatesValidateCommand())
	cmd.AddCommand(newTemplatesPushCommand())

	return cmd
}

func newTemplatesListCommand() *cobra.Command {
	var filter postmark.TemplateFilter

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List templates",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, closeClient, err := createServerClient()
			if err != nil {
				return err
			}
			defer closeClient()

			templates, err := client.Templates().List(context.Background(), &filter)
			if err != nil {
				return fmt.Errorf("failed to list templates: %w", err)
			}

			return renderOutput(cmd.OutOrStdout(), templates, func(w io.Writer) error {
				if len(templates.Templates) == 0 {
					_, _ = fmt.Fprintln(w, "No templates found")

					return nil
				}

				table := tablewriter.NewWriter(w)
				table.Header("ID", "Name", "Alias", "Type", "Active")

				for _, template := range templates.Templates {
					_ = table.Append(
						strconv.Itoa(template.TemplateID),
						template.Name,
						template.Alias,
						template.TemplateType,
						strconv.FormatBool(template.Active),
					)
				}

				return table.Render()
			})
		},
	}

	cmd.Flags().IntVar(&filter.Count, "count", constants.DefaultPageSize, "results per page")
	cmd.Flags().IntVar(&filter.Offset, "offset", 0, "results to skip")
	cmd.Flags().StringVar(&filter.TemplateType, "type", "", "Standard or Layout")

	return cmd
}

func newTemplatesGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get TEMPLATE_ID_OR_ALIAS",
		Short: "Get template details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, closeClient, err := createServerClient()
			if err != nil {
				return err
			}
			defer closeClient()

			template, err := client.Templates().Get(context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("failed to get template: %w", err)
			}

			return renderOutput(cmd.OutOrStdout(), template, func(w io.Writer) error {
				table := tablewriter.NewWriter(w)
				table.Header("Property", "Value")

				_ = table.Append("ID", strconv.Itoa(template.TemplateID))
				_ = table.Append("Name", template.Name)
				_ = table.Append("Alias", template.Alias)
				_ = table.Append("Type", template.TemplateType)
				_ = table.Append("Layout", template.LayoutTemplate)
				_ = table.Append("Active", strconv.FormatBool(template.Active))
				_ = table.Append("Subject", template.Subject)
				_ = table.Append("HTML Body", truncate(template.HTMLBody))
				_ = table.Append("Text Body", truncate(template.TextBody))

				return table.Render()
			})
		},
	}
}

func newTemplatesDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete TEMPLATE_ID_OR_ALIAS",
		Short: "Delete a template",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, closeClient, err := createServerClient()
			if err != nil {
				return err
			}
			defer closeClient()

			result, err := client.Templates().Delete(context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("failed to delete template: %w", err)
			}

			return renderOutput(cmd.OutOrStdout(), result, func(w io.Writer) error {
				_, err := fmt.Fprintln(w, result.Message)

				return err
			})
		},
	}
}

func newTemplatesValidateCommand() *cobra.Command {
	var (
		request   postmark.TemplateValidationRequest
		htmlFile  string
		textFile  string
		modelJSON string
	)

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate template content",
		Long:  "Render template content against a test model and report syntax errors",
		RunE: func(cmd *cobra.Command, args []string) error {
			var err error

			if htmlFile != "" {
				request.HTMLBody, err = readBodyFile(htmlFile)
				if err != nil {
					return err
				}
			}

			if textFile != "" {
				request.TextBody, err = readBodyFile(textFile)
				if err != nil {
					return err
				}
			}

			if modelJSON != "" {
				err = json.Unmarshal([]byte(modelJSON), &request.TestRenderModel)
				if err != nil {
					return fmt.Errorf("failed to parse --model: %w", err)
				}
			}

			client, closeClient, err := createServerClient()
			if err != nil {
				return err
			}
			defer closeClient()

			validation, err := client.Templates().Validate(context.Background(), &request)
			if err != nil {
				return fmt.Errorf("failed to validate template: %w", err)
			}

			return renderOutput(cmd.OutOrStdout(), validation, func(w io.Writer) error {
				table := tablewriter.NewWriter(w)
				table.Header("Part", "Valid", "Errors")

				parts := []struct {
					name   string
					result postmark.TemplateValidationResult
				}{
					{name: "Subject", result: validation.Subject},
					{name: "HTML Body", result: validation.HTMLBody},
					{name: "Text Body", result: validation.TextBody},
				}

				for _, part := range parts {
					_ = table.Append(part.name, strconv.FormatBool(part.result.ContentIsValid), formatValidationErrors(part.result.ValidationErrors))
				}

				return table.Render()
			})
		},
	}

	cmd.Flags().StringVar(&request.Subject, "subject", "", "subject content")
	cmd.Flags().StringVar(&request.HTMLBody, "html", "", "HTML body content")
	cmd.Flags().StringVar(&request.TextBody, "text", "", "plain text body content")
	cmd.Flags().StringVar(&htmlFile, "html-file", "", "read the HTML body from a file")
	cmd.Flags().StringVar(&textFile, "text-file", "", "read the plain text body from a file")
	cmd.Flags().StringVar(&modelJSON, "model", "", "test render model as a JSON object")
	cmd.Flags().StringVar(&request.TemplateType, "type", "", "Standard or Layout")

	return cmd
}

func formatValidationErrors(errs []postmark.TemplateValidationError) string {
	if len(errs) == 0 {
		return ""
	}

	first := errs[0]
	text := fmt.Sprintf("line %d:%d %s", first.Line, first.CharacterPosition, first.Message)

	if len(errs) > 1 {
		text += fmt.Sprintf(" (+%d more)", len(errs)-1)
	}

	return truncate(text)
}

func newTemplatesPushCommand() *cobra.Command {
	var request postmark.TemplatePushRequest

	cmd := &cobra.Command{
		Use:   "push",
		Short: "Copy templates between servers",
		Long:  "Copy templates from one server to another. Without --perform only the planned changes are shown.",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createAccountClient()
			if err != nil {
				return err
			}

			result, err := client.Templates().Push(context.Background(), &request)
			if err != nil {
				return fmt.Errorf("failed to push templates: %w", err)
			}

			return renderOutput(cmd.OutOrStdout(), result, func(w io.Writer) error {
				if len(result.Templates) == 0 {
					_, _ = fmt.Fprintln(w, "No templates to push")

					return nil
				}

				table := tablewriter.NewWriter(w)
				table.Header("Action", "ID", "Name", "Alias", "Type")

				for _, action := range result.Templates {
					_ = table.Append(action.Action, strconv.Itoa(action.TemplateID), action.Name, action.Alias, action.TemplateType)
				}

				return table.Render()
			})
		},
	}

	cmd.Flags().IntVar(&request.SourceServerID, "source", 0, "source server ID")
	cmd.Flags().IntVar(&request.DestinationServerID, "destination", 0, "destination server ID")
	cmd.Flags().BoolVar(&request.PerformChanges, "perform", false, "apply the changes")

	_ = cmd.MarkFlagRequired("source")
	_ = cmd.MarkFlagRequired("destination")

	return cmd
}
