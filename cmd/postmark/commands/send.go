package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/postmark-client/internal/constants"
	"github.com/fivetwenty-io/postmark-client/pkg/postmark"
)

// NewSendCommand creates the send command
func NewSendCommand() *cobra.Command {
	var (
		message  postmark.Message
		htmlFile string
		textFile string
	)

	cmd := &cobra.Command{
		Use:   "send",
		Short: "Send a single message",
		Long:  "Send one message through the server the server token belongs to",
		RunE: func(cmd *cobra.Command, args []string) error {
			err := requireSenderAndRecipient(message.From, message.To)
			if err != nil {
				return err
			}

			if htmlFile != "" {
				message.HTMLBody, err = readBodyFile(htmlFile)
				if err != nil {
					return err
				}
			}

			if textFile != "" {
				message.TextBody, err = readBodyFile(textFile)
				if err != nil {
					return err
				}
			}

			client, closeClient, err := createServerClient()
			if err != nil {
				return err
			}
			defer closeClient()

			resp, err := client.Email().Send(context.Background(), &message)
			if err != nil {
				return fmt.Errorf("failed to send message: %w", err)
			}

			return renderSendResponses(cmd.OutOrStdout(), []postmark.SendResponse{*resp})
		},
	}

	cmd.Flags().StringVar(&message.From, "from", "", "sender address")
	cmd.Flags().StringVar(&message.To, "to", "", "recipient addresses, comma separated")
	cmd.Flags().StringVar(&message.Cc, "cc", "", "cc addresses")
	cmd.Flags().StringVar(&message.Bcc, "bcc", "", "bcc addresses")
	cmd.Flags().StringVar(&message.Subject, "subject", "", "subject")
	cmd.Flags().StringVar(&message.TextBody, "text", "", "plain text body")
	cmd.Flags().StringVar(&message.HTMLBody, "html", "", "HTML body")
	cmd.Flags().StringVar(&textFile, "text-file", "", "read the plain text body from a file")
	cmd.Flags().StringVar(&htmlFile, "html-file", "", "read the HTML body from a file")
	cmd.Flags().StringVar(&message.Tag, "tag", "", "tag")
	cmd.Flags().StringVar(&message.ReplyTo, "reply-to", "", "reply-to address")
	cmd.Flags().StringVar(&message.MessageStream, "stream", "", "message stream ID")

	return cmd
}

// NewSendTemplateCommand creates the send-template command
func NewSendTemplateCommand() *cobra.Command {
	var (
		message   postmark.TemplatedMessage
		modelJSON string
	)

	cmd := &cobra.Command{
		Use:   "send-template",
		Short: "Send a message rendered from a template",
		Long:  "Send one message rendered from a stored template, addressed by ID or alias",
		RunE: func(cmd *cobra.Command, args []string) error {
			err := requireSenderAndRecipient(message.From, message.To)
			if err != nil {
				return err
			}

			if message.TemplateID == 0 && message.TemplateAlias == "" {
				return constants.ErrTemplateRequired
			}

			message.TemplateModel = map[string]interface{}{}
			if modelJSON != "" {
				err = json.Unmarshal([]byte(modelJSON), &message.TemplateModel)
				if err != nil {
					return fmt.Errorf("failed to parse --model: %w", err)
				}
			}

			client, closeClient, err := createServerClient()
			if err != nil {
				return err
			}
			defer closeClient()

			resp, err := client.Email().SendWithTemplate(context.Background(), &message)
			if err != nil {
				return fmt.Errorf("failed to send templated message: %w", err)
			}

			return renderSendResponses(cmd.OutOrStdout(), []postmark.SendResponse{*resp})
		},
	}

	cmd.Flags().IntVar(&message.TemplateID, "template-id", 0, "template ID")
	cmd.Flags().StringVar(&message.TemplateAlias, "template-alias", "", "template alias")
	cmd.Flags().StringVar(&modelJSON, "model", "", "template model as a JSON object")
	cmd.Flags().StringVar(&message.From, "from", "", "sender address")
	cmd.Flags().StringVar(&message.To, "to", "", "recipient addresses, comma separated")
	cmd.Flags().StringVar(&message.Tag, "tag", "", "tag")
	cmd.Flags().StringVar(&message.MessageStream, "stream", "", "message stream ID")

	return cmd
}

// NewSendBatchCommand creates the send-batch command
func NewSendBatchCommand() *cobra.Command {
	var (
		concurrency int
		chunkSize   int
	)

	cmd := &cobra.Command{
		Use:   "send-batch FILE",
		Short: "Send messages from a JSON file",
		Long: `Send a JSON array of messages. Arrays longer than the batch limit are split
into several batch requests, sent concurrently.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			messages, err := readMessagesFile(args[0])
			if err != nil {
				return err
			}

			client, closeClient, err := createServerClient()
			if err != nil {
				return err
			}
			defer closeClient()

			sender := postmark.NewBatchSender(client.Email(), concurrency)
			sender.SetChunkSize(chunkSize)

			results, err := sender.Send(context.Background(), messages)
			if err != nil {
				return fmt.Errorf("failed to send batch: %w", err)
			}

			responses, sendErr := postmark.CollectResponses(results)

			err = renderSendResponses(cmd.OutOrStdout(), responses)
			if err != nil {
				return err
			}

			if sendErr != nil {
				return fmt.Errorf("some chunks failed: %w", sendErr)
			}

			return nil
		},
	}

	cmd.Flags().IntVar(&concurrency, "concurrency", postmark.DefaultBatchConcurrency, "batch requests sent at once")
	cmd.Flags().IntVar(&chunkSize, "chunk-size", postmark.MaxBatchSize, "messages per batch request")

	return cmd
}

func requireSenderAndRecipient(from, to string) error {
	if from == "" {
		return constants.ErrSenderRequired
	}

	if to == "" {
		return constants.ErrRecipientRequired
	}

	return nil
}

func readMessagesFile(filePath string) ([]postmark.Message, error) {
	err := validateFilePath(filePath)
	if err != nil {
		return nil, err
	}

	// #nosec G304 -- path validated above
	data, err := os.ReadFile(filepath.Clean(filePath))
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", filePath, err)
	}

	var messages []postmark.Message

	err = json.Unmarshal(data, &messages)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", filePath, err)
	}

	return messages, nil
}

func renderSendResponses(w io.Writer, responses []postmark.SendResponse) error {
	return renderOutput(w, responses, func(w io.Writer) error {
		table := tablewriter.NewWriter(w)
		table.Header("To", "Message ID", "Submitted", "Error Code", "Message")

		for _, resp := range responses {
			submitted := ""
			if !resp.SubmittedAt.IsZero() {
				submitted = resp.SubmittedAt.Format(timeFormat)
			}

			_ = table.Append(resp.To, resp.MessageID, submitted, strconv.Itoa(resp.ErrorCode), resp.Message)
		}

		return table.Render()
	})
}
