package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/ckscontracting/demo-request/pkg/models"
	"github.com/ckscontracting/demo-request/pkg/templates"
)

type previewOptions struct {
	request models.DemoRequest
	kind    string
	format  string
}

func newPreviewCmd(root *rootOptions) *cobra.Command {
	opts := &previewOptions{}

	cmd := &cobra.Command{
		Use:     "preview",
		Aliases: []string{"p"},
		Short:   "Render a notification or acknowledgement email to stdout",
		Example: `  demo-request preview --format html > lead.html
  demo-request preview --kind acknowledgement --name "Jo Park" --company Acme`,
		RunE: func(cmd *cobra.Command, args []string) error {
			renderer, err := templates.NewRenderer(root.cfg)
			if err != nil {
				return err
			}
			return runPreview(cmd.OutOrStdout(), renderer, opts)
		},
	}

	f := cmd.Flags()
	f.StringVar(&opts.request.Name, "name", "Jo Park", "submitter name")
	f.StringVar(&opts.request.Company, "company", "Acme Contracting", "submitter company")
	f.StringVar(&opts.request.Email, "email", "jo@example.com", "submitter email")
	f.StringVar(&opts.request.Phone, "phone", "", "submitter phone")
	f.StringVar(&opts.request.Message, "message", "We'd like to see scheduling.\nAlso invoicing.", "free-text message")
	f.StringVar(&opts.kind, "kind", "notification", "notification or acknowledgement")
	f.StringVar(&opts.format, "format", "text", "text or html")

	return cmd
}

func runPreview(w io.Writer, renderer *templates.Renderer, opts *previewOptions) error {
	var (
		n   models.Notification
		err error
	)
	switch opts.kind {
	case "notification":
		n, err = renderer.RenderNotification(opts.request)
	case "acknowledgement":
		n, err = renderer.RenderAcknowledgement(opts.request)
	default:
		return fmt.Errorf("unknown kind %q (want notification or acknowledgement)", opts.kind)
	}
	if err != nil {
		return err
	}

	switch opts.format {
	case "text":
		_, err = fmt.Fprintf(w, "From: %s\nTo: %v\nSubject: %s\n", n.From, n.To, n.Subject)
		if err == nil && n.ReplyTo != "" {
			_, err = fmt.Fprintf(w, "Reply-To: %s\n", n.ReplyTo)
		}
		if err == nil {
			_, err = fmt.Fprintf(w, "\n%s", n.Text)
		}
	case "html":
		_, err = io.WriteString(w, n.HTML)
	default:
		return fmt.Errorf("unknown format %q (want text or html)", opts.format)
	}
	return err
}
