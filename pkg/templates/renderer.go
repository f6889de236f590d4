package templates

import (
	"bytes"
	"embed"
	"fmt"
	htmltemplate "html/template"
	"strings"
	texttemplate "text/template"
	"time"

	"github.com/ckscontracting/demo-request/pkg/config"
	"github.com/ckscontracting/demo-request/pkg/models"
)

//go:embed files/*.tmpl
var files embed.FS

const (
	notificationHTML    = "notification.html.tmpl"
	notificationText    = "notification.txt.tmpl"
	acknowledgementHTML = "acknowledgement.html.tmpl"
	acknowledgementText = "acknowledgement.txt.tmpl"
)

// Renderer turns a demo request into outbound notifications
type Renderer struct {
	html       *htmltemplate.Template
	text       *texttemplate.Template
	brand      config.BrandConfig
	notifyTo   string
	notifyFrom string
	ackFrom    string
	now        func() time.Time
}

type templateData struct {
	Request   models.DemoRequest
	Brand     config.BrandConfig
	FirstName string
	Received  string
	Year      int
}

// NewRenderer parses the embedded email templates
func NewRenderer(cfg *config.Config) (*Renderer, error) {
	html, err := htmltemplate.New("html").
		Funcs(htmltemplate.FuncMap{"nl2br": nl2br}).
		ParseFS(files, "files/*.html.tmpl")
	if err != nil {
		return nil, fmt.Errorf("error parsing html templates: %w", err)
	}

	text, err := texttemplate.New("text").ParseFS(files, "files/*.txt.tmpl")
	if err != nil {
		return nil, fmt.Errorf("error parsing text templates: %w", err)
	}

	return &Renderer{
		html:       html,
		text:       text,
		brand:      cfg.Brand,
		notifyTo:   cfg.NotifyTo,
		notifyFrom: cfg.NotifyFrom,
		ackFrom:    cfg.AckFrom,
		now:        time.Now,
	}, nil
}

// WithClock replaces the time source used for the "Received" stamp
func (r *Renderer) WithClock(now func() time.Time) *Renderer {
	r.now = now
	return r
}

// NotificationSubject is the subject line of the internal notification
func NotificationSubject(company string) string {
	return "New Demo Request - " + company
}

// RenderNotification builds the internal "new lead" message. Replies go to the submitter.
func (r *Renderer) RenderNotification(req models.DemoRequest) (models.Notification, error) {
	html, text, err := r.render(notificationHTML, notificationText, req)
	if err != nil {
		return models.Notification{}, err
	}

	return models.Notification{
		From:    r.notifyFrom,
		To:      []string{r.notifyTo},
		Subject: NotificationSubject(req.Company),
		HTML:    html,
		Text:    text,
		ReplyTo: req.Email,
	}, nil
}

// RenderAcknowledgement builds the thank-you message sent back to the submitter
func (r *Renderer) RenderAcknowledgement(req models.DemoRequest) (models.Notification, error) {
	html, text, err := r.render(acknowledgementHTML, acknowledgementText, req)
	if err != nil {
		return models.Notification{}, err
	}

	return models.Notification{
		From:    r.ackFrom,
		To:      []string{req.Email},
		Subject: fmt.Sprintf("Thank you for requesting a %s demo!", r.brand.Name),
		HTML:    html,
		Text:    text,
	}, nil
}

func (r *Renderer) render(htmlName, textName string, req models.DemoRequest) (string, string, error) {
	now := r.now()
	data := templateData{
		Request:   req,
		Brand:     r.brand,
		FirstName: FirstName(req.Name),
		Received:  now.Format("Jan 2, 2006, 3:04:05 PM MST"),
		Year:      now.Year(),
	}

	var html bytes.Buffer
	if err := r.html.ExecuteTemplate(&html, htmlName, data); err != nil {
		return "", "", fmt.Errorf("error rendering %s: %w", htmlName, err)
	}

	var text bytes.Buffer
	if err := r.text.ExecuteTemplate(&text, textName, data); err != nil {
		return "", "", fmt.Errorf("error rendering %s: %w", textName, err)
	}

	return html.String(), text.String(), nil
}

// FirstName returns the first word of a full name
func FirstName(name string) string {
	fields := strings.Fields(name)
	if len(fields) == 0 {
		return name
	}
	return fields[0]
}

// nl2br escapes s and turns each line break into <br>
func nl2br(s string) htmltemplate.HTML {
	lines := strings.Split(strings.ReplaceAll(s, "\r\n", "\n"), "\n")
	for i, line := range lines {
		lines[i] = htmltemplate.HTMLEscapeString(line)
	}
	return htmltemplate.HTML(strings.Join(lines, "<br>"))
}
