package web

import "strconv"

//go:generate templ generate

// DefaultDismissAfterMillis is how long the success state shows before the form resets
const DefaultDismissAfterMillis = 2000

// FormProps configures the demo request page
type FormProps struct {
	Brand              string
	Endpoint           string
	DismissAfterMillis int
}

func (p FormProps) dismissAfter() string {
	if p.DismissAfterMillis <= 0 {
		return strconv.Itoa(DefaultDismissAfterMillis)
	}
	return strconv.Itoa(p.DismissAfterMillis)
}

type field struct {
	ID          string
	Label       string
	Type        string
	Placeholder string
	Required    bool
}

var fields = []field{
	{ID: "name", Label: "Full Name", Type: "text", Placeholder: "John Doe", Required: true},
	{ID: "company", Label: "Company", Type: "text", Placeholder: "Acme Construction", Required: true},
	{ID: "email", Label: "Email", Type: "email", Placeholder: "john@company.com", Required: true},
	{ID: "phone", Label: "Phone", Type: "tel", Placeholder: "(555) 123-4567"},
}
