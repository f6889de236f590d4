package cmd

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCmd(t *testing.T, args ...string) (string, error) {
	t.Helper()
	for _, key := range []string{"RESEND_API_KEY", "BRAND_NAME", "NOTIFY_TO"} {
		t.Setenv(key, "")
	}

	var out bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&bytes.Buffer{})
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestPreviewNotificationText(t *testing.T) {
	out, err := runCmd(t, "preview", "--company", "Acme", "--message", "Line1\nLine2")
	require.NoError(t, err)

	assert.Contains(t, out, "Subject: New Demo Request - Acme")
	assert.Contains(t, out, "To: [admin@ckscontracting.ca]")
	assert.Contains(t, out, "Reply-To: jo@example.com")
	assert.Contains(t, out, "Phone: Not provided")
	assert.Contains(t, out, "Line1\nLine2")
}

func TestPreviewAcknowledgementHTML(t *testing.T) {
	out, err := runCmd(t, "preview", "--kind", "acknowledgement", "--format", "html", "--name", "Jo Park")
	require.NoError(t, err)

	assert.Contains(t, out, "<!DOCTYPE html>")
	assert.Contains(t, out, "Hi Jo,")
}

func TestPreviewRejectsUnknownKind(t *testing.T) {
	_, err := runCmd(t, "preview", "--kind", "invoice")
	assert.Error(t, err)
}

func TestPreviewRejectsUnknownFormat(t *testing.T) {
	_, err := runCmd(t, "preview", "--format", "pdf")
	assert.Error(t, err)
}

func TestStatus(t *testing.T) {
	out, err := runCmd(t, "status")
	require.NoError(t, err)

	var status map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(out), &status))
	assert.Equal(t, "NOT SET", status["resendApiKey"])
	assert.Equal(t, false, status["isConfigured"])
}

func TestErrorsReportedWithoutUsage(t *testing.T) {
	t.Setenv("RESEND_API_KEY", "")

	var stderr bytes.Buffer
	root := newRootCmd()
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&stderr)
	root.SetArgs([]string{"preview", "--kind", "invoice"})

	require.Error(t, root.Execute())
	assert.Contains(t, stderr.String(), "Error: ")
	assert.NotContains(t, stderr.String(), "Usage:")
}
