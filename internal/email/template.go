package email

import (
	"bytes"
	"fmt"
	"html/template"
	"time"
)

var applicationReceivedTmpl = template.Must(template.New("application_received").Parse(`<!DOCTYPE html>
<html>
<body style="font-family: sans-serif; color: #1f2933;">
  <h2>We received your application</h2>
  <p>Hi {{.ApplicantName}},</p>
  <p>
    Your rental application for <strong>{{.PropertyTitle}}</strong>
    at {{.PropertyAddress}} was submitted on {{.SubmittedAt.Format "January 2, 2006"}}.
  </p>
  <p>
    Monthly rent at the time of your application: <strong>${{printf "%.2f" .Rent}}</strong>.
    These terms are locked to your application even if the listing changes later.
  </p>
  <p>The owner has been notified and will review your application shortly.</p>
  <p>The Rentora team</p>
</body>
</html>`))

// ApplicationReceivedData fills the submission confirmation email.
type ApplicationReceivedData struct {
	ApplicantName   string
	PropertyTitle   string
	PropertyAddress string
	Rent            float64
	SubmittedAt     time.Time
}

// ApplicationReceived renders the confirmation sent to an applicant right
// after submission.
func ApplicationReceived(to string, data ApplicationReceivedData) (Message, error) {
	var buf bytes.Buffer
	if err := applicationReceivedTmpl.Execute(&buf, data); err != nil {
		return Message{}, fmt.Errorf("rendering application received email: %w", err)
	}

	return Message{
		To:      to,
		Subject: fmt.Sprintf("Application received for %s", data.PropertyTitle),
		HTML:    buf.String(),
	}, nil
}
