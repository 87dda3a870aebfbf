package mailer

// EmailJob is the JSON payload put on the RabbitMQ queue for sending email.
// Either Template+Data (rendered by the worker) or Subject with Text/HTML.
type EmailJob struct {
	To       string         `json:"to"`
	Subject  string         `json:"subject,omitempty"`
	Text     string         `json:"text,omitempty"`
	HTML     string         `json:"html,omitempty"`
	Template string         `json:"template,omitempty"` // "welcome", "booking_confirmation"
	Data     map[string]any `json:"data,omitempty"`
}

// Prepare resolves the subject and bodies of a job, rendering its template if set.
func (j *EmailJob) Prepare(render func(name string, data any) (string, string, string, error)) (subject, text, html string, err error) {
	if j.Template == "" {
		return j.Subject, j.Text, j.HTML, nil
	}
	if j.Data == nil {
		j.Data = map[string]any{}
	}
	if v, ok := j.Data["Email"]; !ok || v == "" {
		j.Data["Email"] = j.To
	}
	return render(j.Template, j.Data)
}
