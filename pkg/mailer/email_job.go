package mailer

import "fmt"

// EmailJob is the JSON payload put on the RabbitMQ queue for sending email.
type EmailJob struct {
	To       string         `json:"to"`
	Subject  string         `json:"subject,omitempty"`
	Text     string         `json:"text,omitempty"`
	Template string         `json:"template,omitempty"`
	Data     map[string]any `json:"data,omitempty"`
}

const TemplateWelcome = "welcome"

// WelcomeJob builds the registration email job.
func WelcomeJob(to, firstName string) EmailJob {
	return EmailJob{
		To:       to,
		Subject:  "Welcome to Taskboard",
		Template: TemplateWelcome,
		Data:     map[string]any{"FirstName": firstName},
	}
}

// RenderText produces the plain-text body for a job. Unknown templates fall
// back to the job's Text field.
func RenderText(job EmailJob) string {
	switch job.Template {
	case TemplateWelcome:
		name := fmt.Sprintf("%v", job.Data["FirstName"])
		if name == "" || name == "<nil>" {
			name = "there"
		}
		return fmt.Sprintf("Hi %s,\n\nYour Taskboard account is ready. Log in and start tracking tasks.\n", name)
	default:
		return job.Text
	}
}
