package email

import (
	"fmt"
	"net/smtp"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// Sender delivers one job synchronously.
type Sender interface {
	Deliver(job Job) error
}

type smtpSender struct {
	from     string
	fromName string
	host     string
	port     string
	user     string
	pass     string
}

func (s *smtpSender) Deliver(job Job) error {
	message := fmt.Sprintf("From: %s <%s>\r\n", s.fromName, s.from)
	message += fmt.Sprintf("To: %s\r\n", job.To)
	message += fmt.Sprintf("Subject: %s\r\n", job.Subject)
	message += "Content-Type: text/plain; charset=UTF-8\r\n"
	message += "\r\n" + job.Body

	var auth smtp.Auth
	if s.user != "" && s.pass != "" {
		auth = smtp.PlainAuth("", s.user, s.pass, s.host)
	}

	return smtp.SendMail(s.host+":"+s.port, auth, s.from, []string{job.To}, []byte(message))
}

type sendGridSender struct {
	client *sendgrid.Client
	from   *mail.Email
}

func newSendGridSender(apiKey, from, fromName string) *sendGridSender {
	return &sendGridSender{
		client: sendgrid.NewSendClient(apiKey),
		from:   mail.NewEmail(fromName, from),
	}
}

func (s *sendGridSender) message(job Job) *mail.SGMailV3 {
	return mail.NewSingleEmail(s.from, job.Subject, mail.NewEmail(job.Name, job.To), job.Body, "")
}

func (s *sendGridSender) Deliver(job Job) error {
	response, err := s.client.Send(s.message(job))
	if err != nil {
		return fmt.Errorf("sendgrid send: %w", err)
	}
	if response.StatusCode < 200 || response.StatusCode >= 300 {
		return fmt.Errorf("sendgrid returned status %d: %s", response.StatusCode, response.Body)
	}
	return nil
}
