// Package email sends plain-text messages over SMTP via gomail.
package email

import (
	"fmt"
	"log"
	"strconv"

	"gopkg.in/gomail.v2"
)

type Sender interface {
	Send(to, subject, body string) error
}

type SMTPSender struct {
	host     string
	port     int
	username string
	password string
	from     string
}

func NewSMTPSender(host, port, username, password, from string) (*SMTPSender, error) {
	if host == "" {
		return nil, fmt.Errorf("SMTP host is not configured")
	}
	if username == "" {
		return nil, fmt.Errorf("SMTP username is not configured")
	}
	if password == "" {
		return nil, fmt.Errorf("SMTP password is not configured")
	}
	if from == "" {
		return nil, fmt.Errorf("email from address is not configured")
	}

	portNum, err := strconv.Atoi(port)
	if err != nil {
		return nil, fmt.Errorf("invalid SMTP port: %s", port)
	}

	return &SMTPSender{
		host:     host,
		port:     portNum,
		username: username,
		password: password,
		from:     from,
	}, nil
}

func (s *SMTPSender) Send(to, subject, body string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)

	d := gomail.NewDialer(s.host, s.port, s.username, s.password)
	if err := d.DialAndSend(m); err != nil {
		log.Printf("Failed to send email to %s: %v", to, err)
		return fmt.Errorf("failed to send email: %w", err)
	}

	log.Printf("Email sent successfully to: %s", to)
	return nil
}
