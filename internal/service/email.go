package service

import (
	"context"
	"fmt"

	"gopkg.in/gomail.v2"
)

type emailService struct {
	host     string
	port     int
	username string
	password string
	from     string
}

func NewEmailService(host string, port int, username, password, from string) EmailService {
	return &emailService{
		host:     host,
		port:     port,
		username: username,
		password: password,
		from:     from,
	}
}

func (s *emailService) SendPendencyNotice(ctx context.Context, email, name, code string, valueCents, delayMinutes int32) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", email)
	m.SetHeader("Subject", "Late return fee")

	body := fmt.Sprintf(
		"Hello %s,\n\nYour rental %s was returned %d minutes past the allowed window. A fee of $%d.%02d was registered and must be settled before you can rent again.\n\nBest regards,\nThe EquipRent Team",
		name, code, delayMinutes, valueCents/100, valueCents%100)
	m.SetBody("text/plain", body)

	return s.send(m)
}

func (s *emailService) SendCancellationNotice(ctx context.Context, email, name, code string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", email)
	m.SetHeader("Subject", "Reservation cancelled")

	body := fmt.Sprintf(
		"Hello %s,\n\nYour reservation %s was cancelled because the pickup time limit was exceeded. The equipment is available for booking again.\n\nBest regards,\nThe EquipRent Team",
		name, code)
	m.SetBody("text/plain", body)

	return s.send(m)
}

func (s *emailService) send(m *gomail.Message) error {
	d := gomail.NewDialer(s.host, s.port, s.username, s.password)
	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}
