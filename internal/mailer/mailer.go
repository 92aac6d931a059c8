package mailer

import (
	"sitera-backend/config"

	"gopkg.in/gomail.v2"
)

// Mailer mengirim email peringatan masa berlaku lewat SMTP.
type Mailer struct {
	dialer *gomail.Dialer
	sender string
}

// New mengembalikan nil jika SMTP tidak dikonfigurasi; pemanggil wajib
// memperlakukan nil sebagai "email mati".
func New(cfg *config.AppConfig) *Mailer {
	if cfg.SMTPHost == "" {
		return nil
	}
	return &Mailer{
		dialer: gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword),
		sender: cfg.SMTPSender,
	}
}

func (m *Mailer) Kirim(tujuan, subjek, isi string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.sender)
	msg.SetHeader("To", tujuan)
	msg.SetHeader("Subject", subjek)
	msg.SetBody("text/plain", isi)
	return m.dialer.DialAndSend(msg)
}
