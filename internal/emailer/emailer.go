package emailer

import (
	"context"
	"errors"
	"net/smtp"
	"time"

	"github.com/Nazarious-ucu/newsletter-manager/internal/config"
	"go.uber.org/zap"
)

type sendMailFunc func(addr string, a smtp.Auth, from string, to []string, msg []byte) error

// SMTPService wraps smtp.SendMail with structured logging.
type SMTPService struct {
	user     string
	host     string
	port     string
	password string
	From     string
	logger   *zap.Logger
	sendMail sendMailFunc
}

func NewSMTPService(cfg config.Email, logger *zap.Logger) (*SMTPService, error) {
	if cfg.Host == "" || cfg.Port == "" || cfg.From == "" {
		return nil, errors.New("smtp host, port and sender must be set")
	}

	return &SMTPService{
		user:     cfg.User,
		host:     cfg.Host,
		port:     cfg.Port,
		password: cfg.Password,
		From:     cfg.From,
		logger:   logger.With(zap.String("component", "SMTPService")),
		sendMail: smtp.SendMail,
	}, nil
}

// Send delivers one message. net/smtp is not cancellable, so ctx is only checked before dialing.
func (e *SMTPService) Send(ctx context.Context, to, subject, additionalHeaders, body string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	start := time.Now()
	e.logger.Debug("sending email", zap.String("to", to), zap.String("subject", subject))

	var auth smtp.Auth
	if e.user != "" {
		auth = smtp.PlainAuth("", e.user, e.password, e.host)
	}

	msg := "From: " + e.From + "\r\n" +
		"To: " + to + "\r\n" +
		"Subject: " + subject + "\r\n" +
		additionalHeaders + "\r\n\r\n" +
		body

	err := e.sendMail(e.host+":"+e.port, auth, e.From, []string{to}, []byte(msg))
	duration := time.Since(start)

	if err != nil {
		e.logger.Error("email send failed",
			zap.String("to", to),
			zap.String("subject", subject),
			zap.Duration("duration", duration),
			zap.Error(err),
		)
		return err
	}

	e.logger.Info("email sent successfully",
		zap.String("to", to),
		zap.String("subject", subject),
		zap.Duration("duration", duration),
	)
	return nil
}
