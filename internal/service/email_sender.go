package service

import (
	"crypto/tls"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/go-mail/mail/v2"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

type EmailSender struct {
	dialer  *mail.Dialer
	logger  *logrus.Logger
	enabled bool
}

func NewEmailSender(logger *logrus.Logger) *EmailSender {
	smtpHost := os.Getenv("SMTP_HOST")
	smtpPortStr := os.Getenv("SMTP_PORT")
	smtpUser := os.Getenv("SMTP_USER")
	smtpPass := os.Getenv("SMTP_PASS")
	enabled := os.Getenv("EMAIL_SENDER_ENABLED") == "true"
	isInsecureSkipVerify := os.Getenv("INSECURE_SKIP_VERIFY") == "true"

	smtpPort, err := strconv.Atoi(smtpPortStr)
	if err != nil {
		if enabled {
			logger.Fatalf("Erro ao converter SMTP_PORT: %v", err)
		}
		smtpPort = 587
	}

	d := mail.NewDialer(smtpHost, smtpPort, smtpUser, smtpPass)
	d.TLSConfig = &tls.Config{
		ServerName:         smtpHost,
		InsecureSkipVerify: isInsecureSkipVerify,
	}

	return &EmailSender{
		dialer:  d,
		logger:  logger,
		enabled: enabled,
	}
}

// SendPaymentNotification envia a confirmação de um pagamento autorizado
func (es *EmailSender) SendPaymentNotification(email string, valor decimal.Decimal, descricao string) error {
	if !es.enabled {
		es.logger.Warn("Envio de notificações desabilitado")
		return nil
	}

	subject := fmt.Sprintf("Confirmação de pagamento (%s)", descricao)
	content := fmt.Sprintf(`
		<h1>Confirmação de pagamento</h1>
		<p>Descrição: <strong>%s</strong></p>
		<p>Valor: <strong>R$ %s</strong></p>
		<p>Data: <strong>%s</strong></p>
		<small>Esta é uma notificação automática, por favor não responda</small>
	`, descricao, valor.StringFixed(2), time.Now().Format("02/01/2006 15:04"))

	return es.sendEmail(email, subject, content)
}

func (es *EmailSender) sendEmail(to, subject, body string) error {
	m := mail.NewMessage()
	m.SetHeader("From", os.Getenv("SMTP_USER"))
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", body)

	if err := es.dialer.DialAndSend(m); err != nil {
		es.logger.WithError(err).Error("Erro ao enviar o e-mail")
		return fmt.Errorf("não foi possível enviar o e-mail: %w", err)
	}

	es.logger.Infof("E-mail enviado com sucesso para %s", to)
	return nil
}
