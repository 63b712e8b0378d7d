package mail

import (
	"fmt"

	gomail "gopkg.in/gomail.v2"

	"github.com/jhoicas/Suministros-api/internal/application/ports"
	"github.com/jhoicas/Suministros-api/pkg/config"
	"github.com/jhoicas/Suministros-api/pkg/logger"
)

var _ ports.Notifier = (*SMTPNotifier)(nil)

// SMTPNotifier envía credenciales temporales por SMTP. Si no hay host
// configurado opera en modo no-op (útil en desarrollo y tests).
type SMTPNotifier struct {
	cfg config.SMTPConfig
	log *logger.Logger
}

// NewSMTPNotifier construye el notificador.
func NewSMTPNotifier(cfg config.SMTPConfig, log *logger.Logger) *SMTPNotifier {
	return &SMTPNotifier{cfg: cfg, log: log}
}

// SendTemporaryPassword envía la contraseña temporal al usuario recién
// creado. El caller trata el envío como best-effort: registra el error y
// sigue.
func (n *SMTPNotifier) SendTemporaryPassword(to, name, temporary string) error {
	if !n.cfg.Enabled() {
		n.log.Debug().Str("to", to).Msg("SMTP no configurado, se omite el envío")
		return nil
	}

	m := gomail.NewMessage()
	m.SetHeader("From", n.cfg.From)
	m.SetHeader("To", to)
	m.SetHeader("Subject", "Credencial temporal de acceso")
	m.SetBody("text/plain", fmt.Sprintf(
		"Hola %s,\n\nTu cuenta fue creada. Contraseña temporal: %s\n\n"+
			"Deberás cambiarla en tu primer inicio de sesión.\n", name, temporary))

	d := gomail.NewDialer(n.cfg.Host, n.cfg.Port, n.cfg.Username, n.cfg.Password)
	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("enviar correo a %s: %w", to, err)
	}
	return nil
}
