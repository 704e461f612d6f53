package mail

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"time"

	"enaccion/src/webpay/domain/entity"
	"enaccion/src/webpay/domain/port"

	"gopkg.in/gomail.v2"
)

// GomailMailer envía los correos transaccionales por SMTP
type GomailMailer struct {
	dialer  *gomail.Dialer
	desde   string
	timeout time.Duration
}

// NewGomailMailer crea una nueva instancia del mailer
func NewGomailMailer(host string, puerto int, usuario, clave string, timeout time.Duration) port.Mailer {
	return &GomailMailer{
		dialer:  gomail.NewDialer(host, puerto, usuario, clave),
		desde:   usuario,
		timeout: timeout,
	}
}

// EnviarComprobante renderiza el comprobante de pago y lo envía.
func (m *GomailMailer) EnviarComprobante(ctx context.Context, email string, t *entity.Transaccion, detalles []entity.DetalleComprobante) error {
	var cuerpo bytes.Buffer
	datos := nuevosDatosComprobante(t, detalles, time.Now())
	if err := plantillaComprobante.Execute(&cuerpo, datos); err != nil {
		return fmt.Errorf("error rendering comprobante: %w", err)
	}

	asunto := fmt.Sprintf("Comprobante de Pago - Orden %s", t.OrdenCompra)
	return m.enviar(ctx, email, asunto, cuerpo.String())
}

// EnviarLinkPago renderiza el correo con el enlace de pago y lo envía.
func (m *GomailMailer) EnviarLinkPago(ctx context.Context, email string, link entity.LinkPago) error {
	var cuerpo bytes.Buffer
	datos := datosLinkPago{
		NumeroOrden: link.NumeroOrden,
		Fecha:       time.Now().Format("02/01/2006"),
		Detalles:    link.Detalles,
		Monto:       link.Monto,
		URL:         link.URL,
	}
	if err := plantillaLinkPago.Execute(&cuerpo, datos); err != nil {
		return fmt.Errorf("error rendering link de pago: %w", err)
	}

	asunto := fmt.Sprintf("🍽️ Link de Pago - Orden #%s - ENACCION RESTAURANT", link.NumeroOrden)
	return m.enviar(ctx, email, asunto, cuerpo.String())
}

// enviar hace el envío SMTP acotado por el timeout configurado. El
// contexto de la petición también corta la espera.
func (m *GomailMailer) enviar(ctx context.Context, destino, asunto, html string) error {
	mensaje := gomail.NewMessage()
	mensaje.SetHeader("From", m.desde)
	mensaje.SetHeader("To", destino)
	mensaje.SetHeader("Subject", asunto)
	mensaje.SetBody("text/html", html)

	ctx, cancel := context.WithTimeout(ctx, m.timeout)
	defer cancel()

	errCh := make(chan error, 1)
	go func() {
		errCh <- m.dialer.DialAndSend(mensaje)
	}()

	select {
	case <-ctx.Done():
		return fmt.Errorf("%w: %v", entity.ErrEnvioCorreo, ctx.Err())
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("%w: %v", entity.ErrEnvioCorreo, err)
		}
	}

	log.Printf("Email enviado a %s: %s", destino, asunto)
	return nil
}
