package mail

import (
	"html/template"
	"time"

	"enaccion/src/webpay/domain/entity"

	"github.com/shopspring/decimal"
)

var funcionesPlantilla = template.FuncMap{
	"pesos":    entity.FormatoPesos,
	"pesosInt": entity.FormatoMilesInt,
}

var plantillaComprobante = template.Must(template.New("comprobante").Funcs(funcionesPlantilla).Parse(`
<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <style>
        body { font-family: Arial, sans-serif; margin: 0; padding: 20px; background: #f5f5f5; }
        .comprobante { background: white; max-width: 600px; margin: 0 auto; padding: 30px; border-radius: 10px; box-shadow: 0 4px 6px rgba(0,0,0,0.1); }
        .header { text-align: center; border-bottom: 2px solid #1e3a8a; padding-bottom: 20px; margin-bottom: 30px; }
        .logo { font-size: 28px; font-weight: bold; color: #1e3a8a; margin-bottom: 10px; }
        .subtitle { color: #666; font-size: 16px; }
        .info-section { margin-bottom: 25px; }
        .info-row { display: flex; justify-content: space-between; margin-bottom: 8px; padding: 5px 0; }
        .label { font-weight: bold; color: #333; }
        .value { color: #666; }
        .success-badge { background: #10b981; color: white; padding: 8px 16px; border-radius: 20px; font-weight: bold; display: inline-block; margin: 10px 0; }
        .items-table { width: 100%; border-collapse: collapse; margin: 20px 0; }
        .items-table th, .items-table td { padding: 12px; text-align: left; border-bottom: 1px solid #e5e7eb; }
        .items-table th { background: #f9fafb; font-weight: bold; }
        .total-section { background: #f9fafb; padding: 20px; border-radius: 8px; margin-top: 20px; }
        .total-amount { font-size: 24px; font-weight: bold; color: #1e3a8a; text-align: right; }
        .footer { text-align: center; margin-top: 30px; padding-top: 20px; border-top: 1px solid #e5e7eb; color: #666; font-size: 14px; }
    </style>
</head>
<body>
    <div class="comprobante">
        <div class="header">
            <div class="logo">ENACCION RESTAURANT</div>
            <div class="subtitle">Comprobante de Pago Electrónico</div>
            <div class="success-badge">✓ PAGO EXITOSO</div>
        </div>

        <div class="info-section">
            <div class="info-row">
                <span class="label">Número de Orden:</span>
                <span class="value">{{.OrdenCompra}}</span>
            </div>
            <div class="info-row">
                <span class="label">Fecha de Pago:</span>
                <span class="value">{{.Fecha}}</span>
            </div>
            <div class="info-row">
                <span class="label">Hora de Pago:</span>
                <span class="value">{{.Hora}}</span>
            </div>
            <div class="info-row">
                <span class="label">Método de Pago:</span>
                <span class="value">WebPay Plus</span>
            </div>
            <div class="info-row">
                <span class="label">Código de Autorización:</span>
                <span class="value">{{.CodigoAutorizacion}}</span>
            </div>
        </div>

        <table class="items-table">
            <thead>
                <tr>
                    <th>Producto</th>
                    <th>Cantidad</th>
                    <th>Precio Unit.</th>
                    <th>Total</th>
                </tr>
            </thead>
            <tbody>
                {{range .Detalles}}
                <tr>
                    <td>{{.NombrePlato}}</td>
                    <td>{{.Cantidad}}</td>
                    <td>${{pesosInt .PrecioUnitario}}</td>
                    <td>${{pesosInt .TotalParcial}}</td>
                </tr>
                {{end}}
            </tbody>
        </table>

        <div class="total-section">
            <div class="info-row">
                <span class="label">Subtotal:</span>
                <span class="value">${{pesos .Monto}}</span>
            </div>
            <div class="info-row">
                <span class="label">IVA (19%):</span>
                <span class="value">${{pesos .IVA}}</span>
            </div>
            <div class="total-amount">
                Total: ${{pesos .Monto}}
            </div>
        </div>

        <div class="footer">
            <p>Gracias por su preferencia</p>
            <p>Este es un comprobante electrónico válido</p>
            <p>RUT: 11.111.111-1 | ENACCION RESTAURANT</p>
        </div>
    </div>
</body>
</html>
`))

var plantillaLinkPago = template.Must(template.New("link_pago").Funcs(funcionesPlantilla).Parse(`
<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <style>
        body { font-family: Arial, sans-serif; margin: 0; padding: 20px; background: #f5f5f5; }
        .email-container { background: white; max-width: 600px; margin: 0 auto; border-radius: 10px; overflow: hidden; box-shadow: 0 4px 6px rgba(0,0,0,0.1); }
        .header { background: #1e3a8a; color: white; padding: 30px; text-align: center; }
        .logo { font-size: 28px; font-weight: bold; margin-bottom: 10px; }
        .subtitle { font-size: 16px; opacity: 0.9; }
        .content { padding: 30px; }
        .order-info { background: #f8fafc; padding: 20px; border-radius: 8px; margin: 20px 0; }
        .info-row { display: flex; justify-content: space-between; margin-bottom: 10px; }
        .label { font-weight: bold; color: #374151; }
        .value { color: #1f2937; }
        .amount { font-size: 24px; font-weight: bold; color: #059669; text-align: center; margin: 20px 0; }
        .pay-button { display: block; width: 100%; max-width: 300px; margin: 30px auto; padding: 15px 30px; background: #059669; color: white; text-decoration: none; border-radius: 8px; text-align: center; font-weight: bold; font-size: 18px; }
        .pay-button:hover { background: #047857; color: white; text-decoration: none; }
        .items-list { margin: 20px 0; }
        .item { padding: 10px 0; border-bottom: 1px solid #e5e7eb; }
        .footer { background: #f9fafb; padding: 20px; text-align: center; color: #666; font-size: 14px; }
        .security-note { background: #fef3c7; padding: 15px; border-radius: 5px; margin: 20px 0; border-left: 4px solid #f59e0b; }
        .security-text { color: #92400e; font-size: 14px; }
    </style>
</head>
<body>
    <div class="email-container">
        <div class="header">
            <div class="logo">🍽️ ENACCION RESTAURANT</div>
            <div class="subtitle">Link de Pago - Orden #{{.NumeroOrden}}</div>
        </div>

        <div class="content">
            <h2>¡Hola! 👋</h2>
            <p>Te enviamos el link para que puedas pagar tu orden de manera fácil y segura desde cualquier dispositivo.</p>

            <div class="order-info">
                <div class="info-row">
                    <span class="label">Número de Orden:</span>
                    <span class="value">#{{.NumeroOrden}}</span>
                </div>
                <div class="info-row">
                    <span class="label">Fecha:</span>
                    <span class="value">{{.Fecha}}</span>
                </div>
            </div>

            <div class="items-list">
                <h4>Detalles de tu orden:</h4>
                {{range .Detalles}}
                <div class="item">
                    {{.Cantidad}}x {{.NombrePlato}} - ${{pesosInt .TotalParcial}}
                </div>
                {{end}}
            </div>

            <div class="amount">
                Total a Pagar: ${{pesos .Monto}}
            </div>

            <a href="{{.URL}}" class="pay-button">
                💳 PAGAR AHORA
            </a>

            <div class="security-note">
                <div class="security-text">
                    🔒 <strong>Pago Seguro:</strong> Este link te llevará a nuestro portal de pagos seguro.
                    Tu información está protegida con encriptación de nivel bancario.
                </div>
            </div>

            <p><strong>¿Necesitas ayuda?</strong></p>
            <p>Si tienes alguna pregunta o problema con el pago, no dudes en contactarnos.</p>
        </div>

        <div class="footer">
            <p>Gracias por elegir ENACCION RESTAURANT</p>
            <p>Este email fue enviado automáticamente, por favor no respondas a este mensaje.</p>
        </div>
    </div>
</body>
</html>
`))

type datosComprobante struct {
	OrdenCompra        string
	Fecha              string
	Hora               string
	CodigoAutorizacion string
	Detalles           []entity.DetalleComprobante
	Monto              decimal.Decimal
	IVA                decimal.Decimal
}

type datosLinkPago struct {
	NumeroOrden string
	Fecha       string
	Detalles    []entity.DetalleComprobante
	Monto       decimal.Decimal
	URL         string
}

func nuevosDatosComprobante(t *entity.Transaccion, detalles []entity.DetalleComprobante, ahora time.Time) datosComprobante {
	codigo := "N/A"
	if t.Resultado != nil && t.Resultado.AuthorizationCode != "" {
		codigo = t.Resultado.AuthorizationCode
	}

	return datosComprobante{
		OrdenCompra:        t.OrdenCompra,
		Fecha:              ahora.Format("02/01/2006"),
		Hora:               ahora.Format("15:04:05"),
		CodigoAutorizacion: codigo,
		Detalles:           detalles,
		Monto:              t.Monto,
		IVA:                entity.IVA(t.Monto),
	}
}
