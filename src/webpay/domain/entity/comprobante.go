package entity

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// DetalleComprobante es una línea facturada que aparece en el comprobante.
type DetalleComprobante struct {
	NombrePlato    string `json:"nombre_plato"`
	Cantidad       int    `json:"cantidad"`
	PrecioUnitario int    `json:"precio_unitario"`
	TotalParcial   int    `json:"total_parcial"`
}

// IVA calcula el impuesto (19%) sobre el monto, redondeado al peso.
func IVA(monto decimal.Decimal) decimal.Decimal {
	return monto.Mul(decimal.NewFromFloat(0.19)).Round(0)
}

// FormatoMilesInt separa miles con punto, como muestra la boleta.
func FormatoMilesInt(n int) string {
	s := strconv.Itoa(n)
	negativo := strings.HasPrefix(s, "-")
	if negativo {
		s = s[1:]
	}

	var b strings.Builder
	for i, d := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(d)
	}
	if negativo {
		return "-" + b.String()
	}
	return b.String()
}

// FormatoPesos imprime un monto redondeado al peso con separador de miles.
func FormatoPesos(monto decimal.Decimal) string {
	return FormatoMilesInt(int(monto.Round(0).IntPart()))
}

// LinkPago agrupa los datos del correo con el enlace de pago.
type LinkPago struct {
	NumeroOrden string
	Monto       decimal.Decimal
	URL         string
	Detalles    []DetalleComprobante
}
