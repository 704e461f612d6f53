package controller

import "html/template"

// Formulario de pago simulado. El script reproduce el comportamiento del
// gateway de pruebas: 90% de pagos exitosos y 3 segundos de procesamiento.
var plantillaSimulacion = template.Must(template.New("webpay_simulacion").Parse(`
<!DOCTYPE html>
<html lang="es">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>WebPay Plus - Simulación</title>
    <style>
        * {
            margin: 0;
            padding: 0;
            box-sizing: border-box;
        }

        body {
            font-family: Arial, sans-serif;
            background: linear-gradient(135deg, #667eea 0%, #764ba2 100%);
            min-height: 100vh;
            display: flex;
            justify-content: center;
            align-items: center;
        }

        .webpay-container {
            background: white;
            border-radius: 10px;
            box-shadow: 0 10px 30px rgba(0,0,0,0.3);
            max-width: 500px;
            width: 90%;
            overflow: hidden;
        }

        .webpay-header {
            background: #1e3a8a;
            color: white;
            padding: 20px;
            text-align: center;
        }

        .webpay-logo {
            font-size: 24px;
            font-weight: bold;
            margin-bottom: 5px;
        }

        .webpay-subtitle {
            font-size: 14px;
            opacity: 0.9;
        }

        .transaction-info {
            padding: 30px;
            background: #f8fafc;
        }

        .info-row {
            display: flex;
            justify-content: space-between;
            margin-bottom: 15px;
            padding-bottom: 10px;
            border-bottom: 1px solid #e2e8f0;
        }

        .info-label {
            font-weight: bold;
            color: #374151;
        }

        .info-value {
            color: #1f2937;
        }

        .amount {
            font-size: 24px;
            font-weight: bold;
            color: #059669;
        }

        .payment-form {
            padding: 30px;
        }

        .form-group {
            margin-bottom: 20px;
        }

        .form-label {
            display: block;
            margin-bottom: 5px;
            font-weight: bold;
            color: #374151;
        }

        .form-input {
            width: 100%;
            padding: 12px;
            border: 2px solid #d1d5db;
            border-radius: 5px;
            font-size: 16px;
            transition: border-color 0.3s;
        }

        .form-input:focus {
            outline: none;
            border-color: #3b82f6;
        }

        .card-row {
            display: flex;
            gap: 15px;
        }

        .card-row .form-group {
            flex: 1;
        }

        .btn-container {
            display: flex;
            gap: 15px;
            margin-top: 30px;
        }

        .btn {
            flex: 1;
            padding: 15px;
            border: none;
            border-radius: 5px;
            font-size: 16px;
            font-weight: bold;
            cursor: pointer;
            transition: all 0.3s;
        }

        .btn-success {
            background: #059669;
            color: white;
        }

        .btn-success:hover {
            background: #047857;
        }

        .btn-danger {
            background: #dc2626;
            color: white;
        }

        .btn-danger:hover {
            background: #b91c1c;
        }

        .security-info {
            background: #fef3c7;
            padding: 15px;
            margin: 20px 0;
            border-radius: 5px;
            border-left: 4px solid #f59e0b;
        }

        .security-text {
            font-size: 14px;
            color: #92400e;
        }

        .loading {
            display: none;
            text-align: center;
            padding: 20px;
        }

        .spinner {
            border: 4px solid #f3f4f6;
            border-top: 4px solid #3b82f6;
            border-radius: 50%;
            width: 40px;
            height: 40px;
            animation: spin 1s linear infinite;
            margin: 0 auto 15px;
        }

        @keyframes spin {
            0% { transform: rotate(0deg); }
            100% { transform: rotate(360deg); }
        }
    </style>
</head>
<body>
    <div class="webpay-container">
        <div class="webpay-header">
            <div class="webpay-logo">WebPay Plus</div>
            <div class="webpay-subtitle">Transbank - Simulación de Pago</div>
        </div>

        <div class="transaction-info">
            <div class="info-row">
                <span class="info-label">Comercio:</span>
                <span class="info-value">ENACCION RESTAURANT</span>
            </div>
            <div class="info-row">
                <span class="info-label">Orden de Compra:</span>
                <span class="info-value">{{.OrdenCompra}}</span>
            </div>
            <div class="info-row">
                <span class="info-label">Monto a Pagar:</span>
                <span class="info-value amount">${{.Monto}}</span>
            </div>
        </div>

        <div class="payment-form" id="paymentForm">
            <div class="security-info">
                <div class="security-text">
                    🔒 Esta es una simulación de WebPay para pruebas. Usa cualquier número de tarjeta.
                </div>
            </div>

            <form id="cardForm">
                <div class="form-group">
                    <label class="form-label">Número de Tarjeta</label>
                    <input type="text" class="form-input" id="cardNumber" placeholder="4051 8856 0044 6623" maxlength="19" value="4051 8856 0044 6623">
                </div>

                <div class="card-row">
                    <div class="form-group">
                        <label class="form-label">Vencimiento</label>
                        <input type="text" class="form-input" id="expiry" placeholder="MM/AA" maxlength="5" value="12/25">
                    </div>
                    <div class="form-group">
                        <label class="form-label">CVV</label>
                        <input type="text" class="form-input" id="cvv" placeholder="123" maxlength="3" value="123">
                    </div>
                </div>

                <div class="form-group">
                    <label class="form-label">Nombre del Titular</label>
                    <input type="text" class="form-input" id="cardName" placeholder="JUAN PEREZ" value="JUAN PEREZ">
                </div>

                <div class="btn-container">
                    <button type="button" class="btn btn-danger" onclick="cancelarPago()">Cancelar</button>
                    <button type="button" class="btn btn-success" onclick="procesarPago()">Pagar ${{.Monto}}</button>
                </div>
            </form>
        </div>

        <div class="loading" id="loading">
            <div class="spinner"></div>
            <div>Procesando pago...</div>
        </div>
    </div>

    <script>
        var tokenWS = {{.Token}};

        // Formatear número de tarjeta
        document.getElementById('cardNumber').addEventListener('input', function(e) {
            let value = e.target.value.replace(/\s/g, '').replace(/[^0-9]/gi, '');
            let formattedValue = value.match(/.{1,4}/g)?.join(' ') || value;
            e.target.value = formattedValue;
        });

        // Formatear fecha de vencimiento
        document.getElementById('expiry').addEventListener('input', function(e) {
            let value = e.target.value.replace(/\D/g, '');
            if (value.length >= 2) {
                value = value.substring(0,2) + '/' + value.substring(2,4);
            }
            e.target.value = value;
        });

        // Solo números en CVV
        document.getElementById('cvv').addEventListener('input', function(e) {
            e.target.value = e.target.value.replace(/[^0-9]/g, '');
        });

        function procesarPago() {
            document.getElementById('paymentForm').style.display = 'none';
            document.getElementById('loading').style.display = 'block';

            // Simular procesamiento de pago
            setTimeout(() => {
                // Simular pago exitoso (90% de probabilidad)
                const exito = Math.random() > 0.1;

                if (exito) {
                    window.location.href = '/api/webpay/retorno?token_ws=' + tokenWS + '&status=success';
                } else {
                    window.location.href = '/api/webpay/retorno?token_ws=' + tokenWS + '&status=failed';
                }
            }, 3000);
        }

        function cancelarPago() {
            if (confirm('¿Estás seguro de que deseas cancelar el pago?')) {
                window.location.href = '/api/webpay/retorno?token_ws=' + tokenWS + '&status=cancelled';
            }
        }
    </script>
</body>
</html>
`))

// datosSimulacion alimenta la página del formulario de pago.
type datosSimulacion struct {
	OrdenCompra string
	Monto       string
	Token       string
}
