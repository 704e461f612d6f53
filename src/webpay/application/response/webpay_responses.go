package response

// IniciarTransaccionResponse devuelve el token y la URL del formulario.
type IniciarTransaccionResponse struct {
	Success bool   `json:"success"`
	Token   string `json:"token"`
	URL     string `json:"url"`
	Message string `json:"message"`
}

// EnvioResponse confirma el despacho de un correo.
type EnvioResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
