package dto

// ConfigResponse configuración Odoo vigente. La contraseña nunca se devuelve.
type ConfigResponse struct {
	URL      string `json:"url"`
	DB       string `json:"db"`
	Username string `json:"username"`
}

// ConfigRequest nueva configuración de conexión enviada por el operador.
type ConfigRequest struct {
	URL      string `json:"url" form:"url"`
	DB       string `json:"db" form:"db"`
	Username string `json:"username" form:"username"`
	Password string `json:"password" form:"password"`
}

// ConfigTestResponse resultado de guardar y probar la conexión.
type ConfigTestResponse struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	Connected bool   `json:"connected"`
}
