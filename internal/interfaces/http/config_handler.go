package http

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/ithesk/odoo-scanner/internal/application/dto"
	"github.com/ithesk/odoo-scanner/pkg/config"
)

// ConnectionTester prueba de conexión contra Odoo (lo implementa el gateway).
type ConnectionTester interface {
	Authenticate(ctx context.Context) (int64, error)
}

// ConfigHandler gestiona la configuración de conexión a Odoo.
type ConfigHandler struct {
	cfg    *config.Config
	tester ConnectionTester
}

// NewConfigHandler construye el handler.
func NewConfigHandler(cfg *config.Config, tester ConnectionTester) *ConfigHandler {
	return &ConfigHandler{cfg: cfg, tester: tester}
}

// Get devuelve la configuración vigente sin la contraseña.
func (h *ConfigHandler) Get(c *fiber.Ctx) error {
	odoo := h.cfg.OdooSnapshot()
	return c.JSON(dto.ConfigResponse{URL: odoo.URL, DB: odoo.DB, Username: odoo.Username})
}

// Update guarda la nueva configuración, reescribe config.json y prueba la
// conexión. Una conexión fallida no revierte el guardado: el operador puede
// estar configurando un Odoo que aún no está accesible.
func (h *ConfigHandler) Update(c *fiber.Ctx) error {
	var in dto.ConfigRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.URL == "" || in.DB == "" || in.Username == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "VALIDATION", Message: "url, db y username son requeridos"})
	}

	if err := h.cfg.Reconfigure(config.OdooConfig{
		URL:      in.URL,
		DB:       in.DB,
		Username: in.Username,
		Password: in.Password,
	}); err != nil {
		return respondError(c, err)
	}

	if _, err := h.tester.Authenticate(c.Context()); err != nil {
		return c.JSON(dto.ConfigTestResponse{
			Success:   true,
			Connected: false,
			Message:   "configuración guardada; error de conexión: " + err.Error(),
		})
	}
	return c.JSON(dto.ConfigTestResponse{Success: true, Connected: true, Message: "conexión exitosa a Odoo"})
}
