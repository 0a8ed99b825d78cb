package http

import (
	"os"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
)

// RegisterSwagger monta la UI de Swagger en /docs si el archivo de
// especificación existe. El middleware entra en pánico cuando el archivo
// falta, así que sin archivo no se monta nada y se devuelve false para que
// el caller lo deje registrado en el log.
func RegisterSwagger(app *fiber.App, filePath string) bool {
	if _, err := os.Stat(filePath); err != nil {
		return false
	}
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: filePath,
		Path:     "docs",
		Title:    "Stock Ledger API",
	}))
	return true
}
