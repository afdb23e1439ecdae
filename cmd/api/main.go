package main

import (
	"os"

	_ "resident_service/docs"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Resident Maintenance API
// @version         1.0
// @description     Resident maintenance booking: sign-in, guided intake with advisory hints, and per-session orders.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the session token.

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
