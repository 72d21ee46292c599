package server

// @title teamboard API
// @version 1.5.0
// @description Live status of team services, rolling uptime history and a small cookie/JWT login

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @BasePath /
// @schemes http https

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token. The access_token cookie is accepted as well.
