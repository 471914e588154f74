// Package config manages application configuration for the Gatherly API.
//
// Configuration is loaded from environment variables with sensible development
// defaults and validated before the server starts. It is organized into
// logical groups:
//
//   - ServerConfig: HTTP server settings (port, timeouts, CORS origins)
//   - DatabaseConfig: SurrealDB connection settings
//   - JWTConfig: token signing settings
//
// Key environment variables:
//
//	SERVER_PORT         - HTTP server port (default: 8080)
//	SERVER_ENV          - development | production | test
//	DB_HOST, DB_PORT    - SurrealDB endpoint
//	DB_USER, DB_PASSWORD
//	DB_NAMESPACE, DB_DATABASE
//	JWT_SECRET          - HS256 signing secret (required in production)
//	JWT_EXPIRATION_MINS - access token lifetime
package config
