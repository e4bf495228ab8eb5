// Package config provides configuration loading and validation for fsroute.
//
// The package handles YAML configuration files, environment variables, and CLI
// flags with automatic merging and validation using go-playground/validator.
//
// # Configuration Precedence
//
// Values are loaded in this order (later sources override earlier ones):
//
//  1. Default values
//  2. Configuration file(s) - multiple files merged left-to-right
//  3. Environment variables (FSROUTE_ prefix)
//  4. CLI flags
//
// # Usage
//
//	cfg, err := config.Load([]string{"config.yaml"}, cmd.Flags())
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Store in context for subcommands
//	ctx = config.WithContext(ctx, cfg)
//
//	// Retrieve later
//	cfg, err = config.FromContext(ctx)
//
// # Environment Variables
//
// All config keys map to environment variables with FSROUTE_ prefix:
//   - server.port → FSROUTE_SERVER_PORT
//   - routes.dir → FSROUTE_ROUTES_DIR
//   - log.level → FSROUTE_LOG_LEVEL
//
// # Validation
//
// Configuration is validated using struct tags:
//   - Port must be 1-65535
//   - Routes dir must be set
//   - Log level must be debug, info, warn, or error
package config
