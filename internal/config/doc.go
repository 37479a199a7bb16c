// Package config loads runtime configuration from multiple sources (a YAML
// config file, a .env file, environment variables, CLI flags) with
// precedence: CLI flags > Environment variables > YAML config > Defaults.
// It exposes strongly typed settings to the rest of the application.
package config
