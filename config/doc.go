// Package config handles application configuration loading and validation.
//
// Configuration is loaded from config.yml and validated using struct tags.
// The API key never lives in the file: it is read from the BTRK environment
// variable, with optional .env support for local development.
package config
