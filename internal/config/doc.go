// Package config manages the optional per-project gbdev configuration.
//
// It handles:
//   - Reading gbdev.yaml from the project root
//   - Defaults for every toolchain command when the file or a field is absent
package config
