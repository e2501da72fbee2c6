// Package config loads and validates slidecraft CLI configuration data.
//
// It supplies repository defaults, reads TOML files, and converts the
// file-level settings into the per-package Config values the compile
// pipeline consumes. Always obtain settings through this package so
// downstream code receives validated marker tokens, glyphs, and budgets.
package config
