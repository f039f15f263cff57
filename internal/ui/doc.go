// Package ui provides semantic text formatting for CLI output.
//
// Formatters carry meaning (Success, Error, Highlight, Password) rather
// than raw colors, so commands describe intent and the package decides
// presentation. When color is unavailable or disabled via NO_COLOR, each
// formatter falls back to a plain-text decoration that preserves meaning.
package ui
