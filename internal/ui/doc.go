// Package ui renders the output of the numfield CLI commands.
//
// Components follow a "render once and print" pattern: a Header names the
// command and its effective settings, a Result reports the outcome in a
// bordered box, and a Table lists profiles or discovered servers. None of
// them need user interaction; the interactive field lives in package tui.
//
// # Plain Output
//
// A Printer decides once, at construction, whether its writer is a terminal
// (golang.org/x/term). When it is not, every component is written through
// its Plain method instead: no borders, no colors, tab-separated tables.
// This keeps "numfield format 12 | cut -f2" usable.
//
// # Logging Integration
//
// Logging is controlled via the NUMFIELD_LOG_LEVEL environment variable.
// When unset or empty, zap logging is silent, allowing the curated UI
// output to be displayed cleanly.
package ui
