// Package storage provides persistent storage for NutriNudge.
// It wraps an embedded BadgerDB and stores JSON-encoded values under string keys.
package storage
