// Package mocks provides centralized mock implementations for testing.
//
// Each mock exposes function fields for per-test customization plus a
// small in-memory default so simple tests need no setup. Defining them
// here keeps the mock behavior consistent across test packages instead
// of duplicating inline mocks in every test file.
package mocks
