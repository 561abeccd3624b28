// Package store defines the persistence interfaces for the service's
// entities, the shared error taxonomy, and transaction helpers. The
// concrete implementations live in internal/platform/postgres.
package store
