// Package catalog holds the in-memory collection of feature records.
//
// A feature pairs a display name with a stable public identifier (usually
// a domain name) and the algorithm its passwords are derived under. The
// catalog preserves insertion order and enforces identifier uniqueness;
// everything else - persistence, encryption, rendering - lives elsewhere.
package catalog
