// Package store defines the persistence ports of the asset registry.
// Services depend only on these interfaces; the memory and postgres
// packages provide interchangeable adapters. Every adapter enforces the
// unique keys (user email, category name, asset name/type/value) and the
// foreign keys itself, so a service-level check is a fast path rather than
// the only guard.
package store
