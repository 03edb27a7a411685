// Package service contains the application-specific use cases and business
// logic. It orchestrates interactions between domain objects and the store
// ports defined in internal/store.
//
// Each of the four services (users, categories, assets, transactions) takes
// string-typed requests, validates their shape, performs uniqueness and
// referential checks against the stores and returns flattened projections
// that embed the names of related rows.
//
// Error Handling:
//   - Input problems are returned as *domain.ValidationError
//   - Uniqueness violations and blocked deletes as *domain.ConflictError
//   - Unresolved ids as *domain.NotFoundError
//   - Anything else is wrapped in a *ServiceError
//
// Process-wide policies (empty list handling, partial-update reference
// handling and the clock) are carried by Options.
//
// The service layer depends on domain entities and store interfaces, never on
// a specific store implementation.
package service
