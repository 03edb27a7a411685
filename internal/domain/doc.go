// Package domain contains the core business entities of the asset registry
// (users, categories, assets and transactions), the closed enumerations they
// use, and the error taxonomy shared by every layer above it. It has no
// knowledge of storage or transport.
package domain
