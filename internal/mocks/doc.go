// Package mocks provides shared test doubles for store ports and credential
// hashing. Store mocks are built on testify/mock; the hasher uses function
// fields so tests can fake failures without expectations.
package mocks
