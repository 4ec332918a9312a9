// Package mocks provides mock implementations for testing the portal access core.
//
// This package uses go.uber.org/mock (gomock) to generate type-safe mocks for the
// store ports consumed by the capability loader. The mocks are generated using
// go:generate directives and provide a fluent API for setting up test expectations.
//
// To regenerate mocks after interface changes, run:
//
//	go generate ./internal/mocks
package mocks

// Generate mock for ProfileStore interface from internal/ports.
// This creates MockProfileStore with the Provision method.
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=profile_store_mock.go github.com/IHARC/stevi-portal/internal/ports ProfileStore

// Generate mock for GrantStore interface from internal/ports.
// This creates MockGrantStore with the ListByIdentity method.
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=grant_store_mock.go github.com/IHARC/stevi-portal/internal/ports GrantStore

// Generate mock for OrgStore interface from internal/ports.
// This creates MockOrgStore with the Get method.
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=org_store_mock.go github.com/IHARC/stevi-portal/internal/ports OrgStore
