// Package mocks provides mock implementations for testing the job tracker.
//
// This package uses go.uber.org/mock (gomock) to generate type-safe mocks for our store interfaces.
// The mocks are generated using go:generate directives and provide a fluent API for setting up test expectations.
//
// To regenerate mocks after interface changes, run:
//
//	go generate ./internal/mocks
//
// Usage in tests:
//
//	ctrl := gomock.NewController(t)
//	store := mocks.NewMockApplicationStore(ctrl)
//	store.EXPECT().FindByID(gomock.Any(), int64(1)).Return(rec, nil)
package mocks

// Generate mocks for the ApplicationStore, ApplicationSession and ApplicationStoreFactory
// interfaces from internal/core package.
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=application_store_mock.go github.com/target/jobtracker-api/internal/core ApplicationStore,ApplicationSession,ApplicationStoreFactory
