// Package mapper converts applications between their persisted record,
// domain, request, and view shapes. All functions are pure.
package mapper
