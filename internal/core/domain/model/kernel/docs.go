// Package kernel provides the primitives shared by every aggregate of the
// harvest marketplace.
//
// The package includes:
//   - UUID: identifier value object for jobs and users; the zero value is invalid
//   - Clock: time source used when stamping new jobs, replaceable in tests
package kernel
