// Package kernel provides the primitives shared by every aggregate of the order lifecycle core:
//   - UUID: identifier value object over github.com/google/uuid
//   - Actor: the authenticated caller, as resolved by the identity provider
//   - Clock: injectable time source; SystemClock in production, FixedClock in tests
package kernel
