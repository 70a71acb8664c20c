// Package services holds domain services that coordinate aggregates with the acting user.
//
// OrderStateMachine decides whether an actor may apply a lifecycle transition to an order,
// applies it, and describes the single notification event the transition produces. It does
// no I/O; persistence and delivery belong to the application layer.
package services
