// Package order holds the Order aggregate and its Status value object.
//
// An order is placed Pending by its owner, may be paid once, moved by an administrator
// through Processing and Shipped, and finally Delivered. Cancellation is not a stored
// status: a cancelled order is deleted by the application layer. Authorization of each
// transition lives in services.OrderStateMachine, not here.
package order
