// Package ports declares the contracts between the order lifecycle core and the outside world:
// repositories and the unit of work, the user directory, notification transports and the
// asynchronous notifier.
package ports
