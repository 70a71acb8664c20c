// Package notification models in-app notifications and the events that produce them.
//
// An Event describes one fan-out: who receives it, what it says and whether an email goes
// with it. The dispatcher turns an Event into one Notification per resolved recipient.
package notification
