// File: services/notification/interface.go
package notification

// Notifier delivers out-of-band messages to account holders.
type Notifier interface {
	Send(to, subject, body string) error
}
