package services

import "log"

// Notifier delivers a message to a user. Delivery is fire-and-forget; the core
// never depends on whether the message arrived.
type Notifier interface {
	Notify(userID, title, body string)
}

// LogNotifier writes notifications to the application log. It stands in for a
// real delivery channel (email, push) in development and tests.
type LogNotifier struct{}

func (LogNotifier) Notify(userID, title, body string) {
	log.Printf("notify user=%s title=%q body=%q", userID, title, body)
}
