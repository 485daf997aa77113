package services

import "log"

type NotifyVariant string

const (
	NotifyDefault     NotifyVariant = "default"
	NotifyDestructive NotifyVariant = "destructive"
)

// Notifier is the notification surface called after mutations. How a
// notification is rendered is up to the implementation.
type Notifier interface {
	Notify(title, description string, variant NotifyVariant)
}

// LogNotifier writes notifications to the application log.
type LogNotifier struct{}

func (LogNotifier) Notify(title, description string, variant NotifyVariant) {
	log.Printf("[notify:%s] %s: %s", variant, title, description)
}
