package entity

import (
	"time"
)

// ChatSession is one answered chatbot question. The records form an
// append-only log; the daily quota is computed by counting them per device
// per calendar day.
type ChatSession struct {
	Id        string
	DeviceId  string
	Question  string
	Response  string
	CreatedAt time.Time
}
