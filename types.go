package folio

import "time"

// Subscriber is a newsletter subscription. Token authorizes unsubscribing
// without a login.
type Subscriber struct {
	Email     string
	Token     string
	CreatedAt time.Time
}
