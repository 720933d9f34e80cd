// Package service implements the application core: relationship edges,
// the post feed, post mutations and user accounts. Caller identity is an
// explicit parameter on every operation that needs one.
package service

// Broadcaster delivers an event to all connected clients except the one
// identified by excludeUserID. Delivery is best effort; implementations
// must never block or fail the calling mutation.
type Broadcaster interface {
	Broadcast(event string, payload any, excludeUserID int)
}

// Event names published to the broadcast sink. Like and unlike share one
// event carrying the post's current like state.
const (
	EventPostCreated = "post.created"
	EventPostLiked   = "post.liked"
)
