package service

// Broadcaster pushes events to a user's open websocket connections (avoids import cycle)
type Broadcaster interface {
	SendToUser(userID string, msgType string, payload interface{})
}

// Event types pushed over the websocket
const (
	EventPracticeStarted   = "practice.started"
	EventAnswerAnalyzed    = "answer.analyzed"
	EventAnswerFailed      = "answer.failed"
	EventPracticeCompleted = "practice.completed"
)

type nopBroadcaster struct{}

func (nopBroadcaster) SendToUser(string, string, interface{}) {}
