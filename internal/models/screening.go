// Package models defines the data structures for screening events.
package models

// TurnScored is emitted when a prompt/response cycle is finalized.
type TurnScored struct {
	EventType    string `json:"eventType"`
	SessionID    string `json:"sessionId"`
	Locale       string `json:"locale"`
	Instrument   string `json:"instrument"`
	PromptIndex  int    `json:"promptIndex"`
	Transcript   string `json:"transcript"`
	Points       int    `json:"points"`
	Skipped      bool   `json:"skipped"`
	RunningTotal int    `json:"runningTotal"`
	Timestamp    int64  `json:"timestamp"`
}

// ResultFinal is emitted once per instrument run when it completes.
// The short form fills the recall/clock/total fields; the interview
// form fills score/maxScore.
type ResultFinal struct {
	EventType   string `json:"eventType"`
	SessionID   string `json:"sessionId"`
	Locale      string `json:"locale"`
	Instrument  string `json:"instrument"`
	RecallScore int    `json:"recallScore"`
	ClockScore  int    `json:"clockScore"`
	Total       int    `json:"total"`
	Score       int    `json:"score"`
	MaxScore    int    `json:"maxScore"`
	Tier        string `json:"tier"`
	Timestamp   int64  `json:"timestamp"`
}
