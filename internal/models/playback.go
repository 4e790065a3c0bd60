package models

// PlaybackState is a derived view over the history buffer.
type PlaybackState struct {
	Index   int  `json:"index"`
	Playing bool `json:"playing"`
}
