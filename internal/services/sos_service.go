package services

import "guardian/internal/tracking"

type SosServiceInterface interface {
	Trigger() (tracking.SosResult, error)
}

type SosService struct {
	tracker    *tracking.Tracker
	dispatcher *tracking.SosDispatcher
}

func NewSosService(tracker *tracking.Tracker, dispatcher *tracking.SosDispatcher) SosServiceInterface {
	return &SosService{tracker: tracker, dispatcher: dispatcher}
}

// Trigger reads the latest fix and dispatches the emergency message.
func (ss *SosService) Trigger() (tracking.SosResult, error) {
	return ss.dispatcher.Dispatch(ss.tracker.Current())
}
