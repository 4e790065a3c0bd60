package services

import (
	"guardian/internal/models"
	"guardian/internal/tracking"
)

type PlaybackServiceInterface interface {
	Toggle() models.PlaybackState
	Seek(index int) models.PlaybackState
	State() models.PlaybackState
	Stop()
}

type PlaybackService struct {
	controller *tracking.PlaybackController
}

func NewPlaybackService(controller *tracking.PlaybackController) PlaybackServiceInterface {
	return &PlaybackService{controller: controller}
}

func (ps *PlaybackService) Toggle() models.PlaybackState {
	return ps.controller.Toggle()
}

func (ps *PlaybackService) Seek(index int) models.PlaybackState {
	return ps.controller.Seek(index)
}

func (ps *PlaybackService) State() models.PlaybackState {
	return ps.controller.State()
}

func (ps *PlaybackService) Stop() {
	ps.controller.Stop()
}
