package services

import (
	"guardian/internal/models"
	"guardian/internal/tracking"
	"time"
)

type ShareServiceInterface interface {
	Start(duration time.Duration) (tracking.StartResult, error)
	Stop()
	Status() models.ShareSession
	Active() bool
}

type ShareService struct {
	manager *tracking.ShareManager
}

func NewShareService(manager *tracking.ShareManager) ShareServiceInterface {
	return &ShareService{manager: manager}
}

func (ss *ShareService) Start(duration time.Duration) (tracking.StartResult, error) {
	return ss.manager.Start(duration)
}

func (ss *ShareService) Stop() {
	ss.manager.Stop()
}

func (ss *ShareService) Status() models.ShareSession {
	return ss.manager.Status()
}

func (ss *ShareService) Active() bool {
	return ss.manager.Active()
}
