package tracking

import (
	"fmt"
	"guardian/internal/models"
	"guardian/internal/providers"
	"guardian/internal/structures"
	"net/url"
	"strconv"
)

type ChannelKind string

const (
	ChannelSms   ChannelKind = "sms"
	ChannelShare ChannelKind = "share"
)

// ChannelOpener opens a delivery channel for an emergency message. "Opened"
// means the channel surface was reached, not that a human received anything.
type ChannelOpener interface {
	OpenChannel(kind ChannelKind, payload string) bool
}

// ComposeSosMessage deterministically formats the point as a readable
// coordinate pair plus a map-query URL behind the configured preamble.
func ComposeSosMessage(preamble string, p models.LocationPoint) string {
	lat := strconv.FormatFloat(p.Latitude, 'f', -1, 64)
	lng := strconv.FormatFloat(p.Longitude, 'f', -1, 64)
	return fmt.Sprintf(
		"%s My location: %.6f, %.6f (https://www.google.com/maps/search/?api=1&query=%s,%s)",
		preamble, p.Latitude, p.Longitude, lat, lng,
	)
}

type SosResult struct {
	Channel ChannelKind `json:"channel"`
	Message string      `json:"message"`
}

// SosDispatcher formats an emergency message and walks an ordered list of
// channels until one opens: a direct messaging deep link first, then the
// generic share surface. Best-effort by design; there is no delivery
// confirmation to wait for.
type SosDispatcher struct {
	opener    ChannelOpener
	recipient string
	preamble  string
	logger    providers.Logger
	metrics   providers.MetricsProviderInterface
}

func NewSosDispatcher(conf *structures.Config, logger providers.Logger, metrics providers.MetricsProviderInterface, opener ChannelOpener) *SosDispatcher {
	return &SosDispatcher{
		opener:    opener,
		recipient: conf.Sos.Recipient,
		preamble:  conf.Sos.Preamble,
		logger:    logger,
		metrics:   metrics,
	}
}

func (d *SosDispatcher) Dispatch(p models.LocationPoint) (SosResult, error) {
	msg := ComposeSosMessage(d.preamble, p)

	smsLink := "sms:" + d.recipient + "?body=" + url.QueryEscape(msg)
	if d.opener.OpenChannel(ChannelSms, smsLink) {
		d.metrics.IncSosDispatches(string(ChannelSms), "ok")
		d.logger.Infof(providers.TypeSos, "SOS dispatched via sms channel")
		return SosResult{Channel: ChannelSms, Message: msg}, nil
	}
	d.metrics.IncSosDispatches(string(ChannelSms), "error")

	if d.opener.OpenChannel(ChannelShare, msg) {
		d.metrics.IncSosDispatches(string(ChannelShare), "ok")
		d.logger.Infof(providers.TypeSos, "SOS dispatched via share channel")
		return SosResult{Channel: ChannelShare, Message: msg}, nil
	}
	d.metrics.IncSosDispatches(string(ChannelShare), "error")

	d.logger.Errorf(providers.TypeSos, "SOS dispatch failed on every channel")
	return SosResult{}, ErrSosFailed
}

// DeepLinkOpener is the daemon's stand-in for a native messaging surface: it
// hands the composed deep link to the host through the log stream and reports
// the channel as opened.
type DeepLinkOpener struct {
	logger providers.Logger
}

func NewDeepLinkOpener(logger providers.Logger) ChannelOpener {
	return &DeepLinkOpener{logger: logger}
}

func (o *DeepLinkOpener) OpenChannel(kind ChannelKind, payload string) bool {
	o.logger.Infof(providers.TypeSos, "channel %s opened: %s", kind, payload)
	return true
}
