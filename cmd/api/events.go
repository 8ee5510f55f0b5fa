package main

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/google/uuid"

	"github.com/shadow1264/freshbite-delivery/internal/domain"
)

// streamedEvents are the bus events bridged to SSE clients.
var streamedEvents = []string{
	domain.EventUserOnline,
	domain.EventUserOffline,
	domain.EventNotificationBroadcast,
	domain.EventStateChanged,
}

type sseEvent struct {
	name    string
	payload any
}

// eventStreamHandler bridges bus events to a server-sent-events stream.
// Each connection gets its own buffered subscriber; if the client cannot
// keep up, events are dropped rather than blocking the publisher.
func (app *application) eventStreamHandler(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		app.internalServerError(w, r, fmt.Errorf("streaming unsupported"))
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)
	flusher.Flush()

	events := make(chan sseEvent, 64)
	subscriberID := "sse-" + uuid.NewString()

	for _, name := range streamedEvents {
		eventName := name
		app.bus.Subscribe(eventName, subscriberID, func(payload any) {
			select {
			case events <- sseEvent{name: eventName, payload: payload}:
			default:
				// slow consumer, drop
			}
		})
	}
	defer func() {
		for _, name := range streamedEvents {
			app.bus.Unsubscribe(name, subscriberID)
		}
	}()

	app.logger.Infow("event stream opened", "subscriber", subscriberID, "remote", r.RemoteAddr)

	for {
		select {
		case <-r.Context().Done():
			app.logger.Infow("event stream closed", "subscriber", subscriberID)
			return
		case evt := <-events:
			data, err := json.Marshal(evt.payload)
			if err != nil {
				app.logger.Errorw("failed to marshal event payload", "event", evt.name, "error", err)
				continue
			}
			fmt.Fprintf(w, "event: %s\ndata: %s\n\n", evt.name, data)
			flusher.Flush()
		}
	}
}
