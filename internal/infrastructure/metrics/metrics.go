package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ticketsCreatedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "gramseva_tickets_created_total",
			Help: "Total number of tickets submitted",
		},
	)

	chatRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gramseva_chat_requests_total",
			Help: "Total chatbot requests by matched category",
		},
		[]string{"category", "matched"},
	)

	chatFallbacksTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "gramseva_chat_fallbacks_total",
			Help: "Chatbot requests that hit the fallback response",
		},
	)
)

// Recorder implements the application-layer metric hooks on top of the
// package-level Prometheus collectors.
type Recorder struct{}

func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) RecordChatRequest(category string, matched bool) {
	chatRequestsTotal.WithLabelValues(category, strconv.FormatBool(matched)).Inc()
	if !matched {
		chatFallbacksTotal.Inc()
	}
}

func (r *Recorder) RecordTicketCreated() {
	ticketsCreatedTotal.Inc()
}
