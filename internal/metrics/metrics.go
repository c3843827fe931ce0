package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	CallbacksReceived = promauto.NewCounter(prometheus.CounterOpts{
		Name: "linebot_callbacks_received_total",
		Help: "Total number of webhook callbacks received.",
	})

	SignatureFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "linebot_signature_failures_total",
		Help: "Total number of callbacks whose signature did not match, labelled by whether they were rejected.",
	}, []string{"action"})

	MalformedCallbacks = promauto.NewCounter(prometheus.CounterOpts{
		Name: "linebot_malformed_callbacks_total",
		Help: "Total number of callbacks whose body could not be parsed.",
	})

	EventsHandled = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "linebot_events_handled_total",
		Help: "Total number of webhook events, labelled by event type and outcome.",
	}, []string{"event_type", "outcome"})

	RepliesSent = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "linebot_replies_sent_total",
		Help: "Total number of reply calls, labelled by status.",
	}, []string{"status"})

	ProfileLookups = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "linebot_profile_lookups_total",
		Help: "Total number of profile lookups, labelled by status.",
	}, []string{"status"})
)

// Label values shared by the counters above.
const (
	StatusSuccess = "success"
	StatusFailure = "failure"

	ActionRejected = "rejected"
	ActionAllowed  = "allowed"

	OutcomeReplied   = "replied"
	OutcomeIgnored   = "ignored"
	OutcomeDuplicate = "duplicate"
	OutcomeFailed    = "failed"
)
