// Package metrics exposes Prometheus counters for VMC traffic.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/chabad360/go-vmc/vmc"
)

// Config configures the collectors.
type Config struct {
	// Namespace is the metrics namespace (default: "vmc").
	Namespace string

	// Registry is the Prometheus registry to use.
	// Default: prometheus.DefaultRegisterer
	Registry prometheus.Registerer
}

// Metrics holds the collectors for one process.
type Metrics struct {
	datagrams      prometheus.Counter
	datagramBytes  prometheus.Counter
	decodeFailures prometheus.Counter
	outcomes       *prometheus.CounterVec
	sent           *prometheus.CounterVec
	sendFailures   prometheus.Counter
}

// New registers the collectors with cfg.Registry.
func New(cfg Config) *Metrics {
	if cfg.Namespace == "" {
		cfg.Namespace = "vmc"
	}
	if cfg.Registry == nil {
		cfg.Registry = prometheus.DefaultRegisterer
	}
	factory := promauto.With(cfg.Registry)

	return &Metrics{
		datagrams: factory.NewCounter(prometheus.CounterOpts{
			Namespace: cfg.Namespace,
			Name:      "datagrams_received_total",
			Help:      "Total number of datagrams received",
		}),
		datagramBytes: factory.NewCounter(prometheus.CounterOpts{
			Namespace: cfg.Namespace,
			Name:      "datagram_bytes_received_total",
			Help:      "Total number of bytes received in datagrams",
		}),
		decodeFailures: factory.NewCounter(prometheus.CounterOpts{
			Namespace: cfg.Namespace,
			Name:      "decode_failures_total",
			Help:      "Total number of datagrams that were not valid OSC",
		}),
		outcomes: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: cfg.Namespace,
			Name:      "messages_received_total",
			Help:      "Total number of messages received by outcome and address",
		}, []string{"outcome", "address"}),
		sent: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: cfg.Namespace,
			Name:      "messages_sent_total",
			Help:      "Total number of messages sent by address",
		}, []string{"address"}),
		sendFailures: factory.NewCounter(prometheus.CounterOpts{
			Namespace: cfg.Namespace,
			Name:      "send_failures_total",
			Help:      "Total number of failed sends",
		}),
	}
}

// ObserveDatagram records one received datagram and its parse result.
func (m *Metrics) ObserveDatagram(size int, outcomes []vmc.Outcome, err error) {
	m.datagrams.Inc()
	m.datagramBytes.Add(float64(size))
	if err != nil {
		m.decodeFailures.Inc()
		return
	}
	for _, o := range outcomes {
		m.outcomes.WithLabelValues(o.Kind.String(), addressLabel(o)).Inc()
	}
}

// ObserveSend records one send attempt of msgs.
func (m *Metrics) ObserveSend(err error, msgs ...vmc.Message) {
	if err != nil {
		m.sendFailures.Inc()
		return
	}
	for _, msg := range msgs {
		m.sent.WithLabelValues(msg.Address()).Inc()
	}
}

// Unrecognized addresses are collapsed so peers can't grow the label set.
func addressLabel(o vmc.Outcome) string {
	switch {
	case o.Kind == vmc.Recognized:
		return o.Message.Address()
	case o.Kind == vmc.Invalid && o.Raw != nil:
		return o.Raw.Address
	default:
		return "other"
	}
}
