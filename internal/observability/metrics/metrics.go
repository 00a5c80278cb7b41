package metrics

import "github.com/prometheus/client_golang/prometheus"

// IntakeMetrics exposes counters/histograms for the chat intake flow.
type IntakeMetrics struct {
	chatTotal        *prometheus.CounterVec
	llmLatency       prometheus.Histogram
	leadsEmitted     prometheus.Counter
	deliveryFailures prometheus.Counter
}

func NewIntakeMetrics(reg prometheus.Registerer) *IntakeMetrics {
	m := &IntakeMetrics{
		chatTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "shhs",
			Subsystem: "chat",
			Name:      "requests_total",
			Help:      "Total chat requests by outcome",
		}, []string{"status"}),
		llmLatency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "shhs",
			Subsystem: "chat",
			Name:      "llm_latency_seconds",
			Help:      "Latency of reply generation calls",
			Buckets:   prometheus.DefBuckets,
		}),
		leadsEmitted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "shhs",
			Subsystem: "intake",
			Name:      "leads_emitted_total",
			Help:      "Leads delivered to the CRM webhook",
		}),
		deliveryFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "shhs",
			Subsystem: "intake",
			Name:      "lead_delivery_failures_total",
			Help:      "Failed CRM webhook deliveries",
		}),
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(m.chatTotal, m.llmLatency, m.leadsEmitted, m.deliveryFailures)
	return m
}

func (m *IntakeMetrics) ObserveChat(status string) {
	if m == nil {
		return
	}
	m.chatTotal.WithLabelValues(status).Inc()
}

func (m *IntakeMetrics) ObserveLLMLatency(seconds float64) {
	if m == nil {
		return
	}
	m.llmLatency.Observe(seconds)
}

func (m *IntakeMetrics) ObserveLeadEmitted() {
	if m == nil {
		return
	}
	m.leadsEmitted.Inc()
}

func (m *IntakeMetrics) ObserveDeliveryFailure() {
	if m == nil {
		return
	}
	m.deliveryFailures.Inc()
}
