package intake

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/grygorii1976-hash/SHHS-chat-backend/internal/observability/metrics"
	"github.com/grygorii1976-hash/SHHS-chat-backend/pkg/logging"
)

// LeadPayload is the wire shape delivered to the CRM webhook.
type LeadPayload struct {
	Source             string      `json:"source"`
	FirstName          string      `json:"first_name"`
	LastName           string      `json:"last_name"`
	Phone              string      `json:"phone"`
	City               string      `json:"city"`
	Zip                string      `json:"zip"`
	ServiceDescription string      `json:"service_description"`
	PreferredDate      string      `json:"preferred_date"`
	LeadStatus         string      `json:"lead_status"`
	InServiceArea      bool        `json:"in_service_area"`
	Conversation       []Utterance `json:"conversation"`
}

// Deliverer performs the external lead delivery call.
type Deliverer interface {
	DeliverLead(ctx context.Context, payload LeadPayload) error
}

// Dispatcher decides, once per conversational turn, whether the conversation
// has produced a complete, final, not-yet-sent lead, and delivers it.
type Dispatcher struct {
	store     SentStore
	deliverer Deliverer
	isFinal   FinalityFunc
	now       func() time.Time
	logger    *logging.Logger
	metrics   *metrics.IntakeMetrics

	mu       sync.Mutex
	keyLocks map[string]*sync.Mutex
}

func NewDispatcher(store SentStore, deliverer Deliverer, logger *logging.Logger, m *metrics.IntakeMetrics) *Dispatcher {
	if store == nil {
		store = NewMemorySentStore()
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &Dispatcher{
		store:     store,
		deliverer: deliverer,
		isFinal:   IsFinalSummary,
		now:       time.Now,
		logger:    logger,
		metrics:   m,
		keyLocks:  make(map[string]*sync.Mutex),
	}
}

// SetFinality replaces the closing-turn predicate.
func (d *Dispatcher) SetFinality(fn FinalityFunc) {
	if fn != nil {
		d.isFinal = fn
	}
}

// SetClock fixes the reference instant used for date normalization.
func (d *Dispatcher) SetClock(now func() time.Time) {
	if now != nil {
		d.now = now
	}
}

// MaybeEmit extracts a lead from the conversation and delivers it when the
// record is complete, the reply is the closing turn, and the lead was not
// sent before. The sent mark is only written after a confirmed delivery, so
// a failed webhook call stays retryable on a later turn. Returns whether a
// delivery happened.
func (d *Dispatcher) MaybeEmit(ctx context.Context, conv Conversation, reply string) (bool, error) {
	lead := Extract(conv)
	if !lead.IsComplete() {
		return false, nil
	}

	key := lead.Key()
	unlock := d.lockKey(key)
	defer unlock()

	sent, err := d.store.AlreadySent(ctx, key)
	if err != nil {
		d.logger.Error("intake: sent-store lookup failed", "error", err)
		return false, err
	}
	if sent {
		return false, nil
	}

	if !d.isFinal(reply, lead) {
		return false, nil
	}

	if d.deliverer == nil {
		return false, errors.New("intake: no lead deliverer configured")
	}

	payload := d.buildPayload(lead, conv)
	if err := d.deliverer.DeliverLead(ctx, payload); err != nil {
		d.metrics.ObserveDeliveryFailure()
		d.logger.Error("intake: lead delivery failed, will retry on a later turn",
			"error", err,
			"city", lead.City,
			"zip", lead.Zip,
		)
		return false, err
	}

	if err := d.store.MarkSent(ctx, key); err != nil {
		// Delivered but unmarked: the next turn may redeliver. Surface loudly.
		d.logger.Error("intake: lead delivered but marking sent failed", "error", err)
	}
	d.metrics.ObserveLeadEmitted()
	d.logger.Info("intake: lead delivered",
		"city", lead.City,
		"zip", lead.Zip,
		"in_service_area", lead.InServiceArea,
	)
	return true, nil
}

func (d *Dispatcher) buildPayload(lead Lead, conv Conversation) LeadPayload {
	return LeadPayload{
		Source:             "chat",
		FirstName:          lead.FirstName,
		LastName:           lead.LastName,
		Phone:              lead.Phone,
		City:               lead.City,
		Zip:                lead.Zip,
		ServiceDescription: lead.Service,
		PreferredDate:      NormalizeDate(lead.PreferredDate, d.now()),
		LeadStatus:         "New",
		InServiceArea:      lead.InServiceArea,
		Conversation:       conv,
	}
}

// lockKey serializes the check-deliver-mark sequence for one lead key so two
// near-simultaneous final turns cannot both deliver.
func (d *Dispatcher) lockKey(key string) func() {
	d.mu.Lock()
	l, ok := d.keyLocks[key]
	if !ok {
		l = &sync.Mutex{}
		d.keyLocks[key] = l
	}
	d.mu.Unlock()
	l.Lock()
	return l.Unlock
}
