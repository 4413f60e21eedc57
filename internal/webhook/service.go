package webhook

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"strings"

	"github.com/lucascresencio/leet-test/internal/logger"
	"github.com/lucascresencio/leet-test/internal/maintainer"
	"github.com/lucascresencio/leet-test/internal/metrics"
	"github.com/lucascresencio/leet-test/internal/payment"
)

// orderEventPrefix selects the only event family the reconciler
// interprets; everything else is logged and ignored.
const orderEventPrefix = "order."

// statusMap is the closed mapping from gateway status strings to
// ledger statuses. Strings outside the map are ignored, never guessed.
var statusMap = map[string]payment.TransactionStatus{
	"pending":  payment.StatusPending,
	"paid":     payment.StatusPaid,
	"failed":   payment.StatusFailed,
	"canceled": payment.StatusCanceled,
	"expired":  payment.StatusExpired,
}

// Notifier sends donation outcome emails. Deliveries are best effort;
// a notification failure never fails the reconciliation.
type Notifier interface {
	PaymentConfirmed(ctx context.Context, to, name string, tx *payment.Transaction) error
	PaymentFailed(ctx context.Context, to, name, reason string, tx *payment.Transaction) error
}

type Service struct {
	repo        Repository
	payments    payment.Repository
	maintainers maintainer.Repository
	notifier    Notifier
}

func NewService(repo Repository, payments payment.Repository, maintainers maintainer.Repository, notifier Notifier) *Service {
	return &Service{
		repo:        repo,
		payments:    payments,
		maintainers: maintainers,
		notifier:    notifier,
	}
}

// Process reconciles one inbound gateway event. The raw payload is
// persisted before any interpretation; only a failure of that write is
// returned as an error. Everything after it is logged, never surfaced,
// so the gateway does not retry-storm a poison event.
func (s *Service) Process(ctx context.Context, payload json.RawMessage) error {
	var evt Event
	if err := json.Unmarshal(payload, &evt); err != nil {
		logger.Warn("unparseable webhook payload", "error", err)
	}

	if _, err := s.repo.CreateLog(ctx, evt.Type, payload); err != nil {
		return err
	}

	if !strings.HasPrefix(evt.Type, orderEventPrefix) {
		metrics.RecordWebhookEvent("ignored")
		return nil
	}

	tx, err := s.payments.FindByOrderID(ctx, evt.Data.ID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			logger.Warn("no transaction found for webhook order", "order_id", evt.Data.ID)
			metrics.RecordWebhookEvent("unmatched")
			return nil
		}
		logger.Error("webhook transaction lookup failed", "order_id", evt.Data.ID, "error", err)
		metrics.RecordWebhookEvent("error")
		return nil
	}

	status, ok := statusMap[evt.Data.Status]
	if !ok {
		logger.Warn("unknown gateway status in webhook",
			"status", evt.Data.Status, "order_id", evt.Data.ID)
		metrics.RecordWebhookEvent("unknown_status")
		return nil
	}

	var errorMessage *string
	if status == payment.StatusFailed {
		reason := "Unknown error"
		if evt.Data.LastTransaction != nil && evt.Data.LastTransaction.RefuseReason != "" {
			reason = evt.Data.LastTransaction.RefuseReason
		}
		errorMessage = &reason
	}

	applied, err := s.payments.UpdateStatus(ctx, tx.ID, status, errorMessage)
	if err != nil {
		logger.Error("webhook status update failed",
			"transaction_id", tx.ID, "status", status, "error", err)
		metrics.RecordWebhookEvent("error")
		return nil
	}

	if !applied {
		// Already terminal. Late and duplicate deliveries are strict
		// no-ops, metadata included.
		logger.Info("webhook ignored for terminal transaction",
			"transaction_id", tx.ID, "status", status)
		metrics.RecordWebhookEvent("stale")
		return nil
	}

	logger.Info("transaction status updated from webhook",
		"transaction_id", tx.ID, "status", status)
	metrics.RecordWebhookEvent("applied")

	if status == payment.StatusPaid || status == payment.StatusFailed {
		s.notify(ctx, tx, status, errorMessage)
	}

	return nil
}

// Logs returns the most recent stored events, newest first.
func (s *Service) Logs(ctx context.Context, limit int) ([]Log, error) {
	return s.repo.ListLogs(ctx, limit)
}

func (s *Service) notify(ctx context.Context, tx *payment.Transaction, status payment.TransactionStatus, errorMessage *string) {
	if s.notifier == nil {
		return
	}

	m, err := s.maintainers.FindByID(ctx, tx.MaintainerID)
	if err != nil {
		logger.Warn("skipping donation email, maintainer lookup failed",
			"maintainer_id", tx.MaintainerID, "error", err)
		return
	}

	if status == payment.StatusPaid {
		err = s.notifier.PaymentConfirmed(ctx, m.Email, m.Name, tx)
	} else {
		reason := "Unknown error"
		if errorMessage != nil {
			reason = *errorMessage
		}
		err = s.notifier.PaymentFailed(ctx, m.Email, m.Name, reason, tx)
	}
	if err != nil {
		logger.Warn("failed to queue donation email",
			"transaction_id", tx.ID, "error", err)
	}
}
