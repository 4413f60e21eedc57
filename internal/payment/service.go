package payment

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/lucascresencio/leet-test/internal/auth"
	"github.com/lucascresencio/leet-test/internal/logger"
	"github.com/lucascresencio/leet-test/internal/maintainer"
	"github.com/lucascresencio/leet-test/internal/metrics"
	"github.com/lucascresencio/leet-test/internal/ong"
	"github.com/lucascresencio/leet-test/internal/pagarme"
)

const (
	boletoInstructions = "Pague até o vencimento para garantir a doação."
	pixExpiresIn       = 3600
)

// Gateway is the slice of the payment processor the orchestrator
// drives. pagarme.Client satisfies it.
type Gateway interface {
	CreateCustomer(ctx context.Context, params pagarme.CustomerParams) (*pagarme.Customer, error)
	CreateCard(ctx context.Context, params pagarme.CardParams) (*pagarme.Card, error)
	CreateOrder(ctx context.Context, params pagarme.OrderParams) (*pagarme.Order, error)
}

// Service orchestrates a donation: it validates the request against
// domain entities, computes the revenue split, drives the gateway
// conversation and keeps the transaction row in sync at every step.
type Service struct {
	repo        Repository
	maintainers maintainer.Repository
	ongs        ong.Repository
	gateway     Gateway
	policy      *auth.Policy

	// Payout account collecting the platform's commission leg of
	// every split.
	platformRecipientID string
}

func NewService(repo Repository, maintainers maintainer.Repository, ongs ong.Repository,
	gateway Gateway, policy *auth.Policy, platformRecipientID string) *Service {
	return &Service{
		repo:                repo,
		maintainers:         maintainers,
		ongs:                ongs,
		gateway:             gateway,
		policy:              policy,
		platformRecipientID: platformRecipientID,
	}
}

// targets holds the validated entities a donation points at.
type targets struct {
	ong      *ong.ONG
	campaign *ong.Campaign
	base     *ong.Base
	project  *ong.Project
	attendee *ong.Attendee
}

// CreatePayment runs the full donation flow. Validation failures
// happen before any persistence or gateway call; once the draft row
// exists, every failure path marks it failed before returning.
func (s *Service) CreatePayment(ctx context.Context, userID int, role string, req CreatePaymentRequest) (*Transaction, error) {
	if err := s.policy.Authorize(role, auth.ActionCreatePayment); err != nil {
		return nil, Forbidden("only maintainers can make payments")
	}

	m, err := s.maintainers.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, Forbidden("only maintainers can make payments")
		}
		return nil, Internal("resolving maintainer", err)
	}

	tgt, err := s.validate(ctx, req)
	if err != nil {
		return nil, err
	}

	commission := Commission(req.Amount, tgt.ong.CommissionRate)
	net := req.Amount.Sub(commission)

	tx, err := s.repo.CreateDraft(ctx, &Transaction{
		MaintainerID:     m.ID,
		OngID:            tgt.ong.ID,
		CampaignID:       req.CampaignID,
		BaseID:           req.BaseID,
		ProjectID:        req.ProjectID,
		AttendeeID:       req.AttendeeID,
		Amount:           req.Amount,
		CommissionAmount: commission,
		PaymentMethod:    req.PaymentMethod,
	})
	if err != nil {
		return nil, Internal("persisting transaction draft", err)
	}

	customerID, err := s.resolveCustomer(ctx, m)
	if err != nil {
		return nil, s.fail(ctx, tx.ID, req.PaymentMethod, err)
	}

	payment := pagarme.OrderPayment{
		PaymentMethod: string(req.PaymentMethod),
		Amount:        Cents(req.Amount),
		Split: []pagarme.SplitRule{
			{Amount: Cents(net), RecipientID: tgt.ong.RecipientID, Type: "flat"},
			{Amount: Cents(commission), RecipientID: s.platformRecipientID, Type: "flat"},
		},
	}

	var cardID string
	switch req.PaymentMethod {
	case MethodCreditCard:
		cardID, err = s.prepareCard(ctx, m, customerID, req)
		if err != nil {
			return nil, s.fail(ctx, tx.ID, req.PaymentMethod, err)
		}
		payment.CreditCard = &pagarme.CreditCardPayment{CardID: cardID}
	case MethodBoleto:
		payment.Boleto = &pagarme.BoletoPayment{Instructions: boletoInstructions}
	case MethodPix:
		payment.Pix = &pagarme.PixPayment{ExpiresIn: pixExpiresIn}
	}

	order, err := s.gateway.CreateOrder(ctx, pagarme.OrderParams{
		Code:       fmt.Sprintf("leet-tx-%d", tx.ID),
		CustomerID: customerID,
		Items: []pagarme.OrderItem{
			{Amount: Cents(req.Amount), Description: describe(tgt), Quantity: 1},
		},
		Payments: []pagarme.OrderPayment{payment},
	})
	if err != nil {
		return nil, s.fail(ctx, tx.ID, req.PaymentMethod, classifyGatewayError("creating order", err))
	}

	if len(order.Charges) == 0 {
		return nil, s.fail(ctx, tx.ID, req.PaymentMethod, GatewayError("order returned without charges", nil))
	}
	charge := order.Charges[0]

	result := GatewayResult{OrderID: &order.ID, ChargeID: &charge.ID}
	if cardID != "" {
		result.CardID = &cardID
	}
	if charge.LastTransaction != nil {
		switch req.PaymentMethod {
		case MethodBoleto:
			result.BoletoURL = &charge.LastTransaction.URL
			result.BoletoBarcode = &charge.LastTransaction.Barcode
		case MethodPix:
			result.PixQRCode = &charge.LastTransaction.QRCodeURL
			result.PixCode = &charge.LastTransaction.QRCode
		}
	}

	updated, err := s.repo.ApplyGatewayResult(ctx, tx.ID, result)
	if err != nil {
		return nil, s.fail(ctx, tx.ID, req.PaymentMethod, Internal("recording gateway result", err))
	}
	tx = updated

	if charge.Status == "failed" {
		reason := "Unknown error"
		if charge.LastTransaction != nil && charge.LastTransaction.RefuseReason != "" {
			reason = charge.LastTransaction.RefuseReason
		}
		return nil, s.fail(ctx, tx.ID, req.PaymentMethod, PaymentRejected(reason))
	}

	logger.Info("payment created",
		"transaction_id", tx.ID, "order_id", order.ID, "method", req.PaymentMethod)
	metrics.RecordPayment(string(req.PaymentMethod), "created")

	return tx, nil
}

// GetPayment returns a transaction visible to the caller. Maintainers
// may only read their own rows; admins may read any.
func (s *Service) GetPayment(ctx context.Context, userID int, role string, id int) (*Transaction, error) {
	if err := s.policy.Authorize(role, auth.ActionViewPayment); err != nil {
		return nil, Forbidden("caller may not view payments")
	}

	tx, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, NotFound("transaction not found")
		}
		return nil, Internal("fetching transaction", err)
	}

	if role != auth.RoleAdmin {
		m, err := s.maintainers.FindByUserID(ctx, userID)
		if err != nil || m.ID != tx.MaintainerID {
			return nil, NotFound("transaction not found")
		}
	}

	return tx, nil
}

// ListPayments returns the caller's own donation history.
func (s *Service) ListPayments(ctx context.Context, userID int, role string) ([]Transaction, error) {
	if err := s.policy.Authorize(role, auth.ActionViewPayment); err != nil {
		return nil, Forbidden("caller may not view payments")
	}

	m, err := s.maintainers.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, Forbidden("only maintainers have a donation history")
		}
		return nil, Internal("resolving maintainer", err)
	}

	return s.repo.ListByMaintainer(ctx, m.ID)
}

func (s *Service) validate(ctx context.Context, req CreatePaymentRequest) (*targets, error) {
	if !req.Amount.IsPositive() {
		return nil, InvalidRequest("amount must be greater than zero")
	}
	// The ledger stores amounts at two decimal places; a finer-grained
	// amount would be rounded on insert and no longer match the
	// commission basis.
	if !req.Amount.Equal(req.Amount.Round(2)) {
		return nil, InvalidRequest("amount must have at most two decimal places")
	}

	populated := 0
	for _, id := range []*int{req.CampaignID, req.BaseID, req.ProjectID} {
		if id != nil {
			populated++
		}
	}
	if populated > 1 {
		return nil, InvalidRequest("at most one of campaign_id, base_id and project_id may be set")
	}

	if req.AttendeeID != nil && req.ProjectID == nil {
		return nil, InvalidRequest("project_id is required when specifying an attendee")
	}

	if req.PaymentMethod == MethodCreditCard && req.CardID == nil && !req.CardDetails.Complete() {
		return nil, InvalidRequest("complete card details required for credit card payment")
	}

	tgt := &targets{}

	o, err := s.ongs.FindByID(ctx, req.OngID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, NotFound("ONG not found")
		}
		return nil, Internal("fetching ONG", err)
	}
	tgt.ong = o

	if req.CampaignID != nil {
		tgt.campaign, err = s.ongs.FindCampaign(ctx, *req.CampaignID, o.ID)
		if err != nil {
			return nil, scopedLookupError("campaign", err)
		}
	}

	if req.BaseID != nil {
		tgt.base, err = s.ongs.FindBase(ctx, *req.BaseID, o.ID)
		if err != nil {
			return nil, scopedLookupError("base", err)
		}
	}

	if req.ProjectID != nil {
		tgt.project, err = s.ongs.FindProject(ctx, *req.ProjectID, o.ID)
		if err != nil {
			return nil, scopedLookupError("project", err)
		}
	}

	if req.AttendeeID != nil {
		tgt.attendee, err = s.ongs.FindAttendee(ctx, *req.AttendeeID, *req.ProjectID)
		if err != nil {
			return nil, scopedLookupError("attendee", err)
		}
	}

	return tgt, nil
}

// resolveCustomer returns the gateway customer id for a maintainer,
// creating one and caching it on first use.
func (s *Service) resolveCustomer(ctx context.Context, m *maintainer.Maintainer) (string, error) {
	if m.ClientID != nil && *m.ClientID != "" {
		return *m.ClientID, nil
	}

	customer, err := s.gateway.CreateCustomer(ctx, pagarme.CustomerParams{
		Name:     m.Name,
		Email:    m.Email,
		Type:     "individual",
		Document: m.Document,
		Phones:   phonesFrom(m.PhoneNumber),
	})
	if err != nil {
		return "", classifyGatewayError("creating customer", err)
	}

	if err := s.maintainers.SetClientID(ctx, m.ID, customer.ID); err != nil {
		// Cache miss next time; the customer exists either way.
		logger.Warn("failed to cache gateway customer id", "maintainer_id", m.ID, "error", err)
	}

	return customer.ID, nil
}

// prepareCard returns the card token for a credit card payment, either
// the supplied one or a freshly minted token, which is also vaulted as
// a local card reference.
func (s *Service) prepareCard(ctx context.Context, m *maintainer.Maintainer, customerID string, req CreatePaymentRequest) (string, error) {
	if req.CardID != nil && *req.CardID != "" {
		return *req.CardID, nil
	}

	card, err := s.gateway.CreateCard(ctx, pagarme.CardParams{
		Number:         req.CardDetails.Number,
		HolderName:     req.CardDetails.HolderName,
		ExpirationDate: req.CardDetails.ExpirationDate,
		CVV:            req.CardDetails.CVV,
		CustomerID:     customerID,
	})
	if err != nil {
		return "", classifyGatewayError("tokenizing card", err)
	}

	if _, err := s.maintainers.SaveCard(ctx, m.ID, card.ID, card.LastFourDigits, card.Brand); err != nil {
		return "", Internal("saving card reference", err)
	}

	return card.ID, nil
}

// fail marks the transaction failed with a best-effort message and
// returns the original error. The row must never stay pending after a
// failed flow.
func (s *Service) fail(ctx context.Context, txID int, method PaymentMethod, cause error) error {
	msg := errorMessage(cause)
	if _, err := s.repo.UpdateStatus(ctx, txID, StatusFailed, &msg); err != nil {
		logger.Error("failed to mark transaction as failed",
			"transaction_id", txID, "error", err)
	}
	metrics.RecordPayment(string(method), "failed")
	return cause
}

func errorMessage(err error) string {
	msg := err.Error()
	if strings.Contains(strings.ToLower(msg), "expired") {
		return "Card expired"
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Detail
	}
	return msg
}

func classifyGatewayError(op string, err error) error {
	var apiErr *pagarme.APIError
	if errors.As(err, &apiErr) {
		return GatewayError(op+": "+apiErr.Body, err)
	}
	var unavailable *pagarme.UnavailableError
	if errors.As(err, &unavailable) {
		return GatewayUnavailable(op, err)
	}
	return Internal(op, err)
}

func scopedLookupError(entity string, err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return InvalidReference(entity + " not found or not associated with ONG")
	}
	return Internal("fetching "+entity, err)
}

// phonesFrom splits a Brazilian phone number (area code followed by
// the local number) into the gateway's phone shape.
func phonesFrom(number string) *pagarme.Phones {
	if len(number) < 3 {
		return nil
	}
	return &pagarme.Phones{
		MobilePhone: &pagarme.Phone{
			CountryCode: "+55",
			AreaCode:    number[:2],
			Number:      number[2:],
		},
	}
}

func describe(tgt *targets) string {
	description := fmt.Sprintf("Doação para ONG %d", tgt.ong.ID)
	switch {
	case tgt.campaign != nil:
		description += ", campanha " + tgt.campaign.Name
	case tgt.base != nil:
		description += ", base " + tgt.base.Name
	case tgt.project != nil:
		description += ", projeto " + tgt.project.Name
		if tgt.attendee != nil {
			description += ", participante " + tgt.attendee.Name
		}
	}
	return description
}
