package wallet

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/AlexZinkM/walletguard/internal/authorizer"
	"github.com/AlexZinkM/walletguard/internal/common"
	"github.com/AlexZinkM/walletguard/internal/logger"
	"github.com/AlexZinkM/walletguard/internal/metrics"
	"github.com/AlexZinkM/walletguard/internal/model"
	"github.com/AlexZinkM/walletguard/internal/paycode"

	"github.com/google/uuid"
)

// CreateIntent builds a TransferIntent, resolves its recipient and registers
// a classified Authorizer for it.
func (s *Service) CreateIntent(ctx context.Context, req model.CreateIntentRequest) (*authorizer.Authorizer, error) {
	amount, err := common.ParseAmount(req.Amount)
	if err != nil {
		return nil, fmt.Errorf("invalid amount: %w", model.ErrInvalidFormat)
	}
	recipient, err := s.recipient(ctx, req)
	if err != nil {
		return nil, err
	}

	intent := model.TransferIntent{
		ID:          uuid.NewString(),
		Amount:      amount,
		Recipient:   recipient,
		Description: strings.TrimSpace(req.Description),
	}
	a, err := authorizer.New(intent, s.opts.Policy, s.pins, s.bio, authorizer.WithIdleTimeout(s.opts.IdleTimeout))
	if err != nil {
		return nil, err
	}
	if _, err := a.Classify(); err != nil {
		return nil, err
	}
	s.intents.Put(a)
	return a, nil
}

func (s *Service) recipient(ctx context.Context, req model.CreateIntentRequest) (model.RecipientRef, error) {
	address, code, contact := strings.TrimSpace(req.Address), strings.TrimSpace(req.Code), strings.TrimSpace(req.Contact)
	n := 0
	for _, v := range []string{address, code, contact} {
		if v != "" {
			n++
		}
	}
	if n != 1 {
		return model.RecipientRef{}, fmt.Errorf("exactly one of address, code or contact is required: %w", model.ErrInvalidFormat)
	}

	switch {
	case address != "":
		return model.NewAddressRecipient(address)
	case code != "":
		pc, err := paycode.Parse(code)
		if err != nil {
			return model.RecipientRef{}, err
		}
		return s.resolver.Resolve(ctx, pc.RecipientID)
	default:
		return s.resolver.Resolve(ctx, contact)
	}
}

// Intent returns a live authorizer.
func (s *Service) Intent(id string) (*authorizer.Authorizer, error) {
	a, ok := s.intents.Get(id)
	if !ok {
		return nil, ErrIntentNotFound
	}
	return a, nil
}

// Pay executes an Authorized intent once: it issues a capability token and
// hands intent and token to the executor.
func (s *Service) Pay(ctx context.Context, id string) (*model.PayResponse, error) {
	a, err := s.Intent(id)
	if err != nil {
		return nil, err
	}
	decision, ok := a.Decision()
	if !ok || decision.Outcome != model.OutcomeAuthorized {
		return nil, fmt.Errorf("%w: intent is %s", authorizer.ErrInvalidTransition, a.State())
	}

	// Check cooldown
	s.payMu.Lock()
	defer s.payMu.Unlock()

	if !s.lastPay.IsZero() && s.opts.Cooldown > 0 {
		if elapsed := s.now().Sub(s.lastPay); elapsed < s.opts.Cooldown {
			remaining := s.opts.Cooldown - elapsed
			return nil, fmt.Errorf("%w, please wait %v", ErrCooldown, remaining.Round(time.Second))
		}
	}

	if err := a.MarkExecuted(); err != nil {
		return nil, err
	}

	intent := a.Intent()
	token, _, err := s.signer.Issue(intent, decision, a.Snapshot().Class == authorizer.ClassHighValue)
	if err != nil {
		return nil, err
	}

	result, err := s.executor.Execute(ctx, model.TransferRequest{
		IntentID:    intent.ID,
		Recipient:   intent.Recipient,
		Amount:      intent.Amount,
		Description: intent.Description,
	}, token)
	if err != nil {
		if errors.Is(err, model.ErrTransferRejected) {
			metrics.Transfers.WithLabelValues("rejected").Inc()
		} else {
			metrics.Transfers.WithLabelValues("error").Inc()
		}
		s.log.Warn("transfer failed", logger.IntentID(intent.ID), logger.Err(err))
		return nil, err
	}

	s.lastPay = s.now()
	s.intents.Remove(intent.ID)
	metrics.Transfers.WithLabelValues("ok").Inc()
	s.log.Info("transfer executed", logger.IntentID(intent.ID))

	return &model.PayResponse{
		TxID: result.TransactionID,
	}, nil
}
