package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"roomrent-backend/internal/domain"
	"roomrent-backend/internal/logger"
	"roomrent-backend/internal/repository"
	"roomrent-backend/internal/utils"
)

// receiptTimeout bounds the receipt email sent after a payment commits.
const receiptTimeout = 10 * time.Second

type ledgerService struct {
	txr            repository.Transactor
	txRepo         repository.TransactionRepository
	emailSvc       EmailService
	storeTimeout   time.Duration
	receiptTimeout time.Duration
	now            func() time.Time
}

// NewLedgerService builds the ledger. storeTimeout bounds each payment;
// zero leaves the caller's deadline alone. emailSvc may be nil.
func NewLedgerService(
	txr repository.Transactor,
	txRepo repository.TransactionRepository,
	emailSvc EmailService,
	storeTimeout time.Duration,
) LedgerService {
	return &ledgerService{
		txr:            txr,
		txRepo:         txRepo,
		emailSvc:       emailSvc,
		storeTimeout:   storeTimeout,
		receiptTimeout: receiptTimeout,
		now:            time.Now,
	}
}

// RecordPayment charges monthsCount months of rent on a rental. The new
// transaction covers [base, base+monthsCount) where base is the rental's
// paid-until date, or its start date before the first payment, and the
// rental's paid-until moves to the end of that range. Both writes happen in
// one unit of work with the rental row locked.
func (s *ledgerService) RecordPayment(ctx context.Context, rentalID, managerID int32, monthsCount int) (*domain.TransactionView, error) {
	const method = "LedgerService.RecordPayment"
	logger.EnterMethod(ctx, method, "rental_id", rentalID, "manager_id", managerID, "months_count", monthsCount)

	if monthsCount <= 0 {
		err := fmt.Errorf("%w: months count must be positive, got %d", domain.ErrMalformedInput, monthsCount)
		logger.ExitMethodWithError(ctx, method, err, true)
		return nil, err
	}

	opCtx := ctx
	if s.storeTimeout > 0 {
		var cancel context.CancelFunc
		opCtx, cancel = context.WithTimeout(ctx, s.storeTimeout)
		defer cancel()
	}

	var view *domain.TransactionView
	err := s.txr.WithinTx(opCtx, func(ctx context.Context, repos repository.Repositories) error {
		rental, err := repos.Rentals.GetByIDForUpdate(ctx, rentalID)
		if err != nil {
			return err
		}

		room, err := repos.Rooms.GetByID(ctx, rental.RoomID)
		if err != nil {
			return err
		}

		if _, err := repos.Managers.GetByID(ctx, managerID); err != nil {
			return err
		}

		amount, err := utils.RentAmount(room.PlacePrice, monthsCount)
		if err != nil {
			return err
		}

		paidFrom := rental.PaymentBase()
		paidTo, err := utils.CoverageEnd(paidFrom, monthsCount)
		if err != nil {
			return err
		}

		tx := &domain.Transaction{
			RentalID:    rental.ID,
			ManagerID:   managerID,
			Amount:      amount,
			PaidFrom:    paidFrom,
			PaidTo:      paidTo,
			TimeCreated: s.now().UTC(),
		}
		if err := repos.Transactions.Create(ctx, tx); err != nil {
			return err
		}

		if err := repos.Rentals.UpdatePaidUntil(ctx, rental.ID, paidTo); err != nil {
			return err
		}

		view, err = repos.Transactions.GetView(ctx, tx.ID)
		return err
	})
	if err != nil {
		err = classifyTimeout(err)
		logger.ExitMethodWithError(ctx, method, err, !domain.IsStoreFailure(err), "rental_id", rentalID)
		return nil, err
	}

	logger.InfoContext(ctx, "Payment recorded",
		"transaction_id", view.ID,
		"rental_id", rentalID,
		"amount", view.Amount,
		"paid_from", view.PaidFrom.Format(utils.DateLayout),
		"paid_to", view.PaidTo.Format(utils.DateLayout))

	s.sendReceipt(ctx, view)

	logger.ExitMethod(ctx, method, "transaction_id", view.ID)
	return view, nil
}

// sendReceipt mails the renter a receipt. The payment is already committed,
// so failures are only logged.
func (s *ledgerService) sendReceipt(ctx context.Context, view *domain.TransactionView) {
	if s.emailSvc == nil || view.UserEmail == "" {
		return
	}

	mailCtx, cancel := context.WithTimeout(ctx, s.receiptTimeout)
	defer cancel()

	if err := s.emailSvc.SendPaymentReceipt(mailCtx, view); err != nil {
		logger.WarnContext(ctx, "Failed to send payment receipt", "transaction_id", view.ID, "error", err)
	}
}

// classifyTimeout reports an expired operation deadline as a store failure
// even when the store surfaced it as a bare context error.
func classifyTimeout(err error) error {
	if domain.IsStoreFailure(err) {
		return err
	}
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return &domain.StoreError{Op: "record payment", Err: err}
	}
	return err
}

func (s *ledgerService) GetTransaction(ctx context.Context, id int32) (*domain.TransactionView, error) {
	return s.txRepo.GetView(ctx, id)
}

func (s *ledgerService) ListTransactions(ctx context.Context, rentalID int32) ([]domain.TransactionView, error) {
	return s.txRepo.ListViews(ctx, rentalID)
}

// DeleteTransaction removes the historical record only. The rental's
// paid-until date is left as is, so it can run ahead of the remaining
// transactions after a delete.
func (s *ledgerService) DeleteTransaction(ctx context.Context, id int32) error {
	const method = "LedgerService.DeleteTransaction"
	logger.EnterMethod(ctx, method, "transaction_id", id)

	if err := s.txRepo.Delete(ctx, id); err != nil {
		logger.ExitMethodWithError(ctx, method, err, !domain.IsStoreFailure(err))
		return err
	}

	logger.InfoContext(ctx, "Transaction deleted", "transaction_id", id)
	logger.ExitMethod(ctx, method)
	return nil
}
