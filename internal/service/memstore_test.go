package service

import (
	"context"
	"sort"
	"time"

	"roomrent-backend/internal/domain"
	"roomrent-backend/internal/repository"
)

// memState is the full content of the in-memory store.
type memState struct {
	rooms        map[int32]domain.Room
	managers     map[int32]domain.Manager
	users        map[int32]domain.User
	rentals      map[int32]domain.RoomRental
	transactions map[int32]domain.Transaction
	nextTxID     int32
}

func (s *memState) clone() *memState {
	c := &memState{
		rooms:        make(map[int32]domain.Room, len(s.rooms)),
		managers:     make(map[int32]domain.Manager, len(s.managers)),
		users:        make(map[int32]domain.User, len(s.users)),
		rentals:      make(map[int32]domain.RoomRental, len(s.rentals)),
		transactions: make(map[int32]domain.Transaction, len(s.transactions)),
		nextTxID:     s.nextTxID,
	}
	for k, v := range s.rooms {
		c.rooms[k] = v
	}
	for k, v := range s.managers {
		c.managers[k] = v
	}
	for k, v := range s.users {
		c.users[k] = v
	}
	for k, v := range s.rentals {
		if v.PaidUntil != nil {
			p := *v.PaidUntil
			v.PaidUntil = &p
		}
		c.rentals[k] = v
	}
	for k, v := range s.transactions {
		c.transactions[k] = v
	}
	return c
}

// memStore is a Transactor whose units of work operate on a copy of the
// state that replaces the committed state only when fn succeeds.
type memStore struct {
	state *memState
	// failUpdatePaidUntil makes the rental write fail after the transaction
	// row was written.
	failUpdatePaidUntil error
}

func newMemStore() *memStore {
	return &memStore{state: &memState{
		rooms:        map[int32]domain.Room{},
		managers:     map[int32]domain.Manager{},
		users:        map[int32]domain.User{},
		rentals:      map[int32]domain.RoomRental{},
		transactions: map[int32]domain.Transaction{},
	}}
}

func (m *memStore) WithinTx(ctx context.Context, fn func(ctx context.Context, repos repository.Repositories) error) error {
	work := m.state.clone()
	if err := fn(ctx, m.reposFor(work)); err != nil {
		return err
	}
	m.state = work
	return nil
}

func (m *memStore) reposFor(s *memState) repository.Repositories {
	return repository.Repositories{
		Rooms:        &memRooms{s: s},
		Managers:     &memManagers{s: s},
		Rentals:      &memRentals{s: s, failUpdate: m.failUpdatePaidUntil},
		Transactions: &memTransactions{s: s},
	}
}

// committed returns repositories reading the committed state.
func (m *memStore) committed() repository.Repositories {
	return m.reposFor(m.state)
}

// transactions returns a TransactionRepository that always works on the
// latest committed state.
func (m *memStore) transactions() repository.TransactionRepository {
	return &memCommittedTransactions{store: m}
}

type memRooms struct {
	repository.RoomRepository
	s *memState
}

func (r *memRooms) GetByID(_ context.Context, id int32) (*domain.Room, error) {
	rm, ok := r.s.rooms[id]
	if !ok {
		return nil, domain.NewNotFound("room", id)
	}
	return &rm, nil
}

type memManagers struct {
	repository.ManagerRepository
	s *memState
}

func (r *memManagers) GetByID(_ context.Context, id int32) (*domain.Manager, error) {
	m, ok := r.s.managers[id]
	if !ok {
		return nil, domain.NewNotFound("manager", id)
	}
	return &m, nil
}

type memRentals struct {
	repository.RentalRepository
	s          *memState
	failUpdate error
}

func (r *memRentals) GetByID(_ context.Context, id int32) (*domain.RoomRental, error) {
	rt, ok := r.s.rentals[id]
	if !ok {
		return nil, domain.NewNotFound("rental", id)
	}
	return &rt, nil
}

func (r *memRentals) GetByIDForUpdate(ctx context.Context, id int32) (*domain.RoomRental, error) {
	return r.GetByID(ctx, id)
}

func (r *memRentals) UpdatePaidUntil(_ context.Context, id int32, paidUntil time.Time) error {
	if r.failUpdate != nil {
		return r.failUpdate
	}
	rt, ok := r.s.rentals[id]
	if !ok {
		return domain.NewNotFound("rental", id)
	}
	rt.PaidUntil = &paidUntil
	r.s.rentals[id] = rt
	return nil
}

type memTransactions struct {
	s *memState
}

func (r *memTransactions) Create(_ context.Context, tx *domain.Transaction) error {
	r.s.nextTxID++
	tx.ID = r.s.nextTxID
	r.s.transactions[tx.ID] = *tx
	return nil
}

func (r *memTransactions) view(tx domain.Transaction) domain.TransactionView {
	v := domain.TransactionView{Transaction: tx}
	if rt, ok := r.s.rentals[tx.RentalID]; ok {
		v.UserID = rt.UserID
		v.RoomID = rt.RoomID
		if u, ok := r.s.users[rt.UserID]; ok {
			v.UserFirstName, v.UserLastName, v.UserEmail = u.FirstName, u.LastName, u.Email
		}
		if rm, ok := r.s.rooms[rt.RoomID]; ok {
			v.RoomName, v.RoomType = rm.Name, rm.Type
		}
	}
	return v
}

func (r *memTransactions) GetView(_ context.Context, id int32) (*domain.TransactionView, error) {
	tx, ok := r.s.transactions[id]
	if !ok {
		return nil, domain.NewNotFound("transaction", id)
	}
	v := r.view(tx)
	return &v, nil
}

func (r *memTransactions) ListViews(_ context.Context, rentalID int32) ([]domain.TransactionView, error) {
	var views []domain.TransactionView
	for _, tx := range r.s.transactions {
		if rentalID > 0 && tx.RentalID != rentalID {
			continue
		}
		views = append(views, r.view(tx))
	}
	sort.Slice(views, func(i, j int) bool { return views[i].ID > views[j].ID })
	return views, nil
}

func (r *memTransactions) Delete(_ context.Context, id int32) error {
	if _, ok := r.s.transactions[id]; !ok {
		return domain.NewNotFound("transaction", id)
	}
	delete(r.s.transactions, id)
	return nil
}

type memCommittedTransactions struct {
	store *memStore
}

func (r *memCommittedTransactions) Create(ctx context.Context, tx *domain.Transaction) error {
	return (&memTransactions{s: r.store.state}).Create(ctx, tx)
}

func (r *memCommittedTransactions) GetView(ctx context.Context, id int32) (*domain.TransactionView, error) {
	return (&memTransactions{s: r.store.state}).GetView(ctx, id)
}

func (r *memCommittedTransactions) ListViews(ctx context.Context, rentalID int32) ([]domain.TransactionView, error) {
	return (&memTransactions{s: r.store.state}).ListViews(ctx, rentalID)
}

func (r *memCommittedTransactions) Delete(ctx context.Context, id int32) error {
	return (&memTransactions{s: r.store.state}).Delete(ctx, id)
}
