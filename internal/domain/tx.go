package domain

import "context"

// TxRepositories are repositories whose writes share one database transaction.
type TxRepositories struct {
	Reservations ReservationRepository
	Coupons      CouponRepository
	Deposits     DepositRepository
}

// Transactor runs fn in a transaction. It commits when fn returns nil and rolls back
// otherwise, returning fn's error unchanged.
type Transactor interface {
	InTx(ctx context.Context, fn func(repos TxRepositories) error) error
}
