package repo

import (
	"github.com/julianaianov/rifamax/internal/pg"
	numberrepo "github.com/julianaianov/rifamax/internal/repo/number-repo"
	purchaserepo "github.com/julianaianov/rifamax/internal/repo/purchase-repo"
	rafflerepo "github.com/julianaianov/rifamax/internal/repo/raffle-repo"
	userrepo "github.com/julianaianov/rifamax/internal/repo/user-repo"
)

// Repositories holds the concrete repos; each service narrows them to
// the interface it declares.
type Repositories struct {
	UserRepo     *userrepo.Repository
	RaffleRepo   *rafflerepo.Repository
	NumberRepo   *numberrepo.Repository
	PurchaseRepo *purchaserepo.Repository
}

func New(conn pg.Database) *Repositories {
	return &Repositories{
		UserRepo:     userrepo.New(conn),
		RaffleRepo:   rafflerepo.New(conn),
		NumberRepo:   numberrepo.New(conn),
		PurchaseRepo: purchaserepo.New(conn),
	}
}
