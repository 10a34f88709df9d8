package domain

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	ErrRaffleNotFound   = errors.New("raffle not found")
	ErrRaffleNotActive  = errors.New("raffle is not active")
	ErrNoNumbersSold    = errors.New("no numbers sold yet")
	ErrNoNumbers        = errors.New("number list is empty")
	ErrNumberOutOfRange = errors.New("number out of raffle range")
	ErrDuplicateNumbers = errors.New("duplicate numbers in request")

	ErrPurchaseNotFound = errors.New("purchase not found")
	ErrUserExists       = errors.New("username, email or cpf already registered")
)

// NumbersTakenError reports every requested number that is already sold,
// sorted ascending, so the caller can resubmit without guessing.
type NumbersTakenError struct {
	Numbers []int
}

func (e *NumbersTakenError) Error() string {
	taken := make([]string, len(e.Numbers))
	for i, n := range e.Numbers {
		taken[i] = strconv.Itoa(n)
	}
	return fmt.Sprintf("numbers already sold: [%s]", strings.Join(taken, ", "))
}
