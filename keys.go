package regreport

import (
	"fmt"
	"strings"
)

// BuildKey derives a composite classification key by concatenating the
// string form of the fields in order, with surrounding whitespace stripped
// from the final result. No separator is inserted: the same field list must
// be used on the fact side and the mapping side for a coverage check to be
// meaningful.
func BuildKey(fields ...string) string {
	return strings.TrimSpace(strings.Join(fields, ""))
}

// KeySpace identifies one of the five independent (field list, mapping
// table) pairs used for coverage checking.
type KeySpace int

const (
	// TransactionTypeSpace keys ledger entries by group account, security
	// type and investment marker against the transaction-type map.
	TransactionTypeSpace KeySpace = iota
	// InvestmentTypeSpace keys ledger entries by security type and duration
	// against the investment-type map.
	InvestmentTypeSpace
	// InvestmentSpace keys ledger entries by security id and security type
	// against the investment map.
	InvestmentSpace
	// AccountSpace keys general-ledger account balances against the account map.
	AccountSpace
	// PositionSpace keys investment positions against the position map.
	PositionSpace
)

func (s KeySpace) String() string {
	switch s {
	case TransactionTypeSpace:
		return "transaction-type"
	case InvestmentTypeSpace:
		return "investment-type"
	case InvestmentSpace:
		return "investment"
	case AccountSpace:
		return "account"
	case PositionSpace:
		return "position"
	default:
		panic(fmt.Sprintf("unknown key space %d", s))
	}
}

// GapTableName is the name of the gap sheet emitted for this key space.
func (s KeySpace) GapTableName() string {
	switch s {
	case TransactionTypeSpace:
		return "Missing Transaction Types"
	case InvestmentTypeSpace:
		return "Missing Investment Types"
	case InvestmentSpace:
		return "Missing Investment Mappings"
	case AccountSpace:
		return "Missing Account Mappings"
	case PositionSpace:
		return "Missing Position Mappings"
	default:
		panic(fmt.Sprintf("unknown key space %d", s))
	}
}

// AllKeySpaces lists the five key spaces in reconciliation order.
func AllKeySpaces() []KeySpace {
	return []KeySpace{
		TransactionTypeSpace,
		InvestmentTypeSpace,
		InvestmentSpace,
		AccountSpace,
		PositionSpace,
	}
}
