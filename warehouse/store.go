// Package warehouse loads fact and mapping tables from the reporting
// warehouse over database/sql.
package warehouse

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq" // postgres driver

	"github.com/kvartal/regreport"
	"github.com/kvartal/regreport/date"
	"github.com/shopspring/decimal"
)

// Store reads the warehouse tables. It implements both regreport.FactSource
// and regreport.MappingSource so one connection serves a whole run.
type Store struct {
	db           *sql.DB
	BaseCurrency string
}

var _ regreport.FactSource = (*Store)(nil)
var _ regreport.MappingSource = (*Store)(nil)

// Open connects to the warehouse with a lib/pq connection string and pings it
// once, so a bad DSN fails at startup rather than mid-run.
func Open(dsn, baseCurrency string) (*Store, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("opening warehouse: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("pinging warehouse: %w", err)
	}
	return New(db, baseCurrency), nil
}

// New wraps an existing connection pool.
func New(db *sql.DB, baseCurrency string) *Store {
	return &Store{db: db, BaseCurrency: baseCurrency}
}

// Close releases the connection pool.
func (s *Store) Close() error { return s.db.Close() }

// checkColumns verifies the result set has the exact expected column order.
// A silently renamed or dropped warehouse column must fail loudly here, not
// produce shifted values downstream.
func checkColumns(rows *sql.Rows, table string, want []string) error {
	got, err := rows.Columns()
	if err != nil {
		return err
	}
	for i, name := range want {
		if i >= len(got) || got[i] != name {
			return &regreport.SchemaError{Table: table, Column: name}
		}
	}
	return nil
}

const ledgerQuery = `
SELECT booking_date,
       COALESCE(account, '')       AS account,
       COALESCE(group_account, '') AS group_account,
       COALESCE(security_type, '') AS security_type,
       COALESCE(security_id, '')   AS security_id,
       COALESCE(investments, '')   AS investments,
       COALESCE(purpose, '')       AS purpose,
       COALESCE(duration, '')      AS duration,
       COALESCE(debit, 0)          AS debit,
       COALESCE(credit, 0)         AS credit,
       COALESCE(debit_base, 0)     AS debit_base,
       COALESCE(credit_base, 0)    AS credit_base
  FROM gl_entries
 WHERE booking_date <= $1
 ORDER BY booking_date, account`

var ledgerColumns = []string{
	"booking_date", "account", "group_account", "security_type", "security_id",
	"investments", "purpose", "duration", "debit", "credit", "debit_base", "credit_base",
}

// LedgerEntries returns every ledger row booked on or before the report date.
// Window slicing happens in memory; the query only bounds the upper edge.
func (s *Store) LedgerEntries(ctx context.Context, dates regreport.Dates) ([]regreport.LedgerEntry, error) {
	rows, err := s.db.QueryContext(ctx, ledgerQuery, dates.Report.Time())
	if err != nil {
		return nil, fmt.Errorf("querying gl_entries: %w", err)
	}
	defer rows.Close()
	if err := checkColumns(rows, "gl_entries", ledgerColumns); err != nil {
		return nil, err
	}

	var entries []regreport.LedgerEntry
	for rows.Next() {
		var e regreport.LedgerEntry
		var booked time.Time
		var debit, credit, debitBase, creditBase decimal.Decimal
		if err := rows.Scan(
			&booked,
			&e.Account,
			&e.GroupAccount,
			&e.SecurityType,
			&e.SecurityID,
			&e.Investments,
			&e.Purpose,
			&e.Duration,
			&debit,
			&credit,
			&debitBase,
			&creditBase,
		); err != nil {
			return nil, fmt.Errorf("scanning gl_entries: %w", err)
		}
		e.BookingDate = date.FromTime(booked)
		e.Debit = regreport.M(debit, "")
		e.Credit = regreport.M(credit, "")
		e.DebitBase = regreport.M(debitBase, s.BaseCurrency)
		e.CreditBase = regreport.M(creditBase, s.BaseCurrency)
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

const transactionQuery = `
SELECT report_date,
       COALESCE(security_id, '')   AS security_id,
       COALESCE(security_type, '') AS security_type,
       COALESCE(duration, '')      AS duration,
       COALESCE(nominal, 0)        AS nominal
  FROM security_transactions
 WHERE report_date >= $1 AND report_date <= $2`

var transactionColumns = []string{
	"report_date", "security_id", "security_type", "duration", "nominal",
}

// SecurityTransactions returns the year-to-date trade rows carrying share counts.
func (s *Store) SecurityTransactions(ctx context.Context, dates regreport.Dates) ([]regreport.SecurityTransaction, error) {
	rows, err := s.db.QueryContext(ctx, transactionQuery, dates.YearStart.Time(), dates.Report.Time())
	if err != nil {
		return nil, fmt.Errorf("querying security_transactions: %w", err)
	}
	defer rows.Close()
	if err := checkColumns(rows, "security_transactions", transactionColumns); err != nil {
		return nil, err
	}

	var transactions []regreport.SecurityTransaction
	for rows.Next() {
		var t regreport.SecurityTransaction
		var reported time.Time
		var nominal decimal.Decimal
		if err := rows.Scan(&reported, &t.SecurityID, &t.SecurityType, &t.Duration, &nominal); err != nil {
			return nil, fmt.Errorf("scanning security_transactions: %w", err)
		}
		t.ReportDate = date.FromTime(reported)
		t.Nominal = regreport.Q(nominal)
		transactions = append(transactions, t)
	}
	return transactions, rows.Err()
}

const positionQuery = `
SELECT report_date,
       COALESCE(investment_type, '')     AS investment_type,
       COALESCE(ifrs_group, '')          AS ifrs_group,
       COALESCE(name, '')                AS name,
       COALESCE(isin, '')                AS isin,
       COALESCE(security_id, '')         AS security_id,
       COALESCE(duration, '')            AS duration,
       COALESCE(lot_nominal, 0)          AS lot_nominal,
       COALESCE(quantity, 0)             AS quantity,
       COALESCE(quotation_currency, '')  AS quotation_currency,
       COALESCE(acquisition_value, 0)    AS acquisition_value,
       COALESCE(book_value, 0)           AS book_value,
       COALESCE(book_value_qc, 0)        AS book_value_qc,
       COALESCE(accrued_interest, 0)     AS accrued_interest,
       COALESCE(accrued_interest_qc, 0)  AS accrued_interest_qc,
       COALESCE(market_value, 0)         AS market_value,
       COALESCE(coupon_rate, '')         AS coupon_rate,
       COALESCE(coupon_frequency, '')    AS coupon_frequency,
       COALESCE(effective_rate, '')      AS effective_rate,
       purchase_date,
       maturity_date,
       COALESCE(rating, '')              AS rating,
       COALESCE(rating_agency, '')       AS rating_agency
  FROM positions
 WHERE report_date = $1`

var positionColumns = []string{
	"report_date", "investment_type", "ifrs_group", "name", "isin",
	"security_id", "duration", "lot_nominal", "quantity", "quotation_currency",
	"acquisition_value", "book_value", "book_value_qc", "accrued_interest",
	"accrued_interest_qc", "market_value", "coupon_rate", "coupon_frequency",
	"effective_rate", "purchase_date", "maturity_date", "rating", "rating_agency",
}

// Positions returns the snapshot rows dated exactly on the report date. The
// positions table keeps one snapshot per valuation date, so a wider filter
// would duplicate every position.
func (s *Store) Positions(ctx context.Context, dates regreport.Dates) ([]regreport.Position, error) {
	rows, err := s.db.QueryContext(ctx, positionQuery, dates.Report.Time())
	if err != nil {
		return nil, fmt.Errorf("querying positions: %w", err)
	}
	defer rows.Close()
	if err := checkColumns(rows, "positions", positionColumns); err != nil {
		return nil, err
	}

	var positions []regreport.Position
	for rows.Next() {
		var p regreport.Position
		var reported time.Time
		var purchased, matures sql.NullTime
		var lotNominal, quantity decimal.Decimal
		var acquisition, book, bookQC, interest, interestQC, market decimal.Decimal
		if err := rows.Scan(
			&reported,
			&p.InvestmentType,
			&p.IFRSGroup,
			&p.Name,
			&p.ISIN,
			&p.SecurityID,
			&p.Duration,
			&lotNominal,
			&quantity,
			&p.QuotationCurrency,
			&acquisition,
			&book,
			&bookQC,
			&interest,
			&interestQC,
			&market,
			&p.CouponRate,
			&p.CouponFrequency,
			&p.EffectiveRate,
			&purchased,
			&matures,
			&p.Rating,
			&p.RatingAgency,
		); err != nil {
			return nil, fmt.Errorf("scanning positions: %w", err)
		}
		p.ReportDate = date.FromTime(reported)
		if purchased.Valid {
			p.PurchaseDate = date.FromTime(purchased.Time)
		}
		if matures.Valid {
			p.MaturityDate = date.FromTime(matures.Time)
		}
		p.LotNominal = regreport.Q(lotNominal)
		p.Quantity = regreport.Q(quantity)
		p.AcquisitionValue = regreport.M(acquisition, s.BaseCurrency)
		p.BookValue = regreport.M(book, s.BaseCurrency)
		p.BookValueQC = regreport.M(bookQC, "")
		p.AccruedInterest = regreport.M(interest, s.BaseCurrency)
		p.AccruedInterestQC = regreport.M(interestQC, "")
		p.MarketValue = regreport.M(market, s.BaseCurrency)
		positions = append(positions, p)
	}
	return positions, rows.Err()
}

const accountQuery = `
SELECT COALESCE(no_, '')                AS no_,
       COALESCE(no_2, '')               AS no_2,
       COALESCE(name, '')               AS name,
       COALESCE(SUM(debit - credit), 0) AS balance,
       MAX(posting_date)                AS latest_posting
  FROM nav_entries
 WHERE posting_date <= $1
 GROUP BY no_, no_2, name
 ORDER BY no_, no_2`

var accountColumns = []string{"no_", "no_2", "name", "balance", "latest_posting"}

// AccountBalances returns the ledger accounts with balances summed up to the
// report date.
func (s *Store) AccountBalances(ctx context.Context, dates regreport.Dates) ([]regreport.AccountBalance, error) {
	rows, err := s.db.QueryContext(ctx, accountQuery, dates.Report.Time())
	if err != nil {
		return nil, fmt.Errorf("querying nav_entries: %w", err)
	}
	defer rows.Close()
	if err := checkColumns(rows, "nav_entries", accountColumns); err != nil {
		return nil, err
	}

	var accounts []regreport.AccountBalance
	for rows.Next() {
		var a regreport.AccountBalance
		var balance decimal.Decimal
		var posted sql.NullTime
		if err := rows.Scan(&a.No, &a.No2, &a.Name, &balance, &posted); err != nil {
			return nil, fmt.Errorf("scanning nav_entries: %w", err)
		}
		a.Balance = regreport.M(balance, s.BaseCurrency)
		if posted.Valid {
			a.LatestPosting = date.FromTime(posted.Time)
		}
		accounts = append(accounts, a)
	}
	return accounts, rows.Err()
}
