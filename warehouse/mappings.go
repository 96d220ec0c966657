package warehouse

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/kvartal/regreport"
)

// Mappings loads the five hand-maintained mapping tables plus the code map.
// Keys are rebuilt here with the same derivation the fact rows use, so a
// mapping row covers a fact row exactly when their key components agree after
// trimming.
func (s *Store) Mappings(ctx context.Context) (regreport.MappingSet, error) {
	m := regreport.MappingSet{
		TransactionTypes: make(map[string]regreport.TransactionTypeAttrs),
		InvestmentTypes:  make(map[string]string),
		Investments:      make(map[string]regreport.InvestmentAttrs),
		Accounts:         make(map[string]regreport.LookupAttrs),
		Positions:        make(map[string]regreport.LookupAttrs),
		Codes:            make(map[string]string),
	}
	for _, load := range []func(context.Context, *regreport.MappingSet) error{
		s.loadTransactionTypes,
		s.loadInvestmentTypes,
		s.loadInvestments,
		s.loadAccounts,
		s.loadPositions,
		s.loadCodes,
	} {
		if err := load(ctx, &m); err != nil {
			return regreport.MappingSet{}, err
		}
	}
	return m, nil
}

const transactionTypeMapQuery = `
SELECT COALESCE(group_account, ''),
       COALESCE(security_type, ''),
       COALESCE(investments, ''),
       COALESCE(status_flag, false),
       COALESCE(change_flag, false),
       COALESCE(unrealized_kind, ''),
       COALESCE(realized_kind, '')
  FROM map_transaction_types`

func (s *Store) loadTransactionTypes(ctx context.Context, m *regreport.MappingSet) error {
	rows, err := s.db.QueryContext(ctx, transactionTypeMapQuery)
	if err != nil {
		return fmt.Errorf("querying map_transaction_types: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var groupAccount, securityType, investments string
		var attrs regreport.TransactionTypeAttrs
		if err := rows.Scan(&groupAccount, &securityType, &investments,
			&attrs.Status, &attrs.Change, &attrs.UnrealizedKind, &attrs.RealizedKind); err != nil {
			return fmt.Errorf("scanning map_transaction_types: %w", err)
		}
		m.TransactionTypes[regreport.BuildKey(groupAccount, securityType, investments)] = attrs
	}
	return rows.Err()
}

const investmentTypeMapQuery = `
SELECT COALESCE(security_type, ''),
       COALESCE(duration, ''),
       COALESCE(category, '')
  FROM map_investment_types`

func (s *Store) loadInvestmentTypes(ctx context.Context, m *regreport.MappingSet) error {
	rows, err := s.db.QueryContext(ctx, investmentTypeMapQuery)
	if err != nil {
		return fmt.Errorf("querying map_investment_types: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var securityType, duration, category string
		if err := rows.Scan(&securityType, &duration, &category); err != nil {
			return fmt.Errorf("scanning map_investment_types: %w", err)
		}
		m.InvestmentTypes[regreport.BuildKey(securityType, duration)] = category
	}
	return rows.Err()
}

const investmentMapQuery = `
SELECT COALESCE(security_id, ''),
       COALESCE(security_type, ''),
       COALESCE(tag, ''),
       COALESCE(ifrs_class, ''),
       COALESCE(valuation_method, ''),
       COALESCE(valuation_method_alt, ''),
       COALESCE(funding_source, '')
  FROM map_investments`

func (s *Store) loadInvestments(ctx context.Context, m *regreport.MappingSet) error {
	rows, err := s.db.QueryContext(ctx, investmentMapQuery)
	if err != nil {
		return fmt.Errorf("querying map_investments: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var securityID, securityType string
		var attrs regreport.InvestmentAttrs
		if err := rows.Scan(&securityID, &securityType, &attrs.Tag, &attrs.IFRSClass,
			&attrs.ValuationMethod, &attrs.ValuationMethodAlt, &attrs.FundingSource); err != nil {
			return fmt.Errorf("scanning map_investments: %w", err)
		}
		m.Investments[regreport.BuildKey(securityID, securityType)] = attrs
	}
	return rows.Err()
}

// lookupAttrsColumns is the shared SELECT tail of the two lookup mapping tables.
const lookupAttrsColumns = `
       COALESCE(funding_source, ''),
       COALESCE(balance_sheet_item, ''),
       COALESCE(company_type, ''),
       COALESCE(company_subtype, ''),
       COALESCE(guarantee, ''),
       COALESCE(issuer_name, ''),
       COALESCE(issuer_name_alt, ''),
       COALESCE(ifrs_class, ''),
       COALESCE(valuation_method, ''),
       COALESCE(issuer_country, ''),
       COALESCE(trading_country, ''),
       COALESCE(regulated_market, ''),
       COALESCE(valuation_source, ''),
       COALESCE(coupon_type, ''),
       COALESCE(sector, ''),
       COALESCE(isin, ''),
       COALESCE(property, ''),
       COALESCE(currency, ''),
       COALESCE(lot_quantity, '')`

func scanLookupAttrs(rows *sql.Rows, keyParts ...*string) (regreport.LookupAttrs, error) {
	var attrs regreport.LookupAttrs
	dest := make([]any, 0, len(keyParts)+19)
	for _, p := range keyParts {
		dest = append(dest, p)
	}
	dest = append(dest,
		&attrs.FundingSource,
		&attrs.BalanceSheetItem,
		&attrs.CompanyType,
		&attrs.CompanySubtype,
		&attrs.Guarantee,
		&attrs.IssuerName,
		&attrs.IssuerNameAlt,
		&attrs.IFRSClass,
		&attrs.ValuationMethod,
		&attrs.IssuerCountry,
		&attrs.TradingCountry,
		&attrs.RegulatedMarket,
		&attrs.ValuationSource,
		&attrs.CouponType,
		&attrs.Sector,
		&attrs.ISIN,
		&attrs.Property,
		&attrs.Currency,
		&attrs.LotQuantity,
	)
	err := rows.Scan(dest...)
	return attrs, err
}

const accountMapQuery = `
SELECT COALESCE(no_, ''),
       COALESCE(no_2, ''),
       COALESCE(name, ''),` + lookupAttrsColumns + `
  FROM map_accounts`

func (s *Store) loadAccounts(ctx context.Context, m *regreport.MappingSet) error {
	rows, err := s.db.QueryContext(ctx, accountMapQuery)
	if err != nil {
		return fmt.Errorf("querying map_accounts: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var no, no2, name string
		attrs, err := scanLookupAttrs(rows, &no, &no2, &name)
		if err != nil {
			return fmt.Errorf("scanning map_accounts: %w", err)
		}
		m.Accounts[regreport.BuildKey(no, no2, name)] = attrs
	}
	return rows.Err()
}

const positionMapQuery = `
SELECT COALESCE(security_id, ''),
       COALESCE(investment_type, ''),
       COALESCE(duration, ''),` + lookupAttrsColumns + `
  FROM map_positions`

func (s *Store) loadPositions(ctx context.Context, m *regreport.MappingSet) error {
	rows, err := s.db.QueryContext(ctx, positionMapQuery)
	if err != nil {
		return fmt.Errorf("querying map_positions: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var securityID, investmentType, duration string
		attrs, err := scanLookupAttrs(rows, &securityID, &investmentType, &duration)
		if err != nil {
			return fmt.Errorf("scanning map_positions: %w", err)
		}
		m.Positions[regreport.BuildKey(securityID, investmentType, duration)] = attrs
	}
	return rows.Err()
}

const codeMapQuery = `
SELECT COALESCE(code, ''),
       COALESCE(label, '')
  FROM map_codes`

func (s *Store) loadCodes(ctx context.Context, m *regreport.MappingSet) error {
	rows, err := s.db.QueryContext(ctx, codeMapQuery)
	if err != nil {
		return fmt.Errorf("querying map_codes: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var code, label string
		if err := rows.Scan(&code, &label); err != nil {
			return fmt.Errorf("scanning map_codes: %w", err)
		}
		m.Codes[code] = label
	}
	return rows.Err()
}
