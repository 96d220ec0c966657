package regreport

import "strings"

// Reconcile computes, for each of the five key spaces, the set of fact keys
// absent from the corresponding mapping table. Each non-empty gap yields one
// named table holding the offending fact rows restricted to a fixed column
// subset and de-duplicated on that subset. Rows that differ on a column the
// subset omits stay visible on purpose: the maintainer needs every variant.
//
// The returned slice is empty exactly when every key space is fully covered.
// Any returned table is a hard gate: no aggregation may run after it.
func Reconcile(s *Snapshot) []*Table {
	var gaps []*Table
	for _, space := range AllKeySpaces() {
		if t := reconcileSpace(s, space); t != nil {
			gaps = append(gaps, t)
		}
	}
	return gaps
}

// Gapped lists the key spaces of the gap tables, in reconciliation order.
func Gapped(gaps []*Table) []KeySpace {
	var spaces []KeySpace
	for _, space := range AllKeySpaces() {
		for _, g := range gaps {
			if g.Name == space.GapTableName() {
				spaces = append(spaces, space)
			}
		}
	}
	return spaces
}

func reconcileSpace(s *Snapshot, space KeySpace) *Table {
	missing := missingKeys(s, space)
	if len(missing) == 0 {
		return nil
	}

	var t *Table
	switch space {
	case TransactionTypeSpace:
		t = NewTable(space.GapTableName(),
			"Key", "Group account", "Security type", "Investments",
			"Status flag", "Change flag", "Unrealized kind", "Realized kind")
		for _, e := range s.Entries {
			if !missing[e.TransactionTypeKey] {
				continue
			}
			t.Append(Text(e.TransactionTypeKey), Text(e.GroupAccount), Text(e.SecurityType),
				Text(e.Investments), Empty(), Empty(), Text(e.UnrealizedKind), Text(e.RealizedKind))
		}
	case InvestmentTypeSpace:
		t = NewTable(space.GapTableName(),
			"Key", "Security type", "Duration", "Category")
		for _, e := range s.Entries {
			if !missing[e.InvestmentTypeKey] {
				continue
			}
			t.Append(Text(e.InvestmentTypeKey), Text(e.SecurityType), Text(e.Duration), Text(e.Category))
		}
	case InvestmentSpace:
		t = NewTable(space.GapTableName(),
			"Key", "Security id", "Security type", "Purpose", "Tag",
			"IFRS classification", "Valuation method", "Valuation method (if other)", "Funding source")
		for _, e := range s.Entries {
			if !missing[e.InvestmentKey] {
				continue
			}
			t.Append(Text(e.InvestmentKey), Text(e.SecurityID), Text(e.SecurityType), Text(e.Purpose),
				Text(e.Tag), Text(e.IFRSClass), Text(e.ValuationMethod), Text(e.ValuationMethodAlt),
				Text(e.FundingSource))
		}
	case AccountSpace:
		t = NewTable(space.GapTableName(),
			"Key", "No", "No 2", "Name")
		for _, a := range s.Accounts {
			if !missing[a.AccountKey] {
				continue
			}
			t.Append(Text(a.AccountKey), Text(a.No), Text(a.No2), Text(a.Name))
		}
	case PositionSpace:
		t = NewTable(space.GapTableName(),
			"Key", "Property", "Funding source", "Balance sheet item",
			"Company type", "Company subtype", "Guarantee",
			"Issuer name", "Issuer name (if different)",
			"IFRS classification", "Valuation method",
			"Issuer country", "Trading country", "Regulated market",
			"Valuation source", "Coupon type", "Sector", "ISIN")
		for _, p := range s.Positions {
			if !missing[p.PositionKey] {
				continue
			}
			row := make([]Cell, 18)
			row[0] = Text(p.PositionKey)
			for i := 1; i < 17; i++ {
				row[i] = Empty()
			}
			row[17] = Text(p.ISIN)
			t.Append(row...)
		}
	}

	dedupRows(t)
	return t
}

// missingKeys is the set difference fact keys minus mapping keys for one
// key space. An empty fact table trivially yields no gap.
func missingKeys(s *Snapshot, space KeySpace) map[string]bool {
	missing := make(map[string]bool)
	switch space {
	case TransactionTypeSpace:
		for _, e := range s.Entries {
			if _, ok := s.Mappings.TransactionTypes[e.TransactionTypeKey]; !ok {
				missing[e.TransactionTypeKey] = true
			}
		}
	case InvestmentTypeSpace:
		for _, e := range s.Entries {
			if _, ok := s.Mappings.InvestmentTypes[e.InvestmentTypeKey]; !ok {
				missing[e.InvestmentTypeKey] = true
			}
		}
	case InvestmentSpace:
		for _, e := range s.Entries {
			if _, ok := s.Mappings.Investments[e.InvestmentKey]; !ok {
				missing[e.InvestmentKey] = true
			}
		}
	case AccountSpace:
		for _, a := range s.Accounts {
			if _, ok := s.Mappings.Accounts[a.AccountKey]; !ok {
				missing[a.AccountKey] = true
			}
		}
	case PositionSpace:
		for _, p := range s.Positions {
			if _, ok := s.Mappings.Positions[p.PositionKey]; !ok {
				missing[p.PositionKey] = true
			}
		}
	}
	return missing
}

// dedupRows removes duplicate rows, judged on the table's own column subset,
// preserving first-seen order.
func dedupRows(t *Table) {
	seen := make(map[string]bool, len(t.Rows))
	kept := t.Rows[:0]
	for _, row := range t.Rows {
		parts := make([]string, len(row))
		for i, c := range row {
			parts[i] = c.String()
		}
		key := strings.Join(parts, "\x1f")
		if seen[key] {
			continue
		}
		seen[key] = true
		kept = append(kept, row)
	}
	t.Rows = kept
}
