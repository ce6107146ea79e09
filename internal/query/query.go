// Package query derives the order table view and the dashboard summary from the order collection.
package query

import (
	"strings"

	"github.com/rookgm/salesadmin/internal/models"
	"github.com/shopspring/decimal"
)

// All is the filter sentinel that disables a status or platform filter
const All = "all"

// Criteria are the current table filters
type Criteria struct {
	Search   string
	Status   string
	Platform string
}

// Normalize turns empty status and platform filters into All
func (c Criteria) Normalize() Criteria {
	if c.Status == "" {
		c.Status = All
	}
	if c.Platform == "" {
		c.Platform = All
	}
	return c
}

// Stats are the dashboard summary cards
type Stats struct {
	TotalOrders      int             `json:"totalOrders"`
	TotalRevenue     decimal.Decimal `json:"totalRevenue"`
	ProcessingOrders int             `json:"processingOrders"`
	CompletedOrders  int             `json:"completedOrders"`
}

// Filter returns the orders passing every criterion, in input order.
//
// The search term matches an order id only verbatim, while platform and status names
// match as case-insensitive substrings. A search for "42" finds order "42" but not "1042".
func Filter(orders []models.Order, c Criteria) []models.Order {
	c = c.Normalize()
	needle := strings.ToLower(c.Search)

	out := make([]models.Order, 0, len(orders))
	for _, o := range orders {
		if c.Status != All && o.StatusName != c.Status {
			continue
		}
		if c.Platform != All && o.PlatformName != c.Platform {
			continue
		}
		if c.Search != "" && !matchesSearch(o, c.Search, needle) {
			continue
		}
		out = append(out, o)
	}
	return out
}

func matchesSearch(o models.Order, term, needle string) bool {
	return o.ID == term ||
		strings.Contains(strings.ToLower(o.PlatformName), needle) ||
		strings.Contains(strings.ToLower(o.StatusName), needle)
}

// Aggregate computes the summary over every order given. Pass the whole collection,
// never a filtered view, so the cards ignore table filters.
func Aggregate(orders []models.Order) Stats {
	st := Stats{
		TotalOrders:  len(orders),
		TotalRevenue: decimal.Zero,
	}
	for _, o := range orders {
		st.TotalRevenue = st.TotalRevenue.Add(o.TotalAmount)
		switch o.StatusName {
		case models.OrderStatusProcessing:
			st.ProcessingOrders++
		case models.OrderStatusCompleted:
			st.CompletedOrders++
		}
	}
	return st
}
