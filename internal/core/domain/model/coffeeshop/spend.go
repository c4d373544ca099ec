package coffeeshop

import (
	"coffeeshop/internal/core/domain/model/kernel"
)

// Spend is one customer's total over a set of orders.
type Spend struct {
	Customer *Customer
	Total    kernel.Money
}

// MostAficionado returns the customer who spent the most on coffee, or nil when the
// coffee has no orders or was not constructed.
//
// Ties go to the tied customer whose first order of this coffee came earliest.
func MostAficionado(coffee *Coffee) *Customer {
	if coffee.Validate() != nil {
		return nil
	}

	top, ok := TopSpend(coffee.SpendByCustomer())
	if !ok {
		return nil
	}
	return top.Customer
}

// spendByCustomer groups orders by customer. The result follows first appearance in orders.
func spendByCustomer(orders []*Order) []Spend {
	index := make(map[*Customer]int, len(orders))
	spends := make([]Spend, 0, len(orders))

	for _, order := range orders {
		i, ok := index[order.customer]
		if !ok {
			i = len(spends)
			index[order.customer] = i
			spends = append(spends, Spend{Customer: order.customer, Total: kernel.ZeroMoney()})
		}
		spends[i].Total = spends[i].Total.Add(kernel.MoneyFromFloat(order.price))
	}

	return spends
}

// TopSpend returns the entry with the greatest total, or false for an empty slice.
// The scan keeps the first of equal totals, so ties go to the earliest entry.
func TopSpend(spends []Spend) (Spend, bool) {
	var (
		best  Spend
		found bool
	)

	for _, s := range spends {
		if !found || s.Total.GreaterThan(best.Total) {
			best = s
			found = true
		}
	}

	return best, found
}

func sumPrices(orders []*Order) kernel.Money {
	total := kernel.ZeroMoney()
	for _, order := range orders {
		total = total.Add(kernel.MoneyFromFloat(order.price))
	}
	return total
}
