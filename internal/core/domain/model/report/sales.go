package report

import (
	"slices"
	"time"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
)

// Row is the slice of an order the reports need.
type Row struct {
	Status        order.Status
	DeliveryType  order.DeliveryType
	PaymentMethod order.PaymentMethod
	Total         kernel.Money
	CreatedAt     time.Time
}

// Bucket is one group of a breakdown.
type Bucket struct {
	Key     string       `json:"key"`
	Count   int          `json:"count"`
	Revenue kernel.Money `json:"revenue"`
	Percent float64      `json:"percent"`
}

// Sales is the sales summary of a period.
type Sales struct {
	From time.Time `json:"from"`
	To   time.Time `json:"to"`

	Orders           int          `json:"orders"`
	CancelledOrders  int          `json:"cancelledOrders"`
	Revenue          kernel.Money `json:"revenue"`
	AverageTicket    kernel.Money `json:"averageTicket"`
	CancellationRate float64      `json:"cancellationRate"`
	DeliveryShare    float64      `json:"deliveryShare"`
	PickupShare      float64      `json:"pickupShare"`

	ByStatus        []Bucket `json:"byStatus"`
	ByHour          []Bucket `json:"byHour"`
	ByDay           []Bucket `json:"byDay"`
	ByPaymentMethod []Bucket `json:"byPaymentMethod"`
}

// Summarize builds the sales summary of rows created in [from, to). Revenue only
// counts orders that were not cancelled. Hours and days are taken in loc.
func Summarize(rows []Row, from, to time.Time, loc *time.Location) Sales {
	if loc == nil {
		loc = time.UTC
	}

	s := Sales{From: from, To: to, Revenue: kernel.ZeroMoney(), AverageTicket: kernel.ZeroMoney()}

	byStatus := newGrouping()
	byHour := newGrouping()
	byDay := newGrouping()
	byPayment := newGrouping()
	var delivery, pickup, revenueOrders int

	for _, r := range rows {
		if r.CreatedAt.Before(from) || !r.CreatedAt.Before(to) {
			continue
		}
		s.Orders++
		byStatus.add(r.Status.String(), r.Total)

		if r.Status == order.Cancelled {
			s.CancelledOrders++
			continue
		}

		revenueOrders++
		s.Revenue = s.Revenue.Add(r.Total)
		local := r.CreatedAt.In(loc)
		byHour.add(local.Format("15"), r.Total)
		byDay.add(local.Format(time.DateOnly), r.Total)
		byPayment.add(r.PaymentMethod.String(), r.Total)

		switch r.DeliveryType {
		case order.Delivery:
			delivery++
		case order.Pickup:
			pickup++
		case order.UnknownDeliveryType:
		}
	}

	s.AverageTicket = divide(s.Revenue, revenueOrders)
	s.CancellationRate = Percent(s.CancelledOrders, s.Orders)
	s.DeliveryShare = Percent(delivery, revenueOrders)
	s.PickupShare = Percent(pickup, revenueOrders)

	s.ByStatus = byStatus.buckets(s.Orders)
	s.ByHour = byHour.buckets(revenueOrders)
	s.ByDay = byDay.buckets(revenueOrders)
	s.ByPaymentMethod = byPayment.buckets(revenueOrders)
	return s
}

// Percent returns part/total*100 rounded to two decimals, or 0 when total is 0.
func Percent(part, total int) float64 {
	if total <= 0 {
		return 0
	}
	return decimal.NewFromInt(int64(part)).
		Mul(decimal.NewFromInt(100)).
		Div(decimal.NewFromInt(int64(total))).
		Round(2).
		InexactFloat64()
}

func divide(m kernel.Money, n int) kernel.Money {
	if n <= 0 {
		return kernel.ZeroMoney()
	}
	out, err := kernel.NewMoney(m.Decimal().Div(decimal.NewFromInt(int64(n))))
	if err != nil {
		return kernel.ZeroMoney()
	}
	return out
}

type grouping struct {
	keys   []string
	counts map[string]int
	sums   map[string]kernel.Money
}

func newGrouping() *grouping {
	return &grouping{counts: map[string]int{}, sums: map[string]kernel.Money{}}
}

func (g *grouping) add(key string, amount kernel.Money) {
	if _, ok := g.counts[key]; !ok {
		g.keys = append(g.keys, key)
		g.sums[key] = kernel.ZeroMoney()
	}
	g.counts[key]++
	g.sums[key] = g.sums[key].Add(amount)
}

// buckets returns the groups ordered by key.
func (g *grouping) buckets(total int) []Bucket {
	keys := slices.Clone(g.keys)
	slices.Sort(keys)

	out := make([]Bucket, 0, len(keys))
	for _, k := range keys {
		out = append(out, Bucket{
			Key:     k,
			Count:   g.counts[k],
			Revenue: g.sums[k],
			Percent: Percent(g.counts[k], total),
		})
	}
	return out
}
