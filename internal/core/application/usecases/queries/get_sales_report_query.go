package queries

import (
	"context"
	"errors"
	"fmt"
	"time"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/domain/model/order"
	"backoffice/internal/core/domain/model/report"
	"backoffice/internal/pkg/errs"
	"backoffice/internal/pkg/guard"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// MaxReportPeriod bounds the range of one sales report.
const MaxReportPeriod = 366 * 24 * time.Hour

var ErrGetSalesReportQueryIsNotConstructed = errors.New(
	"GetSalesReportQuery must be created via NewGetSalesReportQuery constructor",
)

// GetSalesReportQuery summarizes the orders created in [from, to). Hour and day
// buckets are taken in loc, the timezone of the establishment.
type GetSalesReportQuery struct {
	establishmentID kernel.UUID
	from, to        time.Time
	loc             *time.Location

	guard guard.ConstructorGuard
}

func NewGetSalesReportQuery(establishmentID kernel.UUID, from, to time.Time, loc *time.Location) (GetSalesReportQuery, error) {
	if err := establishmentID.Validate(); err != nil {
		return GetSalesReportQuery{}, errs.NewValueIsRequiredErrorWithCause("establishment", err)
	}
	if !from.Before(to) {
		return GetSalesReportQuery{}, errs.NewValueIsInvalidErrorWithCause(
			"period", fmt.Errorf("from %s is not before to %s", from.Format(time.RFC3339), to.Format(time.RFC3339)))
	}
	if to.Sub(from) > MaxReportPeriod {
		return GetSalesReportQuery{}, errs.NewValueIsInvalidErrorWithCause(
			"period", fmt.Errorf("longer than %s", MaxReportPeriod))
	}
	if loc == nil {
		loc = time.UTC
	}

	return GetSalesReportQuery{
		establishmentID: establishmentID,
		from:            from,
		to:              to,
		loc:             loc,
		guard:           guard.NewConstructorGuard(),
	}, nil
}

func (q GetSalesReportQuery) Validate() error {
	return q.guard.Validate(ErrGetSalesReportQueryIsNotConstructed)
}

type GetSalesReportQueryHandler struct {
	db *gorm.DB
}

func NewGetSalesReportQueryHandler(db *gorm.DB) GetSalesReportQueryHandler {
	return GetSalesReportQueryHandler{db: db}
}

func (h GetSalesReportQueryHandler) Handle(ctx context.Context, query GetSalesReportQuery) (report.Sales, error) {
	if err := query.Validate(); err != nil {
		return report.Sales{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT status, delivery_type, payment_method, total, created_at
		FROM orders
		WHERE establishment_id = ? AND created_at >= ? AND created_at < ?
		ORDER BY created_at
	`, query.establishmentID.Bytes(), query.from.UTC(), query.to.UTC()).Rows()
	if err != nil {
		return report.Sales{}, err
	}
	defer rows.Close()

	var sales []report.Row
	for rows.Next() {
		var (
			status, deliveryType, method string
			total                        decimal.Decimal
			createdAt                    time.Time
		)
		if err = rows.Scan(&status, &deliveryType, &method, &total, &createdAt); err != nil {
			return report.Sales{}, err
		}

		row, mapErr := newReportRow(status, deliveryType, method, total, createdAt)
		if mapErr != nil {
			return report.Sales{}, mapErr
		}
		sales = append(sales, row)
	}

	if err = rows.Err(); err != nil {
		return report.Sales{}, err
	}

	return report.Summarize(sales, query.from, query.to, query.loc), nil
}

func newReportRow(status, deliveryType, method string, total decimal.Decimal, createdAt time.Time) (report.Row, error) {
	s, err := order.StatusFromCode(status)
	if err != nil {
		return report.Row{}, err
	}
	dt, err := order.DeliveryTypeFromCode(deliveryType)
	if err != nil {
		return report.Row{}, err
	}
	pm, err := order.PaymentMethodFromCode(method)
	if err != nil {
		return report.Row{}, err
	}
	money, err := kernel.NewMoney(total)
	if err != nil {
		return report.Row{}, err
	}

	return report.Row{Status: s, DeliveryType: dt, PaymentMethod: pm, Total: money, CreatedAt: createdAt}, nil
}
