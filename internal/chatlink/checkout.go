package chatlink

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/trtech123/tos/internal/domain"
)

// CheckoutParams reads the navigation parameters of a checkout link. Model
// output often carries raw spaces and Hebrew in the query, so the query is
// split off by hand rather than through url.Parse.
func CheckoutParams(link string) (domain.CheckoutParams, error) {
	if !IsCheckout(link) {
		return domain.CheckoutParams{}, fmt.Errorf("%q is not a checkout link: %w", link, domain.ErrInvalidInput)
	}

	_, rawQuery, _ := strings.Cut(link, "?")
	values, err := url.ParseQuery(rawQuery)
	if err != nil {
		return domain.CheckoutParams{}, fmt.Errorf("bad checkout query: %w", domain.ErrInvalidInput)
	}

	return domain.CheckoutParams{
		From:    values.Get("from"),
		To:      values.Get("to"),
		Date:    values.Get("date"),
		Airline: values.Get("airline"),
		Price:   values.Get("price"),
	}, nil
}
