package order

import (
	"errors"
	"fmt"
	"strings"

	"shop/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// Item is one line of an order. ProductID references the catalog, which this core does not own.
type Item struct {
	ProductID string          `json:"product"`
	Name      string          `json:"name"`
	Image     string          `json:"image"`
	Price     decimal.Decimal `json:"price"`
	Quantity  int             `json:"qty"`
}

// NewItem validates the line item.
func NewItem(productID, name, image string, price decimal.Decimal, quantity int) (Item, error) {
	item := Item{ProductID: productID, Name: name, Image: image, Price: price, Quantity: quantity}
	if err := item.Validate(); err != nil {
		return Item{}, err
	}
	return item, nil
}

func (i Item) Validate() error {
	var result []error
	if strings.TrimSpace(i.ProductID) == "" {
		result = append(result, errs.NewValueIsRequiredError("item product"))
	}
	if strings.TrimSpace(i.Name) == "" {
		result = append(result, errs.NewValueIsRequiredError("item name"))
	}
	if i.Price.IsNegative() {
		result = append(result, errs.NewValueIsInvalidErrorWithCause("item price is invalid", fmt.Errorf("%s is negative", i.Price)))
	}
	if i.Quantity <= 0 {
		result = append(result, errs.NewValueIsInvalidErrorWithCause("item quantity is invalid", fmt.Errorf("%d is not greater than 0", i.Quantity)))
	}
	return errors.Join(result...)
}

type ShippingAddress struct {
	Address    string `json:"address"`
	City       string `json:"city"`
	PostalCode string `json:"postalCode"`
	Country    string `json:"country"`
}

func (a ShippingAddress) Validate() error {
	var result []error
	for name, value := range map[string]string{
		"shipping address":     a.Address,
		"shipping city":        a.City,
		"shipping postal code": a.PostalCode,
		"shipping country":     a.Country,
	} {
		if strings.TrimSpace(value) == "" {
			result = append(result, errs.NewValueIsRequiredError(name))
		}
	}
	return errors.Join(result...)
}

// PaymentResult is the receipt handed over by the payment provider. It is stored as given.
type PaymentResult struct {
	ID           string `json:"id"`
	Status       string `json:"status"`
	UpdateTime   string `json:"update_time"`
	EmailAddress string `json:"email_address"`
}

// Prices holds the money fields fixed at creation.
type Prices struct {
	Items    decimal.Decimal `json:"itemsPrice"`
	Tax      decimal.Decimal `json:"taxPrice"`
	Shipping decimal.Decimal `json:"shippingPrice"`
	Total    decimal.Decimal `json:"totalPrice"`
}

func (p Prices) Validate() error {
	var result []error
	for name, value := range map[string]decimal.Decimal{
		"items price":    p.Items,
		"tax price":      p.Tax,
		"shipping price": p.Shipping,
		"total price":    p.Total,
	} {
		if value.IsNegative() {
			result = append(result, errs.NewValueIsInvalidErrorWithCause(name+" is invalid", fmt.Errorf("%s is negative", value)))
		}
	}
	return errors.Join(result...)
}
