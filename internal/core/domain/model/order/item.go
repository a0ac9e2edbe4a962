package order

import (
	"errors"
	"fmt"

	"storefront/internal/pkg/errs"
)

// Item is an ordered product line embedded in an Order.
// It has no independent lifecycle: items are created together with their
// order and never mutated afterwards.
type Item struct {
	productID   string
	productName string
	quantity    int
	unitPrice   float64

	isConstructed bool
}

// NewItem creates a validated order line.
// Product id and name are required; quantity must be at least 1 and the
// unit price must not be negative.
func NewItem(productID, productName string, quantity int, unitPrice float64) (Item, error) {
	item := Item{isConstructed: true}

	if err := errors.Join(
		item.setProductID(productID),
		item.setProductName(productName),
		item.setQuantity(quantity),
		item.setUnitPrice(unitPrice),
	); err != nil {
		return Item{}, err
	}

	return item, nil
}

// ProductID returns the identifier of the ordered product.
func (i Item) ProductID() string {
	return i.productID
}

// ProductName returns the display name of the ordered product.
func (i Item) ProductName() string {
	return i.productName
}

// Quantity returns the number of units ordered.
func (i Item) Quantity() int {
	return i.quantity
}

// UnitPrice returns the price of a single unit.
func (i Item) UnitPrice() float64 {
	return i.unitPrice
}

// Subtotal returns quantity times unit price for this line.
func (i Item) Subtotal() float64 {
	return float64(i.quantity) * i.unitPrice
}

// Validate ensures the Item was created via NewItem.
func (i Item) Validate() error {
	if !i.isConstructed {
		return errs.NewValueIsRequiredError("item must be created via NewItem constructor")
	}
	return nil
}

func (i *Item) setProductID(productID string) error {
	if productID == "" {
		return errs.NewValueIsRequiredError("productId")
	}
	i.productID = productID
	return nil
}

func (i *Item) setProductName(productName string) error {
	if productName == "" {
		return errs.NewValueIsRequiredError("productName")
	}
	i.productName = productName
	return nil
}

func (i *Item) setQuantity(quantity int) error {
	if quantity < 1 {
		return errs.NewValueIsInvalidErrorWithCause(
			"quantity",
			fmt.Errorf("%d is not greater than or equal to 1", quantity),
		)
	}
	i.quantity = quantity
	return nil
}

func (i *Item) setUnitPrice(unitPrice float64) error {
	if unitPrice < 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"price",
			fmt.Errorf("%f is negative", unitPrice),
		)
	}
	i.unitPrice = unitPrice
	return nil
}
