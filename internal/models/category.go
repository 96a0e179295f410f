package models

import "errors"

// Category is the closed set of spending buckets a transaction can fall into.
type Category string

const (
	CategoryIncome        Category = "income"
	CategoryGroceries     Category = "groceries"
	CategoryBills         Category = "bills"
	CategoryMiscellaneous Category = "miscellaneous"
)

var ErrInvalidCategory = errors.New("invalid category")

// Categories lists every category in display order.
var Categories = []Category{CategoryIncome, CategoryGroceries, CategoryBills, CategoryMiscellaneous}

func (c Category) IsValid() bool {
	switch c {
	case CategoryIncome, CategoryGroceries, CategoryBills, CategoryMiscellaneous:
		return true
	default:
		return false
	}
}

// IsSpending reports whether amounts in this category count toward total spend.
func (c Category) IsSpending() bool {
	return c == CategoryGroceries || c == CategoryBills || c == CategoryMiscellaneous
}
