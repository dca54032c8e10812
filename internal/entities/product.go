package entities

import "github.com/shopspring/decimal"

type Product struct {
	ID    int64
	Name  string
	Price decimal.Decimal
}

type ProductModify struct {
	Name  *string
	Price *decimal.Decimal
}
