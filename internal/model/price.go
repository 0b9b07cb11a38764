package model

import (
	"database/sql"
	"fmt"
	"strconv"
)

// Prices persist as NUMERIC(10,2) text and cross the boundary as floats.
// Every service read and write must go through this pair so the conversion
// stays symmetric to two decimal digits.

// DecimalFromPrice converts a price into its fixed-precision text form for
// the write boundary. A nil price stays NULL.
func DecimalFromPrice(price *float64) sql.NullString {
	if price == nil {
		return sql.NullString{}
	}
	return sql.NullString{
		String: strconv.FormatFloat(*price, 'f', 2, 64),
		Valid:  true,
	}
}

// PriceFromDecimal converts the stored decimal text back into a float at the
// read boundary. NULL stays nil.
func PriceFromDecimal(d sql.NullString) (*float64, error) {
	if !d.Valid {
		return nil, nil
	}
	f, err := strconv.ParseFloat(d.String, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid price %q: %w", d.String, err)
	}
	return &f, nil
}
