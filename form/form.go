// ABOUTME: Property intake form state and payload derivation
// ABOUTME: Stores raw field text and validates/coerces it into a PropertyInput
package form

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/quickflip/quickflip/models"
)

// Field names a property form field. Values match the wire field names.
type Field string

const (
	FieldOwnerName    Field = "owner_name"
	FieldOwnerEmail   Field = "owner_email"
	FieldAddress      Field = "address"
	FieldCity         Field = "city"
	FieldState        Field = "state"
	FieldZipCode      Field = "zip_code"
	FieldPropertyType Field = "property_type"
	FieldBedrooms     Field = "bedrooms"
	FieldBathrooms    Field = "bathrooms"
	FieldSqft         Field = "sqft"
	FieldAskingPrice  Field = "asking_price"
	FieldARV          Field = "arv"
	FieldRepairCost   Field = "repair_cost"
	FieldNotes        Field = "notes"
)

// Fields lists the form fields in display order.
func Fields() []Field {
	return []Field{
		FieldOwnerName, FieldOwnerEmail,
		FieldAddress, FieldCity, FieldState, FieldZipCode,
		FieldPropertyType,
		FieldBedrooms, FieldBathrooms, FieldSqft,
		FieldAskingPrice, FieldARV, FieldRepairCost,
		FieldNotes,
	}
}

// ValidationError reports the first field that failed payload derivation.
type ValidationError struct {
	Field  Field
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s %s", e.Field, e.Reason)
}

// Form holds the raw text of every field. It is a value type: Update
// returns a new Form, leaving the receiver untouched. No coercion happens
// until ToPayload.
type Form struct {
	values map[Field]string
}

// New returns an empty form with the default property type selected.
func New() Form {
	return Form{values: map[Field]string{
		FieldPropertyType: models.PropertySingleFamily,
	}}
}

// Update returns a copy of the form with the raw value stored for field.
func (f Form) Update(field Field, raw string) Form {
	next := make(map[Field]string, len(f.values)+1)
	for k, v := range f.values {
		next[k] = v
	}
	next[field] = raw
	return Form{values: next}
}

// Value returns the raw text currently stored for field.
func (f Form) Value(field Field) string {
	return f.values[field]
}

// ToPayload validates and coerces the raw values into a PropertyInput.
// It is deterministic and side-effect free; the first failing field wins.
func (f Form) ToPayload() (*models.PropertyInput, error) {
	ownerName, err := f.requiredText(FieldOwnerName)
	if err != nil {
		return nil, err
	}
	address, err := f.requiredText(FieldAddress)
	if err != nil {
		return nil, err
	}
	city, err := f.requiredText(FieldCity)
	if err != nil {
		return nil, err
	}
	state, err := f.requiredText(FieldState)
	if err != nil {
		return nil, err
	}
	zipCode, err := f.requiredText(FieldZipCode)
	if err != nil {
		return nil, err
	}

	propertyType := strings.TrimSpace(f.values[FieldPropertyType])
	if propertyType == "" {
		propertyType = models.PropertySingleFamily
	}
	if !models.ValidPropertyType(propertyType) {
		return nil, &ValidationError{FieldPropertyType, "must be one of " + strings.Join(models.PropertyTypes(), ", ")}
	}

	bedrooms, err := f.optionalNumber(FieldBedrooms)
	if err != nil {
		return nil, err
	}
	bathrooms, err := f.optionalNumber(FieldBathrooms)
	if err != nil {
		return nil, err
	}
	sqft, err := f.optionalNumber(FieldSqft)
	if err != nil {
		return nil, err
	}
	arv, err := f.optionalNumber(FieldARV)
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(f.values[FieldAskingPrice]) == "" {
		return nil, &ValidationError{FieldAskingPrice, "is required"}
	}
	askingPrice, err := f.requiredNumber(FieldAskingPrice)
	if err != nil {
		return nil, err
	}
	repairCost, err := f.requiredNumber(FieldRepairCost)
	if err != nil {
		return nil, err
	}

	return &models.PropertyInput{
		OwnerName:    ownerName,
		OwnerEmail:   strings.TrimSpace(f.values[FieldOwnerEmail]),
		Address:      address,
		City:         city,
		State:        state,
		ZipCode:      zipCode,
		PropertyType: propertyType,
		Bedrooms:     bedrooms,
		Bathrooms:    bathrooms,
		Sqft:         sqft,
		AskingPrice:  askingPrice,
		ARV:          arv,
		RepairCost:   repairCost,
		Notes:        strings.TrimSpace(f.values[FieldNotes]),
	}, nil
}

func (f Form) requiredText(field Field) (string, error) {
	v := strings.TrimSpace(f.values[field])
	if v == "" {
		return "", &ValidationError{field, "is required"}
	}
	return v, nil
}

// optionalNumber parses a numeric field, returning nil when the field is
// empty.
func (f Form) optionalNumber(field Field) (*float64, error) {
	raw := strings.TrimSpace(f.values[field])
	if raw == "" {
		return nil, nil
	}
	n, err := parseNumber(field, raw)
	if err != nil {
		return nil, err
	}
	return &n, nil
}

// requiredNumber parses a numeric field, treating empty as 0.
func (f Form) requiredNumber(field Field) (float64, error) {
	raw := strings.TrimSpace(f.values[field])
	if raw == "" {
		return 0, nil
	}
	return parseNumber(field, raw)
}

func parseNumber(field Field, raw string) (float64, error) {
	n, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(n) || math.IsInf(n, 0) {
		return 0, &ValidationError{field, "must be a number"}
	}
	if n < 0 {
		return 0, &ValidationError{field, "must not be negative"}
	}
	return n, nil
}
