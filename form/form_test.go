// ABOUTME: Tests for intake form validation and payload derivation
// ABOUTME: Covers required fields, numeric coercion, and idempotence
package form

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quickflip/quickflip/models"
)

func validForm() Form {
	f := New()
	f = f.Update(FieldOwnerName, "Jane Doe")
	f = f.Update(FieldAddress, "1 Main St")
	f = f.Update(FieldCity, "Springfield")
	f = f.Update(FieldState, "IL")
	f = f.Update(FieldZipCode, "62701")
	f = f.Update(FieldAskingPrice, "150000")
	return f
}

func TestToPayloadMinimalSubmission(t *testing.T) {
	payload, err := validForm().ToPayload()
	require.NoError(t, err)

	assert.Equal(t, "Jane Doe", payload.OwnerName)
	assert.Equal(t, "1 Main St", payload.Address)
	assert.Equal(t, models.PropertySingleFamily, payload.PropertyType)
	assert.Equal(t, 150000.0, payload.AskingPrice)
	assert.Equal(t, 0.0, payload.RepairCost)
	assert.Nil(t, payload.Bedrooms)
	assert.Nil(t, payload.Bathrooms)
	assert.Nil(t, payload.Sqft)
	assert.Nil(t, payload.ARV)
}

func TestToPayloadIsDeterministic(t *testing.T) {
	f := validForm()
	f = f.Update(FieldBedrooms, "3")
	f = f.Update(FieldARV, "210000.50")

	first, err := f.ToPayload()
	require.NoError(t, err)
	second, err := f.ToPayload()
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestUpdateDoesNotMutateReceiver(t *testing.T) {
	f := validForm()
	g := f.Update(FieldOwnerName, "Someone Else")

	assert.Equal(t, "Jane Doe", f.Value(FieldOwnerName))
	assert.Equal(t, "Someone Else", g.Value(FieldOwnerName))
}

func TestToPayloadParsesOptionalNumbers(t *testing.T) {
	f := validForm()
	f = f.Update(FieldBedrooms, "3")
	f = f.Update(FieldBathrooms, "2.5")
	f = f.Update(FieldSqft, " 1450 ")
	f = f.Update(FieldRepairCost, "25000")

	payload, err := f.ToPayload()
	require.NoError(t, err)

	require.NotNil(t, payload.Bedrooms)
	assert.Equal(t, 3.0, *payload.Bedrooms)
	require.NotNil(t, payload.Bathrooms)
	assert.Equal(t, 2.5, *payload.Bathrooms)
	require.NotNil(t, payload.Sqft)
	assert.Equal(t, 1450.0, *payload.Sqft)
	assert.Equal(t, 25000.0, payload.RepairCost)
}

func TestToPayloadRequiredFields(t *testing.T) {
	tests := []struct {
		name  string
		field Field
	}{
		{"missing owner", FieldOwnerName},
		{"missing address", FieldAddress},
		{"missing city", FieldCity},
		{"missing state", FieldState},
		{"missing zip", FieldZipCode},
		{"missing asking price", FieldAskingPrice},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := validForm().Update(tt.field, "  ")
			_, err := f.ToPayload()

			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.field, verr.Field)
			assert.Equal(t, "is required", verr.Reason)
		})
	}
}

func TestToPayloadRejectsUnparsableNumbers(t *testing.T) {
	for _, raw := range []string{"abc", "12abc", "NaN", "Inf", "-Inf"} {
		f := validForm().Update(FieldBedrooms, raw)
		_, err := f.ToPayload()

		var verr *ValidationError
		if !errors.As(err, &verr) {
			t.Errorf("bedrooms=%q: expected ValidationError, got %v", raw, err)
			continue
		}
		if verr.Field != FieldBedrooms {
			t.Errorf("bedrooms=%q: expected bedrooms error, got %s", raw, verr.Field)
		}
	}
}

func TestToPayloadRejectsNegativeNumbers(t *testing.T) {
	f := validForm().Update(FieldAskingPrice, "-5")
	_, err := f.ToPayload()

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, FieldAskingPrice, verr.Field)
}

func TestToPayloadRejectsUnknownPropertyType(t *testing.T) {
	f := validForm().Update(FieldPropertyType, "castle")
	_, err := f.ToPayload()

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, FieldPropertyType, verr.Field)
}

func TestToPayloadDefaultsEmptyPropertyType(t *testing.T) {
	f := validForm().Update(FieldPropertyType, "")
	payload, err := f.ToPayload()
	require.NoError(t, err)
	assert.Equal(t, models.PropertySingleFamily, payload.PropertyType)
}

func TestToPayloadFirstFailureWins(t *testing.T) {
	f := New() // everything missing
	_, err := f.ToPayload()

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, FieldOwnerName, verr.Field)
}
