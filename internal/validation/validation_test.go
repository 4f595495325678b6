package validation

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"pizzapension/internal/models"
)

func decode(t *testing.T, body string) map[string]any {
	t.Helper()
	var m map[string]any
	require.NoError(t, json.Unmarshal([]byte(body), &m))
	return m
}

func TestValidateRegistration_Valid(t *testing.T) {
	in := decode(t, `{"firstName":"Anna","lastName":"Berg","email":"a@b.se","pizza":"Hawaii","drink":"Cola","id":99,"extra":true}`)

	got, err := ValidateRegistration(in, Options{})
	require.NoError(t, err)
	require.Equal(t, models.NewRegistration{
		FirstName: "Anna",
		LastName:  "Berg",
		Email:     "a@b.se",
		Pizza:     "Hawaii",
		Drink:     "Cola",
	}, got)
}

func TestValidateRegistration_MissingEmail(t *testing.T) {
	in := decode(t, `{"firstName":"Anna","lastName":"Berg","pizza":"Hawaii","drink":"Cola"}`)

	_, err := ValidateRegistration(in, Options{})
	require.Error(t, err)

	var verr *Error
	require.ErrorAs(t, err, &verr)
	require.Len(t, verr.Fields, 1)
	require.True(t, verr.Has("email"))
	require.Contains(t, err.Error(), `"email"`)
	require.Contains(t, err.Error(), "Required")
}

func TestValidateRegistration_WrongTypes(t *testing.T) {
	in := decode(t, `{"firstName":null,"lastName":3,"email":true,"pizza":["Hawaii"],"drink":{}}`)

	_, err := ValidateRegistration(in, Options{})
	var verr *Error
	require.ErrorAs(t, err, &verr)
	require.Equal(t, []FieldError{
		{Field: "firstName", Message: "Required"},
		{Field: "lastName", Message: "Expected string, received number"},
		{Field: "email", Message: "Expected string, received boolean"},
		{Field: "pizza", Message: "Expected string, received array"},
		{Field: "drink", Message: "Expected string, received object"},
	}, verr.Fields)
}

func TestValidateRegistration_PizzaOffMenu(t *testing.T) {
	in := decode(t, `{"firstName":"A","lastName":"B","email":"a@b.se","pizza":"Margherita","drink":"Vatten"}`)

	got, err := ValidateRegistration(in, Options{})
	require.NoError(t, err, "menu is only enforced when configured")
	require.Equal(t, "Margherita", got.Pizza)

	_, err = ValidateRegistration(in, Options{EnforceMenu: true})
	var verr *Error
	require.ErrorAs(t, err, &verr)
	require.True(t, verr.Has("pizza"))
}

func TestValidateRegistration_EmptyStringsAccepted(t *testing.T) {
	in := decode(t, `{"firstName":"","lastName":"","email":"","pizza":"","drink":""}`)

	_, err := ValidateRegistration(in, Options{})
	require.NoError(t, err)
}

func TestValidateForm(t *testing.T) {
	valid := models.NewRegistration{
		FirstName: "Anna",
		LastName:  "Berg",
		Email:     "a@b.se",
		Pizza:     "La Maffia",
		Drink:     "Cola",
	}
	require.NoError(t, ValidateForm(valid))

	bad := valid
	bad.FirstName = "   "
	bad.Email = "not-an-email"
	bad.Pizza = "Margherita"

	err := ValidateForm(bad)
	var verr *Error
	require.ErrorAs(t, err, &verr)
	require.Equal(t, "Fältet är obligatoriskt", verr.For("firstName"))
	require.Equal(t, "Ange en giltig e-postadress", verr.For("email"))
	require.Equal(t, "Välj en pizza från menyn", verr.For("pizza"))
	require.False(t, verr.Has("drink"))
}
