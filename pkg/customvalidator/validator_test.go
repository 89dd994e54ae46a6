package customvalidator

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type checkOutPayload struct {
	Location string `validate:"required,not_blank"`
	Lat      string
	Lng      string
}

func newTestValidator(t *testing.T) *validator.Validate {
	t.Helper()
	v := validator.New()
	require.NoError(t, RegisterCustomValidations(v))
	return v
}

func TestNotBlank(t *testing.T) {
	v := newTestValidator(t)

	assert.NoError(t, v.Struct(checkOutPayload{Location: "Мост через Варзоб"}))
	assert.Error(t, v.Struct(checkOutPayload{Location: "   "}), "строка из пробелов должна отклоняться")
	assert.Error(t, v.Struct(checkOutPayload{Location: ""}))
}

func TestCoordinatesNotValidated(t *testing.T) {
	v := newTestValidator(t)

	// Координаты сохраняются дословно: любой текст проходит валидацию,
	// неразборчивые значения отсеивает реконсилер маркеров.
	testCases := []struct {
		name     string
		lat, lng string
	}{
		{"пустые", "", ""},
		{"числовые", "38.637", "68.785"},
		{"текстовые", "возле моста", "у северного въезда"},
		{"не-конечные", "Inf", "NaN"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.NoError(t, v.Struct(checkOutPayload{Location: "Мост", Lat: tc.lat, Lng: tc.lng}))
		})
	}
}
