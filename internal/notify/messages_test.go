package notify

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReminderBody(t *testing.T) {
	body := ReminderBody(Details{
		CustomerName: "Juan",
		ShopName:     "Barbería El Estilo",
		Address:      "Av. Siempre Viva 742",
		Date:         "2024-06-10",
		Time:         "10:00",
	})

	for _, want := range []string{"Juan", "10/06/2024", "10:00", "Av. Siempre Viva 742", "Barbería El Estilo"} {
		assert.Contains(t, body, want)
	}
}

func TestReminderBodyWithoutAddress(t *testing.T) {
	body := ReminderBody(Details{CustomerName: "Juan", ShopName: "X", Date: "2024-06-10", Time: "10:00"})
	assert.False(t, strings.Contains(body, "Lugar"))
}

func TestConfirmationAndCancellationBodies(t *testing.T) {
	d := Details{CustomerName: "Ana", ShopName: "El Estilo", Date: "2024-06-10", Time: "09:00"}

	assert.Contains(t, ConfirmationBody(d), "10/06/2024 a las 09:00")
	assert.Contains(t, CancellationBody(d), "cancelado")
	assert.Contains(t, ConfirmationBody(Details{Date: "mañana"}), "mañana")
}
