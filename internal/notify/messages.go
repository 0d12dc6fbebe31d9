package notify

import (
	"fmt"
	"strings"
	"time"
)

// Details is what the customer templates need about a reservation.
type Details struct {
	CustomerName string
	ShopName     string
	Address      string
	Date         string // YYYY-MM-DD
	Time         string // HH:MM
}

func displayDate(date string) string {
	d, err := time.Parse("2006-01-02", date)
	if err != nil {
		return date
	}
	return d.Format("02/01/2006")
}

func ReminderBody(d Details) string {
	var b strings.Builder
	b.WriteString("🔔 *Recordatorio de tu turno*\n\n")
	fmt.Fprintf(&b, "Hola %s! 👋\n\n", d.CustomerName)
	b.WriteString("Te recordamos que tienes un turno reservado:\n\n")
	fmt.Fprintf(&b, "📅 *Fecha:* %s\n", displayDate(d.Date))
	fmt.Fprintf(&b, "⏰ *Hora:* %s\n", d.Time)
	if d.Address != "" {
		fmt.Fprintf(&b, "📍 *Lugar:* %s\n", d.Address)
	}
	fmt.Fprintf(&b, "\n✂️ ¡Te esperamos en %s!\n\n", d.ShopName)
	b.WriteString("_Este es un mensaje automático. No responder._")
	return b.String()
}

func ConfirmationBody(d Details) string {
	return fmt.Sprintf(
		"✅ Hola %s, tu turno en %s quedó reservado para el %s a las %s.",
		d.CustomerName, d.ShopName, displayDate(d.Date), d.Time,
	)
}

func CancellationBody(d Details) string {
	return fmt.Sprintf(
		"❌ Hola %s, tu turno en %s del %s a las %s fue cancelado.",
		d.CustomerName, d.ShopName, displayDate(d.Date), d.Time,
	)
}
