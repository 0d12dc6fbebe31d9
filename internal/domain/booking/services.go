package booking

import (
	"strings"

	"github.com/BruksfildServices01/barber-booking/internal/models"
)

type ServiceKind string

const (
	ServiceCut      ServiceKind = "corte"
	ServiceEyebrows ServiceKind = "cejas"
	ServiceBeard    ServiceKind = "barba"
	ServiceColor    ServiceKind = "color"
	ServiceStraight ServiceKind = "alisado"
	ServiceSemiPerm ServiceKind = "semiPermanente"
)

// BaseService is part of every reservation.
const BaseService = ServiceCut

const serviceSeparator = ","

var catalog = []ServiceKind{
	ServiceCut,
	ServiceEyebrows,
	ServiceBeard,
	ServiceColor,
	ServiceStraight,
	ServiceSemiPerm,
}

// Togglable kinds are only offered when the owner enabled them.
func (k ServiceKind) Togglable() bool {
	switch k {
	case ServiceColor, ServiceStraight, ServiceSemiPerm:
		return true
	}
	return false
}

func (k ServiceKind) Known() bool {
	for _, c := range catalog {
		if c == k {
			return true
		}
	}
	return false
}

// Catalog lists every service kind in display order.
func Catalog() []ServiceKind {
	out := make([]ServiceKind, len(catalog))
	copy(out, catalog)
	return out
}

// Offered reports whether shop currently takes bookings for kind.
func Offered(shop *models.Barbershop, kind ServiceKind) bool {
	if !kind.Known() {
		return false
	}
	if !kind.Togglable() {
		return true
	}
	for _, e := range shop.EnabledServices {
		if ServiceKind(e) == kind {
			return true
		}
	}
	return false
}

// OfferedServices lists the kinds the shop takes bookings for.
func OfferedServices(shop *models.Barbershop) []ServiceKind {
	out := make([]ServiceKind, 0, len(catalog))
	for _, k := range catalog {
		if Offered(shop, k) {
			out = append(out, k)
		}
	}
	return out
}

// ValidateServices checks a requested selection against the shop and
// returns it unchanged in selection order.
func ValidateServices(shop *models.Barbershop, requested []string) ([]ServiceKind, error) {
	if len(requested) == 0 {
		return nil, Invalid("services_required")
	}

	out := make([]ServiceKind, 0, len(requested))
	seen := make(map[ServiceKind]struct{}, len(requested))
	hasBase := false

	for _, r := range requested {
		k := ServiceKind(strings.TrimSpace(r))
		if !k.Known() {
			return nil, Invalid("unknown_service")
		}
		if !Offered(shop, k) {
			return nil, Invalid("service_not_offered")
		}
		if _, dup := seen[k]; dup {
			return nil, Invalid("duplicate_service")
		}
		seen[k] = struct{}{}
		if k == BaseService {
			hasBase = true
		}
		out = append(out, k)
	}

	if !hasBase {
		return nil, Invalid("base_service_required")
	}
	return out, nil
}

func JoinServices(kinds []ServiceKind) string {
	parts := make([]string, len(kinds))
	for i, k := range kinds {
		parts[i] = string(k)
	}
	return strings.Join(parts, serviceSeparator)
}

func SplitServices(s string) []ServiceKind {
	if strings.TrimSpace(s) == "" {
		return []ServiceKind{}
	}
	parts := strings.Split(s, serviceSeparator)
	out := make([]ServiceKind, 0, len(parts))
	for _, p := range parts {
		out = append(out, ServiceKind(strings.TrimSpace(p)))
	}
	return out
}

// Total sums the shop's prices for kinds. Kinds without a price count 0.
func Total(shop *models.Barbershop, kinds []ServiceKind) float64 {
	var total float64
	for _, k := range kinds {
		total += shop.Prices[string(k)]
	}
	return total
}
