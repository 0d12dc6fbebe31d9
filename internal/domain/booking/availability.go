package booking

// Availability is the slot picture of one barbershop on one day.
// Free and Taken partition All and both keep its order.
type Availability struct {
	Date  string   `json:"date"`
	All   []string `json:"all"`
	Free  []string `json:"free"`
	Taken []string `json:"taken"`
}

// ComputeAvailability subtracts the reserved times from the configured
// slots. Reserved times are normalized first; those that do not parse or
// are not configured slots are ignored.
func ComputeAvailability(date string, slots []string, reserved []string) Availability {
	taken := make(map[string]struct{}, len(reserved))
	for _, r := range reserved {
		hm, err := NormalizeTime(r)
		if err != nil {
			continue
		}
		taken[hm] = struct{}{}
	}

	av := Availability{
		Date:  date,
		All:   make([]string, 0, len(slots)),
		Free:  make([]string, 0, len(slots)),
		Taken: make([]string, 0, len(taken)),
	}

	for _, s := range slots {
		av.All = append(av.All, s)
		key := s
		if hm, err := NormalizeTime(s); err == nil {
			key = hm
		}
		if _, ok := taken[key]; ok {
			av.Taken = append(av.Taken, s)
			continue
		}
		av.Free = append(av.Free, s)
	}
	return av
}
