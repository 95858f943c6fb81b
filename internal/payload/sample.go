package payload

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/beetlebot/itinerary-cli/internal/core"
)

var sampleAirlines = []struct {
	Code    string
	Name    string
	Program string
}{
	{"AC", "Air Canada", "aeroplan"},
	{"AF", "Air France", "flyingblue"},
	{"UA", "United Airlines", "mileageplus"},
	{"BA", "British Airways", "avios"},
	{"WS", "WestJet", "westjet-rewards"},
}

var sampleStays = []struct {
	Name      string
	BasePrice float64
	Program   string
}{
	{"Grand Hotel Central", 180, "bonvoy"},
	{"City View Suites", 140, "hilton-honors"},
	{"Cozy Downtown Apartment", 95, ""},
	{"Heritage B&B", 125, ""},
	{"Riverside Cabin", 130, ""},
}

var sampleLocal = []string{"Airport taxi", "Train to city centre", "Rental car pickup", "Ferry crossing"}

// Sample builds a deterministic round-trip recommendation. The same seed
// always yields the same payload.
func Sample(seed string, depart time.Time) *core.Recommendation {
	rng := rand.New(rand.NewSource(hashSeed(seed)))
	nights := 3 + rng.Intn(5)
	ret := depart.AddDate(0, 0, nights)
	day := func(t time.Time) string { return t.Format("2006-01-02") }

	rec := &core.Recommendation{TripID: fmt.Sprintf("trip_%d", hashSeed(seed)%100000)}

	fareGroup := "fare_" + seed
	outbound := core.Segment{ID: "seg_out", Kind: core.KindTransport, Title: "Outbound flight", Date: day(depart), GroupID: fareGroup, DisplaySequence: 1}
	inbound := core.Segment{ID: "seg_ret", Kind: core.KindTransport, Title: "Return flight", Date: day(ret), DisplaySequence: 3}

	count := 2 + rng.Intn(3)
	recommended := rng.Intn(count)
	for i := 0; i < count; i++ {
		al := sampleAirlines[rng.Intn(len(sampleAirlines))]
		price := float64(300+rng.Intn(900)) + 0.99
		out := core.Option{
			ID:                   fmt.Sprintf("opt_%s_%d", al.Code, 100+i),
			Title:                fmt.Sprintf("%s round trip", al.Name),
			Provider:             al.Name,
			Priority:             i + 1,
			RecommendedSelection: i == recommended,
			RoundTrip:            true,
			GroupID:              fareGroup,
			Cost:                 core.FlexibleCost{CashAmount: floatPtr(price), Currency: "USD"},
		}
		if rng.Intn(2) == 0 {
			out.Cost.PointsAmount = intPtr(20000 + 5000*rng.Intn(6))
			out.Cost.PointsProgram = al.Program
		}
		outbound.Options = append(outbound.Options, out)

		// The return leg is included in the outbound fare and joins its group
		// through the option groupId.
		inbound.Options = append(inbound.Options, core.Option{
			ID:       fmt.Sprintf("opt_%s_%d_ret", al.Code, 100+i),
			Title:    fmt.Sprintf("%s return", al.Name),
			Provider: al.Name,
			Priority: i + 1,
			GroupID:  fareGroup,
			Cost:     core.FlexibleCost{CashAmount: floatPtr(0), Currency: "USD"},
		})

		if i == 0 {
			rec.Flights = append(rec.Flights,
				core.Flight{ID: "fl_out", Airline: al.Name, FlightNumber: fmt.Sprintf("%s%d", al.Code, 100+rng.Intn(900)), Date: day(depart), Time: fmt.Sprintf("%02d:%02d", 6+rng.Intn(12), 5*rng.Intn(12))},
				core.Flight{ID: "fl_ret", Airline: al.Name, FlightNumber: fmt.Sprintf("%s%d", al.Code, 100+rng.Intn(900)), Date: day(ret), Time: fmt.Sprintf("%02d:%02d", 6+rng.Intn(12), 5*rng.Intn(12))},
			)
		}
	}

	transfer := core.Segment{ID: "seg_transfer", Kind: core.KindTransport, Title: "Airport transfer", Date: day(depart), DisplaySequence: 2}
	transfer.Options = []core.Option{
		{ID: "opt_train", Title: "Express train", Priority: 1, Cost: core.FlexibleCost{CashAmount: floatPtr(18)}},
		{ID: "opt_taxi", Title: "Taxi", Priority: 2, Cost: core.FlexibleCost{CashAmount: floatPtr(55)}},
	}
	rec.Transport = []core.Segment{outbound, transfer, inbound}

	stay := core.Segment{ID: "seg_stay", Kind: core.KindAccommodation, Title: fmt.Sprintf("%d nights", nights), Date: day(depart)}
	for i, idx := range rng.Perm(len(sampleStays))[:3] {
		tmpl := sampleStays[idx]
		total := tmpl.BasePrice * (0.7 + rng.Float64()*0.6) * float64(nights)
		opt := core.Option{
			ID:       fmt.Sprintf("opt_stay_%d", 200+i),
			Title:    tmpl.Name,
			Priority: i + 1,
			Cost:     core.FlexibleCost{CashAmount: floatPtr(float64(int(total*100)) / 100), Currency: "USD"},
		}
		if tmpl.Program != "" && rng.Intn(2) == 0 {
			opt.Cost = core.FlexibleCost{
				PointsAmount:  intPtr(nights * (10000 + 5000*rng.Intn(4))),
				PointsProgram: tmpl.Program,
				Payment:       core.PaymentPoints,
			}
		}
		stay.Options = append(stay.Options, opt)
	}
	rec.Accommodations = []core.Segment{stay}

	for i, desc := range sampleLocal[:2+rng.Intn(len(sampleLocal)-1)] {
		lt := core.LocalTransport{
			ID:          fmt.Sprintf("lt_%d", i+1),
			Description: desc,
			Time:        fmt.Sprintf("%02d:%02d", 8+rng.Intn(10), 15*rng.Intn(4)),
		}
		// Some local legs are not scheduled to a day yet.
		if rng.Intn(3) > 0 {
			lt.Date = day(depart.AddDate(0, 0, rng.Intn(nights+1)))
		}
		rec.LocalTransportation = append(rec.LocalTransportation, lt)
	}

	return rec
}

func floatPtr(v float64) *float64 { return &v }
func intPtr(v int) *int           { return &v }

func hashSeed(s string) int64 {
	var h int64
	for _, c := range s {
		h = h*31 + int64(c)
	}
	return h & math.MaxInt64
}
