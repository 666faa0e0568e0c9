// internal/usecase/fakes_test.go
package usecase

import (
	"context"
	"time"

	"departly/internal/domain/entity"
	"departly/internal/domain/repository"
)

type fakeTrafficRepo struct {
	estimate *entity.TrafficEstimate
	err      error
	calls    int
	lastDest string
}

func (f *fakeTrafficRepo) GetDriveTime(ctx context.Context, origin, destination string, departAt time.Time) (*entity.TrafficEstimate, error) {
	f.calls++
	f.lastDest = destination
	if f.err != nil {
		return nil, f.err
	}
	return f.estimate, nil
}

type fakeAirportRepo struct {
	airports map[string]*entity.Airport
	err      error
}

func (f *fakeAirportRepo) GetByAirportCode(ctx context.Context, code string) (*entity.Airport, error) {
	if f.err != nil {
		return nil, f.err
	}
	if a, ok := f.airports[code]; ok {
		return a, nil
	}
	return nil, repository.ErrAirportNotFound
}

type fakeFlightRepo struct {
	flight    *entity.FlightRecord
	flightErr error
	meta      *entity.AirportMeta
	metaErr   error
	metaCalls int
	cityName  string
	cityErr   error
}

func (f *fakeFlightRepo) GetByFlightIATA(ctx context.Context, flightIATA string) (*entity.FlightRecord, error) {
	if f.flightErr != nil {
		return nil, f.flightErr
	}
	return f.flight, nil
}

func (f *fakeFlightRepo) GetAirportMeta(ctx context.Context, airportIATA string) (*entity.AirportMeta, error) {
	f.metaCalls++
	if f.metaErr != nil {
		return nil, f.metaErr
	}
	return f.meta, nil
}

func (f *fakeFlightRepo) GetCityName(ctx context.Context, cityCode string) (string, error) {
	if f.cityErr != nil {
		return "", f.cityErr
	}
	return f.cityName, nil
}

type fakeJourneyRepo struct {
	saved   map[string]*entity.JourneySummary
	saveErr error
	saves   int
}

func newFakeJourneyRepo() *fakeJourneyRepo {
	return &fakeJourneyRepo{saved: make(map[string]*entity.JourneySummary)}
}

func (f *fakeJourneyRepo) Save(ctx context.Context, journey *entity.JourneySummary) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.saves++
	cp := *journey
	f.saved[journey.ID] = &cp
	return nil
}

func (f *fakeJourneyRepo) GetByID(ctx context.Context, id string) (*entity.JourneySummary, error) {
	j, ok := f.saved[id]
	if !ok {
		return nil, repository.ErrJourneyNotFound
	}
	cp := *j
	return &cp, nil
}

type fakeAttractionRepo struct {
	byCity  map[string][]entity.Attraction
	errCity map[string]error
	queries []string
	any     *entity.Attraction
	anyErr  error
	delay   time.Duration
}

func (f *fakeAttractionRepo) FindByCity(ctx context.Context, city string, limit int64) ([]entity.Attraction, error) {
	f.queries = append(f.queries, city)
	if err, ok := f.errCity[city]; ok {
		return nil, err
	}
	rows := f.byCity[city]
	if limit > 0 && int64(len(rows)) > limit {
		rows = rows[:limit]
	}
	return rows, nil
}

func (f *fakeAttractionRepo) FindAny(ctx context.Context) (*entity.Attraction, error) {
	if f.delay > 0 {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(f.delay):
		}
	}
	if f.anyErr != nil {
		return nil, f.anyErr
	}
	return f.any, nil
}

type fakeGeminiRepo struct {
	text    string
	errs    []error // consumed one per call, nil entry means success
	calls   int
	prompts []string
}

func (f *fakeGeminiRepo) GenerateContent(ctx context.Context, prompt string) (string, error) {
	f.calls++
	f.prompts = append(f.prompts, prompt)
	if len(f.errs) > 0 {
		err := f.errs[0]
		f.errs = f.errs[1:]
		if err != nil {
			return "", err
		}
	}
	return f.text, nil
}
