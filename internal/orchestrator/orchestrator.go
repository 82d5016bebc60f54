// Package orchestrator drives the two generation branches of a trip search
// concurrently and settles each branch on its own: one branch failing never
// cancels, delays, or replaces the other branch's result.
package orchestrator

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/dharmasatrya/tripplanner/internal/generation"
	"github.com/dharmasatrya/tripplanner/internal/models"
	"github.com/dharmasatrya/tripplanner/internal/ratelimit"
)

// The causes behind a branch failure stay in the logs; consumers only see
// these generic messages.
const (
	FlightFailureMessage = "Failed to generate flight data. The AI model may be temporarily unavailable."
	HotelFailureMessage  = "Failed to generate hotel data. The AI model may be temporarily unavailable."
)

type Config struct {
	RateLimiter *ratelimit.BranchLimiter
	Logger      *logrus.Logger
}

// searchState tracks one client's latest search so a newer search from the
// same client can supersede it. Searches from different clients never touch
// each other's state.
type searchState struct {
	seq    uint64
	cancel context.CancelFunc
}

// Orchestrator fans a combined trip search out to the flight and hotel
// generators and joins on both settling.
type Orchestrator struct {
	flights generation.FlightSearcher
	hotels  generation.HotelSearcher
	config  Config

	mu      sync.Mutex
	clients map[string]*searchState
}

func New(flights generation.FlightSearcher, hotels generation.HotelSearcher, config Config) *Orchestrator {
	if config.Logger == nil {
		config.Logger = logrus.StandardLogger()
	}
	return &Orchestrator{
		flights: flights,
		hotels:  hotels,
		config:  config,
		clients: make(map[string]*searchState),
	}
}

// FlightOutcome is the settled flight branch: either Data or Err is set.
type FlightOutcome struct {
	Data *models.FlightData
	Err  string
}

func (o FlightOutcome) OK() bool {
	return o.Err == ""
}

// HotelOutcome is the settled hotel branch: either Data or Err is set.
type HotelOutcome struct {
	Data *models.HotelData
	Err  string
}

func (o HotelOutcome) OK() bool {
	return o.Err == ""
}

// TripResult holds both settled branches of one search attempt. Superseded
// reports that the same client started a newer search while this one was in
// flight; its outcomes should be discarded by the caller.
type TripResult struct {
	SearchID   string
	Sequence   uint64
	Flight     FlightOutcome
	Hotel      HotelOutcome
	Superseded bool
	Elapsed    time.Duration
}

// Search issues both generation calls at the same logical time and suspends
// until both have settled. Each branch resolves success or failure
// independently; there is no retry and no orchestrator-level timeout.
//
// A new Search supersedes a search still in flight for the same client: the
// older search's context is cancelled and its eventual result is flagged
// Superseded. Searches from different clients run unaffected by each other.
func (o *Orchestrator) Search(ctx context.Context, clientID string, req models.TripSearchRequest) *TripResult {
	searchCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	o.mu.Lock()
	state, ok := o.clients[clientID]
	if !ok {
		state = &searchState{}
		o.clients[clientID] = state
	}
	state.seq++
	seq := state.seq
	if state.cancel != nil {
		state.cancel()
	}
	state.cancel = cancel
	o.mu.Unlock()

	result := &TripResult{
		SearchID: uuid.NewString(),
		Sequence: seq,
	}
	start := time.Now()

	log := o.config.Logger.WithFields(logrus.Fields{
		"search_id": result.SearchID,
		"sequence":  seq,
	})

	// Branch errors are folded into the outcome slots and never returned from
	// the group, so errgroup's cancel-on-error can't couple the branches.
	var g errgroup.Group

	g.Go(func() error {
		result.Flight = o.searchFlights(searchCtx, req.Flight, log)
		return nil
	})

	g.Go(func() error {
		result.Hotel = o.searchHotels(searchCtx, req.Hotel, log)
		return nil
	})

	_ = g.Wait()

	result.Elapsed = time.Since(start)

	o.mu.Lock()
	result.Superseded = seq != state.seq
	if seq == state.seq {
		state.cancel = nil
	}
	o.mu.Unlock()

	return result
}

func (o *Orchestrator) searchFlights(ctx context.Context, input models.FlightSearchInput, log *logrus.Entry) FlightOutcome {
	if o.config.RateLimiter != nil {
		if err := o.config.RateLimiter.Wait(ctx, o.flights.Name()); err != nil {
			log.WithError(err).Error("flight branch rate limit wait failed")
			return FlightOutcome{Err: FlightFailureMessage}
		}
	}

	data, err := o.flights.Search(ctx, input)
	if err != nil {
		logBranchFailure(log, o.flights.Name(), err)
		return FlightOutcome{Err: FlightFailureMessage}
	}

	return FlightOutcome{Data: data}
}

func (o *Orchestrator) searchHotels(ctx context.Context, input models.HotelSearchInput, log *logrus.Entry) HotelOutcome {
	if o.config.RateLimiter != nil {
		if err := o.config.RateLimiter.Wait(ctx, o.hotels.Name()); err != nil {
			log.WithError(err).Error("hotel branch rate limit wait failed")
			return HotelOutcome{Err: HotelFailureMessage}
		}
	}

	data, err := o.hotels.Search(ctx, input)
	if err != nil {
		logBranchFailure(log, o.hotels.Name(), err)
		return HotelOutcome{Err: HotelFailureMessage}
	}

	return HotelOutcome{Data: data}
}

func logBranchFailure(log *logrus.Entry, branch string, err error) {
	entry := log.WithField("branch", branch).WithError(err)

	var schemaErr *generation.SchemaError
	var transportErr *generation.TransportError
	switch {
	case errors.As(err, &schemaErr):
		entry.Error("generation response violated the output schema")
	case errors.As(err, &transportErr):
		entry.Error("generation call failed")
	default:
		entry.Error("branch failed")
	}
}
