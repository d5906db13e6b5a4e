package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"koerplan/config"
	deliverycontext "koerplan/internal/delivery/context"
	"koerplan/internal/domain/entity"
	domainerrors "koerplan/internal/domain/errors"
	"koerplan/internal/domain/service"
	"koerplan/internal/usecase"
	"koerplan/internal/util"

	"github.com/paulmach/orb/planar"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

// Address roles as they appear in user-facing messages
const (
	roleHome        = "hjem"
	roleDestination = "destination"
	roleWork        = "arbejdsadresse"
)

// leg is one routing request between two resolved points
type leg struct {
	name     string
	from, to entity.Coordinates
	required bool
}

// tripComposer implements the TripUsecase interface.
type tripComposer struct {
	geocoder service.Geocoder
	router   service.Router
	aliases  service.AliasResolver

	terminals [2]entity.FerryTerminal
	crossing  time.Duration
	parallel  bool

	logger *slog.Logger
}

// NewTripComposer is the constructor for tripComposer.
func NewTripComposer(
	geocoder service.Geocoder,
	router service.Router,
	aliases service.AliasResolver,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.TripUsecase {
	terminals := cfg.Ferry.Terminals
	if len(terminals) != 2 {
		terminals = config.DefaultFerryTerminals()
	}

	crossing := cfg.Ferry.CrossingDuration
	if crossing <= 0 {
		crossing = 90 * time.Minute
	}

	composer := &tripComposer{
		geocoder: geocoder,
		router:   router,
		aliases:  aliases,
		crossing: crossing,
		logger:   logger,
	}
	if cfg.Composer != nil {
		composer.parallel = cfg.Composer.ParallelLegs
	}
	for i, t := range terminals {
		composer.terminals[i] = entity.FerryTerminal{
			Name:     t.Name,
			Location: entity.Coordinates{Lat: t.Lat, Lon: t.Lon},
		}
	}

	return composer
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (s *tripComposer) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// Compose resolves the addresses and routes every leg of the trip
func (s *tripComposer) Compose(ctx context.Context, input *usecase.ComposeInput) (*entity.Trip, error) {
	if input == nil || strings.TrimSpace(input.Home) == "" || strings.TrimSpace(input.Destination) == "" {
		return nil, domainerrors.ErrMissingAddresses
	}

	mode := input.Mode
	if mode == "" {
		mode = entity.RouteModeDirect
	}
	if !mode.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("unknown route mode " + string(mode))
	}

	trip := &entity.Trip{
		Mode: mode,
		Inputs: entity.TripAddresses{
			Home:        input.Home,
			Work:        input.Work,
			Destination: input.Destination,
		},
	}

	home, homeName, err := s.locate(ctx, roleHome, input.Home)
	if err != nil {
		return nil, err
	}
	trip.Resolved.Home = homeName

	dest, destName, err := s.locate(ctx, roleDestination, input.Destination)
	if err != nil {
		return nil, err
	}
	trip.Resolved.Destination = destName

	if mode == entity.RouteModeFerry {
		err = s.composeFerry(ctx, trip, home, dest)
	} else {
		err = s.composeDirect(ctx, trip, home, dest)
	}
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(input.Work) != "" {
		if err := s.composeCommute(ctx, trip, home, input.Work); err != nil {
			return nil, err
		}
	}

	s.log(ctx).Info("Trip composed",
		slog.String("mode", string(mode)),
		slog.String("distance", util.FormatKm(trip.Trip.DistanceKm())),
		slog.String("duration", util.FormatDuration(trip.Trip.Duration())),
		slog.Bool("return_trip", trip.ReturnTrip != nil),
		slog.Bool("commute", trip.HasCommute()),
	)

	return trip, nil
}

func (s *tripComposer) composeDirect(ctx context.Context, trip *entity.Trip, home, dest entity.Coordinates) error {
	results, errs := s.routeLegs(ctx, []leg{
		{name: "trip", from: home, to: dest, required: true},
		{name: "returnTrip", from: dest, to: home},
	})

	if errs[0] != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return errors.Wrap(ctxErr, "compose canceled")
		}

		return domainerrors.ErrRouteNotFound.WithCause(errs[0])
	}

	trip.Trip = results[0]
	trip.ReturnTrip = results[1]

	return nil
}

func (s *tripComposer) composeFerry(ctx context.Context, trip *entity.Trip, home, dest entity.Coordinates) error {
	near, far := s.nearestTerminal(home)

	s.log(ctx).Debug("Ferry terminals chosen",
		slog.String("near", near.Name),
		slog.String("far", far.Name),
	)

	results, errs := s.routeLegs(ctx, []leg{
		{name: "homeToTerminal", from: home, to: near.Location, required: true},
		{name: "terminalToDestination", from: far.Location, to: dest, required: true},
		{name: "destinationToTerminal", from: dest, to: far.Location, required: true},
		{name: "terminalToHome", from: near.Location, to: home, required: true},
	})

	for _, err := range errs {
		if err == nil {
			continue
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return errors.Wrap(ctxErr, "compose canceled")
		}

		return domainerrors.ErrFerryRouteNotFound.WithCause(err)
	}

	outbound := combineFerryLegs(*results[0], *results[1], s.crossing)
	inbound := combineFerryLegs(*results[2], *results[3], s.crossing)

	trip.Trip = &outbound
	trip.ReturnTrip = &inbound
	trip.FerrySegments = []entity.RouteData{*results[0], *results[1]}
	trip.ReturnFerrySegments = []entity.RouteData{*results[2], *results[3]}

	return nil
}

func (s *tripComposer) composeCommute(ctx context.Context, trip *entity.Trip, home entity.Coordinates, rawWork string) error {
	work, workName, err := s.locate(ctx, roleWork, rawWork)
	if err != nil {
		return err
	}
	trip.Resolved.Work = workName

	results, _ := s.routeLegs(ctx, []leg{
		{name: "commute", from: home, to: work},
		{name: "returnCommute", from: work, to: home},
	})
	if ctxErr := ctx.Err(); ctxErr != nil {
		return errors.Wrap(ctxErr, "compose canceled")
	}

	trip.Commute = results[0]
	trip.ReturnCommute = results[1]

	return nil
}

// locate resolves an alias and geocodes the result, picking the first candidate
func (s *tripComposer) locate(ctx context.Context, role, raw string) (entity.Coordinates, string, error) {
	notFound := domainerrors.ErrAddressNotFound.WithMessagef("Kunne ikke finde %s: %s", role, raw)

	query := s.aliases.Resolve(ctx, raw)

	candidates, err := s.geocoder.Search(ctx, query)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return entity.Coordinates{}, "", errors.Wrap(ctxErr, "compose canceled")
		}
		s.log(ctx).Warn("Geocoder failed, treating address as not found",
			slog.String("role", role),
			slog.String("query", query),
			slog.Any("error", err),
		)

		return entity.Coordinates{}, "", notFound.WithCause(err)
	}
	if len(candidates) == 0 {
		return entity.Coordinates{}, "", notFound
	}

	coords, err := candidates[0].Coordinates()
	if err != nil {
		return entity.Coordinates{}, "", notFound.WithCause(err)
	}

	return coords, candidates[0].DisplayName, nil
}

// routeLegs routes each leg and returns results and errors in leg order. A
// failed leg yields a nil result. Sequential mode stops at the first failed
// required leg; parallel mode cancels the remaining legs instead. Legs that
// were stopped or canceled that way report neither a result nor an error.
func (s *tripComposer) routeLegs(ctx context.Context, legs []leg) ([]*entity.RouteData, []error) {
	results := make([]*entity.RouteData, len(legs))
	errs := make([]error, len(legs))

	if !s.parallel {
		for i, l := range legs {
			results[i], errs[i] = s.route(ctx, l)
			if errs[i] != nil && l.required {
				break
			}
		}

		return results, errs
	}

	g, gctx := errgroup.WithContext(ctx)
	for i, l := range legs {
		g.Go(func() error {
			route, err := s.route(gctx, l)
			if err != nil && gctx.Err() != nil && ctx.Err() == nil {
				// a sibling already failed
				return nil
			}
			results[i], errs[i] = route, err
			if err != nil && l.required {
				return err
			}

			return nil
		})
	}
	_ = g.Wait()

	return results, errs
}

func (s *tripComposer) route(ctx context.Context, l leg) (*entity.RouteData, error) {
	route, err := s.router.Route(ctx, []entity.Coordinates{l.from, l.to})
	if err != nil {
		s.log(ctx).Debug("Leg has no route",
			slog.String("leg", l.name),
			slog.Any("error", err),
		)

		return nil, err
	}

	return route, nil
}

// nearestTerminal picks the terminal closest to home in degree space. The
// second terminal wins a tie.
func (s *tripComposer) nearestTerminal(home entity.Coordinates) (near, far entity.FerryTerminal) {
	first := planar.DistanceSquared(home.Point(), s.terminals[0].Location.Point())
	second := planar.DistanceSquared(home.Point(), s.terminals[1].Location.Point())

	if first < second {
		return s.terminals[0], s.terminals[1]
	}

	return s.terminals[1], s.terminals[0]
}

// combineFerryLegs joins the two driving legs of one direction. The geometry
// of the first leg stands for the whole direction.
func combineFerryLegs(first, second entity.RouteData, crossing time.Duration) entity.RouteData {
	return entity.RouteData{
		DistanceMeters:  first.DistanceMeters + second.DistanceMeters,
		DurationSeconds: first.DurationSeconds + second.DurationSeconds + crossing.Seconds(),
		Geometry:        first.Geometry,
	}
}
