package components

import (
	"tripstack/internal/infra/cache"
	"tripstack/internal/infra/notification"
	"tripstack/internal/infra/repository"
	"tripstack/internal/pkg/config"
	"tripstack/internal/usecase/commands"
	"tripstack/internal/usecase/queries"

	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		// User
		fx.Annotate(
			repository.NewUserRepository,
			fx.As(new(commands.UserRepository)),
			fx.As(new(commands.UserReader)),
			fx.As(new(queries.UserReadStore)),
		),
		// Flight
		fx.Annotate(
			repository.NewFlightRepository,
			fx.As(new(commands.FlightRepository)),
			fx.As(new(queries.FlightReadStore)),
		),
		// Hotel
		fx.Annotate(
			repository.NewHotelRepository,
			fx.As(new(commands.HotelRepository)),
			fx.As(new(commands.HotelReader)),
			fx.As(new(queries.HotelReadStore)),
			fx.As(new(queries.RoomReadStore)),
		),
		fx.Annotate(
			repository.NewRoomReaderRepository,
			fx.As(new(commands.RoomReader)),
		),
		// Booking
		fx.Annotate(
			repository.NewBookingRepository,
			fx.As(new(commands.BookingRepository)),
			fx.As(new(queries.BookingReadStore)),
		),
		// Search cache
		fx.Annotate(
			NewLegCache,
			fx.As(new(queries.LegCache)),
		),
		// Notification
		fx.Annotate(
			notification.NewEmailNotifier,
			fx.As(new(commands.Notifier)),
		),
	),
)

func NewLegCache(client *cache.Client, cfg config.Config) *cache.LegCache {
	return cache.NewLegCache(client, cfg.Redis)
}
