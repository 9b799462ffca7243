package notification

import (
	"context"
	"log/slog"

	"tripstack/internal/usecase/commands"
)

// EmailNotifier renders booking notices to the structured log. A real mail
// transport would slot in behind the same interface; either way delivery
// failures never propagate to the caller.
type EmailNotifier struct{}

func NewEmailNotifier() *EmailNotifier {
	return &EmailNotifier{}
}

func (n *EmailNotifier) BookingConfirmed(ctx context.Context, recipientEmail string, notice commands.BookingNotice) {
	slog.InfoContext(ctx, "booking confirmation sent",
		"recipient", recipientEmail,
		"booking_id", notice.BookingID,
		"room_id", notice.RoomID,
		"check_in", notice.CheckIn.Format("2006-01-02"),
		"check_out", notice.CheckOut.Format("2006-01-02"),
		"total_price_cents", notice.TotalPriceCents,
	)
}

func (n *EmailNotifier) BookingCancelled(ctx context.Context, recipientEmail string, notice commands.BookingNotice) {
	slog.InfoContext(ctx, "booking cancellation sent",
		"recipient", recipientEmail,
		"booking_id", notice.BookingID,
		"room_id", notice.RoomID,
		"check_in", notice.CheckIn.Format("2006-01-02"),
		"check_out", notice.CheckOut.Format("2006-01-02"),
	)
}
