// README: Booking service drives a visitor session through inventory, booking and confirmation.
package booking

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"mftnb/internal/modules/estimate"
	"mftnb/internal/modules/inventory"
	"mftnb/internal/modules/notify"
)

var (
	ErrInvalidInput    = errors.New("invalid input")
	ErrInvalidState    = errors.New("invalid stage transition")
	ErrSessionNotFound = errors.New("session not found")
)

const (
	InvalidNumbersMessage = "Please provide valid numbers for bedrooms, stairs, heavy items and distance."
	NotSubmittedMessage   = "Please fill in your booking details first."
)

// DistanceResolver looks up the driving distance between two addresses.
type DistanceResolver interface {
	DistanceKm(ctx context.Context, origin, destination string) (float64, error)
}

type Deps struct {
	Store     Store
	Estimator *estimate.Service
	Distance  DistanceResolver
	Events    notify.Publisher
	Logger    *zap.Logger
}

type Service struct {
	store     Store
	estimator *estimate.Service
	distance  DistanceResolver
	events    notify.Publisher
	logger    *zap.Logger
	now       func() time.Time
}

func NewService(deps Deps) *Service {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	events := deps.Events
	if events == nil {
		events = notify.Noop{}
	}
	estimator := deps.Estimator
	if estimator == nil {
		estimator = estimate.NewService(logger)
	}
	return &Service{
		store:     deps.Store,
		estimator: estimator,
		distance:  deps.Distance,
		events:    events,
		logger:    logger.Named("booking"),
		now:       time.Now,
	}
}

// Confirmation is everything the confirmation page shows.
type Confirmation struct {
	Inventory []inventory.Item
	ItemCount int
	Rooms     []inventory.RoomCount
	Contact   Contact
	Quote     *estimate.Quote
}

// Load returns the session with the given id, or a new unsaved session when
// the id is empty, unknown or expired.
func (s *Service) Load(ctx context.Context, id string) (*Session, error) {
	if id == "" {
		return s.newSession(), nil
	}
	sess, err := s.store.Get(ctx, id)
	if errors.Is(err, ErrSessionNotFound) {
		return s.newSession(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("load session: %w", err)
	}
	return sess, nil
}

// SaveInventory stores the raw inventory payload as submitted.
func (s *Service) SaveInventory(ctx context.Context, sess *Session, raw string) error {
	if err := sess.advance(StageInventoryCollected); err != nil {
		return err
	}
	sess.InventoryData = raw
	return s.save(ctx, sess)
}

// SubmitBooking records the contact details, prices the move and stores the quote.
// Invalid numbers leave the stage unchanged, queue a flash message and return ErrInvalidInput.
func (s *Service) SubmitBooking(ctx context.Context, sess *Session, form Form) (*estimate.Quote, error) {
	sess.Contact = form.contact()

	if form.distanceBlank() {
		form = s.resolveDistance(ctx, form)
	}

	req, err := form.MoveRequest()
	if err != nil {
		s.logger.Info("booking rejected", zap.String("session_id", sess.ID), zap.Error(err))
		sess.addFlash(InvalidNumbersMessage)
		if saveErr := s.save(ctx, sess); saveErr != nil {
			return nil, saveErr
		}
		return nil, err
	}

	if err := sess.advance(StageBookingSubmitted); err != nil {
		return nil, err
	}
	quote := s.estimator.Quote(ctx, req)
	sess.Quote = &quote
	if err := s.save(ctx, sess); err != nil {
		return nil, err
	}

	s.publish(ctx, sess)
	return &quote, nil
}

// Confirm moves a submitted booking to confirmed and assembles the summary.
func (s *Service) Confirm(ctx context.Context, sess *Session) (*Confirmation, error) {
	if sess.Stage != StageBookingSubmitted && sess.Stage != StageConfirmed {
		sess.addFlash(NotSubmittedMessage)
		if err := s.save(ctx, sess); err != nil {
			return nil, err
		}
		return nil, ErrInvalidState
	}
	if err := sess.advance(StageConfirmed); err != nil {
		return nil, err
	}
	if err := s.save(ctx, sess); err != nil {
		return nil, err
	}

	items := inventory.Parse(sess.InventoryData)
	count, rooms := inventory.Summary(items)
	return &Confirmation{
		Inventory: items,
		ItemCount: count,
		Rooms:     rooms,
		Contact:   sess.Contact,
		Quote:     sess.Quote,
	}, nil
}

// Reset discards the session and returns a fresh one.
func (s *Service) Reset(ctx context.Context, sess *Session) (*Session, error) {
	if err := s.store.Delete(ctx, sess.ID); err != nil {
		return nil, fmt.Errorf("delete session: %w", err)
	}
	return s.newSession(), nil
}

// PopFlash returns queued flash messages and clears them.
func (s *Service) PopFlash(ctx context.Context, sess *Session) ([]string, error) {
	if len(sess.Flashes) == 0 {
		return nil, nil
	}
	msgs := sess.Flashes
	sess.Flashes = nil
	if err := s.save(ctx, sess); err != nil {
		return nil, err
	}
	return msgs, nil
}

func (s *Service) newSession() *Session {
	return &Session{
		ID:        uuid.New().String(),
		Stage:     StageStart,
		UpdatedAt: s.now(),
	}
}

func (s *Service) save(ctx context.Context, sess *Session) error {
	sess.UpdatedAt = s.now()
	if err := s.store.Save(ctx, sess); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

// resolveDistance fills a blank distance from the maps service when both addresses are known.
// Lookup failures keep the form as submitted.
func (s *Service) resolveDistance(ctx context.Context, form Form) Form {
	if s.distance == nil {
		return form
	}
	origin := strings.TrimSpace(form.Origin)
	destination := strings.TrimSpace(form.Destination)
	if origin == "" || destination == "" {
		return form
	}
	km, err := s.distance.DistanceKm(ctx, origin, destination)
	if err != nil {
		s.logger.Warn("distance lookup failed", zap.String("origin", origin),
			zap.String("destination", destination), zap.Error(err))
		return form
	}
	v := strconv.FormatFloat(km, 'f', -1, 64)
	form.DistanceKm = &v
	return form
}

func (s *Service) publish(ctx context.Context, sess *Session) {
	count, _ := inventory.Summary(inventory.Parse(sess.InventoryData))
	ev := notify.BookingSubmitted{
		SessionID:   sess.ID,
		Name:        sess.Contact.Name,
		Email:       sess.Contact.Email,
		Phone:       sess.Contact.Phone,
		MoveDate:    sess.Contact.MoveDate,
		Origin:      sess.Contact.Origin,
		Destination: sess.Contact.Destination,
		Notes:       sess.Contact.Notes,
		Quote:       *sess.Quote,
		ItemCount:   count,
		SubmittedAt: s.now().UTC(),
	}
	if err := s.events.PublishBookingSubmitted(ctx, ev); err != nil {
		s.logger.Warn("booking event not published", zap.String("session_id", sess.ID), zap.Error(err))
	}
}
