package booking

import (
	"net/http"

	"luxeroom/infras/otel"
	"luxeroom/internal/domains/booking/model/dto"
	"luxeroom/internal/domains/booking/service"
	"luxeroom/shared/constant"
	"luxeroom/shared/validator"
	"luxeroom/transport/http/middleware"
	"luxeroom/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Booking
	authMw  middleware.Auth
	otel    otel.Otel
}

func New(service service.Booking, authMw middleware.Auth, otel otel.Otel) Handler {
	return Handler{
		service: service,
		authMw:  authMw,
		otel:    otel,
	}
}

func (handler *Handler) Router(r chi.Router) {
	r.Route("/bookings", func(r chi.Router) {
		r.Get("/", handler.GetBookings)
		r.With(handler.authMw.Auth).Post("/", handler.CreateBooking)
		r.With(handler.authMw.Auth).Post("/draft-note", handler.DraftNote)
	})
}

// GetBookings lists every booking.
// @Summary Get all bookings
// @Description Retrieve the full booking collection.
// @Tags Booking
// @Produce json
// @Success 200 {object} response.Data[dto.GetBookingsResponse] "List of bookings"
// @Router /v1/bookings [get]
func (handler *Handler) GetBookings(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBookings")
	defer scope.End()

	bookings, err := handler.service.GetAll(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get bookings")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, bookings)
}

// CreateBooking books a room for a guest.
// @Summary Create a new booking
// @Description Book a room for a guest over a number of nights.
// @Tags Booking
// @Accept json
// @Produce json
// @Param request body dto.CreateBookingRequest true "Create Booking Request"
// @Success 201 {object} response.Data[dto.BookingResponse] "Created booking"
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Router /v1/bookings [post]
// @Security BearerAuth
func (handler *Handler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateBooking")
	defer scope.End()

	req := dto.CreateBookingRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create booking")

		response.WithError(w, err)

		return
	}

	staff, _ := ctx.Value(constant.ContextKeyStaffName).(string)
	scope.AddEvent("Booking created successfully by " + staff)

	response.WithJSON(w, http.StatusCreated, res)
}

// DraftNote generates a welcome note suggestion for the booking form.
// @Summary Draft a welcome note
// @Description Generate a short welcome note for a guest. Retries with the same request id return the cached draft.
// @Tags Booking
// @Accept json
// @Produce json
// @Param request body dto.DraftNoteRequest true "Draft Note Request"
// @Success 200 {object} response.Data[dto.DraftNoteResponse] "Drafted note"
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 503 {object} response.Error
// @Router /v1/bookings/draft-note [post]
// @Security BearerAuth
func (handler *Handler) DraftNote(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DraftNote")
	defer scope.End()

	req := dto.DraftNoteRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.DraftNote(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to draft note")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}
