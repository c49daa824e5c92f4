package room

import (
	"net/http"

	"luxeroom/infras/otel"
	"luxeroom/internal/domains/room/model/dto"
	"luxeroom/internal/domains/room/service"
	"luxeroom/shared/constant"
	"luxeroom/shared/validator"
	"luxeroom/transport/http/middleware"
	"luxeroom/transport/http/response"

	bookingService "luxeroom/internal/domains/booking/service"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Room
	booking bookingService.Booking
	authMw  middleware.Auth
	otel    otel.Otel
}

func New(service service.Room, booking bookingService.Booking, authMw middleware.Auth, otel otel.Otel) Handler {
	return Handler{
		service: service,
		booking: booking,
		authMw:  authMw,
		otel:    otel,
	}
}

func (handler *Handler) Router(r chi.Router) {
	r.Route("/rooms", func(r chi.Router) {
		r.Get("/", handler.GetRooms)
		r.Get("/{id}/occupancy", handler.GetOccupancy)
		r.With(handler.authMw.Auth).Patch("/{id}/status", handler.ChangeStatus)
	})

	r.Route("/admin", func(r chi.Router) {
		r.With(handler.authMw.Auth).Post("/reset", handler.Reset)
	})
}

// GetRooms lists the full room inventory.
// @Summary Get all rooms
// @Description Retrieve the room inventory with current housekeeping statuses.
// @Tags Room
// @Produce json
// @Success 200 {object} response.Data[dto.GetRoomsResponse] "List of rooms"
// @Router /v1/rooms [get]
func (handler *Handler) GetRooms(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRooms")
	defer scope.End()

	rooms, err := handler.service.GetAll(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get rooms")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, rooms)
}

// GetOccupancy reports whether a room is occupied on a calendar day.
// @Summary Get room occupancy for a day
// @Description Answer whether the room is booked on the given date, and by whom.
// @Tags Room
// @Produce json
// @Param id path string true "Room ID"
// @Param date query string true "Date (YYYY-MM-DD)"
// @Success 200 {object} response.Data[dto.OccupancyResponse] "Occupancy for the day"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/rooms/{id}/occupancy [get]
func (handler *Handler) GetOccupancy(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetOccupancy")
	defer scope.End()

	roomID := chi.URLParam(r, constant.RequestParamID)
	date := r.URL.Query().Get(constant.RequestParamDate)

	res, err := handler.booking.Occupancy(ctx, roomID, date)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get occupancy")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// ChangeStatus moves a room to a new housekeeping status.
// @Summary Change a room's status
// @Description Set the housekeeping status of one room.
// @Tags Room
// @Accept json
// @Produce json
// @Param id path string true "Room ID"
// @Param request body dto.ChangeStatusRequest true "Change Status Request"
// @Success 200 {object} response.Data[dto.RoomResponse] "Updated room"
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/rooms/{id}/status [patch]
// @Security BearerAuth
func (handler *Handler) ChangeStatus(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ChangeStatus")
	defer scope.End()

	roomID := chi.URLParam(r, constant.RequestParamID)

	req := dto.ChangeStatusRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.ChangeStatus(ctx, roomID, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to change room status")

		response.WithError(w, err)

		return
	}

	staff, _ := ctx.Value(constant.ContextKeyStaffName).(string)
	scope.AddEvent("Room status changed by " + staff)

	response.WithJSON(w, http.StatusOK, res)
}

// Reset restores the seed dataset.
// @Summary Reset all data
// @Description Restore the seed room inventory and clear bookings and activity.
// @Tags Admin
// @Produce json
// @Success 200 {object} response.Message "Data reset successfully"
// @Failure 401 {object} response.Error
// @Router /v1/admin/reset [post]
// @Security BearerAuth
func (handler *Handler) Reset(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Reset")
	defer scope.End()

	if err := handler.service.Reset(ctx); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to reset data")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Data reset to defaults")

	response.WithMessage(w, http.StatusOK, "Data reset successfully")
}
