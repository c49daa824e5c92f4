package activity

import (
	"net/http"

	"luxeroom/infras/otel"
	"luxeroom/internal/domains/activity/service"
	"luxeroom/shared/constant"
	"luxeroom/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Activity
	otel    otel.Otel
}

func New(service service.Activity, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(r chi.Router) {
	r.Route("/activity", func(r chi.Router) {
		r.Get("/", handler.GetActivity)
	})
}

// GetActivity lists the recent audit trail, newest first.
// @Summary Get recent activity
// @Description Retrieve the retained activity log entries, newest first.
// @Tags Activity
// @Produce json
// @Success 200 {object} response.Data[dto.GetActivityResponse] "Recent activity"
// @Router /v1/activity [get]
func (handler *Handler) GetActivity(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetActivity")
	defer scope.End()

	activity, err := handler.service.GetAll(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get activity")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, activity)
}
