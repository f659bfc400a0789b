package blockedtime

import (
	"net/http"
	"spa/infras/otel"
	"spa/internal/domains/blockedtime/model"
	"spa/internal/domains/blockedtime/model/dto"
	"spa/internal/domains/blockedtime/service"
	"spa/shared"
	"spa/shared/constant"
	gDto "spa/shared/dto"
	"spa/shared/validator"
	"spa/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

var sortable = []string{
	model.FieldBlockDate,
	constant.FieldCreatedAt,
}

var filterable = []string{
	model.FieldTherapistID,
	model.FieldRoomID,
	model.FieldLocationID,
	model.FieldBlockDate,
}

type Handler struct {
	service service.BlockedTime
	otel    otel.Otel
}

func New(service service.BlockedTime, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/blocked-times", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateBlockedTime)
		routerGroup.Get("/", handler.GetBlockedTimes)
		routerGroup.Get("/{id}", handler.GetBlockedTimeByID)
		routerGroup.Delete("/{id}", handler.DeleteBlockedTime)
	})
}

// CreateBlockedTime declares a therapist, room or location unavailable on a date.
// @Summary Create a blocked time
// @Tags BlockedTime
// @Accept json
// @Produce json
// @Param request body dto.CreateBlockedTimeRequest true "Create Blocked Time Request"
// @Success 201 {object} response.Data[dto.BlockedTimeResponse] "Blocked time created"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/blocked-times [post]
func (handler *Handler) CreateBlockedTime(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateBlockedTime")
	defer scope.End()

	req := dto.CreateBlockedTimeRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	block, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create blocked time")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Blocked time created by " + shared.ActorFromContext(ctx))

	response.WithJSON(w, http.StatusCreated, block)
}

// GetBlockedTimes lists blocked times.
// @Summary Get all blocked times
// @Tags BlockedTime
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param therapist_id query string false "Filter by therapist"
// @Param room_id query string false "Filter by room"
// @Param location_id query string false "Filter by location"
// @Param block_date query string false "Filter by date (YYYY-MM-DD)"
// @Success 200 {object} response.Data[dto.GetBlockedTimesResponse] "List of blocked times"
// @Failure 500 {object} response.Error
// @Router /v1/blocked-times [get]
func (handler *Handler) GetBlockedTimes(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBlockedTimes")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)
	queryParams.RestrictSort(sortable...)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	for _, field := range filterable {
		value := r.URL.Query().Get(field)
		if value == constant.Empty {
			continue
		}

		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    field,
			Operator: gDto.FilterOperatorEq,
			Value:    value,
			Table:    model.TableName,
		})
	}

	blocks, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get blocked times")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, blocks)
}

// GetBlockedTimeByID retrieves a blocked time by its ID.
// @Summary Get a blocked time by ID
// @Tags BlockedTime
// @Produce json
// @Param id path string true "Blocked time ID"
// @Success 200 {object} response.Data[dto.BlockedTimeResponse] "Blocked time"
// @Failure 404 {object} response.Error
// @Router /v1/blocked-times/{id} [get]
func (handler *Handler) GetBlockedTimeByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBlockedTimeByID")
	defer scope.End()

	block, err := handler.service.Get(ctx, chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get blocked time by ID")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, block)
}

// DeleteBlockedTime lifts a blocked time.
// @Summary Delete a blocked time
// @Tags BlockedTime
// @Produce json
// @Param id path string true "Blocked time ID"
// @Success 200 {object} response.Message "Blocked time deleted"
// @Failure 404 {object} response.Error
// @Router /v1/blocked-times/{id} [delete]
func (handler *Handler) DeleteBlockedTime(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteBlockedTime")
	defer scope.End()

	if err := handler.service.Delete(ctx, chi.URLParam(r, constant.RequestParamID)); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete blocked time")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Blocked time deleted successfully")
}
