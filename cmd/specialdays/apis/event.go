package apis

import (
	"context"
	"errors"
	"net/http"
	"specialdays-backend/cmd/specialdays/model"
	"time"

	ics "github.com/arran4/golang-ical"
	"github.com/gocarina/gocsv"
	"github.com/goforj/godump"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

type IEventRepo interface {
	ListEvents(ctx context.Context, ownerID string) ([]model.Event, error)
	CreateEvent(ctx context.Context, event model.Event) error
	UpdateEvent(ctx context.Context, ownerID string, id string, fields map[string]any) error
	DeleteEvent(ctx context.Context, ownerID string, id string) error
}

type EventAPI struct {
	eventRepo IEventRepo
	now       func() time.Time
}

func NewEventAPI(eventRepo IEventRepo) *EventAPI {

	return &EventAPI{
		eventRepo: eventRepo,
		now:       time.Now,
	}
}

func (a *EventAPI) Setup(g *echo.Group) {
	g.GET("/events", a.listEvents)
	g.GET("/events/upcoming", a.upcomingEvents)
	g.GET("/events/past", a.pastEvents)
	g.GET("/events/calendar", a.calendarEvents)
	g.GET("/events/export.ics", a.exportICS)
	g.POST("/events/import", a.importEvents)
	g.POST("/event", a.createEvent)
	g.PUT("/event/:id", a.updateEvent)
	g.DELETE("/event/:id", a.deleteEvent)
}

func (a *EventAPI) listEvents(c echo.Context) error {

	ctx := c.Request().Context()

	user, ok := CurrentUser(c)
	if !ok {
		return unauthenticated(c)
	}

	events, err := a.eventRepo.ListEvents(ctx, user.ID)
	if err != nil {
		return c.JSON(
			http.StatusInternalServerError,
			model.BaseResponse{
				Message: err.Error(),
			},
		)
	}

	return c.JSON(
		http.StatusOK,
		model.BaseResponse{
			Message: "success",
			Data:    events,
		},
	)
}

func (a *EventAPI) upcomingEvents(c echo.Context) error {

	ctx := c.Request().Context()

	user, ok := CurrentUser(c)
	if !ok {
		return unauthenticated(c)
	}

	events, err := a.eventRepo.ListEvents(ctx, user.ID)
	if err != nil {
		return c.JSON(
			http.StatusInternalServerError,
			model.BaseResponse{
				Message: err.Error(),
			},
		)
	}

	classified := model.Classify(events, a.now())
	upcoming := model.FilterByType(classified.Upcoming, c.QueryParam("type"))

	return c.JSON(
		http.StatusOK,
		model.BaseResponse{
			Message: "success",
			Data: model.UpcomingResponse{
				Events:      upcoming,
				UrgentCount: model.CountUrgent(upcoming),
			},
		},
	)
}

func (a *EventAPI) pastEvents(c echo.Context) error {

	ctx := c.Request().Context()

	user, ok := CurrentUser(c)
	if !ok {
		return unauthenticated(c)
	}

	events, err := a.eventRepo.ListEvents(ctx, user.ID)
	if err != nil {
		return c.JSON(
			http.StatusInternalServerError,
			model.BaseResponse{
				Message: err.Error(),
			},
		)
	}

	classified := model.Classify(events, a.now())
	past := model.FilterByType(classified.Past, c.QueryParam("type"))

	return c.JSON(
		http.StatusOK,
		model.BaseResponse{
			Message: "success",
			Data:    past,
		},
	)
}

func (a *EventAPI) calendarEvents(c echo.Context) error {

	ctx := c.Request().Context()

	user, ok := CurrentUser(c)
	if !ok {
		return unauthenticated(c)
	}

	events, err := a.eventRepo.ListEvents(ctx, user.ID)
	if err != nil {
		return c.JSON(
			http.StatusInternalServerError,
			model.BaseResponse{
				Message: err.Error(),
			},
		)
	}

	return c.JSON(
		http.StatusOK,
		model.BaseResponse{
			Message: "success",
			Data:    model.GroupByDate(events),
		},
	)
}

func (a *EventAPI) createEvent(c echo.Context) error {

	ctx := c.Request().Context()

	user, ok := CurrentUser(c)
	if !ok {
		return unauthenticated(c)
	}

	var req model.EventUpsertRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(
			http.StatusBadRequest,
			model.BaseResponse{
				Message: err.Error(),
			},
		)
	}

	if err := req.Validate(); err != nil {
		return c.JSON(
			http.StatusBadRequest,
			model.BaseResponse{
				Message: err.Error(),
			},
		)
	}

	id, err := uuid.NewV7()
	if err != nil {
		return c.JSON(
			http.StatusInternalServerError,
			model.BaseResponse{
				Message: err.Error(),
			},
		)
	}

	event := model.Event{
		ID:         id.String(),
		OwnerID:    user.ID,
		Title:      req.Title,
		Date:       req.Date,
		Type:       req.EventType(),
		Note:       req.Note,
		CreateDate: a.now(),
		UpdateDate: a.now(),
	}

	err = a.eventRepo.CreateEvent(ctx, event)
	if err != nil {
		return c.JSON(
			http.StatusInternalServerError,
			model.BaseResponse{
				Message: err.Error(),
			},
		)
	}

	return c.JSON(
		http.StatusOK,
		model.BaseResponse{
			Message: "success",
			Data:    event,
		},
	)
}

func (a *EventAPI) updateEvent(c echo.Context) error {

	ctx := c.Request().Context()

	user, ok := CurrentUser(c)
	if !ok {
		return unauthenticated(c)
	}

	var req model.EventUpsertRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(
			http.StatusBadRequest,
			model.BaseResponse{
				Message: err.Error(),
			},
		)
	}

	if err := req.Validate(); err != nil {
		return c.JSON(
			http.StatusBadRequest,
			model.BaseResponse{
				Message: err.Error(),
			},
		)
	}

	// Only the form-editable fields; id, owner and create_date stay as
	// written on creation.
	fields := map[string]any{
		"title": req.Title,
		"date":  req.Date,
		"type":  req.EventType(),
		"note":  req.Note,
	}

	err := a.eventRepo.UpdateEvent(ctx, user.ID, c.Param("id"), fields)
	if err != nil {
		return eventNotFoundOrError(c, err)
	}

	return c.JSON(
		http.StatusOK,
		model.BaseResponse{
			Message: "success",
		},
	)
}

func (a *EventAPI) deleteEvent(c echo.Context) error {

	ctx := c.Request().Context()

	user, ok := CurrentUser(c)
	if !ok {
		return unauthenticated(c)
	}

	err := a.eventRepo.DeleteEvent(ctx, user.ID, c.Param("id"))
	if err != nil {
		return eventNotFoundOrError(c, err)
	}

	return c.JSON(
		http.StatusOK,
		model.BaseResponse{
			Message: "success",
		},
	)
}

func (a *EventAPI) importEvents(c echo.Context) error {

	ctx := c.Request().Context()

	user, ok := CurrentUser(c)
	if !ok {
		return unauthenticated(c)
	}

	csvfile, err := c.FormFile("csvfile")
	if err != nil {
		return c.JSON(
			http.StatusBadRequest,
			model.BaseResponse{
				Message: err.Error(),
			},
		)
	}

	cf, err := csvfile.Open()
	if err != nil {
		return c.JSON(
			http.StatusBadRequest,
			model.BaseResponse{
				Message: err.Error(),
			},
		)
	}

	defer cf.Close()

	var rows []model.EventCSV
	err = gocsv.Unmarshal(cf, &rows)
	if err != nil {
		return c.JSON(
			http.StatusBadRequest,
			model.BaseResponse{
				Message: err.Error(),
			},
		)
	}

	godump.Dump(rows)

	result := model.ImportResult{}

	for _, row := range rows {

		req := row.Request()
		if req.Validate() != nil {
			// Lenient import: bad rows are counted, not fatal.
			result.Skipped++
			continue
		}

		id, err := uuid.NewV7()
		if err != nil {
			return c.JSON(
				http.StatusInternalServerError,
				model.BaseResponse{
					Message: err.Error(),
				},
			)
		}

		event := model.Event{
			ID:         id.String(),
			OwnerID:    user.ID,
			Title:      req.Title,
			Date:       req.Date,
			Type:       req.EventType(),
			Note:       req.Note,
			CreateDate: a.now(),
			UpdateDate: a.now(),
		}

		err = a.eventRepo.CreateEvent(ctx, event)
		if err != nil {
			return c.JSON(
				http.StatusInternalServerError,
				model.BaseResponse{
					Message: err.Error(),
				},
			)
		}

		result.Imported++
	}

	return c.JSON(
		http.StatusOK,
		model.BaseResponse{
			Message: "success",
			Data:    result,
		},
	)
}

func (a *EventAPI) exportICS(c echo.Context) error {

	ctx := c.Request().Context()

	user, ok := CurrentUser(c)
	if !ok {
		return unauthenticated(c)
	}

	events, err := a.eventRepo.ListEvents(ctx, user.ID)
	if err != nil {
		return c.JSON(
			http.StatusInternalServerError,
			model.BaseResponse{
				Message: err.Error(),
			},
		)
	}

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//specialdays-backend//EN")

	for _, ev := range events {

		day, ok := model.ParseCalendarDate(ev.Date)
		if !ok {
			continue
		}

		vevent := cal.AddEvent(ev.ID)
		vevent.SetCreatedTime(ev.CreateDate)
		vevent.SetDtStampTime(ev.CreateDate)
		vevent.SetModifiedAt(ev.UpdateDate)
		vevent.SetSummary(ev.Title)
		vevent.SetAllDayStartAt(day)
		vevent.SetAllDayEndAt(day.AddDate(0, 0, 1))

		if ev.Note != "" {
			vevent.SetDescription(ev.Note)
		}
	}

	return c.Blob(
		http.StatusOK,
		"text/calendar; charset=utf-8",
		[]byte(cal.Serialize()),
	)
}

func unauthenticated(c echo.Context) error {
	return c.JSON(
		http.StatusUnauthorized,
		model.BaseResponse{
			Message: "not authenticated",
		},
	)
}

func eventNotFoundOrError(c echo.Context, err error) error {

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return c.JSON(
			http.StatusNotFound,
			model.BaseResponse{
				Message: "event not found",
			},
		)
	}

	return c.JSON(
		http.StatusInternalServerError,
		model.BaseResponse{
			Message: err.Error(),
		},
	)
}
