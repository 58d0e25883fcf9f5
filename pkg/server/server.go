package server

import (
	"encoding/json"
	"errors"
	"time"

	"syjonctl/pkg/syjon"

	"github.com/AubSs/fasthttplogger"
	"github.com/fasthttp/router"
	"github.com/valyala/fasthttp"
)

// Activity is the JSON shape of a decoded timetable entry
type Activity struct {
	Type          string          `json:"type"`
	Group         int             `json:"group"`
	Subject       string          `json:"subject"`
	Teachers      []string        `json:"teachers"`
	Room          string          `json:"room"`
	Day           string          `json:"day"`
	Start         syjon.TimeOfDay `json:"start"`
	End           syjon.TimeOfDay `json:"end"`
	LengthMinutes int             `json:"length_minutes"`
}

// NewHandler returns the request handler with access logging and optional compression.
func NewHandler(compress bool) fasthttp.RequestHandler {
	handler := newRouter().Handler
	if compress {
		handler = fasthttp.CompressHandler(handler)
	}
	return fasthttplogger.Combined(handler)
}

// ListenAndServe serves the timetable endpoints on addr until the listener fails.
func ListenAndServe(addr string, compress bool) error {
	return fasthttp.ListenAndServe(addr, NewHandler(compress))
}

func newRouter() *router.Router {
	r := router.New()
	r.GET("/health", healthEndpoint)
	r.POST("/groups", groupsEndpoint)
	r.POST("/schedule", scheduleEndpoint)
	return r
}

func healthEndpoint(ctx *fasthttp.RequestCtx) {
	ctx.SetContentType("text/plain; charset=utf8")
	ctx.SetBodyString("ok")
}

// groupsEndpoint takes a timetable page as the request body and lists the groups on it.
func groupsEndpoint(ctx *fasthttp.RequestCtx) {
	groups, err := syjon.DiscoverGroups(string(ctx.PostBody()))
	if err != nil {
		decodeError(ctx, err)
		return
	}

	writeJSON(ctx, groups)
}

// scheduleEndpoint takes a timetable page as the request body and the group selection as
// query arguments, e.g. /schedule?Laboratorium=2&Wykład=1.
func scheduleEndpoint(ctx *fasthttp.RequestCtx) {
	var pairs []string
	ctx.QueryArgs().VisitAll(func(key, value []byte) {
		pairs = append(pairs, string(key)+"="+string(value))
	})

	sel, err := syjon.ParseSelection(pairs)
	if err != nil {
		ctx.Error(err.Error(), fasthttp.StatusBadRequest)
		return
	}

	activities, err := syjon.BuildSchedule(string(ctx.PostBody()), sel)
	if err != nil {
		decodeError(ctx, err)
		return
	}

	resp := make([]Activity, 0, len(activities))
	for _, a := range activities {
		resp = append(resp, Activity{
			Type:          a.Group.Type,
			Group:         a.Group.Number,
			Subject:       a.SubjectName,
			Teachers:      a.TeacherNames,
			Room:          a.Room,
			Day:           a.DayOfWeek.String(),
			Start:         a.Time,
			End:           a.End(),
			LengthMinutes: int(a.Length.Round(time.Minute).Minutes()),
		})
	}

	writeJSON(ctx, resp)
}

// decodeError reports pages the decoder rejected as 422 and anything else as 500.
func decodeError(ctx *fasthttp.RequestCtx, err error) {
	if errors.Is(err, syjon.ErrStructureMismatch) || errors.Is(err, syjon.ErrParse) {
		ctx.Error(err.Error(), fasthttp.StatusUnprocessableEntity)
		return
	}
	ctx.Error(err.Error(), fasthttp.StatusInternalServerError)
}

func writeJSON(ctx *fasthttp.RequestCtx, v any) {
	body, err := json.Marshal(v)
	if err != nil {
		ctx.Error(err.Error(), fasthttp.StatusInternalServerError)
		return
	}

	ctx.SetContentType("application/json")
	ctx.SetBody(body)
}
