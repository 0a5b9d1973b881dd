package httpx

import (
	"context"
	"net/http"
	"strconv"

	"github.com/shoetrack/shoetrack-ui/internal/chart"
	"github.com/shoetrack/shoetrack-ui/internal/domain/model"
	"github.com/shoetrack/shoetrack-ui/internal/service"
)

// ChartsPage renders the filter controls, defaulting every filter to all.
// A chart already built in this session is shown again.
func (h *UIHandlers) ChartsPage(w http.ResponseWriter, r *http.Request) {
	sess := session(r)
	h.Page(w, r, PageSpec{
		Meta: PageMeta{Title: "Create Graphs", CurrentPage: PageCharts},
		Fetch: func(ctx context.Context, data map[string]any) error {
			filter := model.ChartFilter{}
			filter.Normalize()
			data["Filter"] = filter
			data["PNGFilename"] = chart.PNGFilename
			if handle, ok := h.Charts.Current(sess.ID); ok {
				data["Chart"] = handle
				data["Filter"] = handle.Filter
			}
			summary, err := h.Charts.Options(ctx, sess.Credentials())
			data["Summary"] = summary
			return err
		},
	})
}

// ChartData rebuilds the session's chart from the submitted filters and
// swaps in the chart panel.
func (h *UIHandlers) ChartData(w http.ResponseWriter, r *http.Request) {
	sess := session(r)
	q := r.URL.Query()
	filter := model.ChartFilter{
		ModelID:   q.Get("model_id"),
		Operator:  q.Get("operator"),
		StartDate: q.Get("start_date"),
		EndDate:   q.Get("end_date"),
	}
	data := map[string]any{"PNGFilename": chart.PNGFilename}

	handle, err := h.Charts.Update(r.Context(), sess.ID, sess.Credentials(), filter)
	switch {
	case err == nil:
		data["Chart"] = handle
	case service.IsNoData(err):
		data["NoData"] = chart.NoDataText
	default:
		if h.expireIfStale(w, r, err) {
			return
		}
		h.logger().WarnContext(r.Context(), "chart update failed", "error", err)
		data["ErrorMessage"] = UserMessage(err)
	}
	h.renderFragment(w, r, "chart-panel", data)
}

// ChartDownload serves the session's current chart as a PNG attachment.
func (h *UIHandlers) ChartDownload(w http.ResponseWriter, r *http.Request) {
	handle, ok := h.Charts.Current(session(r).ID)
	if !ok || handle.Released() || len(handle.Image.PNG) == 0 {
		h.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Content-Disposition", `attachment; filename="`+chart.PNGFilename+`"`)
	w.Header().Set("Content-Length", strconv.Itoa(len(handle.Image.PNG)))
	w.Header().Set("Cache-Control", "no-store")
	_, _ = w.Write(handle.Image.PNG)
}
