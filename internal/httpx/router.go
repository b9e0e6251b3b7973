package httpx

import (
	"encoding/json"
	"log/slog"
	"mime"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/adlens/campaign-brief-go/internal/analyze"
	"github.com/adlens/campaign-brief-go/internal/brief"
	"github.com/adlens/campaign-brief-go/internal/config"
	"github.com/adlens/campaign-brief-go/internal/ingest"
	"github.com/adlens/campaign-brief-go/internal/metrics"
	"github.com/adlens/campaign-brief-go/internal/models"
	"github.com/adlens/campaign-brief-go/internal/utils"
)

type briefResponse struct {
	Analysis  *models.Analysis `json:"analysis"`
	Brief     string           `json:"brief"`
	Generated bool             `json:"generated"`
}

// NewRouter wires the transport. gen may be nil: /brief then degrades to the
// bare analysis instead of failing.
func NewRouter(log *slog.Logger, cfg config.Config, gen brief.Generator) http.Handler {
	mux := chi.NewRouter()
	mux.Use(utils.RequestID)
	mux.Use(utils.Logger(log))

	mux.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200); w.Write([]byte("ok")) })
	mux.Get("/readyz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200); w.Write([]byte("ready")) })
	mux.Get("/metrics", func(w http.ResponseWriter, r *http.Request) { metrics.Handler().ServeHTTP(w, r) })

	mux.Post("/analyze", func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		defer func() { metrics.RequestDuration.WithLabelValues("analyze").Observe(time.Since(start).Seconds()) }()

		a, ok := computeFromRequest(w, r, cfg, "analyze")
		if !ok {
			return
		}
		metrics.Requests.WithLabelValues("analyze", "ok").Inc()
		writeJSON(w, a)
	})

	mux.Post("/brief", func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		defer func() { metrics.RequestDuration.WithLabelValues("brief").Observe(time.Since(start).Seconds()) }()

		a, ok := computeFromRequest(w, r, cfg, "brief")
		if !ok {
			return
		}
		resp := briefResponse{Analysis: a}
		if gen != nil {
			prompt := brief.BuildPrompt(a)
			gStart := time.Now()
			text, err := gen.Generate(r.Context(), prompt)
			metrics.GeneratorDuration.Observe(time.Since(gStart).Seconds())
			if err != nil {
				metrics.Requests.WithLabelValues("brief", "generator_error").Inc()
				log.Error("brief generation failed", slog.String("err", err.Error()), slog.String("rid", utils.RID(r.Context())))
				http.Error(w, "brief generation failed", 502)
				return
			}
			resp.Brief = text
			resp.Generated = true
		}
		metrics.Requests.WithLabelValues("brief", "ok").Inc()
		writeJSON(w, resp)
	})

	return mux
}

// computeFromRequest lee el batch (CSV o JSON), corre el pipeline y maneja
// los errores HTTP. Devuelve ok=false si ya respondió.
func computeFromRequest(w http.ResponseWriter, r *http.Request, cfg config.Config, endpoint string) (*models.Analysis, bool) {
	batch, err := readBatch(r, cfg.MaxUploadBytes)
	if err != nil {
		metrics.Requests.WithLabelValues(endpoint, "bad_request").Inc()
		http.Error(w, err.Error(), 400)
		return nil, false
	}
	a, err := analyze.Compute(batch)
	if err != nil {
		metrics.Requests.WithLabelValues(endpoint, "bad_request").Inc()
		http.Error(w, err.Error(), 400)
		return nil, false
	}
	metrics.RowsProcessed.Add(float64(len(a.Records)))
	metrics.ABTestsRun.Add(float64(len(a.ABTests)))
	for _, t := range a.ABTests {
		if t.Significant {
			metrics.SignificantResults.Inc()
		}
	}
	return a, true
}

func readBatch(r *http.Request, maxBytes int64) ([]models.RawRecord, error) {
	r.Body = http.MaxBytesReader(nil, r.Body, maxBytes)
	defer r.Body.Close()

	ct, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	switch ct {
	case "application/json":
		var batch []models.RawRecord
		if err := json.NewDecoder(r.Body).Decode(&batch); err != nil {
			return nil, err
		}
		return batch, nil
	case "multipart/form-data":
		if err := r.ParseMultipartForm(maxBytes); err != nil {
			return nil, err
		}
		f, _, err := r.FormFile("file")
		if err != nil {
			return nil, err
		}
		defer f.Close()
		return ingest.ParseCSV(f)
	default:
		// text/csv o cuerpo crudo
		return ingest.ParseCSV(r.Body)
	}
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	enc := json.NewEncoder(w)
	enc.SetIndent("", " ")
	enc.Encode(v)
}
