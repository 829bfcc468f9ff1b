// Package api exposes the pipeline over HTTP. The surface is deliberately
// small: one prediction endpoint, a health check, and static serving of the
// generated artifacts.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"

	"github.com/MichonGoddijn231849/emotion-mvp/internal/domain/plan"
	"github.com/MichonGoddijn231849/emotion-mvp/internal/domain/segments"
	"github.com/MichonGoddijn231849/emotion-mvp/internal/types"
	"github.com/MichonGoddijn231849/emotion-mvp/internal/usecase"
)

// Runner is the part of the pipeline the handlers need.
type Runner interface {
	Run(ctx context.Context, req types.Request, feat plan.Features) (types.Summary, error)
}

const maxUploadBytes = 512 << 20 // uploaded media can be large

type Handlers struct {
	runner Runner
	outDir string
	log    *logrus.Logger
}

func NewHandlers(runner Runner, outDir string, log *logrus.Logger) *Handlers {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Handlers{runner: runner, outDir: outDir, log: log}
}

type predictResponse struct {
	Message  string        `json:"message"`
	Download downloadInfo  `json:"download"`
	Meta     types.Summary `json:"meta"`
}

type downloadInfo struct {
	Filename string `json:"filename"`
	Link     string `json:"link"`
}

// Predict runs one classification request. The source is either a `src` form
// value (raw text, local path or URL) or an uploaded `file`; the plan comes
// from the X-Plan header and defaults to basic.
func (h *Handlers) Predict(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		respondError(w, http.StatusBadRequest, "invalid multipart form")
		return
	}

	p, err := plan.Parse(r.Header.Get("X-Plan"))
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	src := r.FormValue("src")
	startTime := r.FormValue("start_time")
	endTime := r.FormValue("end_time")

	if src == "" {
		saved, err := h.saveUpload(r)
		if err != nil {
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		src = saved
	}

	feat, err := plan.Enforce(p, windowSeconds(startTime, endTime))
	if err != nil {
		var quota *plan.QuotaError
		if errors.As(err, &quota) {
			respondError(w, http.StatusForbidden, quota.Error())
			return
		}
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	summary, err := h.runner.Run(r.Context(), types.Request{
		Source:     src,
		Classifier: r.FormValue("classifier"),
		StartTime:  startTime,
		EndTime:    endTime,
		Persist:    true,
	}, feat)
	if err != nil {
		var quota *plan.QuotaError
		switch {
		case errors.As(err, &quota):
			respondError(w, http.StatusForbidden, quota.Error())
		case errors.Is(err, usecase.ErrInputNotFound):
			respondError(w, http.StatusBadRequest, err.Error())
		default:
			h.log.WithError(err).Error("prediction failed")
			respondError(w, http.StatusInternalServerError, fmt.Sprintf("Pipeline error: %s", err))
		}
		return
	}

	name := filepath.Base(summary.CSV)
	respondJSON(w, http.StatusOK, predictResponse{
		Message:  "Emotion classification complete",
		Download: downloadInfo{Filename: name, Link: "/files/" + name},
		Meta:     summary,
	})
}

func (h *Handlers) Health(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// saveUpload stores the request's `file` part under the artifact directory so
// the pipeline can treat it like any local source.
func (h *Handlers) saveUpload(r *http.Request) (string, error) {
	file, header, err := r.FormFile("file")
	if err != nil {
		return "", errors.New("either src or file is required")
	}
	defer file.Close()

	name := segments.SafeStem(header.Filename) + filepath.Ext(header.Filename)
	dst := filepath.Join(h.outDir, name)
	out, err := os.Create(dst)
	if err != nil {
		return "", fmt.Errorf("store upload: %w", err)
	}
	defer out.Close()
	if _, err := io.Copy(out, file); err != nil {
		return "", fmt.Errorf("store upload: %w", err)
	}
	return dst, nil
}

func windowSeconds(from, to string) int {
	if from == "" || to == "" {
		return 0
	}
	start, err := segments.ParseClock(from)
	if err != nil {
		return 0
	}
	end, err := segments.ParseClock(to)
	if err != nil || end <= start {
		return 0
	}
	return int(end - start)
}

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}
