package summary

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"resumen-backend/internal/domain/entity"
	"resumen-backend/internal/handler/http/respond"
	"resumen-backend/internal/observability/logging"
	sumUC "resumen-backend/internal/usecase/summary"
)

// Summarizer is the use case behind POST /resumir.
type Summarizer interface {
	Summarize(ctx context.Context, text string) (*sumUC.Result, error)
}

// ResumirHandler summarizes the text posted in {"texto": ...}.
type ResumirHandler struct{ Svc Summarizer }

// ServeHTTP テキスト要約
// @Summary      Resumir texto
// @Description  Devuelve el texto tal cual si tiene 400 palabras o menos; si no, un resumen y sus ideas principales
// @Tags         resumen
// @Accept       json
// @Produce      json
// @Param        body body Request true "Texto a resumir"
// @Success      200 {object} Response
// @Failure      400 {object} respond.ErrorResponse "Texto vacío, demasiado corto, demasiado largo o JSON inválido"
// @Failure      413 {object} respond.ErrorResponse "Cuerpo demasiado grande"
// @Failure      500 {object} respond.ErrorResponse "Sin resumen válido o error inesperado"
// @Router       /resumir [post]
func (h ResumirHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			respond.Message(w, http.StatusRequestEntityTooLarge, MsgBodyTooLarge)
			return
		}
		logging.FromContext(r.Context()).Debug("rejected malformed body", slog.String("error", err.Error()))
		respond.Message(w, http.StatusBadRequest, MsgInvalidJSON)
		return
	}

	res, err := h.Svc.Summarize(r.Context(), req.Texto)
	if err != nil {
		writeError(r.Context(), w, err)
		return
	}

	ideas := res.Ideas
	if ideas == nil {
		ideas = []string{}
	}
	respond.JSON(w, http.StatusOK, Response{Resumen: res.Summary, IdeasPrincipales: ideas})
}

// writeError maps use-case errors to status codes:
// validation 400, no usable model output 500, anything else 500 with detail.
func writeError(ctx context.Context, w http.ResponseWriter, err error) {
	var verr *entity.ValidationError
	if errors.As(err, &verr) {
		respond.Message(w, http.StatusBadRequest, verr.Message)
		return
	}

	if errors.Is(err, sumUC.ErrNoValidSummary) {
		logging.FromContext(ctx).Warn("no valid summary generated")
		respond.Message(w, http.StatusInternalServerError, sumUC.MsgNoValidSummary)
		return
	}

	var uerr *sumUC.UnexpectedError
	if !errors.As(err, &uerr) {
		uerr = &sumUC.UnexpectedError{Err: err}
	}
	respond.AppErr(ctx, w, http.StatusInternalServerError,
		respond.NewAppError(http.StatusInternalServerError, uerr.Error(), uerr.Err))
}
