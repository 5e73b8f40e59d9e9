package http

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/rs/zerolog"

	"loan-calculator/domain"
	"loan-calculator/service"
)

// LoanCalculator is the part of service.LoanService the handler needs.
type LoanCalculator interface {
	CalculateLoan(ctx context.Context, input domain.LoanInput) (domain.LoanSchedule, error)
}

type LoanHandler struct {
	service LoanCalculator
}

func NewLoanHandler(service LoanCalculator) *LoanHandler {
	return &LoanHandler{service: service}
}

// CalculateLoan serves GET /calculate-loan?amount=&rate=&years=.
func (h *LoanHandler) CalculateLoan(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	input, err := parseLoanQuery(r.URL.Query())
	if err != nil {
		logger.Debug().Err(err).Msg("rejected loan query")
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.service.CalculateLoan(ctx, input)
	if errors.Is(err, service.ErrInvalidInput) {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}
	if err != nil {
		logger.Error().Err(err).Msg("failed to calculate loan")
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, r, http.StatusOK, result)
}

func parseLoanQuery(q url.Values) (domain.LoanInput, error) {
	amount, err := floatParam(q, "amount")
	if err != nil {
		return domain.LoanInput{}, err
	}
	rate, err := floatParam(q, "rate")
	if err != nil {
		return domain.LoanInput{}, err
	}

	raw := q.Get("years")
	if raw == "" {
		return domain.LoanInput{}, errors.New("missing query parameter 'years'")
	}
	years, err := strconv.Atoi(raw)
	if err != nil {
		return domain.LoanInput{}, fmt.Errorf("query parameter 'years' must be an integer, got %q", raw)
	}

	return domain.LoanInput{Amount: amount, Rate: rate, Years: years}, nil
}

func floatParam(q url.Values, name string) (float64, error) {
	raw := q.Get(name)
	if raw == "" {
		return 0, fmt.Errorf("missing query parameter '%s'", name)
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("query parameter '%s' must be a number, got %q", name, raw)
	}
	return v, nil
}
