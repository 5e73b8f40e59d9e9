package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"loan-calculator/domain"
	"loan-calculator/service"
)

type mockLoanCalculator struct {
	mock.Mock
}

func (m *mockLoanCalculator) CalculateLoan(ctx context.Context, input domain.LoanInput) (domain.LoanSchedule, error) {
	args := m.Called(ctx, input)
	return args.Get(0).(domain.LoanSchedule), args.Error(1)
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var body errorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body.Error
}

func TestCalculateLoanHandler_OK(t *testing.T) {
	handler := NewLoanHandler(service.NewLoanService(nil, 0))

	req := httptest.NewRequest(http.MethodGet, "/calculate-loan?amount=100000&rate=5&years=30", nil)
	w := httptest.NewRecorder()

	handler.CalculateLoan(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

	var schedule domain.LoanSchedule
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &schedule))
	assert.Len(t, schedule.Data, 360)
	assert.InDelta(t, 536.82, schedule.MonthlyPayment, 0.005)
}

func TestCalculateLoanHandler_PassesParsedInput(t *testing.T) {
	calc := new(mockLoanCalculator)
	expected := domain.LoanInput{Amount: 2500.5, Rate: 0, Years: 2}
	calc.On("CalculateLoan", mock.Anything, expected).
		Return(domain.LoanSchedule{Data: []domain.MonthlyRecord{}}, nil)

	handler := NewLoanHandler(calc)
	req := httptest.NewRequest(http.MethodGet, "/calculate-loan?amount=2500.5&rate=0&years=2", nil)
	w := httptest.NewRecorder()

	handler.CalculateLoan(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	calc.AssertExpectations(t)
}

func TestCalculateLoanHandler_BadQuery(t *testing.T) {
	tests := []struct {
		name     string
		query    string
		expected string
	}{
		{name: "missing amount", query: "rate=5&years=10", expected: "missing query parameter 'amount'"},
		{name: "missing rate", query: "amount=1000&years=10", expected: "missing query parameter 'rate'"},
		{name: "missing years", query: "amount=1000&rate=5", expected: "missing query parameter 'years'"},
		{name: "non-numeric amount", query: "amount=lots&rate=5&years=10", expected: `query parameter 'amount' must be a number, got "lots"`},
		{name: "non-numeric rate", query: "amount=1000&rate=high&years=10", expected: `query parameter 'rate' must be a number, got "high"`},
		{name: "fractional years", query: "amount=1000&rate=5&years=2.5", expected: `query parameter 'years' must be an integer, got "2.5"`},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			calc := new(mockLoanCalculator)
			handler := NewLoanHandler(calc)

			req := httptest.NewRequest(http.MethodGet, "/calculate-loan?"+tc.query, nil)
			w := httptest.NewRecorder()
			handler.CalculateLoan(w, req)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Equal(t, tc.expected, decodeError(t, w))
			calc.AssertNotCalled(t, "CalculateLoan", mock.Anything, mock.Anything)
		})
	}
}

func TestCalculateLoanHandler_ValidationErrors(t *testing.T) {
	tests := []struct {
		name  string
		query string
	}{
		{name: "zero years", query: "amount=10000&rate=5&years=0"},
		{name: "negative years", query: "amount=10000&rate=5&years=-1"},
		{name: "zero amount", query: "amount=0&rate=5&years=10"},
		{name: "negative rate", query: "amount=10000&rate=-1&years=10"},
		{name: "NaN amount", query: "amount=NaN&rate=5&years=10"},
	}

	handler := NewLoanHandler(service.NewLoanService(nil, 0))

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/calculate-loan?"+tc.query, nil)
			w := httptest.NewRecorder()
			handler.CalculateLoan(w, req)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Contains(t, decodeError(t, w), service.ErrInvalidInput.Error())
		})
	}
}

func TestCalculateLoanHandler_InternalError(t *testing.T) {
	calc := new(mockLoanCalculator)
	calc.On("CalculateLoan", mock.Anything, mock.Anything).
		Return(domain.LoanSchedule{}, errors.New("boom"))

	handler := NewLoanHandler(calc)
	req := httptest.NewRequest(http.MethodGet, "/calculate-loan?amount=1&rate=1&years=1", nil)
	w := httptest.NewRecorder()

	handler.CalculateLoan(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "internal server error", decodeError(t, w))
}

func TestCalculateLoanHandler_WrappedValidationError(t *testing.T) {
	calc := new(mockLoanCalculator)
	calc.On("CalculateLoan", mock.Anything, mock.Anything).
		Return(domain.LoanSchedule{}, fmt.Errorf("outer: %w", service.ErrInvalidInput))

	handler := NewLoanHandler(calc)
	req := httptest.NewRequest(http.MethodGet, "/calculate-loan?amount=1&rate=1&years=1", nil)
	w := httptest.NewRecorder()

	handler.CalculateLoan(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCalculateLoanHandler_UnencodableResultIsJSONError(t *testing.T) {
	calc := new(mockLoanCalculator)
	calc.On("CalculateLoan", mock.Anything, mock.Anything).
		Return(domain.LoanSchedule{MonthlyPayment: math.Inf(1), Data: []domain.MonthlyRecord{}}, nil)

	handler := NewLoanHandler(calc)
	req := httptest.NewRequest(http.MethodGet, "/calculate-loan?amount=1&rate=1&years=1", nil)
	w := httptest.NewRecorder()

	handler.CalculateLoan(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"error":"internal server error"}`, w.Body.String())
}
