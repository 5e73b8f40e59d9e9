package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/rs/zerolog"

	"loan-calculator/domain"
	"loan-calculator/repository"
)

// ErrInvalidInput is wrapped by every validation failure.
var ErrInvalidInput = errors.New("invalid loan input")

type LoanService struct {
	cache repository.CacheRepository
	ttl   time.Duration
}

// NewLoanService creates a LoanService. A nil cache disables caching.
func NewLoanService(cache repository.CacheRepository, ttl time.Duration) *LoanService {
	return &LoanService{cache: cache, ttl: ttl}
}

// CalculateLoan validates the input and returns its amortization schedule.
func (s *LoanService) CalculateLoan(
	ctx context.Context,
	input domain.LoanInput,
) (domain.LoanSchedule, error) {
	if err := Validate(input); err != nil {
		return domain.LoanSchedule{}, err
	}

	logger := zerolog.Ctx(ctx)
	key := CacheKey(input)

	if schedule, ok := s.lookup(ctx, key); ok {
		logger.Debug().Str("key", key).Msg("schedule served from cache")
		return schedule, nil
	}

	schedule := Amortize(input.Amount, input.Rate, input.Years)

	// Not critical if it fails.
	if err := s.store(ctx, key, schedule); err != nil {
		logger.Warn().Err(err).Str("key", key).Msg("failed to cache loan schedule")
	}

	return schedule, nil
}

// Validate rejects inputs the calculator cannot turn into a finite schedule.
func Validate(input domain.LoanInput) error {
	if math.IsNaN(input.Amount) || math.IsInf(input.Amount, 0) || input.Amount <= 0 {
		return fmt.Errorf("%w: amount must be greater than zero", ErrInvalidInput)
	}
	if input.Amount > MaxLoanAmount {
		return fmt.Errorf("%w: amount exceeds the maximum of %.2f", ErrInvalidInput, MaxLoanAmount)
	}
	if math.IsNaN(input.Rate) || math.IsInf(input.Rate, 0) || input.Rate < 0 {
		return fmt.Errorf("%w: rate must not be negative", ErrInvalidInput)
	}
	if input.Rate > MaxInterestRate {
		return fmt.Errorf("%w: rate exceeds the maximum of %.2f%%", ErrInvalidInput, MaxInterestRate)
	}
	if input.Years < MinTermYears {
		return fmt.Errorf("%w: years must be at least %d", ErrInvalidInput, MinTermYears)
	}
	if input.Years > MaxTermYears {
		return fmt.Errorf("%w: years exceeds the maximum of %d", ErrInvalidInput, MaxTermYears)
	}
	return nil
}

// CacheKey derives a stable key from the exact input values.
func CacheKey(input domain.LoanInput) string {
	canonical := strconv.FormatFloat(input.Amount, 'g', -1, 64) + "|" +
		strconv.FormatFloat(input.Rate, 'g', -1, 64) + "|" +
		strconv.Itoa(input.Years)
	return cacheKeyPrefix + strconv.FormatUint(xxhash.Sum64String(canonical), 16)
}

func (s *LoanService) lookup(ctx context.Context, key string) (domain.LoanSchedule, bool) {
	if s.cache == nil {
		return domain.LoanSchedule{}, false
	}

	logger := zerolog.Ctx(ctx)

	raw, ok, err := s.cache.Get(ctx, key)
	if err != nil {
		logger.Warn().Err(err).Str("key", key).Msg("cache lookup failed")
		return domain.LoanSchedule{}, false
	}
	if !ok {
		return domain.LoanSchedule{}, false
	}

	var schedule domain.LoanSchedule
	if err := json.Unmarshal([]byte(raw), &schedule); err != nil {
		logger.Warn().Err(err).Str("key", key).Msg("discarding undecodable cache entry")
		return domain.LoanSchedule{}, false
	}
	return schedule, true
}

func (s *LoanService) store(ctx context.Context, key string, schedule domain.LoanSchedule) error {
	if s.cache == nil {
		return nil
	}

	encoded, err := json.Marshal(schedule)
	if err != nil {
		return fmt.Errorf("encode schedule: %w", err)
	}
	return s.cache.Set(ctx, key, string(encoded), s.ttl)
}
