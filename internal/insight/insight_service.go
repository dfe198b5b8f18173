package insight

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const cacheTTL = time.Hour

//go:generate mockgen -source=insight_service.go -destination=mock/insight_service_mock.go -package=mock
type Service interface {
	GetAttritionRisk(ctx context.Context, companyID string) (AttritionRiskResponse, error)
	GetSalesForecast(ctx context.Context, companyID string) (SalesForecastResponse, error)
}

type service struct {
	repo      Repository
	generator Generator
	rdb       *redis.Client
	group     singleflight.Group
	logger    *zap.Logger
}

func NewService(repo Repository, generator Generator, rdb *redis.Client, logger ...*zap.Logger) Service {
	l := zap.L().Named("insight.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("insight.service")
	}
	return &service{
		repo:      repo,
		generator: generator,
		rdb:       rdb,
		logger:    l,
	}
}

func attritionPrompt(snap CompanySnapshot) string {
	return fmt.Sprintf(`You are an HR analyst. Given these company metrics:
- active employees: %d
- terminated employees: %d
- pending leave applications: %d
- late arrivals in the last 30 days: %d

Estimate the attrition risk for the next quarter. Respond with JSON only, no
prose, in this exact shape: {"score": <0-100 integer>, "reasons": ["..."]}`,
		snap.ActiveEmployees,
		snap.TerminatedEmployees,
		snap.PendingLeaves,
		snap.LateArrivals30d,
	)
}

func forecastPrompt(snap CompanySnapshot) string {
	return fmt.Sprintf(`You are a sales analyst. Over the last 90 days the team
targeted %.2f and achieved %.2f with %d active employees.

Forecast the next quarter's sales trajectory. Respond with JSON only, no
prose, in this exact shape: {"forecast": "...", "suggestions": ["..."]}`,
		snap.SalesTarget90d,
		snap.SalesAchieved90d,
		snap.ActiveEmployees,
	)
}

// stripJSONFence removes a leading ```json / trailing ``` wrapper the model
// tends to add despite instructions.
func stripJSONFence(s string) string {
	s = strings.TrimSpace(s)
	if after, found := strings.CutPrefix(s, "```json"); found {
		s = after
	} else if after, found := strings.CutPrefix(s, "```"); found {
		s = after
	}
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}

func fallbackAttrition() AttritionRiskResponse {
	return AttritionRiskResponse{
		Score:   50,
		Reasons: []string{"Insufficient signal, showing a neutral baseline"},
	}
}

func fallbackForecast() SalesForecastResponse {
	return SalesForecastResponse{
		Forecast:    "Steady",
		Suggestions: []string{"Keep current targets and review again next month"},
	}
}

// GetAttritionRisk never fails: any model or parsing problem degrades to the
// neutral fallback payload.
func (s *service) GetAttritionRisk(ctx context.Context, companyID string) (AttritionRiskResponse, error) {
	cacheKey := "insight:attrition:" + companyID

	if cached, ok := s.fromCache(ctx, cacheKey); ok {
		var resp AttritionRiskResponse
		if err := json.Unmarshal(cached, &resp); err == nil {
			return resp, nil
		}
	}

	v, _, _ := s.group.Do(cacheKey, func() (any, error) {
		snap, err := s.repo.Snapshot(ctx, companyID)
		if err != nil {
			s.logger.Warn("attrition snapshot failed, using fallback", zap.Error(err))
			return fallbackAttrition(), nil
		}

		raw, err := s.generator.Generate(ctx, attritionPrompt(snap))
		if err != nil {
			s.logger.Warn("attrition generation failed, using fallback", zap.Error(err))
			return fallbackAttrition(), nil
		}

		var resp AttritionRiskResponse
		if err := json.Unmarshal([]byte(stripJSONFence(raw)), &resp); err != nil {
			s.logger.Warn("attrition response unparseable, using fallback", zap.Error(err))
			return fallbackAttrition(), nil
		}

		s.toCache(ctx, cacheKey, resp)
		return resp, nil
	})

	return v.(AttritionRiskResponse), nil
}

// GetSalesForecast mirrors GetAttritionRisk's degradation behavior.
func (s *service) GetSalesForecast(ctx context.Context, companyID string) (SalesForecastResponse, error) {
	cacheKey := "insight:forecast:" + companyID

	if cached, ok := s.fromCache(ctx, cacheKey); ok {
		var resp SalesForecastResponse
		if err := json.Unmarshal(cached, &resp); err == nil {
			return resp, nil
		}
	}

	v, _, _ := s.group.Do(cacheKey, func() (any, error) {
		snap, err := s.repo.Snapshot(ctx, companyID)
		if err != nil {
			s.logger.Warn("forecast snapshot failed, using fallback", zap.Error(err))
			return fallbackForecast(), nil
		}

		raw, err := s.generator.Generate(ctx, forecastPrompt(snap))
		if err != nil {
			s.logger.Warn("forecast generation failed, using fallback", zap.Error(err))
			return fallbackForecast(), nil
		}

		var resp SalesForecastResponse
		if err := json.Unmarshal([]byte(stripJSONFence(raw)), &resp); err != nil {
			s.logger.Warn("forecast response unparseable, using fallback", zap.Error(err))
			return fallbackForecast(), nil
		}

		s.toCache(ctx, cacheKey, resp)
		return resp, nil
	})

	return v.(SalesForecastResponse), nil
}

func (s *service) fromCache(ctx context.Context, key string) ([]byte, bool) {
	if s.rdb == nil {
		return nil, false
	}
	val, err := s.rdb.Get(ctx, key).Bytes()
	if err != nil {
		return nil, false
	}
	return val, true
}

func (s *service) toCache(ctx context.Context, key string, v any) {
	if s.rdb == nil {
		return
	}
	payload, err := json.Marshal(v)
	if err != nil {
		return
	}
	if err := s.rdb.Set(ctx, key, payload, cacheTTL).Err(); err != nil {
		s.logger.Warn("insight cache write failed", zap.String("key", key), zap.Error(err))
	}
}
