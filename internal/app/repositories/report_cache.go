package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/redis/go-redis/v9"

	"github.com/utpgestion/academico/internal/app/models"
	"github.com/utpgestion/academico/internal/pkg/apperrors"
)

const reportKeyPrefix = "report:"

// ReportCache holds materialized integral reports in the key-value store.
// Entries carry no TTL: they live until a mutation of the student or its
// relations invalidates them. This is deliberately a different policy from
// the session table, which is TTL-based; the two must not share a cache
// abstraction because their correctness contracts differ.
type ReportCache struct {
	client *redis.Client
}

// NewReportCache creates a new report cache
func NewReportCache(client *redis.Client) *ReportCache {
	return &ReportCache{client: client}
}

// ReportKey builds the cache key for a student's integral report.
func ReportKey(studentID int32) string {
	return reportKeyPrefix + strconv.FormatInt(int64(studentID), 10)
}

// Get returns the cached report for a student, or ErrCacheMiss.
func (c *ReportCache) Get(ctx context.Context, studentID int32) (*models.IntegralReport, error) {
	data, err := c.client.Get(ctx, ReportKey(studentID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, apperrors.ErrCacheMiss
		}
		return nil, err
	}

	var report models.IntegralReport
	if err := json.Unmarshal(data, &report); err != nil {
		return nil, fmt.Errorf("error decoding cached report: %w", err)
	}

	return &report, nil
}

// Set stores a report under the student's key with no expiry.
func (c *ReportCache) Set(ctx context.Context, report *models.IntegralReport) error {
	data, err := json.Marshal(report)
	if err != nil {
		return fmt.Errorf("error encoding report: %w", err)
	}

	return c.client.Set(ctx, ReportKey(report.Student.ID), data, 0).Err()
}

// Invalidate drops the report key unconditionally; deleting an absent key is
// a no-op. Mutation paths call this before acknowledging success so no reader
// can observe a stale report after the mutation commits.
func (c *ReportCache) Invalidate(ctx context.Context, studentID int32) error {
	return c.client.Del(ctx, ReportKey(studentID)).Err()
}
