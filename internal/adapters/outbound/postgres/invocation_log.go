package postgres

import (
	"context"
	"database/sql"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/cleitonmarx/symbiont-ai-assist/internal/domain"
	"github.com/cleitonmarx/symbiont-ai-assist/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

var invocationFields = []string{
	"id",
	"session_id",
	"kind",
	"config_key",
	"input_chars",
	"output_chars",
	"outcome",
	"error_name",
	"duration_ms",
	"created_at",
}

// InvocationLogRepository persists the invocation audit trail in Postgres.
type InvocationLogRepository struct {
	sb squirrel.StatementBuilderType
}

// NewInvocationLogRepository creates a new InvocationLogRepository.
func NewInvocationLogRepository(br squirrel.BaseRunner) InvocationLogRepository {
	return InvocationLogRepository{
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar).RunWith(br),
	}
}

// RecordInvocation stores one invocation record.
func (r InvocationLogRepository) RecordInvocation(ctx context.Context, record domain.InvocationRecord) error {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.String("kind", record.Kind.String()),
		attribute.String("outcome", string(record.Outcome)),
	))
	defer span.End()

	_, err := r.sb.
		Insert("capability_invocations").
		Columns(invocationFields...).
		Values(
			record.ID,
			record.SessionID,
			record.Kind,
			record.ConfigKey,
			record.InputChars,
			record.OutputChars,
			record.Outcome,
			record.ErrorName,
			record.Duration.Milliseconds(),
			record.CreatedAt,
		).
		ExecContext(spanCtx)
	if telemetry.RecordErrorAndStatus(span, err) {
		return err
	}
	return nil
}

// ListInvocations returns a page of records ordered from the newest and
// whether older records exist.
func (r InvocationLogRepository) ListInvocations(ctx context.Context, page, pageSize int) ([]domain.InvocationRecord, bool, error) {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.Int("page", page),
		attribute.Int("page_size", pageSize),
	))
	defer span.End()

	rows, err := r.sb.
		Select(invocationFields...).
		From("capability_invocations").
		OrderBy("created_at DESC", "id").
		Limit(uint64(pageSize + 1)). // fetch one extra to determine if there's more
		Offset(uint64((page - 1) * pageSize)).
		QueryContext(spanCtx)
	if telemetry.RecordErrorAndStatus(span, err) {
		return nil, false, err
	}
	defer rows.Close() //nolint:errcheck

	records := []domain.InvocationRecord{}
	for rows.Next() {
		var (
			rec        domain.InvocationRecord
			durationMS int64
		)
		if err := rows.Scan(
			&rec.ID,
			&rec.SessionID,
			&rec.Kind,
			&rec.ConfigKey,
			&rec.InputChars,
			&rec.OutputChars,
			&rec.Outcome,
			&rec.ErrorName,
			&durationMS,
			&rec.CreatedAt,
		); telemetry.RecordErrorAndStatus(span, err) {
			return nil, false, err
		}
		rec.Duration = time.Duration(durationMS) * time.Millisecond
		records = append(records, rec)
	}
	if err := rows.Err(); telemetry.RecordErrorAndStatus(span, err) {
		return nil, false, err
	}

	hasMore := len(records) > pageSize
	if hasMore {
		records = records[:pageSize]
	}
	return records, hasMore, nil
}

// InitInvocationLogRepository is a Symbiont initializer for InvocationLogRepository.
type InitInvocationLogRepository struct {
	DB *sql.DB `resolve:""`
}

// Initialize registers the InvocationLogRepository in the dependency container.
func (r InitInvocationLogRepository) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[domain.InvocationLogRepository](NewInvocationLogRepository(r.DB))
	return ctx, nil
}
