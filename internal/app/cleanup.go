package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/heartmarshall/fairplay-backend/internal/adapter/postgres"
	alertrepo "github.com/heartmarshall/fairplay-backend/internal/adapter/postgres/alert"
	certrepo "github.com/heartmarshall/fairplay-backend/internal/adapter/postgres/certificate"
	commentrepo "github.com/heartmarshall/fairplay-backend/internal/adapter/postgres/comment"
	forumrepo "github.com/heartmarshall/fairplay-backend/internal/adapter/postgres/forum"
	gamerepo "github.com/heartmarshall/fairplay-backend/internal/adapter/postgres/game"
	lessonrepo "github.com/heartmarshall/fairplay-backend/internal/adapter/postgres/lesson"
	lessonquizrepo "github.com/heartmarshall/fairplay-backend/internal/adapter/postgres/lessonquiz"
	messagerepo "github.com/heartmarshall/fairplay-backend/internal/adapter/postgres/message"
	modulequizrepo "github.com/heartmarshall/fairplay-backend/internal/adapter/postgres/modulequiz"
	postrepo "github.com/heartmarshall/fairplay-backend/internal/adapter/postgres/post"
	userrepo "github.com/heartmarshall/fairplay-backend/internal/adapter/postgres/user"
)

// Purger permanently removes rows soft-deleted before a cutoff.
type Purger interface {
	Table() string
	HardDeleteDeletedBefore(ctx context.Context, t time.Time) (int64, error)
}

// SoftDeletePurgers returns a purger per soft-deletable table, dependents
// before the rows they reference.
func SoftDeletePurgers(db postgres.Querier) []Purger {
	return []Purger{
		certrepo.New(db),
		lessonquizrepo.New(db),
		lessonrepo.New(db),
		modulequizrepo.New(db),
		gamerepo.New(db),
		messagerepo.New(db),
		alertrepo.New(db),
		commentrepo.New(db),
		postrepo.New(db),
		forumrepo.New(db),
		userrepo.New(db),
	}
}

// Purge runs every purger with the same cutoff. A failing table is logged
// and skipped; the joined errors are returned at the end.
func Purge(ctx context.Context, logger *slog.Logger, purgers []Purger, before time.Time) (int64, error) {
	var (
		total int64
		errs  []error
	)
	for _, p := range purgers {
		n, err := p.HardDeleteDeletedBefore(ctx, before)
		if err != nil {
			logger.ErrorContext(ctx, "purge failed",
				slog.String("table", p.Table()),
				slog.String("error", err.Error()),
			)
			errs = append(errs, fmt.Errorf("%s: %w", p.Table(), err))
			continue
		}
		total += n
		logger.InfoContext(ctx, "purged soft-deleted rows",
			slog.String("table", p.Table()),
			slog.Int64("deleted", n),
		)
	}
	return total, errors.Join(errs...)
}
