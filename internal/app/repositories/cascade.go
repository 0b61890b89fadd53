package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/yigit/registrar/internal/db"
	"github.com/yigit/registrar/internal/pkg/apperrors"
	"github.com/yigit/registrar/internal/pkg/logger"
)

// Cascade describes a parent table whose deletion detaches, rather than deletes, the
// child rows referencing it.
type Cascade struct {
	Parent      string
	ParentTable string
	ParentKey   string
	ChildTable  string
	ChildFK     string
	NotFound    error
}

var (
	// CollegeCascade detaches programs from a deleted college.
	CollegeCascade = Cascade{
		Parent:      "college",
		ParentTable: "colleges",
		ParentKey:   "college_code",
		ChildTable:  "programs",
		ChildFK:     "college_code",
		NotFound:    apperrors.ErrCollegeNotFound,
	}

	// ProgramCascade detaches students from a deleted program.
	ProgramCascade = Cascade{
		Parent:      "program",
		ParentTable: "programs",
		ParentKey:   "program_code",
		ChildTable:  "students",
		ChildFK:     "program_code",
		NotFound:    apperrors.ErrProgramNotFound,
	}
)

// CascadeDelete deletes the parent identified by key (case-insensitive) after setting the
// foreign key of every child referencing it to NULL. The parent row is locked first;
// lock, detach and delete share one transaction, so a failure leaves every child
// attached. It returns the number of detached children.
func CascadeDelete(ctx context.Context, pool db.TxBeginner, c Cascade, key string) (int64, error) {
	sb := newStatementBuilder()
	var detached int64

	err := db.WithTransaction(ctx, pool, func(ctx context.Context, tx pgx.Tx) error {
		canonical, err := lockRow(ctx, tx, sb, c.ParentTable, c.ParentKey, key, c.NotFound)
		if err != nil {
			return err
		}

		detachSQL, detachArgs, err := sb.Update(c.ChildTable).
			Set(c.ChildFK, squirrel.Expr("NULL")).
			Where(keyEquals(c.ChildFK, canonical)).
			ToSql()
		if err != nil {
			return fmt.Errorf("failed to build %s detach query: %w", c.Parent, err)
		}

		tag, err := tx.Exec(ctx, detachSQL, detachArgs...)
		if err != nil {
			return fmt.Errorf("error detaching %s from %s: %w", c.ChildTable, c.Parent, err)
		}
		detached = tag.RowsAffected()

		deleteSQL, deleteArgs, err := sb.Delete(c.ParentTable).
			Where(keyEquals(c.ParentKey, canonical)).
			ToSql()
		if err != nil {
			return fmt.Errorf("failed to build %s delete query: %w", c.Parent, err)
		}

		if _, err := tx.Exec(ctx, deleteSQL, deleteArgs...); err != nil {
			return fmt.Errorf("error deleting %s: %w", c.Parent, err)
		}
		return nil
	})
	if err != nil {
		if !errors.Is(err, apperrors.ErrResourceNotFound) {
			logger.Error().Err(err).Str("parent", c.Parent).Str("key", key).Msg("Cascade delete failed")
		}
		return 0, err
	}

	logger.Info().Str("parent", c.Parent).Str("key", key).Int64("detached", detached).Msg("Cascade delete committed")
	return detached, nil
}
