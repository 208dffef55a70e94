package repository

import (
	"context"
	"regexp"
	"testing"

	"inkwell/internal/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommentRepository_Create(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewCommentRepository(db)

	comment := &models.Comment{PostID: 1, UserID: 2, Content: "nice"}

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "comments"`)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
	mock.ExpectCommit()

	err := repo.Create(context.Background(), comment)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCommentRepository_ListByPost(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewCommentRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "comments" WHERE post_id = $1 ORDER BY created_at desc`)).
		WithArgs(7).
		WillReturnRows(sqlmock.NewRows([]string{"id", "post_id", "content"}).
			AddRow(3, 7, "newest").
			AddRow(2, 7, "older"))

	comments, err := repo.ListByPost(context.Background(), 7)
	require.NoError(t, err)
	require.Len(t, comments, 2)
	assert.Equal(t, "newest", comments[0].Content)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCommentRepository_CountByPostIDs(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewCommentRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT post_id, COUNT(*) as count FROM "comments" WHERE post_id IN ($1,$2,$3) GROUP BY "post_id"`)).
		WithArgs(1, 2, 3).
		WillReturnRows(sqlmock.NewRows([]string{"post_id", "count"}).
			AddRow(1, 4).
			AddRow(3, 1))

	counts, err := repo.CountByPostIDs(context.Background(), []uint{1, 2, 3})
	require.NoError(t, err)
	// posts with no comments are simply absent from the map
	assert.Equal(t, map[uint]int{1: 4, 3: 1}, counts)
	assert.NoError(t, mock.ExpectationsWereMet())
}
