package review_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/incluiaqui/incluiaqui-api/internal/audit"
	"github.com/incluiaqui/incluiaqui-api/internal/auth"
	domain "github.com/incluiaqui/incluiaqui-api/internal/domain/review"
	"github.com/incluiaqui/incluiaqui-api/internal/httperr"
	"github.com/incluiaqui/incluiaqui-api/internal/models"
	uc "github.com/incluiaqui/incluiaqui-api/internal/usecase/review"
)

type fakeReviewRepo struct {
	reviews        map[string]*models.Review
	establishments map[string]bool

	deleted []string
}

func newFakeReviewRepo() *fakeReviewRepo {
	return &fakeReviewRepo{
		reviews:        map[string]*models.Review{},
		establishments: map[string]bool{},
	}
}

func (f *fakeReviewRepo) Create(_ context.Context, r *models.Review) error {
	if r.ID == "" {
		r.ID = "rev-created"
	}
	f.reviews[r.ID] = r
	return nil
}

func (f *fakeReviewRepo) GetByID(_ context.Context, id string) (*models.Review, error) {
	r, ok := f.reviews[id]
	if !ok {
		return nil, httperr.NotFound("review_not_found", "Avaliação não encontrada.")
	}
	copied := *r
	return &copied, nil
}

func (f *fakeReviewRepo) FindByAuthorAndEstablishment(_ context.Context, authorID, establishmentID string) (*models.Review, error) {
	for _, r := range f.reviews {
		if r.AuthorID == authorID && r.EstablishmentID == establishmentID {
			return r, nil
		}
	}
	return nil, nil
}

func (f *fakeReviewRepo) Update(_ context.Context, r *models.Review) error {
	f.reviews[r.ID] = r
	return nil
}

func (f *fakeReviewRepo) Delete(_ context.Context, id string) error {
	delete(f.reviews, id)
	f.deleted = append(f.deleted, id)
	return nil
}

func (f *fakeReviewRepo) List(_ context.Context, filter domain.ListFilter, _, _ int) ([]models.Review, int64, error) {
	var items []models.Review
	for _, r := range f.reviews {
		if filter.EstablishmentID != "" && r.EstablishmentID != filter.EstablishmentID {
			continue
		}
		if filter.AuthorID != "" && r.AuthorID != filter.AuthorID {
			continue
		}
		items = append(items, *r)
	}
	return items, int64(len(items)), nil
}

func (f *fakeReviewRepo) RatingsFor(_ context.Context, establishmentID string) ([]int, error) {
	var ratings []int
	for _, r := range f.reviews {
		if r.EstablishmentID == establishmentID {
			ratings = append(ratings, r.Rating)
		}
	}
	return ratings, nil
}

func (f *fakeReviewRepo) EstablishmentExists(_ context.Context, establishmentID string) (bool, error) {
	return f.establishments[establishmentID], nil
}

var _ domain.Repository = (*fakeReviewRepo)(nil)

func testDispatcher() *audit.Dispatcher {
	return audit.NewDispatcher(audit.New(nil))
}

// --------- Create ---------

func TestCreateReview_Success(t *testing.T) {
	repo := newFakeReviewRepo()
	repo.establishments["est-1"] = true

	create := uc.NewCreateReview(repo, testDispatcher())

	author := auth.Principal{ID: "user-1", Role: models.RoleUser}
	comment := "Rampa na entrada e banheiro adaptado."

	created, err := create.Execute(context.Background(), author, uc.CreateReviewInput{
		EstablishmentID: "est-1",
		Rating:          5,
		Comment:         &comment,
	})

	require.NoError(t, err)
	assert.Equal(t, "user-1", created.AuthorID)
	assert.Equal(t, "est-1", created.EstablishmentID)
	assert.Equal(t, 5, created.Rating)
}

func TestCreateReview_UnknownEstablishment(t *testing.T) {
	repo := newFakeReviewRepo()
	create := uc.NewCreateReview(repo, testDispatcher())

	_, err := create.Execute(context.Background(), auth.Principal{ID: "user-1"}, uc.CreateReviewInput{
		EstablishmentID: "ghost",
		Rating:          4,
	})

	require.Error(t, err)
	assert.True(t, httperr.IsKind(err, httperr.KindNotFound))
	assert.True(t, httperr.IsCode(err, "establishment_not_found"))
}

func TestCreateReview_SecondReviewSameEstablishmentConflicts(t *testing.T) {
	repo := newFakeReviewRepo()
	repo.establishments["est-1"] = true

	create := uc.NewCreateReview(repo, testDispatcher())
	author := auth.Principal{ID: "user-1", Role: models.RoleUser}

	_, err := create.Execute(context.Background(), author, uc.CreateReviewInput{
		EstablishmentID: "est-1",
		Rating:          5,
	})
	require.NoError(t, err)

	_, err = create.Execute(context.Background(), author, uc.CreateReviewInput{
		EstablishmentID: "est-1",
		Rating:          1,
	})

	require.Error(t, err)
	assert.True(t, httperr.IsKind(err, httperr.KindConflict))
	assert.True(t, httperr.IsCode(err, "review_already_exists"))
}

func TestCreateReview_RatingOutOfRange(t *testing.T) {
	repo := newFakeReviewRepo()
	repo.establishments["est-1"] = true

	create := uc.NewCreateReview(repo, testDispatcher())

	for _, rating := range []int{0, 6, -1} {
		_, err := create.Execute(context.Background(), auth.Principal{ID: "user-1"}, uc.CreateReviewInput{
			EstablishmentID: "est-1",
			Rating:          rating,
		})
		require.Error(t, err, "rating %d must be rejected", rating)
		assert.True(t, httperr.IsKind(err, httperr.KindValidation))
	}
}

// --------- Update / Delete ---------

func TestUpdateReview_NonAuthorForbidden(t *testing.T) {
	repo := newFakeReviewRepo()
	repo.reviews["rev-1"] = &models.Review{ID: "rev-1", AuthorID: "user-1", EstablishmentID: "est-1", Rating: 4}

	update := uc.NewUpdateReview(repo, testDispatcher())

	stranger := auth.Principal{ID: "user-2", Role: models.RoleUser}
	rating := 1

	_, err := update.Execute(context.Background(), stranger, "rev-1", uc.UpdateReviewInput{Rating: &rating})

	require.Error(t, err)
	assert.True(t, httperr.IsKind(err, httperr.KindForbidden))
}

func TestUpdateReview_AuthorCanUpdate(t *testing.T) {
	title := "Bom acesso"
	repo := newFakeReviewRepo()
	repo.reviews["rev-1"] = &models.Review{ID: "rev-1", AuthorID: "user-1", EstablishmentID: "est-1", Rating: 4, Title: &title}

	update := uc.NewUpdateReview(repo, testDispatcher())

	author := auth.Principal{ID: "user-1", Role: models.RoleUser}
	rating := 2

	updated, err := update.Execute(context.Background(), author, "rev-1", uc.UpdateReviewInput{Rating: &rating})

	require.NoError(t, err)
	assert.Equal(t, 2, updated.Rating)
	// Untouched fields survive.
	require.NotNil(t, updated.Title)
	assert.Equal(t, "Bom acesso", *updated.Title)
}

func TestUpdateReview_AdminCanUpdateAny(t *testing.T) {
	repo := newFakeReviewRepo()
	repo.reviews["rev-1"] = &models.Review{ID: "rev-1", AuthorID: "user-1", EstablishmentID: "est-1", Rating: 4}

	update := uc.NewUpdateReview(repo, testDispatcher())

	admin := auth.Principal{ID: "admin-1", Role: models.RoleAdmin}
	rating := 3

	updated, err := update.Execute(context.Background(), admin, "rev-1", uc.UpdateReviewInput{Rating: &rating})

	require.NoError(t, err)
	assert.Equal(t, 3, updated.Rating)
}

func TestDeleteReview_AuthorCanDelete(t *testing.T) {
	repo := newFakeReviewRepo()
	repo.reviews["rev-1"] = &models.Review{ID: "rev-1", AuthorID: "user-1", EstablishmentID: "est-1", Rating: 4}

	del := uc.NewDeleteReview(repo, testDispatcher())

	err := del.Execute(context.Background(), auth.Principal{ID: "user-1", Role: models.RoleUser}, "rev-1")

	require.NoError(t, err)
	assert.Equal(t, []string{"rev-1"}, repo.deleted)
}

func TestDeleteReview_MissingIsNotFound(t *testing.T) {
	repo := newFakeReviewRepo()
	del := uc.NewDeleteReview(repo, testDispatcher())

	err := del.Execute(context.Background(), auth.Principal{ID: "user-1"}, "ghost")

	require.Error(t, err)
	assert.True(t, httperr.IsKind(err, httperr.KindNotFound))
}

// --------- Stats ---------

func TestEstablishmentStats_UnknownEstablishment(t *testing.T) {
	repo := newFakeReviewRepo()
	stats := uc.NewEstablishmentStats(repo)

	_, err := stats.Execute(context.Background(), "ghost")

	require.Error(t, err)
	assert.True(t, httperr.IsKind(err, httperr.KindNotFound))
}

func TestEstablishmentStats_NoReviews(t *testing.T) {
	repo := newFakeReviewRepo()
	repo.establishments["est-1"] = true

	statsUC := uc.NewEstablishmentStats(repo)

	stats, err := statsUC.Execute(context.Background(), "est-1")

	require.NoError(t, err)
	assert.Equal(t, 0, stats.TotalReviews)
	assert.Equal(t, 0.0, stats.AverageRating)
	assert.Len(t, stats.RatingDistribution, 5)
}

func TestEstablishmentStats_Aggregates(t *testing.T) {
	repo := newFakeReviewRepo()
	repo.establishments["est-1"] = true
	repo.reviews["r1"] = &models.Review{ID: "r1", AuthorID: "u1", EstablishmentID: "est-1", Rating: 5}
	repo.reviews["r2"] = &models.Review{ID: "r2", AuthorID: "u2", EstablishmentID: "est-1", Rating: 4}
	repo.reviews["r3"] = &models.Review{ID: "r3", AuthorID: "u3", EstablishmentID: "est-1", Rating: 5}
	repo.reviews["other"] = &models.Review{ID: "other", AuthorID: "u1", EstablishmentID: "est-2", Rating: 1}

	statsUC := uc.NewEstablishmentStats(repo)

	stats, err := statsUC.Execute(context.Background(), "est-1")

	require.NoError(t, err)
	assert.Equal(t, 3, stats.TotalReviews)
	assert.Equal(t, 4.7, stats.AverageRating)
	assert.Equal(t, 2, stats.RatingDistribution[5])
	assert.Equal(t, 1, stats.RatingDistribution[4])
	assert.Equal(t, 0, stats.RatingDistribution[1])
}
