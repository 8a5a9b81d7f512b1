package service

import (
	"context"
	"errors"
	"testing"

	"github.com/maheshrc27/adspark/internal/models"
	"github.com/maheshrc27/adspark/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockPostRepository struct {
	mock.Mock
}

func (m *MockPostRepository) List(ctx context.Context) ([]*models.SocialMediaPost, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.SocialMediaPost), args.Error(1)
}

func (m *MockPostRepository) GetByID(ctx context.Context, id string) (*models.SocialMediaPost, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.SocialMediaPost), args.Error(1)
}

func (m *MockPostRepository) Delete(ctx context.Context, id string) (*repository.DeletedPost, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.DeletedPost), args.Error(1)
}

var _ repository.PostRepository = (*MockPostRepository)(nil)

type MockImageStore struct {
	mock.Mock
}

func (m *MockImageStore) Owns(imageURL string) bool {
	return m.Called(imageURL).Bool(0)
}

func (m *MockImageStore) DeleteImage(ctx context.Context, imageURL string) error {
	return m.Called(ctx, imageURL).Error(0)
}

func TestPostService_List(t *testing.T) {
	repo := new(MockPostRepository)
	posts := []*models.SocialMediaPost{{ID: "2"}, {ID: "1"}}
	repo.On("List", mock.Anything).Return(posts, nil)

	got, err := NewPostService(repo, nil).List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, posts, got)
}

func TestPostService_ListError(t *testing.T) {
	repo := new(MockPostRepository)
	repo.On("List", mock.Anything).Return(nil, errors.New("pool exhausted"))

	_, err := NewPostService(repo, nil).List(context.Background())
	assert.EqualError(t, err, "pool exhausted")
}

func TestPostService_PostInfo(t *testing.T) {
	repo := new(MockPostRepository)
	repo.On("GetByID", mock.Anything, "5").Return(&models.SocialMediaPost{ID: "5"}, nil)
	repo.On("GetByID", mock.Anything, "404").Return(nil, nil)

	s := NewPostService(repo, nil)

	post, err := s.PostInfo(context.Background(), "5")
	require.NoError(t, err)
	assert.Equal(t, "5", post.ID)

	_, err = s.PostInfo(context.Background(), "404")
	assert.ErrorIs(t, err, ErrPostNotFound)

	_, err = s.PostInfo(context.Background(), " ")
	assert.ErrorIs(t, err, ErrMissingPostID)
	repo.AssertNumberOfCalls(t, "GetByID", 2)
}

func TestPostService_RemoveTwice(t *testing.T) {
	repo := new(MockPostRepository)
	repo.On("Delete", mock.Anything, "9").Return(&repository.DeletedPost{ID: "9"}, nil).Once()
	repo.On("Delete", mock.Anything, "9").Return(nil, nil).Once()

	s := NewPostService(repo, nil)

	assert.NoError(t, s.Remove(context.Background(), "9"))
	assert.ErrorIs(t, s.Remove(context.Background(), "9"), ErrPostNotFound)
	repo.AssertExpectations(t)
}

func TestPostService_RemoveMissingID(t *testing.T) {
	repo := new(MockPostRepository)
	assert.ErrorIs(t, NewPostService(repo, nil).Remove(context.Background(), ""), ErrMissingPostID)
	repo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestPostService_RemoveCleansUpOwnedImage(t *testing.T) {
	repo := new(MockPostRepository)
	images := new(MockImageStore)
	url := "https://pub.r2.dev/generated/abc.png"

	repo.On("Delete", mock.Anything, "3").Return(&repository.DeletedPost{ID: "3", GeneratedImageURL: url}, nil)
	images.On("Owns", url).Return(true)
	images.On("DeleteImage", mock.Anything, url).Return(errors.New("bucket unavailable"))

	err := NewPostService(repo, images).Remove(context.Background(), "3")

	assert.NoError(t, err, "image cleanup failures never fail the delete")
	images.AssertExpectations(t)
}

func TestPostService_RemoveSkipsForeignImage(t *testing.T) {
	repo := new(MockPostRepository)
	images := new(MockImageStore)
	url := "https://cdn.example.com/abc.png"

	repo.On("Delete", mock.Anything, "3").Return(&repository.DeletedPost{ID: "3", GeneratedImageURL: url}, nil)
	images.On("Owns", url).Return(false)

	require.NoError(t, NewPostService(repo, images).Remove(context.Background(), "3"))
	images.AssertNotCalled(t, "DeleteImage", mock.Anything, mock.Anything)
}
