package usecase

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookreview/internal/domain/entity"
	"bookreview/pkg/errors"
)

// fakeProfileRepository meniru ArrayUnion/ArrayRemove di list library.
type fakeProfileRepository struct {
	profiles  map[string]*entity.UserProfile
	updateErr error
}

func newFakeProfileRepository() *fakeProfileRepository {
	return &fakeProfileRepository{profiles: map[string]*entity.UserProfile{}}
}

func (f *fakeProfileRepository) Create(ctx context.Context, profile *entity.UserProfile) error {
	stored := *profile
	if stored.Library == nil {
		stored.Library = []string{}
	}
	f.profiles[profile.UID] = &stored
	return nil
}

func (f *fakeProfileRepository) GetByUID(ctx context.Context, uid string) (*entity.UserProfile, error) {
	profile, ok := f.profiles[uid]
	if !ok {
		return nil, errors.NotFound("Profile", nil)
	}
	copied := *profile
	copied.Library = append([]string{}, profile.Library...)
	return &copied, nil
}

func (f *fakeProfileRepository) Update(ctx context.Context, uid string, fields map[string]interface{}) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	profile, ok := f.profiles[uid]
	if !ok {
		return errors.NotFound("Profile", nil)
	}
	if v, ok := fields["firstName"].(string); ok {
		profile.FirstName = v
	}
	if v, ok := fields["lastName"].(string); ok {
		profile.LastName = v
	}
	if v, ok := fields["profilePictureUrl"].(string); ok {
		profile.ProfilePictureURL = v
	}
	return nil
}

func (f *fakeProfileRepository) AddToLibrary(ctx context.Context, uid, bookID string) error {
	profile, ok := f.profiles[uid]
	if !ok {
		return errors.NotFound("Profile", nil)
	}
	for _, id := range profile.Library {
		if id == bookID {
			return nil
		}
	}
	profile.Library = append(profile.Library, bookID)
	return nil
}

func (f *fakeProfileRepository) RemoveFromLibrary(ctx context.Context, uid, bookID string) error {
	profile, ok := f.profiles[uid]
	if !ok {
		return errors.NotFound("Profile", nil)
	}
	kept := profile.Library[:0]
	for _, id := range profile.Library {
		if id != bookID {
			kept = append(kept, id)
		}
	}
	profile.Library = kept
	return nil
}

type fakeCatalogClient struct {
	books map[string]entity.Book
}

func (f *fakeCatalogClient) ListBooks(ctx context.Context) ([]entity.Book, error) {
	var books []entity.Book
	for _, b := range f.books {
		books = append(books, b)
	}
	return books, nil
}

func (f *fakeCatalogClient) GetBook(ctx context.Context, id string) (*entity.Book, error) {
	book, ok := f.books[id]
	if !ok {
		return nil, nil
	}
	return &book, nil
}

func (f *fakeCatalogClient) SearchBooks(ctx context.Context, term string) ([]entity.Book, error) {
	return f.ListBooks(ctx)
}

type fakeStorageClient struct {
	uploads map[string]string
	fail    bool
}

func (f *fakeStorageClient) UploadProfilePicture(ctx context.Context, uid string, file io.Reader, contentType string) (string, error) {
	if f.fail {
		return "", errors.Internal("upload failed", nil)
	}
	url := "https://storage.googleapis.com/test-bucket/users/" + uid + "/profile_pictures/profile.jpg"
	if f.uploads == nil {
		f.uploads = map[string]string{}
	}
	f.uploads[uid] = url
	return url, nil
}

func newLibraryUseCaseForTest(repo *fakeProfileRepository) *LibraryUseCase {
	catalog := &fakeCatalogClient{books: map[string]entity.Book{
		"abc123": {ID: "abc123", Title: "The Go Programming Language"},
		"def456": {ID: "def456", Title: "Clean Architecture"},
	}}
	return NewLibraryUseCase(repo, catalog, &fakeStorageClient{}, &fakeAuthClient{emails: map[string]string{"user1": "user1@example.com"}})
}

func TestLazyProfileCreation(t *testing.T) {
	repo := newFakeProfileRepository()
	uc := newLibraryUseCaseForTest(repo)
	ctx := context.Background()

	profile, err := uc.GetProfile(ctx, "user1", "user1")
	require.NoError(t, err)
	require.NotNil(t, profile)
	assert.Equal(t, "user1", profile.UID)
	assert.Empty(t, profile.FirstName)
	assert.Empty(t, profile.LastName)
	assert.Equal(t, "user1@example.com", profile.Email)
	assert.Empty(t, profile.Library)

	// Panggilan kedua mengembalikan document yang sama, tidak membuat ulang
	profile.FirstName = "changed-in-memory"
	again, err := uc.GetProfile(ctx, "user1", "user1")
	require.NoError(t, err)
	assert.Empty(t, again.FirstName)
}

func TestGetProfileForOtherUIDAbsent(t *testing.T) {
	uc := newLibraryUseCaseForTest(newFakeProfileRepository())

	profile, err := uc.GetProfile(context.Background(), "someone-else", "user1")
	require.NoError(t, err)
	assert.Nil(t, profile)
}

func TestLibraryMembership(t *testing.T) {
	repo := newFakeProfileRepository()
	uc := newLibraryUseCaseForTest(repo)
	ctx := context.Background()

	_, err := uc.GetProfile(ctx, "user1", "user1")
	require.NoError(t, err)

	require.NoError(t, uc.AddToLibrary(ctx, "user1", "abc123"))
	assert.True(t, uc.IsInLibrary(ctx, "user1", "abc123"))

	// Add kedua kali tidak menduplikasi
	require.NoError(t, uc.AddToLibrary(ctx, "user1", "abc123"))
	profile, err := uc.GetProfile(ctx, "user1", "user1")
	require.NoError(t, err)
	assert.Equal(t, []string{"abc123"}, profile.Library)

	require.NoError(t, uc.RemoveFromLibrary(ctx, "user1", "abc123"))
	assert.False(t, uc.IsInLibrary(ctx, "user1", "abc123"))
}

func TestGetLibraryBooksSkipsUnknownIDs(t *testing.T) {
	repo := newFakeProfileRepository()
	uc := newLibraryUseCaseForTest(repo)
	ctx := context.Background()

	_, err := uc.GetProfile(ctx, "user1", "user1")
	require.NoError(t, err)

	require.NoError(t, uc.AddToLibrary(ctx, "user1", "abc123"))
	require.NoError(t, uc.AddToLibrary(ctx, "user1", "deleted-book"))
	require.NoError(t, uc.AddToLibrary(ctx, "user1", "def456"))

	books, err := uc.GetLibraryBooks(ctx, "user1")
	require.NoError(t, err)
	require.Len(t, books, 2)
	assert.Equal(t, "abc123", books[0].ID)
	assert.Equal(t, "def456", books[1].ID)
}

func TestUpdateProfile(t *testing.T) {
	repo := newFakeProfileRepository()
	uc := newLibraryUseCaseForTest(repo)
	ctx := context.Background()

	_, err := uc.GetProfile(ctx, "user1", "user1")
	require.NoError(t, err)

	first := "Ada"
	profile, err := uc.UpdateProfile(ctx, "user1", UpdateProfileInput{FirstName: &first})
	require.NoError(t, err)
	assert.Equal(t, "Ada", profile.FirstName)
	// Field yang tidak dikirim tidak tersentuh
	assert.Equal(t, "user1@example.com", profile.Email)
}

func TestUploadProfilePicture(t *testing.T) {
	repo := newFakeProfileRepository()
	uc := newLibraryUseCaseForTest(repo)
	ctx := context.Background()

	_, err := uc.GetProfile(ctx, "user1", "user1")
	require.NoError(t, err)

	url, err := uc.UploadProfilePicture(ctx, "user1", strings.NewReader("fake-image-bytes"), "image/jpeg")
	require.NoError(t, err)
	assert.Contains(t, url, "users/user1/profile_pictures/profile.jpg")

	profile, err := uc.GetProfile(ctx, "user1", "user1")
	require.NoError(t, err)
	assert.Equal(t, url, profile.ProfilePictureURL)
}

func TestUploadProfilePictureStorageFailure(t *testing.T) {
	repo := newFakeProfileRepository()
	catalog := &fakeCatalogClient{books: map[string]entity.Book{}}
	uc := NewLibraryUseCase(repo, catalog, &fakeStorageClient{fail: true}, &fakeAuthClient{emails: map[string]string{"user1": "user1@example.com"}})
	ctx := context.Background()

	_, err := uc.GetProfile(ctx, "user1", "user1")
	require.NoError(t, err)

	_, err = uc.UploadProfilePicture(ctx, "user1", strings.NewReader("fake-image-bytes"), "image/jpeg")
	require.Error(t, err)
	assert.True(t, errors.Is(err, "INTERNAL_ERROR"))

	profile, err := uc.GetProfile(ctx, "user1", "user1")
	require.NoError(t, err)
	assert.Empty(t, profile.ProfilePictureURL)
}

func TestUploadProfilePictureUpdateFailure(t *testing.T) {
	repo := newFakeProfileRepository()
	catalog := &fakeCatalogClient{books: map[string]entity.Book{}}
	storage := &fakeStorageClient{}
	uc := NewLibraryUseCase(repo, catalog, storage, &fakeAuthClient{emails: map[string]string{"user1": "user1@example.com"}})
	ctx := context.Background()

	_, err := uc.GetProfile(ctx, "user1", "user1")
	require.NoError(t, err)

	repo.updateErr = errors.Internal("firestore unavailable", nil)
	_, err = uc.UploadProfilePicture(ctx, "user1", strings.NewReader("fake-image-bytes"), "image/jpeg")
	require.Error(t, err)

	// Object sudah terlanjur tersimpan; URL-nya saja yang tidak dipersist
	assert.NotEmpty(t, storage.uploads["user1"])
	repo.updateErr = nil
	profile, err := uc.GetProfile(ctx, "user1", "user1")
	require.NoError(t, err)
	assert.Empty(t, profile.ProfilePictureURL)
}
