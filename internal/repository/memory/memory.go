// Package memory is a process-local implementation of the repository
// interfaces. It backs the service and pipeline tests and local demos.
package memory

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/kingrain94/business-feed-api/internal/domain"
	"github.com/kingrain94/business-feed-api/internal/repository"
)

type Repository struct {
	mu          sync.RWMutex
	users       map[string]domain.User
	businesses  map[string]domain.Business
	resetTokens map[string]domain.PasswordResetToken
	verifyTkns  map[string]domain.EmailVerificationToken
	posts       map[string]domain.Post
	likes       map[string]domain.Like
	files       map[string]domain.FileMetadata
}

func NewRepository() *Repository {
	return &Repository{
		users:       make(map[string]domain.User),
		businesses:  make(map[string]domain.Business),
		resetTokens: make(map[string]domain.PasswordResetToken),
		verifyTkns:  make(map[string]domain.EmailVerificationToken),
		posts:       make(map[string]domain.Post),
		likes:       make(map[string]domain.Like),
		files:       make(map[string]domain.FileMetadata),
	}
}

func (r *Repository) User() repository.UserRepository { return userRepo{r} }

func (r *Repository) Business() repository.BusinessRepository { return businessRepo{r} }

func (r *Repository) PasswordResetToken() repository.PasswordResetTokenRepository {
	return resetTokenRepo{r}
}

func (r *Repository) EmailVerificationToken() repository.EmailVerificationTokenRepository {
	return verifyTokenRepo{r}
}

func (r *Repository) Post() repository.PostRepository { return postRepo{r} }

func (r *Repository) Like() repository.LikeRepository { return likeRepo{r} }

func (r *Repository) File() repository.FileRepository { return fileRepo{r} }

func newID(id string) string {
	if id == "" {
		return uuid.New().String()
	}
	return id
}

type userRepo struct{ *Repository }

func (r userRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	user.ID = newID(user.ID)
	user.Email = domain.CanonicalEmail(user.Email)
	for _, existing := range r.users {
		if user.Email != "" && existing.Email == user.Email {
			return nil, repository.ErrDuplicate
		}
	}
	r.users[user.ID] = *user
	return user, nil
}

func (r userRepo) GetByID(_ context.Context, id string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	user, ok := r.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &user, nil
}

func (r userRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	email = domain.CanonicalEmail(email)
	for _, user := range r.users {
		if user.Email == email {
			return &user, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r userRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	_, err := r.GetByEmail(ctx, email)
	if errors.Is(err, repository.ErrNotFound) {
		return false, nil
	}
	return err == nil, err
}

func (r userRepo) Update(_ context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.users[user.ID] = *user
	return nil
}

func (r userRepo) List(_ context.Context) ([]domain.User, error) {
	return r.filterUsers(func(domain.User) bool { return true }), nil
}

func (r userRepo) ListByBusiness(_ context.Context, businessID string) ([]domain.User, error) {
	return r.filterUsers(func(u domain.User) bool { return u.BusinessID == businessID }), nil
}

func (r userRepo) filterUsers(keep func(domain.User) bool) []domain.User {
	r.mu.RLock()
	defer r.mu.RUnlock()
	users := make([]domain.User, 0, len(r.users))
	for _, user := range r.users {
		if keep(user) {
			users = append(users, user)
		}
	}
	sort.Slice(users, func(i, j int) bool {
		return users[i].CreationDateUTC.After(users[j].CreationDateUTC)
	})
	return users
}

type businessRepo struct{ *Repository }

func (r businessRepo) Create(_ context.Context, business *domain.Business) (*domain.Business, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	business.ID = newID(business.ID)
	r.businesses[business.ID] = *business
	return business, nil
}

func (r businessRepo) GetByID(_ context.Context, id string) (*domain.Business, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	business, ok := r.businesses[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &business, nil
}

func (r businessRepo) Update(_ context.Context, business *domain.Business) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.businesses[business.ID] = *business
	return nil
}

func (r businessRepo) ListActive(_ context.Context) ([]domain.Business, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	businesses := make([]domain.Business, 0, len(r.businesses))
	for _, business := range r.businesses {
		if !business.Deleted {
			businesses = append(businesses, business)
		}
	}
	sort.Slice(businesses, func(i, j int) bool { return businesses[i].Name < businesses[j].Name })
	return businesses, nil
}

type resetTokenRepo struct{ *Repository }

func (r resetTokenRepo) Create(_ context.Context, token *domain.PasswordResetToken) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	token.ID = newID(token.ID)
	r.resetTokens[token.ID] = *token
	return nil
}

func (r resetTokenRepo) GetByToken(_ context.Context, token string) (*domain.PasswordResetToken, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, t := range r.resetTokens {
		if t.Token == token {
			return &t, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r resetTokenRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.resetTokens, id)
	return nil
}

func (r resetTokenRepo) DeleteExpired(_ context.Context, now time.Time) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var removed int64
	for id, t := range r.resetTokens {
		if t.Expired(now) {
			delete(r.resetTokens, id)
			removed++
		}
	}
	return removed, nil
}

type verifyTokenRepo struct{ *Repository }

func (r verifyTokenRepo) Create(_ context.Context, token *domain.EmailVerificationToken) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	token.ID = newID(token.ID)
	r.verifyTkns[token.ID] = *token
	return nil
}

func (r verifyTokenRepo) GetByToken(_ context.Context, token string) (*domain.EmailVerificationToken, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, t := range r.verifyTkns {
		if t.Token == token {
			return &t, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r verifyTokenRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.verifyTkns, id)
	return nil
}

func (r verifyTokenRepo) DeleteByUserID(_ context.Context, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for id, t := range r.verifyTkns {
		if t.UserID == userID {
			delete(r.verifyTkns, id)
		}
	}
	return nil
}

func (r verifyTokenRepo) DeleteExpired(_ context.Context, now time.Time) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var removed int64
	for id, t := range r.verifyTkns {
		if t.Expired(now) {
			delete(r.verifyTkns, id)
			removed++
		}
	}
	return removed, nil
}

type postRepo struct{ *Repository }

func (r postRepo) Create(_ context.Context, post *domain.Post) (*domain.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	post.ID = newID(post.ID)
	r.posts[post.ID] = *post
	return post, nil
}

func (r postRepo) GetByID(_ context.Context, id string) (*domain.Post, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	post, ok := r.posts[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &post, nil
}

func (r postRepo) Update(_ context.Context, post *domain.Post) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored, ok := r.posts[post.ID]
	if !ok {
		return repository.ErrNotFound
	}
	stored.Title = post.Title
	stored.Description = post.Description
	stored.Location = post.Location
	stored.ImageURL = post.ImageURL
	r.posts[post.ID] = stored
	return nil
}

func (r postRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.posts, id)
	return nil
}

func (r postRepo) ListByBusiness(_ context.Context, businessID string, page domain.PageRequest) ([]domain.Post, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	posts := make([]domain.Post, 0)
	for _, post := range r.posts {
		if post.BusinessID == businessID {
			posts = append(posts, post)
		}
	}
	sort.Slice(posts, func(i, j int) bool {
		return posts[i].CreationDateUTC.After(posts[j].CreationDateUTC)
	})

	start := page.Offset()
	if start >= len(posts) {
		return []domain.Post{}, nil
	}
	end := min(start+page.Size, len(posts))
	return posts[start:end], nil
}

type likeRepo struct{ *Repository }

func (r likeRepo) Toggle(_ context.Context, userID, postID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	post, ok := r.posts[postID]
	if !ok {
		return false, repository.ErrNotFound
	}

	key := userID + "/" + postID
	like, exists := r.likes[key]
	if !exists {
		like = domain.Like{ID: uuid.New().String(), UserID: userID, PostID: postID}
	}
	like.Liked = !exists || !like.Liked
	r.likes[key] = like

	if like.Liked {
		post.Likes++
	} else if post.Likes > 0 {
		post.Likes--
	}
	r.posts[postID] = post
	return like.Liked, nil
}

func (r likeRepo) LikedPostIDs(_ context.Context, userID string, postIDs []string) (map[string]bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	liked := make(map[string]bool, len(postIDs))
	for _, postID := range postIDs {
		if like, ok := r.likes[userID+"/"+postID]; ok && like.Liked {
			liked[postID] = true
		}
	}
	return liked, nil
}

func (r likeRepo) DeleteByPost(_ context.Context, postID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for key, like := range r.likes {
		if like.PostID == postID {
			delete(r.likes, key)
		}
	}
	return nil
}

type fileRepo struct{ *Repository }

func (r fileRepo) Create(_ context.Context, file *domain.FileMetadata) (*domain.FileMetadata, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	file.ID = newID(file.ID)
	r.files[file.StoredFilename] = *file
	return file, nil
}

func (r fileRepo) GetByStoredFilename(_ context.Context, storedFilename string) (*domain.FileMetadata, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	file, ok := r.files[storedFilename]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &file, nil
}

func (r fileRepo) Update(_ context.Context, file *domain.FileMetadata) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.files[file.StoredFilename] = *file
	return nil
}

func (r fileRepo) ListActiveByBusiness(_ context.Context, businessID string) ([]domain.FileMetadata, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	files := make([]domain.FileMetadata, 0)
	for _, file := range r.files {
		if file.BusinessID == businessID && file.IsActive() {
			files = append(files, file)
		}
	}
	sort.Slice(files, func(i, j int) bool { return files[i].UploadDate.After(files[j].UploadDate) })
	return files, nil
}
