package impl

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"time"

	"tabiptv/internal/domain/entity"
	"tabiptv/internal/domain/repository"
	"tabiptv/internal/domain/service"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// memStore is a shared in-memory backing store so all repositories handed out
// by the factory observe the same state, like rows in one database.
type memStore struct {
	channels []*entity.Channel
	accounts []*entity.Account
	paths    []*entity.PlaylistPath
	nextID   int64
}

func newMemStore() *memStore {
	return &memStore{nextID: 1}
}

func (s *memStore) allocID() int64 {
	id := s.nextID
	s.nextID++

	return id
}

type memFactory struct {
	store *memStore
}

func (f *memFactory) ChannelRepo() repository.ChannelRepository {
	return &memChannelRepo{store: f.store}
}

func (f *memFactory) AccountRepo() repository.AccountRepository {
	return &memAccountRepo{store: f.store}
}

func (f *memFactory) PathRepo() repository.PlaylistPathRepository {
	return &memPathRepo{store: f.store}
}

// memTxManager runs the callback directly against the shared store. Rollback
// semantics are not simulated; the tests assert business outcomes only.
type memTxManager struct {
	store *memStore
}

func newMemTxManager() *memTxManager {
	return &memTxManager{store: newMemStore()}
}

func (m *memTxManager) Execute(_ context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	return fn(&memFactory{store: m.store})
}

type memChannelRepo struct {
	store *memStore
}

func (r *memChannelRepo) Create(_ context.Context, channel *entity.Channel) error {
	channel.ID = r.store.allocID()
	clone := *channel
	r.store.channels = append(r.store.channels, &clone)

	return nil
}

func (r *memChannelRepo) FindByID(_ context.Context, id int64) (*entity.Channel, error) {
	for _, ch := range r.store.channels {
		if ch.ID == id {
			clone := *ch

			return &clone, nil
		}
	}

	return nil, repository.ErrChannelNotFound
}

func (r *memChannelRepo) List(_ context.Context, offset, limit int) ([]*entity.Channel, error) {
	visible := make([]*entity.Channel, 0, len(r.store.channels))
	for _, ch := range r.store.channels {
		if ch.Deleted {
			continue
		}
		clone := *ch
		visible = append(visible, &clone)
	}

	if offset >= len(visible) {
		return nil, nil
	}
	visible = visible[offset:]
	if limit > 0 && limit < len(visible) {
		visible = visible[:limit]
	}

	return visible, nil
}

func (r *memChannelRepo) ListAll(_ context.Context) ([]*entity.Channel, error) {
	all := make([]*entity.Channel, 0, len(r.store.channels))
	for _, ch := range r.store.channels {
		clone := *ch
		all = append(all, &clone)
	}

	return all, nil
}

func (r *memChannelRepo) Update(_ context.Context, channel *entity.Channel) error {
	for i, ch := range r.store.channels {
		if ch.ID == channel.ID {
			clone := *channel
			r.store.channels[i] = &clone

			return nil
		}
	}

	return repository.ErrChannelNotFound
}

func (r *memChannelRepo) Delete(_ context.Context, id int64) error {
	for i, ch := range r.store.channels {
		if ch.ID == id {
			r.store.channels = append(r.store.channels[:i], r.store.channels[i+1:]...)

			return nil
		}
	}

	return repository.ErrChannelNotFound
}

type memAccountRepo struct {
	store *memStore
}

func (r *memAccountRepo) Create(_ context.Context, account *entity.Account) error {
	account.ID = r.store.allocID()
	clone := *account
	r.store.accounts = append(r.store.accounts, &clone)

	return nil
}

func (r *memAccountRepo) FindByUsername(_ context.Context, username string) (*entity.Account, error) {
	for _, acc := range r.store.accounts {
		if acc.Username == username {
			clone := *acc

			return &clone, nil
		}
	}

	return nil, repository.ErrAccountNotFound
}

func (r *memAccountRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.store.accounts)), nil
}

type memPathRepo struct {
	store *memStore
}

func (r *memPathRepo) Create(_ context.Context, path *entity.PlaylistPath) error {
	path.ID = r.store.allocID()
	clone := *path
	r.store.paths = append(r.store.paths, &clone)

	return nil
}

func (r *memPathRepo) FindByID(_ context.Context, id int64) (*entity.PlaylistPath, error) {
	for _, p := range r.store.paths {
		if p.ID == id {
			clone := *p

			return &clone, nil
		}
	}

	return nil, repository.ErrPathNotFound
}

func (r *memPathRepo) FindByPath(_ context.Context, path string) (*entity.PlaylistPath, error) {
	for _, p := range r.store.paths {
		if p.Path == path {
			clone := *p

			return &clone, nil
		}
	}

	return nil, repository.ErrPathNotFound
}

func (r *memPathRepo) List(_ context.Context) ([]*entity.PlaylistPath, error) {
	all := make([]*entity.PlaylistPath, 0, len(r.store.paths))
	for _, p := range r.store.paths {
		clone := *p
		all = append(all, &clone)
	}

	return all, nil
}

func (r *memPathRepo) Update(_ context.Context, path *entity.PlaylistPath) error {
	for i, p := range r.store.paths {
		if p.ID == path.ID {
			clone := *path
			r.store.paths[i] = &clone

			return nil
		}
	}

	return repository.ErrPathNotFound
}

// plainHasher is a transparent stand-in for the bcrypt hasher.
type plainHasher struct{}

func (plainHasher) Hash(password string) (string, error) {
	return "hashed:" + password, nil
}

func (plainHasher) Check(password, hash string) bool {
	return hash == "hashed:"+password
}

// stubTokenService mints inspectable tokens of the form "token:<username>".
type stubTokenService struct{}

func (stubTokenService) GenerateToken(username string) (string, error) {
	return "token:" + username, nil
}

func (stubTokenService) ValidateToken(tokenString string) (*service.Claims, error) {
	username, ok := strings.CutPrefix(tokenString, "token:")
	if !ok {
		return nil, errors.New("malformed token")
	}

	return &service.Claims{
		Username:  username,
		ExpiresAt: time.Now().Add(30 * time.Minute),
	}, nil
}

func (stubTokenService) AccessTokenDuration() time.Duration {
	return 30 * time.Minute
}

// stubQRCodeService records the path it was asked to encode.
type stubQRCodeService struct {
	lastPath string
}

func (s *stubQRCodeService) GeneratePlaylistQR(path string) ([]byte, error) {
	s.lastPath = path

	return []byte("png:" + path), nil
}
