package store

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/CompileLord/Test-programm-for-Schools/internal/models"

	"gorm.io/gorm"
)

// Source identifies which database a row was loaded from. Every read that
// follows a resolved entity must go through the same store, so the Source
// travels with the entity for the rest of the request.
type Source string

const (
	SourceLocal  Source = "local"
	SourceOnline Source = "online"
)

var ErrNotFound = errors.New("not found")

// Handle is a tagged database connection.
type Handle struct {
	DB     *gorm.DB
	Source Source
}

// Resolver decides whether a request is served from the local or the
// online store. The online store may be nil (not configured) or
// unreachable; both cases degrade silently to local-only.
type Resolver struct {
	local        *gorm.DB
	online       *gorm.DB
	probeTimeout time.Duration
}

func NewResolver(local, online *gorm.DB, probeTimeout time.Duration) *Resolver {
	if probeTimeout <= 0 {
		probeTimeout = 500 * time.Millisecond
	}
	return &Resolver{local: local, online: online, probeTimeout: probeTimeout}
}

func (r *Resolver) Local() Handle {
	return Handle{DB: r.local, Source: SourceLocal}
}

// Online probes the online store and returns a handle to it. The probe is
// bounded so an unreachable store cannot stall the request.
func (r *Resolver) Online(ctx context.Context) (Handle, error) {
	if r.online == nil {
		return Handle{}, errors.New("online store not configured")
	}

	ctx, cancel := context.WithTimeout(ctx, r.probeTimeout)
	defer cancel()

	if err := r.online.WithContext(ctx).Exec("SELECT 1").Error; err != nil {
		return Handle{}, err
	}
	return Handle{DB: r.online, Source: SourceOnline}, nil
}

// Listing picks the store public listings are served from: online when it
// answers the probe, local otherwise. Connectivity problems are logged and
// never surface to the caller.
func (r *Resolver) Listing(ctx context.Context) Handle {
	h, err := r.Online(ctx)
	if err != nil {
		log.Printf("online store unavailable, falling back to local: %v", err)
		return r.Local()
	}
	return h
}

// ResolveQuiz looks a quiz up by id: local store first, then online. The
// returned handle must be used for all subsequent reads of the quiz's
// questions and choices.
func (r *Resolver) ResolveQuiz(ctx context.Context, id uint, preloads ...string) (*models.Quiz, Handle, error) {
	local := r.Local()
	if quiz, err := findQuiz(local.DB, id, preloads); err == nil {
		return quiz, local, nil
	}

	online, err := r.Online(ctx)
	if err != nil {
		return nil, Handle{}, ErrNotFound
	}
	if quiz, err := findQuiz(online.DB, id, preloads); err == nil {
		return quiz, online, nil
	}
	return nil, Handle{}, ErrNotFound
}

func findQuiz(db *gorm.DB, id uint, preloads []string) (*models.Quiz, error) {
	tx := db
	for _, p := range preloads {
		tx = tx.Preload(p)
	}

	var quiz models.Quiz
	if err := tx.First(&quiz, id).Error; err != nil {
		return nil, err
	}
	return &quiz, nil
}
