package repository

import (
	"sort"
	"sync"
	"time"

	"course_platform_backend/internal/model"
)

type CertificateRepository struct {
	mu           sync.RWMutex
	nextID       uint
	certificates map[uint]*model.Certificate
}

func NewCertificateRepository() *CertificateRepository {
	return &CertificateRepository{
		nextID:       1,
		certificates: make(map[uint]*model.Certificate),
	}
}

func (r *CertificateRepository) Create(userID, courseID uint) *model.Certificate {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := &model.Certificate{
		ID:       r.nextID,
		UserID:   userID,
		CourseID: courseID,
		IssuedAt: time.Now(),
	}
	r.nextID++

	r.certificates[stored.ID] = stored

	out := *stored
	return &out
}

func (r *CertificateRepository) FindByUser(userID uint) []model.Certificate {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]model.Certificate, 0)
	for _, cert := range r.certificates {
		if cert.UserID == userID {
			out = append(out, *cert)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
