package apiclient

import (
	"context"
	"fmt"
	"net/http"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/jwalitptl/clinic-console/internal/model"
)

const cacheKeyActivos = "personal_activo"

// Staff is the service client for the personal collection.
type Staff struct {
	c     *Client
	cache *gocache.Cache
}

func NewStaff(c *Client, pickerTTL time.Duration) *Staff {
	return &Staff{
		c:     c,
		cache: gocache.New(pickerTTL, 2*pickerTTL),
	}
}

func (s *Staff) List(ctx context.Context) ([]model.StaffMember, error) {
	var personal []model.StaffMember
	if err := s.c.do(ctx, "personal", http.MethodGet, "/personal", nil, &personal); err != nil {
		return nil, fmt.Errorf("failed to list personal: %w", err)
	}
	return personal, nil
}

// ListActivos returns the picker view: staff whose estado is not
// inactive can be assigned appointments.
func (s *Staff) ListActivos(ctx context.Context) ([]model.StaffMember, error) {
	if cached, ok := s.cache.Get(cacheKeyActivos); ok {
		return cached.([]model.StaffMember), nil
	}

	personal, err := s.List(ctx)
	if err != nil {
		return nil, err
	}

	activos := make([]model.StaffMember, 0, len(personal))
	for _, miembro := range personal {
		if miembro.Estado != model.PersonalInactivo {
			activos = append(activos, miembro)
		}
	}

	s.cache.Set(cacheKeyActivos, activos, gocache.DefaultExpiration)
	return activos, nil
}
