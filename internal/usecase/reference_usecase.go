package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"workplace-survey-api/internal/converter"
	"workplace-survey-api/internal/delivery/dto"
	"workplace-survey-api/internal/domain/repository"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// Reference catalogs only change with deployments, so cached entries can live
// long. Cache failures fall through to the database and are never fatal.
const referenceCacheTTL = time.Hour

type ReferenceUsecase interface {
	ListStates(ctx context.Context) (*dto.StateListResponse, error)
	ListMunicipalities(ctx context.Context, stateID uint) (*dto.MunicipalityListResponse, error)
	ListOrganizationRoles(ctx context.Context) (*dto.OrganizationRoleListResponse, error)
}

type referenceUsecase struct {
	log           *logrus.Logger
	referenceRepo repository.ReferenceRepository
	cache         *redis.Client
}

// NewReferenceUsecase builds the catalog usecase. cache may be nil, which
// disables caching and serves every lookup from the database.
func NewReferenceUsecase(log *logrus.Logger, referenceRepo repository.ReferenceRepository, cache *redis.Client) ReferenceUsecase {
	return &referenceUsecase{
		log:           log,
		referenceRepo: referenceRepo,
		cache:         cache,
	}
}

func (u *referenceUsecase) ListStates(ctx context.Context) (*dto.StateListResponse, error) {
	var cached dto.StateListResponse
	if u.cacheGet(ctx, "catalog:states", &cached) {
		return &cached, nil
	}

	states, err := u.referenceRepo.ListStates(ctx)
	if err != nil {
		u.log.Warnf("Failed to list states: %+v", err)
		return nil, err
	}

	result := &dto.StateListResponse{States: converter.StatesToOptions(states)}
	u.cacheSet(ctx, "catalog:states", result)
	return result, nil
}

func (u *referenceUsecase) ListMunicipalities(ctx context.Context, stateID uint) (*dto.MunicipalityListResponse, error) {
	key := fmt.Sprintf("catalog:municipalities:%d", stateID)

	var cached dto.MunicipalityListResponse
	if u.cacheGet(ctx, key, &cached) {
		return &cached, nil
	}

	municipalities, err := u.referenceRepo.ListMunicipalitiesByState(ctx, stateID)
	if err != nil {
		u.log.Warnf("Failed to list municipalities for state %d: %+v", stateID, err)
		return nil, err
	}

	result := &dto.MunicipalityListResponse{Municipalities: converter.MunicipalitiesToOptions(municipalities)}
	u.cacheSet(ctx, key, result)
	return result, nil
}

func (u *referenceUsecase) ListOrganizationRoles(ctx context.Context) (*dto.OrganizationRoleListResponse, error) {
	var cached dto.OrganizationRoleListResponse
	if u.cacheGet(ctx, "catalog:roles", &cached) {
		return &cached, nil
	}

	roles, err := u.referenceRepo.ListOrganizationRoles(ctx)
	if err != nil {
		u.log.Warnf("Failed to list organization roles: %+v", err)
		return nil, err
	}

	result := &dto.OrganizationRoleListResponse{Roles: converter.OrganizationRolesToOptions(roles)}
	u.cacheSet(ctx, "catalog:roles", result)
	return result, nil
}

func (u *referenceUsecase) cacheGet(ctx context.Context, key string, dest interface{}) bool {
	if u.cache == nil {
		return false
	}
	payload, err := u.cache.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			u.log.Warnf("Failed to read cache key %s: %+v", key, err)
		}
		return false
	}
	if err := json.Unmarshal(payload, dest); err != nil {
		u.log.Warnf("Failed to decode cache key %s: %+v", key, err)
		return false
	}
	return true
}

func (u *referenceUsecase) cacheSet(ctx context.Context, key string, value interface{}) {
	if u.cache == nil {
		return
	}
	payload, err := json.Marshal(value)
	if err != nil {
		u.log.Warnf("Failed to encode cache key %s: %+v", key, err)
		return
	}
	if err := u.cache.Set(ctx, key, payload, referenceCacheTTL).Err(); err != nil {
		u.log.Warnf("Failed to write cache key %s: %+v", key, err)
	}
}
