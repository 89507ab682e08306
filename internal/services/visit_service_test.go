package services_test

import (
	"testing"

	"github.com/devshowcase/showcase-backend/internal/models"
	"github.com/devshowcase/showcase-backend/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordIsIdempotentPerSessionPerDay(t *testing.T) {
	db := openTestDB(t)
	svc := services.NewVisitService(db)

	first, err := svc.Record("session-a", "test-agent", "127.0.0.1")
	require.NoError(t, err)

	second, err := svc.Record("session-a", "test-agent", "127.0.0.1")
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)

	var count int64
	require.NoError(t, db.Model(&models.SiteVisit{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestRecordSeparatesSessions(t *testing.T) {
	db := openTestDB(t)
	svc := services.NewVisitService(db)

	a, err := svc.Record("session-a", "agent", "10.0.0.1")
	require.NoError(t, err)
	b, err := svc.Record("session-b", "agent", "10.0.0.2")
	require.NoError(t, err)
	assert.NotEqual(t, a.ID, b.ID)

	var count int64
	require.NoError(t, db.Model(&models.SiteVisit{}).Count(&count).Error)
	assert.Equal(t, int64(2), count)
}
