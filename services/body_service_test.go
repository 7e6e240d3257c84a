package services_test

import (
	"context"
	"testing"

	"github.com/iyunseong/mental-n-fit-sub000/models"
	"github.com/iyunseong/mental-n-fit-sub000/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBodySaveUpsertOverwrites(t *testing.T) {
	db := newTestDB(t)
	userID := createTestUser(t, db)
	svc := services.NewBodyService(db)
	ctx := context.Background()

	_, err := svc.Save(ctx, userID, day(0), services.BodyCompositionInput{
		WeightKg:          floatPtr(80.5),
		BodyFatPercentage: floatPtr(21.0),
	})
	require.NoError(t, err)

	row, err := svc.Save(ctx, userID, day(0), services.BodyCompositionInput{
		WeightKg:             floatPtr(80.1),
		SkeletalMuscleMassKg: floatPtr(35.2),
	})
	require.NoError(t, err)

	require.NotNil(t, row.WeightKg)
	assert.Equal(t, 80.1, *row.WeightKg)
	require.NotNil(t, row.SkeletalMuscleMassKg)
	assert.Equal(t, 35.2, *row.SkeletalMuscleMassKg)
	assert.Nil(t, row.BodyFatPercentage) // overwritten away, not merged

	var count int64
	require.NoError(t, db.Model(&models.BodyCompositionLog{}).
		Where("user_id = ?", userID).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestBodyGetByDateMissing(t *testing.T) {
	db := newTestDB(t)
	userID := createTestUser(t, db)
	svc := services.NewBodyService(db)

	row, err := svc.GetByDate(context.Background(), userID, day(-5))
	require.NoError(t, err)
	assert.Nil(t, row)
}
