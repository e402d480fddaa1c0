package domain

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateProgress(t *testing.T) {
	tests := []struct {
		name     string
		progress int
		wantErr  bool
	}{
		{"성공: 0", 0, false},
		{"성공: 100", 100, false},
		{"성공: 중간값", 57, false},
		{"실패: 음수", -1, true},
		{"실패: 100 초과", 101, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateProgress(tt.progress)
			if tt.wantErr {
				assert.True(t, errors.Is(err, ErrValidation))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2026-02-10")
	require.NoError(t, err)
	require.NotNil(t, d)
	assert.Equal(t, Date(2026, time.February, 10), *d)

	empty, err := ParseDate("  ")
	require.NoError(t, err)
	assert.Nil(t, empty)

	_, err = ParseDate("2026/02/10")
	assert.True(t, errors.Is(err, ErrValidation))
}

func TestFormatDate(t *testing.T) {
	assert.Nil(t, FormatDate(nil))
	assert.Equal(t, "2026-09-30", *FormatDate(DatePtr(2026, time.September, 30)))
}

func TestValidateDateRange(t *testing.T) {
	assert.NoError(t, ValidateDateRange(nil, DatePtr(2026, 1, 1)))
	assert.NoError(t, ValidateDateRange(DatePtr(2026, 1, 1), DatePtr(2026, 1, 1)))
	assert.Error(t, ValidateDateRange(DatePtr(2026, 2, 1), DatePtr(2026, 1, 1)))
}

func TestEnumValidity(t *testing.T) {
	assert.True(t, GoalTypeFeedback.Valid())
	assert.False(t, GoalType("epic").Valid())
	assert.True(t, MemberTypeNew.Valid())
	assert.False(t, MemberType("contractor").Valid())
	assert.True(t, IdeaStatusConverted.Valid())
	assert.False(t, IdeaStatus("archived").Valid())
	assert.True(t, PriorityLow.Valid())
	assert.False(t, Priority(4).Valid())
}
