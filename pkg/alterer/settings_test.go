package alterer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type (
	pagingSettings struct {
		PageSize int
	}

	mediaSettings struct {
		PageSize int
	}

	legacyPagingSettings struct {
		PageSize int
	}

	valueSettings struct {
		Size int
	}
)

func (s *pagingSettings) SettingsName() string       { return "PagingSettings" }
func (s *mediaSettings) SettingsName() string        { return "MediaSettings" }
func (s *legacyPagingSettings) SettingsName() string { return "PagingSettings" }
func (s valueSettings) SettingsName() string         { return "ValueSettings" }

func TestAlterSettings(t *testing.T) {
	paging := &pagingSettings{PageSize: 6}
	media := &mediaSettings{PageSize: 6}

	a, err := NewSettings([]Settings{paging, media})
	require.NoError(t, err)

	calls := 0
	AlterSettings(a, func(s *pagingSettings) {
		calls++
		s.PageSize = 12
	})

	assert.Equal(t, 1, calls)
	assert.Equal(t, 12, paging.PageSize)
	assert.Equal(t, 6, media.PageSize)
}

func TestAlterSettingsMissingType(t *testing.T) {
	a, err := NewSettings([]Settings{&pagingSettings{}})
	require.NoError(t, err)

	AlterSettings(a, func(s *mediaSettings) {
		assert.FailNow(t, "mutator called for a missing type")
	})
	assert.NoError(t, a.Err())

	strict, err := NewSettings([]Settings{&pagingSettings{}}, Strict())
	require.NoError(t, err)

	AlterSettings(strict, func(s *mediaSettings) {})
	assert.ErrorIs(t, strict.Err(), ErrNotFound)
}

func TestNewSettingsDuplicateType(t *testing.T) {
	a, err := NewSettings([]Settings{&pagingSettings{}, &mediaSettings{}, &pagingSettings{}})
	require.Error(t, err)
	assert.Nil(t, a)
	assert.ErrorIs(t, err, ErrDuplicateKey)
	assert.Contains(t, err.Error(), "pagingSettings")
}

func TestAlterNamed(t *testing.T) {
	media := &mediaSettings{PageSize: 6}

	a, err := NewSettings([]Settings{&pagingSettings{}, media})
	require.NoError(t, err)

	a.AlterNamed("MediaSettings", func(s Settings) {
		s.(*mediaSettings).PageSize = 3
	}).AlterNamed("Unknown", func(Settings) {
		assert.FailNow(t, "mutator called for a missing name")
	})

	assert.Equal(t, 3, media.PageSize)
	assert.NoError(t, a.Err())
}

func TestNewSettingsInvalid(t *testing.T) {
	tests := []struct {
		scenario string
		settings []Settings
	}{
		{scenario: "stored by value", settings: []Settings{&pagingSettings{}, valueSettings{Size: 1}}},
		{scenario: "nil interface", settings: []Settings{nil}},
		{scenario: "nil pointer", settings: []Settings{(*pagingSettings)(nil)}},
	}

	for _, test := range tests {
		t.Run(test.scenario, func(t *testing.T) {
			a, err := NewSettings(test.settings)
			require.Error(t, err)
			assert.Nil(t, a)
			assert.ErrorIs(t, err, ErrInvalidSettings)
		})
	}
}

func TestNewSettingsDuplicateName(t *testing.T) {
	a, err := NewSettings([]Settings{&pagingSettings{}, &legacyPagingSettings{}})
	require.Error(t, err)
	assert.Nil(t, a)

	var dupErr *DuplicateKeyError
	require.ErrorAs(t, err, &dupErr)
	assert.Equal(t, "PagingSettings", dupErr.Key)
}

func TestAlterSettingsReachesCallerData(t *testing.T) {
	settings := []Settings{&pagingSettings{PageSize: 1}}

	a, err := NewSettings(settings)
	require.NoError(t, err)

	AlterSettings(a, func(s *pagingSettings) { s.PageSize = 99 })

	assert.Equal(t, 99, settings[0].(*pagingSettings).PageSize)
}
