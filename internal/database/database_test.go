package database

import (
	"testing"

	"hall-of-fame-backend/internal/database/models"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestDialector(t *testing.T) {
	for _, driver := range []string{"postgres", "mysql", "sqlserver", "sqlite", ""} {
		d, err := Dialector(driver, "dsn")
		require.NoError(t, err, driver)
		assert.NotNil(t, d)
	}

	_, err := Dialector("oracle", "dsn")
	assert.Error(t, err)
}

func TestQueryLogGoesThroughLogrus(t *testing.T) {
	hook := test.NewGlobal()
	defer hook.Reset()

	db, err := Initialize("sqlite", "file::memory:", nil)
	require.NoError(t, err)
	hook.Reset()

	var doc models.StoredDocument
	err = db.Where("collection = ? AND id = ?", "inductees", "missing").First(&doc).Error
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)
	assert.Empty(t, hook.AllEntries())

	require.Error(t, db.Exec("SELECT * FROM no_such_table").Error)
	require.NotEmpty(t, hook.AllEntries())
	assert.Equal(t, "gorm", hook.LastEntry().Data["component"])
}
