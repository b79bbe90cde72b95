package sqlite

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"punchclock/internal/errors"
)

// MockResult implements sql.Result for testing
type MockResult struct {
	lastInsertID int64
	rowsAffected int64
	insertErr    error
	rowsErr      error
}

func (mr *MockResult) LastInsertId() (int64, error) {
	return mr.lastInsertID, mr.insertErr
}

func (mr *MockResult) RowsAffected() (int64, error) {
	return mr.rowsAffected, mr.rowsErr
}

func TestHandleDatabaseError(t *testing.T) {
	originalErr := stderrors.New("database connection failed")
	result := HandleDatabaseError("insert span", originalErr)

	assert.True(t, errors.IsErrorType(result, errors.ErrorTypePersistence))
	assert.Contains(t, result.Error(), "insert span")
	assert.Contains(t, result.Error(), "database connection failed")
}

func TestValidateRowsAffected(t *testing.T) {
	tests := []struct {
		name        string
		result      *MockResult
		expectError bool
		notFound    bool
	}{
		{
			name:   "should pass when rows were affected",
			result: &MockResult{rowsAffected: 1},
		},
		{
			name:        "should report not found when nothing was affected",
			result:      &MockResult{rowsAffected: 0},
			expectError: true,
			notFound:    true,
		},
		{
			name:        "should wrap a rows-affected failure",
			result:      &MockResult{rowsErr: stderrors.New("driver error")},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateRowsAffected(tt.result, "pending entry", "chat-42")
			if !tt.expectError {
				assert.NoError(t, err)
				return
			}
			assert.Error(t, err)
			assert.Equal(t, tt.notFound, errors.IsErrorType(err, errors.ErrorTypeNotFound))
		})
	}
}
