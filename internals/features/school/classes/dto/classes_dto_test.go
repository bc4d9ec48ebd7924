package dto

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"sekolahku_backend/internals/features/school/classes/model"
)

func TestCreateClassRequestToModel(t *testing.T) {
	req := CreateClassRequest{
		ClassBranchID:      uuid.New(),
		ClassName:          "Coding Dasar A",
		ClassStartDate:     "2026-04-01",
		ClassEndDate:       "2026-06-30",
		ClassTotalSessions: 12,
		ClassMaxStudents:   10,
	}
	m, err := req.ToModel()
	assert.NoError(t, err)
	assert.Equal(t, model.ClassStatusDraft, m.ClassStatus)
	assert.Equal(t, "Coding Dasar A", m.ClassName)
	assert.Equal(t, 12, m.ClassTotalSessions)

	// end sebelum start ditolak
	req.ClassEndDate = "2026-03-01"
	_, err = req.ToModel()
	assert.Error(t, err)

	req.ClassEndDate = "30/06/2026"
	_, err = req.ToModel()
	assert.Error(t, err)
}

func TestUpdateClassRequestApply(t *testing.T) {
	m := &model.ClassModel{
		ClassName:   "Lama",
		ClassStatus: model.ClassStatusDraft,
	}
	name := "  Baru  "
	status := model.ClassStatusPublished
	req := UpdateClassRequest{ClassName: &name, ClassStatus: &status}

	assert.NoError(t, req.ApplyToModel(m))
	assert.Equal(t, "Baru", m.ClassName)
	assert.Equal(t, model.ClassStatusPublished, m.ClassStatus)

	bad := "2026/01/01"
	req = UpdateClassRequest{ClassStartDate: &bad}
	assert.Error(t, req.ApplyToModel(m))
}
