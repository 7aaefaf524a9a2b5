package mapper

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskboard/internal/domain/entity"
	"taskboard/pkg/nullable"
	"taskboard/pkg/sentinel"
)

func TestStatusFromCreate(t *testing.T) {
	st, err := StatusFromCreate(TaskStatusCreateDTO{Name: "Draft", Slug: "draft"})
	require.NoError(t, err)
	assert.Equal(t, "Draft", st.Name)
	assert.Equal(t, "draft", st.Slug)
}

func TestStatusFromCreateRejectsBlank(t *testing.T) {
	_, err := StatusFromCreate(TaskStatusCreateDTO{Name: "", Slug: ""})
	require.Error(t, err)
	var verr *sentinel.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "name")
	assert.Contains(t, verr.Fields, "slug")
}

func TestApplyStatusUpdatePartial(t *testing.T) {
	st := &entity.TaskStatus{Name: "Draft", Slug: "draft"}
	require.NoError(t, ApplyStatusUpdate(TaskStatusUpdateDTO{Name: nullable.Of("Drafting")}, st))
	assert.Equal(t, "Drafting", st.Name)
	assert.Equal(t, "draft", st.Slug)
}

func TestApplyStatusUpdateRejectsNull(t *testing.T) {
	st := &entity.TaskStatus{Name: "Draft", Slug: "draft"}
	err := ApplyStatusUpdate(TaskStatusUpdateDTO{Slug: nullable.Null[string]()}, st)
	require.Error(t, err)
	assert.True(t, sentinel.IsValidation(err))
	assert.Equal(t, "draft", st.Slug)
}

func TestLabelFromCreateBounds(t *testing.T) {
	_, err := LabelFromCreate(LabelCreateDTO{Name: "ab"})
	assert.True(t, sentinel.IsValidation(err))

	l, err := LabelFromCreate(LabelCreateDTO{Name: "bug"})
	require.NoError(t, err)
	assert.Equal(t, "bug", l.Name)
}

func TestApplyLabelUpdate(t *testing.T) {
	l := &entity.Label{Name: "bug"}
	require.NoError(t, ApplyLabelUpdate(LabelUpdateDTO{Name: nullable.Of("defect")}, l))
	assert.Equal(t, "defect", l.Name)

	err := ApplyLabelUpdate(LabelUpdateDTO{Name: nullable.Null[string]()}, l)
	require.Error(t, err)
	assert.Equal(t, "defect", l.Name)
}
