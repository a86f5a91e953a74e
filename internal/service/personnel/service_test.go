package personnel

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ptcpms/personnel-backend-go/internal/domain/personnel"
	"github.com/ptcpms/personnel-backend-go/internal/pkg/validator"
)

type fakeRepo struct {
	rows map[string]personnel.Personnel
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{rows: make(map[string]personnel.Personnel)}
}

func (f *fakeRepo) Create(_ context.Context, p personnel.Personnel) (personnel.Personnel, error) {
	f.rows[p.ID] = p
	return p, nil
}

func (f *fakeRepo) Restore(_ context.Context, p personnel.Personnel) error {
	f.rows[p.ID] = p
	return nil
}

func (f *fakeRepo) GetByID(_ context.Context, ptype personnel.Type, id string) (personnel.Personnel, error) {
	p, ok := f.rows[id]
	if !ok || p.Type != ptype {
		return personnel.Personnel{}, personnel.ErrPersonnelNotFound
	}
	return p, nil
}

func (f *fakeRepo) GetByIDs(_ context.Context, ptype personnel.Type, ids []string) ([]personnel.Personnel, error) {
	var out []personnel.Personnel
	for _, id := range ids {
		if p, ok := f.rows[id]; ok && p.Type == ptype {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakeRepo) GetByPNO(_ context.Context, ptype personnel.Type, pno string) (personnel.Personnel, error) {
	for _, p := range f.rows {
		if p.Type == ptype && p.PNO == pno {
			return p, nil
		}
	}
	return personnel.Personnel{}, personnel.ErrPersonnelNotFound
}

func (f *fakeRepo) List(_ context.Context, ptype personnel.Type) ([]personnel.Personnel, error) {
	var out []personnel.Personnel
	for _, p := range f.rows {
		if p.Type == ptype {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakeRepo) Update(_ context.Context, ptype personnel.Type, id string, req personnel.UpdatePersonnelRequest) error {
	p, ok := f.rows[id]
	if !ok || p.Type != ptype {
		return personnel.ErrPersonnelNotFound
	}
	p.Name = req.Name
	p.Rank = req.Rank
	f.rows[id] = p
	return nil
}

func (f *fakeRepo) Delete(_ context.Context, ptype personnel.Type, id string) error {
	p, ok := f.rows[id]
	if !ok || p.Type != ptype {
		return personnel.ErrPersonnelNotFound
	}
	delete(f.rows, id)
	return nil
}

func (f *fakeRepo) DeleteMany(_ context.Context, _ personnel.Type, ids []string) (int64, error) {
	var n int64
	for _, id := range ids {
		if _, ok := f.rows[id]; ok {
			delete(f.rows, id)
			n++
		}
	}
	return n, nil
}

func (f *fakeRepo) ExistsByPNO(_ context.Context, ptype personnel.Type, pno string) (bool, error) {
	_, err := f.GetByPNO(context.Background(), ptype, pno)
	return err == nil, nil
}

func ptr(s string) *string { return &s }

func TestRegister(t *testing.T) {
	ctx := context.Background()
	repo := newFakeRepo()
	svc := NewPersonnelService(repo)

	req := personnel.CreatePersonnelRequest{
		PNO:           "30001",
		Name:          "Anita Sharma",
		Rank:          "Recruit Constable",
		ChestNo:       ptr("42"),
		DateOfJoining: ptr("2026-01-15"),
	}

	created, err := svc.Register(ctx, personnel.TypeTrainee, req)
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, personnel.TypeTrainee, created.Type)
	require.NotNil(t, created.DateOfJoining)
	assert.Equal(t, "2026-01-15", created.DateOfJoining.Format("2006-01-02"))

	t.Run("duplicate pno within type is a conflict", func(t *testing.T) {
		_, err := svc.Register(ctx, personnel.TypeTrainee, req)
		assert.ErrorIs(t, err, personnel.ErrPNOExists)
	})

	t.Run("same pno as staff is allowed", func(t *testing.T) {
		staffReq := req
		staffReq.ChestNo = nil
		_, err := svc.Register(ctx, personnel.TypeStaff, staffReq)
		assert.NoError(t, err)
	})

	t.Run("invalid type is rejected", func(t *testing.T) {
		_, err := svc.Register(ctx, personnel.Type("cadet"), req)
		assert.ErrorIs(t, err, personnel.ErrInvalidPersonnelType)
	})

	t.Run("validation failures surface field errors", func(t *testing.T) {
		_, err := svc.Register(ctx, personnel.TypeTrainee, personnel.CreatePersonnelRequest{})
		var errs validator.ValidationErrors
		assert.ErrorAs(t, err, &errs)
	})
}

func TestUpdateNormalizesBlankDates(t *testing.T) {
	ctx := context.Background()
	repo := newFakeRepo()
	svc := NewPersonnelService(repo)

	created, err := svc.Register(ctx, personnel.TypeStaff, personnel.CreatePersonnelRequest{
		PNO:  "30002",
		Name: "Vikram Singh",
		Rank: "Inspector",
	})
	require.NoError(t, err)

	req := personnel.UpdatePersonnelRequest{
		Name:          "Vikram Singh",
		Rank:          "Inspector",
		DateOfJoining: ptr(""),
	}
	require.NoError(t, svc.Update(ctx, personnel.TypeStaff, created.ID, req))
}

func TestDeleteUnknownPersonnel(t *testing.T) {
	svc := NewPersonnelService(newFakeRepo())
	err := svc.Delete(context.Background(), personnel.TypeStaff, "ghost")
	assert.ErrorIs(t, err, personnel.ErrPersonnelNotFound)
}
