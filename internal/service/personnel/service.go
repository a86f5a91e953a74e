package personnel

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/ptcpms/personnel-backend-go/internal/domain/personnel"
)

type Service struct {
	repo personnel.Repository
}

func NewPersonnelService(repo personnel.Repository) *Service {
	return &Service{repo: repo}
}

func parseDatePtr(s *string) *time.Time {
	if s == nil || *s == "" {
		return nil
	}
	t, err := time.Parse("2006-01-02", *s)
	if err != nil {
		return nil
	}
	return &t
}

// Register creates a new staff or trainee record. PNO is the business key;
// a duplicate within the same personnel type is a conflict, not a generic
// storage failure.
func (s *Service) Register(ctx context.Context, ptype personnel.Type, req personnel.CreatePersonnelRequest) (personnel.Personnel, error) {
	if !ptype.Valid() {
		return personnel.Personnel{}, personnel.ErrInvalidPersonnelType
	}
	if err := req.Validate(ptype); err != nil {
		return personnel.Personnel{}, err
	}

	exists, err := s.repo.ExistsByPNO(ctx, ptype, req.PNO)
	if err != nil {
		return personnel.Personnel{}, fmt.Errorf("failed to check existing pno: %w", err)
	}
	if exists {
		return personnel.Personnel{}, personnel.ErrPNOExists
	}

	p := personnel.Personnel{
		ID:                     uuid.NewString(),
		Type:                   ptype,
		PNO:                    req.PNO,
		Name:                   req.Name,
		FatherName:             req.FatherName,
		Rank:                   req.Rank,
		MobileNumber:           req.MobileNumber,
		Education:              req.Education,
		DateOfBirth:            parseDatePtr(req.DateOfBirth),
		DateOfJoining:          parseDatePtr(req.DateOfJoining),
		BloodGroup:             req.BloodGroup,
		Nominee:                req.Nominee,
		HomeAddress:            req.HomeAddress,
		CurrentPostingDistrict: req.CurrentPostingDistrict,
		PhotoURL:               req.PhotoURL,
		ToliNo:                 req.ToliNo,
		ChestNo:                req.ChestNo,
		ArrivalDate:            parseDatePtr(req.ArrivalDate),
		DepartureDate:          parseDatePtr(req.DepartureDate),
		ClassNo:                req.ClassNo,
		ClassSubject:           req.ClassSubject,
	}

	created, err := s.repo.Create(ctx, p)
	if err != nil {
		return personnel.Personnel{}, err
	}

	return created, nil
}

func (s *Service) GetByID(ctx context.Context, ptype personnel.Type, id string) (personnel.Personnel, error) {
	if !ptype.Valid() {
		return personnel.Personnel{}, personnel.ErrInvalidPersonnelType
	}
	return s.repo.GetByID(ctx, ptype, id)
}

func (s *Service) GetByPNO(ctx context.Context, ptype personnel.Type, pno string) (personnel.Personnel, error) {
	if !ptype.Valid() {
		return personnel.Personnel{}, personnel.ErrInvalidPersonnelType
	}
	return s.repo.GetByPNO(ctx, ptype, pno)
}

func (s *Service) List(ctx context.Context, ptype personnel.Type) ([]personnel.Personnel, error) {
	if !ptype.Valid() {
		return nil, personnel.ErrInvalidPersonnelType
	}
	return s.repo.List(ctx, ptype)
}

func (s *Service) Update(ctx context.Context, ptype personnel.Type, id string, req personnel.UpdatePersonnelRequest) error {
	if !ptype.Valid() {
		return personnel.ErrInvalidPersonnelType
	}
	if err := req.Validate(); err != nil {
		return err
	}

	// Blank optional date strings would not cast to DATE columns.
	for _, field := range []**string{&req.DateOfBirth, &req.DateOfJoining, &req.ArrivalDate, &req.DepartureDate} {
		if *field != nil && **field == "" {
			*field = nil
		}
	}

	return s.repo.Update(ctx, ptype, id, req)
}

// Delete removes a personnel row permanently. Archival is the usual path;
// this is for records created in error.
func (s *Service) Delete(ctx context.Context, ptype personnel.Type, id string) error {
	if !ptype.Valid() {
		return personnel.ErrInvalidPersonnelType
	}
	return s.repo.Delete(ctx, ptype, id)
}
