package personnel

import "context"

type Repository interface {
	Create(ctx context.Context, p Personnel) (Personnel, error)
	// Restore inserts a row preserving the caller-supplied ID. Used when a
	// record comes back from the archive so historical attendance and leave
	// rows keep pointing at the same personnel id.
	Restore(ctx context.Context, p Personnel) error
	GetByID(ctx context.Context, ptype Type, id string) (Personnel, error)
	GetByIDs(ctx context.Context, ptype Type, ids []string) ([]Personnel, error)
	GetByPNO(ctx context.Context, ptype Type, pno string) (Personnel, error)
	List(ctx context.Context, ptype Type) ([]Personnel, error)
	Update(ctx context.Context, ptype Type, id string, req UpdatePersonnelRequest) error
	Delete(ctx context.Context, ptype Type, id string) error
	// DeleteMany removes the given ids in one statement and reports how many
	// rows went away.
	DeleteMany(ctx context.Context, ptype Type, ids []string) (int64, error)
	ExistsByPNO(ctx context.Context, ptype Type, pno string) (bool, error)
}
