package usecase

import (
	"context"
	"fmt"
	"strings"

	"civicpulse/internal/domain"
)

// DirectoryUseCase ведет справочник должностных лиц, должностей и их
// деятельности.
type DirectoryUseCase struct {
	storage      DirectoryStorage
	defaultLimit int
}

func NewDirectoryUseCase(s DirectoryStorage, defaultLimit int) *DirectoryUseCase {
	return &DirectoryUseCase{storage: s, defaultLimit: defaultLimit}
}

func (uc *DirectoryUseCase) CreatePerson(ctx context.Context, p domain.Person) (domain.Person, error) {
	const op = "usecase.directory.CreatePerson"
	if strings.TrimSpace(p.FullName) == "" {
		return domain.Person{}, domain.Invalid("full_name", "is required")
	}
	p.ID = 0
	saved, err := uc.storage.CreatePerson(ctx, p)
	if err != nil {
		return domain.Person{}, fmt.Errorf("%s: %w", op, err)
	}
	return saved, nil
}

func (uc *DirectoryUseCase) GetPerson(ctx context.Context, id int64) (domain.Person, error) {
	const op = "usecase.directory.GetPerson"
	p, err := uc.storage.GetPerson(ctx, id)
	if err != nil {
		return domain.Person{}, fmt.Errorf("%s: %w", op, err)
	}
	return p, nil
}

func (uc *DirectoryUseCase) ListPersons(ctx context.Context, f domain.PersonFilter) ([]domain.Person, error) {
	f.Limit = limitOr(f.Limit, uc.defaultLimit)
	return uc.storage.ListPersons(ctx, f)
}

func (uc *DirectoryUseCase) CreateOffice(ctx context.Context, o domain.Office) (domain.Office, error) {
	const op = "usecase.directory.CreateOffice"
	switch {
	case strings.TrimSpace(o.Name) == "":
		return domain.Office{}, domain.Invalid("name", "is required")
	case strings.TrimSpace(o.Jurisdiction) == "":
		return domain.Office{}, domain.Invalid("jurisdiction", "is required")
	case strings.TrimSpace(o.Level) == "":
		return domain.Office{}, domain.Invalid("level", "is required")
	}
	o.ID = 0
	saved, err := uc.storage.CreateOffice(ctx, o)
	if err != nil {
		return domain.Office{}, fmt.Errorf("%s: %w", op, err)
	}
	return saved, nil
}

func (uc *DirectoryUseCase) ListOffices(ctx context.Context, f domain.OfficeFilter) ([]domain.Office, error) {
	f.Limit = limitOr(f.Limit, uc.defaultLimit)
	return uc.storage.ListOffices(ctx, f)
}

// CreateTerm сохраняет срок. Ссылки на человека и должность проверяет хранилище.
func (uc *DirectoryUseCase) CreateTerm(ctx context.Context, t domain.Term) (domain.Term, error) {
	const op = "usecase.directory.CreateTerm"
	if t.PersonID <= 0 {
		return domain.Term{}, domain.Invalid("person_id", "is required")
	}
	if t.OfficeID <= 0 {
		return domain.Term{}, domain.Invalid("office_id", "is required")
	}
	if t.StartDate != nil && t.EndDate != nil && t.EndDate.Before(*t.StartDate) {
		return domain.Term{}, domain.Invalid("end_date", "must not be before start_date")
	}
	t.ID = 0
	saved, err := uc.storage.CreateTerm(ctx, t)
	if err != nil {
		return domain.Term{}, fmt.Errorf("%s: %w", op, err)
	}
	return saved, nil
}

// ListIncumbents выдает действующие сроки; пустая юрисдикция отключает фильтр.
func (uc *DirectoryUseCase) ListIncumbents(ctx context.Context, jurisdiction string) ([]domain.Incumbent, error) {
	return uc.storage.ListIncumbents(ctx, jurisdiction)
}

func (uc *DirectoryUseCase) CreateAction(ctx context.Context, a domain.Action) (domain.Action, error) {
	const op = "usecase.directory.CreateAction"
	if a.PersonID <= 0 {
		return domain.Action{}, domain.Invalid("person_id", "is required")
	}
	if strings.TrimSpace(a.Title) == "" {
		return domain.Action{}, domain.Invalid("title", "is required")
	}
	a.ID = 0
	saved, err := uc.storage.CreateAction(ctx, a)
	if err != nil {
		return domain.Action{}, fmt.Errorf("%s: %w", op, err)
	}
	return saved, nil
}

func (uc *DirectoryUseCase) ListActions(ctx context.Context, f domain.ActionFilter) ([]domain.Action, error) {
	f.Limit = limitOr(f.Limit, uc.defaultLimit)
	return uc.storage.ListActions(ctx, f)
}

func (uc *DirectoryUseCase) CreatePosition(ctx context.Context, p domain.Position) (domain.Position, error) {
	const op = "usecase.directory.CreatePosition"
	if p.PersonID <= 0 {
		return domain.Position{}, domain.Invalid("person_id", "is required")
	}
	if strings.TrimSpace(p.Topic) == "" {
		return domain.Position{}, domain.Invalid("topic", "is required")
	}
	p.ID = 0
	saved, err := uc.storage.CreatePosition(ctx, p)
	if err != nil {
		return domain.Position{}, fmt.Errorf("%s: %w", op, err)
	}
	return saved, nil
}

func (uc *DirectoryUseCase) ListPositions(ctx context.Context, f domain.PositionFilter) ([]domain.Position, error) {
	f.Limit = limitOr(f.Limit, uc.defaultLimit)
	return uc.storage.ListPositions(ctx, f)
}
