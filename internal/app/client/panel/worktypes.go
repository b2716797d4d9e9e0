package panel

import (
	"context"
	"slices"
	"strings"
	"sync"

	"golang.org/x/exp/slog"

	"goldkeeper/internal/domain/worktype"
)

type WorkTypeForm struct {
	Name        string
	Description string
	IsActive    bool
}

type WorkTypePanel struct {
	api    WorkTypesAPI
	notify notifier
	log    *slog.Logger

	mu     sync.Mutex
	items  []worktype.WorkType
	mode   Mode
	form   WorkTypeForm
	target worktype.WorkType
}

func NewWorkTypePanel(api WorkTypesAPI, n Notifier, log *slog.Logger) *WorkTypePanel {
	return &WorkTypePanel{
		api:    api,
		notify: notifier{n},
		log:    log.With(slog.String("panel", "work_types")),
	}
}

func (p *WorkTypePanel) Load(ctx context.Context) error {
	items, err := p.api.ListWorkTypes(ctx)
	if err != nil {
		p.notify.fail("Не удалось загрузить типы работ", err)
		return err
	}

	p.mu.Lock()
	p.items = items
	p.mu.Unlock()
	return nil
}

func (p *WorkTypePanel) WorkTypes() []worktype.WorkType {
	p.mu.Lock()
	defer p.mu.Unlock()
	return slices.Clone(p.items)
}

func (p *WorkTypePanel) Mode() Mode {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.mode
}

func (p *WorkTypePanel) Form() WorkTypeForm {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.form
}

func (p *WorkTypePanel) SetForm(f WorkTypeForm) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.mode != ModeCreate && p.mode != ModeEdit {
		return ErrNoDialog
	}
	p.form = f
	return nil
}

func (p *WorkTypePanel) OpenCreate() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.mode = ModeCreate
	p.target = worktype.WorkType{}
	p.form = WorkTypeForm{IsActive: true}
}

func (p *WorkTypePanel) OpenEdit(wt worktype.WorkType) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.mode = ModeEdit
	p.target = wt
	p.form = WorkTypeForm{Name: wt.Name, Description: wt.Description, IsActive: wt.IsActive}
}

func (p *WorkTypePanel) Cancel() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.mode = ModeClosed
	p.form = WorkTypeForm{}
	p.target = worktype.WorkType{}
}

// Submit проверяет только непустое название
func (p *WorkTypePanel) Submit(ctx context.Context) error {
	p.mu.Lock()
	mode, f, target := p.mode, p.form, p.target
	p.mu.Unlock()

	if mode != ModeCreate && mode != ModeEdit {
		return ErrNoDialog
	}

	name := strings.TrimSpace(f.Name)
	if name == "" {
		p.notify.warn("Укажите название", "Название типа работ обязательно")
		return ErrValidation
	}
	description := strings.TrimSpace(f.Description)
	active := f.IsActive

	var (
		saved worktype.WorkType
		err   error
	)
	if mode == ModeCreate {
		saved, err = p.api.CreateWorkType(ctx, worktype.CreateRequest{Name: name, Description: description, IsActive: &active})
	} else {
		saved, err = p.api.UpdateWorkType(ctx, target.ID, worktype.UpdateRequest{Name: &name, Description: &description, IsActive: &active})
	}
	if err != nil {
		p.notify.fail("Не удалось сохранить тип работ", err)
		return err
	}

	if mode == ModeCreate {
		p.notify.success("Тип работ создан", saved.Name)
	} else {
		p.notify.success("Тип работ обновлен", saved.Name)
	}
	return p.finish(ctx)
}

func (p *WorkTypePanel) RequestDelete(wt worktype.WorkType) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.mode = ModeConfirmDelete
	p.target = wt
}

func (p *WorkTypePanel) ConfirmDelete(ctx context.Context) error {
	p.mu.Lock()
	mode, target := p.mode, p.target
	p.mu.Unlock()
	if mode != ModeConfirmDelete {
		return ErrNotConfirming
	}

	if err := p.api.DeleteWorkType(ctx, target.ID); err != nil {
		p.notify.fail("Не удалось удалить тип работ", err)
		p.Cancel()
		return err
	}

	p.notify.success("Тип работ удален", target.Name)
	return p.finish(ctx)
}

func (p *WorkTypePanel) finish(ctx context.Context) error {
	p.Cancel()
	if err := p.Load(ctx); err != nil {
		p.log.Warn("reload after mutation failed", "error", err)
	}
	return nil
}
