package orgunit

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"patrimonio/internal/core/apperror"
	"patrimonio/internal/core/entity"
	"patrimonio/internal/core/id"
	"patrimonio/internal/domain"
)

// --- fakes ---

type fakeTxManager struct{}

func (m *fakeTxManager) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fakeProjects struct {
	byID   map[id.ID]*Project
	byCode map[string]*Project
}

func newFakeProjects() *fakeProjects {
	return &fakeProjects{byID: map[id.ID]*Project{}, byCode: map[string]*Project{}}
}

func (r *fakeProjects) Create(ctx context.Context, p *Project) error {
	cp := *p
	r.byID[p.ID] = &cp
	r.byCode[p.Code] = &cp
	return nil
}

func (r *fakeProjects) Update(ctx context.Context, p *Project) error {
	cp := *p
	r.byID[p.ID] = &cp
	r.byCode[p.Code] = &cp
	return nil
}

func (r *fakeProjects) GetByID(ctx context.Context, projectID id.ID) (*Project, error) {
	p, ok := r.byID[projectID]
	if !ok {
		return nil, apperror.NewNotFound("proyecto", projectID)
	}
	return p, nil
}

func (r *fakeProjects) GetByCode(ctx context.Context, code string) (*Project, error) {
	p, ok := r.byCode[code]
	if !ok {
		return nil, apperror.NewNotFound("proyecto", code)
	}
	return p, nil
}

func (r *fakeProjects) List(ctx context.Context, filter domain.ListFilter) (*domain.ListResult[*Project], error) {
	return &domain.ListResult[*Project]{}, nil
}

func (r *fakeProjects) Delete(ctx context.Context, projectID id.ID) error {
	delete(r.byID, projectID)
	return nil
}

type fakeBranches struct {
	byID map[id.ID]*Branch
}

func newFakeBranches() *fakeBranches {
	return &fakeBranches{byID: map[id.ID]*Branch{}}
}

func (r *fakeBranches) Create(ctx context.Context, b *Branch) error {
	cp := *b
	r.byID[b.ID] = &cp
	return nil
}

func (r *fakeBranches) Update(ctx context.Context, b *Branch) error {
	cp := *b
	r.byID[b.ID] = &cp
	return nil
}

func (r *fakeBranches) GetByID(ctx context.Context, branchID id.ID) (*Branch, error) {
	b, ok := r.byID[branchID]
	if !ok {
		return nil, apperror.NewNotFound("sucursal", branchID)
	}
	return b, nil
}

func (r *fakeBranches) GetByCode(ctx context.Context, code string) (*Branch, error) {
	for _, b := range r.byID {
		if b.Code == code {
			return b, nil
		}
	}
	return nil, apperror.NewNotFound("sucursal", code)
}

func (r *fakeBranches) CountByProject(ctx context.Context, projectID id.ID) (int64, error) {
	var n int64
	for _, b := range r.byID {
		if b.ProjectID == projectID {
			n++
		}
	}
	return n, nil
}

func (r *fakeBranches) CountAll(ctx context.Context) (int64, error) {
	return int64(len(r.byID)), nil
}

func (r *fakeBranches) List(ctx context.Context, filter BranchFilter) (*domain.ListResult[*Branch], error) {
	return &domain.ListResult[*Branch]{}, nil
}

func (r *fakeBranches) Delete(ctx context.Context, branchID id.ID) error {
	delete(r.byID, branchID)
	return nil
}

type fakeAreas struct {
	byID map[id.ID]*Area
}

func newFakeAreas() *fakeAreas {
	return &fakeAreas{byID: map[id.ID]*Area{}}
}

func (r *fakeAreas) Create(ctx context.Context, a *Area) error {
	cp := *a
	r.byID[a.ID] = &cp
	return nil
}

func (r *fakeAreas) Update(ctx context.Context, a *Area) error {
	cp := *a
	r.byID[a.ID] = &cp
	return nil
}

func (r *fakeAreas) GetByID(ctx context.Context, areaID id.ID) (*Area, error) {
	a, ok := r.byID[areaID]
	if !ok {
		return nil, apperror.NewNotFound("area", areaID)
	}
	return a, nil
}

func (r *fakeAreas) GetByCode(ctx context.Context, code string) (*Area, error) {
	for _, a := range r.byID {
		if a.Code == code {
			return a, nil
		}
	}
	return nil, apperror.NewNotFound("area", code)
}

func (r *fakeAreas) CountByBranch(ctx context.Context, branchID id.ID) (int64, error) {
	var n int64
	for _, a := range r.byID {
		if a.BranchID == branchID {
			n++
		}
	}
	return n, nil
}

func (r *fakeAreas) CountAll(ctx context.Context) (int64, error) {
	return int64(len(r.byID)), nil
}

func (r *fakeAreas) List(ctx context.Context, filter AreaFilter) (*domain.ListResult[*Area], error) {
	return &domain.ListResult[*Area]{}, nil
}

func (r *fakeAreas) Delete(ctx context.Context, areaID id.ID) error {
	delete(r.byID, areaID)
	return nil
}

type fakeResponsibles struct {
	byID map[id.ID]*Responsible
}

func newFakeResponsibles() *fakeResponsibles {
	return &fakeResponsibles{byID: map[id.ID]*Responsible{}}
}

func (r *fakeResponsibles) Create(ctx context.Context, p *Responsible) error {
	cp := *p
	r.byID[p.ID] = &cp
	return nil
}

func (r *fakeResponsibles) Update(ctx context.Context, p *Responsible) error {
	cp := *p
	r.byID[p.ID] = &cp
	return nil
}

func (r *fakeResponsibles) GetByID(ctx context.Context, responsibleID id.ID) (*Responsible, error) {
	p, ok := r.byID[responsibleID]
	if !ok {
		return nil, apperror.NewNotFound("responsable", responsibleID)
	}
	return p, nil
}

func (r *fakeResponsibles) GetByCode(ctx context.Context, code string) (*Responsible, error) {
	for _, p := range r.byID {
		if p.Code == code {
			return p, nil
		}
	}
	return nil, apperror.NewNotFound("responsable", code)
}

func (r *fakeResponsibles) CountByArea(ctx context.Context, areaID id.ID) (int64, error) {
	var n int64
	for _, p := range r.byID {
		if p.AreaID == areaID {
			n++
		}
	}
	return n, nil
}

func (r *fakeResponsibles) List(ctx context.Context, filter ResponsibleFilter) (*domain.ListResult[*Responsible], error) {
	return &domain.ListResult[*Responsible]{}, nil
}

func (r *fakeResponsibles) Delete(ctx context.Context, responsibleID id.ID) error {
	delete(r.byID, responsibleID)
	return nil
}

// --- helpers ---

func newTestService() (*Service, *fakeProjects, *fakeBranches, *fakeAreas, *fakeResponsibles) {
	projects := newFakeProjects()
	branches := newFakeBranches()
	areas := newFakeAreas()
	responsibles := newFakeResponsibles()
	svc := NewService(projects, branches, areas, responsibles, &fakeTxManager{})
	return svc, projects, branches, areas, responsibles
}

func seedProject(t *testing.T, svc *Service, code string) *Project {
	t.Helper()
	p := &Project{
		Code:        code,
		Company:     "Financiera Andina",
		LegalName:   "Financiera Andina S.A.",
		Industry:    "Finanzas",
		StartedAt:   time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
		ContractAt:  time.Date(2025, 2, 15, 0, 0, 0, 0, time.UTC),
		ContractEnd: time.Date(2026, 2, 15, 0, 0, 0, 0, time.UTC),
		PlannedEnd:  time.Date(2026, 1, 31, 0, 0, 0, 0, time.UTC),
	}
	require.NoError(t, svc.CreateProject(context.Background(), p))
	return p
}

// --- tests ---

func TestCreateProject_DefaultsAndDuplicate(t *testing.T) {
	svc, projects, _, _, _ := newTestService()
	ctx := context.Background()

	p := seedProject(t, svc, "PRY-001")
	assert.Equal(t, ProjectRunning, p.Status)
	assert.False(t, id.IsNil(p.ID))
	require.Contains(t, projects.byCode, "PRY-001")

	dup := seedProjectInput("PRY-001")
	err := svc.CreateProject(ctx, dup)
	require.Error(t, err)
	appErr, ok := apperror.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperror.CodeDuplicate, appErr.Code)
}

func seedProjectInput(code string) *Project {
	return &Project{
		Code:        code,
		Company:     "Financiera Andina",
		LegalName:   "Financiera Andina S.A.",
		Industry:    "Finanzas",
		StartedAt:   time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
		ContractAt:  time.Date(2025, 2, 15, 0, 0, 0, 0, time.UTC),
		ContractEnd: time.Date(2026, 2, 15, 0, 0, 0, 0, time.UTC),
		PlannedEnd:  time.Date(2026, 1, 31, 0, 0, 0, 0, time.UTC),
	}
}

func TestCreateBranch_GeneratesSequentialCodes(t *testing.T) {
	svc, _, _, _, _ := newTestService()
	ctx := context.Background()
	p := seedProject(t, svc, "PRY-001")

	first := &Branch{
		ProjectID:  p.ID,
		Name:       "Agencia Miraflores",
		Department: "Lima",
		Province:   "Lima",
		District:   "Miraflores",
	}
	require.NoError(t, svc.CreateBranch(ctx, first))
	assert.Equal(t, "PRY-001-1", first.Code)
	assert.Equal(t, "R1", first.ResponsibleCode)

	second := &Branch{
		ProjectID:  p.ID,
		Name:       "Agencia Surco",
		Department: "Lima",
		Province:   "Lima",
		District:   "Santiago de Surco",
	}
	require.NoError(t, svc.CreateBranch(ctx, second))
	assert.Equal(t, "PRY-001-2", second.Code)
	assert.Equal(t, "R2", second.ResponsibleCode)
}

func TestCreateBranch_ResponsibleCounterIsGlobal(t *testing.T) {
	svc, _, _, _, _ := newTestService()
	ctx := context.Background()
	p1 := seedProject(t, svc, "PRY-001")
	p2 := seedProject(t, svc, "PRY-002")

	b1 := &Branch{ProjectID: p1.ID, Name: "Agencia Centro", Department: "Lima", Province: "Lima", District: "Cercado"}
	require.NoError(t, svc.CreateBranch(ctx, b1))

	// first branch of the second project: per-project ordinal restarts,
	// the responsible counter does not
	b2 := &Branch{ProjectID: p2.ID, Name: "Agencia Norte", Department: "Piura", Province: "Piura", District: "Piura"}
	require.NoError(t, svc.CreateBranch(ctx, b2))
	assert.Equal(t, "PRY-002-1", b2.Code)
	assert.Equal(t, "R2", b2.ResponsibleCode)
}

func TestCreateBranch_UnknownProject(t *testing.T) {
	svc, _, _, _, _ := newTestService()

	b := &Branch{ProjectID: id.New(), Name: "Agencia Sur", Department: "Arequipa", Province: "Arequipa", District: "Cayma"}
	err := svc.CreateBranch(context.Background(), b)
	require.Error(t, err)
	appErr, ok := apperror.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperror.CodeInvalidReference, appErr.Code)
}

func TestCreateArea_InheritsProjectAndChainsCode(t *testing.T) {
	svc, _, _, _, _ := newTestService()
	ctx := context.Background()
	p := seedProject(t, svc, "PRY-001")

	b := &Branch{ProjectID: p.ID, Name: "Agencia Miraflores", Department: "Lima", Province: "Lima", District: "Miraflores"}
	require.NoError(t, svc.CreateBranch(ctx, b))

	a := &Area{BranchID: b.ID, Name: "Logística"}
	require.NoError(t, svc.CreateArea(ctx, a))
	assert.Equal(t, p.ID, a.ProjectID)
	assert.Equal(t, "PRY-001-1-1", a.Code)
	assert.Equal(t, "R1", a.ResponsibleCode)
}

func TestCreateResponsible_ScopedToArea(t *testing.T) {
	svc, _, _, _, _ := newTestService()
	ctx := context.Background()
	p := seedProject(t, svc, "PRY-001")
	b := &Branch{ProjectID: p.ID, Name: "Agencia Miraflores", Department: "Lima", Province: "Lima", District: "Miraflores"}
	require.NoError(t, svc.CreateBranch(ctx, b))
	a := &Area{BranchID: b.ID, Name: "Logística"}
	require.NoError(t, svc.CreateArea(ctx, a))

	r := &Responsible{AreaID: a.ID, DNI: "45678912", Role: RoleLogisticsChief, Name: "María Quispe"}
	require.NoError(t, svc.CreateResponsible(ctx, r))
	assert.Equal(t, "PRY-001-1-1-1", r.Code)

	r2 := &Responsible{AreaID: a.ID, DNI: "12345678", Role: RoleBranchManager, Name: "Jorge Salas"}
	require.NoError(t, svc.CreateResponsible(ctx, r2))
	assert.Equal(t, "PRY-001-1-1-2", r2.Code)
}

func TestCreateResponsible_RejectsBadDNI(t *testing.T) {
	svc, _, _, _, _ := newTestService()

	r := &Responsible{AreaID: id.New(), DNI: "123", Role: RoleLogisticsChief, Name: "María Quispe"}
	err := svc.CreateResponsible(context.Background(), r)
	require.Error(t, err)
	appErr, ok := apperror.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperror.CodeValidation, appErr.Code)
}

func TestUpdateBranch_KeepsGeneratedCodes(t *testing.T) {
	svc, _, branches, _, _ := newTestService()
	ctx := context.Background()
	p := seedProject(t, svc, "PRY-001")
	b := &Branch{ProjectID: p.ID, Name: "Agencia Miraflores", Department: "Lima", Province: "Lima", District: "Miraflores"}
	require.NoError(t, svc.CreateBranch(ctx, b))

	upd := &Branch{
		Base:            entity.Base{ID: b.ID},
		Code:            "HACKED",
		ResponsibleCode: "R999",
		Name:            "Agencia Miraflores Norte",
		Department:      "Lima",
		Province:        "Lima",
		District:        "Miraflores",
	}
	require.NoError(t, svc.UpdateBranch(ctx, upd))

	stored := branches.byID[b.ID]
	assert.Equal(t, "PRY-001-1", stored.Code)
	assert.Equal(t, "R1", stored.ResponsibleCode)
	assert.Equal(t, "Agencia Miraflores Norte", stored.Name)
}
