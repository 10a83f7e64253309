package asset

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"patrimonio/internal/core/apperror"
	"patrimonio/internal/core/id"
	"patrimonio/internal/core/sequence"
	"patrimonio/internal/domain"
	"patrimonio/internal/domain/audit"
)

// --- fakes ---

type fakeTxManager struct {
	calls  int
	failed bool
}

func (m *fakeTxManager) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	m.calls++
	if err := fn(ctx); err != nil {
		m.failed = true
		return err
	}
	return nil
}

type fakeRepo struct {
	assets    map[id.ID]*Asset
	details   map[id.ID]map[Category]*Details
	createErr error
	updateErr error
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		assets:  make(map[id.ID]*Asset),
		details: make(map[id.ID]map[Category]*Details),
	}
}

func (r *fakeRepo) Create(ctx context.Context, a *Asset) error {
	if r.createErr != nil {
		return r.createErr
	}
	cp := *a
	r.assets[a.ID] = &cp
	return nil
}

func (r *fakeRepo) Update(ctx context.Context, a *Asset) error {
	if r.updateErr != nil {
		return r.updateErr
	}
	cp := *a
	r.assets[a.ID] = &cp
	return nil
}

func (r *fakeRepo) GetByID(ctx context.Context, assetID id.ID) (*Asset, error) {
	a, ok := r.assets[assetID]
	if !ok {
		return nil, apperror.NewNotFound("inventario nuevo", assetID.String())
	}
	cp := *a
	return &cp, nil
}

func (r *fakeRepo) Delete(ctx context.Context, assetID id.ID) error {
	delete(r.assets, assetID)
	delete(r.details, assetID)
	return nil
}

func (r *fakeRepo) SaveDetails(ctx context.Context, assetID id.ID, category Category, details *Details) error {
	if r.details[assetID] == nil {
		r.details[assetID] = make(map[Category]*Details)
	}
	r.details[assetID][category] = details
	return nil
}

func (r *fakeRepo) GetDetails(ctx context.Context, assetID id.ID, category Category) (*Details, error) {
	return r.details[assetID][category], nil
}

func (r *fakeRepo) List(ctx context.Context, filter ListFilter) (domain.ListResult[*Asset], error) {
	out := domain.ListResult[*Asset]{Limit: filter.Limit, Offset: filter.Offset}
	for _, a := range r.assets {
		out.Items = append(out.Items, a)
	}
	out.TotalCount = int64(len(out.Items))
	return out, nil
}

type fakeOrigins struct {
	origins    map[id.ID]*Origin
	reconciled map[id.ID]string
}

func newFakeOrigins(origins ...*Origin) *fakeOrigins {
	f := &fakeOrigins{
		origins:    make(map[id.ID]*Origin),
		reconciled: make(map[id.ID]string),
	}
	for _, o := range origins {
		f.origins[o.ID] = o
	}
	return f
}

func (f *fakeOrigins) GetOrigin(ctx context.Context, originID id.ID) (*Origin, error) {
	o, ok := f.origins[originID]
	if !ok {
		return nil, apperror.NewNotFound("inventario", originID.String())
	}
	return o, nil
}

func (f *fakeOrigins) MarkReconciled(ctx context.Context, originID id.ID, assetFileCode string) error {
	f.reconciled[originID] = assetFileCode
	return nil
}

type fakeAudit struct {
	entries   []*audit.Entry
	appendErr error
}

func (f *fakeAudit) Append(ctx context.Context, entry *audit.Entry) error {
	if f.appendErr != nil {
		return f.appendErr
	}
	f.entries = append(f.entries, entry)
	return nil
}

func (f *fakeAudit) ListByAsset(ctx context.Context, assetID id.ID) ([]*audit.Entry, error) {
	var out []*audit.Entry
	for i := len(f.entries) - 1; i >= 0; i-- {
		if f.entries[i].AssetID == assetID {
			out = append(out, f.entries[i])
		}
	}
	return out, nil
}

func (f *fakeAudit) ListByUser(ctx context.Context, userID id.ID, from, to *time.Time) ([]*audit.Entry, error) {
	var out []*audit.Entry
	for i := len(f.entries) - 1; i >= 0; i-- {
		if f.entries[i].UserID == userID {
			out = append(out, f.entries[i])
		}
	}
	return out, nil
}

type fakeSeq struct {
	tagN, afN int
}

func (s *fakeSeq) NextTagCode(ctx context.Context, day time.Time) (string, error) {
	s.tagN++
	return sequence.Format(sequence.TagPrefix(day), s.tagN), nil
}

func (s *fakeSeq) NextAssetFileCode(ctx context.Context, day time.Time) (string, error) {
	s.afN++
	return sequence.Format(sequence.AssetFilePrefix(day), s.afN), nil
}

type env struct {
	svc     *Service
	repo    *fakeRepo
	origins *fakeOrigins
	audit   *fakeAudit
	seq     *fakeSeq
	txm     *fakeTxManager
}

func newEnv(origins ...*Origin) *env {
	e := &env{
		repo:    newFakeRepo(),
		origins: newFakeOrigins(origins...),
		audit:   &fakeAudit{},
		seq:     &fakeSeq{},
		txm:     &fakeTxManager{},
	}
	e.svc = NewService(e.repo, e.origins, e.audit, e.seq, e.txm)
	e.svc.now = func() time.Time {
		return time.Date(2025, time.November, 16, 10, 30, 0, 0, time.UTC)
	}
	return e
}

func strPtr(s string) *string { return &s }

func catPtr(c Category) *Category { return &c }

func validInput() RegisterInput {
	return RegisterInput{
		ProjectCode:     "PRY-001",
		BranchCode:      "PRY-001-1",
		AreaCode:        "PRY-001-1-2",
		Description:     "Laptop HP ProBook",
		ResponsibleCode: "R3",
		Location: Location{
			Lat: decimal.RequireFromString("-12.0500000"),
			Lng: decimal.RequireFromString("-77.0300000"),
		},
	}
}

// --- tests ---

func TestRegisterFromExisting_Standalone(t *testing.T) {
	e := newEnv()
	in := validInput()
	in.Category = catPtr(CategoryComputer)
	in.Details.Computer = &ComputerFields{Serial: strPtr("SN-778")}
	userID := id.New()

	a, err := e.svc.RegisterFromExisting(context.Background(), in, userID)
	require.NoError(t, err)

	require.NotNil(t, a.TagCode)
	assert.Equal(t, "2511160001", *a.TagCode)
	require.NotNil(t, a.AssetFileCode)
	assert.Equal(t, "AF-20251116-0001", *a.AssetFileCode)
	assert.Equal(t, RegistrationReconciled, *a.Registration)
	assert.Equal(t, userID, a.CreatedBy)
	assert.Nil(t, a.OriginID)

	// attribute row stored in the computer table only
	stored := e.repo.details[a.ID]
	require.Contains(t, stored, CategoryComputer)
	assert.Equal(t, "SN-778", *stored[CategoryComputer].Computer.Serial)

	// one audit entry with the submitted coordinates
	require.Len(t, e.audit.entries, 1)
	assert.Equal(t, a.ID, e.audit.entries[0].AssetID)
	assert.True(t, e.audit.entries[0].Lat.Equal(in.Location.Lat))
}

func TestRegisterFromExisting_StandaloneWithoutCategory(t *testing.T) {
	e := newEnv()
	in := validInput() // no category, no origin

	_, err := e.svc.RegisterFromExisting(context.Background(), in, id.New())
	require.Error(t, err)

	appErr, ok := apperror.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperror.CodeValidation, appErr.Code)

	// nothing persisted anywhere
	assert.Empty(t, e.repo.assets)
	assert.Empty(t, e.audit.entries)
	assert.Empty(t, e.origins.reconciled)
	assert.True(t, e.txm.failed)
}

func TestRegisterFromExisting_OriginNotFound(t *testing.T) {
	e := newEnv()
	in := validInput()
	missing := id.New()
	in.OriginID = &missing

	_, err := e.svc.RegisterFromExisting(context.Background(), in, id.New())
	require.Error(t, err)

	appErr, ok := apperror.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperror.CodeInvalidReference, appErr.Code)
	assert.Equal(t, http.StatusBadRequest, appErr.HTTPStatus)
	assert.Empty(t, e.repo.assets)
}

func TestRegisterFromExisting_InheritsOriginCategory(t *testing.T) {
	origin := &Origin{ID: id.New(), Category: catPtr(CategoryFurniture)}
	e := newEnv(origin)

	in := validInput() // category unset, inherited from origin
	in.OriginID = &origin.ID
	in.Details.Furniture = &FurnitureFields{Material: strPtr("melamina")}

	a, err := e.svc.RegisterFromExisting(context.Background(), in, id.New())
	require.NoError(t, err)

	require.NotNil(t, a.Category)
	assert.Equal(t, CategoryFurniture, *a.Category)
	require.NotNil(t, a.OriginID)
	assert.Equal(t, origin.ID, *a.OriginID)

	// origin stamped with the same generated asset-file code
	assert.Equal(t, *a.AssetFileCode, e.origins.reconciled[origin.ID])
}

func TestRegisterFromExisting_IgnoresMismatchedBundle(t *testing.T) {
	e := newEnv()
	in := validInput()
	in.Category = catPtr(CategoryVehicle)
	// client sent a furniture bundle for a vehicle; nothing to store
	in.Details.Furniture = &FurnitureFields{Color: strPtr("negro")}

	a, err := e.svc.RegisterFromExisting(context.Background(), in, id.New())
	require.NoError(t, err)
	assert.Empty(t, e.repo.details[a.ID])
}

func TestRegisterFromExisting_AtomicOnAuditFailure(t *testing.T) {
	origin := &Origin{ID: id.New(), Category: catPtr(CategoryComputer)}
	e := newEnv(origin)
	e.audit.appendErr = errors.New("connection reset")

	in := validInput()
	in.OriginID = &origin.ID

	_, err := e.svc.RegisterFromExisting(context.Background(), in, id.New())
	require.Error(t, err)
	assert.ErrorContains(t, err, "append audit entry")

	// the transaction carrying every write failed as a whole
	assert.Equal(t, 1, e.txm.calls)
	assert.True(t, e.txm.failed)
}

func TestUpdateFromExisting_PreservesGeneratedCodes(t *testing.T) {
	e := newEnv()
	in := validInput()
	in.Category = catPtr(CategoryComputer)
	userID := id.New()

	a, err := e.svc.RegisterFromExisting(context.Background(), in, userID)
	require.NoError(t, err)
	tag := *a.TagCode
	afCode := *a.AssetFileCode

	upd := validInput()
	upd.Description = "Laptop HP ProBook 450 G9"
	upd.Condition = condPtr(ConditionFairGood)

	got, err := e.svc.UpdateFromExisting(context.Background(), a.ID, upd, userID)
	require.NoError(t, err)

	assert.Equal(t, tag, *got.TagCode)
	assert.Equal(t, afCode, *got.AssetFileCode)
	assert.Equal(t, "Laptop HP ProBook 450 G9", got.Description)
	// category kept from the original registration
	assert.Equal(t, CategoryComputer, *got.Category)
}

func condPtr(c Condition) *Condition { return &c }

func TestUpdateFromExisting_TargetMissing(t *testing.T) {
	e := newEnv()

	_, err := e.svc.UpdateFromExisting(context.Background(), id.New(), validInput(), id.New())
	require.Error(t, err)

	appErr, ok := apperror.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperror.CodeInvalidReference, appErr.Code)
	assert.Equal(t, http.StatusBadRequest, appErr.HTTPStatus)
}

func TestAuditTrailAccumulates(t *testing.T) {
	e := newEnv()
	in := validInput()
	in.Category = catPtr(CategoryComputer)
	userID := id.New()

	a, err := e.svc.RegisterFromExisting(context.Background(), in, userID)
	require.NoError(t, err)

	for i := 0; i < 2; i++ {
		_, err = e.svc.UpdateFromExisting(context.Background(), a.ID, in, userID)
		require.NoError(t, err)
	}

	entries, err := e.audit.ListByAsset(context.Background(), a.ID)
	require.NoError(t, err)
	assert.Len(t, entries, 3)
}

func TestDailySequenceAdvances(t *testing.T) {
	e := newEnv()
	in := validInput()
	in.Category = catPtr(CategoryComputer)

	first, err := e.svc.RegisterFromExisting(context.Background(), in, id.New())
	require.NoError(t, err)
	second, err := e.svc.RegisterFromExisting(context.Background(), in, id.New())
	require.NoError(t, err)

	assert.Equal(t, "2511160001", *first.TagCode)
	assert.Equal(t, "2511160002", *second.TagCode)
	assert.Equal(t, "AF-20251116-0002", *second.AssetFileCode)
}

func TestRegisterInput_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*RegisterInput)
	}{
		{"missing project", func(in *RegisterInput) { in.ProjectCode = "" }},
		{"missing branch", func(in *RegisterInput) { in.BranchCode = "" }},
		{"missing area", func(in *RegisterInput) { in.AreaCode = "" }},
		{"missing description", func(in *RegisterInput) { in.Description = "" }},
		{"missing responsible", func(in *RegisterInput) { in.ResponsibleCode = "" }},
		{"bad category", func(in *RegisterInput) { in.Category = catPtr(Category("Maquinaria")) }},
		{"bad condition", func(in *RegisterInput) { in.Condition = condPtr(Condition("REGULAR")) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validInput()
			tt.mutate(&in)
			err := in.Validate(context.Background())
			require.Error(t, err)
			appErr, ok := apperror.AsAppError(err)
			require.True(t, ok)
			assert.Equal(t, apperror.CodeValidation, appErr.Code)
		})
	}
}
