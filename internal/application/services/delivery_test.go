package services

import (
	"context"
	"errors"
	"mime/multipart"
	"testing"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thiagohrcosta/FastFeet-API/internal/application/ports"
	accountDomain "github.com/thiagohrcosta/FastFeet-API/internal/domain/account"
	domain "github.com/thiagohrcosta/FastFeet-API/internal/domain/delivery"
	recipientDomain "github.com/thiagohrcosta/FastFeet-API/internal/domain/recipient"
	"github.com/thiagohrcosta/FastFeet-API/internal/infrastructure/mq"
	"github.com/thiagohrcosta/FastFeet-API/internal/policy"
)

type fakeDeliveryRepo struct {
	FetchDeliveryByIDFunc            func(ctx context.Context, id uuid.UUID) (*domain.Delivery, error)
	FetchDeliveriesFunc              func(ctx context.Context, page int) (domain.Deliveries, error)
	FetchDeliveriesByRecipientFunc   func(ctx context.Context, recipientID uuid.UUID) (domain.Deliveries, error)
	FetchDeliveriesByDeliverymanFunc func(ctx context.Context, deliverymanID uuid.UUID) (domain.Deliveries, error)
	CreateDeliveryFunc               func(ctx context.Context, req domain.Delivery) (*domain.Delivery, error)
	UpdateDeliveryFunc               func(ctx context.Context, id uuid.UUID, patch domain.Update) (*domain.Delivery, error)
	DeleteDeliveryFunc               func(ctx context.Context, id uuid.UUID) (*domain.Delivery, error)
}

func (f *fakeDeliveryRepo) FetchDeliveryByID(ctx context.Context, id uuid.UUID) (*domain.Delivery, error) {
	if f.FetchDeliveryByIDFunc == nil {
		return nil, errors.New("not used")
	}
	return f.FetchDeliveryByIDFunc(ctx, id)
}
func (f *fakeDeliveryRepo) FetchDeliveries(ctx context.Context, page int) (domain.Deliveries, error) {
	if f.FetchDeliveriesFunc == nil {
		return nil, errors.New("not used")
	}
	return f.FetchDeliveriesFunc(ctx, page)
}
func (f *fakeDeliveryRepo) FetchDeliveriesByRecipient(ctx context.Context, recipientID uuid.UUID) (domain.Deliveries, error) {
	if f.FetchDeliveriesByRecipientFunc == nil {
		return nil, errors.New("not used")
	}
	return f.FetchDeliveriesByRecipientFunc(ctx, recipientID)
}
func (f *fakeDeliveryRepo) FetchDeliveriesByDeliveryman(ctx context.Context, deliverymanID uuid.UUID) (domain.Deliveries, error) {
	if f.FetchDeliveriesByDeliverymanFunc == nil {
		return nil, errors.New("not used")
	}
	return f.FetchDeliveriesByDeliverymanFunc(ctx, deliverymanID)
}
func (f *fakeDeliveryRepo) CreateDelivery(ctx context.Context, req domain.Delivery) (*domain.Delivery, error) {
	if f.CreateDeliveryFunc == nil {
		return nil, errors.New("not used")
	}
	return f.CreateDeliveryFunc(ctx, req)
}
func (f *fakeDeliveryRepo) UpdateDelivery(ctx context.Context, id uuid.UUID, patch domain.Update) (*domain.Delivery, error) {
	if f.UpdateDeliveryFunc == nil {
		return nil, errors.New("not used")
	}
	return f.UpdateDeliveryFunc(ctx, id, patch)
}
func (f *fakeDeliveryRepo) DeleteDelivery(ctx context.Context, id uuid.UUID) (*domain.Delivery, error) {
	if f.DeleteDeliveryFunc == nil {
		return nil, errors.New("not used")
	}
	return f.DeleteDeliveryFunc(ctx, id)
}

type fakeRecipientRepo struct {
	FetchRecipientByIDFunc         func(ctx context.Context, id uuid.UUID) (*recipientDomain.Recipient, error)
	FetchRecipientByEmailFunc      func(ctx context.Context, email string) (*recipientDomain.Recipient, error)
	FetchRecipientByIdentifierFunc func(ctx context.Context, identifier string) (*recipientDomain.Recipient, error)
	FetchRecipientsFunc            func(ctx context.Context, page int) (recipientDomain.Recipients, error)
	CreateRecipientFunc            func(ctx context.Context, req recipientDomain.Recipient) (*recipientDomain.Recipient, error)
	UpdateRecipientFunc            func(ctx context.Context, id uuid.UUID, patch recipientDomain.Update) (*recipientDomain.Recipient, error)
	DeleteRecipientFunc            func(ctx context.Context, id uuid.UUID) (*recipientDomain.Recipient, error)
}

func (f *fakeRecipientRepo) FetchRecipientByID(ctx context.Context, id uuid.UUID) (*recipientDomain.Recipient, error) {
	if f.FetchRecipientByIDFunc == nil {
		return nil, errors.New("not used")
	}
	return f.FetchRecipientByIDFunc(ctx, id)
}
func (f *fakeRecipientRepo) FetchRecipientByEmail(ctx context.Context, email string) (*recipientDomain.Recipient, error) {
	if f.FetchRecipientByEmailFunc == nil {
		return nil, errors.New("not used")
	}
	return f.FetchRecipientByEmailFunc(ctx, email)
}
func (f *fakeRecipientRepo) FetchRecipientByIdentifier(ctx context.Context, identifier string) (*recipientDomain.Recipient, error) {
	if f.FetchRecipientByIdentifierFunc == nil {
		return nil, errors.New("not used")
	}
	return f.FetchRecipientByIdentifierFunc(ctx, identifier)
}
func (f *fakeRecipientRepo) FetchRecipients(ctx context.Context, page int) (recipientDomain.Recipients, error) {
	if f.FetchRecipientsFunc == nil {
		return nil, errors.New("not used")
	}
	return f.FetchRecipientsFunc(ctx, page)
}
func (f *fakeRecipientRepo) CreateRecipient(ctx context.Context, req recipientDomain.Recipient) (*recipientDomain.Recipient, error) {
	if f.CreateRecipientFunc == nil {
		return nil, errors.New("not used")
	}
	return f.CreateRecipientFunc(ctx, req)
}
func (f *fakeRecipientRepo) UpdateRecipient(ctx context.Context, id uuid.UUID, patch recipientDomain.Update) (*recipientDomain.Recipient, error) {
	if f.UpdateRecipientFunc == nil {
		return nil, errors.New("not used")
	}
	return f.UpdateRecipientFunc(ctx, id, patch)
}
func (f *fakeRecipientRepo) DeleteRecipient(ctx context.Context, id uuid.UUID) (*recipientDomain.Recipient, error) {
	if f.DeleteRecipientFunc == nil {
		return nil, errors.New("not used")
	}
	return f.DeleteRecipientFunc(ctx, id)
}

type fakeAccountRepo struct {
	FetchAccountByIDFunc         func(ctx context.Context, id uuid.UUID) (*accountDomain.Account, error)
	FetchAccountByDocumentIDFunc func(ctx context.Context, documentID string) (*accountDomain.Account, error)
	FetchAccountByIdentifierFunc func(ctx context.Context, identifier string) (*accountDomain.Account, error)
	FetchAccountsFunc            func(ctx context.Context, page int) (accountDomain.Accounts, error)
	FetchDeliverymenFunc         func(ctx context.Context) (accountDomain.Accounts, error)
	CreateAccountFunc            func(ctx context.Context, req accountDomain.Account) (*accountDomain.Account, error)
	UpdateAccountFunc            func(ctx context.Context, id uuid.UUID, patch accountDomain.Update) (*accountDomain.Account, error)
	DeleteAccountFunc            func(ctx context.Context, id uuid.UUID) (*accountDomain.Account, error)
}

func (f *fakeAccountRepo) FetchAccountByID(ctx context.Context, id uuid.UUID) (*accountDomain.Account, error) {
	if f.FetchAccountByIDFunc == nil {
		return nil, errors.New("not used")
	}
	return f.FetchAccountByIDFunc(ctx, id)
}
func (f *fakeAccountRepo) FetchAccountByDocumentID(ctx context.Context, documentID string) (*accountDomain.Account, error) {
	if f.FetchAccountByDocumentIDFunc == nil {
		return nil, errors.New("not used")
	}
	return f.FetchAccountByDocumentIDFunc(ctx, documentID)
}
func (f *fakeAccountRepo) FetchAccountByIdentifier(ctx context.Context, identifier string) (*accountDomain.Account, error) {
	if f.FetchAccountByIdentifierFunc == nil {
		return nil, errors.New("not used")
	}
	return f.FetchAccountByIdentifierFunc(ctx, identifier)
}
func (f *fakeAccountRepo) FetchAccounts(ctx context.Context, page int) (accountDomain.Accounts, error) {
	if f.FetchAccountsFunc == nil {
		return nil, errors.New("not used")
	}
	return f.FetchAccountsFunc(ctx, page)
}
func (f *fakeAccountRepo) FetchDeliverymen(ctx context.Context) (accountDomain.Accounts, error) {
	if f.FetchDeliverymenFunc == nil {
		return nil, errors.New("not used")
	}
	return f.FetchDeliverymenFunc(ctx)
}
func (f *fakeAccountRepo) CreateAccount(ctx context.Context, req accountDomain.Account) (*accountDomain.Account, error) {
	if f.CreateAccountFunc == nil {
		return nil, errors.New("not used")
	}
	return f.CreateAccountFunc(ctx, req)
}
func (f *fakeAccountRepo) UpdateAccount(ctx context.Context, id uuid.UUID, patch accountDomain.Update) (*accountDomain.Account, error) {
	if f.UpdateAccountFunc == nil {
		return nil, errors.New("not used")
	}
	return f.UpdateAccountFunc(ctx, id, patch)
}
func (f *fakeAccountRepo) DeleteAccount(ctx context.Context, id uuid.UUID) (*accountDomain.Account, error) {
	if f.DeleteAccountFunc == nil {
		return nil, errors.New("not used")
	}
	return f.DeleteAccountFunc(ctx, id)
}

type fakeS3 struct {
	UploadFunc func(ctx context.Context, deliveryID string, in *multipart.FileHeader) (string, error)
}

func (f *fakeS3) Upload(ctx context.Context, deliveryID string, in *multipart.FileHeader) (string, error) {
	if f.UploadFunc == nil {
		return "", errors.New("not used")
	}
	return f.UploadFunc(ctx, deliveryID, in)
}
func (f *fakeS3) GetPublicURL(key string) string { return "https://photos.test/" + key }
func (f *fakeS3) GetBucket() string              { return "photos-test" }

type fakeMQ struct {
	in chan mq.Event
}

func newFakeMQ() *fakeMQ { return &fakeMQ{in: make(chan mq.Event, 8)} }

func (f *fakeMQ) Connect(ctx context.Context, dsn string) error { return nil }
func (f *fakeMQ) Init() error                                   { return nil }
func (f *fakeMQ) PublisherWorker(ctx context.Context)           {}
func (f *fakeMQ) GetInputChan() chan mq.Event                   { return f.in }
func (f *fakeMQ) GetConn() *amqp091.Connection                  { return nil }

func testCounter() *prometheus.CounterVec {
	return prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "fastfeet_test", Name: "general_counters"},
		[]string{"result"},
	)
}

func adminCaller() policy.Caller {
	return policy.Caller{AccountID: uuid.New(), Role: accountDomain.RoleAdmin}
}

func strPtr(s string) *string { return &s }

func statusPtr(s domain.Status) *domain.Status { return &s }

func newDeliveryService(
	dr *fakeDeliveryRepo,
	rr *fakeRecipientRepo,
	ar *fakeAccountRepo,
	mqc *fakeMQ,
) ports.DeliveryService {
	return NewDeliveryService(dr, rr, ar, &fakeS3{}, mqc, testCounter())
}

func TestApplyUpdate_PartialPatchPassesThrough(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()
	existing := &domain.Delivery{ID: id, Product: "Notebook", Status: domain.StatusPending, RecipientID: uuid.New()}

	var gotPatch domain.Update
	dr := &fakeDeliveryRepo{
		FetchDeliveryByIDFunc: func(ctx context.Context, got uuid.UUID) (*domain.Delivery, error) {
			require.Equal(t, id, got)
			return existing, nil
		},
		UpdateDeliveryFunc: func(ctx context.Context, got uuid.UUID, patch domain.Update) (*domain.Delivery, error) {
			gotPatch = patch
			out := *existing
			out.Product = *patch.Product
			return &out, nil
		},
	}
	mqc := newFakeMQ()
	svc := newDeliveryService(dr, &fakeRecipientRepo{}, &fakeAccountRepo{}, mqc)

	updated, err := svc.ApplyUpdate(ctx, adminCaller(), id, domain.Update{Product: strPtr("Smartphone")}, nil)
	require.NoError(t, err)
	require.NotNil(t, updated)

	assert.Equal(t, "Smartphone", *gotPatch.Product)
	assert.Nil(t, gotPatch.Status)
	assert.Nil(t, gotPatch.RecipientID)
	assert.Nil(t, gotPatch.DeliverymanID)
	assert.Empty(t, mqc.in, "no status change, no notification")
}

func TestApplyUpdate_NotifiesOnceOnStatusChange(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()
	rcID := uuid.New()
	existing := &domain.Delivery{ID: id, Product: "Notebook", Status: domain.StatusPending, RecipientID: rcID}

	dr := &fakeDeliveryRepo{
		FetchDeliveryByIDFunc: func(ctx context.Context, _ uuid.UUID) (*domain.Delivery, error) {
			return existing, nil
		},
		UpdateDeliveryFunc: func(ctx context.Context, _ uuid.UUID, patch domain.Update) (*domain.Delivery, error) {
			out := *existing
			out.Status = *patch.Status
			return &out, nil
		},
	}
	rr := &fakeRecipientRepo{
		FetchRecipientByIDFunc: func(ctx context.Context, got uuid.UUID) (*recipientDomain.Recipient, error) {
			require.Equal(t, rcID, got)
			return &recipientDomain.Recipient{ID: rcID, Email: "ana@example.com"}, nil
		},
	}
	mqc := newFakeMQ()
	svc := newDeliveryService(dr, rr, &fakeAccountRepo{}, mqc)

	_, err := svc.ApplyUpdate(ctx, adminCaller(), id, domain.Update{Status: statusPtr(domain.StatusWithdrawn)}, nil)
	require.NoError(t, err)

	require.Len(t, mqc.in, 1)
	e := <-mqc.in
	assert.Equal(t, id.String(), e.DeliveryID)
	assert.Equal(t, "ana@example.com", e.RecipientEmail)
	assert.Equal(t, string(domain.StatusWithdrawn), e.Status)
}

func TestApplyUpdate_SameStatusDoesNotNotify(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()
	existing := &domain.Delivery{ID: id, Status: domain.StatusWithdrawn, RecipientID: uuid.New()}

	dr := &fakeDeliveryRepo{
		FetchDeliveryByIDFunc: func(ctx context.Context, _ uuid.UUID) (*domain.Delivery, error) {
			return existing, nil
		},
		UpdateDeliveryFunc: func(ctx context.Context, _ uuid.UUID, _ domain.Update) (*domain.Delivery, error) {
			return existing, nil
		},
	}
	mqc := newFakeMQ()
	svc := newDeliveryService(dr, &fakeRecipientRepo{}, &fakeAccountRepo{}, mqc)

	_, err := svc.ApplyUpdate(ctx, adminCaller(), id, domain.Update{Status: statusPtr(domain.StatusWithdrawn)}, nil)
	require.NoError(t, err)
	assert.Empty(t, mqc.in)
}

func TestApplyUpdate_WrongDeliverymanCannotMarkDelivered(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()
	assigned := uuid.New()
	existing := &domain.Delivery{ID: id, Status: domain.StatusWithdrawn, RecipientID: uuid.New(), DeliverymanID: &assigned}

	updateCalled := false
	dr := &fakeDeliveryRepo{
		FetchDeliveryByIDFunc: func(ctx context.Context, _ uuid.UUID) (*domain.Delivery, error) {
			return existing, nil
		},
		UpdateDeliveryFunc: func(ctx context.Context, _ uuid.UUID, _ domain.Update) (*domain.Delivery, error) {
			updateCalled = true
			return existing, nil
		},
	}
	mqc := newFakeMQ()
	svc := newDeliveryService(dr, &fakeRecipientRepo{}, &fakeAccountRepo{}, mqc)

	caller := policy.Caller{AccountID: uuid.New(), Role: accountDomain.RoleDeliveryman}
	_, err := svc.ApplyUpdate(ctx, caller, id, domain.Update{Status: statusPtr(domain.StatusDelivered)}, nil)
	require.ErrorIs(t, err, policy.ErrWrongDeliveryman)
	assert.False(t, updateCalled, "denied update must not mutate")
	assert.Empty(t, mqc.in)
}

func TestApplyUpdate_AssignedDeliverymanMarksDelivered(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()
	assigned := uuid.New()
	rcID := uuid.New()
	existing := &domain.Delivery{ID: id, Status: domain.StatusWithdrawn, RecipientID: rcID, DeliverymanID: &assigned}

	dr := &fakeDeliveryRepo{
		FetchDeliveryByIDFunc: func(ctx context.Context, _ uuid.UUID) (*domain.Delivery, error) {
			return existing, nil
		},
		UpdateDeliveryFunc: func(ctx context.Context, _ uuid.UUID, patch domain.Update) (*domain.Delivery, error) {
			out := *existing
			out.Status = *patch.Status
			return &out, nil
		},
	}
	rr := &fakeRecipientRepo{
		FetchRecipientByIDFunc: func(ctx context.Context, _ uuid.UUID) (*recipientDomain.Recipient, error) {
			return &recipientDomain.Recipient{ID: rcID, Email: "ana@example.com"}, nil
		},
	}
	mqc := newFakeMQ()
	svc := newDeliveryService(dr, rr, &fakeAccountRepo{}, mqc)

	caller := policy.Caller{AccountID: assigned, Role: accountDomain.RoleDeliveryman}
	updated, err := svc.ApplyUpdate(ctx, caller, id, domain.Update{Status: statusPtr(domain.StatusDelivered)}, nil)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusDelivered, updated.Status)
	assert.Len(t, mqc.in, 1)
}

func TestApplyUpdate_NotFound(t *testing.T) {
	dr := &fakeDeliveryRepo{
		FetchDeliveryByIDFunc: func(ctx context.Context, _ uuid.UUID) (*domain.Delivery, error) {
			return nil, nil
		},
	}
	svc := newDeliveryService(dr, &fakeRecipientRepo{}, &fakeAccountRepo{}, newFakeMQ())

	_, err := svc.ApplyUpdate(context.Background(), adminCaller(), uuid.New(), domain.Update{}, nil)
	require.ErrorIs(t, err, ErrDeliveryNotFound)
}

func TestApplyUpdate_ReassignToNonDeliveryman(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()
	adminID := uuid.New()
	existing := &domain.Delivery{ID: id, Status: domain.StatusPending, RecipientID: uuid.New()}

	dr := &fakeDeliveryRepo{
		FetchDeliveryByIDFunc: func(ctx context.Context, _ uuid.UUID) (*domain.Delivery, error) {
			return existing, nil
		},
	}
	ar := &fakeAccountRepo{
		FetchAccountByIDFunc: func(ctx context.Context, got uuid.UUID) (*accountDomain.Account, error) {
			require.Equal(t, adminID, got)
			return &accountDomain.Account{ID: adminID, Role: accountDomain.RoleAdmin}, nil
		},
	}
	svc := newDeliveryService(dr, &fakeRecipientRepo{}, ar, newFakeMQ())

	_, err := svc.ApplyUpdate(ctx, adminCaller(), id, domain.Update{DeliverymanID: &adminID}, nil)
	require.ErrorIs(t, err, ErrNotDeliveryman)
}

func TestCreateDelivery_DefaultsToPending(t *testing.T) {
	ctx := context.Background()
	rcID := uuid.New()

	dr := &fakeDeliveryRepo{
		CreateDeliveryFunc: func(ctx context.Context, req domain.Delivery) (*domain.Delivery, error) {
			require.Equal(t, domain.StatusPending, req.Status)
			out := req
			out.ID = uuid.New()
			return &out, nil
		},
	}
	rr := &fakeRecipientRepo{
		FetchRecipientByIDFunc: func(ctx context.Context, got uuid.UUID) (*recipientDomain.Recipient, error) {
			require.Equal(t, rcID, got)
			return &recipientDomain.Recipient{ID: rcID}, nil
		},
	}
	svc := newDeliveryService(dr, rr, &fakeAccountRepo{}, newFakeMQ())

	created, err := svc.CreateDelivery(ctx, adminCaller(), ports.CreateDelivery{Product: "Notebook", RecipientID: rcID})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusPending, created.Status)
}

func TestCreateDelivery_UnknownRecipient(t *testing.T) {
	rr := &fakeRecipientRepo{
		FetchRecipientByIDFunc: func(ctx context.Context, _ uuid.UUID) (*recipientDomain.Recipient, error) {
			return nil, nil
		},
	}
	svc := newDeliveryService(&fakeDeliveryRepo{}, rr, &fakeAccountRepo{}, newFakeMQ())

	_, err := svc.CreateDelivery(context.Background(), adminCaller(), ports.CreateDelivery{Product: "Notebook", RecipientID: uuid.New()})
	require.ErrorIs(t, err, ErrRecipientNotFound)
}

func TestCreateDelivery_DeliverymanRoleDenied(t *testing.T) {
	svc := newDeliveryService(&fakeDeliveryRepo{}, &fakeRecipientRepo{}, &fakeAccountRepo{}, newFakeMQ())

	caller := policy.Caller{AccountID: uuid.New(), Role: accountDomain.RoleDeliveryman}
	_, err := svc.CreateDelivery(context.Background(), caller, ports.CreateDelivery{Product: "Notebook", RecipientID: uuid.New()})
	require.ErrorIs(t, err, policy.ErrUnauthorized)
}
