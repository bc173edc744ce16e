package checkout

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/darkkaiser/storefront-server/internal/service/cart"
	"github.com/darkkaiser/storefront-server/internal/service/notification"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// staticWidget InteractiveWidget을 구현하지 않는 위젯
type staticWidget struct{}

func (staticWidget) Load(context.Context) error            { return nil }
func (staticWidget) Render(context.Context, Buttons) error { return nil }

func newTestService(t *testing.T, widgets func() PaymentWidget) (*Service, *cart.LocalStore) {
	t.Helper()

	store := cart.NewLocalStore(cart.NewMemoryBackend())
	svc := NewService(Config{
		Store:     store,
		NewWidget: widgets,
		Emitter:   notification.NewRecorder(),
	})
	return svc, store
}

func successWidget() PaymentWidget {
	return &fakeWidget{capture: fakeActions{result: CaptureResult{ID: "CAP-9", Status: "COMPLETED"}}}
}

func TestService_Create(t *testing.T) {
	t.Parallel()

	svc, store := newTestService(t, successWidget)
	ctx := context.Background()

	_, err := store.Add(ctx, testCartKey, seven(2))
	require.NoError(t, err)

	snap, err := svc.Create(ctx, testCartKey)
	require.NoError(t, err)

	assert.NotEmpty(t, snap.ID)
	assert.Equal(t, StatePaymentReady, snap.State)
	assert.Equal(t, "40.00", snap.Total)
	assert.Equal(t, 1, svc.Len())

	_, err = svc.Create(ctx, " ")
	assert.ErrorIs(t, err, ErrEmptyCartKey)
}

// unreadableBackend 모든 조회가 실패하는 장바구니 Backend
type unreadableBackend struct {
	*cart.MemoryBackend
}

var errBackendDown = errors.New("backend down")

func (unreadableBackend) Get(context.Context, string, string) ([]byte, error) {
	return nil, errBackendDown
}

func TestService_Create_StoreFailureDiscardsSession(t *testing.T) {
	t.Parallel()

	svc := NewService(Config{
		Store:     cart.NewLocalStore(unreadableBackend{cart.NewMemoryBackend()}),
		NewWidget: successWidget,
		Emitter:   notification.NewRecorder(),
	})

	_, err := svc.Create(context.Background(), testCartKey)
	require.ErrorIs(t, err, errBackendDown)
	assert.Zero(t, svc.Len(), "실패한 세션은 보관되지 않아야 합니다")
}

func TestService_PaymentFlow(t *testing.T) {
	t.Parallel()

	svc, store := newTestService(t, successWidget)
	ctx := context.Background()

	_, err := store.Add(ctx, testCartKey, seven(1))
	require.NoError(t, err)

	snap, err := svc.Create(ctx, testCartKey)
	require.NoError(t, err)

	orderID, err := svc.CreatePaymentOrder(ctx, snap.ID)
	require.NoError(t, err)
	assert.Equal(t, "ORDER-20.00", orderID)

	snap, err = svc.ApprovePayment(ctx, snap.ID, orderID)
	require.NoError(t, err)
	assert.Equal(t, StatePaymentSucceeded, snap.State)
	assert.Equal(t, "0.00", snap.Total)
}

func TestService_CancelAndFail(t *testing.T) {
	t.Parallel()

	svc, store := newTestService(t, successWidget)
	ctx := context.Background()

	_, err := store.Add(ctx, testCartKey, seven(1))
	require.NoError(t, err)
	snap, err := svc.Create(ctx, testCartKey)
	require.NoError(t, err)

	snap, err = svc.CancelPayment(ctx, snap.ID)
	require.NoError(t, err)
	assert.Equal(t, StatePaymentCancelled, snap.State)

	snap, err = svc.FailPayment(ctx, snap.ID, errors.New("boom"))
	require.NoError(t, err)
	assert.Equal(t, StatePaymentFailed, snap.State)
	assert.Equal(t, "20.00", snap.Total)
}

func TestService_ConfirmManual_ReturnsSnapshotOnValidationError(t *testing.T) {
	t.Parallel()

	svc, store := newTestService(t, successWidget)
	ctx := context.Background()

	_, err := store.Add(ctx, testCartKey, seven(1))
	require.NoError(t, err)
	snap, err := svc.Create(ctx, testCartKey)
	require.NoError(t, err)

	got, err := svc.ConfirmManual(ctx, snap.ID, ShippingInfo{Name: "a"})
	assert.ErrorIs(t, err, ErrShippingIncomplete)
	require.NotNil(t, got.Message)
	assert.Equal(t, msgShippingIncomplete, got.Message.Text)
	assert.Equal(t, StatePaymentReady, got.State)
}

func TestService_NotFoundAndNotInteractive(t *testing.T) {
	t.Parallel()

	svc, store := newTestService(t, func() PaymentWidget { return staticWidget{} })
	ctx := context.Background()

	_, err := svc.Snapshot(ctx, "missing")
	assert.ErrorIs(t, err, ErrSessionNotFound)

	_, err = store.Add(ctx, testCartKey, seven(1))
	require.NoError(t, err)
	snap, err := svc.Create(ctx, testCartKey)
	require.NoError(t, err)

	_, err = svc.CreatePaymentOrder(ctx, snap.ID)
	assert.ErrorIs(t, err, ErrWidgetNotInteractive)
}

func TestService_Sweep(t *testing.T) {
	t.Parallel()

	svc, _ := newTestService(t, successWidget)
	ctx := context.Background()

	_, err := svc.Create(ctx, "a")
	require.NoError(t, err)
	_, err = svc.Create(ctx, "b")
	require.NoError(t, err)

	assert.Zero(t, svc.Sweep())

	svc.now = func() time.Time { return time.Now().Add(time.Hour) }
	assert.Equal(t, 2, svc.Sweep())
	assert.Zero(t, svc.Len())
}
