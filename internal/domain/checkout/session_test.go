// internal/domain/checkout/session_test.go
package checkout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/your-org/storefront-backend/internal/config"
	"github.com/your-org/storefront-backend/internal/domain/cart"
	"github.com/your-org/storefront-backend/internal/domain/delivery"
	"github.com/your-org/storefront-backend/internal/domain/order"
	"github.com/your-org/storefront-backend/internal/domain/payment"
)

func testStore() config.StoreConfig {
	return config.StoreConfig{
		Name:   "Boteco da Maminha",
		PixKey: "boteco.maminha@pix.com",
	}
}

func testCart() *cart.SessionCart {
	return &cart.SessionCart{
		SessionID: "s1",
		Items: []cart.Item{
			{ProductID: "marmita-maminha", Name: "Marmita de Maminha", Price: 2290, Quantity: 1},
		},
	}
}

func testDeliveryInfo() order.DeliveryInfo {
	return order.DeliveryInfo{
		Street:       "Rua das Flores",
		Number:       "123",
		Neighborhood: "Centro",
		WhatsApp:     "11999998888",
	}
}

// advance walks a fresh session to payment selection
func sessionAtPayment(t *testing.T) *Session {
	t.Helper()

	s := NewSession("s1")
	require.NoError(t, s.Finalize(testCart()))
	require.NoError(t, s.SetDeliveryInfo(testDeliveryInfo()))
	require.NoError(t, s.ConfirmDelivery())
	require.Equal(t, StateSelectingPayment, s.State)
	return s
}

func TestFinalize_EmptyCartBlocked(t *testing.T) {
	s := NewSession("s1")

	err := s.Finalize(&cart.SessionCart{SessionID: "s1"})

	assert.ErrorIs(t, err, ErrEmptyCart)
	assert.Equal(t, StateIdle, s.State)
}

func TestFinalize_StartsDeliveryCapture(t *testing.T) {
	s := NewSession("s1")

	require.NoError(t, s.Finalize(testCart()))

	assert.Equal(t, StateCapturingDelivery, s.State)
}

func TestFinalize_NotIdleBlocked(t *testing.T) {
	s := sessionAtPayment(t)

	assert.ErrorIs(t, s.Finalize(testCart()), ErrInvalidTransition)
}

func TestConfirmDelivery_IncompleteInfoBlocked(t *testing.T) {
	s := NewSession("s1")
	require.NoError(t, s.Finalize(testCart()))

	info := testDeliveryInfo()
	info.WhatsApp = ""
	require.NoError(t, s.SetDeliveryInfo(info))

	err := s.ConfirmDelivery()

	assert.ErrorIs(t, err, ErrInvalidDeliveryInfo)
	assert.Equal(t, StateCapturingDelivery, s.State)
}

func TestCancelDelivery_DiscardsFieldsAndReturnsToIdle(t *testing.T) {
	s := NewSession("s1")
	require.NoError(t, s.Finalize(testCart()))
	require.NoError(t, s.SetDeliveryInfo(testDeliveryInfo()))

	require.NoError(t, s.CancelDelivery())

	assert.Equal(t, StateIdle, s.State)
	assert.Equal(t, order.DeliveryInfo{}, s.Delivery)
}

func TestBack_FromPaymentRetainsDeliveryFields(t *testing.T) {
	s := sessionAtPayment(t)

	require.NoError(t, s.Back())

	assert.Equal(t, StateCapturingDelivery, s.State)
	assert.Equal(t, testDeliveryInfo(), s.Delivery)
}

func TestBack_FromDeliveryReturnsToIdle(t *testing.T) {
	s := NewSession("s1")
	require.NoError(t, s.Finalize(testCart()))

	require.NoError(t, s.Back())

	assert.Equal(t, StateIdle, s.State)
}

func TestBack_FromIdleBlocked(t *testing.T) {
	s := NewSession("s1")

	assert.ErrorIs(t, s.Back(), ErrInvalidTransition)
}

func TestSelectPayment_InvalidMethodBlocked(t *testing.T) {
	s := sessionAtPayment(t)

	assert.ErrorIs(t, s.SelectPayment("cheque", ""), ErrNoPaymentMethod)
}

func TestSelectPayment_NonCashClearsTenderedAmount(t *testing.T) {
	s := sessionAtPayment(t)

	require.NoError(t, s.SelectPayment(payment.MethodCash, "30.00"))
	require.NoError(t, s.SelectPayment(payment.MethodCredit, ""))

	assert.Equal(t, payment.MethodCredit, s.Payment.Method)
	assert.Empty(t, s.Payment.CashAmount)
}

func TestConfirm_NoMethodSelectedBlocked(t *testing.T) {
	s := sessionAtPayment(t)

	_, err := s.Confirm(testCart(), delivery.Quote{Fee: 500}, testStore())

	assert.ErrorIs(t, err, ErrNoPaymentMethod)
	assert.Equal(t, StateSelectingPayment, s.State)
}

func TestConfirm_CashHappyPath(t *testing.T) {
	s := sessionAtPayment(t)
	require.NoError(t, s.SelectPayment(payment.MethodCash, "30.00"))

	effects, err := s.Confirm(testCart(), delivery.Quote{Fee: 500, ZoneKnown: true}, testStore())

	require.NoError(t, err)
	assert.Equal(t, StateShowingSummary, s.State)
	require.NotNil(t, s.Summary)

	assert.Equal(t, int64(2290), s.Summary.Subtotal)
	assert.Equal(t, int64(500), s.Summary.DeliveryFee)
	assert.Equal(t, int64(2790), s.Summary.Total)
	assert.Equal(t, "Dinheiro", s.Summary.PaymentMethod)

	require.NotNil(t, s.Summary.CashAmount)
	require.NotNil(t, s.Summary.Change)
	assert.Equal(t, int64(3000), *s.Summary.CashAmount)
	assert.Equal(t, int64(210), *s.Summary.Change)

	require.Len(t, effects, 2)
	assert.IsType(t, GenerateReceipt{}, effects[0])
	assert.IsType(t, ArchiveOrder{}, effects[1])
}

func TestConfirm_CashUnderpaymentBlocked(t *testing.T) {
	s := sessionAtPayment(t)
	require.NoError(t, s.SelectPayment(payment.MethodCash, "20.00"))

	effects, err := s.Confirm(testCart(), delivery.Quote{Fee: 500}, testStore())

	assert.ErrorIs(t, err, ErrInsufficientCash)
	assert.Empty(t, effects)
	assert.Equal(t, StateSelectingPayment, s.State)
	assert.Nil(t, s.Summary)
}

func TestConfirm_CardSkipsCashFields(t *testing.T) {
	s := sessionAtPayment(t)
	require.NoError(t, s.SelectPayment(payment.MethodDebit, ""))

	_, err := s.Confirm(testCart(), delivery.Quote{Fee: 500}, testStore())

	require.NoError(t, err)
	require.NotNil(t, s.Summary)
	assert.Nil(t, s.Summary.CashAmount)
	assert.Nil(t, s.Summary.Change)
	assert.Equal(t, "Cartão de Débito", s.Summary.PaymentMethod)
}

func TestConfirm_PixSkipsSummary(t *testing.T) {
	s := sessionAtPayment(t)
	require.NoError(t, s.SelectPayment(payment.MethodPix, ""))

	effects, err := s.Confirm(testCart(), delivery.Quote{Fee: 500}, testStore())

	require.NoError(t, err)
	assert.Equal(t, StateAwaitingPixConfirmation, s.State)
	assert.Nil(t, s.Summary)

	require.Len(t, effects, 1)
	send, ok := effects[0].(SendPixInstructions)
	require.True(t, ok)
	assert.Equal(t, "11999998888", send.To)
	assert.Contains(t, send.Message, send.PixOrderID)
	assert.Contains(t, send.PixOrderID, "PIX-")
}

func TestClose_OnlyFromSummary(t *testing.T) {
	s := sessionAtPayment(t)

	assert.ErrorIs(t, s.Close(), ErrInvalidTransition)
}

func TestClose_ResetsSession(t *testing.T) {
	s := sessionAtPayment(t)
	require.NoError(t, s.SelectPayment(payment.MethodCredit, ""))
	_, err := s.Confirm(testCart(), delivery.Quote{Fee: 500}, testStore())
	require.NoError(t, err)

	require.NoError(t, s.Close())

	assert.Equal(t, StateIdle, s.State)
	assert.Nil(t, s.Summary)
	assert.Equal(t, order.DeliveryInfo{}, s.Delivery)
	assert.Empty(t, s.Payment.Method)
}

func TestAcknowledgePix_ReturnsToIdle(t *testing.T) {
	s := sessionAtPayment(t)
	require.NoError(t, s.SelectPayment(payment.MethodPix, ""))
	_, err := s.Confirm(testCart(), delivery.Quote{Fee: 500}, testStore())
	require.NoError(t, err)

	require.NoError(t, s.AcknowledgePix())

	assert.Equal(t, StateIdle, s.State)
}

func TestAcknowledgePix_IdempotentWhenIdle(t *testing.T) {
	s := NewSession("s1")

	assert.NoError(t, s.AcknowledgePix())
	assert.Equal(t, StateIdle, s.State)
}

func TestAcknowledgePix_BlockedMidFlow(t *testing.T) {
	s := sessionAtPayment(t)

	assert.ErrorIs(t, s.AcknowledgePix(), ErrInvalidTransition)
}

func TestCancelPix_BlockedOnceInstructionsSent(t *testing.T) {
	s := sessionAtPayment(t)
	require.NoError(t, s.SelectPayment(payment.MethodPix, ""))
	_, err := s.Confirm(testCart(), delivery.Quote{Fee: 500}, testStore())
	require.NoError(t, err)

	err = s.CancelPix()

	assert.ErrorIs(t, err, ErrPixAlreadySent)
	assert.Equal(t, StateAwaitingPixConfirmation, s.State)
}

func TestBlockedTransitionLeavesSessionUnchanged(t *testing.T) {
	s := sessionAtPayment(t)
	before := *s

	_ = s.Close()
	_ = s.Finalize(testCart())
	_ = s.CancelDelivery()

	assert.Equal(t, before.State, s.State)
	assert.Equal(t, before.Delivery, s.Delivery)
	assert.Equal(t, before.Payment, s.Payment)
}
