package wallet

import (
	"context"
	"crypto/ecdsa"
	"io"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/accounts"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestBridge() *Bridge {
	return NewBridge(zerolog.New(io.Discard))
}

func newKey(t *testing.T) (*ecdsa.PrivateKey, string) {
	t.Helper()
	key, err := crypto.GenerateKey()
	require.NoError(t, err)
	return key, crypto.PubkeyToAddress(key.PublicKey).Hex()
}

func personalSign(t *testing.T, key *ecdsa.PrivateKey, message string) string {
	t.Helper()
	sig, err := crypto.Sign(accounts.TextHash([]byte(message)), key)
	require.NoError(t, err)
	sig[crypto.RecoveryIDOffset] += 27
	return hexutil.Encode(sig)
}

// waitPending blocks until SignMessage has registered its request.
func waitPending(t *testing.T, b *Bridge) string {
	t.Helper()
	var msg string
	require.Eventually(t, func() bool {
		var ok bool
		msg, ok = b.PendingMessage()
		return ok
	}, time.Second, 5*time.Millisecond)
	return msg
}

func TestBridge_ConnectAndReport(t *testing.T) {
	b := newTestBridge()
	_, addr := newKey(t)

	assert.False(t, b.IsConnected())
	require.NoError(t, b.Connect(context.Background()))
	assert.True(t, b.ConnectRequested())
	assert.False(t, b.IsConnected())

	require.NoError(t, b.ReportAddress(addr))
	assert.True(t, b.IsConnected())
	assert.Equal(t, addr, b.Address())
	assert.False(t, b.ConnectRequested())
}

func TestBridge_ReportAddress_Invalid(t *testing.T) {
	b := newTestBridge()
	assert.ErrorIs(t, b.ReportAddress("0x123"), ErrInvalidAddress)
	assert.False(t, b.IsConnected())
}

func TestBridge_OnAddressChange(t *testing.T) {
	b := newTestBridge()
	_, first := newKey(t)
	_, second := newKey(t)

	var seen []string
	release := b.OnAddressChange(func(a string) { seen = append(seen, a) })

	require.NoError(t, b.ReportAddress(first))
	require.NoError(t, b.ReportAddress(first)) // unchanged, no event
	require.NoError(t, b.ReportAddress(second))
	require.NoError(t, b.ReportAddress(""))

	assert.Equal(t, []string{first, second, ""}, seen)

	release()
	require.NoError(t, b.ReportAddress(first))
	assert.Len(t, seen, 3)
}

func TestBridge_SignMessage_NotConnected(t *testing.T) {
	b := newTestBridge()
	_, err := b.SignMessage(context.Background(), "hello")
	assert.ErrorIs(t, err, ErrNotConnected)
}

func TestBridge_SignMessage_Verified(t *testing.T) {
	b := newTestBridge()
	key, addr := newKey(t)
	require.NoError(t, b.ReportAddress(addr))

	type result struct {
		sig string
		err error
	}
	done := make(chan result, 1)
	go func() {
		sig, err := b.SignMessage(context.Background(), "I own this wallet")
		done <- result{sig, err}
	}()

	msg := waitPending(t, b)
	assert.Equal(t, "I own this wallet", msg)

	sig := personalSign(t, key, msg)
	require.NoError(t, b.SubmitSignature(sig))

	res := <-done
	require.NoError(t, res.err)
	assert.Equal(t, sig, res.sig)

	_, pending := b.PendingMessage()
	assert.False(t, pending)
}

func TestBridge_SubmitSignature_WrongSigner(t *testing.T) {
	b := newTestBridge()
	_, addr := newKey(t)
	other, _ := newKey(t)
	require.NoError(t, b.ReportAddress(addr))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		_, err := b.SignMessage(ctx, "msg")
		done <- err
	}()

	msg := waitPending(t, b)
	assert.ErrorIs(t, b.SubmitSignature(personalSign(t, other, msg)), ErrSignatureMismatch)

	// still pending until cancelled
	_, pending := b.PendingMessage()
	assert.True(t, pending)

	cancel()
	assert.ErrorIs(t, <-done, context.Canceled)
	_, pending = b.PendingMessage()
	assert.False(t, pending)
}

func TestBridge_SubmitSignature_Malformed(t *testing.T) {
	b := newTestBridge()
	_, addr := newKey(t)
	require.NoError(t, b.ReportAddress(addr))

	go func() { _, _ = b.SignMessage(context.Background(), "msg") }()
	waitPending(t, b)

	assert.Error(t, b.SubmitSignature("0xzz"))
	assert.Error(t, b.SubmitSignature("0x1234"))

	require.NoError(t, b.Disconnect(context.Background()))
}

func TestBridge_SubmitSignature_Declined(t *testing.T) {
	b := newTestBridge()
	_, addr := newKey(t)
	require.NoError(t, b.ReportAddress(addr))

	done := make(chan error, 1)
	go func() {
		_, err := b.SignMessage(context.Background(), "msg")
		done <- err
	}()
	waitPending(t, b)

	require.NoError(t, b.SubmitSignature(""))
	assert.ErrorIs(t, <-done, ErrSignatureRejected)
}

func TestBridge_SubmitSignature_NothingPending(t *testing.T) {
	b := newTestBridge()
	assert.ErrorIs(t, b.SubmitSignature("0x00"), ErrNoPendingSignature)
}

func TestBridge_DisconnectFailsPending(t *testing.T) {
	b := newTestBridge()
	_, addr := newKey(t)
	require.NoError(t, b.ReportAddress(addr))

	done := make(chan error, 1)
	go func() {
		_, err := b.SignMessage(context.Background(), "msg")
		done <- err
	}()
	waitPending(t, b)

	require.NoError(t, b.Disconnect(context.Background()))
	assert.ErrorIs(t, <-done, ErrDisconnected)
	assert.False(t, b.IsConnected())
}
