package wallet

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"oyunfor-gateway/internal/core/domain"

	"github.com/ethereum/go-ethereum/accounts"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/rs/zerolog"
)

var (
	ErrNotConnected       = errors.New("wallet not connected")
	ErrInvalidAddress     = errors.New("invalid wallet address")
	ErrNoPendingSignature = errors.New("no signature request pending")
	ErrSignatureMismatch  = errors.New("signature does not match the connected wallet")
	ErrDisconnected       = errors.New("wallet disconnected")
	ErrSignatureRejected  = errors.New("user rejected the signature request")
)

type signatureRequest struct {
	message string
	done    chan struct{}
	sig     string
	err     error
}

// Bridge is the server side of a browser wallet connection. The browser
// opens the wallet UI, then reports addresses and signatures back through
// ReportAddress and SubmitSignature.
type Bridge struct {
	log zerolog.Logger

	mu               sync.Mutex
	address          string
	connectRequested bool
	pending          *signatureRequest
	subs             map[int]func(string)
	nextID           int
}

func NewBridge(log zerolog.Logger) *Bridge {
	return &Bridge{
		log:  log,
		subs: make(map[int]func(string)),
	}
}

// Connect asks the browser to open the wallet connect UI.
func (b *Bridge) Connect(ctx context.Context) error {
	b.mu.Lock()
	b.connectRequested = true
	b.mu.Unlock()
	return nil
}

// ConnectRequested reports whether the browser should show the connect UI.
func (b *Bridge) ConnectRequested() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.connectRequested
}

func (b *Bridge) Address() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.address
}

func (b *Bridge) IsConnected() bool {
	return b.Address() != ""
}

// ReportAddress records the browser's current wallet address. An empty
// address means the wallet disconnected.
func (b *Bridge) ReportAddress(address string) error {
	if address != "" && !domain.IsValidAddress(address) {
		return ErrInvalidAddress
	}
	if address == "" {
		return b.Disconnect(context.Background())
	}

	b.mu.Lock()
	b.connectRequested = false
	if strings.EqualFold(b.address, address) {
		b.mu.Unlock()
		return nil
	}
	b.address = address
	if b.pending != nil {
		b.finish(b.pending, "", ErrDisconnected)
	}
	fns := b.listeners()
	b.mu.Unlock()

	b.log.Debug().Str("address", domain.FormatAddress(address)).Msg("wallet address changed")
	for _, fn := range fns {
		fn(address)
	}
	return nil
}

// SignMessage waits for the browser to submit a personal_sign signature of
// message from the connected address.
func (b *Bridge) SignMessage(ctx context.Context, message string) (string, error) {
	b.mu.Lock()
	if b.address == "" {
		b.mu.Unlock()
		return "", ErrNotConnected
	}
	if b.pending != nil {
		b.finish(b.pending, "", ErrSignatureRejected)
	}
	req := &signatureRequest{message: message, done: make(chan struct{})}
	b.pending = req
	b.mu.Unlock()

	select {
	case <-req.done:
		return req.sig, req.err
	case <-ctx.Done():
		b.mu.Lock()
		if b.pending == req {
			b.pending = nil
		}
		b.mu.Unlock()
		return "", ctx.Err()
	}
}

// PendingMessage returns the message awaiting a signature, if any.
func (b *Bridge) PendingMessage() (string, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.pending == nil {
		return "", false
	}
	return b.pending.message, true
}

// SubmitSignature answers the pending request. An empty signature means the
// user declined. A signature from another account is rejected and the
// request stays pending.
func (b *Bridge) SubmitSignature(signature string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	req := b.pending
	if req == nil {
		return ErrNoPendingSignature
	}
	if signature == "" {
		b.finish(req, "", ErrSignatureRejected)
		return nil
	}

	signer, err := recoverSigner(req.message, signature)
	if err != nil {
		return err
	}
	if signer != common.HexToAddress(b.address) {
		return ErrSignatureMismatch
	}

	b.finish(req, signature, nil)
	return nil
}

// Disconnect forgets the wallet and fails any pending signature request.
func (b *Bridge) Disconnect(ctx context.Context) error {
	b.mu.Lock()
	changed := b.address != ""
	b.address = ""
	b.connectRequested = false
	if b.pending != nil {
		b.finish(b.pending, "", ErrDisconnected)
	}
	fns := b.listeners()
	b.mu.Unlock()

	if changed {
		for _, fn := range fns {
			fn("")
		}
	}
	return nil
}

// OnAddressChange registers fn for address changes. The returned func releases it.
func (b *Bridge) OnAddressChange(fn func(address string)) func() {
	b.mu.Lock()
	defer b.mu.Unlock()

	id := b.nextID
	b.nextID++
	b.subs[id] = fn
	return func() {
		b.mu.Lock()
		delete(b.subs, id)
		b.mu.Unlock()
	}
}

// finish must be called with b.mu held.
func (b *Bridge) finish(req *signatureRequest, sig string, err error) {
	req.sig, req.err = sig, err
	close(req.done)
	if b.pending == req {
		b.pending = nil
	}
}

// listeners must be called with b.mu held.
func (b *Bridge) listeners() []func(string) {
	fns := make([]func(string), 0, len(b.subs))
	for _, fn := range b.subs {
		fns = append(fns, fn)
	}
	return fns
}

// recoverSigner returns the address that produced an EIP-191 personal_sign signature.
func recoverSigner(message, signature string) (common.Address, error) {
	sig, err := hexutil.Decode(signature)
	if err != nil {
		return common.Address{}, fmt.Errorf("decoding signature: %w", err)
	}
	if len(sig) != crypto.SignatureLength {
		return common.Address{}, fmt.Errorf("signature must be %d bytes, got %d", crypto.SignatureLength, len(sig))
	}
	if sig[crypto.RecoveryIDOffset] >= 27 {
		sig[crypto.RecoveryIDOffset] -= 27
	}

	pub, err := crypto.SigToPub(accounts.TextHash([]byte(message)), sig)
	if err != nil {
		return common.Address{}, fmt.Errorf("recovering signer: %w", err)
	}
	return crypto.PubkeyToAddress(*pub), nil
}
