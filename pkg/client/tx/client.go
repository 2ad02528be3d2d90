// Package tx implements a signing client which builds, simulates, signs and
// broadcasts transactions for a single wallet, then waits for their inclusion
// by polling the node.
package tx

import (
	"context"
	"encoding/json"
	"sort"
	"strings"
	"sync"
	"time"

	"cosmossdk.io/depinject"
	cosmosclient "github.com/cosmos/cosmos-sdk/client"
	cosmostypes "github.com/cosmos/cosmos-sdk/types"
	"github.com/cosmos/cosmos-sdk/types/tx/signing"
	authsigning "github.com/cosmos/cosmos-sdk/x/auth/signing"
	banktypes "github.com/cosmos/cosmos-sdk/x/bank/types"
	"go.uber.org/multierr"

	"github.com/Web3-Builders-Alliance/Cluster2-3CodeJournal-testing.MTW.WHG/pkg/client"
	"github.com/Web3-Builders-Alliance/Cluster2-3CodeJournal-testing.MTW.WHG/pkg/client/wasm"
	"github.com/Web3-Builders-Alliance/Cluster2-3CodeJournal-testing.MTW.WHG/pkg/logging"
	"github.com/Web3-Builders-Alliance/Cluster2-3CodeJournal-testing.MTW.WHG/pkg/polylog"
	"github.com/Web3-Builders-Alliance/Cluster2-3CodeJournal-testing.MTW.WHG/pkg/wallet"
)

const (
	// DefaultGasAdjustment is the multiplier applied to simulated gas.
	DefaultGasAdjustment = 1.4

	// DefaultPollInterval is the interval between tx inclusion lookups.
	DefaultPollInterval = 3 * time.Second

	// DefaultBroadcastTimeout is how long to wait for a broadcast tx to be
	// included before giving up.
	DefaultBroadcastTimeout = 60 * time.Second
)

var _ client.ContractClient = (*SigningClient)(nil)

// SigningClient implements client.ContractClient. It signs in
// SIGN_MODE_DIRECT with the key of its wallet and is not safe for concurrent
// use: account sequences are looked up per tx.
type SigningClient struct {
	logger polylog.Logger
	txCtx  client.TxContext
	wallet *wallet.Wallet

	// gasPrice is nil when no gas price was configured, in which case txs
	// carry an empty fee.
	gasPrice         *cosmostypes.DecCoin
	gasAdjustment    float64
	pollInterval     time.Duration
	broadcastTimeout time.Duration
	memo             string

	chainIDMu sync.Mutex
	chainID   string
}

// NewSigningClient constructs a SigningClient from the given dependencies
// and options.
//
// Required dependencies:
//   - client.TxContext
//   - *wallet.Wallet
//   - polylog.Logger
//
// Available options:
//   - WithGasPrice
//   - WithGasAdjustment
//   - WithPollInterval
//   - WithBroadcastTimeout
//   - WithMemo
func NewSigningClient(
	deps depinject.Config,
	opts ...client.ContractClientOption,
) (*SigningClient, error) {
	sc := &SigningClient{
		gasAdjustment:    DefaultGasAdjustment,
		pollInterval:     DefaultPollInterval,
		broadcastTimeout: DefaultBroadcastTimeout,
	}

	var logger polylog.Logger
	if err := depinject.Inject(
		deps,
		&sc.txCtx,
		&sc.wallet,
		&logger,
	); err != nil {
		return nil, err
	}

	for _, opt := range opts {
		opt(sc)
	}

	if err := sc.validateConfig(); err != nil {
		return nil, err
	}

	sc.logger = logging.ForComponent(logger, logging.ComponentTxClient).
		With(logging.FieldSigner, sc.wallet.Address())

	return sc, nil
}

func (sc *SigningClient) validateConfig() error {
	if sc.wallet == nil {
		return ErrNoSigner
	}
	if sc.gasAdjustment <= 0 {
		return ErrTxBuild.Wrapf("gas adjustment must be positive, got %v", sc.gasAdjustment)
	}
	if sc.pollInterval <= 0 {
		return ErrTxBuild.Wrapf("poll interval must be positive, got %s", sc.pollInterval)
	}
	if sc.gasPrice != nil {
		if err := sc.gasPrice.Validate(); err != nil {
			return ErrTxBuild.Wrapf("gas price %s: %v", sc.gasPrice, err)
		}
	}
	return nil
}

// SignerAddress returns the bech32 address of the signing wallet.
func (sc *SigningClient) SignerAddress() string {
	return sc.wallet.Address()
}

// SendTokens transfers amount from fromAddress, which MUST be the signer, to
// toAddress.
func (sc *SigningClient) SendTokens(
	ctx context.Context,
	fromAddress, toAddress string,
	amount cosmostypes.Coins,
) (*cosmostypes.TxResponse, error) {
	if err := sc.checkSender(fromAddress); err != nil {
		return nil, err
	}

	return sc.SignAndBroadcast(ctx, &banktypes.MsgSend{
		FromAddress: fromAddress,
		ToAddress:   toAddress,
		Amount:      amount,
	})
}

// Upload stores wasmCode and returns the code ID and checksum emitted by the
// chain.
func (sc *SigningClient) Upload(
	ctx context.Context,
	senderAddress string,
	wasmCode []byte,
) (*client.UploadResult, error) {
	if err := sc.checkSender(senderAddress); err != nil {
		return nil, err
	}

	msg, err := wasm.NewStoreCodeMsg(senderAddress, wasmCode)
	if err != nil {
		return nil, err
	}

	txRes, err := sc.SignAndBroadcast(ctx, msg)
	if err != nil {
		return nil, err
	}

	codeID, checksum, err := wasm.ParseStoreCodeEvents(txRes.Events)
	if err != nil {
		return nil, ErrEventNotFound.Wrapf("tx %s: %v", txRes.TxHash, err)
	}

	return &client.UploadResult{
		CodeID:         codeID,
		Checksum:       checksum,
		OriginalSize:   len(wasmCode),
		CompressedSize: len(msg.WASMByteCode),
		TxResponse:     txRes,
	}, nil
}

// Instantiate creates a contract from codeID and returns its address.
func (sc *SigningClient) Instantiate(
	ctx context.Context,
	senderAddress string,
	codeID uint64,
	initMsg any,
	label, admin string,
) (*client.InstantiateResult, error) {
	if err := sc.checkSender(senderAddress); err != nil {
		return nil, err
	}

	msg, err := wasm.NewInstantiateMsg(senderAddress, admin, codeID, label, initMsg, nil)
	if err != nil {
		return nil, err
	}

	txRes, err := sc.SignAndBroadcast(ctx, msg)
	if err != nil {
		return nil, err
	}

	contractAddr, err := wasm.ParseInstantiateEvents(txRes.Events)
	if err != nil {
		return nil, ErrEventNotFound.Wrapf("tx %s: %v", txRes.TxHash, err)
	}

	return &client.InstantiateResult{
		ContractAddress: contractAddr,
		TxResponse:      txRes,
	}, nil
}

// Execute calls contractAddress with msg and optional funds.
func (sc *SigningClient) Execute(
	ctx context.Context,
	senderAddress, contractAddress string,
	msg any,
	funds cosmostypes.Coins,
) (*cosmostypes.TxResponse, error) {
	if err := sc.checkSender(senderAddress); err != nil {
		return nil, err
	}

	executeMsg, err := wasm.NewExecuteMsg(senderAddress, contractAddress, msg, funds)
	if err != nil {
		return nil, err
	}

	return sc.SignAndBroadcast(ctx, executeMsg)
}

// QueryContractSmart runs query against contractAddress. The response is
// returned undecoded.
func (sc *SigningClient) QueryContractSmart(
	ctx context.Context,
	contractAddress string,
	query any,
) (json.RawMessage, error) {
	queryBz, err := wasm.MarshalPayload(query)
	if err != nil {
		return nil, err
	}

	sc.logger.Debug().
		Str(logging.FieldContract, contractAddress).
		RawJSON(logging.FieldQuery, queryBz).
		Msg("querying contract")

	data, err := sc.txCtx.QueryContractSmart(ctx, contractAddress, queryBz)
	if err != nil {
		smartQueriesTotal.WithLabelValues(statusQueryError).Inc()
		return nil, ErrContractQuery.Wrapf("contract %s: %v", contractAddress, err)
	}

	smartQueriesTotal.WithLabelValues(statusSuccess).Inc()
	return json.RawMessage(data), nil
}

// Close closes the underlying tx context.
func (sc *SigningClient) Close() error {
	return sc.txCtx.Close()
}

// SignAndBroadcast validates msgs, simulates them to determine the gas limit,
// signs and broadcasts the resulting tx, then blocks until it is included.
// The returned response is that of the included tx.
func (sc *SigningClient) SignAndBroadcast(
	ctx context.Context,
	msgs ...cosmostypes.Msg,
) (_ *cosmostypes.TxResponse, err error) {
	msgType := msgTypeLabel(msgs)
	logger := sc.logger.With(logging.FieldMsgTypes, msgType)

	startTime := time.Now()
	status := statusFailure
	defer func() {
		txBroadcastsTotal.WithLabelValues(msgType, status).Inc()
	}()

	if err = validateMsgs(msgs...); err != nil {
		return nil, err
	}

	chainID, err := sc.getChainID(ctx)
	if err != nil {
		return nil, err
	}

	signerAddress := sc.wallet.Address()
	accountNumber, sequence, err := sc.txCtx.GetAccount(ctx, signerAddress)
	if err != nil {
		return nil, err
	}

	txConfig := sc.txCtx.TxConfig()
	txBuilder := txConfig.NewTxBuilder()
	if err = txBuilder.SetMsgs(msgs...); err != nil {
		return nil, ErrTxBuild.Wrapf("setting messages: %v", err)
	}
	txBuilder.SetMemo(sc.memo)

	// Simulate with an empty signature; the ante handler skips signature
	// verification in simulation mode but needs the signer's public key.
	if err = sc.setSignature(txBuilder, sequence, nil); err != nil {
		return nil, err
	}
	simTxBytes, err := txConfig.TxEncoder()(txBuilder.GetTx())
	if err != nil {
		return nil, ErrTxBuild.Wrapf("encoding simulation tx: %v", err)
	}

	gasUsed, err := sc.txCtx.SimulateTx(ctx, simTxBytes)
	if err != nil {
		return nil, err
	}

	gasLimit, err := adjustGas(gasUsed, sc.gasAdjustment)
	if err != nil {
		return nil, ErrTxBuild.Wrapf("adjusting gas: %v", err)
	}
	fee := calculateFee(sc.gasPrice, gasLimit)
	txBuilder.SetGasLimit(gasLimit)
	txBuilder.SetFeeAmount(fee)

	signerData := authsigning.SignerData{
		ChainID:       chainID,
		AccountNumber: accountNumber,
		Sequence:      sequence,
		PubKey:        sc.wallet.PubKey(),
		Address:       signerAddress,
	}
	if err = sc.signTx(ctx, txConfig, txBuilder, signerData); err != nil {
		return nil, err
	}

	txBytes, err := txConfig.TxEncoder()(txBuilder.GetTx())
	if err != nil {
		return nil, ErrTxBuild.Wrapf("encoding signed tx: %v", err)
	}

	logger.Debug().
		Str(logging.FieldChainID, chainID).
		Uint64(logging.FieldSequence, sequence).
		Uint64(logging.FieldGasUsed, gasUsed).
		Uint64(logging.FieldGasWanted, gasLimit).
		Stringer(logging.FieldFee, fee).
		Msg("broadcasting tx")

	broadcastRes, err := sc.txCtx.BroadcastTx(ctx, txBytes)
	if err != nil {
		return nil, ErrTxBroadcast.Wrap(err.Error())
	}
	if broadcastRes.Code != 0 {
		status = statusCheckTx
		return nil, ErrCheckTx.Wrapf(
			"tx %s: code %d (codespace %q): %s",
			broadcastRes.TxHash, broadcastRes.Code, broadcastRes.Codespace, broadcastRes.RawLog,
		)
	}

	txRes, err := sc.waitForInclusion(ctx, logger, broadcastRes.TxHash)
	if err != nil {
		status = statusTimeout
		return nil, err
	}
	if txRes.Code != 0 {
		status = statusDeliverTx
		return txRes, ErrDeliverTx.Wrapf(
			"tx %s at height %d: code %d (codespace %q): %s",
			txRes.TxHash, txRes.Height, txRes.Code, txRes.Codespace, txRes.RawLog,
		)
	}

	status = statusSuccess
	txBroadcastLatency.WithLabelValues(msgType).Observe(time.Since(startTime).Seconds())
	txGasUsed.WithLabelValues(msgType).Observe(float64(txRes.GasUsed))

	logger.Info().
		Str(logging.FieldTxHash, txRes.TxHash).
		Int64(logging.FieldHeight, txRes.Height).
		Int64(logging.FieldGasUsed, txRes.GasUsed).
		Int64(logging.FieldGasWanted, txRes.GasWanted).
		Msg("tx included")

	return txRes, nil
}

// signTx signs the tx in txBuilder for signerData in SIGN_MODE_DIRECT.
func (sc *SigningClient) signTx(
	ctx context.Context,
	txConfig cosmosclient.TxConfig,
	txBuilder cosmosclient.TxBuilder,
	signerData authsigning.SignerData,
) error {
	signMode := signing.SignMode_SIGN_MODE_DIRECT

	// The signer infos are part of the signed bytes, so the placeholder
	// signature MUST be set before computing them.
	if err := sc.setSignature(txBuilder, signerData.Sequence, nil); err != nil {
		return err
	}

	bytesToSign, err := authsigning.GetSignBytesAdapter(
		ctx,
		txConfig.SignModeHandler(),
		signMode,
		signerData,
		txBuilder.GetTx(),
	)
	if err != nil {
		return ErrTxSign.Wrapf("getting sign bytes: %v", err)
	}

	signature, err := sc.wallet.Sign(bytesToSign)
	if err != nil {
		return ErrTxSign.Wrap(err.Error())
	}

	return sc.setSignature(txBuilder, signerData.Sequence, signature)
}

// setSignature sets the single SIGN_MODE_DIRECT signature of the tx.
func (sc *SigningClient) setSignature(
	txBuilder cosmosclient.TxBuilder,
	sequence uint64,
	signature []byte,
) error {
	sigV2 := signing.SignatureV2{
		PubKey: sc.wallet.PubKey(),
		Data: &signing.SingleSignatureData{
			SignMode:  signing.SignMode_SIGN_MODE_DIRECT,
			Signature: signature,
		},
		Sequence: sequence,
	}

	if err := txBuilder.SetSignatures(sigV2); err != nil {
		return ErrTxSign.Wrapf("setting signature: %v", err)
	}
	return nil
}

// waitForInclusion polls for txHash every poll interval until it is found,
// the broadcast timeout elapses or ctx is done.
func (sc *SigningClient) waitForInclusion(
	ctx context.Context,
	logger polylog.Logger,
	txHash string,
) (*cosmostypes.TxResponse, error) {
	hashBz, err := parseTxHash(txHash)
	if err != nil {
		return nil, ErrTxBroadcast.Wrapf("invalid tx hash %q: %v", txHash, err)
	}

	timeoutCtx, cancel := context.WithTimeout(ctx, sc.broadcastTimeout)
	defer cancel()

	ticker := time.NewTicker(sc.pollInterval)
	defer ticker.Stop()

	var lastErr error
	for attempt := 1; ; attempt++ {
		select {
		case <-timeoutCtx.Done():
			return nil, ErrTxTimeout.Wrapf(
				"tx %s not found after %d lookups (%v); last lookup error: %v",
				txHash, attempt-1, timeoutCtx.Err(), lastErr,
			)
		case <-ticker.C:
		}

		txRes, queryErr := sc.txCtx.QueryTx(timeoutCtx, hashBz)
		if queryErr != nil {
			lastErr = queryErr
			logger.Debug().
				Str(logging.FieldTxHash, txHash).
				Int(logging.FieldAttempt, attempt).
				Err(queryErr).
				Msg("tx not yet included")
			continue
		}
		return txRes, nil
	}
}

func (sc *SigningClient) getChainID(ctx context.Context) (string, error) {
	sc.chainIDMu.Lock()
	defer sc.chainIDMu.Unlock()

	if sc.chainID != "" {
		return sc.chainID, nil
	}

	chainID, err := sc.txCtx.ChainID(ctx)
	if err != nil {
		return "", err
	}
	sc.chainID = chainID
	return chainID, nil
}

func (sc *SigningClient) checkSender(senderAddress string) error {
	if senderAddress != sc.wallet.Address() {
		return ErrSignerMismatch.Wrapf("sender %q, signer %q", senderAddress, sc.wallet.Address())
	}
	return nil
}

// validateMsgs runs ValidateBasic on every msg which implements it and
// aggregates the failures.
func validateMsgs(msgs ...cosmostypes.Msg) error {
	if len(msgs) == 0 {
		return ErrTxInvalidMsg.Wrap("no messages")
	}

	var validationErrs error
	for _, msg := range msgs {
		validatable, ok := msg.(cosmostypes.HasValidateBasic)
		if !ok {
			continue
		}
		if err := validatable.ValidateBasic(); err != nil {
			validationErrs = multierr.Append(
				validationErrs,
				ErrTxInvalidMsg.Wrapf("%s: %v", cosmostypes.MsgTypeURL(msg), err),
			)
		}
	}
	return validationErrs
}

// msgTypeLabel returns the sorted, de-duplicated type URLs of msgs.
func msgTypeLabel(msgs []cosmostypes.Msg) string {
	seen := make(map[string]struct{}, len(msgs))
	var typeURLs []string
	for _, msg := range msgs {
		typeURL := cosmostypes.MsgTypeURL(msg)
		if _, ok := seen[typeURL]; ok {
			continue
		}
		seen[typeURL] = struct{}{}
		typeURLs = append(typeURLs, typeURL)
	}
	sort.Strings(typeURLs)
	return strings.Join(typeURLs, ",")
}
