package tx

import sdkerrors "cosmossdk.io/errors"

var (
	codespace = "tx_client"

	ErrTxContextNoNode          = sdkerrors.Register(codespace, 1301, "client context has no node client")
	ErrTxContextNoTxConfig      = sdkerrors.Register(codespace, 1302, "client context has no tx config")
	ErrTxContextNodeStatus      = sdkerrors.Register(codespace, 1303, "unable to query node status")
	ErrTxContextAccountNotFound = sdkerrors.Register(codespace, 1304, "unable to get account")
	ErrTxSimulate               = sdkerrors.Register(codespace, 1305, "unable to simulate tx")
	ErrTxInvalidMsg             = sdkerrors.Register(codespace, 1306, "invalid tx message")
	ErrTxBuild                  = sdkerrors.Register(codespace, 1307, "unable to build tx")
	ErrTxSign                   = sdkerrors.Register(codespace, 1308, "unable to sign tx")
	ErrTxBroadcast              = sdkerrors.Register(codespace, 1309, "unable to broadcast tx")
	ErrCheckTx                  = sdkerrors.Register(codespace, 1310, "tx rejected by CheckTx")
	ErrDeliverTx                = sdkerrors.Register(codespace, 1311, "tx failed during execution")
	ErrTxTimeout                = sdkerrors.Register(codespace, 1312, "tx was not included in time")
	ErrSignerMismatch           = sdkerrors.Register(codespace, 1313, "sender is not the signing wallet")
	ErrNoSigner                 = sdkerrors.Register(codespace, 1314, "no signing wallet")
	ErrEventNotFound            = sdkerrors.Register(codespace, 1315, "expected event attribute not found")
	ErrContractQuery            = sdkerrors.Register(codespace, 1316, "smart contract query failed")
)
